package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/soil"
	"github.com/decker502/farm/pkg/types"
)

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(name string) bool {
	r.played = append(r.played, name)
	return true
}

func (r *recordingSounds) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

// soilFixture 测试用的土壤层环境
type soilFixture struct {
	em      *ecs.EntityManager
	cfg     *config.GameConfig
	soil    *SoilSystem
	sounds  *recordingSounds
	raining bool
}

// newSoilFixture 用字符布局构造土壤层，'F' 为可耕地
// 默认配置下日切换永远不下雨
func newSoilFixture(t *testing.T, layout ...string) *soilFixture {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Rain.RollMax = 10
	cfg.Rain.RollThreshold = 10

	grid := soil.NewGrid(len(layout), len(layout[0]), func(row, col int) bool {
		return layout[row][col] == 'F'
	})

	f := &soilFixture{
		em:     ecs.NewEntityManager(),
		cfg:    cfg,
		sounds: &recordingSounds{},
	}
	f.soil = NewSoilSystem(f.em, grid, cfg, nil, rand.New(rand.NewPCG(1, 0)), func() bool { return f.raining })
	f.soil.SetSoundPlayer(f.sounds)
	return f
}

// cellCenter 返回格子中心的世界坐标
func (f *soilFixture) cellCenter(row, col int) (float64, float64) {
	ts := f.cfg.TileSize
	return float64(col)*ts + ts/2, float64(row)*ts + ts/2
}

func (f *soilFixture) hit(row, col int) bool {
	x, y := f.cellCenter(row, col)
	return f.soil.Hit(x, y)
}

func (f *soilFixture) water(row, col int) bool {
	x, y := f.cellCenter(row, col)
	return f.soil.WaterAt(x, y)
}

func (f *soilFixture) plant(row, col int, crop types.CropType) bool {
	x, y := f.cellCenter(row, col)
	return f.soil.PlantAt(x, y, crop)
}

// endFrame 模拟帧结束时的实体清理
func (f *soilFixture) endFrame() {
	f.em.RemoveMarkedEntities()
}

func allFarm(rows, cols int) []string {
	layout := make([]string, rows)
	for i := range layout {
		b := make([]byte, cols)
		for j := range b {
			b[j] = 'F'
		}
		layout[i] = string(b)
	}
	return layout
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func interactionAt(name string, x, y, w, h float64) config.InteractionConfig {
	return config.InteractionConfig{Name: name, X: x, Y: y, Width: w, Height: h}
}
