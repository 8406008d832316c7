package systems

import (
	"log"
	"math/rand/v2"
	"sort"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
	"github.com/decker502/farm/pkg/soil"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/zyedidia/generic/mapset"
)

// SoilSystem 土壤层：土壤网格的唯一写入者
//
// 职责范围：
//   - 开垦、浇水、播种、日切换
//   - 维护耕地贴图、湿润贴图、作物三组实体
//   - 耕地贴图是网格的派生视图，每次开垦后整体重建
//
// 所有"定位目标格子"的操作在找不到目标时静默返回 false。
type SoilSystem struct {
	entityManager *ecs.EntityManager
	grid          *soil.Grid
	cfg           *config.GameConfig
	images        entities.ImageSource
	rng           *rand.Rand
	sounds        SoundPlayer

	// isRaining 读取当前天气，新开垦的土地在雨天立即湿润
	isRaining func() bool

	growth *PlantGrowthSystem

	soilTiles  mapset.Set[ecs.EntityID]
	waterTiles mapset.Set[ecs.EntityID]
	plants     mapset.Set[ecs.EntityID]
}

// NewSoilSystem 创建土壤层
//
// 参数:
//   - em: 实体管理器
//   - grid: 土壤网格（由地图可耕地布局构造）
//   - cfg: 游戏配置
//   - images: 贴图来源，可以为 nil
//   - rng: 随机数生成器（湿润贴图选择、日切换降雨判定）
//   - isRaining: 当前是否下雨
//
// 返回:
//   - *SoilSystem: 土壤层实例
func NewSoilSystem(em *ecs.EntityManager, grid *soil.Grid, cfg *config.GameConfig, images entities.ImageSource, rng *rand.Rand, isRaining func() bool) *SoilSystem {
	s := &SoilSystem{
		entityManager: em,
		grid:          grid,
		cfg:           cfg,
		images:        images,
		rng:           rng,
		isRaining:     isRaining,
		soilTiles:     mapset.New[ecs.EntityID](),
		waterTiles:    mapset.New[ecs.EntityID](),
		plants:        mapset.New[ecs.EntityID](),
	}
	s.growth = NewPlantGrowthSystem(em, grid.Watered)
	return s
}

// SetSoundPlayer 设置音效播放器
func (s *SoilSystem) SetSoundPlayer(p SoundPlayer) {
	s.sounds = p
}

// Grid 返回土壤网格（只读使用）
func (s *SoilSystem) Grid() *soil.Grid {
	return s.grid
}

// cellAt 将世界坐标转换为格子坐标
func (s *SoilSystem) cellAt(x, y float64) (int, int, bool) {
	return utils.PointToCell(x, y, s.cfg.TileSize, s.grid.Rows(), s.grid.Cols())
}

// Hit 用锄头敲击世界坐标 (x, y)
// 命中可耕地时播放锄地音效；未开垦则开垦并重建耕地贴图，
// 下雨时所有耕地立即湿润
//
// 返回: 是否开垦了新格子
func (s *SoilSystem) Hit(x, y float64) bool {
	row, col, ok := s.cellAt(x, y)
	if !ok || !s.grid.Farmable(row, col) {
		return false
	}
	playSound(s.sounds, SoundHoe)

	if !s.grid.Till(row, col) {
		return false
	}
	log.Printf("[SoilSystem] tilled cell (%d,%d)", row, col)
	s.rebuildSoilTiles()

	if s.isRaining != nil && s.isRaining() {
		s.WaterAll()
	}
	return true
}

// WaterAt 给世界坐标 (x, y) 下的耕地浇水
// 只有耕地贴图覆盖的位置才能浇水，已湿润的格子不重复添加贴图
//
// 返回: 是否浇湿了新格子
func (s *SoilSystem) WaterAt(x, y float64) bool {
	tile, ok := s.soilTileAt(x, y)
	if !ok {
		return false
	}
	if !s.grid.Water(tile.Row, tile.Col) {
		return false
	}
	s.addWaterTile(tile.Row, tile.Col)
	return true
}

// WaterAll 浇湿所有未湿润的耕地
// 返回: 新浇湿的格子数量
func (s *SoilSystem) WaterAll() int {
	cells := s.grid.WaterAll()
	for _, c := range cells {
		s.addWaterTile(c.Row, c.Col)
	}
	return len(cells)
}

// RemoveWater 清除所有湿润状态和湿润贴图
func (s *SoilSystem) RemoveWater() {
	for _, id := range sortedIDs(s.waterTiles) {
		s.entityManager.DestroyEntity(id)
	}
	s.waterTiles = mapset.New[ecs.EntityID]()
	s.grid.ClearWater()
}

// PlantAt 在世界坐标 (x, y) 下的耕地上播种
// 命中耕地即播放播种音效；格子已有作物时不做任何改变
//
// 参数:
//   - x, y: 世界坐标
//   - crop: 种子对应的作物
//
// 返回: 是否种下了新作物
func (s *SoilSystem) PlantAt(x, y float64, crop types.CropType) bool {
	tile, ok := s.soilTileAt(x, y)
	if !ok {
		return false
	}
	playSound(s.sounds, SoundPlant)

	cropCfg := s.cfg.Crop(crop)
	if cropCfg == nil {
		log.Printf("[SoilSystem] no config for crop %s", crop)
		return false
	}
	if !s.grid.SetPlanted(tile.Row, tile.Col) {
		return false
	}

	anchor := utils.CellRect(tile.Row, tile.Col, s.cfg.TileSize)
	id := entities.NewPlantEntity(s.entityManager, s.images, crop, cropCfg, tile.Row, tile.Col, anchor)
	s.plants.Put(id)
	log.Printf("[SoilSystem] planted %s at (%d,%d)", crop, tile.Row, tile.Col)
	return true
}

// UpdatePlants 所有作物推进一个生长步（按种植顺序）
func (s *SoilSystem) UpdatePlants() {
	for _, id := range s.Plants() {
		s.growth.Grow(id)
	}
}

// RemovePlant 移除作物并清除所在格子的种植标记
func (s *SoilSystem) RemovePlant(id ecs.EntityID) {
	if !s.plants.Has(id) {
		return
	}
	if plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id); ok {
		s.grid.ClearPlanted(plant.Row, plant.Col)
	}
	s.plants.Remove(id)
	s.entityManager.DestroyEntity(id)
}

// DayReset 日切换
//
// 顺序: 作物生长 → 清除所有水分 → 重新判定降雨 → 下雨则浇湿所有耕地
//
// 返回: 新一天是否下雨，由调用方保存
func (s *SoilSystem) DayReset() bool {
	s.UpdatePlants()
	s.RemoveWater()

	raining := RollRain(s.rng, &s.cfg.Rain)
	if raining {
		s.WaterAll()
	}
	log.Printf("[SoilSystem] day reset, raining=%v, plants=%d", raining, s.plants.Size())
	return raining
}

// Plants 返回所有作物实体，按种植顺序
func (s *SoilSystem) Plants() []ecs.EntityID {
	return sortedIDs(s.plants)
}

// SoilTileCount 返回耕地贴图数量
func (s *SoilSystem) SoilTileCount() int { return s.soilTiles.Size() }

// WaterTileCount 返回湿润贴图数量
func (s *SoilSystem) WaterTileCount() int { return s.waterTiles.Size() }

// PlantCount 返回作物数量
func (s *SoilSystem) PlantCount() int { return s.plants.Size() }

// rebuildSoilTiles 丢弃所有耕地贴图，按网格重新生成
func (s *SoilSystem) rebuildSoilTiles() {
	for _, id := range sortedIDs(s.soilTiles) {
		s.entityManager.DestroyEntity(id)
	}
	s.soilTiles = mapset.New[ecs.EntityID]()

	for _, c := range s.grid.TilledCells() {
		variant := soil.Resolve(s.grid, c.Row, c.Col)
		id := entities.NewSoilTileEntity(s.entityManager, s.images, c.Row, c.Col, variant, s.cfg.TileSize)
		s.soilTiles.Put(id)
	}
}

func (s *SoilSystem) addWaterTile(row, col int) {
	variant := 0
	if n := s.cfg.WaterVariants; n > 1 {
		variant = s.rng.IntN(n)
	}
	id := entities.NewWaterTileEntity(s.entityManager, s.images, row, col, variant, s.cfg.TileSize)
	s.waterTiles.Put(id)
}

// soilTileAt 查找包含 (x, y) 的耕地贴图
func (s *SoilSystem) soilTileAt(x, y float64) (*components.SoilTileComponent, bool) {
	for _, id := range sortedIDs(s.soilTiles) {
		rect, ok := EntityRect(s.entityManager, id)
		if !ok || !rect.ContainsPoint(x, y) {
			continue
		}
		tile, ok := ecs.GetComponent[*components.SoilTileComponent](s.entityManager, id)
		if ok {
			return tile, true
		}
	}
	return nil, false
}

// sortedIDs 返回集合中的实体，按创建顺序
func sortedIDs(set mapset.Set[ecs.EntityID]) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, set.Size())
	set.Each(func(id ecs.EntityID) {
		ids = append(ids, id)
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
