package entities

import (
	"math"
	"slices"
	"testing"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/soil"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// noImages 模拟所有贴图都缺失的资源目录
type noImages struct {
	requested []string
}

func (n *noImages) Image(name string) *ebiten.Image {
	n.requested = append(n.requested, name)
	return nil
}

func (n *noImages) Frames(dir string) []*ebiten.Image {
	n.requested = append(n.requested, dir+"/*")
	return nil
}

func mustGet[T any](t *testing.T, em *ecs.EntityManager, id ecs.EntityID) T {
	t.Helper()
	c, ok := ecs.GetComponent[T](em, id)
	if !ok {
		var zero T
		t.Fatalf("entity %d missing component %T", id, zero)
	}
	return c
}

func TestNewPlantEntityAnchorsToSoilMidBottom(t *testing.T) {
	tests := []struct {
		name     string
		crop     types.CropType
		cfg      config.CropConfig
		wantRect utils.Rect
	}{
		{
			name:     "玉米向上偏移16像素",
			crop:     types.CropCorn,
			cfg:      config.CropConfig{GrowSpeed: 1, Frames: 4, FrameWidth: 48, FrameHeight: 80, YOffset: -16},
			wantRect: utils.Rect{X: 200, Y: 96, W: 48, H: 80},
		},
		{
			name:     "番茄向上偏移8像素",
			crop:     types.CropTomato,
			cfg:      config.CropConfig{GrowSpeed: 0.7, Frames: 4, FrameWidth: 48, FrameHeight: 64, YOffset: -8},
			wantRect: utils.Rect{X: 200, Y: 120, W: 48, H: 64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			images := &noImages{}
			anchor := utils.CellRect(2, 3, 64)

			id := NewPlantEntity(em, images, tt.crop, &tt.cfg, 2, 3, anchor)

			pos := mustGet[*components.PositionComponent](t, em, id)
			sprite := mustGet[*components.SpriteComponent](t, em, id)
			got := utils.Rect{X: pos.X, Y: pos.Y, W: sprite.Width, H: sprite.Height}
			if got != tt.wantRect {
				t.Errorf("plant rect = %+v, want %+v", got, tt.wantRect)
			}

			plant := mustGet[*components.PlantComponent](t, em, id)
			if plant.Age != 0 || plant.Harvestable || plant.Stage != components.PlantSprouting {
				t.Errorf("new plant should be a sprouting age-0 plant, got %+v", plant)
			}
			if plant.MaxAge != 3 {
				t.Errorf("MaxAge = %v, want 3", plant.MaxAge)
			}

			depth := mustGet[*components.DepthComponent](t, em, id)
			if depth.Layer != types.LayerGroundPlant {
				t.Errorf("new plant layer = %v, want ground-plant", depth.Layer)
			}

			if ecs.HasComponent[*components.HitboxComponent](em, id) {
				t.Error("sprouting plant must not have a hitbox")
			}

			if len(images.requested) != 1 || images.requested[0] != "fruit/"+tt.crop.String()+"/*" {
				t.Errorf("unexpected image requests %v", images.requested)
			}
		})
	}
}

func TestPlantFrameIndex(t *testing.T) {
	tests := []struct {
		age  float64
		want int
	}{
		{0, 0},
		{0.7, 0},
		{1.4, 1},
		{2.99, 2},
		{3, 3},
		{7, 3},
	}
	for _, tt := range tests {
		p := &components.PlantComponent{Age: tt.age, MaxAge: 3}
		if got := PlantFrameIndex(p); got != tt.want {
			t.Errorf("PlantFrameIndex(age=%v) = %d, want %d", tt.age, got, tt.want)
		}
	}
}

func TestSoilAndWaterTiles(t *testing.T) {
	em := ecs.NewEntityManager()
	images := &noImages{}

	soilID := NewSoilTileEntity(em, images, 1, 2, soil.VariantHorizontal, 64)
	waterID := NewWaterTileEntity(em, images, 1, 2, 1, 64)

	pos := mustGet[*components.PositionComponent](t, em, soilID)
	if pos.X != 128 || pos.Y != 64 {
		t.Errorf("soil tile at (%v,%v), want (128,64)", pos.X, pos.Y)
	}
	if tile := mustGet[*components.SoilTileComponent](t, em, soilID); tile.Variant != soil.VariantHorizontal {
		t.Errorf("variant = %v, want lr", tile.Variant)
	}
	if d := mustGet[*components.DepthComponent](t, em, soilID); d.Layer != types.LayerSoil {
		t.Errorf("soil tile layer = %v", d.Layer)
	}
	if d := mustGet[*components.DepthComponent](t, em, waterID); d.Layer != types.LayerSoilWater {
		t.Errorf("water tile layer = %v", d.Layer)
	}

	want := []string{"soil/lr", "soil_water/1"}
	for i, name := range want {
		if images.requested[i] != name {
			t.Errorf("request %d = %q, want %q", i, images.requested[i], name)
		}
	}
}

func TestRainEntities(t *testing.T) {
	em := ecs.NewEntityManager()

	floor := NewRainFloorEntity(em, nil, 10, 20, 0.45, 0)
	drop := NewRainDropEntity(em, nil, 30, 40, -400, 800, 0.5, 2)

	if ecs.HasComponent[*components.VelocityComponent](em, floor) {
		t.Error("floor splash must be stationary")
	}
	vel := mustGet[*components.VelocityComponent](t, em, drop)
	if vel.VX != -400 || vel.VY != 800 {
		t.Errorf("drop velocity = (%v,%v)", vel.VX, vel.VY)
	}
	if lt := mustGet[*components.LifetimeComponent](t, em, floor); lt.MaxLifetime != 0.45 {
		t.Errorf("floor lifetime = %v", lt.MaxLifetime)
	}
	if d := mustGet[*components.DepthComponent](t, em, drop); d.Layer != types.LayerRainDrops {
		t.Errorf("drop layer = %v", d.Layer)
	}
	if d := mustGet[*components.DepthComponent](t, em, floor); d.Layer != types.LayerRainFloor {
		t.Errorf("floor layer = %v", d.Layer)
	}
}

// fixedImages 所有名称返回同一张贴图
type fixedImages struct {
	img *ebiten.Image
}

func (f fixedImages) Image(name string) *ebiten.Image   { return f.img }
func (f fixedImages) Frames(dir string) []*ebiten.Image { return []*ebiten.Image{f.img} }

func TestRainEntitiesUseImageSize(t *testing.T) {
	em := ecs.NewEntityManager()
	images := fixedImages{img: ebiten.NewImage(30, 12)}

	floor := NewRainFloorEntity(em, images, 10, 20, 0.45, 0)
	drop := NewRainDropEntity(em, images, 30, 40, -400, 800, 0.5, 1)

	for _, id := range []ecs.EntityID{floor, drop} {
		sprite := mustGet[*components.SpriteComponent](t, em, id)
		if sprite.Width != 30 || sprite.Height != 12 {
			t.Errorf("entity %d size = %vx%v, want 30x12", id, sprite.Width, sprite.Height)
		}
	}

	// 贴图缺失时使用默认尺寸
	drop = NewRainDropEntity(em, nil, 30, 40, -400, 800, 0.5, 1)
	if sprite := mustGet[*components.SpriteComponent](t, em, drop); sprite.Width != rainDropSize || sprite.Height != rainDropSize {
		t.Errorf("placeholder drop size = %vx%v", sprite.Width, sprite.Height)
	}
}

func TestNewPlayerEntityHitbox(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Player

	id := NewPlayerEntity(em, nil, &cfg, 700, 440)

	pos := mustGet[*components.PositionComponent](t, em, id)
	if pos.X != 604 || pos.Y != 344 {
		t.Errorf("player top-left = (%v,%v), want (604,344)", pos.X, pos.Y)
	}
	hb := mustGet[*components.HitboxComponent](t, em, id)
	if hb.Width != 66 || hb.Height != 122 || hb.OffsetX != 63 || hb.OffsetY != 35 {
		t.Errorf("unexpected hitbox %+v", hb)
	}
	player := mustGet[*components.PlayerComponent](t, em, id)
	if player.SelectedTool != types.ToolHoe || player.SelectedSeed != types.CropCorn {
		t.Errorf("unexpected initial selection %+v", player)
	}
	if player.Inventory == nil {
		t.Error("inventory must be initialised")
	}
}

func TestNewMapEntities(t *testing.T) {
	m := &config.MapConfig{
		Width:  3,
		Height: 2,
		Layout: []string{"~F.", "..~"},
		TileLayers: []config.TileLayerConfig{
			{Name: "HouseFloor", Depth: "house-bottom", Tiles: []config.TileConfig{{Col: 2, Row: 0, Image: "house/floor"}}},
		},
		Objects: []config.ObjectConfig{
			{Name: "Flower", X: 5, Y: 6, Width: 16, Height: 20, Image: "objects/flower", Depth: "main"},
		},
	}
	em := ecs.NewEntityManager()

	// 地面 + 2 水面 + 1 贴图 + 1 对象
	if n := NewMapEntities(em, nil, m, 64); n != 5 {
		t.Fatalf("created %d entities, want 5", n)
	}

	layers := map[types.DepthLayer]int{}
	for _, id := range ecs.GetEntitiesWith1[*components.DepthComponent](em) {
		d := mustGet[*components.DepthComponent](t, em, id)
		layers[d.Layer]++
	}
	if layers[types.LayerGround] != 1 || layers[types.LayerWater] != 2 ||
		layers[types.LayerHouseBottom] != 1 || layers[types.LayerMain] != 1 {
		t.Errorf("unexpected layer counts %v", layers)
	}

	ground := ecs.GetEntitiesWith1[*components.DepthComponent](em)[0]
	sprite := mustGet[*components.SpriteComponent](t, em, ground)
	if sprite.Width != 192 || sprite.Height != 128 {
		t.Errorf("ground size = %vx%v, want 192x128", sprite.Width, sprite.Height)
	}
}

func TestNewTreeEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Trees
	images := &noImages{}

	id := NewTreeEntity(em, images, config.TreePlacement{Size: config.TreeSmall, X: 100, Y: 50, Image: "objects/tree_small"}, &cfg)

	sprite := mustGet[*components.SpriteComponent](t, em, id)
	if sprite.Width != 64 || sprite.Height != 96 {
		t.Errorf("tree size = %vx%v, want 64x96", sprite.Width, sprite.Height)
	}
	if d := mustGet[*components.DepthComponent](t, em, id); d.Layer != types.LayerMain {
		t.Errorf("tree layer = %v, want main", d.Layer)
	}
	// 宽度收缩 20%，高度收缩 75%，以中心为基准
	hb := mustGet[*components.HitboxComponent](t, em, id)
	if !approx(hb.Width, 51.2) || !approx(hb.Height, 24) || !approx(hb.OffsetX, 6.4) || !approx(hb.OffsetY, 36) {
		t.Errorf("unexpected hitbox %+v", hb)
	}
	tree := mustGet[*components.TreeComponent](t, em, id)
	if !tree.Alive || tree.Health != 5 || len(tree.Apples) != 0 {
		t.Errorf("unexpected tree state %+v", tree)
	}
	if tree.StumpWidth != 64 || tree.StumpHeight != 32 {
		t.Errorf("stump size = %vx%v, want 64x32", tree.StumpWidth, tree.StumpHeight)
	}
	if !slices.Contains(images.requested, "stumps/small") {
		t.Errorf("stump image not requested: %v", images.requested)
	}
}

func TestNewAppleEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Trees

	id := NewAppleEntity(em, nil, 42, 118, 67, &cfg)

	pos := mustGet[*components.PositionComponent](t, em, id)
	sprite := mustGet[*components.SpriteComponent](t, em, id)
	if pos.X != 118 || pos.Y != 67 || sprite.Width != 16 || sprite.Height != 16 {
		t.Errorf("apple at (%v,%v) size %vx%v", pos.X, pos.Y, sprite.Width, sprite.Height)
	}
	if d := mustGet[*components.DepthComponent](t, em, id); d.Layer != types.LayerFruit {
		t.Errorf("apple layer = %v, want fruit", d.Layer)
	}
	if f := mustGet[*components.FruitComponent](t, em, id); f.Tree != 42 {
		t.Errorf("apple tree = %d, want 42", f.Tree)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewInteractionEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewInteractionEntity(em, config.InteractionConfig{Name: config.InteractionBed, X: 10, Y: 20, Width: 30, Height: 40})

	if ecs.HasComponent[*components.DepthComponent](em, id) {
		t.Error("interaction areas are not rendered")
	}
	it := mustGet[*components.InteractionComponent](t, em, id)
	if it.Name != config.InteractionBed {
		t.Errorf("name = %q", it.Name)
	}
}
