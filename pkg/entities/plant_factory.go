package entities

import (
	"math"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewPlantEntity 创建作物实体
// 作物从年龄 0 开始，处于 Sprouting 阶段（ground-plant 层），
// 贴图底边中点对齐到土壤格子底边中点并加上作物的垂直偏移
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图来源，生长帧从 "fruit/<crop>" 目录加载
//   - crop: 作物类型
//   - cfg: 作物配置
//   - row, col: 土壤格子坐标
//   - anchor: 土壤格子的占地矩形
//
// 返回: 创建的实体ID
func NewPlantEntity(em *ecs.EntityManager, images ImageSource, crop types.CropType, cfg *config.CropConfig, row, col int, anchor utils.Rect) ecs.EntityID {
	plant := &components.PlantComponent{
		Crop:             crop,
		Row:              row,
		Col:              col,
		MaxAge:           cfg.MaxAge(),
		GrowSpeed:        cfg.GrowSpeed,
		Stage:            components.PlantSprouting,
		Anchor:           anchor,
		YOffset:          cfg.YOffset,
		Frames:           framesOrNil(images, "fruit/"+crop.String()),
		FrameWidth:       cfg.FrameWidth,
		FrameHeight:      cfg.FrameHeight,
		HitboxShrinkX:    cfg.HitboxShrinkX,
		HitboxGrowYRatio: cfg.HitboxGrowYRatio,
	}

	rect, img := PlantSpriteRect(plant)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: rect.X, Y: rect.Y})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, Width: rect.W, Height: rect.H})
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: types.LayerGroundPlant})
	ecs.AddComponent(em, id, plant)
	return id
}

// PlantFrameIndex 返回当前显示帧序号 floor(Age)，限制在 [0, MaxAge]
func PlantFrameIndex(p *components.PlantComponent) int {
	idx := int(math.Floor(p.Age))
	if idx < 0 {
		idx = 0
	}
	if maxIdx := int(p.MaxAge); idx > maxIdx {
		idx = maxIdx
	}
	return idx
}

// PlantSpriteRect 根据当前显示帧计算作物的贴图矩形
// 返回矩形和当前帧贴图（帧缺失时为 nil，尺寸使用配置的帧尺寸）
func PlantSpriteRect(p *components.PlantComponent) (utils.Rect, *ebiten.Image) {
	var img *ebiten.Image
	if idx := PlantFrameIndex(p); idx < len(p.Frames) {
		img = p.Frames[idx]
	}
	w, h := imageSize(img, p.FrameWidth, p.FrameHeight)
	x, y := p.Anchor.MidBottom()
	return utils.AnchorMidBottom(x, y+p.YOffset, w, h), img
}
