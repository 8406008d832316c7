package entities

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewStaticEntity 创建静态可渲染实体（地图贴图、装饰物）
//
// 参数:
//   - em: 实体管理器
//   - img: 贴图，可以为 nil
//   - x, y: 左上角世界坐标
//   - w, h: 贴图为 nil 时使用的尺寸
//   - layer: 深度层
//
// 返回: 创建的实体ID
func NewStaticEntity(em *ecs.EntityManager, img *ebiten.Image, x, y, w, h float64, layer types.DepthLayer) ecs.EntityID {
	id := em.CreateEntity()
	w, h = imageSize(img, w, h)
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, Width: w, Height: h})
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: layer})
	return id
}

// NewMapEntities 按地图配置创建地面、水面、贴图层和装饰物实体
//
// 创建顺序决定同层同高度实体的绘制顺序：
// 地面 → 水面 → 贴图层（按配置顺序）→ 对象
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图来源
//   - m: 地图配置（已通过 Validate）
//   - tileSize: 格子边长
//
// 返回: 创建的实体数量
func NewMapEntities(em *ecs.EntityManager, images ImageSource, m *config.MapConfig, tileSize float64) int {
	count := 0

	worldW, worldH := m.PixelSize(tileSize)
	ground := imageOrNil(images, m.Ground)
	NewStaticEntity(em, ground, 0, 0, worldW, worldH, types.LayerGround)
	count++

	waterFrames := framesOrNil(images, "water")
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if !m.IsWater(row, col) {
				continue
			}
			img := firstFrame(waterFrames)
			NewStaticEntity(em, img, float64(col)*tileSize, float64(row)*tileSize, tileSize, tileSize, types.LayerWater)
			count++
		}
	}

	for _, layer := range m.TileLayers {
		depth, _ := types.ParseDepthLayer(layer.Depth)
		for _, tile := range layer.Tiles {
			img := imageOrNil(images, tile.Image)
			NewStaticEntity(em, img, float64(tile.Col)*tileSize, float64(tile.Row)*tileSize, tileSize, tileSize, depth)
			count++
		}
	}

	for _, obj := range m.Objects {
		depth, _ := types.ParseDepthLayer(obj.Depth)
		img := imageOrNil(images, obj.Image)
		NewStaticEntity(em, img, obj.X, obj.Y, obj.Width, obj.Height, depth)
		count++
	}

	return count
}

// NewInteractionEntity 创建交互区域（床、商人），不参与渲染
func NewInteractionEntity(em *ecs.EntityManager, cfg config.InteractionConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.X, Y: cfg.Y})
	ecs.AddComponent(em, id, &components.HitboxComponent{Width: cfg.Width, Height: cfg.Height})
	ecs.AddComponent(em, id, &components.InteractionComponent{Name: cfg.Name})
	return id
}
