package entities

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
)

// NewTreeEntity 创建一棵树（main 层），刚创建时没有苹果
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图来源，树桩贴图从 "stumps/<size>" 加载
//   - t: 地图上的树（已通过 MapConfig.Validate）
//   - cfg: 树的配置
//
// 返回: 创建的实体ID
func NewTreeEntity(em *ecs.EntityManager, images ImageSource, t config.TreePlacement, cfg *config.TreesConfig) ecs.EntityID {
	size := cfg.Size(t.Size)
	var w, h, stumpW, stumpH float64
	if size != nil {
		w, h = size.Width, size.Height
		stumpW, stumpH = size.StumpWidth, size.StumpHeight
	}

	img := imageOrNil(images, t.Image)
	id := NewStaticEntity(em, img, t.X, t.Y, w, h, types.LayerMain)

	w, h = imageSize(img, w, h)
	rect := utils.Rect{X: t.X, Y: t.Y, W: w, H: h}
	hitbox := rect.Inflate(-w*cfg.HitboxShrinkRatio[0], -h*cfg.HitboxShrinkRatio[1])
	ecs.AddComponent(em, id, &components.HitboxComponent{
		Width:   hitbox.W,
		Height:  hitbox.H,
		OffsetX: hitbox.X - rect.X,
		OffsetY: hitbox.Y - rect.Y,
	})

	stump := imageOrNil(images, "stumps/"+t.Size)
	stumpW, stumpH = imageSize(stump, stumpW, stumpH)
	ecs.AddComponent(em, id, &components.TreeComponent{
		Size:        t.Size,
		Health:      cfg.Health,
		Alive:       true,
		StumpImage:  stump,
		StumpWidth:  stumpW,
		StumpHeight: stumpH,
	})
	return id
}

// NewAppleEntity 创建挂在树上的苹果（fruit 层），(x, y) 为左上角
func NewAppleEntity(em *ecs.EntityManager, images ImageSource, tree ecs.EntityID, x, y float64, cfg *config.TreesConfig) ecs.EntityID {
	id := NewStaticEntity(em, imageOrNil(images, "fruit/apple"), x, y, cfg.AppleWidth, cfg.AppleHeight, types.LayerFruit)
	ecs.AddComponent(em, id, &components.FruitComponent{Tree: tree})
	return id
}
