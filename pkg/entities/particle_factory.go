package entities

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewParticleEntity 创建消失粒子：原贴图的白色剪影
// 收获的作物用 main 层，打落的苹果用 fruit 层
//
// 参数:
//   - rect: 原实体消失时的贴图矩形
//   - img: 原实体当前帧，为 nil 时粒子只有占位矩形
//   - source: 来源名称（作物名、"apple"、"tree"）
//   - layer: 深度层
//   - duration: 持续时间（秒）
//
// 返回: 创建的实体ID
func NewParticleEntity(em *ecs.EntityManager, rect utils.Rect, img *ebiten.Image, source string, layer types.DepthLayer, duration float64) ecs.EntityID {
	id := NewStaticEntity(em, utils.Silhouette(img), rect.X, rect.Y, rect.W, rect.H, layer)
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: duration})
	ecs.AddComponent(em, id, &components.ParticleComponent{Source: source})
	return id
}
