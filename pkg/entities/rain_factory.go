package entities

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
)

// 雨滴贴图缺失时的尺寸
const (
	rainFloorSize = 16
	rainDropSize  = 8
)

// NewRainFloorEntity 创建地面水花（静止，到期删除）
//
// 参数:
//   - x, y: 左上角世界坐标
//   - lifetime: 存活时间（秒）
//   - variant: 贴图序号，对应 "rain/floor/<variant>"
func NewRainFloorEntity(em *ecs.EntityManager, images ImageSource, x, y, lifetime float64, variant int) ecs.EntityID {
	img := imageOrNil(images, variantName("rain/floor", variant))
	id := NewStaticEntity(em, img, x, y, rainFloorSize, rainFloorSize, types.LayerRainFloor)
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: lifetime})
	ecs.AddComponent(em, id, &components.RainComponent{Kind: components.RainFloor})
	return id
}

// NewRainDropEntity 创建下落的雨滴（匀速运动，到期删除）
//
// 参数:
//   - x, y: 左上角世界坐标
//   - vx, vy: 速度（像素/秒）
//   - lifetime: 存活时间（秒）
//   - variant: 贴图序号，对应 "rain/drops/<variant>"
func NewRainDropEntity(em *ecs.EntityManager, images ImageSource, x, y, vx, vy, lifetime float64, variant int) ecs.EntityID {
	img := imageOrNil(images, variantName("rain/drops", variant))
	id := NewStaticEntity(em, img, x, y, rainDropSize, rainDropSize, types.LayerRainDrops)
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: lifetime})
	ecs.AddComponent(em, id, &components.RainComponent{Kind: components.RainDrop})
	return id
}
