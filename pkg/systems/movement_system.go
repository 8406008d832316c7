package systems

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
)

// MovementSystem 按速度移动实体（雨滴）
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{entityManager: em}
}

// Update 所有拥有速度的实体做匀速直线运动
func (s *MovementSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
