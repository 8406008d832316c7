package systems

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
)

// LifetimeSystem 短暂实体（雨滴、水花、收获粒子）的到期检测
//
// 遍历期间只收集到期实体，遍历结束后统一标记删除；
// 实际移除由场景在本帧所有系统更新后调用 RemoveMarkedEntities 完成。
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 累加存活时间并标记到期实体
// 返回: 本帧到期的实体数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	var expired []ecs.EntityID

	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if lifetime.IsExpired {
			continue
		}
		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.entityManager.DestroyEntity(id)
	}
	return len(expired)
}
