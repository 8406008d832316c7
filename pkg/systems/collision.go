package systems

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/utils"
)

// EntityRect 返回实体的包围盒（PositionComponent + SpriteComponent 尺寸）
//
// 参数:
//   - em: 实体管理器
//   - id: 实体ID
//
// 返回:
//   - utils.Rect: 世界坐标矩形
//   - bool: 实体缺少位置或精灵组件时返回 false
func EntityRect(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.Rect{X: pos.X, Y: pos.Y, W: sprite.Width, H: sprite.Height}, true
}

// HitboxRect 返回实体碰撞盒的世界坐标矩形
// 实体缺少位置或碰撞组件时返回 false
func HitboxRect(em *ecs.EntityManager, id ecs.EntityID) (utils.Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	hb, ok := ecs.GetComponent[*components.HitboxComponent](em, id)
	if !ok {
		return utils.Rect{}, false
	}
	return utils.Rect{X: pos.X + hb.OffsetX, Y: pos.Y + hb.OffsetY, W: hb.Width, H: hb.Height}, true
}

// setHitbox 用世界坐标矩形设置实体的碰撞盒（相对位置保存）
func setHitbox(em *ecs.EntityManager, id ecs.EntityID, r utils.Rect) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	hb, ok := ecs.GetComponent[*components.HitboxComponent](em, id)
	if !ok {
		hb = &components.HitboxComponent{}
		ecs.AddComponent(em, id, hb)
	}
	hb.Width, hb.Height = r.W, r.H
	hb.OffsetX, hb.OffsetY = r.X-pos.X, r.Y-pos.Y
}
