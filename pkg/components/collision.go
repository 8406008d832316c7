package components

// HitboxComponent 碰撞盒，相对于实体 PositionComponent 的偏移和尺寸
// 玩家用它检测收获和交互区域，成熟后的植物用它被收获
type HitboxComponent struct {
	Width   float64
	Height  float64
	OffsetX float64 // 相对左上角的X偏移（像素）
	OffsetY float64 // 相对左上角的Y偏移（像素）
}
