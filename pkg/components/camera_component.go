package components

import "github.com/decker502/farm/pkg/ecs"

// CameraComponent 跟随目标实体的镜头
//
// OffsetX/OffsetY 为世界坐标到屏幕坐标的平移量：
//
//	screen = world - offset
//
// 每帧由 CameraSystem 根据目标中心和屏幕尺寸重新计算。
type CameraComponent struct {
	// Target 跟随的实体（通常是玩家）
	Target ecs.EntityID

	OffsetX float64
	OffsetY float64

	// ScreenWidth/ScreenHeight 逻辑屏幕尺寸
	ScreenWidth  float64
	ScreenHeight float64
}
