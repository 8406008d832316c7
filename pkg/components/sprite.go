package components

import (
	"github.com/decker502/farm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PositionComponent 实体包围盒的左上角（世界坐标）
type PositionComponent struct {
	X float64
	Y float64
}

// SpriteComponent 存储实体的视觉表现
// Width/Height 为包围盒尺寸，与 PositionComponent 一起构成实体的 AABB；
// Image 为 nil 时实体仍参与排序和碰撞，只是不绘制
type SpriteComponent struct {
	Image  *ebiten.Image
	Width  float64
	Height float64
}

// DepthComponent 深度层标签
// 渲染系统先按 Layer 升序、再按垂直中心升序绘制
type DepthComponent struct {
	Layer types.DepthLayer
}
