package components

import (
	"github.com/decker502/farm/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// TreeComponent 可以被斧头砍的树
//
// 每砍一下生命值减一并打落一个苹果；生命值归零后变成树桩，
// 不再结果也不能再砍。
type TreeComponent struct {
	// Size 树的尺寸名称（small, large），决定果位
	Size   string
	Health int
	Alive  bool

	// Apples 当前挂在树上的苹果实体
	Apples []ecs.EntityID

	// StumpImage 树桩贴图，可以为 nil
	StumpImage  *ebiten.Image
	StumpWidth  float64
	StumpHeight float64
}

// FruitComponent 标识挂在树上的苹果
type FruitComponent struct {
	Tree ecs.EntityID
}
