package components

// InteractionComponent 可交互区域（床、商人）
// 区域矩形由 PositionComponent + SpriteComponent 给出
type InteractionComponent struct {
	Name string
}
