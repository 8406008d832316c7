package game

// GameState 当前存档（一局游戏）的状态
//
// 由场景创建并持有，系统通过注入的访问函数读取，
// 不再使用全局单例，测试可以随意创建多个实例。
type GameState struct {
	// Day 当前天数，从 1 开始，每次睡觉后加一
	Day int

	// Raining 当天是否下雨，只在开局和日切换时改变
	Raining bool

	// ShopActive 商店界面是否打开，打开时世界暂停
	ShopActive bool
}

// NewGameState 创建第一天的游戏状态
func NewGameState(raining bool) *GameState {
	return &GameState{Day: 1, Raining: raining}
}

// IsRaining 返回当天是否下雨
func (gs *GameState) IsRaining() bool {
	return gs.Raining
}

// StartNewDay 进入新的一天并记录新的天气
func (gs *GameState) StartNewDay(raining bool) {
	gs.Day++
	gs.Raining = raining
}

// ToggleShop 开关商店，返回切换后的状态
func (gs *GameState) ToggleShop() bool {
	gs.ShopActive = !gs.ShopActive
	return gs.ShopActive
}
