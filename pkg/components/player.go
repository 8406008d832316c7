package components

import (
	"github.com/decker502/farm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerComponent 玩家状态
type PlayerComponent struct {
	Facing types.Facing
	Speed  float64

	// SelectedTool/SelectedSeed 当前工具和种子
	SelectedTool types.Tool
	SelectedSeed types.CropType

	// Inventory 收获计数
	Inventory map[types.CropType]int

	// Resources 砍树得到的木头和苹果
	Resources map[types.Resource]int

	// ToolTimer/SeedTimer 工具和播种动作的剩余时间（秒），
	// 计时结束时在工具作用点执行动作，期间玩家不能移动
	ToolTimer float64
	SeedTimer float64

	// Sleeping 正在睡觉（过渡动画进行中）
	Sleeping bool

	// Images 每个朝向的贴图，可以为空
	Images map[types.Facing]*ebiten.Image
}

// IsBusy 是否正在使用工具或播种
func (p *PlayerComponent) IsBusy() bool {
	return p.ToolTimer > 0 || p.SeedTimer > 0
}
