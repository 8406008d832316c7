// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PlayerInput 当前帧的玩家输入快照
// 系统只依赖快照，测试时可以直接构造
type PlayerInput struct {
	// MoveX/MoveY 方向输入，取值 -1、0、1
	MoveX int
	MoveY int

	// 以下均为"本帧刚按下"
	UseTool  bool
	NextTool bool
	UseSeed  bool
	NextSeed bool
	Interact bool

	// 场景级按键
	CloseShop   bool
	ToggleDebug bool
}

// 按键绑定
var (
	keysUp    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keysDown  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	keysLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

// ReadPlayerInput 从 ebiten 读取当前帧的键盘输入
//
// 绑定:
//   - 方向键 / WASD: 移动
//   - Space: 使用工具，Q: 切换工具
//   - 左 Ctrl: 播种，E: 切换种子
//   - Enter: 与床或商人交互
//   - Escape: 关闭商店，F3: 调试绘制
func ReadPlayerInput() PlayerInput {
	in := PlayerInput{}

	if anyPressed(keysUp) {
		in.MoveY--
	}
	if anyPressed(keysDown) {
		in.MoveY++
	}
	if anyPressed(keysLeft) {
		in.MoveX--
	}
	if anyPressed(keysRight) {
		in.MoveX++
	}

	in.UseTool = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.NextTool = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	in.UseSeed = inpututil.IsKeyJustPressed(ebiten.KeyControlLeft)
	in.NextSeed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.Interact = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.CloseShop = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	return in
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
