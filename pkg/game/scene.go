package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景，每个场景有独立的更新和绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}
