package systems

import (
	"image/color"

	"github.com/decker502/farm/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// blendMultiply 正片叠底：dst = src * dst，保留目标 Alpha
var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorZero,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// SkySystem 天色：全屏颜色以正片叠底方式覆盖世界
// 每个通道以固定速度向目标颜色收敛，到达后停止，不会越过目标
type SkySystem struct {
	start  [3]float64
	target [3]float64
	color  [3]float64
	speed  float64

	overlay *ebiten.Image
}

// NewSkySystem 创建天色系统，初始颜色为配置的起始颜色
func NewSkySystem(cfg *config.SkyConfig) *SkySystem {
	return &SkySystem{
		start:  cfg.StartColor,
		target: cfg.EndColor,
		color:  cfg.StartColor,
		speed:  cfg.FadeSpeed,
	}
}

// Update 所有通道向目标颜色推进 speed*dt
func (s *SkySystem) Update(deltaTime float64) {
	step := s.speed * deltaTime
	for i := range s.color {
		switch {
		case s.color[i] > s.target[i]:
			s.color[i] -= step
			if s.color[i] < s.target[i] {
				s.color[i] = s.target[i]
			}
		case s.color[i] < s.target[i]:
			s.color[i] += step
			if s.color[i] > s.target[i] {
				s.color[i] = s.target[i]
			}
		}
	}
}

// Reset 恢复起始颜色（新的一天）
func (s *SkySystem) Reset() {
	s.color = s.start
}

// Color 返回当前颜色
func (s *SkySystem) Color() [3]float64 {
	return s.color
}

// Draw 将当前颜色以正片叠底方式绘制到整个屏幕
func (s *SkySystem) Draw(screen *ebiten.Image) {
	s.overlay = drawMultiply(screen, s.overlay, color.RGBA{
		R: uint8(s.color[0]),
		G: uint8(s.color[1]),
		B: uint8(s.color[2]),
		A: 255,
	})
}

// drawMultiply 用纯色覆盖层正片叠底整个屏幕
// overlay 尺寸与屏幕不一致时重新创建，返回实际使用的覆盖层供下次复用
func drawMultiply(screen, overlay *ebiten.Image, clr color.Color) *ebiten.Image {
	b := screen.Bounds()
	if overlay == nil || overlay.Bounds().Dx() != b.Dx() || overlay.Bounds().Dy() != b.Dy() {
		overlay = ebiten.NewImage(b.Dx(), b.Dy())
	}
	overlay.Fill(clr)
	screen.DrawImage(overlay, &ebiten.DrawImageOptions{Blend: blendMultiply})
	return overlay
}
