package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD 布局
const (
	hudTextX    = 10
	hudTextY    = 10
	hudLineStep = 16
	hudShadow   = 1

	// 工具/种子图标的中下锚点，相对屏幕左下角
	overlayToolX      = 40
	overlayToolBottom = 15
	overlaySeedX      = 70
	overlaySeedBottom = 5
)

var (
	hudTextColor   = color.White
	hudShadowColor = color.RGBA{A: 160}
)

// newHUDFace 内置位图字体，不依赖字体文件
func newHUDFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// drawHUD 绘制状态文字和当前工具/种子图标
func (s *FarmScene) drawHUD(screen *ebiten.Image) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return
	}

	for i, line := range s.HUDLines() {
		y := float64(hudTextY + i*hudLineStep)
		s.drawText(screen, line, hudTextX+hudShadow, y+hudShadow, hudShadowColor)
		s.drawText(screen, line, hudTextX, y, hudTextColor)
	}

	h := float64(s.cfg.Screen.Height)
	s.drawOverlay(screen, "overlay/"+player.SelectedTool.String(), overlayToolX, h-overlayToolBottom)
	s.drawOverlay(screen, "overlay/"+player.SelectedSeed.String(), overlaySeedX, h-overlaySeedBottom)
}

// drawText 以 (x, y) 为左上角绘制一行文字
func (s *FarmScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.hudFace, op)
}

// HUDLines 返回 HUD 文字，每个元素一行
func (s *FarmScene) HUDLines() []string {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return nil
	}

	weather := "clear"
	if s.gameState.Raining {
		weather = "rain"
	}
	lines := []string{
		fmt.Sprintf("Day %d  (%s)", s.gameState.Day, weather),
		fmt.Sprintf("Tool: %s  Seed: %s", player.SelectedTool, player.SelectedSeed),
		"Inventory: " + formatInventory(player.Inventory),
		"Resources: " + formatResources(player.Resources),
	}
	if s.gameState.ShopActive {
		lines = append(lines, "Shop is open - press Enter or Esc to leave")
	}
	return lines
}

func formatInventory(inv map[types.CropType]int) string {
	parts := make([]string, 0, len(types.AllCrops))
	for _, crop := range types.AllCrops {
		parts = append(parts, fmt.Sprintf("%s %d", crop, inv[crop]))
	}
	return strings.Join(parts, ", ")
}

func formatResources(res map[types.Resource]int) string {
	parts := make([]string, 0, len(types.AllResources))
	for _, r := range types.AllResources {
		parts = append(parts, fmt.Sprintf("%s %d", r, res[r]))
	}
	return strings.Join(parts, ", ")
}

// drawOverlay 以 (x, bottom) 为中下锚点绘制图标，贴图缺失时跳过
func (s *FarmScene) drawOverlay(screen *ebiten.Image, name string, x, bottom float64) {
	if s.images == nil {
		return
	}
	img := s.images.Image(name)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(b.Dx())/2, bottom-float64(b.Dy()))
	screen.DrawImage(img, op)
}
