package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// Silhouette 返回与 src 同尺寸的白色剪影，保留原图的透明度
//
// 颜色矩阵把 RGB 清零再平移到 1，Alpha 不变：
//
//	r' = 0*r + 1, g' = 0*g + 1, b' = 0*b + 1, a' = a
func Silhouette(src *ebiten.Image) *ebiten.Image {
	if src == nil {
		return nil
	}
	bounds := src.Bounds()
	dst := ebiten.NewImage(bounds.Dx(), bounds.Dy())

	var cm colorm.ColorM
	cm.Scale(0, 0, 0, 1)
	cm.Translate(1, 1, 1, 0)
	colorm.DrawImage(dst, src, cm, &colorm.DrawImageOptions{})
	return dst
}
