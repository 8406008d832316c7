// Package entities 提供游戏实体的工厂函数
//
// 每个工厂只负责组装组件，不包含任何逻辑；
// 贴图通过 ImageSource 获取，缺失贴图时返回 nil，
// 渲染系统会为没有贴图的实体绘制占位矩形。
package entities

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 按名称提供贴图
// 名称是 graphics 目录下不带扩展名的相对路径，如 "soil/lr"
type ImageSource interface {
	// Image 返回单张贴图，不存在时返回 nil
	Image(name string) *ebiten.Image
	// Frames 返回目录下按序号排列的帧（0.png, 1.png, ...），不存在时返回空切片
	Frames(dir string) []*ebiten.Image
}

// imageOrNil 在 images 为 nil 时返回 nil，测试中可以不提供贴图
func imageOrNil(images ImageSource, name string) *ebiten.Image {
	if images == nil {
		return nil
	}
	return images.Image(name)
}

func framesOrNil(images ImageSource, dir string) []*ebiten.Image {
	if images == nil {
		return nil
	}
	return images.Frames(dir)
}

// imageSize 返回贴图尺寸，贴图为空时使用默认尺寸
func imageSize(img *ebiten.Image, defaultW, defaultH float64) (float64, float64) {
	if img == nil {
		return defaultW, defaultH
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// variantName 拼接带序号的贴图名称，如 "rain/drops/2"
func variantName(dir string, index int) string {
	return fmt.Sprintf("%s/%d", dir, index)
}

func firstFrame(frames []*ebiten.Image) *ebiten.Image {
	if len(frames) == 0 {
		return nil
	}
	return frames[0]
}
