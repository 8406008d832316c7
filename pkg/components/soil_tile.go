package components

import "github.com/decker502/farm/pkg/soil"

// SoilTileComponent 标识一块耕地贴图
// 耕地贴图是网格状态的派生视图，每次耕地后全部重建
type SoilTileComponent struct {
	Row     int
	Col     int
	Variant soil.Variant
}

// WaterTileComponent 标识一块湿润土壤贴图
// 浇水时逐块添加，日切换时全部清除
type WaterTileComponent struct {
	Row int
	Col int
}
