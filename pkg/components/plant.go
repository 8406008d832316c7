package components

import (
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlantStage 作物生长阶段
type PlantStage int

const (
	// PlantSprouting 刚种下，贴在地面上（ground-plant 层），不可碰撞
	PlantSprouting PlantStage = iota
	// PlantStanding 年龄首次大于 0 后立起（main 层），拥有收获碰撞盒
	PlantStanding
)

// String 返回阶段名称
func (s PlantStage) String() string {
	if s == PlantStanding {
		return "standing"
	}
	return "sprouting"
}

// PlantComponent 单株作物的生长状态
//
// 作物从不直接修改土壤网格：浇水状态通过 Row/Col 向网格查询，
// 种植标记的清除由 SoilSystem 负责。
type PlantComponent struct {
	Crop types.CropType

	// Row/Col 所在土壤格子
	Row int
	Col int

	// Age 连续年龄，只在浇过水时增长
	Age       float64
	MaxAge    float64
	GrowSpeed float64

	// Harvestable 达到最大年龄后置为 true，之后不会再变回 false
	Harvestable bool

	Stage PlantStage

	// Anchor 土壤格子的占地矩形，贴图底边中点对齐到 Anchor 底边中点 + YOffset
	Anchor  utils.Rect
	YOffset float64

	// Frames 生长帧序列，显示帧 = Frames[floor(Age)]
	Frames []*ebiten.Image

	// FrameWidth/FrameHeight 贴图缺失时的帧尺寸
	FrameWidth  float64
	FrameHeight float64

	// HitboxShrinkX/HitboxGrowYRatio 立起时计算收获碰撞盒的参数
	HitboxShrinkX    float64
	HitboxGrowYRatio float64
}
