package types

import "fmt"

// DepthLayer 渲染深度层
//
// 数值越大越晚绘制（越靠前）。同一层内再按实体的垂直中心排序，
// 跨层的遮挡关系（例如房屋墙壁总在地板之上）只由层决定，与位置无关。
type DepthLayer int

const (
	LayerWater DepthLayer = iota
	LayerGround
	LayerSoil
	LayerSoilWater
	LayerRainFloor
	LayerHouseBottom
	LayerGroundPlant
	LayerMain
	LayerHouseTop
	LayerFruit
	LayerRainDrops

	// layerCount 层数量，仅用于遍历
	layerCount
)

var depthLayerNames = [...]string{
	LayerWater:       "water",
	LayerGround:      "ground",
	LayerSoil:        "soil",
	LayerSoilWater:   "soil-water",
	LayerRainFloor:   "rain-floor",
	LayerHouseBottom: "house-bottom",
	LayerGroundPlant: "ground-plant",
	LayerMain:        "main",
	LayerHouseTop:    "house-top",
	LayerFruit:       "fruit",
	LayerRainDrops:   "rain-drops",
}

// AllDepthLayers 按绘制顺序（从底到顶）返回所有深度层
func AllDepthLayers() []DepthLayer {
	layers := make([]DepthLayer, 0, layerCount)
	for l := LayerWater; l < layerCount; l++ {
		layers = append(layers, l)
	}
	return layers
}

// Valid 检查深度层是否在枚举范围内
func (l DepthLayer) Valid() bool {
	return l >= LayerWater && l < layerCount
}

func (l DepthLayer) String() string {
	if !l.Valid() {
		return fmt.Sprintf("DepthLayer(%d)", int(l))
	}
	return depthLayerNames[l]
}

// ParseDepthLayer 解析地图配置中的深度层名称
func ParseDepthLayer(name string) (DepthLayer, error) {
	for i, n := range depthLayerNames {
		if n == name {
			return DepthLayer(i), nil
		}
	}
	return LayerMain, fmt.Errorf("unknown depth layer %q", name)
}

// UnmarshalText 允许在 YAML 中直接写层名称
func (l *DepthLayer) UnmarshalText(text []byte) error {
	parsed, err := ParseDepthLayer(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
