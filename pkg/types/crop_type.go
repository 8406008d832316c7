// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// CropType 定义作物（种子）的类型
type CropType int

const (
	// CropUnknown 未知作物类型
	CropUnknown CropType = iota
	// CropCorn 玉米
	CropCorn
	// CropTomato 番茄
	CropTomato
)

// AllCrops 按种子切换顺序列出所有可种植的作物
var AllCrops = []CropType{CropCorn, CropTomato}

// String 返回作物类型的字符串表示
// 与配置文件、资源目录中的名称一致
func (c CropType) String() string {
	switch c {
	case CropCorn:
		return "corn"
	case CropTomato:
		return "tomato"
	default:
		return "unknown"
	}
}

// ParseCropType 将配置文件中的名称解析为作物类型
func ParseCropType(name string) (CropType, error) {
	for _, c := range AllCrops {
		if c.String() == name {
			return c, nil
		}
	}
	return CropUnknown, fmt.Errorf("unknown crop type %q", name)
}

// UnmarshalText 允许作物类型直接作为 YAML 映射键/值使用
func (c *CropType) UnmarshalText(text []byte) error {
	parsed, err := ParseCropType(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText 与 UnmarshalText 对称
func (c CropType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
