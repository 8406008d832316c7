package config

import (
	"fmt"
	"os"

	"github.com/decker502/farm/pkg/types"
	"gopkg.in/yaml.v3"
)

// 地图布局字符
const (
	// LayoutFarmable 可耕地
	LayoutFarmable = 'F'
	// LayoutWater 水面（动画水面贴图，water 层）
	LayoutWater = '~'
)

// 交互区域名称
const (
	InteractionBed    = "Bed"
	InteractionTrader = "Trader"
)

// 树的尺寸名称
const (
	TreeSmall = "small"
	TreeLarge = "large"
)

// MapConfig 地图定义
//
// 地图编辑器导出的数据在这里被简化为 YAML：
//   - Layout 字符布局决定可耕地和水面
//   - TileLayers 为 (col, row, image) 三元组
//   - Objects 为带矩形和图像的对象
//
// 配置文件位置: data/maps/*.yaml
type MapConfig struct {
	Name string `yaml:"name"`

	// Width/Height 地图尺寸（格子数）
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Layout 每行一个字符串，长度等于 Width
	Layout []string `yaml:"layout"`

	// Ground 整张地面背景图
	Ground string `yaml:"ground"`

	TileLayers   []TileLayerConfig   `yaml:"tileLayers"`
	Objects      []ObjectConfig      `yaml:"objects"`
	Trees        []TreePlacement     `yaml:"trees"`
	Interactions []InteractionConfig `yaml:"interactions"`

	// PlayerStart 玩家出生点（世界坐标，玩家中心）
	PlayerStart PointConfig `yaml:"playerStart"`
}

// TileLayerConfig 一个格子图层
type TileLayerConfig struct {
	Name  string       `yaml:"name"`
	Depth string       `yaml:"depth"`
	Tiles []TileConfig `yaml:"tiles"`
}

// TileConfig 单个格子贴图
type TileConfig struct {
	Col   int    `yaml:"col"`
	Row   int    `yaml:"row"`
	Image string `yaml:"image"`
}

// ObjectConfig 地图对象（树桩、花草等装饰）
type ObjectConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Image  string  `yaml:"image"`
	Depth  string  `yaml:"depth"`
}

// TreePlacement 地图上的一棵树，(X, Y) 为贴图左上角
type TreePlacement struct {
	Size  string  `yaml:"size"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Image string  `yaml:"image"`
}

// InteractionConfig 可交互区域（床、商人）
type InteractionConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PointConfig 世界坐标点
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadMapConfig 从文件加载地图配置
func LoadMapConfig(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map config: %w", err)
	}
	return ParseMapConfig(data)
}

// ParseMapConfig 解析 YAML 格式的地图配置
func ParseMapConfig(data []byte) (*MapConfig, error) {
	var cfg MapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map config %q: %w", cfg.Name, err)
	}
	return &cfg, nil
}

// Validate 验证地图配置
func (m *MapConfig) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if len(m.Layout) != m.Height {
		return fmt.Errorf("layout has %d rows, expected %d", len(m.Layout), m.Height)
	}
	for i, row := range m.Layout {
		if len(row) != m.Width {
			return fmt.Errorf("layout row %d has %d columns, expected %d", i, len(row), m.Width)
		}
	}
	for _, layer := range m.TileLayers {
		if _, err := types.ParseDepthLayer(layer.Depth); err != nil {
			return fmt.Errorf("tile layer %s: %w", layer.Name, err)
		}
		for _, tile := range layer.Tiles {
			if tile.Col < 0 || tile.Col >= m.Width || tile.Row < 0 || tile.Row >= m.Height {
				return fmt.Errorf("tile layer %s: tile (%d,%d) outside map", layer.Name, tile.Col, tile.Row)
			}
		}
	}
	for _, obj := range m.Objects {
		if _, err := types.ParseDepthLayer(obj.Depth); err != nil {
			return fmt.Errorf("object %s: %w", obj.Name, err)
		}
		if obj.Width <= 0 || obj.Height <= 0 {
			return fmt.Errorf("object %s: size must be positive", obj.Name)
		}
	}
	for i, tree := range m.Trees {
		if tree.Size != TreeSmall && tree.Size != TreeLarge {
			return fmt.Errorf("tree %d: unknown size %q", i, tree.Size)
		}
	}
	for _, it := range m.Interactions {
		if it.Name != InteractionBed && it.Name != InteractionTrader {
			return fmt.Errorf("unknown interaction %q", it.Name)
		}
	}
	return nil
}

// IsFarmable 检查格子是否为可耕地
func (m *MapConfig) IsFarmable(row, col int) bool {
	return m.cellAt(row, col) == LayoutFarmable
}

// IsWater 检查格子是否为水面
func (m *MapConfig) IsWater(row, col int) bool {
	return m.cellAt(row, col) == LayoutWater
}

func (m *MapConfig) cellAt(row, col int) byte {
	if row < 0 || row >= len(m.Layout) || col < 0 || col >= len(m.Layout[row]) {
		return 0
	}
	return m.Layout[row][col]
}

// PixelSize 返回地图的世界尺寸（像素）
func (m *MapConfig) PixelSize(tileSize float64) (float64, float64) {
	return float64(m.Width) * tileSize, float64(m.Height) * tileSize
}
