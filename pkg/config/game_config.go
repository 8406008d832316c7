package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/decker502/farm/pkg/types"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全局配置
//
// 启动时加载一次，之后只读。
// 配置文件位置: data/game.yaml
type GameConfig struct {
	// Screen 逻辑屏幕尺寸
	Screen ScreenConfig `yaml:"screen"`

	// TileSize 地图格子边长（像素）
	TileSize float64 `yaml:"tileSize"`

	// Crops 作物配置表，key 为作物名称（corn, tomato）
	Crops map[string]*CropConfig `yaml:"crops"`

	// WaterVariants 水面贴图变体数量，浇水时随机选择
	WaterVariants int `yaml:"waterVariants"`

	Rain       RainConfig       `yaml:"rain"`
	Sky        SkyConfig        `yaml:"sky"`
	Player     PlayerConfig     `yaml:"player"`
	Transition TransitionConfig `yaml:"transition"`
	Trees      TreesConfig      `yaml:"trees"`

	// ParticleDurationMs 收获粒子持续时间（毫秒）
	ParticleDurationMs float64 `yaml:"particleDurationMs"`
}

// ScreenConfig 屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CropConfig 单个作物的生长参数
type CropConfig struct {
	// GrowSpeed 每次生长步进增加的年龄
	GrowSpeed float64 `yaml:"growSpeed"`

	// Frames 生长帧数，最大年龄 = Frames - 1
	Frames int `yaml:"frames"`

	// FrameWidth/FrameHeight 贴图缺失时使用的帧尺寸
	FrameWidth  float64 `yaml:"frameWidth"`
	FrameHeight float64 `yaml:"frameHeight"`

	// YOffset 植物底边相对土壤底边的垂直偏移（负值向上）
	YOffset float64 `yaml:"yOffset"`

	// HitboxShrinkX 收获碰撞盒相对贴图的宽度变化量（负值收缩）
	HitboxShrinkX float64 `yaml:"hitboxShrinkX"`

	// HitboxGrowYRatio 收获碰撞盒高度变化量与贴图高度的比例
	HitboxGrowYRatio float64 `yaml:"hitboxGrowYRatio"`
}

// MaxAge 返回作物的最大年龄
func (c *CropConfig) MaxAge() float64 {
	return float64(c.Frames - 1)
}

// RainConfig 天气参数
type RainConfig struct {
	// RollMax/RollThreshold 下雨判定：randInt(0, RollMax) > RollThreshold
	RollMax       int `yaml:"rollMax"`
	RollThreshold int `yaml:"rollThreshold"`

	// LifetimeMinMs/LifetimeMaxMs 雨滴与水花的存活时间范围（毫秒）
	LifetimeMinMs int `yaml:"lifetimeMinMs"`
	LifetimeMaxMs int `yaml:"lifetimeMaxMs"`

	// DropSpeedMin/DropSpeedMax 雨滴速度范围（像素/秒，乘以方向向量）
	DropSpeedMin int `yaml:"dropSpeedMin"`
	DropSpeedMax int `yaml:"dropSpeedMax"`

	// DropDirection 雨滴运动方向
	DropDirection [2]float64 `yaml:"dropDirection"`

	// DropVariants/FloorVariants 贴图变体数量
	DropVariants  int `yaml:"dropVariants"`
	FloorVariants int `yaml:"floorVariants"`
}

// SkyConfig 天色参数
type SkyConfig struct {
	StartColor [3]float64 `yaml:"startColor"`
	EndColor   [3]float64 `yaml:"endColor"`
	// FadeSpeed 每秒每个颜色通道的变化量
	FadeSpeed float64 `yaml:"fadeSpeed"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// HitboxShrinkX/HitboxShrinkY 碰撞盒相对贴图的尺寸变化量
	HitboxShrinkX float64 `yaml:"hitboxShrinkX"`
	HitboxShrinkY float64 `yaml:"hitboxShrinkY"`

	// ToolOffsets 工具作用点相对玩家中心的偏移，key 为朝向
	ToolOffsets map[string][2]float64 `yaml:"toolOffsets"`

	// ToolUseMs 使用工具/播种的动作时长（毫秒），动作结束时生效，期间不能移动
	ToolUseMs float64 `yaml:"toolUseMs"`
}

// ToolOffset 返回指定朝向的工具作用点偏移
func (p *PlayerConfig) ToolOffset(f types.Facing) (float64, float64) {
	off := p.ToolOffsets[f.String()]
	return off[0], off[1]
}

// ToolUseDuration 以秒为单位返回动作时长
func (p *PlayerConfig) ToolUseDuration() float64 {
	return p.ToolUseMs / 1000
}

// TreesConfig 树和苹果
type TreesConfig struct {
	Health int `yaml:"health"`

	// AppleRollMax/AppleChance 每个果位长苹果的判定：randInt(0, AppleRollMax) < AppleChance
	AppleRollMax int `yaml:"appleRollMax"`
	AppleChance  int `yaml:"appleChance"`

	// AppleWidth/AppleHeight 苹果贴图缺失时的尺寸
	AppleWidth  float64 `yaml:"appleWidth"`
	AppleHeight float64 `yaml:"appleHeight"`

	// HitboxShrinkRatio 树的碰撞盒相对贴图宽、高的收缩比例
	HitboxShrinkRatio [2]float64 `yaml:"hitboxShrinkRatio"`

	// StumpHitboxShrinkX/StumpHitboxShrinkYRatio 树桩碰撞盒：宽度变化量、高度收缩比例
	StumpHitboxShrinkX      float64 `yaml:"stumpHitboxShrinkX"`
	StumpHitboxShrinkYRatio float64 `yaml:"stumpHitboxShrinkYRatio"`

	// Sizes key 为树的尺寸名称（small, large）
	Sizes map[string]*TreeSizeConfig `yaml:"sizes"`
}

// TreeSizeConfig 一种尺寸的树
type TreeSizeConfig struct {
	// Width/Height 树的贴图缺失时的尺寸
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	StumpWidth  float64 `yaml:"stumpWidth"`
	StumpHeight float64 `yaml:"stumpHeight"`

	// AppleSlots 果位，相对树贴图左上角
	AppleSlots [][2]float64 `yaml:"appleSlots"`
}

// Size 返回指定尺寸的树配置，未配置时返回 nil
func (t *TreesConfig) Size(name string) *TreeSizeConfig {
	return t.Sizes[name]
}

// TransitionConfig 睡眠过渡参数
type TransitionConfig struct {
	// Speed 每帧颜色变化量（按 60 TPS 换算）
	Speed float64 `yaml:"speed"`
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen:   ScreenConfig{Width: 1280, Height: 720},
		TileSize: 64,
		Crops: map[string]*CropConfig{
			types.CropCorn.String(): {
				GrowSpeed:        1,
				Frames:           4,
				FrameWidth:       48,
				FrameHeight:      80,
				YOffset:          -16,
				HitboxShrinkX:    -26,
				HitboxGrowYRatio: 0.4,
			},
			types.CropTomato.String(): {
				GrowSpeed:        0.7,
				Frames:           4,
				FrameWidth:       48,
				FrameHeight:      64,
				YOffset:          -8,
				HitboxShrinkX:    -26,
				HitboxGrowYRatio: 0.4,
			},
		},
		WaterVariants: 3,
		Rain: RainConfig{
			RollMax:       10,
			RollThreshold: 7,
			LifetimeMinMs: 400,
			LifetimeMaxMs: 500,
			DropSpeedMin:  200,
			DropSpeedMax:  250,
			DropDirection: [2]float64{-2, 4},
			DropVariants:  3,
			FloorVariants: 3,
		},
		Sky: SkyConfig{
			StartColor: [3]float64{255, 255, 255},
			EndColor:   [3]float64{38, 101, 189},
			FadeSpeed:  2,
		},
		Player: PlayerConfig{
			Speed:         200,
			Width:         192,
			Height:        192,
			HitboxShrinkX: -126,
			HitboxShrinkY: -70,
			ToolOffsets: map[string][2]float64{
				"left":  {-50, 40},
				"right": {50, 40},
				"up":    {0, -10},
				"down":  {0, 50},
			},
			ToolUseMs: 350,
		},
		Transition: TransitionConfig{Speed: 2},
		Trees: TreesConfig{
			Health:                  5,
			AppleRollMax:            10,
			AppleChance:             2,
			AppleWidth:              16,
			AppleHeight:             16,
			HitboxShrinkRatio:       [2]float64{0.2, 0.75},
			StumpHitboxShrinkX:      -10,
			StumpHitboxShrinkYRatio: 0.6,
			Sizes: map[string]*TreeSizeConfig{
				TreeSmall: {
					Width: 64, Height: 96, StumpWidth: 64, StumpHeight: 32,
					AppleSlots: [][2]float64{{18, 17}, {30, 37}, {12, 50}, {30, 45}, {20, 30}, {30, 10}},
				},
				TreeLarge: {
					Width: 96, Height: 128, StumpWidth: 64, StumpHeight: 48,
					AppleSlots: [][2]float64{{30, 24}, {60, 65}, {50, 50}, {16, 40}, {45, 50}, {42, 70}},
				},
			},
		},
		ParticleDurationMs: 200,
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
// 未出现在文件中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %v", c.TileSize)
	}
	if len(c.Crops) == 0 {
		return fmt.Errorf("at least one crop must be configured")
	}
	for _, name := range c.cropNames() {
		if _, err := types.ParseCropType(name); err != nil {
			return err
		}
		crop := c.Crops[name]
		if crop == nil {
			return fmt.Errorf("crop %s: empty config", name)
		}
		if crop.GrowSpeed <= 0 {
			return fmt.Errorf("crop %s: growSpeed must be positive, got %v", name, crop.GrowSpeed)
		}
		if crop.Frames < 2 {
			return fmt.Errorf("crop %s: frames must be at least 2, got %d", name, crop.Frames)
		}
	}
	if c.WaterVariants <= 0 {
		return fmt.Errorf("waterVariants must be positive, got %d", c.WaterVariants)
	}
	if c.Rain.RollMax < 0 || c.Rain.RollThreshold < 0 {
		return fmt.Errorf("rain roll values must not be negative")
	}
	if c.Rain.LifetimeMinMs <= 0 || c.Rain.LifetimeMinMs > c.Rain.LifetimeMaxMs {
		return fmt.Errorf("invalid rain lifetime range [%d, %d]", c.Rain.LifetimeMinMs, c.Rain.LifetimeMaxMs)
	}
	if c.Rain.DropSpeedMin < 0 || c.Rain.DropSpeedMin > c.Rain.DropSpeedMax {
		return fmt.Errorf("invalid rain drop speed range [%d, %d]", c.Rain.DropSpeedMin, c.Rain.DropSpeedMax)
	}
	if c.Rain.DropVariants <= 0 || c.Rain.FloorVariants <= 0 {
		return fmt.Errorf("rain variants must be positive")
	}
	for i := 0; i < 3; i++ {
		if c.Sky.EndColor[i] < 0 || c.Sky.EndColor[i] > 255 || c.Sky.StartColor[i] < 0 || c.Sky.StartColor[i] > 255 {
			return fmt.Errorf("sky colors must be within [0, 255]")
		}
	}
	if c.Sky.FadeSpeed < 0 {
		return fmt.Errorf("sky fadeSpeed must not be negative")
	}
	for _, facing := range []types.Facing{types.FacingDown, types.FacingUp, types.FacingLeft, types.FacingRight} {
		if _, ok := c.Player.ToolOffsets[facing.String()]; !ok {
			return fmt.Errorf("player toolOffsets missing %q", facing)
		}
	}
	if c.Player.Speed <= 0 || c.Player.ToolUseMs < 0 {
		return fmt.Errorf("player speed must be positive and toolUseMs must not be negative")
	}
	if c.Transition.Speed <= 0 {
		return fmt.Errorf("transition speed must be positive")
	}
	return c.Trees.validate()
}

func (t *TreesConfig) validate() error {
	if t.Health <= 0 {
		return fmt.Errorf("trees: health must be positive, got %d", t.Health)
	}
	if t.AppleRollMax < 0 || t.AppleChance < 0 {
		return fmt.Errorf("trees: apple roll values must not be negative")
	}
	for _, name := range []string{TreeSmall, TreeLarge} {
		if t.Sizes[name] == nil {
			return fmt.Errorf("trees: size %q not configured", name)
		}
	}
	return nil
}

// Crop 返回作物配置，未配置的作物返回 nil
func (c *GameConfig) Crop(crop types.CropType) *CropConfig {
	return c.Crops[crop.String()]
}

func (c *GameConfig) cropNames() []string {
	names := make([]string, 0, len(c.Crops))
	for name := range c.Crops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
