package systems

import (
	"math/rand/v2"

	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
)

// RollRain 降雨判定：randInt(0, RollMax) > RollThreshold（两端包含）
func RollRain(rng *rand.Rand, cfg *config.RainConfig) bool {
	return rng.IntN(cfg.RollMax+1) > cfg.RollThreshold
}

// WeatherSystem 下雨时每帧生成一个地面水花和一个下落雨滴
// 两者都在世界范围内均匀随机分布，到期后由 LifetimeSystem 删除
type WeatherSystem struct {
	entityManager *ecs.EntityManager
	images        entities.ImageSource
	cfg           *config.RainConfig
	rng           *rand.Rand

	worldWidth  float64
	worldHeight float64

	// isRaining 天气状态由场景持有，本系统只读
	isRaining func() bool
}

// NewWeatherSystem 创建天气系统
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图来源，可以为 nil
//   - cfg: 降雨配置
//   - rng: 随机数生成器
//   - worldWidth, worldHeight: 世界尺寸（像素）
//   - isRaining: 当前是否下雨
func NewWeatherSystem(em *ecs.EntityManager, images entities.ImageSource, cfg *config.RainConfig, rng *rand.Rand, worldWidth, worldHeight float64, isRaining func() bool) *WeatherSystem {
	return &WeatherSystem{
		entityManager: em,
		images:        images,
		cfg:           cfg,
		rng:           rng,
		worldWidth:    worldWidth,
		worldHeight:   worldHeight,
		isRaining:     isRaining,
	}
}

// Update 下雨时生成水花和雨滴
func (s *WeatherSystem) Update(deltaTime float64) {
	if s.isRaining == nil || !s.isRaining() {
		return
	}
	s.spawnFloor()
	s.spawnDrop()
}

func (s *WeatherSystem) spawnFloor() ecs.EntityID {
	x, y := s.randomPoint()
	return entities.NewRainFloorEntity(s.entityManager, s.images, x, y, s.randomLifetime(), s.randomVariant(s.cfg.FloorVariants))
}

func (s *WeatherSystem) spawnDrop() ecs.EntityID {
	x, y := s.randomPoint()
	speed := float64(s.randInt(s.cfg.DropSpeedMin, s.cfg.DropSpeedMax))
	vx := s.cfg.DropDirection[0] * speed
	vy := s.cfg.DropDirection[1] * speed
	return entities.NewRainDropEntity(s.entityManager, s.images, x, y, vx, vy, s.randomLifetime(), s.randomVariant(s.cfg.DropVariants))
}

// randomPoint 世界范围内的随机整数坐标（两端包含）
func (s *WeatherSystem) randomPoint() (float64, float64) {
	return float64(s.randInt(0, int(s.worldWidth))), float64(s.randInt(0, int(s.worldHeight)))
}

// randomLifetime 随机存活时间（秒）
func (s *WeatherSystem) randomLifetime() float64 {
	return float64(s.randInt(s.cfg.LifetimeMinMs, s.cfg.LifetimeMaxMs)) / 1000
}

func (s *WeatherSystem) randomVariant(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rng.IntN(n)
}

// randInt 返回 [lo, hi] 内的随机整数
func (s *WeatherSystem) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
