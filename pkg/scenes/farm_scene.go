package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
	"github.com/decker502/farm/pkg/game"
	"github.com/decker502/farm/pkg/soil"
	"github.com/decker502/farm/pkg/systems"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ticksPerSecond 过渡速度配置按每帧给出，换算为每秒
const ticksPerSecond = 60

// backgroundColor 地图外区域的颜色
var backgroundColor = color.RGBA{R: 24, G: 32, B: 24, A: 255}

var _ game.Scene = (*FarmScene)(nil)

// FarmScene 农场关卡：持有世界中的所有实体和系统
//
// 每帧流程：
//   - 商店未打开：玩家 → 移动 → 收获 → 天气 → 生命周期 → 镜头
//   - 睡眠过渡和天色每帧都推进
//   - 帧末统一清理标记删除的实体
//
// 绘制顺序：世界 → HUD → 天色 → 睡眠过渡
type FarmScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	cfg           *config.GameConfig
	mapCfg        *config.MapConfig
	images        entities.ImageSource
	settings      *game.SettingsManager

	player ecs.EntityID

	soilSystem       *systems.SoilSystem
	playerSystem     *systems.PlayerSystem
	movementSystem   *systems.MovementSystem
	harvestSystem    *systems.HarvestSystem
	treeSystem       *systems.TreeSystem
	weatherSystem    *systems.WeatherSystem
	lifetimeSystem   *systems.LifetimeSystem
	skySystem        *systems.SkySystem
	transitionSystem *systems.TransitionSystem
	cameraSystem     *systems.CameraSystem
	renderSystem     *systems.RenderSystem

	hudFace text.Face

	// input 每帧读取一次，玩家系统读取同一份快照
	input      func() utils.PlayerInput
	frameInput utils.PlayerInput
}

// FarmSceneOptions 创建农场场景的可选依赖
type FarmSceneOptions struct {
	// Images 贴图来源，为 nil 时所有实体绘制占位矩形
	Images entities.ImageSource
	// Sounds 音效播放器，为 nil 时静音
	Sounds systems.SoundPlayer
	// Settings 用户设置（调试绘制开关），可为 nil
	Settings *game.SettingsManager
	// Input 输入来源，为 nil 时使用键盘
	Input func() utils.PlayerInput
	// Seed 随机数种子
	Seed uint64
}

// NewFarmScene 根据配置和地图创建农场场景
//
// 参数:
//   - cfg: 游戏配置
//   - mapCfg: 地图配置
//   - opts: 可选依赖
//
// 返回:
//   - *FarmScene: 初始化完成的场景，第一天的天气已经判定
func NewFarmScene(cfg *config.GameConfig, mapCfg *config.MapConfig, opts FarmSceneOptions) *FarmScene {
	s := &FarmScene{
		entityManager: ecs.NewEntityManager(),
		cfg:           cfg,
		mapCfg:        mapCfg,
		images:        opts.Images,
		settings:      opts.Settings,
		input:         opts.Input,
		hudFace:       newHUDFace(),
	}
	if s.input == nil {
		s.input = utils.ReadPlayerInput
	}

	rng := rand.New(rand.NewPCG(opts.Seed, 0))
	s.gameState = game.NewGameState(systems.RollRain(rng, &cfg.Rain))

	em := s.entityManager
	worldW, worldH := mapCfg.PixelSize(cfg.TileSize)

	n := entities.NewMapEntities(em, s.images, mapCfg, cfg.TileSize)
	for _, t := range mapCfg.Trees {
		entities.NewTreeEntity(em, s.images, t, &cfg.Trees)
	}
	for _, it := range mapCfg.Interactions {
		entities.NewInteractionEntity(em, it)
	}
	s.player = entities.NewPlayerEntity(em, s.images, &cfg.Player, mapCfg.PlayerStart.X, mapCfg.PlayerStart.Y)

	grid := soil.NewGrid(mapCfg.Height, mapCfg.Width, mapCfg.IsFarmable)
	s.soilSystem = systems.NewSoilSystem(em, grid, cfg, s.images, rng, s.gameState.IsRaining)

	s.playerSystem = systems.NewPlayerSystem(em, s.player, &cfg.Player, s.soilSystem, s.currentInput, worldW, worldH)
	s.playerSystem.SetCallbacks(s.onSleep, s.toggleShop)

	s.treeSystem = systems.NewTreeSystem(em, &cfg.Trees, s.images, rng, s.player, cfg.ParticleDurationMs/1000)
	s.treeSystem.GrowFruit()
	s.playerSystem.SetChopper(s.treeSystem)

	s.movementSystem = systems.NewMovementSystem(em)
	s.harvestSystem = systems.NewHarvestSystem(em, s.soilSystem, s.player, cfg.ParticleDurationMs/1000)
	s.weatherSystem = systems.NewWeatherSystem(em, s.images, &cfg.Rain, rng, worldW, worldH, s.gameState.IsRaining)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)
	s.skySystem = systems.NewSkySystem(&cfg.Sky)
	s.transitionSystem = systems.NewTransitionSystem(em, cfg.Transition.Speed*ticksPerSecond, s.Reset, s.playerSystem.WakeUp)
	s.cameraSystem = systems.NewCameraSystem(em, s.player, float64(cfg.Screen.Width), float64(cfg.Screen.Height))

	s.renderSystem = systems.NewRenderSystem(em)
	s.renderSystem.SetToolTarget(s.playerSystem.ToolTarget)
	if s.settings != nil {
		s.renderSystem.SetDebug(s.settings.Settings().Display.DebugOverlay)
	}

	if opts.Sounds != nil {
		s.soilSystem.SetSoundPlayer(opts.Sounds)
		s.playerSystem.SetSoundPlayer(opts.Sounds)
		s.harvestSystem.SetSoundPlayer(opts.Sounds)
		s.treeSystem.SetSoundPlayer(opts.Sounds)
	}

	log.Printf("[FarmScene] map %s loaded: %d map entities, %d farmable cells, raining=%v",
		mapCfg.Name, n, countFarmable(grid), s.gameState.Raining)
	return s
}

func countFarmable(g *soil.Grid) int {
	n := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Farmable(r, c) {
				n++
			}
		}
	}
	return n
}

func (s *FarmScene) currentInput() utils.PlayerInput {
	return s.frameInput
}

// Update 推进一帧
func (s *FarmScene) Update(deltaTime float64) {
	s.frameInput = s.input()

	if s.frameInput.ToggleDebug {
		s.toggleDebug()
	}

	if s.gameState.ShopActive {
		if s.frameInput.Interact || s.frameInput.CloseShop {
			s.toggleShop()
		}
	} else {
		s.playerSystem.Update(deltaTime)
		s.movementSystem.Update(deltaTime)
		s.harvestSystem.Update(deltaTime)
		s.weatherSystem.Update(deltaTime)
		s.lifetimeSystem.Update(deltaTime)
		s.cameraSystem.Update(deltaTime)
	}

	s.transitionSystem.Update(deltaTime)
	s.skySystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制世界、HUD 和全屏遮罩
func (s *FarmScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	offsetX, offsetY := s.cameraSystem.Offset()
	s.renderSystem.Draw(screen, offsetX, offsetY)

	s.drawHUD(screen)

	s.skySystem.Draw(screen)
	s.transitionSystem.Draw(screen)
}

// Reset 日切换：作物生长、清除水分、重新判定天气、树上重新长苹果、天色复位
// 由睡眠过渡在画面全黑时调用
func (s *FarmScene) Reset() {
	raining := s.soilSystem.DayReset()
	s.gameState.StartNewDay(raining)
	s.treeSystem.GrowFruit()
	s.skySystem.Reset()
	log.Printf("[FarmScene] day %d begins, raining=%v", s.gameState.Day, raining)
}

func (s *FarmScene) onSleep() {
	s.transitionSystem.Start()
}

func (s *FarmScene) toggleShop() {
	active := s.gameState.ToggleShop()
	log.Printf("[FarmScene] shop active=%v", active)
}

func (s *FarmScene) toggleDebug() {
	var enabled bool
	if s.settings != nil {
		enabled = s.settings.ToggleDebugOverlay()
	} else {
		enabled = !s.renderSystem.Debug()
	}
	s.renderSystem.SetDebug(enabled)
}

// GameState 返回当前游戏状态
func (s *FarmScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回场景的实体管理器
func (s *FarmScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Trees 返回树系统
func (s *FarmScene) Trees() *systems.TreeSystem {
	return s.treeSystem
}

// Soil 返回土壤层
func (s *FarmScene) Soil() *systems.SoilSystem {
	return s.soilSystem
}

// Player 返回玩家实体
func (s *FarmScene) Player() ecs.EntityID {
	return s.player
}

// CameraOffset 返回当前镜头偏移
func (s *FarmScene) CameraOffset() (float64, float64) {
	return s.cameraSystem.Offset()
}

// Sky 返回天色系统
func (s *FarmScene) Sky() *systems.SkySystem {
	return s.skySystem
}
