// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：
// 加载配置和地图、创建音频和资源管理器、通过场景管理器进入农场。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"time"

	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/embedded"
	"github.com/decker502/farm/pkg/game"
	"github.com/decker502/farm/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	appName         = "farm"
	gameConfigPath  = "data/game.yaml"
	mapConfigDir    = "data/maps"
	audioSampleRate = 48000
	backgroundMusic = "music"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MapName 要加载的地图（data/maps 下不带扩展名的文件名）
	MapName string
	// Seed 随机数种子，0 表示使用当前时间
	Seed uint64
	// Debug 启动时打开调试绘制（碰撞盒、工具作用点）
	Debug bool
	// AssetsDir 贴图和音频所在目录
	AssetsDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	gameConfig      *config.GameConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(gameConfigPath)
	if err != nil {
		return nil, err
	}

	mapName := cfg.MapName
	if mapName == "" {
		mapName = "farm"
	}
	mapConfig, err := loadMapConfig(mapName)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	assetsDir := cfg.AssetsDir
	if assetsDir == "" {
		assetsDir = "assets"
	}

	// 设置存储，打开失败时只保留内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}
	if cfg.Debug && !settingsManager.Settings().Display.DebugOverlay {
		settingsManager.ToggleDebugOverlay()
	}

	audioContext := audio.NewContext(audioSampleRate)
	resourceManager := game.NewResourceManager(os.DirFS(assetsDir), audioContext)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{"hoe", "plant", "water", "success", "axe"})
	log.Printf("[App] AudioManager initialized, assets from %s", assetsDir)

	newScene := func(m *config.MapConfig) game.Scene {
		return scenes.NewFarmScene(gameConfig, m, scenes.FarmSceneOptions{
			Images:   resourceManager,
			Sounds:   audioManager,
			Settings: settingsManager,
			Seed:     seed,
		})
	}
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		m, err := loadMapConfig(name)
		if err != nil {
			return nil, err
		}
		return newScene(m), nil
	})
	sceneManager.SwitchTo(newScene(mapConfig))

	audioManager.PlayMusic(backgroundMusic)
	if settingsManager.Settings().Display.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		gameConfig:      gameConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// readData 优先读取磁盘上的数据文件，方便修改配置后直接运行；
// 不存在时读取嵌入的副本
func readData(p string) ([]byte, error) {
	data, err := os.ReadFile(p)
	if err == nil {
		log.Printf("[Config] 使用磁盘文件: %s", p)
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return embedded.ReadFile(p)
}

func loadGameConfig(p string) (*config.GameConfig, error) {
	data, err := readData(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Config] %s 不存在，使用默认配置", p)
			return config.DefaultGameConfig(), nil
		}
		return nil, fmt.Errorf("游戏配置读取失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置解析失败 %s: %w", p, err)
	}
	return cfg, nil
}

func loadMapConfig(name string) (*config.MapConfig, error) {
	p := path.Join(mapConfigDir, name+".yaml")
	data, err := readData(p)
	if err != nil {
		return nil, fmt.Errorf("地图读取失败 %s: %w", p, err)
	}
	m, err := config.ParseMapConfig(data)
	if err != nil {
		return nil, fmt.Errorf("地图解析失败 %s: %w", p, err)
	}
	return m, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			a.setFullscreenSetting(false)
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			a.setFullscreenSetting(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) setFullscreenSetting(on bool) {
	a.settingsManager.Update(func(s *game.GameSettings) { s.Display.Fullscreen = on })
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// ScreenSize 返回配置的窗口尺寸
func (a *App) ScreenSize() (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// Close 停止音乐并保存设置，在游戏窗口关闭后调用
func (a *App) Close() error {
	a.audioManager.StopMusic()
	if err := a.settingsManager.Save(); err != nil {
		return fmt.Errorf("设置保存失败: %w", err)
	}
	return nil
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
