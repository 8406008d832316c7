package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/farm/pkg/app"
	"github.com/decker502/farm/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	mapName   = flag.String("map", "farm", "要加载的地图（data/maps 下的文件名）")
	seed      = flag.Uint64("seed", 0, "随机数种子，0 表示使用当前时间")
	debug     = flag.Bool("debug", false, "启动时显示碰撞盒和工具作用点")
	assetsDir = flag.String("assets", "assets", "贴图和音频目录")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		MapName:   *mapName,
		Seed:      *seed,
		Debug:     *debug,
		AssetsDir: *assetsDir,
	})
	if err != nil {
		// 非 verbose 模式下 NewApp 已关闭日志输出，致命错误必须写到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Farm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
