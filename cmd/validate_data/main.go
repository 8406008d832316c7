// validate_data 校验 data/ 下的游戏配置和所有地图
//
// 用法: go run ./cmd/validate_data [-dir data]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decker502/farm/pkg/config"
)

var dataDir = flag.String("dir", "data", "数据目录")

func main() {
	flag.Parse()

	failed := 0

	gamePath := filepath.Join(*dataDir, "game.yaml")
	cfg, err := config.LoadGameConfig(gamePath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", gamePath, err)
		failed++
	} else {
		fmt.Printf("✅ %s: 屏幕 %dx%d, 格子 %.0f, 作物 %d 种\n",
			gamePath, cfg.Screen.Width, cfg.Screen.Height, cfg.TileSize, len(cfg.Crops))
	}

	maps, err := filepath.Glob(filepath.Join(*dataDir, "maps", "*.yaml"))
	if err != nil {
		fmt.Printf("❌ 无法扫描地图目录: %v\n", err)
		os.Exit(1)
	}
	for _, p := range maps {
		m, err := config.LoadMapConfig(p)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", p, err)
			failed++
			continue
		}
		farmable := 0
		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				if m.IsFarmable(row, col) {
					farmable++
				}
			}
		}
		fmt.Printf("✅ %s: %dx%d, 可耕地 %d 格, 对象 %d, 树 %d, 交互区域 %d\n",
			p, m.Width, m.Height, farmable, len(m.Objects), len(m.Trees), len(m.Interactions))
	}

	if failed > 0 {
		fmt.Printf("\n❌ %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
	fmt.Printf("\n✅ 所有数据文件校验通过\n")
}
