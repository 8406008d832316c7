// verify_autotile 开垦地图上所有可耕地，以文本形式打印每格的土壤贴图变体
//
// 用法: go run ./cmd/verify_autotile [-map data/maps/farm.yaml]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/soil"
)

var mapPath = flag.String("map", "data/maps/farm.yaml", "地图文件")

func main() {
	flag.Parse()

	m, err := config.LoadMapConfig(*mapPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	grid := soil.NewGrid(m.Height, m.Width, m.IsFarmable)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			grid.Till(row, col)
		}
	}
	if err := grid.CheckInvariants(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	counts := make(map[soil.Variant]int)
	for row := 0; row < m.Height; row++ {
		cells := make([]string, m.Width)
		for col := 0; col < m.Width; col++ {
			if !grid.Tilled(row, col) {
				cells[col] = "."
				continue
			}
			v := soil.Resolve(grid, row, col)
			counts[v]++
			cells[col] = string(v)
		}
		fmt.Println(strings.Join(cells, "\t"))
	}

	fmt.Println()
	for _, v := range soil.AllVariants() {
		if counts[v] > 0 {
			fmt.Printf("%-6s %d\n", v, counts[v])
		}
	}
}
