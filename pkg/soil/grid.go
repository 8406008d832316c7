// Package soil 实现农田土壤网格及其自动拼接（autotile）规则
//
// Grid 只保存模拟状态（每个格子的标记位），不持有任何渲染数据；
// 土壤/水面贴图实体由 systems.SoilSystem 根据网格状态派生，随时可以重建。
package soil

import "fmt"

// CellFlags 单个格子的状态标记位
type CellFlags uint8

const (
	// Farmable 可耕地，由地图决定，构造后不可修改
	Farmable CellFlags = 1 << iota
	// Tilled 已开垦
	Tilled
	// Watered 已浇水（要求 Tilled）
	Watered
	// Planted 已播种（要求 Tilled）
	Planted
)

// Has 检查是否包含全部指定标记
func (f CellFlags) Has(mask CellFlags) bool {
	return f&mask == mask
}

func (f CellFlags) String() string {
	s := ""
	for _, p := range []struct {
		flag CellFlags
		ch   byte
	}{{Farmable, 'F'}, {Tilled, 'X'}, {Watered, 'W'}, {Planted, 'P'}} {
		if f.Has(p.flag) {
			s += string(p.ch)
		}
	}
	if s == "" {
		return "-"
	}
	return s
}

// Cell 网格坐标
type Cell struct {
	Row, Col int
}

// Grid 稠密二维土壤网格
//
// 所有写操作都由 SoilSystem 发起（单写者）。
// 越界访问属于坐标推导错误，直接 panic。
type Grid struct {
	rows, cols int
	cells      []CellFlags
}

// NewGrid 创建 rows x cols 的网格
// isFarmable 为 nil 时所有格子都不可耕
func NewGrid(rows, cols int, isFarmable func(row, col int) bool) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("soil: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellFlags, rows*cols),
	}
	if isFarmable != nil {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if isFarmable(r, c) {
					g.cells[r*cols+c] = Farmable
				}
			}
		}
	}
	return g
}

// Rows 返回行数
func (g *Grid) Rows() int { return g.rows }

// Cols 返回列数
func (g *Grid) Cols() int { return g.cols }

// InBounds 检查坐标是否在网格内
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("soil: cell (%d,%d) out of range %dx%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Flags 返回格子的全部标记
func (g *Grid) Flags(row, col int) CellFlags {
	return g.cells[g.index(row, col)]
}

// Farmable 格子是否可耕
func (g *Grid) Farmable(row, col int) bool { return g.Flags(row, col).Has(Farmable) }

// Tilled 格子是否已开垦
func (g *Grid) Tilled(row, col int) bool { return g.Flags(row, col).Has(Tilled) }

// Watered 格子是否已浇水
func (g *Grid) Watered(row, col int) bool { return g.Flags(row, col).Has(Watered) }

// Planted 格子是否已播种
func (g *Grid) Planted(row, col int) bool { return g.Flags(row, col).Has(Planted) }

// Till 开垦格子
// 只有可耕且尚未开垦的格子会被修改，返回是否发生了变化
func (g *Grid) Till(row, col int) bool {
	i := g.index(row, col)
	f := g.cells[i]
	if !f.Has(Farmable) || f.Has(Tilled) {
		return false
	}
	g.cells[i] = f | Tilled
	return true
}

// Water 为已开垦且未浇水的格子浇水，返回是否发生了变化
func (g *Grid) Water(row, col int) bool {
	i := g.index(row, col)
	f := g.cells[i]
	if !f.Has(Tilled) || f.Has(Watered) {
		return false
	}
	g.cells[i] = f | Watered
	return true
}

// WaterAll 为所有已开垦且未浇水的格子浇水
// 返回本次新浇水的格子（行优先顺序），调用方为每个格子创建水面贴图
func (g *Grid) WaterAll() []Cell {
	var changed []Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c
			if g.cells[i].Has(Tilled) && !g.cells[i].Has(Watered) {
				g.cells[i] |= Watered
				changed = append(changed, Cell{Row: r, Col: c})
			}
		}
	}
	return changed
}

// ClearWater 清除所有格子的浇水标记，返回被清除的格子数量
func (g *Grid) ClearWater() int {
	n := 0
	for i, f := range g.cells {
		if f.Has(Watered) {
			g.cells[i] = f &^ Watered
			n++
		}
	}
	return n
}

// SetPlanted 标记格子已播种
// 只有已开垦且未播种的格子会被修改，返回是否发生了变化
func (g *Grid) SetPlanted(row, col int) bool {
	i := g.index(row, col)
	f := g.cells[i]
	if !f.Has(Tilled) || f.Has(Planted) {
		return false
	}
	g.cells[i] = f | Planted
	return true
}

// ClearPlanted 清除播种标记（植物被收获或移除）
func (g *Grid) ClearPlanted(row, col int) {
	i := g.index(row, col)
	g.cells[i] &^= Planted
}

// TilledCells 返回所有已开垦的格子（行优先顺序）
func (g *Grid) TilledCells() []Cell {
	var cells []Cell
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c].Has(Tilled) {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// CheckInvariants 校验 Watered ⇒ Tilled、Planted ⇒ Tilled
// 供测试和调试模式使用
func (g *Grid) CheckInvariants() error {
	for i, f := range g.cells {
		r, c := i/g.cols, i%g.cols
		if f.Has(Watered) && !f.Has(Tilled) {
			return fmt.Errorf("cell (%d,%d) is watered but not tilled: %s", r, c, f)
		}
		if f.Has(Planted) && !f.Has(Tilled) {
			return fmt.Errorf("cell (%d,%d) is planted but not tilled: %s", r, c, f)
		}
		if f.Has(Tilled) && !f.Has(Farmable) {
			return fmt.Errorf("cell (%d,%d) is tilled but not farmable: %s", r, c, f)
		}
	}
	return nil
}
