package soil

import (
	"strings"
	"testing"
)

// gridFromLayout 根据字符布局创建网格：'F' 可耕，其它字符不可耕
func gridFromLayout(layout ...string) *Grid {
	return NewGrid(len(layout), len(layout[0]), func(r, c int) bool {
		return layout[r][c] == 'F'
	})
}

func allFarmable(rows, cols int) *Grid {
	return NewGrid(rows, cols, func(int, int) bool { return true })
}

func TestNewGridFarmable(t *testing.T) {
	g := gridFromLayout(
		"....",
		".FF.",
		"....",
	)

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("expected 3x4, got %dx%d", g.Rows(), g.Cols())
	}
	if !g.Farmable(1, 1) || !g.Farmable(1, 2) {
		t.Error("expected (1,1) and (1,2) farmable")
	}
	if g.Farmable(0, 0) || g.Farmable(2, 3) {
		t.Error("border cells should not be farmable")
	}
}

func TestTillRequiresFarmable(t *testing.T) {
	g := gridFromLayout(
		"F.",
	)

	if !g.Till(0, 0) {
		t.Error("tilling a farmable cell should change state")
	}
	if g.Till(0, 1) {
		t.Error("tilling a non-farmable cell should be a no-op")
	}
	if g.Tilled(0, 1) {
		t.Error("non-farmable cell must never be tilled")
	}
}

func TestTillIdempotent(t *testing.T) {
	g := allFarmable(2, 2)

	if !g.Till(1, 1) {
		t.Fatal("first till should change state")
	}
	before := g.Flags(1, 1)
	if g.Till(1, 1) {
		t.Error("second till should report no change")
	}
	if g.Flags(1, 1) != before {
		t.Errorf("flags changed on repeated till: %s -> %s", before, g.Flags(1, 1))
	}
}

func TestWaterRequiresTilled(t *testing.T) {
	g := allFarmable(1, 2)
	g.Till(0, 0)

	if !g.Water(0, 0) {
		t.Error("watering a tilled cell should change state")
	}
	if g.Water(0, 0) {
		t.Error("watering an already watered cell should be a no-op")
	}
	if g.Water(0, 1) {
		t.Error("watering an untilled cell should be a no-op")
	}
	if err := g.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestWaterAllAndClearWater(t *testing.T) {
	g := allFarmable(3, 3)
	g.Till(0, 0)
	g.Till(1, 1)
	g.Till(2, 2)
	g.Water(1, 1)

	changed := g.WaterAll()
	want := []Cell{{0, 0}, {2, 2}}
	if len(changed) != len(want) {
		t.Fatalf("expected %d newly watered cells, got %v", len(want), changed)
	}
	for i := range want {
		if changed[i] != want[i] {
			t.Errorf("changed[%d] = %v, want %v", i, changed[i], want[i])
		}
	}
	for _, c := range g.TilledCells() {
		if !g.Watered(c.Row, c.Col) {
			t.Errorf("cell %v should be watered", c)
		}
	}

	if n := g.ClearWater(); n != 3 {
		t.Errorf("expected 3 cleared, got %d", n)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if g.Watered(r, c) {
				t.Errorf("cell (%d,%d) still watered", r, c)
			}
		}
	}
	// 开垦状态不受影响
	if len(g.TilledCells()) != 3 {
		t.Error("ClearWater must not touch Tilled")
	}
}

func TestPlantedFlag(t *testing.T) {
	g := allFarmable(1, 2)
	g.Till(0, 0)

	if g.SetPlanted(0, 1) {
		t.Error("planting an untilled cell should be a no-op")
	}
	if !g.SetPlanted(0, 0) {
		t.Error("planting a tilled cell should change state")
	}
	if g.SetPlanted(0, 0) {
		t.Error("planting twice should be a no-op")
	}

	g.ClearPlanted(0, 0)
	if g.Planted(0, 0) {
		t.Error("ClearPlanted should remove the flag")
	}
	if !g.Tilled(0, 0) {
		t.Error("ClearPlanted must keep Tilled")
	}
}

func TestInvariantsHoldUnderRandomOperations(t *testing.T) {
	g := gridFromLayout(
		".FFF.",
		"FF.FF",
		".FFF.",
	)

	// 固定的伪随机操作序列
	seq := uint32(12345)
	next := func(n int) int {
		seq = seq*1103515245 + 12345
		return int(seq>>16) % n
	}

	for i := 0; i < 500; i++ {
		r, c := next(g.Rows()), next(g.Cols())
		switch next(6) {
		case 0:
			g.Till(r, c)
		case 1:
			g.Water(r, c)
		case 2:
			g.SetPlanted(r, c)
		case 3:
			g.ClearPlanted(r, c)
		case 4:
			g.WaterAll()
		case 5:
			g.ClearWater()
		}
		if err := g.CheckInvariants(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g := allFarmable(2, 2)

	tests := []struct {
		name string
		fn   func()
	}{
		{"tilled negative row", func() { g.Tilled(-1, 0) }},
		{"watered past col", func() { g.Watered(0, 2) }},
		{"farmable past row", func() { g.Farmable(2, 0) }},
		{"till out of range", func() { g.Till(5, 5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("unexpected panic value: %v", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestCellFlagsString(t *testing.T) {
	if got := (Farmable | Tilled | Watered).String(); got != "FXW" {
		t.Errorf("expected FXW, got %s", got)
	}
	if got := CellFlags(0).String(); got != "-" {
		t.Errorf("expected -, got %s", got)
	}
}
