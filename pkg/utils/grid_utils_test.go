package utils

import (
	"math"
	"testing"
)

// TestPointToCell 测试世界坐标到网格坐标的转换
func TestPointToCell(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantRow int
		wantCol int
		wantOK  bool
	}{
		{"左上角格子原点", 0, 0, 0, 0, true},
		{"格子内部", 100, 70, 1, 1, true},
		{"右边界属于下一格", 64, 10, 0, 1, true},
		{"最后一个格子", 319.9, 191.9, 2, 4, true},
		{"超出右边界", 320, 10, 0, 0, false},
		{"超出下边界", 10, 192, 0, 0, false},
		{"负坐标", -1, 10, 0, 0, false},
		{"NaN", math.NaN(), 10, 0, 0, false},
		{"正无穷", math.Inf(1), 10, 0, 0, false},
		{"负无穷", 10, math.Inf(-1), 0, 0, false},
		{"超大坐标", 1e300, 10, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := PointToCell(tt.x, tt.y, 64, 3, 5)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (row != tt.wantRow || col != tt.wantCol) {
				t.Errorf("got (%d,%d), want (%d,%d)", row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	r := CellRect(2, 3, 64)
	if r.X != 192 || r.Y != 128 || r.W != 64 || r.H != 64 {
		t.Errorf("unexpected rect %+v", r)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"相交", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"包含", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"边缘相接", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"分离", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"零面积", Rect{X: 5, Y: 5, W: 0, H: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps not symmetric")
			}
		})
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 64, H: 80}
	got := r.Inflate(-26, 32)

	cx, cy := r.Center()
	gx, gy := got.Center()
	if cx != gx || cy != gy {
		t.Errorf("center moved: (%v,%v) -> (%v,%v)", cx, cy, gx, gy)
	}
	if got.W != 38 || got.H != 112 {
		t.Errorf("unexpected size %vx%v", got.W, got.H)
	}

	// 收缩到负值时钳制为 0
	if z := r.Inflate(-100, 0); z.W != 0 {
		t.Errorf("expected width clamped to 0, got %v", z.W)
	}
}

func TestAnchorMidBottom(t *testing.T) {
	r := AnchorMidBottom(96, 112, 48, 80)
	x, y := r.MidBottom()
	if x != 96 || y != 112 {
		t.Errorf("MidBottom = (%v,%v), want (96,112)", x, y)
	}
	if r.X != 72 || r.Y != 32 {
		t.Errorf("unexpected origin (%v,%v)", r.X, r.Y)
	}
}
