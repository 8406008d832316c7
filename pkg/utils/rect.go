package utils

// Rect 轴对齐矩形（左上角 + 宽高），世界坐标
type Rect struct {
	X, Y, W, H float64
}

// Left/Right/Top/Bottom 边界
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterY 返回垂直中心，渲染排序的第二关键字
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// MidBottom 返回底边中点
func (r Rect) MidBottom() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H
}

// ContainsPoint 点是否在矩形内（左/上包含，右/下不包含）
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlaps 两个矩形是否有重叠面积
// 仅边缘相接不算重叠
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inflate 以中心为基准扩大（负值缩小）矩形
// dw/dh 为宽高的总变化量
func (r Rect) Inflate(dw, dh float64) Rect {
	cx, cy := r.Center()
	w, h := r.W+dw, r.H+dh
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// AnchorMidBottom 返回给定尺寸、底边中点位于 (x, y) 的矩形
func AnchorMidBottom(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h, W: w, H: h}
}

// AnchorCenter 返回给定尺寸、中心位于 (x, y) 的矩形
func AnchorCenter(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}
