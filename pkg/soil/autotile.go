package soil

// Variant 土壤贴图变体，值与 soil 资源目录下的文件名一致
type Variant string

const (
	VariantIsolated Variant = "o"
	VariantAll      Variant = "x"

	// 仅水平相邻
	VariantRightEnd   Variant = "r"  // 只有左邻居
	VariantLeftEnd    Variant = "l"  // 只有右邻居
	VariantHorizontal Variant = "lr" // 左右都有

	// 仅垂直相邻
	VariantBottomEnd Variant = "b"  // 只有上邻居
	VariantTopEnd    Variant = "t"  // 只有下邻居
	VariantVertical  Variant = "tb" // 上下都有

	// 拐角
	VariantTopRight    Variant = "tr" // 左 + 下
	VariantTopLeft     Variant = "tl" // 右 + 下
	VariantBottomRight Variant = "br" // 上 + 左
	VariantBottomLeft  Variant = "bl" // 上 + 右

	// T 形
	VariantTeeRight  Variant = "tbr" // 上下右
	VariantTeeLeft   Variant = "tbl" // 上下左
	VariantTeeBottom Variant = "lrb" // 左右上
	VariantTeeTop    Variant = "lrt" // 左右下
)

// AllVariants 返回全部变体，用于预加载贴图
func AllVariants() []Variant {
	return []Variant{
		VariantIsolated, VariantAll,
		VariantRightEnd, VariantLeftEnd, VariantHorizontal,
		VariantBottomEnd, VariantTopEnd, VariantVertical,
		VariantTopRight, VariantTopLeft, VariantBottomRight, VariantBottomLeft,
		VariantTeeRight, VariantTeeLeft, VariantTeeBottom, VariantTeeTop,
	}
}

// Neighbors 四邻域开垦状态
type Neighbors struct {
	Top, Bottom, Left, Right bool
}

// NeighborsOf 查询格子四邻域的开垦状态，网格外的邻居视为未开垦
func NeighborsOf(g *Grid, row, col int) Neighbors {
	tilled := func(r, c int) bool {
		return g.InBounds(r, c) && g.Tilled(r, c)
	}
	return Neighbors{
		Top:    tilled(row-1, col),
		Bottom: tilled(row+1, col),
		Left:   tilled(row, col-1),
		Right:  tilled(row, col+1),
	}
}

// Resolve 返回格子应显示的土壤贴图变体
func Resolve(g *Grid, row, col int) Variant {
	return ResolveNeighbors(NeighborsOf(g, row, col))
}

// ResolveNeighbors 将邻域模式映射为贴图变体
//
// 规则按固定顺序求值，后面的匹配覆盖前面的结果：
// 四面 → 仅水平 → 仅垂直 → 拐角 → T 形。顺序不可调整。
func ResolveNeighbors(n Neighbors) Variant {
	t, b, l, r := n.Top, n.Bottom, n.Left, n.Right

	v := VariantIsolated

	// 四面
	if t && r && l && b {
		v = VariantAll
	}

	// 仅水平
	if l && !(t || r || b) {
		v = VariantRightEnd
	}
	if r && !(t || l || b) {
		v = VariantLeftEnd
	}
	if l && r && !(t || b) {
		v = VariantHorizontal
	}

	// 仅垂直
	if t && !(l || r || b) {
		v = VariantBottomEnd
	}
	if b && !(t || r || l) {
		v = VariantTopEnd
	}
	if t && b && !(r || l) {
		v = VariantVertical
	}

	// 拐角
	if l && b && !(t || r) {
		v = VariantTopRight
	}
	if r && b && !(t || l) {
		v = VariantTopLeft
	}
	if t && l && !(b || r) {
		v = VariantBottomRight
	}
	if t && r && !(l || b) {
		v = VariantBottomLeft
	}

	// T 形
	if t && b && r && !l {
		v = VariantTeeRight
	}
	if t && b && l && !r {
		v = VariantTeeLeft
	}
	if l && t && r && !b {
		v = VariantTeeBottom
	}
	if b && l && r && !t {
		v = VariantTeeTop
	}

	return v
}
