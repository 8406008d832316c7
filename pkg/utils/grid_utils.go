package utils

import "math"

// PointToCell 将世界坐标转换为网格坐标
// 参数:
//   - x, y: 世界坐标（像素）
//   - tileSize: 格子边长（像素）
//   - rows, cols: 网格尺寸
//
// 返回:
//   - row, col: 网格坐标
//   - ok: 坐标是否落在网格内（左/上边界包含，右/下边界不包含）
func PointToCell(x, y, tileSize float64, rows, cols int) (row, col int, ok bool) {
	// 先在浮点域判断范围，NaN、Inf 和超大值转换为 int 的结果未定义
	if !(tileSize > 0) || !(x >= 0) || !(y >= 0) {
		return 0, 0, false
	}
	if x >= float64(cols)*tileSize || y >= float64(rows)*tileSize {
		return 0, 0, false
	}
	col = int(math.Floor(x / tileSize))
	row = int(math.Floor(y / tileSize))
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

// CellRect 返回格子在世界坐标中的矩形
func CellRect(row, col int, tileSize float64) Rect {
	return Rect{
		X: float64(col) * tileSize,
		Y: float64(row) * tileSize,
		W: tileSize,
		H: tileSize,
	}
}
