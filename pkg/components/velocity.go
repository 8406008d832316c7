package components

// VelocityComponent 匀速运动（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
