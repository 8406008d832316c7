package components

// ParticleComponent 消失粒子：被收获的作物、打落的苹果或倒下的树的白色剪影
// 与 LifetimeComponent 配合使用，到期后删除
type ParticleComponent struct {
	Source string
}

// RainKind 雨的实体种类
type RainKind int

const (
	// RainFloor 地面水花，静止
	RainFloor RainKind = iota
	// RainDrop 下落的雨滴，带速度
	RainDrop
)

// RainComponent 标识雨滴和水花
type RainComponent struct {
	Kind RainKind
}
