package components

// TransitionPhase 睡眠过渡阶段
type TransitionPhase int

const (
	// TransitionIdle 没有过渡
	TransitionIdle TransitionPhase = iota
	// TransitionFadeOut 画面逐渐变黑
	TransitionFadeOut
	// TransitionFadeIn 画面逐渐恢复
	TransitionFadeIn
)

// TransitionComponent 睡眠过渡状态（单例）
// Level 在 [0, 255] 间变化，255 表示无遮罩
type TransitionComponent struct {
	Phase TransitionPhase
	Level float64
	// Speed 每秒变化量
	Speed float64
}
