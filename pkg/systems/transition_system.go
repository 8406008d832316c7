package systems

import (
	"image/color"
	"log"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionSystem 睡眠过渡
//
// 流程: 画面从 255 渐暗到 0 → 执行日切换 → 渐亮回 255 → 玩家醒来
type TransitionSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID

	onReset func()
	onWake  func()

	overlay *ebiten.Image
}

// NewTransitionSystem 创建过渡系统
//
// 参数:
//   - em: 实体管理器
//   - speed: 每秒颜色变化量
//   - onReset: 完全变黑时调用（日切换）
//   - onWake: 完全恢复时调用
func NewTransitionSystem(em *ecs.EntityManager, speed float64, onReset, onWake func()) *TransitionSystem {
	ts := &TransitionSystem{
		entityManager: em,
		onReset:       onReset,
		onWake:        onWake,
	}
	ts.entity = em.CreateEntity()
	ecs.AddComponent(em, ts.entity, &components.TransitionComponent{
		Phase: components.TransitionIdle,
		Level: 255,
		Speed: speed,
	})
	return ts
}

func (s *TransitionSystem) state() *components.TransitionComponent {
	tc, _ := ecs.GetComponent[*components.TransitionComponent](s.entityManager, s.entity)
	return tc
}

// Start 开始过渡，已在过渡中时忽略
func (s *TransitionSystem) Start() {
	tc := s.state()
	if tc == nil || tc.Phase != components.TransitionIdle {
		return
	}
	tc.Phase = components.TransitionFadeOut
	tc.Level = 255
	log.Printf("[TransitionSystem] fade out")
}

// Active 是否正在过渡
func (s *TransitionSystem) Active() bool {
	tc := s.state()
	return tc != nil && tc.Phase != components.TransitionIdle
}

// Level 当前遮罩亮度 [0, 255]
func (s *TransitionSystem) Level() float64 {
	if tc := s.state(); tc != nil {
		return tc.Level
	}
	return 255
}

// Update 推进过渡
func (s *TransitionSystem) Update(deltaTime float64) {
	tc := s.state()
	if tc == nil {
		return
	}
	switch tc.Phase {
	case components.TransitionFadeOut:
		tc.Level -= tc.Speed * deltaTime
		if tc.Level <= 0 {
			tc.Level = 0
			tc.Phase = components.TransitionFadeIn
			if s.onReset != nil {
				s.onReset()
			}
		}
	case components.TransitionFadeIn:
		tc.Level += tc.Speed * deltaTime
		if tc.Level >= 255 {
			tc.Level = 255
			tc.Phase = components.TransitionIdle
			log.Printf("[TransitionSystem] fade in complete")
			if s.onWake != nil {
				s.onWake()
			}
		}
	}
}

// Draw 过渡期间以正片叠底绘制灰度遮罩
func (s *TransitionSystem) Draw(screen *ebiten.Image) {
	if !s.Active() {
		return
	}
	v := uint8(s.Level())
	s.overlay = drawMultiply(screen, s.overlay, color.RGBA{R: v, G: v, B: v, A: 255})
}
