package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 场景合成：按深度层和垂直中心排序后绘制所有可见实体
//
// 绘制顺序：
//   - 第一关键字：DepthComponent.Layer（小的先画）
//   - 第二关键字：包围盒垂直中心（越靠下越晚画，形成遮挡）
//   - 两者都相同时按实体 ID（创建顺序）
//
// 不包括：
//   - 天色、睡眠过渡遮罩（由 SkySystem / TransitionSystem 在世界之上绘制）
//   - HUD
type RenderSystem struct {
	entityManager *ecs.EntityManager
	debug         bool

	// toolTarget 调试模式下绘制的工具作用点
	toolTarget func() (float64, float64, bool)

	// order 复用的排序缓冲
	order []drawItem
}

type drawItem struct {
	id      ecs.EntityID
	layer   types.DepthLayer
	centerY float64
}

// 贴图缺失时各层的占位颜色
var placeholderColors = map[types.DepthLayer]color.RGBA{
	types.LayerWater:       {R: 64, G: 128, B: 200, A: 255},
	types.LayerGround:      {R: 96, G: 160, B: 80, A: 255},
	types.LayerSoil:        {R: 120, G: 80, B: 48, A: 255},
	types.LayerSoilWater:   {R: 80, G: 56, B: 40, A: 160},
	types.LayerRainFloor:   {R: 180, G: 200, B: 255, A: 120},
	types.LayerHouseBottom: {R: 150, G: 110, B: 80, A: 255},
	types.LayerGroundPlant: {R: 60, G: 200, B: 60, A: 255},
	types.LayerMain:        {R: 230, G: 200, B: 60, A: 255},
	types.LayerHouseTop:    {R: 170, G: 60, B: 50, A: 255},
	types.LayerFruit:       {R: 240, G: 120, B: 40, A: 255},
	types.LayerRainDrops:   {R: 200, G: 220, B: 255, A: 200},
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// SetDebug 开关调试绘制（碰撞盒、工具作用点）
func (s *RenderSystem) SetDebug(enabled bool) {
	s.debug = enabled
}

// Debug 是否开启调试绘制
func (s *RenderSystem) Debug() bool {
	return s.debug
}

// SetToolTarget 设置调试模式下工具作用点的来源
func (s *RenderSystem) SetToolTarget(f func() (float64, float64, bool)) {
	s.toolTarget = f
}

// DrawOrder 返回本帧的绘制顺序
// 只包含同时拥有位置、精灵、深度组件且未被标记删除的实体
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.SpriteComponent,
		*components.DepthComponent,
	](s.entityManager)

	s.order = s.order[:0]
	for _, id := range ids {
		if !s.entityManager.IsAlive(id) {
			continue
		}
		depth, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, id)
		rect, _ := EntityRect(s.entityManager, id)
		s.order = append(s.order, drawItem{id: id, layer: depth.Layer, centerY: rect.CenterY()})
	}

	// ids 已按 ID 升序，稳定排序保证相同关键字时保持创建顺序
	sort.SliceStable(s.order, func(i, j int) bool {
		a, b := s.order[i], s.order[j]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		return a.centerY < b.centerY
	})

	result := make([]ecs.EntityID, len(s.order))
	for i, item := range s.order {
		result[i] = item.id
	}
	return result
}

// Draw 以镜头偏移绘制世界
//
// 参数:
//   - screen: 绘制目标
//   - offsetX, offsetY: 镜头偏移（screen = world - offset）
func (s *RenderSystem) Draw(screen *ebiten.Image, offsetX, offsetY float64) {
	bounds := screen.Bounds()
	screenW, screenH := float64(bounds.Dx()), float64(bounds.Dy())

	for _, id := range s.DrawOrder() {
		rect, _ := EntityRect(s.entityManager, id)
		x, y := rect.X-offsetX, rect.Y-offsetY

		// 屏幕外剔除
		if x+rect.W < 0 || y+rect.H < 0 || x > screenW || y > screenH {
			continue
		}

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			depth, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, id)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(rect.W), float32(rect.H), placeholderColors[depth.Layer], false)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		ib := sprite.Image.Bounds()
		if ib.Dx() > 0 && ib.Dy() > 0 && (float64(ib.Dx()) != rect.W || float64(ib.Dy()) != rect.H) {
			op.GeoM.Scale(rect.W/float64(ib.Dx()), rect.H/float64(ib.Dy()))
		}
		op.GeoM.Translate(x, y)
		screen.DrawImage(sprite.Image, op)
	}

	if s.debug {
		s.drawDebug(screen, offsetX, offsetY)
	}
}

// drawDebug 绘制碰撞盒和工具作用点
func (s *RenderSystem) drawDebug(screen *ebiten.Image, offsetX, offsetY float64) {
	hitboxColor := color.RGBA{R: 255, A: 255}
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.HitboxComponent](s.entityManager) {
		box, ok := HitboxRect(s.entityManager, id)
		if !ok {
			continue
		}
		vector.StrokeRect(screen,
			float32(box.X-offsetX), float32(box.Y-offsetY),
			float32(box.W), float32(box.H),
			2, hitboxColor, false)
	}

	if s.toolTarget == nil {
		return
	}
	if x, y, ok := s.toolTarget(); ok {
		vector.DrawFilledCircle(screen, float32(x-offsetX), float32(y-offsetY), 4, color.RGBA{B: 255, A: 255}, true)
	}
}
