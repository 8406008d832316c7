package systems

import (
	"log"
	"math"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
)

// FarmActions 玩家工具作用的目标，SoilSystem 实现此接口
type FarmActions interface {
	Hit(x, y float64) bool
	WaterAt(x, y float64) bool
	PlantAt(x, y float64, crop types.CropType) bool
}

// Chopper 斧头作用的目标，TreeSystem 实现此接口
type Chopper interface {
	ChopAt(x, y float64) bool
}

// PlayerSystem 处理玩家输入：移动、切换与使用工具、播种、与床和商人交互
//
// 工具和播种有动作时长，动作结束时才在工具作用点生效：
//
//	作用点 = 玩家中心 + ToolOffsets[朝向]
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	player        ecs.EntityID
	cfg           *config.PlayerConfig
	actions       FarmActions
	chopper       Chopper
	sounds        SoundPlayer

	// input 每帧读取一次输入快照
	input func() utils.PlayerInput

	worldWidth  float64
	worldHeight float64

	onSleep      func()
	onToggleShop func()
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - player: 玩家实体
//   - cfg: 玩家配置
//   - actions: 工具作用目标（土壤层）
//   - input: 输入来源，通常为 utils.ReadPlayerInput
//   - worldWidth, worldHeight: 世界尺寸，玩家中心不会离开世界
func NewPlayerSystem(em *ecs.EntityManager, player ecs.EntityID, cfg *config.PlayerConfig, actions FarmActions, input func() utils.PlayerInput, worldWidth, worldHeight float64) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		player:        player,
		cfg:           cfg,
		actions:       actions,
		input:         input,
		worldWidth:    worldWidth,
		worldHeight:   worldHeight,
	}
}

// SetCallbacks 设置睡觉和商店开关回调
func (s *PlayerSystem) SetCallbacks(onSleep, onToggleShop func()) {
	s.onSleep = onSleep
	s.onToggleShop = onToggleShop
}

// SetChopper 设置斧头的目标
func (s *PlayerSystem) SetChopper(c Chopper) {
	s.chopper = c
}

// SetSoundPlayer 设置音效播放器
func (s *PlayerSystem) SetSoundPlayer(p SoundPlayer) {
	s.sounds = p
}

// ToolTarget 返回玩家当前的工具作用点
func (s *PlayerSystem) ToolTarget() (float64, float64, bool) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return 0, 0, false
	}
	rect, ok := EntityRect(s.entityManager, s.player)
	if !ok {
		return 0, 0, false
	}
	cx, cy := rect.Center()
	dx, dy := s.cfg.ToolOffset(player.Facing)
	return cx + dx, cy + dy, true
}

// Update 处理一帧的玩家输入
func (s *PlayerSystem) Update(deltaTime float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok || player.Sleeping {
		return
	}

	// 动作进行中：只推进计时，不响应输入
	if player.IsBusy() {
		s.tickTimers(player, deltaTime)
		return
	}

	var in utils.PlayerInput
	if s.input != nil {
		in = s.input()
	}

	if in.UseTool {
		s.startAction(player, &player.ToolTimer, s.useTool)
		return
	}
	if in.UseSeed {
		s.startAction(player, &player.SeedTimer, s.useSeed)
		return
	}
	if in.NextTool {
		player.SelectedTool = nextTool(player.SelectedTool)
	}
	if in.NextSeed {
		player.SelectedSeed = nextSeed(player.SelectedSeed)
	}
	if in.Interact {
		s.interact(player)
		if player.Sleeping {
			return
		}
	}

	s.move(player, in, deltaTime)
}

// startAction 开始一个动作，时长为 0 时立即生效
func (s *PlayerSystem) startAction(player *components.PlayerComponent, timer *float64, apply func(*components.PlayerComponent)) {
	d := s.cfg.ToolUseDuration()
	if d <= 0 {
		apply(player)
		return
	}
	*timer = d
}

func (s *PlayerSystem) tickTimers(player *components.PlayerComponent, deltaTime float64) {
	if player.ToolTimer > 0 {
		player.ToolTimer -= deltaTime
		if player.ToolTimer <= 0 {
			player.ToolTimer = 0
			s.useTool(player)
		}
	}
	if player.SeedTimer > 0 {
		player.SeedTimer -= deltaTime
		if player.SeedTimer <= 0 {
			player.SeedTimer = 0
			s.useSeed(player)
		}
	}
}

func (s *PlayerSystem) useTool(player *components.PlayerComponent) {
	x, y, ok := s.ToolTarget()
	if !ok || s.actions == nil {
		return
	}
	switch player.SelectedTool {
	case types.ToolHoe:
		s.actions.Hit(x, y)
	case types.ToolWater:
		playSound(s.sounds, SoundWater)
		s.actions.WaterAt(x, y)
	case types.ToolAxe:
		if s.chopper == nil || !s.chopper.ChopAt(x, y) {
			log.Printf("[PlayerSystem] nothing to chop at (%.0f,%.0f)", x, y)
		}
	}
}

func (s *PlayerSystem) useSeed(player *components.PlayerComponent) {
	x, y, ok := s.ToolTarget()
	if !ok || s.actions == nil {
		return
	}
	s.actions.PlantAt(x, y, player.SelectedSeed)
}

// interact 与玩家碰撞盒重叠的第一个交互区域交互
func (s *PlayerSystem) interact(player *components.PlayerComponent) {
	box, ok := HitboxRect(s.entityManager, s.player)
	if !ok {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.InteractionComponent](s.entityManager) {
		area, ok := HitboxRect(s.entityManager, id)
		if !ok || !area.Overlaps(box) {
			continue
		}
		it, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		switch it.Name {
		case config.InteractionTrader:
			if s.onToggleShop != nil {
				s.onToggleShop()
			}
		case config.InteractionBed:
			player.Facing = types.FacingLeft
			player.Sleeping = true
			log.Printf("[PlayerSystem] going to sleep")
			if s.onSleep != nil {
				s.onSleep()
			}
		}
		return
	}
}

// move 按输入方向移动，斜向移动速度归一化
func (s *PlayerSystem) move(player *components.PlayerComponent, in utils.PlayerInput, deltaTime float64) {
	switch {
	case in.MoveY < 0:
		player.Facing = types.FacingUp
	case in.MoveY > 0:
		player.Facing = types.FacingDown
	}
	switch {
	case in.MoveX < 0:
		player.Facing = types.FacingLeft
	case in.MoveX > 0:
		player.Facing = types.FacingRight
	}
	s.updateImage(player)

	dx, dy := float64(in.MoveX), float64(in.MoveY)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	dx, dy = dx/length, dy/length

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.player)

	pos.X += dx * player.Speed * deltaTime
	pos.Y += dy * player.Speed * deltaTime

	// 玩家中心限制在世界范围内
	if sprite != nil && s.worldWidth > 0 && s.worldHeight > 0 {
		pos.X = clamp(pos.X, -sprite.Width/2, s.worldWidth-sprite.Width/2)
		pos.Y = clamp(pos.Y, -sprite.Height/2, s.worldHeight-sprite.Height/2)
	}
}

func (s *PlayerSystem) updateImage(player *components.PlayerComponent) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	if img, ok := player.Images[player.Facing]; ok {
		sprite.Image = img
	}
}

// WakeUp 结束睡眠
func (s *PlayerSystem) WakeUp() {
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player); ok {
		player.Sleeping = false
	}
}

func nextTool(t types.Tool) types.Tool {
	for i, tool := range types.AllTools {
		if tool == t {
			return types.AllTools[(i+1)%len(types.AllTools)]
		}
	}
	return types.AllTools[0]
}

func nextSeed(c types.CropType) types.CropType {
	crops := types.AllCrops
	for i, crop := range crops {
		if crop == c {
			return crops[(i+1)%len(crops)]
		}
	}
	return crops[0]
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
