package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TreeSystem 树、苹果和斧头
//
// 砍一下: 生命值 -1 → 播放音效 → 有苹果时随机打落一个（苹果 +1）
// 生命值归零: 变成树桩，剩下的苹果消失，木头 +1
type TreeSystem struct {
	entityManager *ecs.EntityManager
	cfg           *config.TreesConfig
	images        entities.ImageSource
	rng           *rand.Rand
	player        ecs.EntityID
	sounds        SoundPlayer

	// particleDuration 苹果和树倒下时剪影粒子的持续时间（秒）
	particleDuration float64
}

// NewTreeSystem 创建树系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 树的配置
//   - images: 贴图来源（苹果）
//   - rng: 苹果生长和打落使用的随机源
//   - player: 得到木头和苹果的玩家实体
//   - particleDuration: 粒子持续时间（秒）
func NewTreeSystem(em *ecs.EntityManager, cfg *config.TreesConfig, images entities.ImageSource, rng *rand.Rand, player ecs.EntityID, particleDuration float64) *TreeSystem {
	return &TreeSystem{
		entityManager:    em,
		cfg:              cfg,
		images:           images,
		rng:              rng,
		player:           player,
		particleDuration: particleDuration,
	}
}

// SetSoundPlayer 设置音效播放器
func (s *TreeSystem) SetSoundPlayer(p SoundPlayer) {
	s.sounds = p
}

// Trees 返回所有树（包括树桩）
func (s *TreeSystem) Trees() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager)
}

// GrowFruit 摘掉所有树上的苹果，然后在活着的树的每个果位重新判定
// 返回: 长出的苹果数量
func (s *TreeSystem) GrowFruit() int {
	grown := 0
	for _, id := range s.Trees() {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		for _, apple := range tree.Apples {
			s.entityManager.DestroyEntity(apple)
		}
		tree.Apples = tree.Apples[:0]

		if !tree.Alive {
			continue
		}
		size := s.cfg.Size(tree.Size)
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if size == nil || !ok {
			continue
		}
		for _, slot := range size.AppleSlots {
			if s.rng.IntN(s.cfg.AppleRollMax+1) >= s.cfg.AppleChance {
				continue
			}
			apple := entities.NewAppleEntity(s.entityManager, s.images, id, pos.X+slot[0], pos.Y+slot[1], s.cfg)
			tree.Apples = append(tree.Apples, apple)
			grown++
		}
	}
	log.Printf("[TreeSystem] %d apples grown", grown)
	return grown
}

// ChopAt 砍工具作用点所在的活树（按贴图矩形判断）
// 返回: 是否砍到了树
func (s *TreeSystem) ChopAt(x, y float64) bool {
	for _, id := range s.Trees() {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		if !tree.Alive {
			continue
		}
		rect, ok := EntityRect(s.entityManager, id)
		if !ok || !rect.ContainsPoint(x, y) {
			continue
		}
		s.damage(id, tree)
		return true
	}
	return false
}

func (s *TreeSystem) damage(id ecs.EntityID, tree *components.TreeComponent) {
	tree.Health--
	playSound(s.sounds, SoundAxe)

	if n := len(tree.Apples); n > 0 {
		i := s.rng.IntN(n)
		apple := tree.Apples[i]
		tree.Apples = append(tree.Apples[:i], tree.Apples[i+1:]...)
		s.spawnParticle(apple, types.ResourceApple.String(), types.LayerFruit)
		s.entityManager.DestroyEntity(apple)
		s.give(types.ResourceApple)
	}

	if tree.Health <= 0 {
		s.fell(id, tree)
	}
}

// fell 树倒下：换成树桩贴图，底边中点不变，碰撞盒缩小
func (s *TreeSystem) fell(id ecs.EntityID, tree *components.TreeComponent) {
	s.spawnParticle(id, "tree", types.LayerFruit)

	for _, apple := range tree.Apples {
		s.entityManager.DestroyEntity(apple)
	}
	tree.Apples = nil
	tree.Alive = false

	rect, ok := EntityRect(s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if ok {
		x, y := rect.MidBottom()
		stump := utils.AnchorMidBottom(x, y, tree.StumpWidth, tree.StumpHeight)
		pos.X, pos.Y = stump.X, stump.Y
		sprite.Image = tree.StumpImage
		sprite.Width, sprite.Height = stump.W, stump.H
		setHitbox(s.entityManager, id, stump.Inflate(s.cfg.StumpHitboxShrinkX, -stump.H*s.cfg.StumpHitboxShrinkYRatio))
	}

	s.give(types.ResourceWood)
	log.Printf("[TreeSystem] %s tree %d felled", tree.Size, id)
}

// spawnParticle 在实体当前位置生成剪影粒子
func (s *TreeSystem) spawnParticle(id ecs.EntityID, source string, layer types.DepthLayer) {
	rect, ok := EntityRect(s.entityManager, id)
	if !ok {
		return
	}
	var img *ebiten.Image
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		img = sprite.Image
	}
	entities.NewParticleEntity(s.entityManager, rect, img, source, layer, s.particleDuration)
}

func (s *TreeSystem) give(r types.Resource) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	if player.Resources == nil {
		player.Resources = make(map[types.Resource]int)
	}
	player.Resources[r]++
	log.Printf("[TreeSystem] %s +1, now %d", r, player.Resources[r])
}
