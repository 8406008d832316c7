package systems

import (
	"log"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
	"github.com/decker502/farm/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// HarvestSystem 玩家碰到成熟作物时自动收获
//
// 收获流程: 背包计数 +1 → 移除作物并清除种植标记 → 生成白色剪影粒子 → 播放音效
type HarvestSystem struct {
	entityManager *ecs.EntityManager
	soil          *SoilSystem
	player        ecs.EntityID
	sounds        SoundPlayer

	// particleDuration 收获粒子持续时间（秒）
	particleDuration float64
}

// NewHarvestSystem 创建收获系统
//
// 参数:
//   - em: 实体管理器
//   - soil: 土壤层（持有作物集合）
//   - player: 玩家实体
//   - particleDuration: 收获粒子持续时间（秒）
func NewHarvestSystem(em *ecs.EntityManager, soil *SoilSystem, player ecs.EntityID, particleDuration float64) *HarvestSystem {
	return &HarvestSystem{
		entityManager:    em,
		soil:             soil,
		player:           player,
		particleDuration: particleDuration,
	}
}

// SetSoundPlayer 设置音效播放器
func (s *HarvestSystem) SetSoundPlayer(p SoundPlayer) {
	s.sounds = p
}

// Update 检测玩家碰撞盒与成熟作物碰撞盒的重叠
// 返回: 本帧收获的作物数量
func (s *HarvestSystem) Update(deltaTime float64) int {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	if !ok {
		return 0
	}
	playerBox, ok := HitboxRect(s.entityManager, s.player)
	if !ok {
		return 0
	}

	harvested := 0
	for _, id := range s.soil.Plants() {
		plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		if !ok || !plant.Harvestable {
			continue
		}
		plantBox, ok := HitboxRect(s.entityManager, id)
		if !ok || !plantBox.Overlaps(playerBox) {
			continue
		}

		player.Inventory[plant.Crop]++

		rect, _ := EntityRect(s.entityManager, id)
		var img *ebiten.Image
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			img = sprite.Image
		}
		entities.NewParticleEntity(s.entityManager, rect, img, plant.Crop.String(), types.LayerMain, s.particleDuration)

		s.soil.RemovePlant(id)
		playSound(s.sounds, SoundSuccess)
		log.Printf("[HarvestSystem] harvested %s at (%d,%d), inventory=%d", plant.Crop, plant.Row, plant.Col, player.Inventory[plant.Crop])
		harvested++
	}
	return harvested
}
