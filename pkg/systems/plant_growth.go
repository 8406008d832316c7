package systems

import (
	"log"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
	"github.com/decker502/farm/pkg/types"
)

// PlantGrowthSystem 作物生长状态机
//
// 状态转换:
//
//	Sprouting (ground-plant 层) --floor(age) > 0--> Standing (main 层, 有碰撞盒)
//
// 生长只在所在格子浇过水时发生；年龄只增不减，
// 达到最大年龄后 Harvestable 置为 true 且不再改变。
type PlantGrowthSystem struct {
	entityManager *ecs.EntityManager
	// isWatered 只读查询土壤网格，作物从不修改网格
	isWatered func(row, col int) bool
}

// NewPlantGrowthSystem 创建作物生长系统
//
// 参数:
//   - em: 实体管理器
//   - isWatered: 查询格子是否浇过水
func NewPlantGrowthSystem(em *ecs.EntityManager, isWatered func(row, col int) bool) *PlantGrowthSystem {
	return &PlantGrowthSystem{
		entityManager: em,
		isWatered:     isWatered,
	}
}

// Grow 推进单株作物一个生长步
//
// 返回:
//   - bool: 年龄是否发生变化（未浇水或已成熟时返回 false）
func (s *PlantGrowthSystem) Grow(id ecs.EntityID) bool {
	plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
	if !ok {
		return false
	}
	if !s.isWatered(plant.Row, plant.Col) {
		return false
	}

	before := plant.Age
	plant.Age += plant.GrowSpeed
	if plant.Age >= plant.MaxAge {
		plant.Age = plant.MaxAge
		if !plant.Harvestable {
			plant.Harvestable = true
			log.Printf("[PlantGrowth] %s at (%d,%d) is ready to harvest", plant.Crop, plant.Row, plant.Col)
		}
	}

	rect, img := entities.PlantSpriteRect(plant)
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X, pos.Y = rect.X, rect.Y
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Image = img
		sprite.Width, sprite.Height = rect.W, rect.H
	}

	if plant.Stage == components.PlantSprouting && int(plant.Age) > 0 {
		plant.Stage = components.PlantStanding
		if depth, ok := ecs.GetComponent[*components.DepthComponent](s.entityManager, id); ok {
			depth.Layer = types.LayerMain
		}
	}
	if plant.Stage == components.PlantStanding {
		setHitbox(s.entityManager, id, rect.Inflate(plant.HitboxShrinkX, rect.H*plant.HitboxGrowYRatio))
	}

	return plant.Age != before
}
