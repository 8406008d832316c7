package systems

import (
	"testing"

	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/entities"
	"github.com/decker502/farm/pkg/types"
)

// harvestFixture 在 (1,1) 种下一株成熟玉米，玩家站在 playerX, playerY
func harvestFixture(t *testing.T, grow int, playerX, playerY float64) (*soilFixture, *HarvestSystem, ecs.EntityID) {
	t.Helper()
	f := newSoilFixture(t, allFarm(3, 3)...)
	f.hit(1, 1)
	f.plant(1, 1, types.CropCorn)
	f.water(1, 1)
	for _, id := range f.soil.Plants() {
		for i := 0; i < grow; i++ {
			f.soil.growth.Grow(id)
		}
	}

	player := entities.NewPlayerEntity(f.em, nil, &f.cfg.Player, playerX, playerY)
	hs := NewHarvestSystem(f.em, f.soil, player, 0.2)
	hs.SetSoundPlayer(f.sounds)
	return f, hs, player
}

func TestHarvestRipePlant(t *testing.T) {
	f, hs, player := harvestFixture(t, 3, 96, 96)
	plantID := f.soil.Plants()[0]

	if got := hs.Update(1.0 / 60); got != 1 {
		t.Fatalf("Update() harvested %d, want 1", got)
	}
	f.endFrame()

	pc, _ := ecs.GetComponent[*components.PlayerComponent](f.em, player)
	if pc.Inventory[types.CropCorn] != 1 {
		t.Errorf("corn inventory = %d, want 1", pc.Inventory[types.CropCorn])
	}
	if f.em.IsAlive(plantID) {
		t.Error("harvested plant should be removed")
	}
	if f.soil.Grid().Planted(1, 1) {
		t.Error("Planted should be cleared after harvest")
	}
	if f.sounds.count(SoundSuccess) != 1 {
		t.Error("success sound should play once")
	}
	particles := ecs.GetEntitiesWith1[*components.ParticleComponent](f.em)
	if len(particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(particles))
	}
	lt, _ := ecs.GetComponent[*components.LifetimeComponent](f.em, particles[0])
	if lt.MaxLifetime != 0.2 {
		t.Errorf("particle lifetime = %v, want 0.2", lt.MaxLifetime)
	}
}

func TestHarvestIgnoresUnripePlant(t *testing.T) {
	f, hs, _ := harvestFixture(t, 2, 96, 96)
	if got := hs.Update(1.0 / 60); got != 0 {
		t.Errorf("Update() harvested %d, want 0", got)
	}
	if f.soil.PlantCount() != 1 {
		t.Error("unripe plant should stay")
	}
}

func TestHarvestRequiresOverlap(t *testing.T) {
	f, hs, _ := harvestFixture(t, 3, 1000, 1000)
	if got := hs.Update(1.0 / 60); got != 0 {
		t.Errorf("Update() harvested %d, want 0", got)
	}
	if f.soil.PlantCount() != 1 {
		t.Error("plant out of reach should stay")
	}
}
