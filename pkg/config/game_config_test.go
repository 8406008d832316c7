package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/farm/pkg/types"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	corn := cfg.Crop(types.CropCorn)
	if corn == nil || corn.GrowSpeed != 1 || corn.MaxAge() != 3 {
		t.Errorf("unexpected corn config %+v", corn)
	}
	tomato := cfg.Crop(types.CropTomato)
	if tomato == nil || tomato.GrowSpeed != 0.7 {
		t.Errorf("unexpected tomato config %+v", tomato)
	}

	x, y := cfg.Player.ToolOffset(types.FacingLeft)
	if x != -50 || y != 40 {
		t.Errorf("left tool offset = (%v,%v), want (-50,40)", x, y)
	}
}

func TestLoadGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
tileSize: 32
screen:
  width: 800
  height: 600
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.TileSize != 32 {
					t.Errorf("expected tileSize 32, got %v", cfg.TileSize)
				}
				if cfg.Screen.Width != 800 {
					t.Errorf("expected width 800, got %d", cfg.Screen.Width)
				}
				if cfg.Rain.LifetimeMaxMs != 500 {
					t.Errorf("rain defaults should be kept, got %d", cfg.Rain.LifetimeMaxMs)
				}
				if cfg.Trees.Health != 5 || cfg.Trees.Size(TreeLarge) == nil {
					t.Errorf("tree defaults should be kept, got %+v", cfg.Trees)
				}
			},
		},
		{
			name: "crop override",
			yamlContent: `
crops:
  tomato:
    growSpeed: 0.5
    frames: 5
    frameWidth: 40
    frameHeight: 60
    yOffset: -8
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				tomato := cfg.Crop(types.CropTomato)
				if tomato.GrowSpeed != 0.5 || tomato.MaxAge() != 4 {
					t.Errorf("unexpected tomato %+v", tomato)
				}
				if cfg.Crop(types.CropCorn) == nil {
					t.Error("corn should still be configured")
				}
			},
		},
		{
			name: "unknown crop",
			yamlContent: `
crops:
  pumpkin:
    growSpeed: 1
    frames: 3
`,
			wantErr:     true,
			errContains: "unknown crop",
		},
		{
			name: "invalid lifetime range",
			yamlContent: `
rain:
  lifetimeMinMs: 600
  lifetimeMaxMs: 500
`,
			wantErr:     true,
			errContains: "lifetime",
		},
		{
			name: "too few frames",
			yamlContent: `
crops:
  corn:
    growSpeed: 1
    frames: 1
`,
			wantErr:     true,
			errContains: "frames",
		},
		{
			name: "tree health",
			yamlContent: `
trees:
  health: 0
`,
			wantErr:     true,
			errContains: "health",
		},
		{
			name: "apple chance",
			yamlContent: `
trees:
  appleChance: 4
  appleRollMax: 20
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Trees.AppleChance != 4 || cfg.Trees.AppleRollMax != 20 {
					t.Errorf("unexpected apple roll %d/%d", cfg.Trees.AppleChance, cfg.Trees.AppleRollMax)
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "screen: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "game.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadGameConfig(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

// TestShippedGameConfig 确保仓库内的 data/game.yaml 可以正常加载
func TestShippedGameConfig(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game.yaml"))
	if err != nil {
		t.Fatalf("failed to load data/game.yaml: %v", err)
	}
	if cfg.TileSize != 64 {
		t.Errorf("expected tileSize 64, got %v", cfg.TileSize)
	}
	if cfg.Crop(types.CropCorn).YOffset != -16 || cfg.Crop(types.CropTomato).YOffset != -8 {
		t.Error("unexpected crop yOffsets in shipped config")
	}
}
