package entities

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/config"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图来源，每个朝向加载 "character/<facing>_idle/0"
//   - cfg: 玩家配置
//   - centerX, centerY: 出生点（玩家中心，世界坐标）
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, images ImageSource, cfg *config.PlayerConfig, centerX, centerY float64) ecs.EntityID {
	imgs := make(map[types.Facing]*ebiten.Image, 4)
	for _, f := range []types.Facing{types.FacingDown, types.FacingUp, types.FacingLeft, types.FacingRight} {
		if img := imageOrNil(images, "character/"+f.String()+"_idle/0"); img != nil {
			imgs[f] = img
		}
	}

	rect := utils.AnchorCenter(centerX, centerY, cfg.Width, cfg.Height)
	hitbox := rect.Inflate(cfg.HitboxShrinkX, cfg.HitboxShrinkY)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: rect.X, Y: rect.Y})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Image:  imgs[types.FacingDown],
		Width:  rect.W,
		Height: rect.H,
	})
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: types.LayerMain})
	ecs.AddComponent(em, id, &components.HitboxComponent{
		Width:   hitbox.W,
		Height:  hitbox.H,
		OffsetX: hitbox.X - rect.X,
		OffsetY: hitbox.Y - rect.Y,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Facing:       types.FacingDown,
		Speed:        cfg.Speed,
		SelectedTool: types.ToolHoe,
		SelectedSeed: types.CropCorn,
		Inventory:    make(map[types.CropType]int),
		Resources:    make(map[types.Resource]int),
		Images:       imgs,
	})
	return id
}
