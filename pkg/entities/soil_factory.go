package entities

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/soil"
	"github.com/decker502/farm/pkg/types"
	"github.com/decker502/farm/pkg/utils"
)

// NewSoilTileEntity 创建耕地贴图实体
//
// 参数:
//   - em: 实体管理器
//   - images: 贴图来源，按变体名称加载 "soil/<variant>"
//   - row, col: 格子坐标
//   - variant: 自动拼接计算出的贴图变体
//   - tileSize: 格子边长
//
// 返回: 创建的实体ID
func NewSoilTileEntity(em *ecs.EntityManager, images ImageSource, row, col int, variant soil.Variant, tileSize float64) ecs.EntityID {
	rect := utils.CellRect(row, col, tileSize)
	img := imageOrNil(images, "soil/"+string(variant))
	id := NewStaticEntity(em, img, rect.X, rect.Y, rect.W, rect.H, types.LayerSoil)
	ecs.AddComponent(em, id, &components.SoilTileComponent{Row: row, Col: col, Variant: variant})
	return id
}

// NewWaterTileEntity 创建湿润土壤贴图实体
//
// 参数:
//   - variant: 贴图序号，对应 "soil_water/<variant>"
func NewWaterTileEntity(em *ecs.EntityManager, images ImageSource, row, col, variant int, tileSize float64) ecs.EntityID {
	rect := utils.CellRect(row, col, tileSize)
	img := imageOrNil(images, variantName("soil_water", variant))
	id := NewStaticEntity(em, img, rect.X, rect.Y, rect.W, rect.H, types.LayerSoilWater)
	ecs.AddComponent(em, id, &components.WaterTileComponent{Row: row, Col: col})
	return id
}
