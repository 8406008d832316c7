package systems

import (
	"github.com/decker502/farm/pkg/components"
	"github.com/decker502/farm/pkg/ecs"
	"github.com/decker502/farm/pkg/utils"
)

// CameraOffset 计算镜头偏移：目标中心 - 屏幕尺寸 / 2
// 目标始终位于屏幕中央，镜头不受世界边界限制
//
// 参数:
//   - target: 跟随目标的包围盒
//   - screenWidth, screenHeight: 逻辑屏幕尺寸
//
// 返回: 世界坐标到屏幕坐标的平移量（screen = world - offset）
func CameraOffset(target utils.Rect, screenWidth, screenHeight float64) (float64, float64) {
	cx, cy := target.Center()
	return cx - screenWidth/2, cy - screenHeight/2
}

// CameraSystem 管理跟随镜头。
// 每帧根据目标实体的包围盒重新计算偏移量。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建跟随镜头。
//
// 参数:
//   - em: 实体管理器
//   - target: 跟随的实体
//   - screenWidth, screenHeight: 逻辑屏幕尺寸
func NewCameraSystem(em *ecs.EntityManager, target ecs.EntityID, screenWidth, screenHeight float64) *CameraSystem {
	cs := &CameraSystem{entityManager: em}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Target:       target,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})
	cs.Update(0)
	return cs
}

// Update 重新计算镜头偏移。目标实体不存在时保持上一帧的偏移。
func (cs *CameraSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	rect, ok := EntityRect(cs.entityManager, cam.Target)
	if !ok {
		return
	}
	cam.OffsetX, cam.OffsetY = CameraOffset(rect, cam.ScreenWidth, cam.ScreenHeight)
}

// Offset 返回当前镜头偏移。
func (cs *CameraSystem) Offset() (float64, float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0, 0
	}
	return cam.OffsetX, cam.OffsetY
}
