package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按地图名称创建场景
// 由 app 注入，避免 game 包依赖 scenes 包
type SceneFactory func(mapName string) (Scene, error)

// SceneManager 控制当前活动场景，同一时间只更新和绘制一个场景
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建没有活动场景的管理器，使用 SwitchTo 或 LoadMap 设置场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadMap 创建指定地图的场景并切换过去
// 创建失败时保留当前场景
//
// 返回: 是否切换成功
func (sm *SceneManager) LoadMap(mapName string) bool {
	log.Printf("[SceneManager] 加载地图: %s", mapName)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene, err := sm.sceneFactory(mapName)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景 %s: %v", mapName, err)
		return false
	}
	sm.SwitchTo(newScene)
	return true
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
