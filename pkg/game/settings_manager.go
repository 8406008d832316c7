package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 设置保存在 gdata 的 settings/global 属性里，YAML 编码
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

const (
	defaultMusicVolume = 0.7
	defaultSoundVolume = 0.8
)

// AudioSettings 音量与开关
type AudioSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`
	SoundVolume  float64 `yaml:"soundVolume"`
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
}

// DisplaySettings 窗口与调试绘制
type DisplaySettings struct {
	Fullscreen   bool `yaml:"fullscreen"`
	DebugOverlay bool `yaml:"debugOverlay"` // 碰撞盒与工具作用点
}

// GameSettings 本机偏好，不属于农场存档
type GameSettings struct {
	Audio   AudioSettings   `yaml:"audio"`
	Display DisplaySettings `yaml:"display"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() GameSettings {
	return GameSettings{
		Audio: AudioSettings{
			MusicVolume:  defaultMusicVolume,
			SoundVolume:  defaultSoundVolume,
			MusicEnabled: true,
			SoundEnabled: true,
		},
	}
}

// normalize 把音量收回 [0,1]，手改过的文件里可能出现越界或 NaN
func (s *GameSettings) normalize() {
	s.Audio.MusicVolume = unitInterval(s.Audio.MusicVolume, defaultMusicVolume)
	s.Audio.SoundVolume = unitInterval(s.Audio.SoundVolume, defaultSoundVolume)
}

func unitInterval(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(0, math.Min(1, v))
}

// settingsStore 是 gdata.Manager 中设置读写用到的部分
type settingsStore interface {
	ObjectPropExists(object, property string) bool
	LoadObjectProp(object, property string) ([]byte, error)
	SaveObjectProp(object, property string, data []byte) error
}

// SettingsManager 持有当前设置。修改通过 Update 进行，
// 只有改动过的设置才会在 Save 时写回存储。
type SettingsManager struct {
	store   settingsStore // nil 表示只在内存中保存
	current GameSettings
	dirty   bool
}

// NewSettingsManager 创建设置管理器并读取已保存的设置。
// gdataManager 可以为 nil；读取失败只记录警告并使用默认值。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{current: DefaultSettings()}
	if gdataManager != nil {
		sm.store = gdataManager
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v, using defaults", err)
	}
	return sm, nil
}

// Load 用存储中的内容替换当前设置，没有存储或没有记录时恢复默认值
func (sm *SettingsManager) Load() error {
	sm.current = DefaultSettings()
	sm.dirty = false
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("读取设置失败: %w", err)
	}
	// 缺失的字段保留默认值
	parsed := DefaultSettings()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("解析设置失败: %w", err)
	}
	parsed.normalize()
	sm.current = parsed
	log.Printf("[SettingsManager] Loaded %+v", sm.current)
	return nil
}

// Save 写回改动过的设置
func (sm *SettingsManager) Save() error {
	if sm.store == nil || !sm.dirty {
		return nil
	}
	data, err := yaml.Marshal(&sm.current)
	if err != nil {
		return fmt.Errorf("编码设置失败: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("保存设置失败: %w", err)
	}
	sm.dirty = false
	log.Printf("[SettingsManager] Saved")
	return nil
}

// Settings 返回当前设置的副本
func (sm *SettingsManager) Settings() GameSettings {
	return sm.current
}

// Dirty 报告是否有尚未保存的改动
func (sm *SettingsManager) Dirty() bool {
	return sm.dirty
}

// Update 在当前设置上执行 fn，结果会被规范化。
// 只在内存中生效，调用 Save 才会持久化。
func (sm *SettingsManager) Update(fn func(s *GameSettings)) {
	next := sm.current
	fn(&next)
	next.normalize()
	if next != sm.current {
		sm.current = next
		sm.dirty = true
	}
}

// ToggleDebugOverlay 切换调试绘制，返回切换后的状态
func (sm *SettingsManager) ToggleDebugOverlay() bool {
	sm.Update(func(s *GameSettings) { s.Display.DebugOverlay = !s.Display.DebugOverlay })
	return sm.current.Display.DebugOverlay
}
