package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// soundGains 各音效相对音效总音量的比例
var soundGains = map[string]float64{
	"hoe":     0.1,
	"plant":   0.2,
	"water":   0.3,
	"success": 0.3,
	"axe":     0.5,
}

// AudioManager 音频管理器
//
// 音效和背景音乐都按名称播放，名称对应 audio 目录下的文件（不带扩展名）。
// 音量来自 SettingsManager；找不到的音频只记录日志，游戏照常运行。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil，使用默认音量

	soundPlayers   map[string]*audio.Player // 名称 -> 播放器，nil 表示加载失败
	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 从头播放一次音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(name string) bool {
	if am.settingsManager != nil && !am.settingsManager.Settings().Audio.SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(name)
	if player == nil {
		return false
	}

	player.SetVolume(am.SoundVolume(name))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐，同一时间只有一首
func (am *AudioManager) PlayMusic(name string) bool {
	if am.settingsManager != nil && !am.settingsManager.Settings().Audio.MusicEnabled {
		return false
	}
	if am.currentMusicID == name && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	p, ok := am.resourceManager.FindAudio(name)
	if !ok {
		log.Printf("[AudioManager] Warning: Music not found: %s", name)
		return false
	}
	player, err := am.resourceManager.LoadAudio(p)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", name, err)
		return false
	}

	volume := am.musicVolume()
	player.SetVolume(volume)
	player.Play()

	am.currentMusic = player
	am.currentMusicID = name
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", name, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// SoundVolume 返回音效的实际音量：总音量 × 单个音效的比例
func (am *AudioManager) SoundVolume(name string) float64 {
	volume := 0.8
	if am.settingsManager != nil {
		volume = am.settingsManager.Settings().Audio.SoundVolume
	}
	if gain, ok := soundGains[name]; ok {
		volume *= gain
	}
	return volume
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.Settings().Audio.MusicVolume
	}
	return 0.7
}

// getSoundPlayer 获取或加载音效播放器，失败的结果也会缓存
func (am *AudioManager) getSoundPlayer(name string) *audio.Player {
	if player, exists := am.soundPlayers[name]; exists {
		return player
	}

	var player *audio.Player
	if p, ok := am.resourceManager.FindAudio(name); ok {
		loaded, err := am.resourceManager.LoadSoundEffect(p)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", name, err)
		} else {
			player = loaded
		}
	} else {
		log.Printf("[AudioManager] Warning: Sound not found: %s", name)
	}

	am.soundPlayers[name] = player
	return player
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(names []string) {
	loaded := 0
	for _, name := range names {
		if am.getSoundPlayer(name) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(names))
}
