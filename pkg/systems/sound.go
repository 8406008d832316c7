package systems

// 音效名称，对应 assets/audio/<name>.wav
const (
	SoundHoe     = "hoe"
	SoundPlant   = "plant"
	SoundWater   = "water"
	SoundSuccess = "success"
	SoundAxe     = "axe"
)

// SoundPlayer 播放一次性音效
// game.AudioManager 实现此接口；为 nil 时系统静默
type SoundPlayer interface {
	PlaySound(name string) bool
}

func playSound(p SoundPlayer, name string) {
	if p != nil {
		p.PlaySound(name)
	}
}
