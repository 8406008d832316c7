package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// 资源目录布局（相对资源根目录）
const (
	graphicsDir = "graphics"
	audioDir    = "audio"
)

// audioExtensions 按名称查找音频时依次尝试的扩展名
var audioExtensions = []string{".wav", ".ogg", ".mp3"}

// ResourceManager 集中加载并缓存贴图和音频
//
// 资源从一个 fs.FS 读取（通常是 os.DirFS("assets")），
// 测试时可以换成 fstest.MapFS。
// 贴图按名称访问，名称为 graphics 下不带扩展名的路径，如 "soil/lr"；
// 缺失的贴图只记录一次日志并返回 nil，由渲染系统绘制占位矩形。
//
// 非线程安全，只在游戏主循环中使用。
type ResourceManager struct {
	root         fs.FS
	audioContext *audio.Context // 音频解码上下文，为 nil 时不加载音频

	imageCache  map[string]*ebiten.Image   // 路径 -> 贴图
	framesCache map[string][]*ebiten.Image // 目录 -> 帧序列
	audioCache  map[string]*audio.Player   // 路径 -> 播放器
	missing     map[string]bool            // 已记录过缺失日志的路径
}

// NewResourceManager 创建资源管理器
//
// 参数:
//   - root: 资源根目录，为 nil 时所有资源都视为缺失
//   - audioContext: 音频上下文，为 nil 时不加载音频
func NewResourceManager(root fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		root:         root,
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		framesCache:  make(map[string][]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		missing:      make(map[string]bool),
	}
}

func (rm *ResourceManager) readFile(p string) ([]byte, error) {
	if rm.root == nil {
		return nil, fmt.Errorf("no resource root configured")
	}
	return fs.ReadFile(rm.root, p)
}

// LoadImage 加载并缓存贴图
//
// 参数:
//   - p: 相对资源根目录的路径（如 "graphics/soil/o.png"）
//
// 返回:
//   - *ebiten.Image: 贴图
//   - error: 文件不存在或解码失败
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[p]; exists {
		return cached, nil
	}

	data, err := rm.readFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// GetImage 返回已缓存的贴图，未加载时返回 nil
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[p]
}

// Image 按名称加载贴图，实现 entities.ImageSource
// 贴图缺失时返回 nil
func (rm *ResourceManager) Image(name string) *ebiten.Image {
	p := path.Join(graphicsDir, name+".png")
	img, err := rm.LoadImage(p)
	if err != nil {
		rm.logMissing(p, err)
		return nil
	}
	return img
}

// Frames 加载目录下按序号命名的帧（0.png, 1.png, ...），实现 entities.ImageSource
// 非数字命名的文件被忽略；目录不存在时返回 nil
func (rm *ResourceManager) Frames(dir string) []*ebiten.Image {
	if frames, exists := rm.framesCache[dir]; exists {
		return frames
	}

	p := path.Join(graphicsDir, dir)
	if rm.root == nil {
		return nil
	}
	entries, err := fs.ReadDir(rm.root, p)
	if err != nil {
		rm.logMissing(p, err)
		rm.framesCache[dir] = nil
		return nil
	}

	var indices []int
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".png") {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSuffix(name, ".png")); err == nil {
			indices = append(indices, n)
		}
	}
	sort.Ints(indices)

	frames := make([]*ebiten.Image, 0, len(indices))
	for _, n := range indices {
		img := rm.Image(path.Join(dir, strconv.Itoa(n)))
		if img == nil {
			continue
		}
		frames = append(frames, img)
	}
	rm.framesCache[dir] = frames
	return frames
}

func (rm *ResourceManager) logMissing(p string, err error) {
	if rm.missing[p] {
		return
	}
	rm.missing[p] = true
	log.Printf("[ResourceManager] Warning: %v", err)
}

// decodeAudio 按扩展名解码音频
func decodeAudio(p string, data []byte) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// LoadAudio 加载循环播放的音频（背景音乐）
func (rm *ResourceManager) LoadAudio(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, true)
}

// LoadSoundEffect 加载单次播放的音效
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, false)
}

func (rm *ResourceManager) loadPlayer(p string, loop bool) (*audio.Player, error) {
	if cached, exists := rm.audioCache[p]; exists {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio disabled, cannot load %s", p)
	}

	data, err := rm.readFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", p, err)
	}
	stream, err := decodeAudio(p, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.audioCache[p] = player
	return player, nil
}

// FindAudio 按名称在 audio 目录下查找音频文件，返回相对路径
func (rm *ResourceManager) FindAudio(name string) (string, bool) {
	if rm.root == nil {
		return "", false
	}
	for _, ext := range audioExtensions {
		p := path.Join(audioDir, name+ext)
		if _, err := fs.Stat(rm.root, p); err == nil {
			return p, true
		}
	}
	return "", false
}
