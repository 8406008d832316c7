package game

import (
	"errors"
	"math"
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata 存储
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return m
}

// memoryStore 内存中的设置存储，记录写入次数
type memoryStore struct {
	data    map[string][]byte
	saves   int
	loadErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (m *memoryStore) ObjectPropExists(object, property string) bool {
	_, ok := m.data[object+"/"+property]
	return ok
}

func (m *memoryStore) LoadObjectProp(object, property string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data[object+"/"+property], nil
}

func (m *memoryStore) SaveObjectProp(object, property string, data []byte) error {
	m.saves++
	m.data[object+"/"+property] = data
	return nil
}

func newMemorySettings(t *testing.T, store *memoryStore) *SettingsManager {
	t.Helper()
	sm := &SettingsManager{store: store}
	if err := sm.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return sm
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Audio.MusicVolume != 0.7 || s.Audio.SoundVolume != 0.8 {
		t.Errorf("volumes = %v/%v, want 0.7/0.8", s.Audio.MusicVolume, s.Audio.SoundVolume)
	}
	if !s.Audio.MusicEnabled || !s.Audio.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if s.Display != (DisplaySettings{}) {
		t.Errorf("display = %+v, want zero value", s.Display)
	}
}

func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil): %v", err)
	}
	if sm.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", sm.Settings())
	}
	sm.ToggleDebugOverlay()
	if err := sm.Save(); err != nil {
		t.Errorf("Save without storage: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load without storage: %v", err)
	}
	if sm.Settings().Display.DebugOverlay {
		t.Error("Load without storage should restore defaults")
	}
}

func TestSettingsRoundTripThroughGdata(t *testing.T) {
	gm := openTestGdata(t, "test_farm_settings")

	sm1, _ := NewSettingsManager(gm)
	sm1.Update(func(s *GameSettings) {
		s.Audio = AudioSettings{MusicVolume: 0.5, SoundVolume: 0.6}
		s.Display.Fullscreen = true
	})
	if !sm1.ToggleDebugOverlay() {
		t.Fatal("ToggleDebugOverlay should turn the overlay on")
	}
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sm2, _ := NewSettingsManager(gm)
	want := GameSettings{
		Audio:   AudioSettings{MusicVolume: 0.5, SoundVolume: 0.6},
		Display: DisplaySettings{Fullscreen: true, DebugOverlay: true},
	}
	if got := sm2.Settings(); got != want {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}
}

func TestSaveWritesOnlyChanges(t *testing.T) {
	store := newMemoryStore()
	sm := newMemorySettings(t, store)

	if err := sm.Save(); err != nil {
		t.Fatal(err)
	}
	if store.saves != 0 {
		t.Fatalf("unchanged settings written %d times", store.saves)
	}

	// 赋相同的值不算改动
	sm.Update(func(s *GameSettings) { s.Audio.MusicVolume = defaultMusicVolume })
	if sm.Dirty() {
		t.Error("no-op update marked settings dirty")
	}

	sm.Update(func(s *GameSettings) { s.Display.Fullscreen = true })
	if !sm.Dirty() {
		t.Fatal("update should mark settings dirty")
	}
	if err := sm.Save(); err != nil {
		t.Fatal(err)
	}
	if err := sm.Save(); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 || sm.Dirty() {
		t.Errorf("saves = %d dirty = %v, want 1 and false", store.saves, sm.Dirty())
	}
}

func TestLoadFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		loadErr error
		want    GameSettings
		wantErr bool
	}{
		{"损坏的 YAML", "audio: [oops", nil, DefaultSettings(), true},
		{"读取失败", "", errors.New("disk gone"), DefaultSettings(), true},
		{
			"缺失字段保持默认",
			"display:\n  fullscreen: true\n",
			nil,
			GameSettings{Audio: DefaultSettings().Audio, Display: DisplaySettings{Fullscreen: true}},
			false,
		},
		{
			"越界音量被收回",
			"audio:\n  musicVolume: 3\n  soundVolume: -1\n  musicEnabled: true\n  soundEnabled: true\n",
			nil,
			GameSettings{Audio: AudioSettings{MusicVolume: 1, SoundVolume: 0, MusicEnabled: true, SoundEnabled: true}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			store.data[settingsObject+"/"+settingsProperty] = []byte(tt.data)
			store.loadErr = tt.loadErr
			sm := &SettingsManager{store: store}

			err := sm.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := sm.Settings(); got != tt.want {
				t.Errorf("settings = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUpdateClampsVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
		{math.Inf(1), 1.0},
		{math.NaN(), defaultSoundVolume},
	}

	for _, tt := range tests {
		sm.Update(func(s *GameSettings) { s.Audio.SoundVolume = tt.input })
		if got := sm.Settings().Audio.SoundVolume; got != tt.expected {
			t.Errorf("SoundVolume(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
