package game

import (
	"fmt"
	"log"

	"github.com/gonewx/archery/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好设置
// 只保存偏好（难度、音效），不保存对局进度
type GameSettings struct {
	Difficulty   config.Difficulty `yaml:"difficulty"`   // 上次选择的难度
	SoundEnabled bool              `yaml:"soundEnabled"` // 音效开关
	SoundVolume  float64           `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Difficulty:   config.DifficultyNormal,
		SoundEnabled: true,
		SoundVolume:  0.8,
	}
}

// SettingsManager 偏好设置的加载与保存
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *GameSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
// 加载失败时使用默认设置并记录日志
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
// 缺失的字段保留默认值；数据损坏时恢复默认设置并返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: difficulty=%s sound=%v volume=%.2f",
		loaded.Difficulty, loaded.SoundEnabled, loaded.SoundVolume)
	return nil
}

// Save 保存设置到 gdata；降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetDifficulty 记住选择的难度（需调用 Save 持久化）
func (sm *SettingsManager) SetDifficulty(d config.Difficulty) {
	sm.settings.Difficulty = d
}

// SetSoundEnabled 设置音效开关（需调用 Save 持久化）
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0（需调用 Save 持久化）
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// EffectiveVolume 返回实际播放音量（关闭音效时为 0）
func (sm *SettingsManager) EffectiveVolume() float64 {
	if !sm.settings.SoundEnabled {
		return 0
	}
	return sm.settings.SoundVolume
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
