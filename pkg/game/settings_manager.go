package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ControlSettings 玩家操作偏好
// 这些是本机偏好，不是比赛存档：重开比赛不会重置它们
type ControlSettings struct {
	MouseSensitivityX float64 `yaml:"mouseSensitivityX"` // 水平灵敏度
	MouseSensitivityY float64 `yaml:"mouseSensitivityY"` // 垂直灵敏度
	AimSensModifier   float64 `yaml:"aimSensModifier"`   // 瞄准时的灵敏度倍率
	FlipMouseY        bool    `yaml:"flipMouseY"`        // 反转垂直视角
}

// 灵敏度允许范围
const (
	minSensitivity = 0.05
	maxSensitivity = 10.0
)

// DefaultControlSettings 返回默认操作设置
func DefaultControlSettings() *ControlSettings {
	return &ControlSettings{
		MouseSensitivityX: 1,
		MouseSensitivityY: 1,
		AimSensModifier:   1,
		FlipMouseY:        false,
	}
}

// SettingsManager 设置管理器
// 负责操作设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ControlSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "controls"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例，加载失败时同样可用（使用默认设置）
//   - error: 已保存的设置无法读取或解析时返回
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultControlSettings(),
	}

	if err := sm.Load(); err != nil {
		return sm, err
	}

	return sm, nil
}

// OpenSettingsManager 打开应用的 gdata 存储并创建设置管理器
// 存储不可用时退化为仅内存设置
func OpenSettingsManager(appName string) *SettingsManager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		manager = nil
	}
	sm, err := NewSettingsManager(manager)
	if err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultControlSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultControlSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultControlSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解码，缺失字段保持默认
	loaded := DefaultControlSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultControlSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MouseSensitivityX = clampSensitivity(loaded.MouseSensitivityX)
	loaded.MouseSensitivityY = clampSensitivity(loaded.MouseSensitivityY)
	loaded.AimSensModifier = clampSensitivity(loaded.AimSensModifier)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
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

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ControlSettings {
	return sm.settings
}

// SetMouseSensitivity 设置鼠标灵敏度
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetMouseSensitivity(x, y float64) {
	sm.settings.MouseSensitivityX = clampSensitivity(x)
	sm.settings.MouseSensitivityY = clampSensitivity(y)
}

// SetAimSensModifier 设置瞄准灵敏度倍率
func (sm *SettingsManager) SetAimSensModifier(modifier float64) {
	sm.settings.AimSensModifier = clampSensitivity(modifier)
}

// SetFlipMouseY 设置垂直视角反转
func (sm *SettingsManager) SetFlipMouseY(flip bool) {
	sm.settings.FlipMouseY = flip
}

// clampSensitivity 将灵敏度限制在允许范围内
func clampSensitivity(v float64) float64 {
	if v < minSensitivity {
		return minSensitivity
	}
	if v > maxSensitivity {
		return maxSensitivity
	}
	return v
}
