package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/YangQing-Lin/prelayn-cli/internal/portable"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

const (
	// FileName 设置文件名
	FileName = "settings.json"
	// DefaultLaunchDelayMs 打开图纸后等待 AutoCAD 加载的时间
	DefaultLaunchDelayMs = 3000
	// DefaultKeyDelayMs 每次键盘输入后的等待时间
	DefaultKeyDelayMs = 1000
)

// AppSettings 应用设置
type AppSettings struct {
	Language       string   `json:"language"`                 // 语言: "en" 或 "zh"
	DefaultBackend string   `json:"defaultBackend,omitempty"` // 默认后端标识，如 "ezdxf"
	LayerNames     []string `json:"layerNames,omitempty"`     // 键盘模拟后端使用的图层名称
	LaunchDelayMs  int      `json:"launchDelayMs"`
	KeyDelayMs     int      `json:"keyDelayMs"`
	BackupOutput   bool     `json:"backupOutput"` // 覆盖输出文件前先备份
}

// Manager 设置管理器
type Manager struct {
	settings     *AppSettings
	settingsPath string
}

// NewManager 创建设置管理器
func NewManager() (*Manager, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, fmt.Errorf("获取设置文件路径失败: %w", err)
	}
	return newManager(settingsPath)
}

// NewManagerWithDir 使用指定配置目录创建设置管理器
func NewManagerWithDir(dir string) (*Manager, error) {
	return newManager(filepath.Join(dir, FileName))
}

func newManager(settingsPath string) (*Manager, error) {
	manager := &Manager{
		settingsPath: settingsPath,
	}

	if err := manager.Load(); err != nil {
		return nil, err
	}

	return manager, nil
}

// GetSettingsPath 获取设置文件路径
func GetSettingsPath() (string, error) {
	dir, err := portable.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Defaults 返回默认设置
func Defaults() *AppSettings {
	return &AppSettings{
		Language:      "en",
		LaunchDelayMs: DefaultLaunchDelayMs,
		KeyDelayMs:    DefaultKeyDelayMs,
		BackupOutput:  true,
	}
}

// Load 加载设置文件
func (m *Manager) Load() error {
	// 如果设置文件不存在，创建默认设置
	if !utils.FileExists(m.settingsPath) {
		m.settings = Defaults()
		return m.Save()
	}

	data, err := os.ReadFile(m.settingsPath)
	if err != nil {
		return fmt.Errorf("读取设置文件失败: %w", err)
	}

	m.settings = Defaults()
	if err := json.Unmarshal(data, m.settings); err != nil {
		return fmt.Errorf("解析设置文件失败: %w", err)
	}

	return nil
}

// Save 保存设置文件
func (m *Manager) Save() error {
	// 确保目录存在
	dir := filepath.Dir(m.settingsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建设置目录失败: %w", err)
	}

	return utils.WriteJSONFile(m.settingsPath, m.settings, 0600)
}

// Path 返回设置文件路径
func (m *Manager) Path() string {
	return m.settingsPath
}

// Dir 返回配置目录
func (m *Manager) Dir() string {
	return filepath.Dir(m.settingsPath)
}

// GetLanguage 获取语言设置
func (m *Manager) GetLanguage() string {
	return m.settings.Language
}

// SetLanguage 设置语言
func (m *Manager) SetLanguage(language string) error {
	if language != "en" && language != "zh" {
		return fmt.Errorf("不支持的语言: %s (支持: en, zh)", language)
	}
	m.settings.Language = language
	return m.Save()
}

// GetDefaultBackend 获取默认后端
func (m *Manager) GetDefaultBackend() string {
	return m.settings.DefaultBackend
}

// SetDefaultBackend 设置默认后端（调用方负责校验标识）
func (m *Manager) SetDefaultBackend(id string) error {
	m.settings.DefaultBackend = id
	return m.Save()
}

// GetLayerNames 获取键盘模拟后端的图层名称列表，未设置时返回 nil
func (m *Manager) GetLayerNames() []string {
	if len(m.settings.LayerNames) == 0 {
		return nil
	}
	out := make([]string, len(m.settings.LayerNames))
	copy(out, m.settings.LayerNames)
	return out
}

// SetLayerNames 设置键盘模拟后端的图层名称列表
func (m *Manager) SetLayerNames(names []string) error {
	m.settings.LayerNames = append([]string(nil), names...)
	return m.Save()
}

// LaunchDelay 打开图纸后的等待时间
func (m *Manager) LaunchDelay() time.Duration {
	return time.Duration(m.settings.LaunchDelayMs) * time.Millisecond
}

// KeyDelay 每次键盘输入后的等待时间
func (m *Manager) KeyDelay() time.Duration {
	return time.Duration(m.settings.KeyDelayMs) * time.Millisecond
}

// SetDelays 设置键盘模拟的等待时间（毫秒）
func (m *Manager) SetDelays(launchMs, keyMs int) error {
	if launchMs < 0 || keyMs < 0 {
		return fmt.Errorf("等待时间不能为负数")
	}
	m.settings.LaunchDelayMs = launchMs
	m.settings.KeyDelayMs = keyMs
	return m.Save()
}

// GetBackupOutput 是否在覆盖输出文件前备份
func (m *Manager) GetBackupOutput() bool {
	return m.settings.BackupOutput
}

// SetBackupOutput 设置是否备份输出文件
func (m *Manager) SetBackupOutput(enabled bool) error {
	m.settings.BackupOutput = enabled
	return m.Save()
}

// Get 获取所有设置
func (m *Manager) Get() *AppSettings {
	return m.settings
}
