package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/portable"
	"github.com/YangQing-Lin/prelayn-cli/internal/settings"
)

// getSettings 获取设置管理器（考虑 --config-dir 参数）
func getSettings() (*settings.Manager, error) {
	if configDir != "" {
		return settings.NewManagerWithDir(configDir)
	}
	return settings.NewManager()
}

// resolveConfigDir 配置目录：--config-dir 优先，其次便携版目录或 ~/.prelayn
func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	dir, err := portable.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("获取配置目录失败: %w", err)
	}
	return dir, nil
}

// defaultBackend 设置中的默认后端，未设置或无效时为 None
func defaultBackend(manager *settings.Manager) backend.Kind {
	id := manager.GetDefaultBackend()
	if id == "" {
		return backend.None
	}
	kind, err := backend.ParseKind(id)
	if err != nil {
		logger.Warn("invalid default backend in settings")
		return backend.None
	}
	return kind
}

// backendDeps 由设置生成后端依赖
func backendDeps(manager *settings.Manager) backend.Deps {
	return backend.Deps{
		LaunchDelay: manager.LaunchDelay(),
		KeyDelay:    manager.KeyDelay(),
		Logger:      logger,
	}
}

func printSuccess(format string, args ...interface{}) {
	fmt.Println(color.GreenString("✓ "+format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Println(color.YellowString("⚠ "+format, args...))
}
