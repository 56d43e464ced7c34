package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
	"github.com/YangQing-Lin/prelayn-cli/internal/settings"
)

var (
	getSetting bool
	setSetting string
)

const settingKeys = "language, defaultBackend, layerNames, launchDelayMs, keyDelayMs, backupOutput"

var settingsCmd = &cobra.Command{
	Use:   "settings [key]",
	Short: "管理应用设置",
	Long: `管理 prelayn 应用设置

示例:
  prelayn settings                                  # 显示所有设置
  prelayn settings --get language                   # 获取语言设置
  prelayn settings --set language=zh                # 设置语言为中文
  prelayn settings --set defaultBackend=ezdxf       # 设置默认后端
  prelayn settings --set layerNames="Layer1 'Wall Lines'"
  prelayn settings --set keyDelayMs=500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSettings(args)
	},
}

var langCmd = &cobra.Command{
	Use:       "lang <en|zh>",
	Short:     "设置界面语言",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"en", "zh"},
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := getSettings()
		if err != nil {
			return err
		}
		if err := manager.SetLanguage(args[0]); err != nil {
			return err
		}
		i18n.SetLanguage(args[0])
		printSuccess("语言设置已更新为: %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(langCmd)
	settingsCmd.Flags().BoolVar(&getSetting, "get", false, "获取指定设置项的值")
	settingsCmd.Flags().StringVar(&setSetting, "set", "", "设置项 (格式: key=value)")
}

func runSettings(args []string) error {
	manager, err := getSettings()
	if err != nil {
		return err
	}

	// 设置模式
	if setSetting != "" {
		parts := strings.SplitN(setSetting, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("设置格式错误，应为: key=value")
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if err := applySetting(manager, key, value); err != nil {
			return err
		}
		printSuccess("%s 已更新为: %s", key, value)
		return nil
	}

	// 获取模式
	if getSetting {
		if len(args) == 0 {
			return fmt.Errorf("请指定要获取的设置项名称")
		}
		value, err := settingValue(manager, args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}

	// 显示所有设置
	fmt.Println("应用设置:")
	for _, key := range strings.Split(settingKeys, ", ") {
		value, _ := settingValue(manager, key)
		if value == "" {
			value = "(未设置)"
		}
		fmt.Printf("  %-16s %s\n", key+":", value)
	}
	fmt.Printf("\n设置文件: %s\n", manager.Path())
	return nil
}

func settingValue(manager *settings.Manager, key string) (string, error) {
	s := manager.Get()
	switch key {
	case "language":
		return s.Language, nil
	case "defaultBackend":
		return s.DefaultBackend, nil
	case "layerNames":
		return layer.FormatNames(s.LayerNames), nil
	case "launchDelayMs":
		return strconv.Itoa(s.LaunchDelayMs), nil
	case "keyDelayMs":
		return strconv.Itoa(s.KeyDelayMs), nil
	case "backupOutput":
		return strconv.FormatBool(s.BackupOutput), nil
	}
	return "", fmt.Errorf("未知的设置项: %s (支持: %s)", key, settingKeys)
}

func applySetting(manager *settings.Manager, key, value string) error {
	s := manager.Get()
	switch key {
	case "language":
		return manager.SetLanguage(value)
	case "defaultBackend":
		if value == "" {
			return manager.SetDefaultBackend("")
		}
		kind, err := backend.ParseKind(value)
		if err != nil {
			return err
		}
		return manager.SetDefaultBackend(kind.ID())
	case "layerNames":
		names, err := layer.ParseNames(value)
		if err != nil {
			return err
		}
		return manager.SetLayerNames(names)
	case "launchDelayMs", "keyDelayMs":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("无效的毫秒数: %s", value)
		}
		if key == "launchDelayMs" {
			return manager.SetDelays(ms, s.KeyDelayMs)
		}
		return manager.SetDelays(s.LaunchDelayMs, ms)
	case "backupOutput":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("无效的布尔值: %s", value)
		}
		return manager.SetBackupOutput(enabled)
	}
	return fmt.Errorf("未知的设置项: %s (支持: %s)", key, settingKeys)
}
