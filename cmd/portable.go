package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/portable"
)

// PortableMarker 程序目录下存在该文件时启用便携版模式
const PortableMarker = "portable.ini"

var portableCmd = &cobra.Command{
	Use:     "portable [status|enable|disable|on|off]",
	Aliases: []string{"port"},
	Short:   "便携版模式管理",
	Long: `便携版模式管理命令。

便携版模式说明:
  - 在程序所在目录下放置 portable.ini 文件即可启用便携版模式
  - 便携版模式下，设置、日志和备份存储在程序目录的 .prelayn 子目录中
  - 适用于从 U 盘运行或在多台绘图工作站之间共享设置的场景

使用方法:
  prelayn portable [status]  # 查看便携版状态（默认）
  prelayn portable enable    # 启用便携版模式（创建 portable.ini）
  prelayn portable disable   # 禁用便携版模式（删除 portable.ini）`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortableStatus()
	},
}

var portableStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "查看便携版模式状态",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortableStatus()
	},
}

var portableEnableCmd = &cobra.Command{
	Use:     "enable",
	Aliases: []string{"on"},
	Short:   "启用便携版模式",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortableEnable()
	},
}

var portableDisableCmd = &cobra.Command{
	Use:     "disable",
	Aliases: []string{"off"},
	Short:   "禁用便携版模式",
	Long: `禁用便携版模式，删除程序所在目录的 portable.ini 文件。
注意：已有的便携版设置不会被删除，需要手动清理。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPortableDisable()
	},
}

func init() {
	rootCmd.AddCommand(portableCmd)
	portableCmd.AddCommand(portableStatusCmd)
	portableCmd.AddCommand(portableEnableCmd)
	portableCmd.AddCommand(portableDisableCmd)
}

func markerPath() (string, error) {
	dir, err := portable.BaseDir()
	if err != nil {
		return "", fmt.Errorf("获取程序路径失败: %w", err)
	}
	return filepath.Join(dir, PortableMarker), nil
}

func runPortableStatus() error {
	if portable.IsPortableMode() {
		fmt.Println("✓ 便携版模式：已启用")
	} else {
		fmt.Println("✗ 便携版模式：未启用")
	}

	if marker, err := markerPath(); err == nil {
		fmt.Printf("标记文件: %s\n", marker)
	}

	dir, err := portable.GetConfigDir()
	if err != nil {
		return err
	}
	fmt.Printf("配置目录: %s\n", dir)
	return nil
}

func runPortableEnable() error {
	if portable.IsPortableMode() {
		fmt.Println("便携版模式已经启用")
		return runPortableStatus()
	}

	marker, err := markerPath()
	if err != nil {
		return err
	}
	content := []byte("# prelayn portable mode\n# Delete this file to disable portable mode.\n")
	if err := os.WriteFile(marker, content, 0644); err != nil {
		return fmt.Errorf("创建 portable.ini 失败: %w", err)
	}

	printSuccess("便携版模式已启用")
	fmt.Printf("  标记文件: %s\n", marker)
	if dir, err := portable.GetPortableConfigDir(); err == nil {
		fmt.Printf("  配置目录: %s\n", dir)
	}
	return nil
}

func runPortableDisable() error {
	if !portable.IsPortableMode() {
		fmt.Println("便携版模式未启用，无需禁用")
		return nil
	}

	marker, err := markerPath()
	if err != nil {
		return err
	}
	if err := os.Remove(marker); err != nil {
		return fmt.Errorf("删除 portable.ini 失败: %w", err)
	}

	printSuccess("便携版模式已禁用")
	fmt.Printf("  已删除: %s\n", marker)
	return nil
}
