package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	openConfigGOOS        = runtime.GOOS
	openConfigExecCommand = exec.Command
)

var openConfigCmd = &cobra.Command{
	Use:   "open-config",
	Short: "打开配置文件夹",
	Long:  `在系统文件管理器中打开 prelayn 配置文件夹 (设置、日志、备份)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpenConfig()
	},
}

func init() {
	rootCmd.AddCommand(openConfigCmd)
}

func runOpenConfig() error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	fmt.Printf("配置目录: %s\n", dir)

	// 根据操作系统打开文件管理器
	var openCmd *exec.Cmd
	switch openConfigGOOS {
	case "windows":
		openCmd = openConfigExecCommand("explorer", dir)
	case "darwin":
		openCmd = openConfigExecCommand("open", dir)
	case "linux", "freebsd", "openbsd", "netbsd":
		openCmd = openConfigExecCommand("xdg-open", dir)
	default:
		return fmt.Errorf("不支持的操作系统: %s", openConfigGOOS)
	}

	if err := openCmd.Start(); err != nil {
		return fmt.Errorf("打开文件管理器失败: %w", err)
	}
	go openCmd.Wait()

	printSuccess("已在文件管理器中打开配置目录")
	return nil
}
