package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/backup"
	"github.com/YangQing-Lin/prelayn-cli/internal/lock"
	"github.com/YangQing-Lin/prelayn-cli/internal/logging"
	"github.com/YangQing-Lin/prelayn-cli/internal/portable"
	"github.com/YangQing-Lin/prelayn-cli/internal/settings"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

var configDirCmd = &cobra.Command{
	Use:   "config-dir",
	Short: "显示配置目录",
	Long:  `显示配置目录以及其中的设置文件、日志、运行锁和备份位置`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigDir()
	},
}

func init() {
	rootCmd.AddCommand(configDirCmd)
}

func runConfigDir() error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	mode := "默认"
	switch {
	case configDir != "":
		mode = "--config-dir"
	case portable.IsPortableMode():
		mode = "便携版"
	}
	fmt.Printf("配置目录: %s (%s)\n", dir, mode)

	l := lock.NewLock(dir)
	entries := []struct {
		label string
		path  string
	}{
		{"设置文件", filepath.Join(dir, settings.FileName)},
		{"日志文件", filepath.Join(dir, logging.FileName)},
		{"运行锁", l.Path()},
		{"备份目录", backup.Dir(dir)},
	}
	for _, e := range entries {
		state := "不存在"
		if utils.FileExists(e.path) {
			state = "存在"
		}
		fmt.Printf("  %s: %s (%s)\n", e.label, e.path, state)
	}

	if h, err := l.Holder(); err == nil {
		printWarning("运行锁被占用: pid %d, run %s", h.PID, h.RunID)
	}
	return nil
}
