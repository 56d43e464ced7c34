package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/runner"
	"github.com/YangQing-Lin/prelayn-cli/internal/tui"
)

// tuiRunner 运行 TUI，测试中替换
var tuiRunner = func(m tui.Model) error {
	_, err := tui.Program(m).Run()
	return err
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "启动交互式界面",
	Long:  `启动基于 Bubble Tea 的交互式表单：填写前缀、选择后端和输入输出文件后运行。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI() error {
	manager, err := getSettings()
	if err != nil {
		return fmt.Errorf("初始化设置失败: %w", err)
	}
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	f, err := form.NewInWorkingDir()
	if err != nil {
		return err
	}

	opts := runner.Options{
		ConfigDir: dir,
		Backup:    manager.GetBackupOutput(),
		NoLock:    noLock,
		Deps:      backendDeps(manager),
		Logger:    logger,
	}
	model := tui.New(f, tui.Options{
		Run: func(ctx context.Context, req backend.Request) runner.Result {
			return runner.RunRequest(ctx, req, opts)
		},
		Help:           helpStatus,
		DefaultBackend: defaultBackend(manager),
		LayerNames:     manager.GetLayerNames(),
	})

	if err := tuiRunner(model); err != nil {
		return fmt.Errorf("运行 TUI 失败: %w", err)
	}
	return nil
}
