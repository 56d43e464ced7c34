package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/job"
	"github.com/YangQing-Lin/prelayn-cli/internal/keyboard"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
	"github.com/YangQing-Lin/prelayn-cli/internal/runner"
	"github.com/YangQing-Lin/prelayn-cli/internal/settings"
)

var (
	runPrefix     string
	runBackend    string
	runIn         string
	runOut        string
	runLayerNames string
	runJob        string
	runNoBackup   bool
	runForceLock  bool
	runDryRun     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "为图层名称添加前缀",
	Long: `校验参数后用指定后端为图层名称添加前缀。

示例:
  prelayn run --prefix A_ --backend ezdxf --in plan.dxf --out plan-a.dxf
  prelayn run --prefix A_ --backend win32com --in plan.dwg --out plan-a.dwg
  prelayn run --prefix A_ --backend pyautocad
  prelayn run --job job.toml --prefix B_        # 命令行参数覆盖任务文件
  prelayn run --prefix A_ --backend pyautogui --in a.dwg --out b.dwg --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrefixJob(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runPrefix, "prefix", "p", "", "图层名称前缀")
	runCmd.Flags().StringVarP(&runBackend, "backend", "b", "", "后端: win32com, pyautocad, ezdxf, pyautogui (默认使用设置)")
	runCmd.Flags().StringVarP(&runIn, "in", "i", "", "输入文件")
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", "输出文件")
	runCmd.Flags().StringVar(&runLayerNames, "layers", "", "pyautogui 使用的图层名称，空格分隔，可加引号")
	runCmd.Flags().StringVar(&runJob, "job", "", "任务文件 (.toml, .yaml, .json)")
	runCmd.Flags().BoolVar(&runNoBackup, "no-backup", false, "覆盖输出文件前不备份")
	runCmd.Flags().BoolVar(&runForceLock, "force-lock", false, "忽略已有的运行锁")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "只显示 pyautogui 将发送的按键")
}

// buildRunForm 合并任务文件、命令行参数和设置，生成表单
func buildRunForm(manager *settings.Manager) (*form.Form, error) {
	j := &job.Job{}
	if runJob != "" {
		loaded, err := job.Load(runJob)
		if err != nil {
			return nil, err
		}
		j = loaded
	}

	if runPrefix != "" {
		j.Prefix = runPrefix
	}
	if runBackend != "" {
		j.Backend = runBackend
	}
	if runIn != "" {
		j.Input = runIn
	}
	if runOut != "" {
		j.Output = runOut
	}
	if runLayerNames != "" {
		names, err := layer.ParseNames(runLayerNames)
		if err != nil {
			return nil, err
		}
		j.Layers = names
	}

	f, err := form.NewInWorkingDir()
	if err != nil {
		return nil, err
	}
	f.SetPrefix(j.Prefix)

	kind := defaultBackend(manager)
	if j.Backend != "" {
		if kind, err = backend.ParseKind(j.Backend); err != nil {
			return nil, err
		}
	}
	f.SetBackend(kind)

	if j.Input != "" {
		if j.Input, err = filepath.Abs(j.Input); err != nil {
			return nil, err
		}
		f.SetInputPath(j.Input)
	}
	if j.Output != "" {
		if j.Output, err = filepath.Abs(j.Output); err != nil {
			return nil, err
		}
		f.SetOutputPath(j.Output)
	}

	names := j.Layers
	if len(names) == 0 {
		names = manager.GetLayerNames()
	}
	f.SetLayerNames(names)
	return f, nil
}

func runPrefixJob(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	manager, err := getSettings()
	if err != nil {
		return fmt.Errorf("初始化设置失败: %w", err)
	}
	f, err := buildRunForm(manager)
	if err != nil {
		return err
	}

	if runDryRun {
		return dryRun(ctx, f)
	}

	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	res := runner.Run(ctx, f, runner.Options{
		ConfigDir: dir,
		Backup:    manager.GetBackupOutput() && !runNoBackup,
		NoLock:    noLock,
		ForceLock: runForceLock,
		Deps:      backendDeps(manager),
		Logger:    logger,
	})
	return reportResult(res)
}

func reportResult(res runner.Result) error {
	if res.BackupID != "" {
		printWarning("已备份原有输出文件: %s", res.BackupID)
	}
	if res.Report.OK {
		printSuccess("%s", res.Report.Status)
		if res.RunID != "" {
			fmt.Printf("  run id: %s\n", res.RunID)
		}
		return nil
	}
	if res.Report.Guidance != "" {
		color.Yellow("%s", res.Report.Guidance)
	}
	return errors.New(res.Report.Status)
}

// dryRun 校验表单后记录 pyautogui 将发送的按键，不打开任何文件
func dryRun(ctx context.Context, f *form.Form) error {
	if err := f.ReadyToRun(); err != nil {
		return err
	}
	if f.Backend() != backend.UIAutomation {
		return fmt.Errorf("--dry-run 仅支持 pyautogui 后端，ezdxf 请使用 plan 命令")
	}

	rec := &keyboard.Recorder{}
	deps := backend.Deps{
		Keyboard: rec,
		Open: func(path string) error {
			fmt.Printf("open %s\n", path)
			return nil
		},
		Sleep:  func(context.Context, time.Duration) error { return nil },
		Logger: logger,
	}
	if err := backend.Run(ctx, f.Request(), deps); err != nil {
		return err
	}
	for _, ev := range rec.Events {
		fmt.Println(ev)
	}
	return nil
}
