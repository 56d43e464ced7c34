package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/logging"
)

var (
	configDir string
	verbose   bool
	noLock    bool

	logger      = zap.NewNop()
	closeLogger = func() error { return nil }

	// isTerminal 标准输入输出都是终端时才启动交互界面
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

var rootCmd = &cobra.Command{
	Use:   "prelayn",
	Short: "为 AutoCAD 图层名称添加前缀",
	Long: `prelayn (PREfix LAYer Names) 为 AutoCAD 图纸中的图层名称添加前缀。
图层 "0" 和 "Defpoints" 保持不变。

支持的后端:
  win32com   通过 COM 打开 .dwg 图纸，重命名后另存为          (Windows)
  pyautocad  重命名 AutoCAD 当前活动图纸中的图层，不保存       (Windows)
  ezdxf      直接读写 .dxf 文件，不需要 AutoCAD
  pyautogui  用默认程序打开 .dwg，模拟键盘输入 -LAYER 命令     (Windows)

使用方法:
  prelayn                      启动交互式界面
  prelayn run --prefix A_ --backend ezdxf --in plan.dxf --out plan-a.dxf
  prelayn plan --prefix A_ --in plan.dxf`,
	SilenceUsage: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return cmd.Help()
		}
		return runUI()
	},
}

// setup 读取设置中的语言并初始化日志
func setup(cmd *cobra.Command, args []string) error {
	manager, err := getSettings()
	if err != nil {
		return fmt.Errorf("初始化设置失败: %w", err)
	}
	i18n.SetLanguage(manager.GetLanguage())

	// 交互界面占用终端，日志只写文件
	opts := logging.Options{Dir: manager.Dir(), Verbose: verbose}
	if verbose && cmd != rootCmd && cmd != uiCmd {
		opts.Console = os.Stderr
	}
	l, closeFn, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	logger = l
	closeLogger = closeFn
	logger.Debug("command started", zap.String("command", cmd.CommandPath()), zap.Strings("args", args))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// setup 引用了 rootCmd，不能写在字面量里
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "配置目录 (默认: ~/.prelayn)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
	rootCmd.PersistentFlags().BoolVar(&noLock, "no-lock", false, "不使用运行锁")

	// 自定义帮助模板
	rootCmd.SetHelpTemplate(`{{.Long}}

{{if .HasAvailableSubCommands}}可用命令:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}

{{if .HasAvailableLocalFlags}}选项:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
{{if .HasAvailableInheritedFlags}}全局选项:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

使用 "{{.CommandPath}} [command] --help" 获取更多关于命令的信息。
`)
}
