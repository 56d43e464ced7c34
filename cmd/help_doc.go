package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/keyboard"
	"github.com/YangQing-Lin/prelayn-cli/internal/portable"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

// HelpFileName 随程序分发的帮助文档
const HelpFileName = "help.html"

//go:embed help.html
var embeddedHelp []byte

var (
	openHelpFunc = keyboard.OpenWithDefault
	baseDirFunc  = portable.BaseDir
)

var helpDocCmd = &cobra.Command{
	Use:   "help-doc",
	Short: "在浏览器中打开帮助文档",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := openHelp()
		if err != nil {
			return err
		}
		printSuccess("%s: %s", i18n.T("help.displayed"), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(helpDocCmd)
}

// findHelp 依次查找程序目录和配置目录，都没有时把内置文档写入配置目录
func findHelp() (string, error) {
	var expected string
	if base, err := baseDirFunc(); err == nil {
		expected = filepath.Join(base, HelpFileName)
		if utils.IsFile(expected) {
			return expected, nil
		}
	}

	dir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, HelpFileName)
	if utils.IsFile(path) {
		return path, nil
	}
	err = os.MkdirAll(dir, 0755)
	if err == nil {
		err = utils.AtomicWriteFile(path, embeddedHelp, 0644)
	}
	if err != nil {
		if expected == "" {
			expected = path
		}
		logger.Warn("write help document failed", zap.String("path", path), zap.Error(err))
		return "", errors.New(i18n.T("help.not_found", utils.ShortenPath(expected, utils.DefaultPathLimit)))
	}
	return path, nil
}

func openHelp() (string, error) {
	path, err := findHelp()
	if err != nil {
		return "", err
	}
	if err := openHelpFunc(path); err != nil {
		return path, fmt.Errorf("%s: %w", i18n.T("help.failed"), err)
	}
	return path, nil
}

// helpStatus 交互界面中帮助按钮的状态文本
func helpStatus() string {
	path, err := findHelp()
	if err != nil {
		return err.Error()
	}
	if err := openHelpFunc(path); err != nil {
		logger.Warn("open help document failed", zap.String("path", path), zap.Error(err))
		return i18n.T("help.failed")
	}
	return i18n.T("help.displayed")
}
