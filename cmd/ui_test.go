package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YangQing-Lin/prelayn-cli/internal/tui"
)

func TestUICmd(t *testing.T) {
	t.Run("runs tui via tuiRunner", func(t *testing.T) {
		withConfigDir(t)
		withTempCWD(t)
		noLock = true

		called := false
		orig := tuiRunner
		tuiRunner = func(m tui.Model) error {
			called = true
			if !strings.Contains(m.View(), "PRELAYN") {
				t.Errorf("unexpected initial view: %s", m.View())
			}
			return nil
		}
		t.Cleanup(func() { tuiRunner = orig })

		if err := uiCmd.RunE(uiCmd, []string{}); err != nil {
			t.Fatalf("ui cmd: %v", err)
		}
		if !called {
			t.Fatalf("expected tuiRunner called")
		}
	})

	t.Run("tui error", func(t *testing.T) {
		withConfigDir(t)
		withTempCWD(t)

		orig := tuiRunner
		tuiRunner = func(tui.Model) error { return errors.New("no tty") }
		t.Cleanup(func() { tuiRunner = orig })

		err := uiCmd.RunE(uiCmd, []string{})
		if err == nil || !strings.Contains(err.Error(), "运行 TUI 失败") {
			t.Fatalf("expected tui error, got: %v", err)
		}
	})

	t.Run("config dir error", func(t *testing.T) {
		resetGlobals()
		tmpHome := withTempHome(t)

		// 指向一个文件（不是目录），触发设置加载失败
		configDir = filepath.Join(tmpHome, "not-a-dir")
		if err := os.WriteFile(configDir, []byte("x"), 0644); err != nil {
			t.Fatalf("write file: %v", err)
		}

		err := uiCmd.RunE(uiCmd, []string{})
		if err == nil || !strings.Contains(err.Error(), "初始化设置失败") {
			t.Fatalf("expected init error, got: %v", err)
		}
	})
}
