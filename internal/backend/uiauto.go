package backend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/YangQing-Lin/prelayn-cli/internal/keyboard"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
)

// uiAutomation 用系统关联打开图纸，再向 AutoCAD 命令行发送按键
type uiAutomation struct {
	kb          keyboard.Keyboard
	open        func(path string) error
	sleep       func(ctx context.Context, d time.Duration) error
	launchDelay time.Duration
	keyDelay    time.Duration
	log         *zap.Logger
}

func (s *uiAutomation) AddPrefix(ctx context.Context, req Request) error {
	names := req.LayerNames
	if len(names) == 0 {
		names = layer.DefaultNames
	}

	if err := s.open(req.Input); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.launchDelay); err != nil {
		return err
	}

	for _, name := range names {
		if !layer.ShouldRename(name) {
			continue
		}
		s.log.Debug("renaming layer", zap.String("layer", name))
		for _, line := range []string{"-LAYER", "Rename", name, layer.Prefixed(req.Prefix, name)} {
			if err := s.line(ctx, line); err != nil {
				return err
			}
		}
		if err := s.kb.Press(keyboard.KeyEscape); err != nil {
			return err
		}
	}

	if err := s.line(ctx, "SAVEAS"); err != nil {
		return err
	}
	if err := s.line(ctx, req.Output); err != nil {
		return err
	}
	// 第一次保存，第二次确认覆盖
	for i := 0; i < 2; i++ {
		if err := s.kb.Press(keyboard.KeyS, keyboard.KeyAlt); err != nil {
			return err
		}
	}
	return nil
}

// line 输入一行命令并回车
func (s *uiAutomation) line(ctx context.Context, text string) error {
	if err := s.kb.Type(text); err != nil {
		return err
	}
	if err := s.kb.Press(keyboard.KeyEnter); err != nil {
		return err
	}
	return s.sleep(ctx, s.keyDelay)
}
