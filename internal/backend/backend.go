// Package backend 实现为图层名称添加前缀的四种方式。
//
// 每种方式实现 Strategy 接口，由 Kind 选择。COM 与按键方式只在 Windows 上可用，
// 其它平台返回 ErrUnsupportedPlatform。
package backend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/YangQing-Lin/prelayn-cli/internal/automation"
	"github.com/YangQing-Lin/prelayn-cli/internal/keyboard"
)

var (
	ErrUnknownBackend      = errors.New("unknown backend")
	ErrUnsupportedPlatform = errors.New("backend not supported on this platform")
)

const (
	DefaultLaunchDelay = 3 * time.Second
	DefaultKeyDelay    = 1 * time.Second
)

// Request 一次添加前缀的请求
type Request struct {
	Prefix string
	Kind   Kind
	Input  string
	Output string
	// LayerNames 仅 ui-automation 使用，为空时使用 layer.DefaultNames
	LayerNames []string
}

// Strategy 添加前缀的具体实现
type Strategy interface {
	AddPrefix(ctx context.Context, req Request) error
}

// Deps 各实现依赖的外部能力，零值字段使用默认实现
type Deps struct {
	Connector   automation.Connector
	Keyboard    keyboard.Keyboard
	Open        func(path string) error
	Sleep       func(ctx context.Context, d time.Duration) error
	LaunchDelay time.Duration
	KeyDelay    time.Duration
	Logger      *zap.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Connector == nil {
		d.Connector = automation.NewConnector()
	}
	if d.Open == nil {
		d.Open = keyboard.OpenWithDefault
	}
	if d.Sleep == nil {
		d.Sleep = sleep
	}
	if d.LaunchDelay <= 0 {
		d.LaunchDelay = DefaultLaunchDelay
	}
	if d.KeyDelay <= 0 {
		d.KeyDelay = DefaultKeyDelay
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// New 按 Kind 创建实现
func New(kind Kind, deps Deps) (Strategy, error) {
	deps = deps.withDefaults()
	log := deps.Logger.With(zap.String("backend", kind.String()))

	switch kind {
	case ComScript:
		return &comScript{conn: deps.Connector, log: log}, nil
	case ComWrapper:
		return &comWrapper{conn: deps.Connector, log: log}, nil
	case FileFormat:
		return &fileFormat{log: log}, nil
	case UIAutomation:
		kb := deps.Keyboard
		if kb == nil {
			var err error
			if kb, err = keyboard.New(); err != nil {
				return nil, platformError(err)
			}
		}
		return &uiAutomation{
			kb:          kb,
			open:        deps.Open,
			sleep:       deps.Sleep,
			launchDelay: deps.LaunchDelay,
			keyDelay:    deps.KeyDelay,
			log:         log,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, kind)
	}
}

// Run 校验 Kind 后执行对应实现，未知 Kind 不会触及任何路径
func Run(ctx context.Context, req Request, deps Deps) error {
	if !req.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownBackend, req.Kind)
	}
	s, err := New(req.Kind, deps)
	if err != nil {
		return err
	}
	return s.AddPrefix(ctx, req)
}

func platformError(err error) error {
	if errors.Is(err, automation.ErrUnsupported) || errors.Is(err, keyboard.ErrUnsupported) {
		return fmt.Errorf("%w: %v", ErrUnsupportedPlatform, err)
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
