// Package runner 执行一次完整的添加前缀流程：校验表单、加锁、备份输出、
// 调用后端、记录日志，并把结果写回表单的状态栏。
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/backup"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/lock"
	"github.com/YangQing-Lin/prelayn-cli/internal/logging"
)

// Options 执行选项
type Options struct {
	// ConfigDir 锁文件和备份所在目录
	ConfigDir string
	// Backup 覆盖前备份已存在的输出文件
	Backup bool
	// NoLock 不加锁
	NoLock bool
	// ForceLock 忽略已有的锁
	ForceLock bool
	Deps      backend.Deps
	Logger    *zap.Logger
}

// Result 执行结果
type Result struct {
	RunID    string
	BackupID string
	Report   backend.Report
	Err      error
}

// Run 校验通过后执行，结果同时写入 f 的状态栏
func Run(ctx context.Context, f *form.Form, opts Options) Result {
	if err := f.ReadyToRun(); err != nil {
		return Result{Report: backend.Outcome(err), Err: err}
	}
	res := RunRequest(ctx, f.Request(), opts)
	f.SetStatus(res.Report.Status)
	return res
}

// RunRequest 执行已校验的请求，不读写表单，可以在 UI 之外的 goroutine 中调用
func RunRequest(ctx context.Context, req backend.Request, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := logging.NewRunID()
	log := logging.ForRun(logger, runID)

	res := execute(ctx, req, runID, log, opts)
	res.RunID = runID
	if errors.Is(res.Err, lock.ErrLocked) {
		res.Report = backend.Report{Status: i18n.T("error.another_run")}
	} else {
		res.Report = backend.Outcome(res.Err)
	}
	return res
}

func execute(ctx context.Context, req backend.Request, runID string, log *zap.Logger, opts Options) Result {
	var res Result
	start := time.Now()

	log.Info("run started",
		zap.String("backend", req.Kind.String()),
		zap.String("prefix", req.Prefix),
		zap.String("input", req.Input),
		zap.String("output", req.Output))

	if !opts.NoLock && opts.ConfigDir != "" {
		if err := os.MkdirAll(opts.ConfigDir, 0755); err != nil {
			res.Err = fmt.Errorf("创建配置目录失败: %w", err)
			return res
		}
		l := lock.NewLock(opts.ConfigDir)
		var err error
		if opts.ForceLock {
			err = l.ForceAcquire(runID)
		} else {
			err = l.Acquire(runID)
		}
		if err != nil {
			log.Warn("lock not acquired", zap.Error(err))
			res.Err = err
			return res
		}
		defer l.Release()
	}

	if opts.Backup && opts.ConfigDir != "" && req.Kind.UsesFilePaths() {
		id, err := backup.CreateBackup(opts.ConfigDir, req.Output, runID)
		if err != nil {
			log.Error("backup failed", zap.Error(err))
			res.Err = err
			return res
		}
		if id != "" {
			log.Info("output backed up", zap.String("backup_id", id))
		}
		res.BackupID = id
	}

	deps := opts.Deps
	deps.Logger = log
	res.Err = backend.Run(ctx, req, deps)

	if res.Err != nil {
		log.Error("run failed", zap.Error(res.Err), zap.Duration("elapsed", time.Since(start)))
	} else {
		log.Info("run finished", zap.Duration("elapsed", time.Since(start)))
	}
	return res
}
