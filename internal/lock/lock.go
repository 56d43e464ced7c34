// Package lock 防止两个 prelayn 进程同时驱动 AutoCAD。
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// LockFileName 锁文件名，位于配置目录
	LockFileName = ".prelayn.lock"
	// StaleLockTimeout 超过该时间未更新的锁视为残留
	StaleLockTimeout = 5 * time.Minute
)

// ErrLocked 另一个运行正在持有锁
var ErrLocked = errors.New("lock is held by another run")

// Holder 锁文件中记录的持有者
type Holder struct {
	PID   int
	RunID string
}

// Lock 基于文件的进程锁
type Lock struct {
	lockPath string
	acquired bool
}

// NewLock 为配置目录创建锁
func NewLock(configDir string) *Lock {
	return &Lock{lockPath: filepath.Join(configDir, LockFileName)}
}

// Path 锁文件路径
func (l *Lock) Path() string {
	return l.lockPath
}

// TryAcquire 尝试获取锁，已被占用时返回 false
func (l *Lock) TryAcquire(runID string) (bool, error) {
	if info, err := os.Stat(l.lockPath); err == nil {
		if time.Since(info.ModTime()) <= StaleLockTimeout {
			return false, nil
		}
		// 残留的锁
		os.Remove(l.lockPath)
	}

	f, err := os.OpenFile(l.lockPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("创建锁文件失败: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatHolder(runID)); err != nil {
		os.Remove(l.lockPath)
		return false, fmt.Errorf("写入锁文件失败: %w", err)
	}

	l.acquired = true
	return true, nil
}

// Acquire 获取锁，被占用时返回包装了持有者信息的 ErrLocked
func (l *Lock) Acquire(runID string) error {
	ok, err := l.TryAcquire(runID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if h, err := l.Holder(); err == nil {
		return fmt.Errorf("%w (pid %d, run %s)", ErrLocked, h.PID, h.RunID)
	}
	return ErrLocked
}

// ForceAcquire 删除已有的锁后获取
func (l *Lock) ForceAcquire(runID string) error {
	os.Remove(l.lockPath)

	if err := os.WriteFile(l.lockPath, []byte(formatHolder(runID)), 0600); err != nil {
		return fmt.Errorf("创建锁文件失败: %w", err)
	}
	l.acquired = true
	return nil
}

// Release 释放锁，未持有时什么也不做
func (l *Lock) Release() error {
	if !l.acquired {
		return nil
	}
	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除锁文件失败: %w", err)
	}
	l.acquired = false
	return nil
}

// Touch 刷新锁文件时间，长时间运行时避免被判定为残留
func (l *Lock) Touch() error {
	if !l.acquired {
		return nil
	}
	now := time.Now()
	return os.Chtimes(l.lockPath, now, now)
}

// Holder 读取当前持有者
func (l *Lock) Holder() (Holder, error) {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return Holder{}, err
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Holder{}, fmt.Errorf("锁文件为空")
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return Holder{}, fmt.Errorf("锁文件中的 PID 无效: %w", err)
	}

	h := Holder{PID: pid}
	if len(fields) > 1 {
		h.RunID = fields[1]
	}
	return h, nil
}

func formatHolder(runID string) string {
	s := strconv.Itoa(os.Getpid())
	if runID != "" {
		s += " " + runID
	}
	return s
}
