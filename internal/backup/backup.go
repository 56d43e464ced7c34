// Package backup 在执行前备份将被覆盖的输出图纸，并支持列出和恢复。
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

const (
	// MaxBackups 保留的最大备份数
	MaxBackups = 20
	// BackupDirName 配置目录下的备份子目录
	BackupDirName = "backups"

	backupPrefix  = "backup_"
	manifestExt   = ".json"
	timestampForm = "20060102_150405"
)

// ErrNotFound 备份不存在
var ErrNotFound = errors.New("backup not found")

// Info 一个备份的元数据，保存为 <id>.json
type Info struct {
	ID        string    `json:"id"`
	Original  string    `json:"original"`
	File      string    `json:"file"`
	RunID     string    `json:"runId,omitempty"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`

	// Path 备份数据文件的完整路径，不写入元数据
	Path string `json:"-"`
}

// nowFunc 便于测试固定时间
var nowFunc = time.Now

// Dir 返回配置目录下的备份目录
func Dir(configDir string) string {
	return filepath.Join(configDir, BackupDirName)
}

// CreateBackup 备份 target，target 不存在时返回空 ID
func CreateBackup(configDir, target, runID string) (string, error) {
	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("读取输出文件失败: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("输出路径是目录: %s", target)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("解析输出路径失败: %w", err)
	}

	backupDir := Dir(configDir)
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("创建备份目录失败: %w", err)
	}

	now := nowFunc()
	id := fmt.Sprintf("%s%s_%s", backupPrefix, now.UTC().Format(timestampForm), uuid.NewString()[:8])
	file := id + strings.ToLower(filepath.Ext(abs))

	if err := utils.CopyFile(abs, filepath.Join(backupDir, file)); err != nil {
		return "", fmt.Errorf("复制输出文件失败: %w", err)
	}

	meta := Info{
		ID:        id,
		Original:  abs,
		File:      file,
		RunID:     runID,
		Size:      info.Size(),
		CreatedAt: now.UTC(),
	}
	if err := utils.WriteJSONFile(filepath.Join(backupDir, id+manifestExt), meta, 0600); err != nil {
		os.Remove(filepath.Join(backupDir, file))
		return "", fmt.Errorf("写入备份信息失败: %w", err)
	}

	if err := CleanupOldBackups(backupDir, MaxBackups); err != nil {
		return id, err
	}
	return id, nil
}

// ListBackups 列出所有备份，最新的在前
func ListBackups(configDir string) ([]Info, error) {
	backupDir := Dir(configDir)
	if _, err := os.Stat(backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	backups, err := readManifests(backupDir)
	if err != nil {
		return nil, err
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Find 按 ID 查找备份，允许省略 backup_ 前缀
func Find(configDir, id string) (Info, error) {
	if !strings.HasPrefix(id, backupPrefix) {
		id = backupPrefix + id
	}
	var meta Info
	manifest := filepath.Join(Dir(configDir), id+manifestExt)
	if err := utils.ReadJSONFile(manifest, &meta); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Info{}, err
	}
	meta.Path = filepath.Join(Dir(configDir), meta.File)
	return meta, nil
}

// RestoreBackup 把备份写回原路径，原路径已有文件时先备份它
// 返回恢复前新建的备份 ID（可能为空）
func RestoreBackup(configDir, id string) (string, error) {
	meta, err := Find(configDir, id)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(meta.Path)
	if err != nil {
		return "", fmt.Errorf("读取备份文件失败: %w", err)
	}

	previous, err := CreateBackup(configDir, meta.Original, "")
	if err != nil {
		return "", fmt.Errorf("备份当前文件失败: %w", err)
	}

	if err := utils.AtomicWriteFile(meta.Original, data, 0); err != nil {
		return previous, fmt.Errorf("恢复文件失败: %w", err)
	}
	return previous, nil
}

// CleanupOldBackups 只保留最新的 retain 个备份，retain 为 0 时不清理
func CleanupOldBackups(backupDir string, retain int) error {
	if retain == 0 {
		return nil
	}
	if _, err := os.Stat(backupDir); os.IsNotExist(err) {
		return nil
	}

	backups, err := readManifests(backupDir)
	if err != nil {
		return err
	}
	if len(backups) <= retain {
		return nil
	}

	// 最旧的在前
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.Before(backups[j].CreatedAt)
	})

	for _, b := range backups[:len(backups)-retain] {
		if err := os.Remove(b.Path); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old backup %s: %v\n", b.Path, err)
		}
		os.Remove(filepath.Join(backupDir, b.ID+manifestExt))
	}
	return nil
}

func readManifests(backupDir string) ([]Info, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return nil, fmt.Errorf("读取备份目录失败: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != manifestExt || !strings.HasPrefix(name, backupPrefix) {
			continue
		}
		var meta Info
		if err := utils.ReadJSONFile(filepath.Join(backupDir, name), &meta); err != nil {
			continue // 跳过损坏的元数据
		}
		if meta.ID == "" || meta.File == "" {
			continue
		}
		meta.Path = filepath.Join(backupDir, meta.File)
		backups = append(backups, meta)
	}
	return backups, nil
}
