package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// FileExists 检查路径是否存在（文件或目录）
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir 检查路径是否为已存在的目录
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile 检查路径是否为已存在的普通文件
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// AtomicWriteFile 原子写入文件：先写临时文件再重命名
// perm 为 0 时沿用已有文件的权限，新文件使用 0644
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = 0644
		if info, err := os.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("写入临时文件失败: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("同步临时文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("关闭临时文件失败: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("设置文件权限失败: %w", err)
	}

	// Windows 下目标文件存在时 Rename 可能失败，先删除
	if runtime.GOOS == "windows" && FileExists(path) {
		if err := os.Remove(path); err != nil {
			cleanup()
			return fmt.Errorf("删除原文件失败: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("重命名临时文件失败: %w", err)
	}
	return nil
}

// CopyFile 复制文件，保留源文件权限
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("读取源文件信息失败: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("源路径是目录: %s", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("复制文件内容失败: %w", err)
	}
	return out.Close()
}

// WriteJSONFile 写入 JSON 文件
func WriteJSONFile(path string, data interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化 JSON 失败: %w", err)
	}

	if err := AtomicWriteFile(path, jsonData, perm); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}

	return nil
}

// ReadJSONFile 读取 JSON 文件
func ReadJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("解析 JSON 失败: %w", err)
	}

	return nil
}
