package portable

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName 配置目录名称
const DirName = ".prelayn"

var (
	portableExecutableFunc = os.Executable
	userHomeDirFunc        = os.UserHomeDir
)

// BaseDir 返回程序所在目录（帮助文档等随程序分发的文件所在位置）
func BaseDir() (string, error) {
	execPath, err := portableExecutableFunc()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath), nil
}

// IsPortableMode 检测是否为便携版模式
// 便携版模式：在程序所在目录下存在 portable.ini 文件
func IsPortableMode() bool {
	execDir, err := BaseDir()
	if err != nil {
		return false
	}

	info, err := os.Stat(filepath.Join(execDir, "portable.ini"))
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// GetPortableConfigDir 获取便携版配置目录
// 便携版模式下，配置目录为程序所在目录下的 .prelayn 子目录
func GetPortableConfigDir() (string, error) {
	execDir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(execDir, DirName), nil
}

// GetConfigDir 获取配置目录：便携版为程序目录，否则为用户主目录下的 .prelayn
func GetConfigDir() (string, error) {
	if IsPortableMode() {
		dir, err := GetPortableConfigDir()
		if err != nil {
			return "", fmt.Errorf("获取便携版配置目录失败: %w", err)
		}
		return dir, nil
	}

	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("获取用户主目录失败: %w", err)
	}
	return filepath.Join(home, DirName), nil
}
