package keyboard

import (
	"fmt"
	"os/exec"
	"runtime"
)

// commandFunc 便于测试替换
var commandFunc = exec.Command

// OpenWithDefault 用系统关联的程序打开文件或目录，不等待其退出
func OpenWithDefault(path string) error {
	var openCmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		// start 的第一个带引号参数是窗口标题
		openCmd = commandFunc("cmd", "/c", "start", "", path)
	case "darwin":
		openCmd = commandFunc("open", path)
	case "linux", "freebsd", "openbsd", "netbsd":
		openCmd = commandFunc("xdg-open", path)
	default:
		return fmt.Errorf("不支持的操作系统: %s", runtime.GOOS)
	}

	if err := openCmd.Start(); err != nil {
		return fmt.Errorf("打开 %s 失败: %w", path, err)
	}
	// 回收子进程
	go openCmd.Wait()
	return nil
}
