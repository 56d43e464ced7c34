package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version 当前版本
const Version = "1.0.0"

// BuildDate 构建日期（由编译时注入）
var BuildDate = "unknown"

// GitCommit Git 提交哈希（由编译时注入）
var GitCommit = "unknown"

// readBuildInfo 便于测试替换
var readBuildInfo = debug.ReadBuildInfo

// GetVersion 获取版本信息
func GetVersion() string { return Version }

// GetBuildDate 获取构建日期
func GetBuildDate() string { return BuildDate }

// GetGitCommit 获取 Git 提交哈希，未注入时读取 go build 记录的 vcs 信息
func GetGitCommit() string {
	if GitCommit != "unknown" && GitCommit != "" {
		return GitCommit
	}
	info, ok := readBuildInfo()
	if !ok {
		return GitCommit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return GitCommit
}

// Summary 一行版本摘要
func Summary() string {
	return fmt.Sprintf("prelayn v%s (%s, %s/%s)", Version, GetGitCommit(), runtime.GOOS, runtime.GOARCH)
}
