package layer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ParseNames 解析用户输入的图层名称列表
// 支持引号包裹带空格的名称，例如: Layer1 "Wall Lines" 'Door 2'
func ParseNames(input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	names, err := shellwords.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("解析图层名称失败: %w", err)
	}

	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// FormatNames 把名称列表格式化为可被 ParseNames 还原的字符串
func FormatNames(names []string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		if strings.ContainsAny(name, " \t'\"") {
			parts[i] = "'" + strings.ReplaceAll(name, "'", `'"'"'`) + "'"
		} else {
			parts[i] = name
		}
	}
	return strings.Join(parts, " ")
}
