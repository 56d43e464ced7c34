package utils

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis 路径缩写标记
const Ellipsis = "..."

// DefaultPathLimit 状态栏和文件夹标签的默认长度
const DefaultPathLimit = 50

func isSep(r rune) bool {
	return r == '/' || r == '\\'
}

// splitPath 拆分路径，首段包含盘符或根（如 `C:\`、`/`），返回使用的分隔符
func splitPath(path string) (head string, parts []string, sep string) {
	sep = "/"
	if i := strings.IndexAny(path, `/\`); i >= 0 {
		sep = path[i : i+1]
	}

	rest := path
	switch {
	case len(path) >= 3 && path[1] == ':' && isSep(rune(path[2])):
		head, rest = path[:3], path[3:]
	case len(path) >= 1 && isSep(rune(path[0])):
		head, rest = path[:1], path[1:]
	default:
		if i := strings.IndexAny(path, `/\`); i >= 0 {
			head, rest = path[:i], path[i+1:]
		} else {
			head, rest = path, ""
		}
	}

	for _, p := range strings.FieldsFunc(rest, isSep) {
		parts = append(parts, p)
	}
	return head, parts, sep
}

// ShortenPath 把过长的路径缩写为不超过 limit 个字符的显示文本
// 仅用于显示，绝不能用于文件访问
func ShortenPath(path string, limit int) string {
	if utf8.RuneCountInString(path) <= limit {
		return path
	}

	head, parts, sep := splitPath(path)
	prefix := head + Ellipsis
	remaining := limit - utf8.RuneCountInString(prefix)
	if len(parts) == 0 || remaining <= 0 {
		r := []rune(path)
		if limit <= 0 {
			return ""
		}
		return string(r[len(r)-limit:])
	}

	last := []rune(parts[len(parts)-1])
	if len(last)+utf8.RuneCountInString(sep) > remaining {
		if len(last) > remaining {
			last = last[len(last)-remaining:]
		}
		return prefix + string(last)
	}

	var tail []string
	for i := len(parts) - 1; i >= 0; i-- {
		n := utf8.RuneCountInString(sep + parts[i])
		if n > remaining {
			break
		}
		tail = append([]string{sep + parts[i]}, tail...)
		remaining -= n
	}
	return prefix + strings.Join(tail, "")
}
