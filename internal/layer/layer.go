package layer

import "strings"

const (
	// Zero 图层 "0"，始终存在且不可重命名
	Zero = "0"
	// Defpoints 标注定义点图层
	Defpoints = "Defpoints"
)

// Reserved 保留图层名称（精确匹配，区分大小写）
var Reserved = []string{Zero, Defpoints}

// DefaultNames 键盘模拟后端使用的默认图层名称列表
// 这些名称只对示例图纸有效，可通过设置、任务文件或 --layers 覆盖
var DefaultNames = []string{"Layer1", "Layer2", "Layer3", "Layer4"}

// Rename 一次图层重命名
type Rename struct {
	Old string
	New string
}

// IsReserved 判断图层名称是否保留
func IsReserved(name string) bool {
	for _, r := range Reserved {
		if name == r {
			return true
		}
	}
	return false
}

// ShouldRename 判断图层是否需要添加前缀
func ShouldRename(name string) bool {
	return !IsReserved(name)
}

// Prefixed 返回添加前缀后的图层名称
func Prefixed(prefix, name string) string {
	return prefix + name
}

// Plan 根据图层列表生成重命名计划，保留图层被跳过
func Plan(prefix string, names []string) []Rename {
	renames := make([]Rename, 0, len(names))
	for _, name := range names {
		if !ShouldRename(name) {
			continue
		}
		renames = append(renames, Rename{Old: name, New: Prefixed(prefix, name)})
	}
	return renames
}

// Apply 返回重命名后的完整图层列表（顺序不变）
func Apply(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if ShouldRename(name) {
			out[i] = Prefixed(prefix, name)
		} else {
			out[i] = name
		}
	}
	return out
}

// RestoreCurrent 计算重命名后当前图层应指向的名称
func RestoreCurrent(prefix, current string) string {
	if current == "" || IsReserved(current) {
		return current
	}
	return Prefixed(prefix, current)
}

// Join 以逗号连接图层名称，用于状态显示
func Join(names []string) string {
	return strings.Join(names, ", ")
}
