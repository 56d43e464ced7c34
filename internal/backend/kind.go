package backend

import (
	"fmt"
	"strings"
)

// Kind 后端类型，零值 None 表示未选择
type Kind int

const (
	None Kind = iota
	ComWrapper
	FileFormat
	ComScript
	UIAutomation
)

const (
	ExtDWG = ".dwg"
	ExtDXF = ".dxf"
)

type kindInfo struct {
	id        string
	variant   string
	extension string
	paths     bool
}

// 各后端的标识与文件要求
var kindTable = map[Kind]kindInfo{
	ComWrapper:   {id: "pyautocad", variant: "com-wrapper", extension: "", paths: false},
	FileFormat:   {id: "ezdxf", variant: "file-format", extension: ExtDXF, paths: true},
	ComScript:    {id: "win32com", variant: "com-script", extension: ExtDWG, paths: true},
	UIAutomation: {id: "pyautogui", variant: "ui-automation", extension: ExtDWG, paths: true},
}

// Kinds 按界面下拉框的顺序返回全部后端
func Kinds() []Kind {
	return []Kind{ComWrapper, FileFormat, ComScript, UIAutomation}
}

// Valid 是否为已知后端
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// ID 稳定标识，用于配置文件和命令行
func (k Kind) ID() string {
	if info, ok := kindTable[k]; ok {
		return info.id
	}
	return ""
}

// Variant 描述性名称
func (k Kind) Variant() string {
	if info, ok := kindTable[k]; ok {
		return info.variant
	}
	return ""
}

func (k Kind) String() string {
	if k == None {
		return "none"
	}
	if info, ok := kindTable[k]; ok {
		return info.id
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// RequiredExtension 输入输出文件要求的扩展名，空字符串表示不限制
func (k Kind) RequiredExtension() string {
	return kindTable[k].extension
}

// UsesFilePaths 是否需要输入输出路径，com-wrapper 直接操作当前文档
func (k Kind) UsesFilePaths() bool {
	return kindTable[k].paths
}

// Accepts 判断扩展名是否兼容，不区分大小写
func (k Kind) Accepts(ext string) bool {
	if !k.Valid() {
		return false
	}
	required := k.RequiredExtension()
	if required == "" {
		return true
	}
	return strings.EqualFold(ext, required)
}

// ParseKind 按稳定标识或描述性名称解析后端
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		info := kindTable[k]
		if s == info.id || s == info.variant {
			return k, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}
