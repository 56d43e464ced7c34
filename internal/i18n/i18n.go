package i18n

import (
	"fmt"

	"github.com/YangQing-Lin/prelayn-cli/internal/settings"
)

var currentLanguage = "en" // 默认英文

// Message 多语言消息定义
var messages = map[string]map[string]string{
	"en": {
		// Common
		"success": "Success",
		"failed":  "Failed",
		"error":   "Error",
		"warning": "Warning",

		// Form fields
		"field.prefix":        "Prefix",
		"field.backend":       "Backend",
		"field.input_file":    "Input file",
		"field.input_folder":  "Input folder",
		"field.output_file":   "Output file",
		"field.output_folder": "Output folder",
		"field.layer_names":   "Layer names",

		// Validation
		"error.prefix_empty":          "Prefix cannot be empty",
		"error.prefix_invalid":        "Please enter a valid prefix",
		"error.no_backend":            "Please select a backend",
		"error.input_folder_missing":  "Input folder not found",
		"error.output_folder_missing": "Output folder not found",
		"error.input_file_required":   "Please specify the input file",
		"error.output_file_required":  "Please specify the output file",
		"error.input_file_missing":    "Input file not found",
		"error.input_extension":       "Input file extension not compatible with selected backend",
		"error.output_extension":      "Output file extension not compatible with selected backend",
		"error.unknown_backend":       "Unknown backend",
		"error.unsupported_platform":  "Backend not available on this platform",
		"error.no_information":        "No information found for this error",
		"error.readonly_field":        "This field is read-only, use ←/→ to select a backend",
		"error.field_disabled":        "This field is not used by the selected backend",
		"error.another_run":           "Another prelayn run is in progress",

		// Run
		"status.running":         "Adding prefix to layer names...",
		"status.done":            "Done",
		"status.picker_canceled": "Selection canceled",
		"guidance.check_files":   "Please check open files in AutoCAD and try again",

		// Help
		"help.displayed": "Help is being displayed on the browser",
		"help.failed":    "Unable to display help on the browser",
		"help.not_found": "\"%s\" not found",

		// Backup
		"backup.created":  "Existing output backed up",
		"backup.restored": "Backup restored",

		// Interactive form
		"tui.subtitle":      "PREfix LAYer Names",
		"tui.settings":      "Settings",
		"tui.source":        "Source",
		"tui.destination":   "Destination",
		"tui.layers_hint":   "Layer names typed into AutoCAD, space separated, quote names with spaces",
		"tui.run":           "Run",
		"tui.help":          "Help",
		"tui.exit":          "Exit",
		"tui.none":          "(select a backend)",
		"tui.disabled":      "(not used)",
		"tui.select_file":   "Select file",
		"tui.select_folder": "Select folder",
		"tui.keys":          "Tab/Shift+Tab: move • ←/→: backend • Ctrl+O: browse • Ctrl+R: run • F1: help • Esc: exit",
		"tui.picker_keys":   "↑/↓: move • Enter: select • ←/Backspace: parent • Esc: cancel",
	},
	"zh": {
		// Common
		"success": "成功",
		"failed":  "失败",
		"error":   "错误",
		"warning": "警告",

		// Form fields
		"field.prefix":        "前缀",
		"field.backend":       "后端",
		"field.input_file":    "输入文件",
		"field.input_folder":  "输入文件夹",
		"field.output_file":   "输出文件",
		"field.output_folder": "输出文件夹",
		"field.layer_names":   "图层名称",

		// Validation
		"error.prefix_empty":          "前缀不能为空",
		"error.prefix_invalid":        "请输入有效的前缀",
		"error.no_backend":            "请选择后端",
		"error.input_folder_missing":  "输入文件夹不存在",
		"error.output_folder_missing": "输出文件夹不存在",
		"error.input_file_required":   "请指定输入文件",
		"error.output_file_required":  "请指定输出文件",
		"error.input_file_missing":    "输入文件不存在",
		"error.input_extension":       "输入文件扩展名与所选后端不兼容",
		"error.output_extension":      "输出文件扩展名与所选后端不兼容",
		"error.unknown_backend":       "未知的后端",
		"error.unsupported_platform":  "当前平台不支持该后端",
		"error.no_information":        "没有找到该错误的详细信息",
		"error.readonly_field":        "此字段为只读，请使用 ←/→ 键选择后端",
		"error.field_disabled":        "所选后端不使用此字段",
		"error.another_run":           "另一个 prelayn 任务正在运行",

		// Run
		"status.running":         "正在为图层名称添加前缀...",
		"status.done":            "完成",
		"status.picker_canceled": "已取消选择",
		"guidance.check_files":   "请检查 AutoCAD 中打开的文件后重试",

		// Help
		"help.displayed": "帮助文档已在浏览器中打开",
		"help.failed":    "无法在浏览器中打开帮助文档",
		"help.not_found": "未找到 \"%s\"",

		// Backup
		"backup.created":  "已备份原有输出文件",
		"backup.restored": "备份已恢复",

		// Interactive form
		"tui.subtitle":      "图层名称前缀工具",
		"tui.settings":      "设置",
		"tui.source":        "源文件",
		"tui.destination":   "目标文件",
		"tui.layers_hint":   "在 AutoCAD 中输入的图层名，用空格分隔，含空格的名称请加引号",
		"tui.run":           "运行",
		"tui.help":          "帮助",
		"tui.exit":          "退出",
		"tui.none":          "（请选择后端）",
		"tui.disabled":      "（未使用）",
		"tui.select_file":   "选择文件",
		"tui.select_folder": "选择文件夹",
		"tui.keys":          "Tab/Shift+Tab: 切换 • ←/→: 后端 • Ctrl+O: 浏览 • Ctrl+R: 运行 • F1: 帮助 • Esc: 退出",
		"tui.picker_keys":   "↑/↓: 移动 • Enter: 选择 • ←/Backspace: 上级目录 • Esc: 取消",
	},
}

// Init 初始化语言设置
func Init() error {
	manager, err := settings.NewManager()
	if err != nil {
		// 如果加载设置失败，使用默认语言
		return nil
	}

	lang := manager.GetLanguage()
	if lang == "en" || lang == "zh" {
		currentLanguage = lang
	}

	return nil
}

// SetLanguage 设置当前语言
func SetLanguage(lang string) {
	if lang == "en" || lang == "zh" {
		currentLanguage = lang
	}
}

// GetLanguage 获取当前语言
func GetLanguage() string {
	return currentLanguage
}

// T 翻译消息 (Translation)
func T(key string, args ...interface{}) string {
	langMessages, ok := messages[currentLanguage]
	if !ok {
		langMessages = messages["en"] // 降级到英文
	}

	msg, ok := langMessages[key]
	if !ok {
		return key // 如果找不到翻译，返回 key 本身
	}

	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}

	return msg
}
