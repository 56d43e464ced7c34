package tui

import "github.com/charmbracelet/lipgloss"

var (
	// 颜色定义
	primaryColor   = lipgloss.Color("#007AFF")
	successColor   = lipgloss.Color("#34C759")
	dangerColor    = lipgloss.Color("#FF3B30")
	warningColor   = lipgloss.Color("#FF9500")
	subtleColor    = lipgloss.Color("#8E8E93")
	borderColor    = lipgloss.Color("#E5E5EA")
	bgColor        = lipgloss.Color("#FFFFFF")
	textColor      = lipgloss.Color("#000000")
	mutedTextColor = lipgloss.Color("#6C6C70")

	// 标题样式
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// 副标题样式
	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedTextColor).
			Padding(0, 1)

	// 状态栏样式
	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedTextColor).
			Padding(0, 1)

	// 帮助文本样式
	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Padding(0, 1)

	// 面板边框样式
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	// 分组标题样式
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// 成功消息样式
	successMessageStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	// 错误消息样式
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(dangerColor).
				Bold(true)

	// 运行中提示样式
	warningMessageStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	// 输入标签样式
	inputLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// 按钮样式
	buttonStyle = lipgloss.NewStyle().
			Foreground(bgColor).
			Background(primaryColor).
			Padding(0, 2).
			Bold(true)

	// 未聚焦按钮样式
	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(bgColor).
				Background(subtleColor).
				Padding(0, 2)

	// 禁用字段样式
	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C7C7CC"))

	// 输入框焦点样式
	focusedStyle = lipgloss.NewStyle().Foreground(primaryColor)
	noStyle      = lipgloss.NewStyle()
)
