// Package tui 提供交互式表单：前缀、后端、输入输出文件、图层名称、运行与帮助。
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/runner"
)

// item 可获得焦点的界面元素，顺序即 Tab 顺序
type item int

const (
	itemPrefix item = iota
	itemBackend
	itemInputFile
	itemInputFolder
	itemOutputFile
	itemOutputFolder
	itemLayers
	itemRun
	itemHelp
	itemExit
	itemCount
)

// 界面模式
const (
	modeForm    = "form"
	modePicker  = "picker"
	modeRunning = "running"
)

// Options 模型的外部依赖
type Options struct {
	// Run 执行一次已校验的请求，为空时使用 runner.RunRequest。
	// 在后台 goroutine 中调用，不能访问表单
	Run func(ctx context.Context, req backend.Request) runner.Result
	// Help 打开帮助文档，返回状态栏文本
	Help func() string
	// DefaultBackend 初始选中的后端
	DefaultBackend backend.Kind
	// LayerNames ui-automation 的初始图层名
	LayerNames []string
}

// runFinishedMsg 后台执行结束
type runFinishedMsg struct {
	result runner.Result
}

// Model TUI 主模型
type Model struct {
	form    *form.Form
	opts    Options
	inputs  map[item]*textinput.Model
	focus   item
	mode    string
	width   int
	height  int
	message string
	failed  bool

	guidance string

	picker       filepicker.Model
	pickerTarget item
}

// New 创建表单模型
func New(f *form.Form, opts Options) Model {
	m := Model{
		form:   f,
		opts:   opts,
		inputs: make(map[item]*textinput.Model),
		mode:   modeForm,
	}

	for _, it := range []item{itemPrefix, itemInputFile, itemOutputFile, itemLayers} {
		ti := textinput.New()
		ti.CharLimit = 260
		ti.Width = 40
		ti.Prompt = ""
		m.inputs[it] = &ti
	}
	m.inputs[itemPrefix].Placeholder = "A_"
	m.inputs[itemInputFile].Placeholder = "plan.dxf"
	m.inputs[itemOutputFile].Placeholder = "plan-prefixed.dxf"
	m.inputs[itemLayers].Placeholder = "Layer1 Layer2 \"Layer 3\""

	if opts.DefaultBackend.Valid() {
		f.SetBackend(opts.DefaultBackend)
	}
	if len(opts.LayerNames) > 0 {
		f.SetLayerNames(opts.LayerNames)
	}
	m.syncInputsFromForm()
	m.setFocus(itemPrefix)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mode == modePicker {
			m.picker.Height = pickerHeight(m.height)
		}
		return m, nil

	case runFinishedMsg:
		m.mode = modeForm
		report := msg.result.Report
		m.form.SetStatus(report.Status)
		m.message = report.Status
		m.failed = !report.OK
		m.guidance = report.Guidance
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeRunning:
			// 运行期间只响应强制退出
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		case modePicker:
			return m.handlePickerKeys(msg)
		default:
			handled, newModel, cmd := m.handleFormKeys(msg)
			if handled {
				return newModel, cmd
			}
			return m.updateInput(msg)
		}
	}

	// 文件选择器的目录读取等内部消息
	if m.mode == modePicker {
		return m.updatePicker(msg)
	}
	if ti := m.inputs[m.focus]; ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.mode == modePicker {
		return m.viewPicker()
	}
	return m.viewForm()
}

// Program 创建 Bubble Tea 程序
func Program(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}
