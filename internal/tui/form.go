package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
	"github.com/YangQing-Lin/prelayn-cli/internal/runner"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

const labelWidth = 16

// fieldOf 界面元素对应的表单字段
var fieldOf = map[item]form.Field{
	itemPrefix:       form.Prefix,
	itemBackend:      form.Backend,
	itemInputFile:    form.InputFile,
	itemInputFolder:  form.InputFolder,
	itemOutputFile:   form.OutputFile,
	itemOutputFolder: form.OutputFolder,
}

// enabled com-wrapper 不使用路径，图层名只对 ui-automation 有意义
func (m Model) enabled(it item) bool {
	kind := m.form.Backend()
	switch it {
	case itemInputFile, itemInputFolder, itemOutputFile, itemOutputFolder:
		return kind != backend.ComWrapper
	case itemLayers:
		return kind == backend.UIAutomation
	}
	return true
}

// handleFormKeys 处理表单模式下的特殊键，返回 false 时交给输入框
func (m Model) handleFormKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return true, m, tea.Quit
	case "tab", "down":
		cmd := m.moveFocus(1)
		return true, m, cmd
	case "shift+tab", "up":
		cmd := m.moveFocus(-1)
		return true, m, cmd
	case "ctrl+r":
		newModel, cmd := m.startRun()
		return true, newModel, cmd
	case "f1", "ctrl+h":
		m.showHelp()
		return true, m, nil
	case "ctrl+o":
		if m.isPathItem(m.focus) {
			newModel, cmd := m.openPicker(m.focus)
			return true, newModel, cmd
		}
		return true, m, nil
	case "left", "right":
		if m.focus == itemBackend {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.cycleBackend(step)
			return true, m, nil
		}
		if m.focus >= itemRun {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			cmd := m.moveFocus(step)
			return true, m, cmd
		}
	case "enter":
		switch m.focus {
		case itemRun:
			newModel, cmd := m.startRun()
			return true, newModel, cmd
		case itemHelp:
			m.showHelp()
			return true, m, nil
		case itemExit:
			return true, m, tea.Quit
		case itemInputFolder, itemOutputFolder:
			newModel, cmd := m.openPicker(m.focus)
			return true, newModel, cmd
		default:
			cmd := m.moveFocus(1)
			return true, m, cmd
		}
	}

	// 文件夹和按钮没有输入框，吞掉其余按键
	if m.inputs[m.focus] == nil {
		if m.focus == itemInputFolder || m.focus == itemOutputFolder || m.focus == itemBackend {
			if msg.Type == tea.KeyRunes {
				m.setMessage(i18n.T("error.readonly_field"), true)
			}
		}
		return true, m, nil
	}
	return false, m, nil
}

// updateInput 把按键交给当前输入框，并同步到表单原始值
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ti := m.inputs[m.focus]
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	m.syncFormFromInput(m.focus)
	return m, cmd
}

func (m *Model) syncFormFromInput(it item) {
	value := m.inputs[it].Value()
	switch it {
	case itemPrefix:
		m.form.SetPrefix(value)
	case itemInputFile:
		m.form.SetInputFile(value)
	case itemOutputFile:
		m.form.SetOutputFile(value)
	}
}

// syncInputsFromForm 用表单原始值刷新输入框
func (m *Model) syncInputsFromForm() {
	m.inputs[itemPrefix].SetValue(m.form.Value(form.Prefix))
	m.inputs[itemInputFile].SetValue(m.form.Value(form.InputFile))
	m.inputs[itemOutputFile].SetValue(m.form.Value(form.OutputFile))
	m.inputs[itemLayers].SetValue(layer.FormatNames(m.form.LayerNames()))
}

// moveFocus 移动焦点并对离开的字段执行校验，跳过禁用的元素
func (m *Model) moveFocus(step int) tea.Cmd {
	m.leave(m.focus)
	next := m.focus
	for i := 0; i < int(itemCount); i++ {
		next = item((int(next) + step + int(itemCount)) % int(itemCount))
		if m.enabled(next) {
			break
		}
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(it item) tea.Cmd {
	m.focus = it
	var cmd tea.Cmd
	for key, ti := range m.inputs {
		if key == it {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return cmd
}

// leave 失去焦点事件
func (m *Model) leave(it item) {
	switch it {
	case itemPrefix, itemBackend, itemInputFile, itemOutputFile:
		err := m.form.Validate(fieldOf[it])
		m.setMessage(m.form.Status(), err != nil)
	case itemLayers:
		m.commitLayerNames()
	}
}

// commitLayerNames 解析图层名输入，出错时保留原值
func (m *Model) commitLayerNames() bool {
	names, err := layer.ParseNames(m.inputs[itemLayers].Value())
	if err != nil {
		m.setMessage(fmt.Sprintf("%s: %v", i18n.T("field.layer_names"), err), true)
		return false
	}
	m.form.SetLayerNames(names)
	return true
}

// cycleBackend 在后端之间循环切换，对应下拉框选择事件
func (m *Model) cycleBackend(step int) {
	kinds := backend.Kinds()
	idx := -1
	for i, k := range kinds {
		if k == m.form.Backend() {
			idx = i
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(kinds) - 1
	default:
		idx = (idx + step + len(kinds)) % len(kinds)
	}
	m.form.SetBackend(kinds[idx])
	err := m.form.Validate(form.Backend)
	m.setMessage(m.form.Status(), err != nil)
}

func (m *Model) setMessage(msg string, failed bool) {
	m.message = msg
	m.failed = failed
	m.guidance = ""
}

func (m *Model) showHelp() {
	if m.opts.Help == nil {
		m.setMessage(i18n.T("help.failed"), true)
		return
	}
	m.setMessage(m.opts.Help(), false)
}

// startRun 校验通过后先显示运行中状态，再在后台执行
func (m Model) startRun() (tea.Model, tea.Cmd) {
	if m.inputs[itemLayers].Focused() && !m.commitLayerNames() {
		return m, nil
	}
	if err := m.form.ReadyToRun(); err != nil {
		m.setMessage(m.form.Status(), true)
		return m, nil
	}

	m.mode = modeRunning
	m.setMessage(i18n.T("status.running"), false)

	run := m.opts.Run
	if run == nil {
		run = func(ctx context.Context, req backend.Request) runner.Result {
			return runner.RunRequest(ctx, req, runner.Options{})
		}
	}
	// 请求在 UI goroutine 中生成，后台只拿到值
	req := m.form.Request()
	return m, func() tea.Msg {
		return runFinishedMsg{result: run(context.Background(), req)}
	}
}

func (m Model) isPathItem(it item) bool {
	switch it {
	case itemInputFile, itemInputFolder, itemOutputFile, itemOutputFolder:
		return true
	}
	return false
}

// viewForm 渲染表单
func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("PRELAYN"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(i18n.T("tui.subtitle")))
	b.WriteString("\n\n")

	settings := []string{
		m.renderInput(itemPrefix, i18n.T("field.prefix")),
		m.renderBackend(),
	}
	b.WriteString(m.renderSection(i18n.T("tui.settings"), settings))

	source := []string{
		m.renderInput(itemInputFile, i18n.T("field.input_file")),
		m.renderFolder(itemInputFolder, i18n.T("field.input_folder"), m.form.Value(form.InputFolder)),
	}
	b.WriteString(m.renderSection(i18n.T("tui.source"), source))

	dest := []string{
		m.renderInput(itemOutputFile, i18n.T("field.output_file")),
		m.renderFolder(itemOutputFolder, i18n.T("field.output_folder"), m.form.Value(form.OutputFolder)),
	}
	b.WriteString(m.renderSection(i18n.T("tui.destination"), dest))

	if m.enabled(itemLayers) {
		rows := []string{
			m.renderInput(itemLayers, i18n.T("field.layer_names")),
			helpStyle.Render(i18n.T("tui.layers_hint")),
		}
		b.WriteString(m.renderSection(i18n.T("field.layer_names"), rows))
	}

	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T("tui.keys")))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSection(title string, rows []string) string {
	body := sectionStyle.Render(title) + "\n" + strings.Join(rows, "\n")
	return panelStyle.Render(body) + "\n"
}

func (m Model) label(it item, text string) string {
	text = padLabel(text+":", labelWidth)
	switch {
	case !m.enabled(it):
		return disabledStyle.Render(text)
	case m.focus == it:
		return focusedStyle.Bold(true).Render(text)
	}
	return inputLabelStyle.Render(text)
}

func (m Model) renderInput(it item, text string) string {
	if !m.enabled(it) {
		return m.label(it, text) + " " + disabledStyle.Render(i18n.T("tui.disabled"))
	}
	line := m.label(it, text) + " " + m.inputs[it].View()
	if field, ok := fieldOf[it]; ok {
		if st := m.form.State(field); st.Checked && !st.Valid {
			line += " " + errorMessageStyle.Render("✗")
		}
	}
	return line
}

func (m Model) renderFolder(it item, text, folder string) string {
	if !m.enabled(it) {
		return m.label(it, text) + " " + disabledStyle.Render(i18n.T("tui.disabled"))
	}
	value := utils.ShortenPath(folder, utils.DefaultPathLimit)
	if m.focus == it {
		value = focusedStyle.Render(value) + " " + helpStyle.Render("[Ctrl+O]")
	} else {
		value = noStyle.Render(value)
	}
	line := m.label(it, text) + " " + value
	if st := m.form.State(fieldOf[it]); st.Checked && !st.Valid {
		line += " " + errorMessageStyle.Render("✗")
	}
	return line
}

func (m Model) renderBackend() string {
	kind := m.form.Backend()
	value := i18n.T("tui.none")
	if kind.Valid() {
		value = fmt.Sprintf("%s (%s)", kind.ID(), kind.Variant())
	}
	if m.focus == itemBackend {
		value = focusedStyle.Render("◀ " + value + " ▶")
	} else {
		value = noStyle.Render("  " + value)
	}
	return m.label(itemBackend, i18n.T("field.backend")) + " " + value
}

func (m Model) renderButtons() string {
	buttons := []struct {
		it   item
		text string
	}{
		{itemRun, i18n.T("tui.run")},
		{itemHelp, i18n.T("tui.help")},
		{itemExit, i18n.T("tui.exit")},
	}
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		style := cancelButtonStyle
		if m.focus == btn.it {
			style = buttonStyle
		}
		parts = append(parts, style.Render(btn.text))
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderStatus() string {
	if m.message == "" {
		return statusBarStyle.Render(" ")
	}
	var line string
	switch {
	case m.mode == modeRunning:
		line = warningMessageStyle.Render(m.message)
	case m.failed:
		line = errorMessageStyle.Render(m.message)
	default:
		line = successMessageStyle.Render(m.message)
	}
	out := statusBarStyle.Render(line)
	if m.guidance != "" {
		out += "\n" + statusBarStyle.Render(m.guidance)
	}
	return out
}
