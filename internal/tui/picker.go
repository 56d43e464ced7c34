package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

// pickerHeight 文件列表高度，给标题和帮助留出空间
func pickerHeight(h int) int {
	if h-8 < 5 {
		return 5
	}
	return h - 8
}

// openPicker 为路径字段打开文件选择器，起始目录为字段当前的文件夹
func (m Model) openPicker(target item) (tea.Model, tea.Cmd) {
	if !m.enabled(target) {
		m.setMessage(i18n.T("error.field_disabled"), true)
		return m, nil
	}

	fp := filepicker.New()
	fp.AutoHeight = false
	fp.Height = pickerHeight(m.height)
	if m.height == 0 {
		fp.Height = 15
	}

	var folderField form.Field
	switch target {
	case itemInputFile, itemInputFolder:
		folderField = form.InputFolder
	default:
		folderField = form.OutputFolder
	}
	dir := m.form.Value(folderField)
	if !utils.IsDir(dir) {
		if cwd, err := os.Getwd(); err == nil {
			dir = cwd
		}
	}
	fp.CurrentDirectory = dir

	switch target {
	case itemInputFolder, itemOutputFolder:
		fp.DirAllowed = true
		fp.FileAllowed = false
	default:
		fp.DirAllowed = false
		fp.FileAllowed = true
		// filepicker 的 AllowedTypes 区分大小写，扩展名交给 Validate 检查
	}

	m.picker = fp
	m.pickerTarget = target
	m.mode = modePicker
	m.setMessage("", false)
	return m, m.picker.Init()
}

// handlePickerKeys 选择器模式下的按键；Esc 取消且不改变原值
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closePicker()
		m.setMessage(i18n.T("status.picker_canceled"), false)
		return m, nil
	case ".":
		// 选择当前目录
		if m.isFolderTarget() {
			m.choose(m.picker.CurrentDirectory)
			return m, nil
		}
	}
	return m.updatePicker(msg)
}

// updatePicker 把消息交给选择器并检查是否选中了文件
func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.choose(path)
		return m, nil
	}
	return m, cmd
}

func (m Model) isFolderTarget() bool {
	return m.pickerTarget == itemInputFolder || m.pickerTarget == itemOutputFolder
}

// choose 写回选中的路径并校验相应字段
func (m *Model) choose(path string) {
	var field form.Field
	switch m.pickerTarget {
	case itemInputFile:
		m.form.SetInputPath(path)
		field = form.InputFile
	case itemInputFolder:
		m.form.SetInputFolder(path)
		field = form.InputFolder
	case itemOutputFile:
		m.form.SetOutputPath(path)
		field = form.OutputFile
	case itemOutputFolder:
		m.form.SetOutputFolder(path)
		field = form.OutputFolder
	}
	m.closePicker()
	m.syncInputsFromForm()
	err := m.form.Validate(field)
	m.setMessage(m.form.Status(), err != nil)
}

func (m *Model) closePicker() {
	m.mode = modeForm
	m.picker = filepicker.Model{}
}

func (m Model) viewPicker() string {
	var b strings.Builder
	title := i18n.T("tui.select_file")
	if m.isFolderTarget() {
		title = i18n.T("tui.select_folder")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(utils.ShortenPath(m.picker.CurrentDirectory, utils.DefaultPathLimit)))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}
	keys := i18n.T("tui.picker_keys")
	if m.isFolderTarget() {
		keys += " • .: " + i18n.T("tui.select_folder")
	}
	b.WriteString(helpStyle.Render(keys))
	b.WriteString("\n")
	return b.String()
}
