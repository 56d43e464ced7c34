// Package form 保存输入表单的原始值和每个字段的校验状态，决定能否执行。
//
// 界面只修改原始值并在失去焦点、选择文件或切换后端时调用 Validate；
// 执行前由 ReadyToRun 按固定顺序重新校验所有需要的字段。
package form

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

// IllegalPrefixChars 前缀中不允许出现的字符
const IllegalPrefixChars = "<>\\/\":;*?|,=`"

// Field 表单字段
type Field int

const (
	Prefix Field = iota
	Backend
	InputFile
	InputFolder
	OutputFile
	OutputFolder
	fieldCount
)

var fieldInfo = [fieldCount]struct{ id, label string }{
	Prefix:       {"prefix", "field.prefix"},
	Backend:      {"backend", "field.backend"},
	InputFile:    {"input-file", "field.input_file"},
	InputFolder:  {"input-folder", "field.input_folder"},
	OutputFile:   {"output-file", "field.output_file"},
	OutputFolder: {"output-folder", "field.output_folder"},
}

// Fields 按界面顺序返回所有字段
func Fields() []Field {
	return []Field{Prefix, Backend, InputFile, InputFolder, OutputFile, OutputFolder}
}

func (f Field) String() string {
	if f >= 0 && f < fieldCount {
		return fieldInfo[f].id
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Label 本地化的字段名
func (f Field) Label() string {
	if f >= 0 && f < fieldCount {
		return i18n.T(fieldInfo[f].label)
	}
	return f.String()
}

// IsPath 是否为文件或文件夹字段
func (f Field) IsPath() bool {
	return f == InputFile || f == InputFolder || f == OutputFile || f == OutputFolder
}

// FieldState 字段最近一次校验的结果
type FieldState struct {
	Checked bool
	Valid   bool
	Message string
}

// Form 表单原始值与校验状态
type Form struct {
	cwd          string
	prefix       string
	kind         backend.Kind
	inputFile    string
	inputFolder  string
	outputFile   string
	outputFolder string
	layerNames   []string

	states [fieldCount]FieldState
	status string
}

// New 创建表单，文件夹默认为 cwd
func New(cwd string) *Form {
	f := &Form{cwd: cwd}
	f.Reset()
	return f
}

// NewInWorkingDir 以当前工作目录创建表单
func NewInWorkingDir() (*Form, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("获取当前工作目录失败: %w", err)
	}
	return New(cwd), nil
}

// Reset 恢复初始值并清空校验状态
func (f *Form) Reset() {
	f.prefix = ""
	f.kind = backend.None
	f.inputFile = ""
	f.outputFile = ""
	f.inputFolder = f.cwd
	f.outputFolder = f.cwd
	f.layerNames = nil
	f.states = [fieldCount]FieldState{}
	f.status = ""
}

func (f *Form) SetPrefix(prefix string) { f.prefix = prefix }
func (f *Form) SetBackend(kind backend.Kind) { f.kind = kind }
func (f *Form) SetInputFile(name string) { f.inputFile = name }
func (f *Form) SetInputFolder(dir string) { f.inputFolder = dir }
func (f *Form) SetOutputFile(name string) { f.outputFile = name }
func (f *Form) SetOutputFolder(dir string) { f.outputFolder = dir }
func (f *Form) SetLayerNames(names []string) { f.layerNames = append([]string(nil), names...) }
func (f *Form) SetStatus(status string) { f.status = status }
func (f *Form) Backend() backend.Kind { return f.kind }
func (f *Form) LayerNames() []string { return append([]string(nil), f.layerNames...) }
func (f *Form) Status() string { return f.status }
func (f *Form) State(field Field) FieldState { return f.states[field] }

// SetInputPath 拆分完整路径为文件夹和文件名，对应文件选择框
func (f *Form) SetInputPath(path string) {
	f.inputFolder, f.inputFile = splitFilePath(path)
}

// SetOutputPath 同 SetInputPath
func (f *Form) SetOutputPath(path string) {
	f.outputFolder, f.outputFile = splitFilePath(path)
}

func splitFilePath(path string) (string, string) {
	dir, name := filepath.Split(path)
	if dir == "" {
		return ".", name
	}
	return filepath.Clean(dir), name
}

// Value 字段的原始值
func (f *Form) Value(field Field) string {
	switch field {
	case Prefix:
		return f.prefix
	case Backend:
		return f.kind.ID()
	case InputFile:
		return f.inputFile
	case InputFolder:
		return f.inputFolder
	case OutputFile:
		return f.outputFile
	case OutputFolder:
		return f.outputFolder
	}
	return ""
}

// InputPath 输入文件的完整路径
func (f *Form) InputPath() string {
	return filepath.Join(f.inputFolder, f.inputFile)
}

// OutputPath 输出文件的完整路径
func (f *Form) OutputPath() string {
	return filepath.Join(f.outputFolder, f.outputFile)
}

// Check 只根据当前原始值校验字段，不修改状态
func (f *Form) Check(field Field) error {
	fail := func(r Reason) error {
		return &InputError{Field: field, Reason: r}
	}

	switch field {
	case Prefix:
		if f.prefix == "" {
			return fail(ReasonEmpty)
		}
		if strings.ContainsAny(f.prefix, IllegalPrefixChars) {
			return fail(ReasonIllegalChar)
		}
	case Backend:
		if !f.kind.Valid() {
			return fail(ReasonNoBackend)
		}
	case InputFolder:
		if !utils.IsDir(f.inputFolder) {
			return fail(ReasonFolderNotFound)
		}
	case OutputFolder:
		if !utils.IsDir(f.outputFolder) {
			return fail(ReasonFolderNotFound)
		}
	case InputFile:
		if f.inputFile == "" {
			return fail(ReasonFileNotSpecified)
		}
		if !utils.IsFile(f.InputPath()) {
			return fail(ReasonFileNotFound)
		}
		if !f.kind.Accepts(filepath.Ext(f.inputFile)) {
			return fail(ReasonExtension)
		}
	case OutputFile:
		if f.outputFile == "" {
			return fail(ReasonFileNotSpecified)
		}
		if !f.kind.Accepts(filepath.Ext(f.outputFile)) {
			return fail(ReasonExtension)
		}
	default:
		return fmt.Errorf("未知字段: %s", field)
	}
	return nil
}

// Validate 校验字段并记录结果，状态栏显示错误或清空
func (f *Form) Validate(field Field) error {
	err := f.record(field)
	f.status = message(err)
	return err
}

func (f *Form) record(field Field) error {
	err := f.Check(field)
	if field >= 0 && field < fieldCount {
		f.states[field] = FieldState{Checked: true, Valid: err == nil, Message: message(err)}
	}
	return err
}

// RunChecks 按顺序校验，遇到第一个错误即停止，只更新已校验的字段
func (f *Form) RunChecks(fields ...Field) (Field, error) {
	for _, field := range fields {
		if err := f.record(field); err != nil {
			f.status = message(err)
			return field, err
		}
	}
	f.status = ""
	return 0, nil
}

// RequiredFields 执行前需要校验的字段，顺序固定
func (f *Form) RequiredFields() []Field {
	fields := []Field{Prefix, Backend}
	if f.kind.UsesFilePaths() {
		fields = append(fields, InputFolder, InputFile, OutputFolder, OutputFile)
	}
	return fields
}

// ReadyToRun 校验所有需要的字段
func (f *Form) ReadyToRun() error {
	if _, err := f.RunChecks(Prefix, Backend); err != nil {
		return err
	}
	if !f.kind.UsesFilePaths() {
		return nil
	}
	_, err := f.RunChecks(InputFolder, InputFile, OutputFolder, OutputFile)
	return err
}

// Request 由当前原始值生成执行请求
func (f *Form) Request() backend.Request {
	req := backend.Request{
		Prefix:     f.prefix,
		Kind:       f.kind,
		LayerNames: f.LayerNames(),
	}
	if f.kind.UsesFilePaths() {
		req.Input = f.InputPath()
		req.Output = f.OutputPath()
	}
	return req
}

// IsInputError 判断 err 是否为字段校验错误
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
