package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// CreateTempDir 创建临时测试目录
func CreateTempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "prelayn-test-*")
	if err != nil {
		t.Fatalf("创建临时目录失败: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}

// CreateTempFile 创建临时测试文件
func CreateTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("创建临时文件失败: %v", err)
	}
	return path
}

// AssertFileExists 断言文件存在
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("文件不存在: %s", path)
	}
}

// AssertFileNotExists 断言文件不存在
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("文件不应该存在: %s", path)
	}
}

// AssertFileContent 断言文件内容
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取文件失败: %v", err)
	}
	if string(content) != expected {
		t.Errorf("文件内容不匹配\n期望: %s\n实际: %s", expected, string(content))
	}
}

// AssertFileMode 断言文件权限（仅在非Windows系统）
func AssertFileMode(t *testing.T, path string, expected os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("获取文件信息失败: %v", err)
	}
	actual := info.Mode().Perm()
	if actual != expected {
		t.Errorf("文件权限不匹配\n期望: %o\n实际: %o", expected, actual)
	}
}

// WithTempHome 把 HOME/USERPROFILE 指向临时目录后执行 fn
func WithTempHome(t *testing.T, fn func(home string)) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	fn(home)
}

// WithTempCWD 切换到临时目录执行 fn，结束后恢复
func WithTempCWD(t *testing.T, fn func(cwd string)) {
	t.Helper()
	original, err := os.Getwd()
	if err != nil {
		t.Fatalf("获取当前工作目录失败: %v", err)
	}
	dir := t.TempDir()
	// macOS 的临时目录带符号链接，按 Getwd 的结果为准
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("切换工作目录失败: %v", err)
	}
	defer func() {
		if err := os.Chdir(original); err != nil {
			t.Fatalf("恢复工作目录失败: %v", err)
		}
	}()
	fn(dir)
}

// CaptureOutput 捕获 fn 执行期间写入 stdout/stderr 的内容
func CaptureOutput(t *testing.T, fn func()) (string, string) {
	t.Helper()

	origStdout, origStderr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("创建管道失败: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("创建管道失败: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	outCh := make(chan string)
	errCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, outR)
		outCh <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, errR)
		errCh <- buf.String()
	}()

	defer func() {
		os.Stdout, os.Stderr = origStdout, origStderr
	}()
	fn()

	outW.Close()
	errW.Close()
	return <-outCh, <-errCh
}

// BubbleTeaTestHelper 依次把按键送入模型，返回最终模型
// 按键名与 tea.KeyMsg.String() 一致，其它字符串按文本输入处理
func BubbleTeaTestHelper(t *testing.T, model tea.Model, keys []string) tea.Model {
	t.Helper()
	for _, key := range keys {
		model, _ = model.Update(KeyMsg(key))
	}
	return model
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+h":    tea.KeyCtrlH,
	"ctrl+o":    tea.KeyCtrlO,
	"ctrl+r":    tea.KeyCtrlR,
	"f1":        tea.KeyF1,
}

// KeyMsg 把按键名转换为 tea.KeyMsg
func KeyMsg(key string) tea.KeyMsg {
	if kt, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// SampleDXF 生成最小的 ASCII DXF：HEADER 中的当前图层、LAYER 表、每个图层一条直线
func SampleDXF(current string, layers ...string) string {
	lines := []string{
		"  0", "SECTION",
		"  2", "HEADER",
		"  9", "$ACADVER",
		"  1", "AC1015",
		"  9", "$CLAYER",
		"  8", current,
		"  0", "ENDSEC",
		"  0", "SECTION",
		"  2", "TABLES",
		"  0", "TABLE",
		"  2", "LAYER",
		" 70", "4",
	}
	for _, name := range layers {
		lines = append(lines,
			"  0", "LAYER",
			"  2", name,
			" 70", "0",
			" 62", "7",
			"  6", "CONTINUOUS",
		)
	}
	lines = append(lines,
		"  0", "ENDTAB",
		"  0", "ENDSEC",
		"  0", "SECTION",
		"  2", "ENTITIES",
	)
	for _, name := range layers {
		lines = append(lines,
			"  0", "LINE",
			"  8", name,
			" 10", "0.0",
			" 20", "0.0",
			" 11", "1.0",
			" 21", "1.0",
		)
	}
	lines = append(lines, "  0", "ENDSEC", "  0", "EOF")
	return strings.Join(lines, "\n") + "\n"
}

// WriteSampleDXF 在 dir 下写入 SampleDXF 生成的文件
func WriteSampleDXF(t *testing.T, dir, name, current string, layers ...string) string {
	t.Helper()
	return CreateTempFile(t, dir, name, SampleDXF(current, layers...))
}
