// Package keyboard 模拟键盘输入，用于 ui-automation 后端驱动 AutoCAD 命令行。
package keyboard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported 当前平台不支持模拟按键
var ErrUnsupported = errors.New("keystroke synthesis is only available on Windows")

// Key 非文本按键
type Key int

const (
	KeyEnter Key = iota + 1
	KeyEscape
	KeyAlt
	KeyS
)

var keyNames = map[Key]string{
	KeyEnter:  "enter",
	KeyEscape: "esc",
	KeyAlt:    "alt",
	KeyS:      "s",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Keyboard 向前台窗口发送按键
type Keyboard interface {
	// Type 逐字输入文本
	Type(text string) error
	// Press 按下 key，modifiers 在 key 之前按下、之后释放
	Press(key Key, modifiers ...Key) error
}

// Recorder 记录按键而不发送，用于预演和测试
type Recorder struct {
	Events []string
}

func (r *Recorder) Type(text string) error {
	r.Events = append(r.Events, "type "+text)
	return nil
}

func (r *Recorder) Press(key Key, modifiers ...Key) error {
	parts := make([]string, 0, len(modifiers)+1)
	for _, m := range modifiers {
		parts = append(parts, m.String())
	}
	parts = append(parts, key.String())
	r.Events = append(r.Events, "press "+strings.Join(parts, "+"))
	return nil
}
