//go:build windows

package keyboard

import (
	"fmt"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	inputKeyboard    = 1
	keyeventfKeyUp   = 0x0002
	keyeventfUnicode = 0x0004

	vkReturn = 0x0D
	vkEscape = 0x1B
	vkMenu   = 0x12
	vkS      = 0x53
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

var virtualKeys = map[Key]uint16{
	KeyEnter:  vkReturn,
	KeyEscape: vkEscape,
	KeyAlt:    vkMenu,
	KeyS:      vkS,
}

type keybdInput struct {
	wVk       uint16
	wScan     uint16
	dwFlags   uint32
	time      uint32
	extraInfo uintptr
}

// input 与 Win32 INPUT 结构体布局一致（联合体按 MOUSEINPUT 的大小补齐）
type input struct {
	typ uint32
	ki  keybdInput
	_   [8]byte
}

// New 返回通过 SendInput 发送按键的实现
func New() (Keyboard, error) {
	if err := procSendInput.Find(); err != nil {
		return nil, fmt.Errorf("加载 SendInput 失败: %w", err)
	}
	return sendInput{}, nil
}

type sendInput struct{}

func (sendInput) Type(text string) error {
	units := utf16.Encode([]rune(text))
	events := make([]input, 0, len(units)*2)
	for _, u := range units {
		events = append(events,
			input{typ: inputKeyboard, ki: keybdInput{wScan: u, dwFlags: keyeventfUnicode}},
			input{typ: inputKeyboard, ki: keybdInput{wScan: u, dwFlags: keyeventfUnicode | keyeventfKeyUp}},
		)
	}
	return send(events)
}

func (sendInput) Press(key Key, modifiers ...Key) error {
	seq := append(append([]Key{}, modifiers...), key)
	events := make([]input, 0, len(seq)*2)
	for _, k := range seq {
		vk, ok := virtualKeys[k]
		if !ok {
			return fmt.Errorf("不支持的按键: %s", k)
		}
		events = append(events, input{typ: inputKeyboard, ki: keybdInput{wVk: vk}})
	}
	for i := len(seq) - 1; i >= 0; i-- {
		events = append(events, input{typ: inputKeyboard, ki: keybdInput{wVk: virtualKeys[seq[i]], dwFlags: keyeventfKeyUp}})
	}
	return send(events)
}

func send(events []input) error {
	if len(events) == 0 {
		return nil
	}
	n, _, err := procSendInput.Call(
		uintptr(len(events)),
		uintptr(unsafe.Pointer(&events[0])),
		unsafe.Sizeof(events[0]),
	)
	if int(n) != len(events) {
		return fmt.Errorf("SendInput 只发送了 %d/%d 个事件: %w", n, len(events), err)
	}
	return nil
}
