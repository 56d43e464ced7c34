package tui

import (
	"strings"
	"unicode"
)

// displayWidth 计算字符串的显示宽度（中文等宽字符占2格）
func displayWidth(s string) int {
	width := 0
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) ||
			(r >= 0xFF00 && r <= 0xFFEF) { // 全角字符
			width += 2
		} else {
			width += 1
		}
	}
	return width
}

// padLabel 标签补齐到固定显示宽度，保证输入框对齐
func padLabel(label string, width int) string {
	if w := displayWidth(label); w < width {
		return label + strings.Repeat(" ", width-w)
	}
	return label
}
