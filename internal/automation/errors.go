package automation

import (
	"errors"
	"fmt"

	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
)

// 详细信息在两种错误形态中的下标，按实际错误对象确认，不可互换
const (
	comErrorDetailIndex      = 0
	dispatchErrorDetailIndex = 2
)

// ComError 包装层（com-wrapper）返回的错误
// Details 依次为 description, source, helpfile, helpcontext, progid
type ComError struct {
	HResult int32
	Text    string
	Details []any
}

func (e *ComError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("COM error 0x%08X: %s", uint32(e.HResult), e.Text)
	}
	return fmt.Sprintf("COM error 0x%08X", uint32(e.HResult))
}

// DispatchError 后期绑定调用（com-script）返回的错误
// ExcepInfo 依次为 wCode, source, description, helpFile, helpContext, scode
type DispatchError struct {
	HResult   int32
	StrError  string
	ExcepInfo []any
}

func (e *DispatchError) Error() string {
	if e.StrError != "" {
		return fmt.Sprintf("dispatch error 0x%08X: %s", uint32(e.HResult), e.StrError)
	}
	return fmt.Sprintf("dispatch error 0x%08X", uint32(e.HResult))
}

// IsAutomationError 判断是否为 COM 自动化错误
func IsAutomationError(err error) bool {
	var ce *ComError
	var de *DispatchError
	return errors.As(err, &ce) || errors.As(err, &de)
}

// Describe 把两种形态的 COM 错误统一为一行可读文本
// 依次尝试详细信息中的指定项、简短描述，最后返回"无信息"
func Describe(err error) (string, bool) {
	var ce *ComError
	if errors.As(err, &ce) {
		return describe("ComError", "Details", ce.Details, comErrorDetailIndex, ce.Text), true
	}
	var de *DispatchError
	if errors.As(err, &de) {
		return describe("DispatchError", "ExcepInfo", de.ExcepInfo, dispatchErrorDetailIndex, de.StrError), true
	}
	return "", false
}

func describe(name, field string, details []any, idx int, text string) string {
	if details != nil {
		if idx >= len(details) {
			return fmt.Sprintf("IndexError >>> %s.%s[%d]", name, field, idx)
		}
		if usable(details[idx]) {
			return fmt.Sprintf("%s >>> %v", name, details[idx])
		}
	}
	if text != "" {
		return fmt.Sprintf("%s >>> %s", name, text)
	}
	return fmt.Sprintf("%s >>> %s", name, i18n.T("error.no_information"))
}

func usable(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	default:
		return true
	}
}
