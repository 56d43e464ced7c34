package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YangQing-Lin/prelayn-cli/internal/automation"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
)

// UserError 消息本身即可直接展示给用户的错误，例如表单校验错误
type UserError interface {
	error
	UserFacing() bool
}

// Report 一次执行的结果，用于状态栏和命令行输出
type Report struct {
	OK bool
	// Status 状态栏显示的一行文本
	Status string
	// Guidance 附加的操作提示，只有自动化错误才有
	Guidance string
}

// Outcome 把执行结果转换为状态文本
func Outcome(err error) Report {
	if err == nil {
		return Report{OK: true, Status: i18n.T("status.done")}
	}

	if msg, ok := automation.Describe(err); ok {
		return Report{Status: msg, Guidance: i18n.T("guidance.check_files")}
	}

	var ue UserError
	if errors.As(err, &ue) && ue.UserFacing() {
		return Report{Status: ue.Error()}
	}
	if errors.Is(err, ErrUnknownBackend) {
		return Report{Status: i18n.T("error.unknown_backend")}
	}
	if errors.Is(err, ErrUnsupportedPlatform) {
		return Report{Status: i18n.T("error.unsupported_platform")}
	}

	return Report{Status: fmt.Sprintf("%s >>> %s", errorKind(err), err.Error())}
}

// errorKind 返回错误的类型名，跳过 fmt.Errorf 产生的包装层
func errorKind(err error) string {
	name := typeName(err)
	for name == "wrapError" || name == "wrapErrors" {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
		name = typeName(err)
	}
	if name == "errorString" {
		return "Error"
	}
	return name
}

func typeName(err error) string {
	name := strings.TrimLeft(fmt.Sprintf("%T", err), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
