package form

import (
	"fmt"

	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
)

// Reason 校验失败的原因
type Reason int

const (
	ReasonEmpty Reason = iota + 1
	ReasonIllegalChar
	ReasonNoBackend
	ReasonFolderNotFound
	ReasonFileNotSpecified
	ReasonFileNotFound
	ReasonExtension
)

var reasonNames = map[Reason]string{
	ReasonEmpty:            "empty",
	ReasonIllegalChar:      "illegal-char",
	ReasonNoBackend:        "no-backend",
	ReasonFolderNotFound:   "folder-not-found",
	ReasonFileNotSpecified: "file-not-specified",
	ReasonFileNotFound:     "file-not-found",
	ReasonExtension:        "extension",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// InputError 字段校验错误，Error() 返回本地化后的提示
type InputError struct {
	Field  Field
	Reason Reason
}

func (e *InputError) Error() string {
	return i18n.T(e.messageKey())
}

// UserFacing 消息可直接显示在状态栏
func (e *InputError) UserFacing() bool {
	return true
}

func (e *InputError) messageKey() string {
	input := e.Field == InputFile || e.Field == InputFolder
	switch e.Reason {
	case ReasonEmpty:
		return "error.prefix_empty"
	case ReasonIllegalChar:
		return "error.prefix_invalid"
	case ReasonNoBackend:
		return "error.no_backend"
	case ReasonFolderNotFound:
		if input {
			return "error.input_folder_missing"
		}
		return "error.output_folder_missing"
	case ReasonFileNotSpecified:
		if input {
			return "error.input_file_required"
		}
		return "error.output_file_required"
	case ReasonFileNotFound:
		return "error.input_file_missing"
	case ReasonExtension:
		if input {
			return "error.input_extension"
		}
		return "error.output_extension"
	}
	return "error"
}
