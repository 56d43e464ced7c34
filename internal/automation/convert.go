package automation

import (
	"errors"

	ole "github.com/go-ole/go-ole"
)

// Shape 决定 COM 错误转换成哪种形态
type Shape int

const (
	// ShapeWrapper 对应 com-wrapper 后端
	ShapeWrapper Shape = iota
	// ShapeDispatch 对应 com-script 后端
	ShapeDispatch
)

// FromOle 把 go-ole 返回的 *ole.OleError 转换为 ComError 或 DispatchError
// 其它错误原样返回
func FromOle(err error, shape Shape) error {
	if err == nil {
		return nil
	}
	var oleErr *ole.OleError
	if !errors.As(err, &oleErr) {
		return err
	}

	hr := int32(uint32(oleErr.Code()))
	desc := oleErr.Description()

	switch shape {
	case ShapeDispatch:
		de := &DispatchError{HResult: hr, StrError: oleErr.String()}
		// 只有调用抛出异常时才有 EXCEPINFO
		if desc != "" {
			de.ExcepInfo = []any{0, ProgID, desc, nil, 0, hr}
		}
		return de
	default:
		ce := &ComError{HResult: hr, Text: oleErr.String()}
		if desc != "" {
			ce.Details = []any{desc, ProgID, nil, 0, nil}
		}
		return ce
	}
}
