//go:build !windows

package keyboard

// New 非 Windows 平台不支持
func New() (Keyboard, error) {
	return nil, ErrUnsupported
}
