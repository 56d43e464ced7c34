//go:build !windows

package automation

// NewConnector 非 Windows 平台返回的连接器总是失败
func NewConnector() Connector {
	return unsupportedConnector{}
}

type unsupportedConnector struct{}

func (unsupportedConnector) Dispatch(string, bool) (Session, error) {
	return nil, ErrUnsupported
}

func (unsupportedConnector) Attach(string, bool) (Session, error) {
	return nil, ErrUnsupported
}
