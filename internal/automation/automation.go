// Package automation 封装 AutoCAD 的 COM 自动化接口。
//
// 两种连接方式对应两种后端：Dispatch 按 ProgID 新建应用并打开文件（com-script），
// Attach 连接正在运行的实例并操作当前文档（com-wrapper）。两者的错误形态不同，
// 见 ComError 与 DispatchError。
package automation

import "errors"

// ProgID AutoCAD 自动化对象名称
const ProgID = "AutoCAD.Application"

// ErrUnsupported 当前平台没有 COM
var ErrUnsupported = errors.New("COM automation is only available on Windows")

// Layer 图纸中的一个图层
type Layer interface {
	Name() (string, error)
	SetName(name string) error
}

// Document 一个打开的图纸
type Document interface {
	Layers() ([]Layer, error)
	SaveAs(path string) error
}

// Session 与 AutoCAD 的一次连接
type Session interface {
	// OpenDocument 打开图纸文件
	OpenDocument(path string) (Document, error)
	// ActiveDocument 返回当前激活的图纸
	ActiveDocument() (Document, error)
	Close() error
}

// Connector 建立 AutoCAD 连接
type Connector interface {
	// Dispatch 按 ProgID 创建应用对象
	Dispatch(progID string, visible bool) (Session, error)
	// Attach 连接正在运行的应用，不存在时按需启动
	Attach(progID string, createIfNotExists bool) (Session, error)
}
