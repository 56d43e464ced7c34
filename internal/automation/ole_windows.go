//go:build windows

package automation

import (
	"errors"
	"fmt"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse CoInitializeEx 在线程已初始化时返回的 S_FALSE
const sFalse = 0x00000001

// NewConnector 返回基于 go-ole 的连接器
func NewConnector() Connector {
	return oleConnector{}
}

type oleConnector struct{}

func (oleConnector) Dispatch(progID string, visible bool) (Session, error) {
	s, err := newSession(progID, ShapeDispatch, func() (*ole.IUnknown, error) {
		return oleutil.CreateObject(progID)
	})
	if err != nil {
		return nil, err
	}
	if _, err := oleutil.PutProperty(s.app, "Visible", visible); err != nil {
		s.Close()
		return nil, s.convert(err)
	}
	return s, nil
}

func (oleConnector) Attach(progID string, createIfNotExists bool) (Session, error) {
	return newSession(progID, ShapeWrapper, func() (*ole.IUnknown, error) {
		unknown, err := oleutil.GetActiveObject(progID)
		if err == nil || !createIfNotExists {
			return unknown, err
		}
		return oleutil.CreateObject(progID)
	})
}

// oleSession 持有 COM 线程和所有取得的对象，Close 时统一释放
type oleSession struct {
	shape   Shape
	app     *ole.IDispatch
	objects []*ole.IDispatch
	uninit  bool
}

func newSession(progID string, shape Shape, create func() (*ole.IUnknown, error)) (*oleSession, error) {
	// COM 对象只能在创建它的线程上使用
	runtime.LockOSThread()

	s := &oleSession{shape: shape}
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("初始化 COM 失败: %w", s.convert(err))
		}
	}
	s.uninit = true

	unknown, err := create()
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("连接 %s 失败: %w", progID, s.convert(err))
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("获取 %s 接口失败: %w", progID, s.convert(err))
	}
	s.app = s.track(app)
	return s, nil
}

func (s *oleSession) convert(err error) error {
	return FromOle(err, s.shape)
}

func (s *oleSession) track(d *ole.IDispatch) *ole.IDispatch {
	s.objects = append(s.objects, d)
	return d
}

func (s *oleSession) get(d *ole.IDispatch, name string, args ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(d, name, args...)
	if err != nil {
		return nil, s.convert(err)
	}
	return s.track(v.ToIDispatch()), nil
}

func (s *oleSession) OpenDocument(path string) (Document, error) {
	docs, err := s.get(s.app, "Documents")
	if err != nil {
		return nil, err
	}
	v, err := oleutil.CallMethod(docs, "Open", path)
	if err != nil {
		return nil, s.convert(err)
	}
	return &oleDocument{s: s, d: s.track(v.ToIDispatch())}, nil
}

func (s *oleSession) ActiveDocument() (Document, error) {
	d, err := s.get(s.app, "ActiveDocument")
	if err != nil {
		return nil, err
	}
	return &oleDocument{s: s, d: d}, nil
}

func (s *oleSession) Close() error {
	for i := len(s.objects) - 1; i >= 0; i-- {
		s.objects[i].Release()
	}
	s.objects = nil
	s.app = nil
	if s.uninit {
		ole.CoUninitialize()
		s.uninit = false
		runtime.UnlockOSThread()
	}
	return nil
}

type oleDocument struct {
	s *oleSession
	d *ole.IDispatch
}

func (doc *oleDocument) Layers() ([]Layer, error) {
	layers, err := doc.s.get(doc.d, "Layers")
	if err != nil {
		return nil, err
	}
	countVar, err := oleutil.GetProperty(layers, "Count")
	if err != nil {
		return nil, doc.s.convert(err)
	}
	var count int
	switch n := countVar.Value().(type) {
	case int32:
		count = int(n)
	case int64:
		count = int(n)
	case int16:
		count = int(n)
	default:
		return nil, fmt.Errorf("图层数量类型异常: %T", n)
	}

	result := make([]Layer, 0, count)
	for i := 0; i < count; i++ {
		item, err := doc.s.get(layers, "Item", int32(i))
		if err != nil {
			return nil, err
		}
		result = append(result, &oleLayer{s: doc.s, d: item})
	}
	return result, nil
}

func (doc *oleDocument) SaveAs(path string) error {
	if _, err := oleutil.CallMethod(doc.d, "SaveAs", path); err != nil {
		return doc.s.convert(err)
	}
	return nil
}

type oleLayer struct {
	s *oleSession
	d *ole.IDispatch
}

func (l *oleLayer) Name() (string, error) {
	v, err := oleutil.GetProperty(l.d, "Name")
	if err != nil {
		return "", l.s.convert(err)
	}
	return v.ToString(), nil
}

func (l *oleLayer) SetName(name string) error {
	if _, err := oleutil.PutProperty(l.d, "Name", name); err != nil {
		return l.s.convert(err)
	}
	return nil
}
