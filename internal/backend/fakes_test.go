package backend

import (
	"context"
	"time"

	"github.com/YangQing-Lin/prelayn-cli/internal/automation"
)

// fakeConnector 记录调用并返回内存中的图纸
type fakeConnector struct {
	doc        *fakeDocument
	connectErr error
	openErr    error

	dispatched bool
	attached   bool
	visible    bool
	opened     string
	closed     bool
}

func (c *fakeConnector) Dispatch(progID string, visible bool) (automation.Session, error) {
	c.dispatched = true
	c.visible = visible
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	return &fakeSession{c: c}, nil
}

func (c *fakeConnector) Attach(progID string, create bool) (automation.Session, error) {
	c.attached = true
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	return &fakeSession{c: c}, nil
}

type fakeSession struct {
	c *fakeConnector
}

func (s *fakeSession) OpenDocument(path string) (automation.Document, error) {
	s.c.opened = path
	if s.c.openErr != nil {
		return nil, s.c.openErr
	}
	return s.c.doc, nil
}

func (s *fakeSession) ActiveDocument() (automation.Document, error) {
	return s.c.doc, nil
}

func (s *fakeSession) Close() error {
	s.c.closed = true
	return nil
}

type fakeDocument struct {
	layers  []*fakeLayer
	savedAs string
	saveErr error
}

func newFakeDocument(names ...string) *fakeDocument {
	doc := &fakeDocument{}
	for _, n := range names {
		doc.layers = append(doc.layers, &fakeLayer{name: n})
	}
	return doc
}

func (d *fakeDocument) Layers() ([]automation.Layer, error) {
	out := make([]automation.Layer, len(d.layers))
	for i, l := range d.layers {
		out[i] = l
	}
	return out, nil
}

func (d *fakeDocument) SaveAs(path string) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.savedAs = path
	return nil
}

func (d *fakeDocument) names() []string {
	out := make([]string, len(d.layers))
	for i, l := range d.layers {
		out[i] = l.name
	}
	return out
}

type fakeLayer struct {
	name   string
	setErr error
}

func (l *fakeLayer) Name() (string, error) { return l.name, nil }

func (l *fakeLayer) SetName(name string) error {
	if l.setErr != nil {
		return l.setErr
	}
	l.name = name
	return nil
}

// noSleep 记录等待时长但不真正等待
type noSleep struct {
	calls []time.Duration
}

func (s *noSleep) sleep(ctx context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	return ctx.Err()
}
