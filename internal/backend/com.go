package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/YangQing-Lin/prelayn-cli/internal/automation"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
)

// comScript 新建 AutoCAD 实例，打开输入文件，重命名后另存为输出文件
type comScript struct {
	conn automation.Connector
	log  *zap.Logger
}

func (s *comScript) AddPrefix(ctx context.Context, req Request) error {
	sess, err := s.conn.Dispatch(automation.ProgID, true)
	if err != nil {
		return platformError(err)
	}
	defer sess.Close()

	doc, err := sess.OpenDocument(req.Input)
	if err != nil {
		return fmt.Errorf("打开图纸失败: %w", err)
	}

	n, err := renameLayers(ctx, doc, req.Prefix)
	if err != nil {
		return err
	}
	s.log.Debug("layers renamed", zap.Int("count", n))

	if err := doc.SaveAs(req.Output); err != nil {
		return fmt.Errorf("保存图纸失败: %w", err)
	}
	return nil
}

// comWrapper 连接正在运行的 AutoCAD，直接修改当前文档，不保存
type comWrapper struct {
	conn automation.Connector
	log  *zap.Logger
}

func (s *comWrapper) AddPrefix(ctx context.Context, req Request) error {
	sess, err := s.conn.Attach(automation.ProgID, true)
	if err != nil {
		return platformError(err)
	}
	defer sess.Close()

	doc, err := sess.ActiveDocument()
	if err != nil {
		return fmt.Errorf("获取当前图纸失败: %w", err)
	}

	n, err := renameLayers(ctx, doc, req.Prefix)
	if err != nil {
		return err
	}
	s.log.Debug("layers renamed", zap.Int("count", n))
	return nil
}

func renameLayers(ctx context.Context, doc automation.Document, prefix string) (int, error) {
	layers, err := doc.Layers()
	if err != nil {
		return 0, fmt.Errorf("读取图层失败: %w", err)
	}

	renamed := 0
	for _, l := range layers {
		if err := ctx.Err(); err != nil {
			return renamed, err
		}
		name, err := l.Name()
		if err != nil {
			return renamed, fmt.Errorf("读取图层名称失败: %w", err)
		}
		if !layer.ShouldRename(name) {
			continue
		}
		if err := l.SetName(layer.Prefixed(prefix, name)); err != nil {
			return renamed, fmt.Errorf("重命名图层 %q 失败: %w", name, err)
		}
		renamed++
	}
	return renamed, nil
}
