package backend

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/YangQing-Lin/prelayn-cli/internal/dxf"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
)

const currentLayerVar = "$CLAYER"

// fileFormat 直接读写 DXF 文件，不需要 AutoCAD
type fileFormat struct {
	log *zap.Logger
}

func (s *fileFormat) AddPrefix(ctx context.Context, req Request) error {
	doc, err := dxf.ReadFile(req.Input)
	if err != nil {
		return err
	}

	// 当前图层指向被重命名的图层时，先切到 0 层
	current, hasCurrent := doc.Header(currentLayerVar)
	if hasCurrent {
		if err := doc.SetHeader(currentLayerVar, layer.Zero); err != nil {
			return err
		}
	}

	names, err := doc.Layers()
	if err != nil {
		return err
	}

	renamed := make(map[string]string, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !layer.ShouldRename(name) {
			continue
		}
		newName := layer.Prefixed(req.Prefix, name)
		if err := doc.RenameLayer(name, newName); err != nil {
			return fmt.Errorf("重命名图层 %q 失败: %w", name, err)
		}
		renamed[strings.ToLower(name)] = newName
	}

	if hasCurrent {
		restored := current
		if newName, ok := renamed[strings.ToLower(current)]; ok {
			restored = newName
		}
		if err := doc.SetHeader(currentLayerVar, restored); err != nil {
			return err
		}
	}

	s.log.Debug("layers renamed",
		zap.Int("count", len(renamed)),
		zap.String("currentLayer", current))

	if err := doc.SaveAs(req.Output); err != nil {
		return fmt.Errorf("保存 DXF 失败: %w", err)
	}
	return nil
}
