package dxf

import (
	"errors"
	"fmt"
)

var (
	// ErrBinaryDXF 二进制 DXF 暂不支持
	ErrBinaryDXF = errors.New("binary DXF is not supported")
	// ErrNoLayerTable 文件中没有 LAYER 表
	ErrNoLayerTable = errors.New("LAYER table not found")
	// ErrNoHeader 文件中没有 HEADER 段
	ErrNoHeader = errors.New("HEADER section not found")
	// ErrLayerNotFound 图层不存在
	ErrLayerNotFound = errors.New("layer not found")
	// ErrLayerExists 目标图层名称已存在
	ErrLayerExists = errors.New("layer already exists")
	// ErrReservedLayer 保留图层不能重命名
	ErrReservedLayer = errors.New("reserved layer cannot be renamed")
	// ErrInvalidName 图层名称无效
	ErrInvalidName = errors.New("invalid layer name")
)

// SyntaxError DXF 组码/值对格式错误
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("DXF syntax error at line %d: %s", e.Line, e.Msg)
}
