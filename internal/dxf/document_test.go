package dxf

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func mustRead(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return doc
}

func entityLayers(doc *Document) []string {
	var out []string
	entities, ok := doc.section("ENTITIES")
	if !ok {
		return nil
	}
	for i := entities.start; i < entities.end; i++ {
		if doc.pairs[i].Code == codeLayer {
			out = append(out, doc.pairs[i].Value)
		}
	}
	return out
}

func TestReadLayersAndHeader(t *testing.T) {
	doc := mustRead(t, sampleDXF("Wall", "0", "Defpoints", "Wall", "Door"))

	layers, err := doc.Layers()
	if err != nil {
		t.Fatalf("Layers() error = %v", err)
	}
	want := []string{"0", "Defpoints", "Wall", "Door"}
	if !reflect.DeepEqual(layers, want) {
		t.Fatalf("Layers() = %v, want %v", layers, want)
	}

	clayer, ok := doc.Header("$CLAYER")
	if !ok || clayer != "Wall" {
		t.Fatalf("Header($CLAYER) = %q, %v", clayer, ok)
	}

	if _, ok := doc.Header("$MISSING"); ok {
		t.Fatalf("不存在的头变量不应返回 ok")
	}

	if !doc.HasLayer("wall") {
		t.Errorf("HasLayer 应不区分大小写")
	}
}

func TestRoundTripPreservesBytes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"lf", sampleDXF("0", "0", "Wall")},
		{"crlf", strings.ReplaceAll(sampleDXF("0", "0", "Wall"), "\n", "\r\n")},
		{"no trailing newline", strings.TrimSuffix(sampleDXF("0", "0", "Wall"), "\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustRead(t, tt.content)
			if got := string(doc.Bytes()); got != tt.content {
				t.Fatalf("往返内容不一致\n期望: %q\n实际: %q", tt.content, got)
			}
		})
	}
}

func TestRenameLayer(t *testing.T) {
	doc := mustRead(t, sampleDXF("Wall", "0", "Defpoints", "Wall", "Door"))

	if err := doc.RenameLayer("Wall", "A_Wall"); err != nil {
		t.Fatalf("RenameLayer() error = %v", err)
	}

	layers, _ := doc.Layers()
	if !reflect.DeepEqual(layers, []string{"0", "Defpoints", "A_Wall", "Door"}) {
		t.Fatalf("Layers() = %v", layers)
	}
	if got := entityLayers(doc); !reflect.DeepEqual(got, []string{"0", "Defpoints", "A_Wall", "Door"}) {
		t.Fatalf("实体图层引用 = %v", got)
	}

	// HEADER 不随重命名变化，由调用方显式设置
	if clayer, _ := doc.Header("$CLAYER"); clayer != "Wall" {
		t.Fatalf("$CLAYER = %q, want Wall", clayer)
	}
}

func TestRenameLayerErrors(t *testing.T) {
	tests := []struct {
		name    string
		oldName string
		newName string
		wantErr error
	}{
		{"reserved zero", "0", "A_0", ErrReservedLayer},
		{"reserved defpoints", "Defpoints", "A_Defpoints", ErrReservedLayer},
		{"missing", "Roof", "A_Roof", ErrLayerNotFound},
		{"exists", "Wall", "door", ErrLayerExists},
		{"empty name", "Wall", " ", ErrInvalidName},
		{"newline", "Wall", "A\nB", ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustRead(t, sampleDXF("0", "0", "Defpoints", "Wall", "Door"))
			err := doc.RenameLayer(tt.oldName, tt.newName)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RenameLayer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetHeader(t *testing.T) {
	doc := mustRead(t, sampleDXF("Wall", "0", "Wall"))
	if err := doc.SetHeader("$CLAYER", "0"); err != nil {
		t.Fatalf("SetHeader() error = %v", err)
	}
	if v, _ := doc.Header("$CLAYER"); v != "0" {
		t.Fatalf("$CLAYER = %q", v)
	}

	if err := doc.SetHeader("$PROJECTNAME", "demo"); err != nil {
		t.Fatalf("SetHeader(新变量) error = %v", err)
	}
	if v, ok := doc.Header("$PROJECTNAME"); !ok || v != "demo" {
		t.Fatalf("$PROJECTNAME = %q, %v", v, ok)
	}

	// 重新解析确认写出的文件仍然有效
	again := mustRead(t, string(doc.Bytes()))
	if v, _ := again.Header("$PROJECTNAME"); v != "demo" {
		t.Fatalf("重新解析后 $PROJECTNAME = %q", v)
	}
}

func TestSetHeaderWithoutHeaderSection(t *testing.T) {
	content := "0\nSECTION\n2\nTABLES\n0\nTABLE\n2\nLAYER\n0\nLAYER\n2\n0\n0\nENDTAB\n0\nENDSEC\n0\nEOF\n"
	doc := mustRead(t, content)
	if _, ok := doc.Header("$CLAYER"); ok {
		t.Fatalf("没有 HEADER 时不应返回值")
	}
	if err := doc.SetHeader("$CLAYER", "0"); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("SetHeader() error = %v, want ErrNoHeader", err)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(error) bool
	}{
		{
			name:    "binary",
			content: "AutoCAD Binary DXF\r\n\x1a\x00",
			check:   func(err error) bool { return errors.Is(err, ErrBinaryDXF) },
		},
		{
			name:    "invalid code",
			content: "abc\nSECTION\n",
			check: func(err error) bool {
				var se *SyntaxError
				return errors.As(err, &se) && se.Line == 1
			},
		},
		{
			name:    "missing value",
			content: "0\nSECTION\n2\n",
			check: func(err error) bool {
				var se *SyntaxError
				return errors.As(err, &se)
			},
		},
		{
			name:    "empty",
			content: "",
			check: func(err error) bool {
				var se *SyntaxError
				return errors.As(err, &se)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.content))
			if err == nil || !tt.check(err) {
				t.Fatalf("Read() error = %v", err)
			}
		})
	}
}

func TestLayersWithoutTable(t *testing.T) {
	doc := mustRead(t, "0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n")
	if _, err := doc.Layers(); !errors.Is(err, ErrNoLayerTable) {
		t.Fatalf("Layers() error = %v, want ErrNoLayerTable", err)
	}
}

func TestReadFileAndSaveAs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.dxf")
	if err := os.WriteFile(in, []byte(sampleDXF("Wall", "0", "Wall")), 0644); err != nil {
		t.Fatalf("写入输入文件失败: %v", err)
	}

	doc, err := ReadFile(in)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if err := doc.RenameLayer("Wall", "B_Wall"); err != nil {
		t.Fatalf("RenameLayer() error = %v", err)
	}

	out := filepath.Join(dir, "out.dxf")
	if err := doc.SaveAs(out); err != nil {
		t.Fatalf("SaveAs() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("读取输出文件失败: %v", err)
	}
	if !bytes.Contains(data, []byte("B_Wall")) {
		t.Fatalf("输出文件缺少新图层名称")
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.dxf")); !os.IsNotExist(err) {
		t.Fatalf("ReadFile(missing) error = %v", err)
	}
}
