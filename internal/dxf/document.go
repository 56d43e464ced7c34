// Package dxf 读写 ASCII DXF（drawing-exchange）文件中与图层相关的部分。
//
// 文件按组码/值对原样保存，只修改被操作的值，其余内容（实体、块、对象、
// 注释、组码的对齐空格、换行风格）写回时保持不变。
package dxf

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

const binarySentinel = "AutoCAD Binary DXF"

// 常用组码
const (
	codeStructure = 0
	codeName      = 2
	codeLayer     = 8
	codeVariable  = 9
)

// headerCodes 已知头变量写入时使用的组码
var headerCodes = map[string]int{
	"$CLAYER": codeLayer,
}

// Pair 一个组码/值对
type Pair struct {
	Code    int
	rawCode string
	Value   string
}

// Document 解析后的 DXF 文档
type Document struct {
	pairs       []Pair
	newline     string
	trailingEOL bool
}

// ReadFile 读取 DXF 文件
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read 从 reader 解析 DXF
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte(binarySentinel)) {
		return nil, ErrBinaryDXF
	}
	// 去掉 UTF-8 BOM
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	doc := &Document{newline: "\n"}
	if bytes.Contains(data, []byte("\r\n")) {
		doc.newline = "\r\n"
	}
	doc.trailingEOL = len(data) > 0 && data[len(data)-1] == '\n'

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rawCode := strings.TrimSuffix(scanner.Text(), "\r")
		code, err := strconv.Atoi(strings.TrimSpace(rawCode))
		if err != nil {
			// 文件末尾的空行允许存在
			if strings.TrimSpace(rawCode) == "" && isEOF(doc.pairs) {
				continue
			}
			return nil, &SyntaxError{Line: lineNo, Msg: "invalid group code " + strconv.Quote(rawCode)}
		}
		if !scanner.Scan() {
			return nil, &SyntaxError{Line: lineNo, Msg: "missing value for group code " + strconv.Itoa(code)}
		}
		lineNo++
		value := strings.TrimSuffix(scanner.Text(), "\r")
		doc.pairs = append(doc.pairs, Pair{Code: code, rawCode: rawCode, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(doc.pairs) == 0 {
		return nil, &SyntaxError{Line: 0, Msg: "empty document"}
	}
	return doc, nil
}

func isEOF(pairs []Pair) bool {
	if len(pairs) == 0 {
		return false
	}
	last := pairs[len(pairs)-1]
	return last.Code == codeStructure && strings.TrimSpace(last.Value) == "EOF"
}

// Write 把文档写回 writer
func (d *Document) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, p := range d.pairs {
		code := p.rawCode
		if code == "" {
			code = strconv.Itoa(p.Code)
		}
		bw.WriteString(code)
		bw.WriteString(d.newline)
		bw.WriteString(p.Value)
		if i < len(d.pairs)-1 || d.trailingEOL {
			bw.WriteString(d.newline)
		}
	}
	return bw.Flush()
}

// Bytes 返回序列化后的内容
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_ = d.Write(&buf)
	return buf.Bytes()
}

// SaveAs 原子写入到指定路径
func (d *Document) SaveAs(path string) error {
	return utils.AtomicWriteFile(path, d.Bytes(), 0)
}

// section 一个段在 pairs 中的范围 [start, end)，start 指向 "0 SECTION"
type section struct {
	name       string
	start, end int
}

func (d *Document) sections() []section {
	var out []section
	for i := 0; i < len(d.pairs); i++ {
		p := d.pairs[i]
		if p.Code != codeStructure || value(p) != "SECTION" {
			continue
		}
		s := section{start: i, end: len(d.pairs)}
		if i+1 < len(d.pairs) && d.pairs[i+1].Code == codeName {
			s.name = value(d.pairs[i+1])
		}
		for j := i + 1; j < len(d.pairs); j++ {
			if d.pairs[j].Code == codeStructure && value(d.pairs[j]) == "ENDSEC" {
				s.end = j
				break
			}
		}
		out = append(out, s)
		i = s.end
	}
	return out
}

func (d *Document) section(name string) (section, bool) {
	for _, s := range d.sections() {
		if s.name == name {
			return s, true
		}
	}
	return section{}, false
}

func value(p Pair) string {
	return strings.TrimSpace(p.Value)
}

// layerEntries 返回 LAYER 表中每个图层名称所在的 pair 下标
func (d *Document) layerEntries() ([]int, error) {
	tables, ok := d.section("TABLES")
	if !ok {
		return nil, ErrNoLayerTable
	}

	inLayerTable := false
	found := false
	inEntry := false
	var idx []int
	for i := tables.start + 1; i < tables.end; i++ {
		p := d.pairs[i]
		if p.Code == codeStructure {
			inEntry = false
			switch value(p) {
			case "TABLE":
				if i+1 < tables.end && d.pairs[i+1].Code == codeName && value(d.pairs[i+1]) == "LAYER" {
					inLayerTable = true
					found = true
					i++
				}
			case "ENDTAB":
				inLayerTable = false
			case "LAYER":
				inEntry = inLayerTable
			}
			continue
		}
		if inEntry && p.Code == codeName {
			idx = append(idx, i)
			inEntry = false
		}
	}
	if !found {
		return nil, ErrNoLayerTable
	}
	return idx, nil
}

// Layers 返回 LAYER 表中的图层名称（文件顺序）
func (d *Document) Layers() ([]string, error) {
	idx, err := d.layerEntries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(idx))
	for i, j := range idx {
		names[i] = d.pairs[j].Value
	}
	return names, nil
}

// HasLayer 判断图层是否存在（不区分大小写，与 AutoCAD 一致）
func (d *Document) HasLayer(name string) bool {
	names, err := d.Layers()
	if err != nil {
		return false
	}
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// headerVar 返回头变量的值 pair 下标
func (d *Document) headerVar(name string) (int, section, bool) {
	header, ok := d.section("HEADER")
	if !ok {
		return -1, section{}, false
	}
	for i := header.start + 1; i < header.end; i++ {
		p := d.pairs[i]
		if p.Code == codeVariable && strings.EqualFold(value(p), name) {
			if i+1 < header.end && d.pairs[i+1].Code != codeVariable && d.pairs[i+1].Code != codeStructure {
				return i + 1, header, true
			}
			return -1, header, true
		}
	}
	return -1, header, false
}

// Header 读取头变量（多值变量只返回第一个值）
func (d *Document) Header(name string) (string, bool) {
	i, _, ok := d.headerVar(name)
	if !ok || i < 0 {
		return "", false
	}
	return d.pairs[i].Value, true
}

// SetHeader 设置头变量，不存在时追加到 HEADER 段末尾
func (d *Document) SetHeader(name, val string) error {
	i, header, ok := d.headerVar(name)
	if header.end == 0 {
		return ErrNoHeader
	}
	if ok && i >= 0 {
		d.pairs[i].Value = val
		return nil
	}

	code, known := headerCodes[strings.ToUpper(name)]
	if !known {
		code = 1
	}
	insert := []Pair{
		{Code: codeVariable, rawCode: "  9", Value: name},
		{Code: code, rawCode: strconv.Itoa(code), Value: val},
	}
	if ok {
		// 变量存在但缺少值
		for j := header.start + 1; j < header.end; j++ {
			if d.pairs[j].Code == codeVariable && strings.EqualFold(value(d.pairs[j]), name) {
				d.pairs = append(d.pairs[:j+1], append(insert[1:], d.pairs[j+1:]...)...)
				return nil
			}
		}
	}
	d.pairs = append(d.pairs[:header.end], append(insert, d.pairs[header.end:]...)...)
	return nil
}

// RenameLayer 重命名图层，并更新 HEADER 以外所有段中对该图层的引用（组码 8）
func (d *Document) RenameLayer(oldName, newName string) error {
	if layer.IsReserved(oldName) {
		return ErrReservedLayer
	}
	if strings.TrimSpace(newName) == "" || strings.ContainsAny(newName, "\r\n") {
		return ErrInvalidName
	}

	idx, err := d.layerEntries()
	if err != nil {
		return err
	}

	target := -1
	for _, j := range idx {
		name := d.pairs[j].Value
		if name == oldName {
			target = j
			continue
		}
		if strings.EqualFold(name, newName) {
			return ErrLayerExists
		}
	}
	if target < 0 {
		return ErrLayerNotFound
	}
	d.pairs[target].Value = newName

	header, hasHeader := d.section("HEADER")
	for i := range d.pairs {
		if hasHeader && i > header.start && i < header.end {
			continue
		}
		p := &d.pairs[i]
		if p.Code == codeLayer && strings.EqualFold(p.Value, oldName) {
			p.Value = newName
		}
	}
	return nil
}
