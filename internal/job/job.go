// Package job 读取 run 命令的任务文件（TOML、YAML 或 JSON）。
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Job 一次添加前缀任务的参数，字段均可为空，由命令行参数补充
type Job struct {
	Prefix  string   `toml:"prefix" yaml:"prefix" json:"prefix"`
	Backend string   `toml:"backend" yaml:"backend" json:"backend"`
	Input   string   `toml:"input" yaml:"input" json:"input"`
	Output  string   `toml:"output" yaml:"output" json:"output"`
	Layers  []string `toml:"layers" yaml:"layers" json:"layers"`
}

// Load 按扩展名解析任务文件，相对路径以任务文件所在目录为基准
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取任务文件失败: %w", err)
	}

	j, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("解析任务文件 %s 失败: %w", path, err)
	}
	j.resolve(filepath.Dir(path))
	return j, nil
}

// Parse 按格式解析，ext 为 .toml/.yaml/.yml/.json
func Parse(ext string, data []byte) (*Job, error) {
	var j Job
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &j)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &j)
	case ".json":
		err = json.Unmarshal(data, &j)
	default:
		return nil, fmt.Errorf("不支持的任务文件格式: %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (j *Job) resolve(base string) {
	if j.Input != "" && !filepath.IsAbs(j.Input) {
		j.Input = filepath.Join(base, j.Input)
	}
	if j.Output != "" && !filepath.IsAbs(j.Output) {
		j.Output = filepath.Join(base, j.Output)
	}
}
