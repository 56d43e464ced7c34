package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/dxf"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
)

var layersCmd = &cobra.Command{
	Use:   "layers <file.dxf>",
	Short: "列出 DXF 文件中的图层",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLayers(args[0])
	},
}

func init() {
	rootCmd.AddCommand(layersCmd)
}

func runLayers(path string) error {
	doc, err := dxf.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	names, err := doc.Layers()
	if err != nil {
		return fmt.Errorf("读取 %s 失败: %w", path, err)
	}
	current, _ := doc.Header("$CLAYER")

	color.Cyan("%s (%d)", path, len(names))
	for _, name := range names {
		mark := "○"
		if name == current {
			mark = "●"
		}
		line := fmt.Sprintf("%s %s", mark, name)
		if layer.IsReserved(name) {
			line += color.New(color.Faint).Sprint("  (保留)")
		}
		fmt.Println(line)
	}
	return nil
}
