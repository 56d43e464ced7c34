package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/dxf"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/layer"
)

var (
	planPrefix string
	planIn     string
	planLayers string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "预览图层重命名结果",
	Long: `以 diff 形式显示添加前缀前后的图层名称，不修改任何文件。

示例:
  prelayn plan --prefix A_ --in plan.dxf
  prelayn plan --prefix A_ --layers "Layer1 Layer2 'Wall Lines'"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan()
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().StringVarP(&planPrefix, "prefix", "p", "", "图层名称前缀")
	planCmd.Flags().StringVarP(&planIn, "in", "i", "", "DXF 文件")
	planCmd.Flags().StringVar(&planLayers, "layers", "", "不读取文件时使用的图层名称")
}

func runPlan() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("获取当前工作目录失败: %w", err)
	}
	f := form.New(cwd)
	f.SetPrefix(planPrefix)
	if err := f.Validate(form.Prefix); err != nil {
		return err
	}

	var (
		names []string
		doc   *dxf.Document
	)
	label := "layers"
	switch {
	case planIn != "":
		if doc, err = dxf.ReadFile(planIn); err != nil {
			return fmt.Errorf("读取 %s 失败: %w", planIn, err)
		}
		if names, err = doc.Layers(); err != nil {
			return fmt.Errorf("读取 %s 失败: %w", planIn, err)
		}
		label = planIn
	case planLayers != "":
		if names, err = layer.ParseNames(planLayers); err != nil {
			return err
		}
	default:
		names = layer.DefaultNames
	}

	diff := layer.Diff(planPrefix, names, label, label+" ("+planPrefix+")")
	if color.NoColor {
		fmt.Print(diff)
		if diff != "" && diff[len(diff)-1] != '\n' {
			fmt.Println()
		}
	} else {
		fmt.Print(layer.FormatDiffForCLI(diff))
	}

	renames := layer.Plan(planPrefix, names)
	fmt.Printf("\n%d/%d 个图层将被重命名\n", len(renames), len(names))
	if doc != nil {
		for _, r := range renames {
			if doc.HasLayer(r.New) {
				printWarning("图层 %s 已存在，%s 可能无法重命名", r.New, r.Old)
			}
		}
	}
	return nil
}
