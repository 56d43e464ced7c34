package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "列出可用的后端",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackends()
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}

func runBackends() error {
	manager, err := getSettings()
	if err != nil {
		return fmt.Errorf("初始化设置失败: %w", err)
	}
	def := defaultBackend(manager)

	fmt.Printf("%-3s %-10s %-14s %-10s %s\n", "", "ID", "VARIANT", "EXTENSION", "FILES")
	for _, kind := range backend.Kinds() {
		mark := ""
		if kind == def {
			mark = "*"
		}
		ext := kind.RequiredExtension()
		if ext == "" {
			ext = "-"
		}
		files := "no"
		if kind.UsesFilePaths() {
			files = "yes"
		}
		fmt.Printf("%-3s %s %-14s %-10s %s\n", mark, color.GreenString("%-10s", kind.ID()), kind.Variant(), ext, files)
	}
	return nil
}
