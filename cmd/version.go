package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Long:  `显示 prelayn 的版本信息`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prelayn 版本: %s\n", version.GetVersion())

		if version.GetBuildDate() != "unknown" {
			fmt.Printf("构建日期: %s\n", version.GetBuildDate())
		}

		if version.GetGitCommit() != "unknown" {
			fmt.Printf("Git 提交: %s\n", version.GetGitCommit())
		}

		fmt.Println(version.Summary())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
