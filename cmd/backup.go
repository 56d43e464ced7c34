package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YangQing-Lin/prelayn-cli/internal/backup"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/utils"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "管理输出文件备份",
	Long: `运行覆盖已存在的输出文件前会先备份它 (backupOutput 设置)。

子命令:
  prelayn backup list          # 列出所有备份
  prelayn backup restore <id>  # 把备份写回原路径`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupList()
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有备份",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupList()
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup-id>",
	Short: "从备份恢复输出文件",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackupRestore(args[0])
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
}

func runBackupList() error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	backups, err := backup.ListBackups(dir)
	if err != nil {
		return fmt.Errorf("读取备份列表失败: %w", err)
	}
	if len(backups) == 0 {
		fmt.Println("没有找到任何备份文件")
		return nil
	}

	fmt.Printf("找到 %d 个备份文件:\n\n", len(backups))
	for i, b := range backups {
		fmt.Printf("%d. %s\n", i+1, b.ID)
		fmt.Printf("   时间: %s\n", b.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("   大小: %.2f KB\n", float64(b.Size)/1024)
		fmt.Printf("   原文件: %s\n", utils.ShortenPath(b.Original, utils.DefaultPathLimit))
		if b.RunID != "" {
			fmt.Printf("   run id: %s\n", b.RunID)
		}
		fmt.Println()
	}
	return nil
}

func runBackupRestore(id string) error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	meta, err := backup.Find(dir, id)
	if err != nil {
		return err
	}

	previous, err := backup.RestoreBackup(dir, id)
	if previous != "" {
		printSuccess("已创建恢复前备份: %s", previous)
	}
	if err != nil {
		return err
	}
	printSuccess("%s: %s", i18n.T("backup.restored"), meta.ID)
	fmt.Printf("  文件: %s\n", meta.Original)
	return nil
}
