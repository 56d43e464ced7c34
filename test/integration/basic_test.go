package integration

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/YangQing-Lin/prelayn-cli/internal/backend"
	"github.com/YangQing-Lin/prelayn-cli/internal/backup"
	"github.com/YangQing-Lin/prelayn-cli/internal/dxf"
	"github.com/YangQing-Lin/prelayn-cli/internal/form"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
	"github.com/YangQing-Lin/prelayn-cli/internal/runner"
	"github.com/YangQing-Lin/prelayn-cli/internal/settings"
	"github.com/YangQing-Lin/prelayn-cli/internal/testutil"
)

// TestFileFormatEndToEnd 表单校验、加锁、备份、重命名、恢复的完整流程
func TestFileFormatEndToEnd(t *testing.T) {
	i18n.SetLanguage("en")
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".prelayn")
	work := filepath.Join(tmpDir, "drawings")
	if err := os.MkdirAll(work, 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}

	in := testutil.WriteSampleDXF(t, work, "plan.dxf", "Wall", "0", "Defpoints", "Wall", "Door")
	out := filepath.Join(work, "plan-a.dxf")
	testutil.CreateTempFile(t, work, "plan-a.dxf", "previous output")

	f := form.New(work)
	f.SetPrefix("A_")
	f.SetBackend(backend.FileFormat)
	f.SetInputFile("plan.dxf")
	f.SetOutputFile("plan-a.dxf")

	res := runner.Run(context.Background(), f, runner.Options{ConfigDir: configDir, Backup: true})
	if res.Err != nil || !res.Report.OK {
		t.Fatalf("运行失败: %v (%s)", res.Err, res.Report.Status)
	}
	if f.Status() != "Done" {
		t.Errorf("状态不正确，期望: Done, 实际: %s", f.Status())
	}
	if res.BackupID == "" {
		t.Fatal("覆盖输出文件前应创建备份")
	}

	t.Run("OutputLayers", func(t *testing.T) {
		doc, err := dxf.ReadFile(out)
		if err != nil {
			t.Fatalf("读取输出文件失败: %v", err)
		}
		names, err := doc.Layers()
		if err != nil {
			t.Fatalf("读取图层失败: %v", err)
		}
		want := []string{"0", "Defpoints", "A_Wall", "A_Door"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("图层不正确，期望: %v, 实际: %v", want, names)
		}
		if current, _ := doc.Header("$CLAYER"); current != "A_Wall" {
			t.Errorf("当前图层不正确，期望: A_Wall, 实际: %s", current)
		}
	})

	t.Run("InputUnchanged", func(t *testing.T) {
		testutil.AssertFileContent(t, in, testutil.SampleDXF("Wall", "0", "Defpoints", "Wall", "Door"))
	})

	t.Run("RestoreBackup", func(t *testing.T) {
		if _, err := backup.RestoreBackup(configDir, res.BackupID); err != nil {
			t.Fatalf("恢复备份失败: %v", err)
		}
		testutil.AssertFileContent(t, out, "previous output")
	})
}

// TestInvalidFormDoesNotTouchFiles 校验失败时不加锁、不写文件
func TestInvalidFormDoesNotTouchFiles(t *testing.T) {
	i18n.SetLanguage("en")
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".prelayn")

	f := form.New(tmpDir)
	f.SetPrefix("A?")
	f.SetBackend(backend.FileFormat)

	res := runner.Run(context.Background(), f, runner.Options{ConfigDir: configDir, Backup: true})
	if res.Report.OK || res.RunID != "" {
		t.Fatalf("校验失败时不应运行: %+v", res)
	}
	if res.Report.Status != "Please enter a valid prefix" {
		t.Errorf("状态不正确: %s", res.Report.Status)
	}
	testutil.AssertFileNotExists(t, configDir)
}

// TestSettingsPersistence 测试设置持久化
func TestSettingsPersistence(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), ".prelayn")

	manager1, err := settings.NewManagerWithDir(configDir)
	if err != nil {
		t.Fatalf("创建设置管理器失败: %v", err)
	}
	if err := manager1.SetDefaultBackend("ezdxf"); err != nil {
		t.Fatalf("保存默认后端失败: %v", err)
	}
	if err := manager1.SetLayerNames([]string{"Wall", "Door Frame"}); err != nil {
		t.Fatalf("保存图层名称失败: %v", err)
	}

	// 创建第二个管理器（模拟重启）
	manager2, err := settings.NewManagerWithDir(configDir)
	if err != nil {
		t.Fatalf("重新创建设置管理器失败: %v", err)
	}
	if manager2.GetDefaultBackend() != "ezdxf" {
		t.Errorf("默认后端不正确: %s", manager2.GetDefaultBackend())
	}
	if got := manager2.GetLayerNames(); !reflect.DeepEqual(got, []string{"Wall", "Door Frame"}) {
		t.Errorf("图层名称不正确: %v", got)
	}
}
