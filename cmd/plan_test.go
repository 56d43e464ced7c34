package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/YangQing-Lin/prelayn-cli/internal/testutil"
)

func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

// captureColor 捕获输出，包括 color.Cyan 等直接写 color.Output 的内容
func captureColor(t *testing.T, fn func()) string {
	t.Helper()
	stdout, _ := testutil.CaptureOutput(t, func() {
		orig := color.Output
		color.Output = os.Stdout
		defer func() { color.Output = orig }()
		fn()
	})
	return stdout
}

func TestPlanFromFile(t *testing.T) {
	withConfigDir(t)
	withoutColor(t)
	cwd := withTempCWD(t)
	testutil.WriteSampleDXF(t, cwd, "plan.dxf", "0", "0", "Defpoints", "Wall", "Door")

	planPrefix, planIn = "A_", "plan.dxf"
	stdout, _ := testutil.CaptureOutput(t, func() {
		if err := runPlan(); err != nil {
			t.Fatalf("plan: %v", err)
		}
	})
	for _, want := range []string{"--- plan.dxf", "-Wall", "+A_Wall", "+A_Door", " 0", " Defpoints", "2/4"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("plan output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "A_0") || strings.Contains(stdout, "A_Defpoints") {
		t.Errorf("reserved layers must not be renamed:\n%s", stdout)
	}
}

func TestPlanWarnsExistingLayer(t *testing.T) {
	withConfigDir(t)
	withoutColor(t)
	cwd := withTempCWD(t)
	testutil.WriteSampleDXF(t, cwd, "plan.dxf", "0", "0", "Wall", "a_wall")

	planPrefix, planIn = "A_", "plan.dxf"
	stdout, _ := testutil.CaptureOutput(t, func() {
		if err := runPlan(); err != nil {
			t.Fatalf("plan: %v", err)
		}
	})
	if !strings.Contains(stdout, "图层 A_Wall 已存在，Wall 可能无法重命名") {
		t.Errorf("missing collision warning:\n%s", stdout)
	}
	if strings.Contains(stdout, "A_a_wall 已存在") {
		t.Errorf("unexpected warning:\n%s", stdout)
	}
}

func TestPlanFromLayerList(t *testing.T) {
	withConfigDir(t)
	withoutColor(t)

	planPrefix, planLayers = "X-", `Wall 'Door Frame'`
	stdout, _ := testutil.CaptureOutput(t, func() {
		if err := runPlan(); err != nil {
			t.Fatalf("plan: %v", err)
		}
	})
	if !strings.Contains(stdout, "+X-Door Frame") {
		t.Errorf("unexpected plan output:\n%s", stdout)
	}

	planLayers = ""
	stdout, _ = testutil.CaptureOutput(t, func() {
		if err := runPlan(); err != nil {
			t.Fatalf("plan: %v", err)
		}
	})
	if !strings.Contains(stdout, "+X-Layer4") {
		t.Errorf("expected default layer names:\n%s", stdout)
	}
}

func TestPlanErrors(t *testing.T) {
	withConfigDir(t)
	cwd := withTempCWD(t)
	testutil.CreateTempFile(t, cwd, "broken.dxf", "  0\nSECTION\n  2\n")

	tests := []struct {
		name   string
		prefix string
		in     string
		want   string
	}{
		{"empty prefix", "", "", "Prefix cannot be empty"},
		{"illegal prefix", "A*", "", "Please enter a valid prefix"},
		{"missing file", "A_", "missing.dxf", "missing.dxf"},
		{"broken file", "A_", "broken.dxf", "broken.dxf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planPrefix, planIn = tt.prefix, tt.in
			err := runPlan()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestLayersCommand(t *testing.T) {
	withConfigDir(t)
	withoutColor(t)
	cwd := withTempCWD(t)
	path := testutil.WriteSampleDXF(t, cwd, "plan.dxf", "Wall", "0", "Defpoints", "Wall")

	stdout := captureColor(t, func() {
		if err := runLayers(path); err != nil {
			t.Fatalf("layers: %v", err)
		}
	})
	for _, want := range []string{"(3)", "○ 0  (保留)", "○ Defpoints  (保留)", "● Wall"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("layers output missing %q:\n%s", want, stdout)
		}
	}

	if err := runLayers("missing.dxf"); err == nil {
		t.Error("expected error for missing file")
	}
	broken := testutil.CreateTempFile(t, cwd, "broken.dxf", "  0\nSECTION\n  2\n")
	if err := runLayers(broken); err == nil || !strings.Contains(err.Error(), "broken.dxf") {
		t.Errorf("error = %v, want file name", err)
	}
}

func TestBackendsCommand(t *testing.T) {
	withConfigDir(t)
	withoutColor(t)

	setSetting = "defaultBackend=ezdxf"
	testutil.CaptureOutput(t, func() {
		if err := runSettings(nil); err != nil {
			t.Fatalf("settings: %v", err)
		}
	})
	setSetting = ""

	stdout, _ := testutil.CaptureOutput(t, func() {
		if err := runBackends(); err != nil {
			t.Fatalf("backends: %v", err)
		}
	})
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 backends, got:\n%s", stdout)
	}
	for _, want := range []string{"win32com", "pyautocad", "pyautogui", "com-wrapper"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("backends output missing %q", want)
		}
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "ezdxf") != strings.HasPrefix(line, "*") {
			t.Errorf("default marker wrong: %q", line)
		}
	}
}
