package backend

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/YangQing-Lin/prelayn-cli/internal/automation"
	"github.com/YangQing-Lin/prelayn-cli/internal/dxf"
	"github.com/YangQing-Lin/prelayn-cli/internal/i18n"
)

type userErr struct{ msg string }

func (e *userErr) Error() string    { return e.msg }
func (e *userErr) UserFacing() bool { return true }

func TestOutcome(t *testing.T) {
	i18n.SetLanguage("en")

	_, statErr := os.Stat("/definitely/not/here.dxf")

	tests := []struct {
		name         string
		err          error
		wantOK       bool
		wantStatus   string
		wantGuidance string
	}{
		{name: "success", err: nil, wantOK: true, wantStatus: "Done"},
		{
			name:         "automation error",
			err:          fmt.Errorf("打开图纸失败: %w", &automation.DispatchError{ExcepInfo: []any{0, "AutoCAD", "Drawing is locked"}}),
			wantStatus:   "DispatchError >>> Drawing is locked",
			wantGuidance: "Please check open files in AutoCAD and try again",
		},
		{name: "user error", err: &userErr{msg: "Prefix cannot be empty"}, wantStatus: "Prefix cannot be empty"},
		{name: "unknown backend", err: fmt.Errorf("%w: kind(9)", ErrUnknownBackend), wantStatus: "Unknown backend"},
		{name: "unsupported platform", err: fmt.Errorf("%w: no COM", ErrUnsupportedPlatform), wantStatus: "Backend not available on this platform"},
		{name: "syntax error", err: &dxf.SyntaxError{Line: 3, Msg: "invalid group code"}, wantStatus: "SyntaxError >>> " + (&dxf.SyntaxError{Line: 3, Msg: "invalid group code"}).Error()},
		{name: "path error", err: statErr, wantStatus: "PathError >>> " + statErr.Error()},
		{name: "wrapped path error", err: fmt.Errorf("读取失败: %w", statErr), wantStatus: "PathError >>> 读取失败: " + statErr.Error()},
		{name: "plain error", err: errors.New("boom"), wantStatus: "Error >>> boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Outcome(tt.err)
			if got.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", got.OK, tt.wantOK)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.Guidance != tt.wantGuidance {
				t.Errorf("Guidance = %q, want %q", got.Guidance, tt.wantGuidance)
			}
		})
	}
}
