package portable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func withFakeExecutable(t *testing.T, dir string) {
	t.Helper()
	fakeExe := filepath.Join(dir, "prelayn")
	if err := os.WriteFile(fakeExe, []byte("fake"), 0755); err != nil {
		t.Fatalf("创建假可执行文件失败: %v", err)
	}
	original := portableExecutableFunc
	portableExecutableFunc = func() (string, error) { return fakeExe, nil }
	t.Cleanup(func() { portableExecutableFunc = original })
}

func withFakeHome(t *testing.T, dir string) {
	t.Helper()
	original := userHomeDirFunc
	userHomeDirFunc = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userHomeDirFunc = original })
}

func TestIsPortableMode(t *testing.T) {
	tests := []struct {
		name  string
		setup func(dir string) error
		want  bool
	}{
		{
			name:  "no marker",
			setup: func(string) error { return nil },
			want:  false,
		},
		{
			name: "marker file",
			setup: func(dir string) error {
				return os.WriteFile(filepath.Join(dir, "portable.ini"), nil, 0644)
			},
			want: true,
		},
		{
			name: "marker is directory",
			setup: func(dir string) error {
				return os.MkdirAll(filepath.Join(dir, "portable.ini"), 0755)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			withFakeExecutable(t, dir)
			if err := tt.setup(dir); err != nil {
				t.Fatalf("准备环境失败: %v", err)
			}
			if got := IsPortableMode(); got != tt.want {
				t.Fatalf("IsPortableMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPortableModeExecutableError(t *testing.T) {
	original := portableExecutableFunc
	portableExecutableFunc = func() (string, error) { return "", errors.New("boom") }
	t.Cleanup(func() { portableExecutableFunc = original })

	if IsPortableMode() {
		t.Fatalf("获取可执行文件失败时不应为便携模式")
	}
	if _, err := GetPortableConfigDir(); err == nil {
		t.Fatalf("GetPortableConfigDir() 应返回错误")
	}
}

func TestGetConfigDir(t *testing.T) {
	exeDir := t.TempDir()
	home := t.TempDir()
	withFakeExecutable(t, exeDir)
	withFakeHome(t, home)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if dir != filepath.Join(home, DirName) {
		t.Fatalf("GetConfigDir() = %s", dir)
	}

	if err := os.WriteFile(filepath.Join(exeDir, "portable.ini"), nil, 0644); err != nil {
		t.Fatalf("创建 portable.ini 失败: %v", err)
	}
	dir, err = GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	want, _ := filepath.EvalSymlinks(exeDir)
	if dir != filepath.Join(want, DirName) {
		t.Fatalf("便携模式 GetConfigDir() = %s, want %s", dir, filepath.Join(want, DirName))
	}
}
