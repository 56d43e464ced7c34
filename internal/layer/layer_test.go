package layer

import (
	"reflect"
	"strings"
	"testing"
)

func TestIsReserved(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"0", true},
		{"Defpoints", true},
		{"defpoints", false},
		{"DEFPOINTS", false},
		{"00", false},
		{" 0", false},
		{"Wall", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReserved(tt.name); got != tt.want {
				t.Errorf("IsReserved(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestApplyNeverTouchesReserved(t *testing.T) {
	lists := [][]string{
		{},
		{"0"},
		{"Defpoints", "0"},
		{"0", "Defpoints", "Wall", "Door"},
		{"Wall", "0", "Window", "Defpoints", "defpoints"},
	}

	for _, names := range lists {
		got := Apply("A_", names)
		if len(got) != len(names) {
			t.Fatalf("Apply(%v) 长度 = %d, want %d", names, len(got), len(names))
		}
		for i, n := range names {
			if IsReserved(n) {
				if got[i] != n {
					t.Errorf("保留图层 %q 被修改为 %q", n, got[i])
				}
				continue
			}
			if got[i] != "A_"+n {
				t.Errorf("图层 %q 重命名为 %q, want %q", n, got[i], "A_"+n)
			}
		}
	}
}

func TestPlan(t *testing.T) {
	got := Plan("X-", []string{"0", "Defpoints", "Wall", "Door"})
	want := []Rename{{Old: "Wall", New: "X-Wall"}, {Old: "Door", New: "X-Door"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Plan() = %v, want %v", got, want)
	}

	if got := Plan("X-", nil); len(got) != 0 {
		t.Fatalf("Plan(nil) = %v, want empty", got)
	}
}

func TestRestoreCurrent(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Wall", "A_Wall"},
		{"0", "0"},
		{"Defpoints", "Defpoints"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := RestoreCurrent("A_", tt.current); got != tt.want {
			t.Errorf("RestoreCurrent(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "empty", input: "   ", want: nil},
		{name: "plain", input: "Layer1 Layer2", want: []string{"Layer1", "Layer2"}},
		{name: "quoted", input: `Layer1 "Wall Lines" 'Door 2'`, want: []string{"Layer1", "Wall Lines", "Door 2"}},
		{name: "duplicates", input: "A B A", want: []string{"A", "B"}},
		{name: "unterminated quote", input: `"Wall`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNames(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNames() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseNames() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFormatNamesRoundTrip(t *testing.T) {
	names := []string{"Layer1", "Wall Lines", "Door"}
	formatted := FormatNames(names)
	if formatted != "Layer1 'Wall Lines' Door" {
		t.Fatalf("FormatNames() = %q", formatted)
	}

	parsed, err := ParseNames(formatted)
	if err != nil {
		t.Fatalf("ParseNames() error = %v", err)
	}
	if !reflect.DeepEqual(parsed, names) {
		t.Fatalf("往返结果不一致: %#v", parsed)
	}
}

func TestDiff(t *testing.T) {
	diff := Diff("A_", []string{"0", "Defpoints", "Wall", "Door"}, "before", "after")

	for _, want := range []string{"--- before", "+++ after", " 0\n", " Defpoints\n", "-Wall\n", "-Door\n", "+A_Wall\n", "+A_Door\n"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff 缺少 %q:\n%s", want, diff)
		}
	}

	if got := Diff("A_", []string{"0", "Defpoints"}, "a", "b"); got != "No differences found." {
		t.Errorf("只有保留图层时 Diff() = %q", got)
	}
}
