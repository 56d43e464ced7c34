package layer

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff 生成重命名前后图层列表的 unified diff
func Diff(prefix string, names []string, oldLabel, newLabel string) string {
	oldText := strings.Join(names, "\n") + "\n"
	newText := strings.Join(Apply(prefix, names), "\n") + "\n"

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	if len(diffs) == 0 || (len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual) {
		return "No differences found."
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("--- %s\n", oldLabel))
	result.WriteString(fmt.Sprintf("+++ %s\n", newLabel))
	for _, d := range diffs {
		var marker string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
		case diffmatchpatch.DiffInsert:
			marker = "+"
		default:
			marker = " "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			result.WriteString(marker + line)
		}
	}
	return result.String()
}

// FormatDiffForCLI 为 CLI 输出格式化 diff（带颜色）
func FormatDiffForCLI(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	var result strings.Builder

	for _, line := range lines {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			result.WriteString("\033[1m" + line + "\033[0m\n")
		} else if strings.HasPrefix(line, "-") {
			result.WriteString("\033[31m" + line + "\033[0m\n")
		} else if strings.HasPrefix(line, "+") {
			result.WriteString("\033[32m" + line + "\033[0m\n")
		} else {
			result.WriteString(line + "\n")
		}
	}

	return result.String()
}
