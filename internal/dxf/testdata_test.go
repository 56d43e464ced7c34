package dxf

import "strings"

// sampleDXF 与 testutil.SampleDXF 相同，但多一个 LTYPE 表，用于确认只改动 LAYER 表
func sampleDXF(current string, layers ...string) string {
	lines := []string{
		"  0", "SECTION",
		"  2", "HEADER",
		"  9", "$ACADVER",
		"  1", "AC1015",
		"  9", "$CLAYER",
		"  8", current,
		"  0", "ENDSEC",
		"  0", "SECTION",
		"  2", "TABLES",
		"  0", "TABLE",
		"  2", "LTYPE",
		" 70", "1",
		"  0", "LTYPE",
		"  2", "CONTINUOUS",
		"  0", "ENDTAB",
		"  0", "TABLE",
		"  2", "LAYER",
		" 70", "4",
	}
	for _, name := range layers {
		lines = append(lines,
			"  0", "LAYER",
			"  2", name,
			" 70", "0",
			" 62", "7",
			"  6", "CONTINUOUS",
		)
	}
	lines = append(lines,
		"  0", "ENDTAB",
		"  0", "ENDSEC",
		"  0", "SECTION",
		"  2", "ENTITIES",
	)
	for _, name := range layers {
		lines = append(lines,
			"  0", "LINE",
			"  8", name,
			" 10", "0.0",
			" 20", "0.0",
			" 11", "1.0",
			" 21", "1.0",
		)
	}
	lines = append(lines,
		"  0", "ENDSEC",
		"  0", "EOF",
	)
	return strings.Join(lines, "\n") + "\n"
}
