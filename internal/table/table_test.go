package table

import (
	"bytes"
	"strings"
	"testing"
)

func TestAnsiClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "#3b82f6 blue-500", "#3b82f6 blue-500"},
		{"reset only", "\x1b[m", ""},
		{"256 colors", "\x1b[48;5;69m  \x1b[0m #3b82f6", "   #3b82f6"},
		{"truecolor", "\x1b[38;2;255;255;255m\x1b[48;2;59;130;246m Aa \x1b[0m", " Aa "},
		{"unterminated", "red\x1b[38;5", "red"},
		{"bare bracket", "red\x1b[", "red"},
		{"lone escape", "red\x1b", "red"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := AnsiClean(test.input); got != test.expected {
				t.Errorf("AnsiClean(%q) = %q, expected %q", test.input, got, test.expected)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"", 0},
		{"#ff0000", 7},
		{"\x1b[48;5;196m    \x1b[0m", 4},
		{"🎨", 2},
		{"🎨 red", 6},
	}
	for _, test := range tests {
		if got := Width(test.in); got != test.expected {
			t.Errorf("Width(%q) = %d, expected %d", test.in, got, test.expected)
		}
	}
}

func joinLines(lines []string) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString("\n")
		sb.WriteString(l)
		sb.WriteString("|")
	}
	return sb.String()
}

func TestLines(t *testing.T) {
	swatch := "\x1b[48;2;255;0;0m  \x1b[0m"
	tests := []struct {
		name     string
		table    Table
		rows     [][]string
		expected string
	}{
		{
			name:  "key values",
			table: Table{Align: []Alignment{Left, Left}, Spacing: 2},
			rows: [][]string{
				{"hex", "#3b82f6"},
				{"temperature", "cool"},
			},
			expected: `
hex          #3b82f6|
temperature  cool   |`,
		},
		{
			name:  "right aligned distance",
			table: Table{Align: []Alignment{Left, Left, Right}, Spacing: 1},
			rows: [][]string{
				{"generic", "red", "0.0"},
				{"ral", "RAL 3020", "12.5"},
			},
			expected: `
generic red       0.0|
ral     RAL 3020 12.5|`,
		},
		{
			name:  "escapes take no room",
			table: Table{Align: []Alignment{Left, Left}, Spacing: 1},
			rows: [][]string{
				{swatch, "#ff0000"},
				{"", "red"},
			},
			expected: "\n" + swatch + " #ff0000|\n   red    |",
		},
		{
			name:  "box",
			table: Table{Align: []Alignment{Left, Right}, Spacing: 2, Box: true},
			rows: [][]string{
				{"wcag", "21.00:1"},
				{"apca", "Lc 106.0"},
			},
			expected: `
╭────────────────╮|
│ wcag   21.00:1 │|
│ apca  Lc 106.0 │|
╰────────────────╯|`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lines, err := test.table.Lines(test.rows)
			if err != nil {
				t.Fatalf("Lines: %v", err)
			}
			if got := joinLines(lines); got != test.expected {
				t.Errorf("got:%s\nexpected:%s", got, test.expected)
			}
			for _, l := range lines[1:] {
				if Width(l) != Width(lines[0]) {
					t.Errorf("uneven line %q: %d vs %d", l, Width(l), Width(lines[0]))
				}
			}
		})
	}
}

func TestLinesErrors(t *testing.T) {
	tbl := Table{Align: []Alignment{Left, Left}, Spacing: 2, Box: true}
	lines, err := tbl.Lines(nil)
	if err != nil || len(lines) != 0 {
		t.Errorf("empty table = %q, %v, expected nothing", lines, err)
	}
	_, err = tbl.Lines([][]string{{"a", "b"}, {"c", "d", "e"}})
	if err == nil || !strings.Contains(err.Error(), "row 2 has 3 cells") {
		t.Errorf("expected cell count error, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := (Table{Align: []Alignment{Left, Left}, Spacing: 1}).Write(&buf, [][]string{{"a", "b"}, {"cc", "d"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "a  b\ncc d\n" {
		t.Errorf("Write() = %q", got)
	}
	if err := (Table{Align: []Alignment{Left}}).Write(&buf, [][]string{{"a", "b"}}); err == nil {
		t.Errorf("expected error for extra cell")
	}
}
