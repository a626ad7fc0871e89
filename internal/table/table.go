// Package table lays out aligned columns for terminal output. Widths are
// measured on screen: ANSI escapes take no room and wide runes take two cells.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

type Alignment int

const (
	Left Alignment = iota
	Right
)

// Rounded frame drawn by [Table.Box].
const (
	Horizontal  = "─"
	Vertical    = "│"
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
)

// Table is a layout, the rows are given to [Table.Lines] or [Table.Write].
type Table struct {
	Align   []Alignment // one per column
	Spacing int         // blanks between columns
	Box     bool        // rounded frame around the rows, one blank of margin inside
}

// AnsiClean removes CSI escape sequences (colors, cursor moves) from str,
// including an unterminated one at the end.
func AnsiClean(str string) string {
	var sb strings.Builder
	sb.Grow(len(str))
	for i := 0; i < len(str); i++ {
		if str[i] != '\x1b' {
			sb.WriteByte(str[i])
			continue
		}
		if i+1 < len(str) && str[i+1] == '[' {
			i += 2
			// skip parameters up to and including the final byte (@ to ~).
			for i < len(str) && (str[i] < 0x40 || str[i] > 0x7e) {
				i++
			}
		}
	}
	return sb.String()
}

// Width is the number of terminal cells s occupies once escapes are removed.
func Width(s string) int {
	return uniseg.StringWidth(AnsiClean(s))
}

func (t Table) widths(rows [][]string) ([]int, error) {
	widths := make([]int, len(t.Align))
	for i, row := range rows {
		if len(row) != len(t.Align) {
			return nil, fmt.Errorf("table row %d has %d cells, expected %d", i+1, len(row), len(t.Align))
		}
		for j, cell := range row {
			widths[j] = max(widths[j], Width(cell))
		}
	}
	return widths, nil
}

func pad(cell string, width int, align Alignment) string {
	fill := strings.Repeat(" ", width-Width(cell))
	if align == Right {
		return fill + cell
	}
	return cell + fill
}

// Lines returns one line per row, every column padded to its widest cell,
// plus the frame lines when Box is set. All lines have the same [Width].
func (t Table) Lines(rows [][]string) ([]string, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	widths, err := t.widths(rows)
	if err != nil {
		return nil, err
	}
	gap := strings.Repeat(" ", t.Spacing)
	lines := make([]string, 0, len(rows)+2)
	cells := make([]string, len(t.Align))
	for _, row := range rows {
		for j, cell := range row {
			cells[j] = pad(cell, widths[j], t.Align[j])
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	if !t.Box {
		return lines, nil
	}
	rule := strings.Repeat(Horizontal, Width(lines[0])+2)
	framed := make([]string, 0, len(lines)+2)
	framed = append(framed, TopLeft+rule+TopRight)
	for _, l := range lines {
		framed = append(framed, Vertical+" "+l+" "+Vertical)
	}
	return append(framed, BottomLeft+rule+BottomRight), nil
}

// Write renders the rows to w, one line each.
func (t Table) Write(w io.Writer, rows [][]string) error {
	lines, err := t.Lines(rows)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err = io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}
