package palette_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/palette"
	"github.com/google/go-cmp/cmp"
)

func TestTablesAreValid(t *testing.T) {
	for name, table := range palette.Tables {
		if len(table) == 0 {
			t.Errorf("table %s is empty", name)
		}
		seen := make(map[string]bool, len(table))
		for _, e := range table {
			if _, ok := e.RGB(); !ok {
				t.Errorf("%s: invalid hex for %q: %q", name, e.Name, e.Hex)
			}
			if norm, _ := colorspace.NormalizeHex(e.Hex); norm != e.Hex {
				t.Errorf("%s: %q hex %q is not normalized", name, e.Name, e.Hex)
			}
			if seen[e.Name] {
				t.Errorf("%s: duplicate name %q", name, e.Name)
			}
			seen[e.Name] = true
		}
	}
	if diff := cmp.Diff([]string{"generic", "ncs", "pantone", "ral", "tailwind"}, palette.TableNames()); diff != "" {
		t.Errorf("TableNames:\n%s", diff)
	}
	if _, ok := palette.Table(" Tailwind "); !ok {
		t.Errorf("Table lookup should be case insensitive")
	}
}

func TestNearestTailwind(t *testing.T) {
	tests := []struct {
		hex      string
		expected string
	}{
		{"#ef4444", "red-500"},
		{"#3b82f6", "blue-500"},
		{"#ee4545", "red-500"},
		{"#4f46e5", "indigo-600"},
	}
	for _, test := range tests {
		if got := palette.NearestTailwind(colorspace.MustHex(test.hex)); got != test.expected {
			t.Errorf("NearestTailwind(%s) = %s, expected %s", test.hex, got, test.expected)
		}
	}
}

func TestNearestName(t *testing.T) {
	tests := []struct {
		hex      string
		expected string
	}{
		{"#ff0000", "red"},
		{"#fe0101", "red"},
		{"#00ffff", "aqua"}, // before cyan
		{"#808080", "gray"}, // before grey
		{"#000000", "black"},
	}
	for _, test := range tests {
		if got := palette.NearestName(colorspace.MustHex(test.hex)); got != test.expected {
			t.Errorf("NearestName(%s) = %s, expected %s", test.hex, got, test.expected)
		}
	}
}

func TestBrandCutoff(t *testing.T) {
	black := colorspace.Black
	if name, ok := palette.NearestPantone(black); !ok || name != "PANTONE Black C" {
		t.Errorf("NearestPantone(black) = %q %t", name, ok)
	}
	if name, ok := palette.NearestRAL(black); !ok || name != "RAL 9005 Jet black" {
		t.Errorf("NearestRAL(black) = %q %t", name, ok)
	}
	if name, ok := palette.NearestNCS(black); !ok || name != "NCS S 9000-N" {
		t.Errorf("NearestNCS(black) = %q %t", name, ok)
	}
	green := colorspace.MustHex("#00ff00")
	if name, ok := palette.NearestRAL(green); ok {
		t.Errorf("pure green should have no RAL match, got %q", name)
	}
	if name, ok := palette.NearestNCS(green); ok {
		t.Errorf("pure green should have no NCS match, got %q", name)
	}
	if name, ok := palette.NearestPantone(colorspace.MustHex("#00ffff")); ok {
		t.Errorf("cyan should have no Pantone match, got %q", name)
	}
}

func TestNearestEdgeCases(t *testing.T) {
	if _, _, ok := palette.Nearest(colorspace.White, nil); ok {
		t.Errorf("empty table should not match")
	}
	table := []palette.Entry{
		{Name: "broken", Hex: "#zzz"},
		{Name: "first", Hex: "#101010"},
		{Name: "second", Hex: "#101010"},
	}
	e, d, ok := palette.Nearest(colorspace.Black, table)
	if !ok || e.Name != "first" {
		t.Errorf("tie should go to the first entry, got %v %t", e, ok)
	}
	if _, _, ok := palette.NearestWithin(colorspace.Black, table, d-0.1); ok {
		t.Errorf("cutoff below distance %v should not match", d)
	}
	if _, _, ok := palette.NearestWithin(colorspace.Black, table, d); !ok {
		t.Errorf("cutoff equal to distance %v should match", d)
	}
	if d := palette.Distance(colorspace.Black, colorspace.White); d < 441.67 || d > 441.68 {
		t.Errorf("max distance = %v", d)
	}
}

func TestLoadYAML(t *testing.T) {
	in := `
- name: brand
  hex: "#4F46E5"
- name: accent
  hex: "aabbcc"
`
	entries, err := palette.LoadYAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	expected := []palette.Entry{{Name: "brand", Hex: "#4f46e5"}, {Name: "accent", Hex: "#aabbcc"}}
	if diff := cmp.Diff(expected, entries); diff != "" {
		t.Errorf("LoadYAML mismatch (-expected +got):\n%s", diff)
	}
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"bad hex", "- name: oops\n  hex: \"#12345\"\n", `"oops"`},
		{"short hex", "- name: short\n  hex: \"#abc\"\n", `"short"`},
		{"no name", "- hex: \"#123456\"\n", "no name"},
		{"empty", "", "empty"},
		{"not a list", "name: x\n", "invalid palette"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := palette.LoadYAML(strings.NewReader(test.in))
			if err == nil || !strings.Contains(err.Error(), test.msg) {
				t.Errorf("expected error containing %q, got %v", test.msg, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.yaml")
	if err := os.WriteFile(path, []byte("- name: ink\n  hex: \"#112233\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	entries, err := palette.LoadFile(path)
	if err != nil || len(entries) != 1 || entries[0].Hex != "#112233" {
		t.Errorf("LoadFile = %v, %v", entries, err)
	}
	if _, err := palette.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestSaved(t *testing.T) {
	s := palette.Saved{
		ID:        1,
		Name:      "sunset",
		Colors:    []string{"#FFA500", "ff0000", " #123456 "},
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Tags:      []string{"warm"},
	}
	n, err := s.Normalized()
	if err != nil {
		t.Fatalf("Normalized: %v", err)
	}
	if diff := cmp.Diff([]string{"#ffa500", "#ff0000", "#123456"}, n.Colors); diff != "" {
		t.Errorf("Normalized colors:\n%s", diff)
	}
	if s.Colors[0] != "#FFA500" {
		t.Errorf("Normalized must not modify the receiver")
	}
	if got := n.Entries(); len(got) != 3 || got[1].Name != "sunset-2" {
		t.Errorf("Entries = %v", got)
	}
	s.Colors = append(s.Colors, "f00")
	if _, err := s.Normalized(); err == nil || !strings.Contains(err.Error(), "color 4") {
		t.Errorf("expected error on color 4, got %v", err)
	}
}

func TestHistory(t *testing.T) {
	red, green, blue := colorspace.MustHex("#ff0000"), colorspace.MustHex("#00ff00"), colorspace.MustHex("#0000ff")
	empty := palette.NewHistory(2)
	if _, ok := empty.Last(); ok {
		t.Errorf("empty history has no last color")
	}
	h1 := empty.Push(red)
	h2 := h1.Push(green)
	h3 := h2.Push(red)
	h4 := h3.Push(blue)
	if empty.Len() != 0 || h1.Len() != 1 {
		t.Errorf("Push must not modify the receiver")
	}
	if diff := cmp.Diff([]string{"#ff0000", "#00ff00"}, h3.Colors()); diff != "" {
		t.Errorf("dedupe:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"#0000ff", "#ff0000"}, h4.Colors()); diff != "" {
		t.Errorf("capacity:\n%s", diff)
	}
	if last, ok := h4.Last(); !ok || last != blue {
		t.Errorf("Last = %v %t", last, ok)
	}
	var zero palette.History
	for range 20 {
		zero = zero.Push(red)
	}
	if zero.Len() != 1 {
		t.Errorf("zero value history should work and dedupe, got %d", zero.Len())
	}
}
