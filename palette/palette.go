// Package palette finds the closest named color in reference tables
// (CSS names, Tailwind, Pantone, RAL, NCS or user supplied YAML palettes).
package palette // import "fortio.org/pigment/palette"

import (
	"math"
	"slices"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Entry is one named reference color. Hex is #rrggbb.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
}

// RGB of the entry, false when Hex is not a valid color.
func (e Entry) RGB() (colorspace.RGB, bool) {
	return colorspace.ParseHex(e.Hex)
}

// BrandCutoff is the RGB distance above which a brand system reports no match.
const BrandCutoff = 100.

// Tables by name, for lookups from the command line.
var Tables = map[string][]Entry{
	"generic":  Generic,
	"tailwind": Tailwind,
	"pantone":  Pantone,
	"ral":      RAL,
	"ncs":      NCS,
}

// TableNames is the sorted list of the [Tables] keys.
func TableNames() []string {
	names := make([]string, 0, len(Tables))
	for n := range Tables {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Table looks up a built-in table by (case insensitive) name.
func Table(name string) ([]Entry, bool) {
	t, ok := Tables[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Distance is the Euclidean distance between two colors in RGB space, in [0, 441.7].
func Distance(a, b colorspace.RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Nearest returns the entry closest to c and its distance. On ties the first
// entry in table order wins. Entries with invalid hex are skipped.
// Returns false only when the table has no valid entry.
func Nearest(c colorspace.RGB, table []Entry) (Entry, float64, bool) {
	best, bestDist, found := Entry{}, math.Inf(1), false
	for _, e := range table {
		rgb, ok := e.RGB()
		if !ok {
			continue
		}
		if d := Distance(c, rgb); d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, bestDist, found
}

// NearestWithin is [Nearest] that also reports no match when the best distance exceeds cutoff.
func NearestWithin(c colorspace.RGB, table []Entry, cutoff float64) (Entry, float64, bool) {
	e, d, ok := Nearest(c, table)
	if !ok || d > cutoff {
		return Entry{}, d, false
	}
	return e, d, true
}

// NearestName is the closest CSS color name.
func NearestName(c colorspace.RGB) string {
	e, _, _ := Nearest(c, Generic)
	return e.Name
}

// NearestTailwind is the closest Tailwind class color, there is always one.
func NearestTailwind(c colorspace.RGB) string {
	e, _, _ := Nearest(c, Tailwind)
	return e.Name
}

// NearestPantone is the closest Pantone reference within [BrandCutoff].
func NearestPantone(c colorspace.RGB) (string, bool) {
	return nearestBrand(c, Pantone)
}

// NearestRAL is the closest RAL Classic reference within [BrandCutoff].
func NearestRAL(c colorspace.RGB) (string, bool) {
	return nearestBrand(c, RAL)
}

// NearestNCS is the closest NCS reference within [BrandCutoff].
func NearestNCS(c colorspace.RGB) (string, bool) {
	return nearestBrand(c, NCS)
}

func nearestBrand(c colorspace.RGB, table []Entry) (string, bool) {
	e, _, ok := NearestWithin(c, table, BrandCutoff)
	return e.Name, ok
}
