// Package cvd simulates color vision deficiencies with fixed 3x3 RGB matrices.
package cvd // import "fortio.org/pigment/cvd"

import (
	"fmt"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Deficiency selects the simulation matrix.
type Deficiency int

const (
	None Deficiency = iota
	Protanopia
	Deuteranopia
	Tritanopia
	Achromatopsia
	Protanomaly
	Deuteranomaly
	Tritanomaly
	Achromatomaly
)

// Matrix rows produce R, G and B from the input [R G B].
type Matrix [3][3]float64

var matrices = map[Deficiency]Matrix{
	Protanopia:    {{0.567, 0.433, 0}, {0.558, 0.442, 0}, {0, 0.242, 0.758}},
	Deuteranopia:  {{0.625, 0.375, 0}, {0.7, 0.3, 0}, {0, 0.3, 0.7}},
	Tritanopia:    {{0.95, 0.05, 0}, {0, 0.433, 0.567}, {0, 0.475, 0.525}},
	Achromatopsia: {{0.299, 0.587, 0.114}, {0.299, 0.587, 0.114}, {0.299, 0.587, 0.114}},
	Protanomaly:   {{0.817, 0.183, 0}, {0.333, 0.667, 0}, {0, 0.125, 0.875}},
	Deuteranomaly: {{0.8, 0.2, 0}, {0.258, 0.742, 0}, {0, 0.142, 0.858}},
	Tritanomaly:   {{0.967, 0.033, 0}, {0, 0.733, 0.267}, {0, 0.183, 0.817}},
	Achromatomaly: {{0.618, 0.320, 0.062}, {0.163, 0.775, 0.062}, {0.163, 0.320, 0.516}},
}

var names = [...]string{
	"none", "protanopia", "deuteranopia", "tritanopia", "achromatopsia",
	"protanomaly", "deuteranomaly", "tritanomaly", "achromatomaly",
}

// All lists the simulated deficiencies in display order.
var All = []Deficiency{
	Protanopia, Deuteranopia, Tritanopia, Achromatopsia,
	Protanomaly, Deuteranomaly, Tritanomaly, Achromatomaly,
}

func (d Deficiency) String() string {
	if d < 0 || int(d) >= len(names) {
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
	return names[d]
}

// ParseDeficiency accepts the lowercase names (protanopia, ...) in any case.
func ParseDeficiency(s string) (Deficiency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Deficiency(i), nil
		}
	}
	return None, fmt.Errorf("unknown deficiency %q, must be one of: %s", s, strings.Join(names[1:], ", "))
}

// Apply multiplies [R G B] by the matrix, clamping and rounding the result.
func (m Matrix) Apply(c colorspace.RGB) colorspace.RGB {
	in := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	var out [3]uint8
	for i, row := range m {
		out[i] = colorspace.To8(row[0]*in[0] + row[1]*in[1] + row[2]*in[2])
	}
	return colorspace.RGB{R: out[0], G: out[1], B: out[2]}
}

// Simulate returns how c is perceived with the deficiency d. None or unknown values are the identity.
func Simulate(c colorspace.RGB, d Deficiency) colorspace.RGB {
	m, ok := matrices[d]
	if !ok {
		return c
	}
	return m.Apply(c)
}

// Simulation is one entry of [SimulateAll].
type Simulation struct {
	Deficiency Deficiency
	Color      colorspace.RGB
}

// SimulateAll runs every deficiency of [All] on c.
func SimulateAll(c colorspace.RGB) []Simulation {
	res := make([]Simulation, 0, len(All))
	for _, d := range All {
		res = append(res, Simulation{Deficiency: d, Color: Simulate(c, d)})
	}
	return res
}
