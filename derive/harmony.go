package derive

import (
	"fmt"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Kind of hue harmony.
type Kind int

const (
	Complementary Kind = iota
	Analogous
	Triadic
	SplitComplementary
	Tetradic
	Monochromatic
)

var kindNames = [...]string{"complementary", "analogous", "triadic", "split-complementary", "tetradic", "monochromatic"}

// Kinds lists all the harmonies in display order.
var Kinds = []Kind{Complementary, Analogous, Triadic, SplitComplementary, Tetradic, Monochromatic}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the names of [Kind.String], "split" is short for split-complementary.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "split" {
		return SplitComplementary, nil
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return Complementary, fmt.Errorf("unknown harmony %q, must be one of: %s", s, strings.Join(kindNames[:], ", "))
}

// Hue rotations, primary first.
var hueOffsets = map[Kind][]float64{
	Complementary:      {0, 180},
	Analogous:          {0, -30, 30},
	Triadic:            {0, 120, 240},
	SplitComplementary: {0, 150, 210},
	Tetradic:           {0, 90, 180, 270},
}

// Lightness ladder for monochromatic, darkest first.
var lightnessSteps = []float64{-30, -15, 0, 15, 30}

// Harmony computes one harmony in HSL space. Every member, the primary
// included, is rotated by offset degrees: keeping the primary fixed while
// the user drags the offset is up to the caller.
func Harmony(c colorspace.RGB, k Kind, offset float64) []colorspace.RGB {
	hsl := c.HSL().Rotate(offset)
	if k == Monochromatic {
		res := make([]colorspace.RGB, 0, len(lightnessSteps))
		for _, d := range lightnessSteps {
			res = append(res, hsl.WithLightness(hsl.L+d).RGB())
		}
		return res
	}
	offsets, ok := hueOffsets[k]
	if !ok {
		return []colorspace.RGB{hsl.RGB()}
	}
	res := make([]colorspace.RGB, 0, len(offsets))
	for _, o := range offsets {
		res = append(res, hsl.Rotate(o).RGB())
	}
	return res
}

// Set holds every harmony of a color.
type Set struct {
	Complementary      []colorspace.RGB
	Analogous          []colorspace.RGB
	Triadic            []colorspace.RGB
	SplitComplementary []colorspace.RGB
	Tetradic           []colorspace.RGB
	Monochromatic      []colorspace.RGB
}

// Get returns the harmony of the given kind from the set.
func (s Set) Get(k Kind) []colorspace.RGB {
	switch k {
	case Complementary:
		return s.Complementary
	case Analogous:
		return s.Analogous
	case Triadic:
		return s.Triadic
	case SplitComplementary:
		return s.SplitComplementary
	case Tetradic:
		return s.Tetradic
	case Monochromatic:
		return s.Monochromatic
	}
	return nil
}

// Harmonies computes every harmony of c with the given hue offset.
func Harmonies(c colorspace.RGB, offset float64) Set {
	return Set{
		Complementary:      Harmony(c, Complementary, offset),
		Analogous:          Harmony(c, Analogous, offset),
		Triadic:            Harmony(c, Triadic, offset),
		SplitComplementary: Harmony(c, SplitComplementary, offset),
		Tetradic:           Harmony(c, Tetradic, offset),
		Monochromatic:      Harmony(c, Monochromatic, offset),
	}
}
