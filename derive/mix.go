// Package derive computes colors related to a base color: tints and shades,
// hue harmonies, mixes in RGB/Lab/Oklch, blend modes, scales and gradients.
package derive // import "fortio.org/pigment/derive"

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Space selects the mixing strategy.
type Space int

const (
	RGB   Space = iota // component-wise average of the sRGB channels
	Lab                // perceptual, CIE Lab
	Oklch              // perceptual, Oklch with circular hue interpolation
)

func (s Space) String() string {
	switch s {
	case RGB:
		return "rgb"
	case Lab:
		return "lab"
	case Oklch:
		return "oklch"
	default:
		return fmt.Sprintf("Space(%d)", int(s))
	}
}

// ParseSpace accepts rgb, lab or oklch.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rgb", "srgb":
		return RGB, nil
	case "lab":
		return Lab, nil
	case "oklch":
		return Oklch, nil
	}
	return RGB, fmt.Errorf("invalid mixing space %q, must be rgb, lab or oklch", s)
}

// Below this Oklch chroma the hue is meaningless.
const achromaticChroma = 1e-4

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Mix returns the color at ratio t between a (t=0) and b (t=1) in the given space.
// t is clamped to [0,1] and both ends are exact.
func Mix(a, b colorspace.RGB, t float64, space Space) colorspace.RGB {
	if math.IsNaN(t) || t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	switch space {
	case Lab:
		return mixLab(a, b, t)
	case Oklch:
		return mixOklch(a, b, t)
	default:
		return mixRGB(a, b, t)
	}
}

// MixRGB is [Mix] in RGB space.
func MixRGB(a, b colorspace.RGB, t float64) colorspace.RGB { return Mix(a, b, t, RGB) }

// MixLab is [Mix] in CIE Lab space.
func MixLab(a, b colorspace.RGB, t float64) colorspace.RGB { return Mix(a, b, t, Lab) }

// MixOklch is [Mix] in Oklch space.
func MixOklch(a, b colorspace.RGB, t float64) colorspace.RGB { return Mix(a, b, t, Oklch) }

func mixRGB(a, b colorspace.RGB, t float64) colorspace.RGB {
	return colorspace.RGB{
		R: colorspace.To8(lerp(float64(a.R), float64(b.R), t)),
		G: colorspace.To8(lerp(float64(a.G), float64(b.G), t)),
		B: colorspace.To8(lerp(float64(a.B), float64(b.B), t)),
	}
}

func mixLab(a, b colorspace.RGB, t float64) colorspace.RGB {
	la, lb := a.Lab(), b.Lab()
	return colorspace.Lab{L: lerp(la.L, lb.L, t), A: lerp(la.A, lb.A, t), B: lerp(la.B, lb.B, t)}.RGB()
}

func mixOklch(a, b colorspace.RGB, t float64) colorspace.RGB {
	oa, ob := a.Oklch(), b.Oklch()
	// A gray has no hue of its own: borrow the other end's so the mix doesn't swing through unrelated hues.
	switch {
	case oa.C < achromaticChroma && ob.C < achromaticChroma:
		oa.H, ob.H = 0, 0
	case oa.C < achromaticChroma:
		oa.H = ob.H
	case ob.C < achromaticChroma:
		ob.H = oa.H
	}
	return colorspace.Oklch{
		L: lerp(oa.L, ob.L, t),
		C: lerp(oa.C, ob.C, t),
		H: colorspace.LerpHue(oa.H, ob.H, t),
	}.RGB()
}

// Scale samples [Mix] at i/(steps-1) for i in [0,steps). A single step is just a.
func Scale(a, b colorspace.RGB, steps int, space Space) []colorspace.RGB {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []colorspace.RGB{a}
	}
	res := make([]colorspace.RGB, steps)
	for i := range steps {
		res[i] = Mix(a, b, float64(i)/float64(steps-1), space)
	}
	return res
}

// Tints returns n colors going from c toward white, factor i/(n+1): neither c nor white is included.
func Tints(c colorspace.RGB, n int) []colorspace.RGB {
	return toward(c, colorspace.White, n)
}

// Shades is like [Tints] toward black.
func Shades(c colorspace.RGB, n int) []colorspace.RGB {
	return toward(c, colorspace.Black, n)
}

func toward(c, target colorspace.RGB, n int) []colorspace.RGB {
	if n <= 0 {
		return nil
	}
	res := make([]colorspace.RGB, 0, n)
	for i := 1; i <= n; i++ {
		res = append(res, mixRGB(c, target, float64(i)/float64(n+1)))
	}
	return res
}
