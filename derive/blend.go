package derive

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Mode is a W3C compositing blend mode, applied to opaque colors.
type Mode int

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	// Non-separable modes.
	Hue
	Saturation
	Color
	Luminosity
)

var modeNames = [...]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion",
	"hue", "saturation", "color", "luminosity",
}

// Modes lists every blend mode.
var Modes = []Mode{
	Normal, Multiply, Screen, Overlay, Darken, Lighten, ColorDodge, ColorBurn,
	HardLight, SoftLight, Difference, Exclusion, Hue, Saturation, Color, Luminosity,
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts the CSS mix-blend-mode names, underscores or no dash work too.
func ParseMode(s string) (Mode, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range modeNames {
		if n == s || strings.ReplaceAll(n, "-", "") == s {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown blend mode %q, must be one of: %s", s, strings.Join(modeNames[:], ", "))
}

type channelFunc func(b, s float64) float64

var separable = map[Mode]channelFunc{
	Normal:   func(_, s float64) float64 { return s },
	Multiply: func(b, s float64) float64 { return b * s },
	Screen:   screen,
	Overlay:  func(b, s float64) float64 { return hardLight(s, b) },
	Darken:   math.Min,
	Lighten:  math.Max,
	ColorDodge: func(b, s float64) float64 {
		switch {
		case b == 0:
			return 0
		case s >= 1:
			return 1
		default:
			return math.Min(1, b/(1-s))
		}
	},
	ColorBurn: func(b, s float64) float64 {
		switch {
		case b >= 1:
			return 1
		case s <= 0:
			return 0
		default:
			return 1 - math.Min(1, (1-b)/s)
		}
	},
	HardLight:  hardLight,
	SoftLight:  softLight,
	Difference: func(b, s float64) float64 { return math.Abs(b - s) },
	Exclusion:  func(b, s float64) float64 { return b + s - 2*b*s },
}

func screen(b, s float64) float64 {
	return b + s - b*s
}

func hardLight(b, s float64) float64 {
	if s <= 0.5 {
		return b * 2 * s
	}
	return screen(b, 2*s-1)
}

func softLight(b, s float64) float64 {
	if s <= 0.5 {
		return b - (1-2*s)*b*(1-b)
	}
	var d float64
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	return b + (2*s-1)*(d-b)
}

type unitRGB [3]float64

func toUnit(c colorspace.RGB) unitRGB {
	return unitRGB{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func (u unitRGB) rgb() colorspace.RGB {
	return colorspace.RGB{R: colorspace.To8(u[0] * 255), G: colorspace.To8(u[1] * 255), B: colorspace.To8(u[2] * 255)}
}

// Blend composites top over base with the given mode. Unknown modes behave like [Normal].
func Blend(base, top colorspace.RGB, mode Mode) colorspace.RGB {
	b, s := toUnit(base), toUnit(top)
	switch mode {
	case Hue:
		return setLum(setSat(s, sat(b)), lum(b)).rgb()
	case Saturation:
		return setLum(setSat(b, sat(s)), lum(b)).rgb()
	case Color:
		return setLum(s, lum(b)).rgb()
	case Luminosity:
		return setLum(b, lum(s)).rgb()
	}
	f, ok := separable[mode]
	if !ok {
		return top
	}
	var res unitRGB
	for i := range res {
		res[i] = f(b[i], s[i])
	}
	return res.rgb()
}

func lum(c unitRGB) float64 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func clipColor(c unitRGB) unitRGB {
	l := lum(c)
	n := math.Min(c[0], math.Min(c[1], c[2]))
	x := math.Max(c[0], math.Max(c[1], c[2]))
	for i := range c {
		if n < 0 {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
		if x > 1 {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setLum(c unitRGB, l float64) unitRGB {
	d := l - lum(c)
	return clipColor(unitRGB{c[0] + d, c[1] + d, c[2] + d})
}

func sat(c unitRGB) float64 {
	return math.Max(c[0], math.Max(c[1], c[2])) - math.Min(c[0], math.Min(c[1], c[2]))
}

func setSat(c unitRGB, s float64) unitRGB {
	maxI, minI := 0, 0
	for i := 1; i < 3; i++ {
		if c[i] > c[maxI] {
			maxI = i
		}
		if c[i] < c[minI] {
			minI = i
		}
	}
	if maxI == minI {
		return unitRGB{}
	}
	midI := 3 - maxI - minI
	var res unitRGB
	res[midI] = (c[midI] - c[minI]) * s / (c[maxI] - c[minI])
	res[maxI] = s
	return res
}

// Composite draws fg over bg with the given alpha, clamped to [0,1], blending in linear light.
func Composite(bg, fg colorspace.RGB, alpha float64) colorspace.RGB {
	if math.IsNaN(alpha) || alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	ch := func(b, f uint8) uint8 {
		lb, lf := colorspace.SRGBToLinear(float64(b)/255), colorspace.SRGBToLinear(float64(f)/255)
		return colorspace.To8(colorspace.LinearToSRGB((1-alpha)*lb+alpha*lf) * 255)
	}
	return colorspace.RGB{R: ch(bg.R, fg.R), G: ch(bg.G, fg.G), B: ch(bg.B, fg.B)}
}
