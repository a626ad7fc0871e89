package colorspace

import (
	"fmt"
	"math"
)

// HSL color: H in [0,360), S and L in [0,100].
type HSL struct {
	H, S, L float64
}

// HSV color: H in [0,360), S and V in [0,100].
type HSV struct {
	H, S, V float64
}

// HWB color: H in [0,360), W (whiteness) and B (blackness) in [0,100].
type HWB struct {
	H, W, B float64
}

// CMYK color, all components in [0,100].
type CMYK struct {
	C, M, Y, K float64
}

// HSL colors.

// HSL converts to hue, saturation, lightness. Not rounded, use [HSL.Rounded] for display.
func (c RGB) HSL() HSL {
	r, g, b := c.unit()
	maxC := max(r, g, b)
	minC := min(r, g, b)
	l := (maxC + minC) / 2
	delta := maxC - minC
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}
	var s float64
	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}
	return HSL{H: hueFromRGB(r, g, b, maxC, delta), S: s * 100, L: l * 100}
}

// RGB converts back to RGB. Initially from grol's image extension.
func (c HSL) RGB() RGB {
	h := NormalizeHue(c.H) / 360
	s := clamp100(c.S) / 100
	l := clamp100(c.L) / 100
	if s == 0 {
		return RGB{R: unit8(l), G: unit8(l), B: unit8(l)}
	}
	var q float64
	if l < 0.5 {
		q = l * (1. + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: unit8(hueToRGB(p, q, h+1/3.)),
		G: unit8(hueToRGB(p, q, h)),
		B: unit8(hueToRGB(p, q, h-1/3.)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.
	}
	if t > 1 {
		t -= 1.
	}
	if t < 1/6. {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2/3. {
		return p + (q-p)*(2/3.-t)*6
	}
	return p
}

// Rounded returns the integer rounded display value.
func (c HSL) Rounded() HSL {
	return HSL{H: NormalizeHue(math.Round(c.H)), S: math.Round(c.S), L: math.Round(c.L)}
}

// WithLightness returns the same hue and saturation at lightness l (clamped).
func (c HSL) WithLightness(l float64) HSL {
	return HSL{H: c.H, S: c.S, L: clamp100(l)}
}

// Rotate returns the color with its hue rotated by deg degrees.
func (c HSL) Rotate(deg float64) HSL {
	return HSL{H: NormalizeHue(c.H + deg), S: c.S, L: c.L}
}

func (c HSL) String() string {
	r := c.Rounded()
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", r.H, r.S, r.L)
}

// HSV colors.

func (c RGB) HSV() HSV {
	r, g, b := c.unit()
	maxC := max(r, g, b)
	minC := min(r, g, b)
	delta := maxC - minC
	var s float64
	if maxC > 0 {
		s = delta / maxC
	}
	return HSV{H: hueFromRGB(r, g, b, maxC, delta), S: s * 100, V: maxC * 100}
}

func (c HSV) RGB() RGB {
	h := NormalizeHue(c.H) / 60
	s := clamp100(c.S) / 100
	v := clamp100(c.V) / 100
	if s == 0 {
		return RGB{R: unit8(v), G: unit8(v), B: unit8(v)}
	}
	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: unit8(r), G: unit8(g), B: unit8(b)}
}

func (c HSV) Rounded() HSV {
	return HSV{H: NormalizeHue(math.Round(c.H)), S: math.Round(c.S), V: math.Round(c.V)}
}

// HWB colors, derived from HSV.

func (c RGB) HWB() HWB {
	hsv := c.HSV()
	s, v := hsv.S/100, hsv.V/100
	return HWB{H: hsv.H, W: (1 - s) * v * 100, B: (1 - v) * 100}
}

// RGB converts back. When whiteness + blackness reach 100 the result is the gray w/(w+b).
func (c HWB) RGB() RGB {
	w := clamp100(c.W) / 100
	bk := clamp100(c.B) / 100
	if w+bk >= 1 {
		gray := w / (w + bk)
		return RGB{R: unit8(gray), G: unit8(gray), B: unit8(gray)}
	}
	v := 1 - bk
	s := 1 - w/v
	return HSV{H: c.H, S: s * 100, V: v * 100}.RGB()
}

func (c HWB) Rounded() HWB {
	return HWB{H: NormalizeHue(math.Round(c.H)), W: math.Round(c.W), B: math.Round(c.B)}
}

// CMYK colors.

// CMYK converts with the naive (non ICC) formula. Pure black is {0,0,0,100}.
func (c RGB) CMYK() CMYK {
	r, g, b := c.unit()
	k := 1 - max(r, g, b)
	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

func (c CMYK) RGB() RGB {
	k := 1 - clamp100(c.K)/100
	return RGB{
		R: To8(255 * (1 - clamp100(c.C)/100) * k),
		G: To8(255 * (1 - clamp100(c.M)/100) * k),
		B: To8(255 * (1 - clamp100(c.Y)/100) * k),
	}
}

func (c CMYK) Rounded() CMYK {
	return CMYK{C: math.Round(c.C), M: math.Round(c.M), Y: math.Round(c.Y), K: math.Round(c.K)}
}
