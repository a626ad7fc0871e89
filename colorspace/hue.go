package colorspace

import "math"

// NormalizeHue wraps any angle into [0,360). Non finite input becomes 0.
func NormalizeHue(h float64) float64 {
	h = math.Mod(finite(h), 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 { // -tiny + 360 rounds to 360.
		h = 0
	}
	return h
}

// HueDelta returns the shortest signed rotation from `from` to `to`, in (-180,180].
func HueDelta(from, to float64) float64 {
	d := NormalizeHue(to) - NormalizeHue(from)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}

// LerpHue interpolates between two hues along the short way around the circle:
// when they are more than 180 apart, 360 is added to the smaller one first.
// The result is always in [0,360).
func LerpHue(a, b, t float64) float64 {
	a, b = NormalizeHue(a), NormalizeHue(b)
	if math.Abs(b-a) > 180 {
		if a < b {
			a += 360
		} else {
			b += 360
		}
	}
	return NormalizeHue(a + (b-a)*t)
}

// hueFromRGB is the classical max/min/delta piecewise hue, in degrees.
// Achromatic (max == min) input yields 0.
func hueFromRGB(r, g, b, maxC, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return NormalizeHue(h * 60)
}
