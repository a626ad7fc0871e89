// Package perceptual evaluates human-perceptual properties of colors:
// relative luminance, WCAG 2 contrast ratio, APCA lightness contrast,
// legibility buckets, accessible color suggestions and color temperature.
package perceptual // import "fortio.org/pigment/perceptual"

import (
	"math"

	"fortio.org/pigment/colorspace"
)

// WCAG linearization uses the older 0.03928 threshold (not 0.04045), as the WCAG 2 text does.
func wcagLinear(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Luminance is the WCAG relative luminance in [0,1].
func Luminance(c colorspace.RGB) float64 {
	return 0.2126*wcagLinear(c.R) + 0.7152*wcagLinear(c.G) + 0.0722*wcagLinear(c.B)
}

// WCAGContrast is the symmetric WCAG 2 contrast ratio, in [1,21].
func WCAGContrast(a, b colorspace.RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (max(la, lb) + 0.05) / (min(la, lb) + 0.05)
}

// WCAG conformance thresholds.
const (
	RatioAAA      = 7.0
	RatioAA       = 4.5
	RatioAALarge  = 3.0
	DefaultTarget = RatioAA
)

// Level is the WCAG 2 conformance grade of a contrast ratio for text.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// WCAGLevel grades a contrast ratio.
func WCAGLevel(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// Minimum legible font size buckets, strongest first.
type sizeBucket struct {
	threshold float64
	px        int
}

var (
	apcaSizes = []sizeBucket{{90, 12}, {75, 14}, {60, 16}, {45, 24}, {30, 32}}
	wcagSizes = []sizeBucket{{RatioAAA, 12}, {RatioAA, 16}, {RatioAALarge, 24}}
)

func lookupSize(buckets []sizeBucket, v float64) (int, bool) {
	for _, b := range buckets {
		if v >= b.threshold {
			return b.px, true
		}
	}
	return 0, false
}

// MinFontSizeAPCA returns the minimum legible body text size in px for an APCA Lc
// value (either polarity), or false when the contrast isn't enough for any text.
func MinFontSizeAPCA(lc float64) (int, bool) {
	return lookupSize(apcaSizes, math.Abs(lc))
}

// MinFontSizeWCAG is the same bucketed heuristic for callers using the ratio metric.
func MinFontSizeWCAG(ratio float64) (int, bool) {
	return lookupSize(wcagSizes, ratio)
}
