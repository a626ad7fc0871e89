package perceptual

import (
	"math"

	"fortio.org/pigment/colorspace"
)

// APCAConstants is one version of the APCA constant table. Swap the table
// rather than editing the formula when the algorithm constants change.
type APCAConstants struct {
	Version string
	// Luminance estimate.
	MainTRC       float64 // power curve exponent applied to each channel
	RCo, GCo, BCo float64
	// Soft black clamp.
	BlackThreshold float64
	BlackClamp     float64
	// Dark text on light background.
	NormBG, NormTXT float64
	// Light text on dark background.
	RevBG, RevTXT float64
	ScaleBoW      float64
	ScaleWoB      float64
	LoBoWOffset   float64
	LoWoBOffset   float64
	// Results with a magnitude below LowClip (in Lc units) are reported as 0.
	LowClip   float64
	DeltaYMin float64
}

// APCA98G is the 0.0.98G-4g draft constant set.
var APCA98G = APCAConstants{
	Version:        "0.0.98G-4g",
	MainTRC:        2.4,
	RCo:            0.2126729,
	GCo:            0.7151522,
	BCo:            0.0721750,
	BlackThreshold: 0.022,
	BlackClamp:     1.414,
	NormBG:         0.56,
	NormTXT:        0.57,
	RevBG:          0.65,
	RevTXT:         0.62,
	ScaleBoW:       1.14,
	ScaleWoB:       1.14,
	LoBoWOffset:    0.027,
	LoWoBOffset:    0.027,
	LowClip:        10,
	DeltaYMin:      0.0005,
}

// Y is the APCA screen luminance estimate with the soft black clamp applied.
func (k APCAConstants) Y(c colorspace.RGB) float64 {
	ch := func(v uint8) float64 { return math.Pow(float64(v)/255, k.MainTRC) }
	y := k.RCo*ch(c.R) + k.GCo*ch(c.G) + k.BCo*ch(c.B)
	if y < k.BlackThreshold {
		y += math.Pow(k.BlackThreshold-y, k.BlackClamp)
	}
	return y
}

// Contrast returns the signed lightness contrast Lc of text over bg.
// Positive: dark text on a lighter background. Negative: light text on a darker one.
// This is the entry point for a non default constant table, [APCA] uses [APCA98G].
func (k APCAConstants) Contrast(text, bg colorspace.RGB) float64 {
	yTxt, yBg := k.Y(text), k.Y(bg)
	if math.Abs(yBg-yTxt) < k.DeltaYMin {
		return 0
	}
	var lc float64
	if yBg > yTxt {
		lc = ((math.Pow(yBg, k.NormBG)-math.Pow(yTxt, k.NormTXT))*k.ScaleBoW - k.LoBoWOffset) * 100
	} else {
		lc = ((math.Pow(yBg, k.RevBG)-math.Pow(yTxt, k.RevTXT))*k.ScaleWoB + k.LoWoBOffset) * 100
	}
	if math.Abs(lc) < k.LowClip {
		return 0
	}
	return lc
}

// APCA is the lightness contrast of text over bg using the default [APCA98G] constants.
func APCA(text, bg colorspace.RGB) float64 {
	return APCA98G.Contrast(text, bg)
}

// BestTextColor picks black or white text for the background, whichever has the larger |Lc|.
func BestTextColor(bg colorspace.RGB) colorspace.RGB {
	if math.Abs(APCA(colorspace.Black, bg)) >= math.Abs(APCA(colorspace.White, bg)) {
		return colorspace.Black
	}
	return colorspace.White
}
