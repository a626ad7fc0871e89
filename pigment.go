// Package pigment is a colorimetry and perceptual color engine: conversions
// between color spaces, WCAG and APCA contrast, color vision deficiency
// simulation, harmonies, mixing, gradients, nearest named colors and code export.
//
// The work is done by the sub packages ([colorspace], [perceptual], [cvd],
// [derive], [palette], [export]); this package aggregates them into a
// single [Description] of a color.
package pigment // import "fortio.org/pigment"

import (
	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/cvd"
	"fortio.org/pigment/export"
	"fortio.org/pigment/palette"
	"fortio.org/pigment/perceptual"
)

// Contrast of a color against a fixed background.
type Contrast struct {
	Ratio float64          // WCAG 2.x ratio, [1,21]
	Level perceptual.Level // WCAG level reached for normal text
	APCA  float64          // APCA Lc, the color being the text
}

func contrastOn(text, bg colorspace.RGB) Contrast {
	r := perceptual.WCAGContrast(text, bg)
	return Contrast{Ratio: r, Level: perceptual.WCAGLevel(r), APCA: perceptual.APCA(text, bg)}
}

// Description is everything known about a color, display rounded.
type Description struct {
	Hex   string
	RGB   colorspace.RGB
	HSL   colorspace.HSL
	HSV   colorspace.HSV
	HWB   colorspace.HWB
	CMYK  colorspace.CMYK
	Lab   colorspace.Lab
	LCH   colorspace.LCH
	Oklab colorspace.Oklab
	Oklch colorspace.Oklch

	Luminance   float64
	OnWhite     Contrast
	OnBlack     Contrast
	BestText    colorspace.RGB
	Temperature perceptual.TemperatureInfo

	Name     string
	Tailwind string
	// Brand matches, empty when nothing is within [palette.BrandCutoff].
	Pantone string
	RAL     string
	NCS     string

	CSS        []string
	Deficiency []cvd.Simulation
}

// Describe computes the full [Description] of c.
func Describe(c colorspace.RGB) Description {
	d := Description{
		Hex:         c.Hex(),
		RGB:         c,
		HSL:         c.HSL().Rounded(),
		HSV:         c.HSV().Rounded(),
		HWB:         c.HWB().Rounded(),
		CMYK:        c.CMYK().Rounded(),
		Lab:         c.Lab().Rounded(),
		LCH:         c.LCH().Rounded(),
		Oklab:       c.Oklab().Rounded(),
		Oklch:       c.Oklch().Rounded(),
		Luminance:   perceptual.Luminance(c),
		OnWhite:     contrastOn(c, colorspace.White),
		OnBlack:     contrastOn(c, colorspace.Black),
		BestText:    perceptual.BestTextColor(c),
		Temperature: perceptual.ColorTemperature(c),
		Name:        palette.NearestName(c),
		Tailwind:    palette.NearestTailwind(c),
		CSS:         export.CSS(c),
		Deficiency:  cvd.SimulateAll(c),
	}
	d.Pantone, _ = palette.NearestPantone(c)
	d.RAL, _ = palette.NearestRAL(c)
	d.NCS, _ = palette.NearestNCS(c)
	return d
}

// DescribeString parses s (hex, rgb() or hsl()) and describes it, false when s isn't a color.
func DescribeString(s string) (Description, bool) {
	c, ok := colorspace.Parse(s)
	if !ok {
		return Description{}, false
	}
	return Describe(c), true
}
