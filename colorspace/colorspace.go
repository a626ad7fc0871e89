// Package colorspace provides the color value types and the conversion kernels
// between hex, RGB, HSL, HSV, HWB, CMYK, CIE Lab/LCH and Oklab/Oklch.
// Every kernel is a pure total function: out of range input is clamped, never rejected.
package colorspace // import "fortio.org/pigment/colorspace"

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// RGB is the canonical 8 bit per channel sRGB color, everything else is derived from it.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	// DefaultAccent is the accent color used when the platform doesn't provide one.
	DefaultAccent = RGB{0x4f, 0x46, 0xe5}
)

// Hex returns the lowercase #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// Color converts to the standard library (opaque) color.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts any standard library color, alpha is ignored (non premultiplied channels are used).
func FromColor(c color.Color) RGB {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// FromABGR decodes a 0xAABBGGRR packed value (Windows accent color registry format, red in the low byte).
func FromABGR(v uint32) RGB {
	return RGB{
		R: safecast.MustConvert[uint8](v & 0xFF),
		G: safecast.MustConvert[uint8]((v >> 8) & 0xFF),
		B: safecast.MustConvert[uint8]((v >> 16) & 0xFF),
	}
}

// RGBToHex renders integer channels as #rrggbb, clamping each to [0,255].
func RGBToHex(r, g, b int) string {
	return RGB{R: clampInt8(r), G: clampInt8(g), B: clampInt8(b)}.Hex()
}

// HexToRGB is [ParseHex] under the name the rest of the world uses.
func HexToRGB(hex string) (RGB, bool) {
	return ParseHex(hex)
}

// ParseHex parses #rrggbb, with or without the leading #, in any case.
// Anything else, including the #rgb shorthand, is no match.
func ParseHex(hex string) (RGB, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return RGB{}, false
	}
	if !isHexDigits(hex) {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{
		R: safecast.MustConvert[uint8]((v >> 16) & 0xFF),
		G: safecast.MustConvert[uint8]((v >> 8) & 0xFF),
		B: safecast.MustConvert[uint8](v & 0xFF),
	}, true
}

// ParseHexShort is [ParseHex] that also expands the CSS #rgb shorthand.
// Not used by [Parse]: "#3b8" is an incomplete "#3b82f6", not "#33bb88".
func ParseHexShort(hex string) (RGB, bool) {
	short := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(short) == 3 {
		hex = string([]byte{short[0], short[0], short[1], short[1], short[2], short[2]})
	}
	return ParseHex(hex)
}

// NormalizeHex returns the canonical lowercase #rrggbb form of a hex string,
// which is the equality key for caches and lookups.
func NormalizeHex(hex string) (string, bool) {
	c, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// MustHex is for static tables and tests: panics on invalid input.
func MustHex(hex string) RGB {
	c, ok := ParseHex(hex)
	if !ok {
		panic("invalid hex color " + strconv.Quote(hex))
	}
	return c
}

func isHexDigits(s string) bool {
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// Clamping and rounding helpers shared by the kernels.

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	v = finite(v)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp100(v float64) float64 {
	return clamp(v, 0, 100)
}

// To8 rounds a [0,255] scaled channel to the nearest uint8, clamping out of range values.
func To8(v float64) uint8 {
	v = clamp(v, 0, 255)
	return safecast.MustRound[uint8](v)
}

// unit8 converts a [0,1] channel.
func unit8(v float64) uint8 {
	return To8(v * 255)
}

func clampInt8(v int) uint8 {
	return safecast.MustConvert[uint8](min(255, max(0, v)))
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func (c RGB) unit() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}
