package colorspace

import "math"

// CIE Lab/LCH through an XYZ pivot (sRGB primaries, D65 white).

// Lab color: L in [0,100], A and B unbounded (roughly [-128,128] for sRGB).
type Lab struct {
	L, A, B float64
}

// LCH is the cylindrical form of [Lab]: C = sqrt(a²+b²), H = atan2(b,a) in [0,360).
type LCH struct {
	L, C, H float64
}

// D65 reference white.
const (
	RefX = 0.95047
	RefY = 1.0
	RefZ = 1.08883
)

// CIE constants for the piecewise cube root / linear split.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

type xyz struct {
	x, y, z float64
}

// SRGBToLinear is the sRGB transfer function inverse (v in [0,1]).
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB is the sRGB transfer function (v in [0,1], clamped).
func LinearToSRGB(v float64) float64 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1./2.4) - 0.055
}

func (c RGB) linear() (r, g, b float64) {
	r, g, b = c.unit()
	return SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)
}

func fromLinear(r, g, b float64) RGB {
	return RGB{R: unit8(LinearToSRGB(r)), G: unit8(LinearToSRGB(g)), B: unit8(LinearToSRGB(b))}
}

func (c RGB) xyz() xyz {
	r, g, b := c.linear()
	return xyz{
		x: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

func (v xyz) rgb() RGB {
	return fromLinear(
		3.2404542*v.x-1.5371385*v.y-0.4985314*v.z,
		-0.9692660*v.x+1.8760108*v.y+0.0415560*v.z,
		0.0556434*v.x-0.2040259*v.y+1.0572252*v.z,
	)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}

func (c RGB) Lab() Lab {
	v := c.xyz()
	fx := labF(v.x / RefX)
	fy := labF(v.y / RefY)
	fz := labF(v.z / RefZ)
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz)}
}

// RGB converts back to sRGB, out of gamut results are clamped per channel.
func (c Lab) RGB() RGB {
	l, a, b := finite(c.L), finite(c.A), finite(c.B)
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	var yr float64
	if l > labKappa*labEpsilon {
		yr = fy * fy * fy
	} else {
		yr = l / labKappa
	}
	return xyz{x: labFInv(fx) * RefX, y: yr * RefY, z: labFInv(fz) * RefZ}.rgb()
}

func (c Lab) LCH() LCH {
	return LCH{L: c.L, C: math.Hypot(c.A, c.B), H: polarHue(c.A, c.B)}
}

// Rounded to one decimal.
func (c Lab) Rounded() Lab {
	return Lab{L: roundTo(c.L, 1), A: roundTo(c.A, 1), B: roundTo(c.B, 1)}
}

func (c RGB) LCH() LCH {
	return c.Lab().LCH()
}

func (c LCH) Lab() Lab {
	a, b := cartesian(c.C, c.H)
	return Lab{L: c.L, A: a, B: b}
}

func (c LCH) RGB() RGB {
	return c.Lab().RGB()
}

func (c LCH) Rounded() LCH {
	return LCH{L: roundTo(c.L, 1), C: roundTo(c.C, 1), H: NormalizeHue(roundTo(c.H, 1))}
}

func polarHue(a, b float64) float64 {
	return NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

func cartesian(chroma, hue float64) (a, b float64) {
	chroma = math.Max(0, finite(chroma))
	rad := NormalizeHue(hue) * math.Pi / 180
	return chroma * math.Cos(rad), chroma * math.Sin(rad)
}
