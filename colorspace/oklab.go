package colorspace

import "math"

// Oklab (Björn Ottosson) has its own LMS matrices and never shares them with CIE Lab.

// Oklab color: L roughly in [0,1], A and B roughly in [-0.4,0.4].
type Oklab struct {
	L, A, B float64
}

// Oklch is the cylindrical form of [Oklab], H in [0,360).
type Oklch struct {
	L, C, H float64
}

func (c RGB) Oklab() Oklab {
	r, g, b := c.linear()
	// M1: linear RGB -> LMS, then cube root.
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)
	// M2: LMS' -> Lab.
	return Oklab{
		L: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
	}
}

func (c Oklab) RGB() RGB {
	L, a, b := finite(c.L), finite(c.A), finite(c.B)
	l := L + 0.3963377774*a + 0.2158037573*b
	m := L - 0.1055613458*a - 0.0638541728*b
	s := L - 0.0894841775*a - 1.2914855480*b
	l, m, s = l*l*l, m*m*m, s*s*s
	return fromLinear(
		+4.0767416621*l-3.3077115913*m+0.2309699292*s,
		-1.2684380046*l+2.6097574011*m-0.3413193965*s,
		-0.0041960863*l-0.7034186147*m+1.7076147010*s,
	)
}

func (c Oklab) Oklch() Oklch {
	return Oklch{L: c.L, C: math.Hypot(c.A, c.B), H: polarHue(c.A, c.B)}
}

// Rounded to three decimals.
func (c Oklab) Rounded() Oklab {
	return Oklab{L: roundTo(c.L, 3), A: roundTo(c.A, 3), B: roundTo(c.B, 3)}
}

func (c RGB) Oklch() Oklch {
	return c.Oklab().Oklch()
}

func (c Oklch) Oklab() Oklab {
	a, b := cartesian(c.C, c.H)
	return Oklab{L: c.L, A: a, B: b}
}

func (c Oklch) RGB() RGB {
	return c.Oklab().RGB()
}

// Rounded to three decimals for L and C, one for the hue.
func (c Oklch) Rounded() Oklch {
	return Oklch{L: roundTo(c.L, 3), C: roundTo(c.C, 3), H: NormalizeHue(roundTo(c.H, 1))}
}
