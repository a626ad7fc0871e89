package perceptual

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/pigment/colorspace"
)

// Direction in which [Suggest] is allowed to move the foreground lightness.
type Direction int

const (
	Any Direction = iota // alternate lighter/darker at increasing distance
	Lighter
	Darker
)

func (d Direction) String() string {
	switch d {
	case Any:
		return "any"
	case Lighter:
		return "lighter"
	case Darker:
		return "darker"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "any", "lighter" and "darker" (any case).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return Any, nil
	case "lighter", "light":
		return Lighter, nil
	case "darker", "dark":
		return Darker, nil
	}
	return Any, fmt.Errorf("invalid direction %q, must be any, lighter or darker", s)
}

// SuggestOptions tunes [Suggest]. The zero value means target 4.5 (AA) in any direction.
type SuggestOptions struct {
	Target float64
	Prefer Direction
}

// Suggest finds a foreground color with at least the target WCAG contrast against bg by
// walking the foreground HSL lightness in integer steps, hue and saturation unchanged.
// It's a bounded linear search: at most 100 steps per direction. When the walk is
// exhausted it falls back to white or black, whichever contrasts more with bg, and
// returns false. An already conforming fg is returned unchanged.
func Suggest(bg, fg colorspace.RGB, opts SuggestOptions) (colorspace.RGB, bool) {
	target := opts.Target
	if target <= 0 {
		target = DefaultTarget
	}
	if WCAGContrast(fg, bg) >= target {
		return fg, true
	}
	hsl := fg.HSL()
	start := math.Round(hsl.L)
	try := func(l float64) (colorspace.RGB, bool) {
		c := hsl.WithLightness(l).RGB()
		return c, WCAGContrast(c, bg) >= target
	}
	switch opts.Prefer {
	case Lighter:
		for l := start + 1; l <= 100; l++ {
			if c, ok := try(l); ok {
				return c, true
			}
		}
	case Darker:
		for l := start - 1; l >= 0; l-- {
			if c, ok := try(l); ok {
				return c, true
			}
		}
	default:
		for d := 1.; d <= 100; d++ {
			if start+d <= 100 {
				if c, ok := try(start + d); ok {
					return c, true
				}
			}
			if start-d >= 0 {
				if c, ok := try(start - d); ok {
					return c, true
				}
			}
		}
	}
	if WCAGContrast(colorspace.White, bg) >= WCAGContrast(colorspace.Black, bg) {
		return colorspace.White, false
	}
	return colorspace.Black, false
}
