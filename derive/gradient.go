package derive

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"fortio.org/pigment/colorspace"
)

// GradientKind is the CSS gradient function.
type GradientKind int

const (
	Linear GradientKind = iota
	Radial
	Conic
)

func (k GradientKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Radial:
		return "radial"
	case Conic:
		return "conic"
	default:
		return fmt.Sprintf("GradientKind(%d)", int(k))
	}
}

// ParseGradientKind accepts linear, radial or conic.
func ParseGradientKind(s string) (GradientKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return Linear, nil
	case "radial":
		return Radial, nil
	case "conic":
		return Conic, nil
	}
	return Linear, fmt.Errorf("invalid gradient kind %q, must be linear, radial or conic", s)
}

// Stop is a gradient color stop, Position is a percentage in [0,100].
type Stop struct {
	Color    colorspace.RGB
	Position float64
}

// Gradient is a list of stops, in any order, plus the angle used by linear
// (direction) and conic (start) gradients.
type Gradient struct {
	Kind  GradientKind
	Angle float64
	Stops []Stop
}

// NewGradient spreads the colors evenly from 0% to 100%.
func NewGradient(kind GradientKind, angle float64, colors ...colorspace.RGB) Gradient {
	g := Gradient{Kind: kind, Angle: angle, Stops: make([]Stop, len(colors))}
	for i, c := range colors {
		pos := 0.
		if len(colors) > 1 {
			pos = 100 * float64(i) / float64(len(colors)-1)
		}
		g.Stops[i] = Stop{Color: c, Position: pos}
	}
	return g
}

// Sorted returns a copy of the stops ordered by position, equal positions keep their order.
func (g Gradient) Sorted() []Stop {
	stops := slices.Clone(g.Stops)
	slices.SortStableFunc(stops, func(a, b Stop) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return stops
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// CSS renders the gradient as a CSS image value, stops sorted by position.
// The receiver's stops are left as is.
func (g Gradient) CSS() string {
	var sb strings.Builder
	switch g.Kind {
	case Radial:
		sb.WriteString("radial-gradient(circle")
	case Conic:
		sb.WriteString("conic-gradient(from ")
		sb.WriteString(formatNumber(colorspace.NormalizeHue(g.Angle)))
		sb.WriteString("deg")
	default:
		sb.WriteString("linear-gradient(")
		sb.WriteString(formatNumber(colorspace.NormalizeHue(g.Angle)))
		sb.WriteString("deg")
	}
	for _, s := range g.Sorted() {
		sb.WriteString(", ")
		sb.WriteString(s.Color.Hex())
		sb.WriteString(" ")
		sb.WriteString(formatNumber(s.Position))
		sb.WriteString("%")
	}
	sb.WriteString(")")
	return sb.String()
}

// At samples the gradient at pos (percent), mixing the two surrounding stops in space.
// Before the first or after the last stop the end colors extend. Returns false when there are no stops.
func (g Gradient) At(pos float64, space Space) (colorspace.RGB, bool) {
	stops := g.Sorted()
	if len(stops) == 0 {
		return colorspace.RGB{}, false
	}
	if pos <= stops[0].Position {
		return stops[0].Color, true
	}
	last := stops[len(stops)-1]
	if pos >= last.Position {
		return last.Color, true
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if pos > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color, true
		}
		return Mix(a.Color, b.Color, (pos-a.Position)/span, space), true
	}
	return last.Color, true
}

// Sample returns n evenly spaced colors along the gradient, for previews.
func (g Gradient) Sample(n int, space Space) []colorspace.RGB {
	if n <= 0 || len(g.Stops) == 0 {
		return nil
	}
	res := make([]colorspace.RGB, n)
	for i := range n {
		pos := 0.
		if n > 1 {
			pos = 100 * float64(i) / float64(n-1)
		}
		res[i], _ = g.At(pos, space)
	}
	return res
}
