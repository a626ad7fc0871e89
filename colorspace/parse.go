package colorspace

import (
	"regexp"
	"strconv"
	"strings"
)

// Free form parsing for live text fields: any partial or invalid input is
// simply "no match" so the caller keeps its last valid color.

const (
	num    = `(-?\d+(?:\.\d+)?|-?\.\d+)`
	sep    = `\s*[,\s]\s*`
	alpha  = `(?:\s*[,/]\s*(?:\d+(?:\.\d+)?|\.\d+)%?)?`
	opener = `\(\s*`
	closer = `\s*\)$`
)

var (
	rgbRE = regexp.MustCompile(`^rgba?` + opener + num + sep + num + sep + num + alpha + closer)
	hslRE = regexp.MustCompile(`^hsla?` + opener + num + `(?:deg)?` + sep + num + `%?` + sep + num + `%?` + alpha + closer)
)

// Parse accepts #rrggbb (with or without #), rgb(r,g,b) and hsl(h,s%,l%).
// Channel values out of range are clamped. Returns false for anything else.
func Parse(input string) (RGB, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return RGB{}, false
	}
	if c, ok := ParseHex(s); ok {
		return c, true
	}
	if m := rgbRE.FindStringSubmatch(s); m != nil {
		v, ok := floats(m[1:4])
		if !ok {
			return RGB{}, false
		}
		return RGB{R: To8(v[0]), G: To8(v[1]), B: To8(v[2])}, true
	}
	if m := hslRE.FindStringSubmatch(s); m != nil {
		v, ok := floats(m[1:4])
		if !ok {
			return RGB{}, false
		}
		return HSL{H: v[0], S: v[1], L: v[2]}.RGB(), true
	}
	return RGB{}, false
}

func floats(parts []string) ([3]float64, bool) {
	var res [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return res, false
		}
		res[i] = f
	}
	return res, true
}

// LooksLikeColor is the clipboard tagging heuristic: exactly "#" followed by 3 or 6 hex digits.
func LooksLikeColor(text string) bool {
	if !strings.HasPrefix(text, "#") || (len(text) != 4 && len(text) != 7) {
		return false
	}
	return isHexDigits(text[1:])
}
