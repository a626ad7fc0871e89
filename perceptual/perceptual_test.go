package perceptual_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/perceptual"
)

func randomColor(rnd *rand.Rand) colorspace.RGB {
	return colorspace.RGB{R: uint8(rnd.IntN(256)), G: uint8(rnd.IntN(256)), B: uint8(rnd.IntN(256))}
}

func TestWCAGMaximum(t *testing.T) {
	ratio := perceptual.WCAGContrast(colorspace.MustHex("#000000"), colorspace.MustHex("#ffffff"))
	if math.Abs(ratio-21) > 1e-9 {
		t.Errorf("black/white ratio = %v, expected 21", ratio)
	}
	if l := perceptual.WCAGLevel(ratio); l != perceptual.LevelAAA {
		t.Errorf("level = %s", l)
	}
}

func TestContrastProperties(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 7))
	for range 10000 {
		a, b := randomColor(rnd), randomColor(rnd)
		ab, ba := perceptual.WCAGContrast(a, b), perceptual.WCAGContrast(b, a)
		if ab != ba {
			t.Fatalf("asymmetric contrast %v/%v: %v != %v", a, b, ab, ba)
		}
		if ab < 1 || ab > 21+1e-9 {
			t.Fatalf("contrast out of range %v/%v: %v", a, b, ab)
		}
		if self := perceptual.WCAGContrast(a, a); self != 1 {
			t.Fatalf("self contrast of %v = %v", a, self)
		}
		if self := perceptual.APCA(a, a); self != 0 {
			t.Fatalf("self APCA of %v = %v", a, self)
		}
	}
}

func TestAPCA(t *testing.T) {
	tests := []struct {
		name     string
		text, bg string
		expected float64
	}{
		{"black on white", "#000000", "#ffffff", 106.04},
		{"white on black", "#ffffff", "#000000", -107.88},
		{"near identical", "#777777", "#787878", 0},
		{"low contrast clipped", "#aaaaaa", "#b4b4b4", 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lc := perceptual.APCA(colorspace.MustHex(test.text), colorspace.MustHex(test.bg))
			if math.Abs(lc-test.expected) > 0.05 {
				t.Errorf("APCA(%s, %s) = %.3f, expected %.2f", test.text, test.bg, lc, test.expected)
			}
		})
	}
	// Polarity: dark text on light bg is positive, light on dark negative.
	if lc := perceptual.APCA(colorspace.MustHex("#222222"), colorspace.MustHex("#eeeeee")); lc <= 0 {
		t.Errorf("dark on light should be positive, got %v", lc)
	}
	if lc := perceptual.APCA(colorspace.MustHex("#eeeeee"), colorspace.MustHex("#222222")); lc >= 0 {
		t.Errorf("light on dark should be negative, got %v", lc)
	}
	noClip := perceptual.APCA98G
	noClip.LowClip = 0
	if lc := noClip.Contrast(colorspace.MustHex("#aaaaaa"), colorspace.MustHex("#b4b4b4")); lc <= 0 {
		t.Errorf("unclipped low contrast should be positive, got %v", lc)
	}
	fg, bg := colorspace.MustHex("#3b82f6"), colorspace.MustHex("#ffffff")
	if got, want := perceptual.APCA98G.Contrast(fg, bg), perceptual.APCA(fg, bg); got != want {
		t.Errorf("APCA98G.Contrast = %v, APCA = %v", got, want)
	}
}

func TestFontSizes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (int, bool)
		in   float64
		px   int
		ok   bool
	}{
		{"apca 95", perceptual.MinFontSizeAPCA, 95, 12, true},
		{"apca -80", perceptual.MinFontSizeAPCA, -80, 14, true},
		{"apca 60", perceptual.MinFontSizeAPCA, 60, 16, true},
		{"apca 50", perceptual.MinFontSizeAPCA, 50, 24, true},
		{"apca 30", perceptual.MinFontSizeAPCA, 30, 32, true},
		{"apca 29.9", perceptual.MinFontSizeAPCA, 29.9, 0, false},
		{"wcag 21", perceptual.MinFontSizeWCAG, 21, 12, true},
		{"wcag 5", perceptual.MinFontSizeWCAG, 5, 16, true},
		{"wcag 3.5", perceptual.MinFontSizeWCAG, 3.5, 24, true},
		{"wcag 2", perceptual.MinFontSizeWCAG, 2, 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			px, ok := test.fn(test.in)
			if px != test.px || ok != test.ok {
				t.Errorf("got %d %t, expected %d %t", px, ok, test.px, test.ok)
			}
		})
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected perceptual.Level
	}{
		{21, perceptual.LevelAAA},
		{5, perceptual.LevelAA},
		{3.2, perceptual.LevelAALarge},
		{2, perceptual.LevelFail},
	}
	for _, test := range tests {
		if got := perceptual.WCAGLevel(test.ratio); got != test.expected {
			t.Errorf("WCAGLevel(%v) = %s, expected %s", test.ratio, got, test.expected)
		}
	}
}

func TestSuggest(t *testing.T) {
	white := colorspace.White
	gray := colorspace.MustHex("#777777")
	blue := colorspace.MustHex("#3b82f6")
	tests := []struct {
		name     string
		bg, fg   colorspace.RGB
		prefer   perceptual.Direction
		ok       bool
		fallback colorspace.RGB // checked when !ok
	}{
		{"gray darker", white, gray, perceptual.Darker, true, colorspace.RGB{}},
		{"gray any", white, gray, perceptual.Any, true, colorspace.RGB{}},
		{"gray lighter impossible", white, gray, perceptual.Lighter, false, colorspace.Black},
		{"blue on blue", blue, blue, perceptual.Any, true, colorspace.RGB{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := perceptual.Suggest(test.bg, test.fg, perceptual.SuggestOptions{Prefer: test.prefer})
			if ok != test.ok {
				t.Fatalf("Suggest ok = %t, expected %t (got %v)", ok, test.ok, got)
			}
			if !ok {
				if got != test.fallback {
					t.Errorf("fallback = %v, expected %v", got, test.fallback)
				}
				return
			}
			if r := perceptual.WCAGContrast(got, test.bg); r < perceptual.DefaultTarget {
				t.Errorf("suggested %v only has ratio %.2f", got, r)
			}
			in, out := test.fg.HSL(), got.HSL()
			if out.S > 0 && math.Abs(colorspace.HueDelta(in.H, out.H)) > 2 {
				t.Errorf("hue drifted: %v -> %v", in, out)
			}
			switch test.prefer {
			case perceptual.Darker:
				if out.L >= in.L {
					t.Errorf("expected darker: %v -> %v", in, out)
				}
			case perceptual.Lighter:
				if out.L <= in.L {
					t.Errorf("expected lighter: %v -> %v", in, out)
				}
			case perceptual.Any:
			}
		})
	}
	black := colorspace.Black
	if got, ok := perceptual.Suggest(white, black, perceptual.SuggestOptions{}); !ok || got != black {
		t.Errorf("conforming color should be returned as is, got %v %t", got, ok)
	}
}

func TestParseDirection(t *testing.T) {
	for in, expected := range map[string]perceptual.Direction{
		"":        perceptual.Any,
		"ANY":     perceptual.Any,
		"lighter": perceptual.Lighter,
		"Darker":  perceptual.Darker,
	} {
		got, err := perceptual.ParseDirection(in)
		if err != nil || got != expected {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := perceptual.ParseDirection("sideways"); err == nil {
		t.Errorf("expected error for invalid direction")
	}
}

func TestColorTemperature(t *testing.T) {
	tests := []struct {
		hex    string
		class  perceptual.Temperature
		kelvin float64
	}{
		{"#ff0000", perceptual.Warm, 2000},
		{"#ffff00", perceptual.Warm, 3500},
		{"#ff00ff", perceptual.Warm, 3500},
		{"#00ffff", perceptual.Cool, 7000},
		{"#0000ff", perceptual.Cool, 9000},
		{"#00ff00", perceptual.Neutral, 5500},
		{"#808080", perceptual.Neutral, 5500},
		{"#7a7f80", perceptual.Neutral, 5500}, // low saturation bluish gray
	}
	for _, test := range tests {
		t.Run(test.hex, func(t *testing.T) {
			got := perceptual.ColorTemperature(colorspace.MustHex(test.hex))
			if got.Class != test.class || got.Kelvin != test.kelvin {
				t.Errorf("ColorTemperature(%s) = %s %v, expected %s %v", test.hex, got.Class, got.Kelvin, test.class, test.kelvin)
			}
		})
	}
}

func TestBestTextColor(t *testing.T) {
	if c := perceptual.BestTextColor(colorspace.White); c != colorspace.Black {
		t.Errorf("on white: %v", c)
	}
	if c := perceptual.BestTextColor(colorspace.Black); c != colorspace.White {
		t.Errorf("on black: %v", c)
	}
}
