package cvd_test

import (
	"testing"

	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/cvd"
)

func TestProtanopiaRed(t *testing.T) {
	red := colorspace.RGB{R: 255}
	got := cvd.Simulate(red, cvd.Protanopia)
	if got.R >= red.R {
		t.Errorf("protanopia red R channel not reduced: %v", got)
	}
	// muted yellow-brown: red and green close together, no blue.
	expected := colorspace.RGB{R: 145, G: 142, B: 0}
	if got != expected {
		t.Errorf("Simulate(red, protanopia) = %v, expected %v", got, expected)
	}
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		in       string
		d        cvd.Deficiency
		expected string
	}{
		{"#ffffff", cvd.Protanopia, "#ffffff"},
		{"#ffffff", cvd.Tritanopia, "#ffffff"},
		{"#000000", cvd.Deuteranopia, "#000000"},
		{"#00ff00", cvd.Deuteranopia, "#604d4d"},
		{"#0000ff", cvd.Tritanopia, "#009186"},
		{"#ff0000", cvd.Achromatopsia, "#4c4c4c"},
		{"#123456", cvd.None, "#123456"},
		{"#123456", cvd.Deficiency(42), "#123456"},
	}
	for _, test := range tests {
		t.Run(test.in+"/"+test.d.String(), func(t *testing.T) {
			got := cvd.Simulate(colorspace.MustHex(test.in), test.d)
			if got.Hex() != test.expected {
				t.Errorf("Simulate(%s, %s) = %s, expected %s", test.in, test.d, got.Hex(), test.expected)
			}
		})
	}
}

func TestAchromatopsiaIsGray(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				got := cvd.Simulate(colorspace.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, cvd.Achromatopsia)
				if got.R != got.G || got.G != got.B {
					t.Fatalf("achromatopsia of %d,%d,%d not gray: %v", r, g, b, got)
				}
			}
		}
	}
}

func TestParseDeficiency(t *testing.T) {
	for _, d := range cvd.All {
		got, err := cvd.ParseDeficiency(" " + d.String() + " ")
		if err != nil || got != d {
			t.Errorf("ParseDeficiency(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := cvd.ParseDeficiency("colorful"); err == nil {
		t.Errorf("expected error")
	}
	if len(cvd.SimulateAll(colorspace.White)) != len(cvd.All) {
		t.Errorf("SimulateAll should cover all deficiencies")
	}
}
