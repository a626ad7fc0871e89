package pigment_test

import (
	"testing"

	"fortio.org/pigment"
	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/cvd"
	"fortio.org/pigment/perceptual"
)

func TestDescribe(t *testing.T) {
	d, ok := pigment.DescribeString("  #3B82F6 ")
	if !ok {
		t.Fatalf("DescribeString failed")
	}
	if d.Hex != "#3b82f6" || d.RGB != (colorspace.RGB{R: 59, G: 130, B: 246}) {
		t.Errorf("hex/rgb = %s %v", d.Hex, d.RGB)
	}
	if d.HSL != (colorspace.HSL{H: 217, S: 91, L: 60}) {
		t.Errorf("HSL = %v", d.HSL)
	}
	if d.Tailwind != "blue-500" {
		t.Errorf("Tailwind = %s", d.Tailwind)
	}
	if d.Temperature.Class != perceptual.Cool {
		t.Errorf("Temperature = %v", d.Temperature)
	}
	if d.OnWhite.Ratio != perceptual.WCAGContrast(d.RGB, colorspace.White) || d.OnWhite.APCA <= 0 {
		t.Errorf("OnWhite = %+v", d.OnWhite)
	}
	if d.OnBlack.APCA >= 0 {
		t.Errorf("OnBlack APCA should be negative (light text on dark), got %v", d.OnBlack.APCA)
	}
	if len(d.Deficiency) != len(cvd.All) || len(d.CSS) == 0 {
		t.Errorf("missing simulations or css: %d %d", len(d.Deficiency), len(d.CSS))
	}
}

func TestDescribeBlack(t *testing.T) {
	d := pigment.Describe(colorspace.Black)
	if d.Name != "black" || d.RAL != "RAL 9005 Jet black" {
		t.Errorf("names = %q %q", d.Name, d.RAL)
	}
	if d.OnWhite.Level != perceptual.LevelAAA || d.OnBlack.Ratio != 1 {
		t.Errorf("contrast = %+v %+v", d.OnWhite, d.OnBlack)
	}
	if d.BestText != colorspace.White {
		t.Errorf("BestText = %v", d.BestText)
	}
	if d.CMYK != (colorspace.CMYK{K: 100}) {
		t.Errorf("CMYK = %v", d.CMYK)
	}
}

func TestDescribeStringInvalid(t *testing.T) {
	for _, s := range []string{"", "#12", "rgb(1,2)", "blue", "#gggggg"} {
		if _, ok := pigment.DescribeString(s); ok {
			t.Errorf("DescribeString(%q) should fail", s)
		}
	}
}
