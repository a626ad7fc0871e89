package pixels

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/export"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// stripes makes a w x h image where the first n pixels (row major) are a and the rest b.
func stripes(w, h, n int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	i := 0
	for y := range h {
		for x := range w {
			if i < n {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
			i++
		}
	}
	return img
}

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestDecodeFormats(t *testing.T) {
	src := stripes(10, 10, 70, red, blue)
	tests := []struct {
		format string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := test.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Format != test.format || img.Width != 10 || img.Height != 10 {
				t.Errorf("got %s %dx%d", img.Format, img.Width, img.Height)
			}
			dom := Dominant(img.RGBA, 5)
			if len(dom) != 2 {
				t.Fatalf("expected 2 dominant colors, got %v", dom)
			}
			if dom[0].Color.Hex() != "#ff0000" || dom[0].Count != 70 || dom[0].Share != 0.7 {
				t.Errorf("first dominant = %+v", dom[0])
			}
			if dom[1].Color.Hex() != "#0000ff" || dom[1].Count != 30 {
				t.Errorf("second dominant = %+v", dom[1])
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image")); err == nil {
		t.Errorf("expected error for garbage input")
	}
	if _, err := ReadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestDominantMergesAndLimits(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range 100 {
		x, y := i%10, i/10
		switch {
		case i < 40:
			img.SetRGBA(x, y, red)
		case i < 75:
			img.SetRGBA(x, y, color.RGBA{R: 235, G: 12, B: 12, A: 255}) // near red, other bucket
		case i < 95:
			img.SetRGBA(x, y, blue)
		default:
			img.SetRGBA(x, y, color.RGBA{}) // transparent
		}
	}
	dom := Dominant(img, 5)
	if len(dom) != 2 {
		t.Fatalf("expected merged reds + blue, got %v", dom)
	}
	if dom[0].Count != 75 || dom[1].Count != 20 {
		t.Errorf("counts = %d, %d", dom[0].Count, dom[1].Count)
	}
	if got := Dominant(img, 1); len(got) != 1 || got[0].Count != 75 {
		t.Errorf("limit to 1 = %v", got)
	}
	if got := Dominant(img, 0); got != nil {
		t.Errorf("n=0 = %v", got)
	}
}

func TestTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if got := Dominant(img, 3); got != nil {
		t.Errorf("fully transparent image should have no dominant colors, got %v", got)
	}
	if _, ok := Average(img); ok {
		t.Errorf("fully transparent image should have no average")
	}
	avg, ok := Average(stripes(2, 1, 1, red, blue))
	if !ok || avg != (colorspace.RGB{R: 127, B: 127}) {
		t.Errorf("Average = %v %t", avg, ok)
	}
}

func TestFit(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	got := Fit(img, 20, 20)
	if got.Bounds().Dx() != 20 || got.Bounds().Dy() != 10 {
		t.Errorf("Fit = %v", got.Bounds())
	}
	small := image.NewRGBA(image.Rect(0, 0, 5, 5))
	if Fit(small, 20, 20) != small {
		t.Errorf("small images should not be scaled up")
	}
}

func TestRender(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for x := range 2 {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
		img.SetRGBA(x, 2, blue)
	}
	var buf bytes.Buffer
	if err := Render(&buf, img, export.ColorOutput{TrueColor: true}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	expected := "\033[48;2;255;0;0m\033[38;2;0;0;255m▄▄\033[0m\n" +
		"\033[48;2;0;0;255m  \033[0m\n"
	if got := buf.String(); got != expected {
		t.Errorf("Render() = %q, expected %q", got, expected)
	}
}
