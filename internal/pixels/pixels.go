// Package pixels samples colors out of images: decoding, downscaling,
// dominant color extraction and half block terminal previews.
package pixels

import (
	"bytes"
	"cmp"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg" // Import JPEG decoder
	_ "image/png"  // Import PNG decoder
	"io"
	"os"
	"slices"

	"fortio.org/log"
	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/palette"
	"fortio.org/safecast"
	_ "golang.org/x/image/bmp" // Import BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Import tiff decoder
	_ "golang.org/x/image/webp" // Import WebP decoder
)

// Image is a decoded image, only the first frame of animated gifs is kept.
type Image struct {
	Format string
	Width  int
	Height int
	RGBA   *image.RGBA
}

// ReadImage decodes the image file at path.
func ReadImage(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode detects the format (png, jpeg, gif, webp, tiff, bmp) and decodes inp.
func Decode(inp io.Reader) (*Image, error) {
	all, err := io.ReadAll(inp)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return nil, err
	}
	log.Debugf("Image format: %s, %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())
	if format == "gif" {
		// image.Decode already returns the first frame, DecodeAll only to report animations.
		if g, gerr := gif.DecodeAll(bytes.NewReader(all)); gerr == nil && len(g.Image) > 1 {
			log.LogVf("Animated gif with %d frames, using the first one", len(g.Image))
		}
	}
	return &Image{
		Format: format,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		RGBA:   convertToRGBA(img),
	}, nil
}

func convertToRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

// Fit scales img down (never up) so it fits in maxW x maxH, preserving the aspect ratio.
func Fit(img *image.RGBA, maxW, maxH int) *image.RGBA {
	origBounds := img.Bounds()
	origW, origH := origBounds.Dx(), origBounds.Dy()
	if origW == 0 || origH == 0 || (origW <= maxW && origH <= maxH) || maxW <= 0 || maxH <= 0 {
		return img
	}
	scale := min(float64(maxW)/float64(origW), float64(maxH)/float64(origH))
	newW := max(1, int(float64(origW)*scale))
	newH := max(1, int(float64(origH)*scale))
	resized := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, origBounds, draw.Src, nil)
	return resized
}

// Swatch is one dominant color with the fraction of (opaque) pixels it covers.
type Swatch struct {
	Color colorspace.RGB
	Count int
	Share float64
}

// Below this alpha pixels are ignored.
const minAlpha = 128

// Buckets closer than this (RGB distance) are merged into the more common one.
const mergeDistance = 32.

type bucket struct {
	r, g, b, n int
}

func (b bucket) color() colorspace.RGB {
	return colorspace.RGB{
		R: safecast.MustConvert[uint8](b.r / b.n),
		G: safecast.MustConvert[uint8](b.g / b.n),
		B: safecast.MustConvert[uint8](b.b / b.n),
	}
}

// Dominant returns up to n dominant colors of img, most common first: pixels are
// bucketed on 4 bits per channel, each bucket averaged, and near buckets merged.
func Dominant(img *image.RGBA, n int) []Swatch {
	if n <= 0 {
		return nil
	}
	buckets := make(map[int]*bucket)
	total := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if p.A < minAlpha {
				continue
			}
			// un-premultiply for semi transparent pixels.
			r, g, b := int(p.R), int(p.G), int(p.B)
			if p.A < 255 {
				r, g, b = r*255/int(p.A), g*255/int(p.A), b*255/int(p.A)
			}
			key := (r>>4)<<8 | (g>>4)<<4 | b>>4
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.r += r
			bk.g += g
			bk.b += b
			bk.n++
			total++
		}
	}
	if total == 0 {
		return nil
	}
	sorted := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		sorted = append(sorted, b)
	}
	slices.SortFunc(sorted, func(a, b *bucket) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}
		return cmp.Compare(a.color().Hex(), b.color().Hex())
	})
	var res []Swatch
	for _, b := range sorted {
		c := b.color()
		merged := false
		for i := range res {
			if palette.Distance(res[i].Color, c) < mergeDistance {
				res[i].Count += b.n
				merged = true
				break
			}
		}
		if !merged {
			res = append(res, Swatch{Color: c, Count: b.n})
		}
	}
	// merges can reorder counts.
	slices.SortStableFunc(res, func(a, b Swatch) int { return cmp.Compare(b.Count, a.Count) })
	if len(res) > n {
		res = res[:n]
	}
	for i := range res {
		res[i].Share = float64(res[i].Count) / float64(total)
	}
	log.Debugf("Dominant: %d buckets, %d opaque pixels, %d colors", len(buckets), total, len(res))
	return res
}

// Average is the mean color of the opaque pixels, false if there are none.
func Average(img *image.RGBA) (colorspace.RGB, bool) {
	var sum bucket
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if p.A < minAlpha {
				continue
			}
			sum.r += int(p.R) * 255 / int(p.A)
			sum.g += int(p.G) * 255 / int(p.A)
			sum.b += int(p.B) * 255 / int(p.A)
			sum.n++
		}
	}
	if sum.n == 0 {
		return colorspace.RGB{}, false
	}
	return sum.color(), true
}
