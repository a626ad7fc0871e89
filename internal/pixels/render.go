package pixels

import (
	"bufio"
	"image"
	"io"

	"fortio.org/pigment/colorspace"
	"fortio.org/pigment/export"
)

// Render draws img with lower half block characters: each terminal cell shows
// two vertically stacked pixels (background on top, foreground below).
// Escapes are only emitted when a color changes.
func Render(w io.Writer, img *image.RGBA, out export.ColorOutput) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var prevFg, prevBg colorspace.RGB
		hasFg, hasBg := false, false
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := colorspace.FromColor(img.RGBAAt(x, y))
			bottom := top
			if y+1 < bounds.Max.Y {
				bottom = colorspace.FromColor(img.RGBAAt(x, y+1))
			}
			if !hasBg || top != prevBg {
				_, _ = bw.WriteString(out.Background(top))
				prevBg, hasBg = top, true
			}
			if top == bottom {
				_ = bw.WriteByte(' ')
				continue
			}
			if !hasFg || bottom != prevFg {
				_, _ = bw.WriteString(out.Foreground(bottom))
				prevFg, hasFg = bottom, true
			}
			_, _ = bw.WriteString("▄")
		}
		_, _ = bw.WriteString(export.Reset + "\n")
	}
	return bw.Flush()
}
