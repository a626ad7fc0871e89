package export

import (
	"fmt"
	"strings"

	"fortio.org/pigment/colorspace"
	"fortio.org/safecast"
)

// Reset restores the terminal default colors.
const Reset = "\033[0m"

// Foreground is the 24 bit (truecolor) foreground escape sequence for c.
func Foreground(c colorspace.RGB) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Background is the 24 bit (truecolor) background escape sequence for c.
func Background(c colorspace.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// cubeLevel maps a channel to the closest of the xterm cube levels 0,95,135,175,215,255.
func cubeLevel(v uint8) uint8 {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (v - 35) / 40
	}
}

// ANSI256Index is the closest xterm 256 color palette index: the 24 step gray
// ramp for near grays, the 6x6x6 color cube otherwise.
func ANSI256Index(c colorspace.RGB) uint8 {
	shift := 4
	if (c.R>>shift) == (c.G>>shift) && (c.G>>shift) == (c.B>>shift) {
		lum := (uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3
		if lum < 9 {
			return 16 // cube black
		}
		if lum > 247 {
			return 231 // cube white
		}
		return safecast.MustConvert[uint8](min(255, 232+((lum-9)*(256-232))/(247-9)))
	}
	return 16 + 36*cubeLevel(c.R) + 6*cubeLevel(c.G) + cubeLevel(c.B)
}

// ColorOutput picks truecolor or 256 color escapes depending on the terminal.
type ColorOutput struct {
	TrueColor bool
}

// Foreground escape for c.
func (co ColorOutput) Foreground(c colorspace.RGB) string {
	if co.TrueColor {
		return Foreground(c)
	}
	return fmt.Sprintf("\033[38;5;%dm", ANSI256Index(c))
}

// Background escape for c.
func (co ColorOutput) Background(c colorspace.RGB) string {
	if co.TrueColor {
		return Background(c)
	}
	return fmt.Sprintf("\033[48;5;%dm", ANSI256Index(c))
}

// Swatch is width colored cells followed by a reset.
func (co ColorOutput) Swatch(c colorspace.RGB, width int) string {
	if width <= 0 {
		return ""
	}
	return co.Background(c) + strings.Repeat(" ", width) + Reset
}

// Sample renders text in fg over bg.
func (co ColorOutput) Sample(text string, fg, bg colorspace.RGB) string {
	return co.Background(bg) + co.Foreground(fg) + text + Reset
}
