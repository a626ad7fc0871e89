package palette

import (
	"slices"

	"fortio.org/pigment/colorspace"
)

// DefaultHistorySize is the number of recent colors kept when none is specified.
const DefaultHistorySize = 10

// History is a most-recent-first list of distinct colors. It is a value:
// [History.Push] returns a new History and never changes the receiver,
// so each caller owns its own.
type History struct {
	colors []string
	size   int
}

// NewHistory creates an empty history holding at most size colors
// ([DefaultHistorySize] when size <= 0).
func NewHistory(size int) History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return History{size: size}
}

// Push records c as the most recent color. A color already present moves to the
// front, the oldest one is dropped when full.
func (h History) Push(c colorspace.RGB) History {
	size := h.size
	if size <= 0 {
		size = DefaultHistorySize
	}
	hex := c.Hex()
	res := make([]string, 0, min(len(h.colors)+1, size))
	res = append(res, hex)
	for _, old := range h.colors {
		if len(res) == size {
			break
		}
		if old != hex {
			res = append(res, old)
		}
	}
	return History{colors: res, size: size}
}

// Colors returns a copy of the recent colors, most recent first.
func (h History) Colors() []string {
	return slices.Clone(h.colors)
}

// Len is the number of colors in the history.
func (h History) Len() int {
	return len(h.colors)
}

// Last is the most recent color, false when empty.
func (h History) Last() (colorspace.RGB, bool) {
	if len(h.colors) == 0 {
		return colorspace.RGB{}, false
	}
	return colorspace.ParseHex(h.colors[0])
}
