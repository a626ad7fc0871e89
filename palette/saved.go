package palette

import (
	"fmt"
	"slices"
	"time"

	"fortio.org/pigment/colorspace"
)

// Saved is a user palette as persisted by the host application.
// This package only validates and normalizes it, storage is the caller's business.
type Saved struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Colors    []string  `json:"colors" yaml:"colors"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Normalized returns a copy with every color in lowercase #rrggbb form,
// or an error naming the first invalid color.
func (s Saved) Normalized() (Saved, error) {
	res := s
	res.Colors = make([]string, len(s.Colors))
	for i, c := range s.Colors {
		hex, ok := colorspace.NormalizeHex(c)
		if !ok {
			return s, fmt.Errorf("palette %q color %d: invalid hex %q", s.Name, i+1, c)
		}
		res.Colors[i] = hex
	}
	res.Tags = slices.Clone(s.Tags)
	return res, nil
}

// Entries turns the saved palette into a lookup table named "<palette>-<index>".
// Invalid colors are skipped.
func (s Saved) Entries() []Entry {
	res := make([]Entry, 0, len(s.Colors))
	for i, c := range s.Colors {
		if hex, ok := colorspace.NormalizeHex(c); ok {
			res = append(res, Entry{Name: fmt.Sprintf("%s-%d", s.Name, i+1), Hex: hex})
		}
	}
	return res
}

