package palette

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"fortio.org/pigment/colorspace"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads a reference palette: a YAML list of name/hex pairs, e.g.
//
//	- name: brand-primary
//	  hex: "#4f46e5"
//
// Hex values are normalized to lowercase #rrggbb. Any invalid entry fails the whole load.
func LoadYAML(r io.Reader) ([]Entry, error) {
	var entries []Entry
	err := yaml.NewDecoder(r).Decode(&entries)
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty palette")
	}
	if err != nil {
		return nil, fmt.Errorf("invalid palette yaml: %w", err)
	}
	for i := range entries {
		e := &entries[i]
		if e.Name == "" {
			return nil, fmt.Errorf("palette entry %d (%q) has no name", i+1, e.Hex)
		}
		hex, ok := colorspace.NormalizeHex(e.Hex)
		if !ok {
			return nil, fmt.Errorf("palette entry %q: invalid hex color %q", e.Name, e.Hex)
		}
		e.Hex = hex
	}
	log.Debugf("Loaded %d palette entries", len(entries))
	return entries, nil
}

// LoadFile is [LoadYAML] from a file.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.LogVf("Palette %s: %d colors", path, len(entries))
	return entries, nil
}
