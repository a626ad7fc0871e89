package cli

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"fortio.org/pigment/palette"
	"gopkg.in/yaml.v3"
)

// writeSaved writes the normalized palette as a yaml document.
func writeSaved(w io.Writer, s palette.Saved) error {
	n, err := s.Normalized()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

// loadPaletteFile reads either a saved palette document (as written by the
// repl save command) or a list of name/hex entries.
func loadPaletteFile(path string) ([]palette.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s palette.Saved
	if yaml.Unmarshal(data, &s) != nil || len(s.Colors) == 0 {
		return palette.LoadFile(path)
	}
	n, err := s.Normalized()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.LogVf("Saved palette %q (%s): %d colors", n.Name, path, len(n.Colors))
	return n.Entries(), nil
}
