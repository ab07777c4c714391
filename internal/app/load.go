package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/tpl"
)

// loadDocument reads and parses a palette file. Per-record parse problems
// are surfaced once as warnings; only a structurally broken file fails.
func loadDocument(path string) (*palette.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}
	doc, warnings, err := tpl.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, w := range warnings {
		warn("%s: %s", path, w)
	}
	return doc, nil
}

// saveDocument serializes the document back to path atomically.
func saveDocument(path string, doc *palette.Document) error {
	if err := tpl.Save(path, doc); err != nil {
		return fmt.Errorf("writing palette: %w", err)
	}
	return nil
}

// colorIndex parses and bounds-checks a color index argument.
func colorIndex(doc *palette.Document, arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index %q is not a number", arg)
	}
	if idx < 0 || idx >= len(doc.Colors) {
		return 0, fmt.Errorf("index %d out of range (0..%d)", idx, len(doc.Colors)-1)
	}
	return idx, nil
}
