package palette

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
)

// Defaults seeded into new palettes. Version and shortcuts match what the
// host application writes for a fresh studio palette; FrameCount is the
// timeline length used when a file carries no animation.
const (
	DefaultVersion    = "71.0"
	DefaultShortcuts  = "1;2;3;4;5;6;7;8;9;0"
	DefaultFrameCount = 100
	DefaultTagID      = "3"
)

// Document is one editing session's palette. It is owned by a single
// event-handling context; there is no locking. Callers re-derive filtered
// and sorted views after every mutation.
type Document struct {
	Meta   Metadata
	Colors []*Color

	// FrameCount is the timeline length the UI should offer: max
	// animation frame + 10 at parse time, else DefaultFrameCount.
	FrameCount int

	// Prefix scopes the full ids of studio-palette colors. Empty for
	// level palettes, whose ids are bare positions.
	Prefix string

	subs    map[int]func()
	nextSub int
}

// New creates an empty studio palette seeded with the two conventional
// entries: index 0 is the background color (white, transparent), index 1
// is the ink color (black, opaque). The id prefix is freshly generated.
func New(name string) *Document {
	prefix := newPrefix()
	d := &Document{
		Meta: Metadata{
			Name:          name,
			Version:       DefaultVersion,
			Shortcuts:     DefaultShortcuts,
			StudioPalette: true,
		},
		FrameCount: DefaultFrameCount,
		Prefix:     prefix,
	}
	d.Colors = []*Color{
		{ID: prefix + "-0", Name: "bg", TagID: DefaultTagID, R: 255, G: 255, B: 255, A: 0, OriginalIndex: 0},
		{ID: prefix + "-1", Name: "ink", TagID: DefaultTagID, A: 255, OriginalIndex: 1},
	}
	return d
}

// newPrefix returns a short random id prefix, unique enough that styles
// copied between palettes keep distinct full ids.
func newPrefix() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// Protected reports whether the index is one of the two conventional
// entries (background, ink) that callers must not delete or retag. The
// restriction itself is caller policy; the model only answers the query.
func (d *Document) Protected(idx int) bool {
	return idx < 2
}

// AddColor appends a new entry and returns its index. The short id is the
// highest existing numeric short id plus one (1 when none are numeric),
// scoped by the document prefix. The new color copies rgba when given,
// typically the selected entry's frame-resolved value, and defaults to
// mid-gray opaque otherwise.
func (d *Document) AddColor(rgba *RGBA) int {
	next := 1
	found := false
	for _, c := range d.Colors {
		if n, err := strconv.Atoi(c.ShortID()); err == nil {
			if !found || n+1 > next {
				next = n + 1
			}
			found = true
		}
	}

	id := strconv.Itoa(next)
	if d.Prefix != "" {
		id = d.Prefix + "-" + id
	}

	c := &Color{
		ID:            id,
		Name:          "color_" + strconv.Itoa(next),
		TagID:         DefaultTagID,
		R:             128,
		G:             128,
		B:             128,
		A:             255,
		OriginalIndex: len(d.Colors),
	}
	if rgba != nil {
		c.R, c.G, c.B, c.A = rgba.R, rgba.G, rgba.B, rgba.A
	}

	d.Colors = append(d.Colors, c)
	d.Notify()
	return len(d.Colors) - 1
}

// RemoveColor deletes the entry at idx and shifts the rest down. Callers
// must not pass a protected index (idx < 2); the model does not
// re-validate that policy. Returns false for an out-of-range index.
func (d *Document) RemoveColor(idx int) bool {
	if idx < 0 || idx >= len(d.Colors) {
		return false
	}
	d.Colors = append(d.Colors[:idx], d.Colors[idx+1:]...)
	d.Notify()
	return true
}

// SetRGBA replaces the base color of the entry at idx.
func (d *Document) SetRGBA(idx int, rgba RGBA) bool {
	if idx < 0 || idx >= len(d.Colors) {
		return false
	}
	c := d.Colors[idx]
	c.R, c.G, c.B, c.A = rgba.R, rgba.G, rgba.B, rgba.A
	d.Notify()
	return true
}

// SetRole retags the entry at idx.
func (d *Document) SetRole(idx int, role Role) bool {
	if idx < 0 || idx >= len(d.Colors) {
		return false
	}
	d.Colors[idx].Role = role
	d.Notify()
	return true
}

// SetTrace sets the autopaint/ink-trace marker of the entry at idx.
func (d *Document) SetTrace(idx int, trace bool) bool {
	if idx < 0 || idx >= len(d.Colors) {
		return false
	}
	d.Colors[idx].Trace = trace
	d.Notify()
	return true
}

// Rename changes the base name of the entry at idx. Empty or
// whitespace-only names are rejected as a no-op.
func (d *Document) Rename(idx int, name string) bool {
	if idx < 0 || idx >= len(d.Colors) {
		return false
	}
	if strings.TrimSpace(name) == "" {
		return false
	}
	d.Colors[idx].Name = name
	d.Notify()
	return true
}
