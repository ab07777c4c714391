package view

import (
	"sort"

	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/blackwell-systems/palctl/internal/palette"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the comparison used to order a view.
type SortKey int

const (
	// SortIndex orders by the file's original position, giving a stable
	// "unsorted" view even after additions and removals.
	SortIndex SortKey = iota
	SortName
	SortHue
)

// ParseSortKey maps a user-facing key name to a SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	switch s {
	case "index", "file", "":
		return SortIndex, true
	case "name":
		return SortName, true
	case "hue":
		return SortHue, true
	}
	return SortIndex, false
}

func (k SortKey) String() string {
	switch k {
	case SortName:
		return "name"
	case SortHue:
		return "hue"
	default:
		return "index"
	}
}

// Sort orders a view by one key with a direction.
type Sort struct {
	Key        SortKey
	Descending bool
}

// Apply returns a newly ordered copy; the input slice is not touched.
// Name ordering is locale-aware and numeric-aware, so "color_10" sorts
// after "color_2".
func (s Sort) Apply(colors []*palette.Color) []*palette.Color {
	out := make([]*palette.Color, len(colors))
	copy(out, colors)

	var less func(a, b *palette.Color) bool
	switch s.Key {
	case SortName:
		coll := collate.New(language.Und, collate.Numeric, collate.Loose)
		less = func(a, b *palette.Color) bool {
			return coll.CompareString(a.ExportName(), b.ExportName()) < 0
		}
	case SortHue:
		less = func(a, b *palette.Color) bool {
			ha, _, _ := colormath.RGBToHSL(a.R, a.G, a.B)
			hb, _, _ := colormath.RGBToHSL(b.R, b.G, b.B)
			return ha < hb
		}
	default:
		less = func(a, b *palette.Color) bool {
			return a.OriginalIndex < b.OriginalIndex
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if s.Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
