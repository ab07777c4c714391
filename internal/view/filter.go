// Package view derives filtered and sorted read-only views of a
// document's color list. Views are recomputed from scratch after every
// mutation; nothing here caches.
package view

import (
	"math"
	"regexp"
	"strings"

	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/blackwell-systems/palctl/internal/palette"
)

// achromaticCutoff excludes near-gray colors from hue filtering: below
// this saturation a hue is not meaningful.
const achromaticCutoff = 0.1

// Filter applies all enabled criteria and keeps matching colors.
type Filter struct {
	// Name is a wildcard pattern ('*' matches any run, everything else
	// is literal) tested against the full export name (base + role
	// suffix). Empty means no name filtering.
	Name          string
	CaseSensitive bool
	// Exact anchors the pattern to the whole export name.
	Exact bool

	// HueSet enables hue filtering: keep colors whose circular hue
	// distance to Hue (degrees) is at most HueThreshold.
	HueSet       bool
	Hue          float64
	HueThreshold float64

	AnimatedOnly bool
}

// Apply returns the colors passing every enabled criterion, in input
// order.
func (f Filter) Apply(colors []*palette.Color) []*palette.Color {
	var re *regexp.Regexp
	if f.Name != "" {
		re = compilePattern(f.Name, f.CaseSensitive, f.Exact)
	}

	out := make([]*palette.Color, 0, len(colors))
	for _, c := range colors {
		if re != nil && !re.MatchString(c.ExportName()) {
			continue
		}
		if f.HueSet && !f.hueMatches(c) {
			continue
		}
		if f.AnimatedOnly && !c.Animated() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f Filter) hueMatches(c *palette.Color) bool {
	h, s, _ := colormath.RGBToHSL(c.R, c.G, c.B)
	if s < achromaticCutoff {
		return false
	}
	d := math.Abs(h - f.Hue)
	return math.Min(d, 360-d) <= f.HueThreshold
}

// compilePattern translates a user wildcard pattern to a regexp: '*'
// becomes '.*', every other rune is matched literally.
func compilePattern(pat string, caseSensitive, exact bool) *regexp.Regexp {
	parts := strings.Split(pat, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	expr := strings.Join(parts, ".*")
	if exact {
		expr = "^" + expr + "$"
	}
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	// QuoteMeta leaves nothing that can fail to compile.
	return regexp.MustCompile(expr)
}
