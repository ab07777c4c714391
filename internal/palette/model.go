// Package palette holds the in-memory palette document: metadata, the
// ordered color list and its mutation operations. The TPL codec in
// internal/tpl builds and reads documents; it never reaches around the
// operations defined here.
package palette

import "strings"

// Role is the semantic tag of a color, encoded on the wire as a fixed
// name suffix.
type Role int

const (
	RoleNone Role = iota
	RoleShadow
	RoleHighlight
	RoleAO
)

// roleSuffixes maps each non-none role to its name suffix. The suffixes
// are disjoint, so decode order does not matter beyond first-match.
var roleSuffixes = []struct {
	Role   Role
	Suffix string
}{
	{RoleShadow, "_sh"},
	{RoleHighlight, "_hl"},
	{RoleAO, "_ao"},
}

// Suffix returns the name suffix for the role ("" for RoleNone).
func (r Role) Suffix() string {
	for _, rs := range roleSuffixes {
		if rs.Role == r {
			return rs.Suffix
		}
	}
	return ""
}

func (r Role) String() string {
	switch r {
	case RoleShadow:
		return "shadow"
	case RoleHighlight:
		return "highlight"
	case RoleAO:
		return "ao"
	default:
		return "none"
	}
}

// ParseRole maps a user-facing role name to a Role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "base", "":
		return RoleNone, true
	case "shadow", "sh":
		return RoleShadow, true
	case "highlight", "hl":
		return RoleHighlight, true
	case "ao":
		return RoleAO, true
	}
	return RoleNone, false
}

// SplitRoleSuffix strips a trailing role suffix from a raw style name and
// returns the base name plus the decoded role. It is the exact inverse of
// Color.ExportName.
func SplitRoleSuffix(name string) (string, Role) {
	for _, rs := range roleSuffixes {
		if strings.HasSuffix(name, rs.Suffix) {
			return strings.TrimSuffix(name, rs.Suffix), rs.Role
		}
	}
	return name, RoleNone
}

// Keyframe pins an explicit RGBA value to a frame index. Within one
// color's track, frames are unique and sorted ascending.
type Keyframe struct {
	Frame int
	R     uint8
	G     uint8
	B     uint8
	A     uint8
}

// RGBA is a plain 8-bit color value.
type RGBA struct {
	R, G, B, A uint8
}

// Color is one palette entry. ID is the full identifier: prefix-scoped
// ("p7a2-42") for studio palettes, a bare position ("3") for level
// palettes. OriginalIndex records the file order at parse time and is
// never mutated, so "unsorted" views stay stable across sorting.
type Color struct {
	ID    string
	Name  string
	TagID string
	R     uint8
	G     uint8
	B     uint8
	A     uint8
	Role  Role
	Trace bool

	OriginalIndex int
	Keyframes     []Keyframe
}

// ShortID returns the segment after the last '-' of the full id, or the
// whole id when it has no '-'. Animation blocks and clipboard export
// address colors by short id.
func (c *Color) ShortID() string {
	if i := strings.LastIndex(c.ID, "-"); i >= 0 {
		return c.ID[i+1:]
	}
	return c.ID
}

// ExportName returns the on-wire style name: base name plus role suffix.
func (c *Color) ExportName() string {
	return c.Name + c.Role.Suffix()
}

// Animated reports whether the color has at least one keyframe.
func (c *Color) Animated() bool {
	return len(c.Keyframes) > 0
}

// Base returns the color's static RGBA value.
func (c *Color) Base() RGBA {
	return RGBA{c.R, c.G, c.B, c.A}
}

// Metadata is the palette-level header. StudioPalette is decided once at
// parse time (the <palette> node carries a name attribute) and selects
// the record dialect; it is immutable afterwards. OriginalID is the id
// attribute of a level palette, empty for studio palettes.
type Metadata struct {
	Name          string
	Version       string
	Shortcuts     string
	StudioPalette bool
	OriginalID    string
}
