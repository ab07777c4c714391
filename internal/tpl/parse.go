package tpl

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/palctl/internal/palette"
)

// XML envelope. The palette attributes are decoded as a raw list because
// the studio/level distinction rests on the presence of the name
// attribute, not its value.
type xmlPalette struct {
	XMLName    xml.Name       `xml:"palette"`
	Attrs      []xml.Attr     `xml:",any,attr"`
	Version    string         `xml:"version"`
	Styles     xmlStyles      `xml:"styles"`
	Animation  *xmlAnimation  `xml:"animation"`
	StylePages []xmlStylePage `xml:"stylepages>page"`
	Shortcuts  string         `xml:"shortcuts"`
}

type xmlStyles struct {
	Style []string `xml:"style"`
}

type xmlAnimation struct {
	Styles []xmlAnimStyle `xml:"style"`
}

type xmlAnimStyle struct {
	ID        string        `xml:"id,attr"`
	Keyframes []xmlKeyframe `xml:"keyframe"`
}

type xmlKeyframe struct {
	Frame string `xml:"frame,attr"`
	Body  string `xml:",chardata"`
}

type xmlStylePage struct {
	Name string `xml:"name,attr"`
	Body string `xml:",chardata"`
}

// Parse decodes a TPL file into a fresh document. A malformed style
// record is skipped with a warning and parsing continues; warnings are
// aggregated for the caller to surface once. A missing or non-palette
// root is fatal and produces no document.
func Parse(data []byte) (*palette.Document, []string, error) {
	var raw xmlPalette
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("reading palette XML: %w", err)
	}

	nameAttr, hasName := lookupAttr(raw.Attrs, "name")
	idAttr, _ := lookupAttr(raw.Attrs, "id")

	doc := &palette.Document{
		Meta: palette.Metadata{
			Name:          nameAttr,
			Version:       strings.TrimSpace(raw.Version),
			Shortcuts:     raw.Shortcuts,
			StudioPalette: hasName,
			OriginalID:    idAttr,
		},
		FrameCount: palette.DefaultFrameCount,
	}

	var warnings []string
	for i, body := range raw.Styles.Style {
		var rec record
		var err error
		if doc.Meta.StudioPalette {
			rec, err = parseStudioRecord(body)
		} else {
			rec, err = parseLevelRecord(body, i)
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("style %d: %v", i, err))
			continue
		}
		base, role := palette.SplitRoleSuffix(rec.name)
		doc.Colors = append(doc.Colors, &palette.Color{
			ID:            rec.id,
			Name:          base,
			TagID:         rec.tagID,
			R:             rec.rgba.R,
			G:             rec.rgba.G,
			B:             rec.rgba.B,
			A:             rec.rgba.A,
			Role:          role,
			Trace:         rec.trace,
			OriginalIndex: len(doc.Colors),
		})
	}

	if doc.Meta.StudioPalette && len(doc.Colors) > 0 {
		id := doc.Colors[0].ID
		if i := strings.LastIndex(id, "-"); i >= 0 {
			doc.Prefix = id[:i]
		}
	}

	if raw.Animation != nil {
		maxFrame, more := mergeAnimation(doc, raw.Animation)
		warnings = append(warnings, more...)
		if maxFrame >= 0 {
			doc.FrameCount = maxFrame + 10
		}
	}

	return doc, warnings, nil
}

// mergeAnimation attaches keyframe tracks to parsed colors. Animation
// styles reference colors by short id; blocks with no matching color are
// dropped silently. Returns the maximum frame seen, or -1 when no
// keyframe parsed.
func mergeAnimation(doc *palette.Document, an *xmlAnimation) (int, []string) {
	var warnings []string
	maxFrame := -1
	for _, as := range an.Styles {
		target := colorByShortID(doc, as.ID)
		if target == nil {
			continue
		}
		for _, kf := range as.Keyframes {
			frame, err := strconv.Atoi(strings.TrimSpace(kf.Frame))
			if err != nil || frame < 0 {
				warnings = append(warnings, fmt.Sprintf("animation style %s: bad frame %q", as.ID, kf.Frame))
				continue
			}
			// Keyframe bodies mirror the style-record shape: name and
			// tagID lead, channels sit at fixed positions 2..5.
			tokens := strings.Fields(kf.Body)
			if len(tokens) < 6 {
				warnings = append(warnings, fmt.Sprintf("animation style %s frame %d: want at least 6 tokens, have %d", as.ID, frame, len(tokens)))
				continue
			}
			var ch [4]uint8
			bad := false
			for i, tok := range tokens[2:6] {
				n, err := strconv.ParseUint(tok, 10, 8)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("animation style %s frame %d: channel %q out of range", as.ID, frame, tok))
					bad = true
					break
				}
				ch[i] = uint8(n)
			}
			if bad {
				continue
			}
			insertKeyframe(target, palette.Keyframe{Frame: frame, R: ch[0], G: ch[1], B: ch[2], A: ch[3]})
			if frame > maxFrame {
				maxFrame = frame
			}
		}
	}
	return maxFrame, warnings
}

// insertKeyframe keeps the track sorted and frames unique; a duplicate
// frame in the input overwrites the earlier value.
func insertKeyframe(c *palette.Color, k palette.Keyframe) {
	for i := range c.Keyframes {
		if c.Keyframes[i].Frame == k.Frame {
			c.Keyframes[i] = k
			return
		}
		if c.Keyframes[i].Frame > k.Frame {
			c.Keyframes = append(c.Keyframes[:i], append([]palette.Keyframe{k}, c.Keyframes[i:]...)...)
			return
		}
	}
	c.Keyframes = append(c.Keyframes, k)
}

// colorByShortID returns the first color whose short id matches.
func colorByShortID(doc *palette.Document, shortID string) *palette.Color {
	for _, c := range doc.Colors {
		if c.ShortID() == shortID {
			return c
		}
	}
	return nil
}

func lookupAttr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}
