// Package tpl parses and serializes TPL palette files: an XML envelope
// whose style elements carry line-oriented text records. The record
// grammar has byte-level conventions (quoted-id/name adjacency, trailing
// spaces, the leading _1 autopaint marker) that the host application's
// own parser depends on, so both directions are implemented by hand
// rather than inferred from a looser grammar.
package tpl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blackwell-systems/palctl/internal/palette"
)

// traceToken is the leading marker for autopaint/ink-trace styles.
const traceToken = "_1"

// record is one decoded style line, before role-suffix decoding.
type record struct {
	trace bool
	id    string
	name  string
	tagID string
	rgba  palette.RGBA
}

// parseStudioRecord decodes a studio-dialect style body:
//
//	[_1 ]"<id>"<name> <tagID> <r> <g> <b> <a>
//
// The id is double-quoted and directly concatenated with the name token;
// the quote delimiters make the boundary unambiguous.
func parseStudioRecord(body string) (record, error) {
	fields := strings.Fields(body)
	var rec record
	if len(fields) > 0 && fields[0] == traceToken {
		rec.trace = true
		fields = fields[1:]
	}
	if len(fields) != 6 {
		return rec, fmt.Errorf("want 6 fields after marker, have %d", len(fields))
	}

	head := fields[0]
	if len(head) < 2 || head[0] != '"' {
		return rec, fmt.Errorf("missing quoted id in %q", head)
	}
	end := strings.IndexByte(head[1:], '"')
	if end < 0 {
		return rec, fmt.Errorf("unterminated id in %q", head)
	}
	rec.id = head[1 : 1+end]
	rec.name = head[end+2:]

	if err := parseChannels(fields[1:], &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// parseLevelRecord decodes a level-dialect style body:
//
//	[_1 ]<name> <tagID> <r> <g> <b> <a>
//
// Level styles carry no id; the caller synthesizes one from the record's
// zero-based position in the style list.
func parseLevelRecord(body string, index int) (record, error) {
	fields := strings.Fields(body)
	var rec record
	if len(fields) > 0 && fields[0] == traceToken {
		rec.trace = true
		fields = fields[1:]
	}
	if len(fields) != 6 {
		return rec, fmt.Errorf("want 6 fields after marker, have %d", len(fields))
	}
	rec.id = strconv.Itoa(index)
	rec.name = fields[0]
	if err := parseChannels(fields[1:], &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// parseChannels reads the five trailing integers: tagID then r, g, b, a.
func parseChannels(fields []string, rec *record) error {
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return fmt.Errorf("tag id %q is not an integer", fields[0])
	}
	rec.tagID = fields[0]

	var ch [4]uint8
	for i, f := range fields[1:] {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return fmt.Errorf("channel %q out of range", f)
		}
		ch[i] = uint8(n)
	}
	rec.rgba = palette.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	return nil
}

// encodeStyleBody renders a color back to record text, including the
// trailing space the host application writes before the closing tag.
func encodeStyleBody(c *palette.Color, studio bool) string {
	var sb strings.Builder
	if c.Trace {
		sb.WriteString(traceToken)
		sb.WriteByte(' ')
	}
	if studio {
		sb.WriteByte('"')
		sb.WriteString(c.ID)
		sb.WriteByte('"')
	}
	sb.WriteString(c.ExportName())
	sb.WriteByte(' ')
	sb.WriteString(c.TagID)
	fmt.Fprintf(&sb, " %d %d %d %d ", c.R, c.G, c.B, c.A)
	return sb.String()
}

// encodeKeyframeBody renders one keyframe using the style-record shape
// (name, tagID, then channels) without an id.
func encodeKeyframeBody(c *palette.Color, k palette.Keyframe) string {
	return fmt.Sprintf("%s %s %d %d %d %d ", c.ExportName(), c.TagID, k.R, k.G, k.B, k.A)
}
