package tpl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/util"
)

// Marshal renders a document back to TPL text, the exact structural
// inverse of Parse. Record bodies keep the host application's byte
// conventions: fixed token order, quoted-id/name adjacency and a trailing
// space before each closing tag.
func Marshal(doc *palette.Document) []byte {
	var buf bytes.Buffer
	studio := doc.Meta.StudioPalette

	if studio {
		fmt.Fprintf(&buf, "<palette name=\"%s\">\n", escapeAttr(doc.Meta.Name))
	} else {
		id := doc.Meta.OriginalID
		if id == "" {
			id = "1"
		}
		fmt.Fprintf(&buf, "<palette id=\"%s\">\n", escapeAttr(id))
	}

	fmt.Fprintf(&buf, "  <version>%s</version>\n", escapeText(doc.Meta.Version))

	buf.WriteString("  <styles>\n")
	for _, c := range doc.Colors {
		fmt.Fprintf(&buf, "    <style>%s</style>\n", escapeText(encodeStyleBody(c, studio)))
	}
	buf.WriteString("  </styles>\n")

	writeAnimation(&buf, doc)

	buf.WriteString("  <stylepages>\n")
	buf.WriteString("    <page name=\"colors\">")
	for i := range doc.Colors {
		fmt.Fprintf(&buf, "%d ", i)
	}
	buf.WriteString("</page>\n")
	buf.WriteString("  </stylepages>\n")

	fmt.Fprintf(&buf, "  <shortcuts>%s</shortcuts>\n", escapeText(doc.Meta.Shortcuts))
	buf.WriteString("</palette>\n")
	return buf.Bytes()
}

// writeAnimation emits the animation block, keyed by short id, for colors
// that carry at least one keyframe. Fully static documents get no
// <animation> element at all.
func writeAnimation(buf *bytes.Buffer, doc *palette.Document) {
	animated := false
	for _, c := range doc.Colors {
		if c.Animated() {
			animated = true
			break
		}
	}
	if !animated {
		return
	}

	buf.WriteString("  <animation>\n")
	for _, c := range doc.Colors {
		if !c.Animated() {
			continue
		}
		fmt.Fprintf(buf, "    <style id=\"%s\">\n", escapeAttr(c.ShortID()))
		for _, k := range c.Keyframes {
			fmt.Fprintf(buf, "      <keyframe frame=\"%d\">%s</keyframe>\n",
				k.Frame, escapeText(encodeKeyframeBody(c, k)))
		}
		buf.WriteString("    </style>\n")
	}
	buf.WriteString("  </animation>\n")
}

// Save writes the document to disk through an atomic replace, so a failed
// export never truncates an existing palette file.
func Save(path string, doc *palette.Document) error {
	return util.WriteFileAtomic(path, Marshal(doc))
}

// escapeText escapes element text. Double quotes stay literal: the record
// grammar's quoted ids must survive byte-for-byte.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(escapeText(s), `"`, "&quot;")
}
