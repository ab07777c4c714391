package tpl_test

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/tpl"
)

var studioTPL = []byte(`<palette name="cutout">
  <version>71.0</version>
  <styles>
    <style>"p-0"bg 3 255 255 255 0 </style>
    <style>"p-1"ink 3 0 0 0 255 </style>
    <style>_1 "p-4"flesh_sh 3 200 150 120 255 </style>
  </styles>
  <animation>
    <style id="4">
      <keyframe frame="0">flesh_sh 3 255 0 0 255 </keyframe>
      <keyframe frame="10">flesh_sh 3 0 0 255 255 </keyframe>
    </style>
    <style id="99">
      <keyframe frame="5">ghost 3 1 2 3 4 </keyframe>
    </style>
  </animation>
  <stylepages>
    <page name="colors">0 1 2 </page>
  </stylepages>
  <shortcuts>1;2;3;4;5;6;7;8;9;0</shortcuts>
</palette>
`)

var levelTPL = []byte(`<palette id="7">
  <version>71.0</version>
  <styles>
    <style>bg 3 255 255 255 0 </style>
    <style>_1 line_hl 4 10 20 30 255 </style>
  </styles>
  <shortcuts></shortcuts>
</palette>
`)

// --- studio parsing ---

func TestParse_StudioPalette(t *testing.T) {
	doc, warnings, err := tpl.Parse(studioTPL)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !doc.Meta.StudioPalette {
		t.Error("palette with name attribute not marked studio")
	}
	if doc.Meta.Name != "cutout" || doc.Meta.Version != "71.0" {
		t.Errorf("meta = %+v", doc.Meta)
	}
	if doc.Prefix != "p" {
		t.Errorf("prefix = %q, want %q", doc.Prefix, "p")
	}
	if len(doc.Colors) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(doc.Colors))
	}

	bg := doc.Colors[0]
	if bg.ID != "p-0" || bg.Name != "bg" || bg.Role != palette.RoleNone ||
		bg.R != 255 || bg.A != 0 || bg.Trace {
		t.Errorf("bg = %+v", bg)
	}

	flesh := doc.Colors[2]
	if flesh.ID != "p-4" || flesh.Name != "flesh" || flesh.Role != palette.RoleShadow || !flesh.Trace {
		t.Errorf("flesh = %+v", flesh)
	}
	if flesh.OriginalIndex != 2 {
		t.Errorf("flesh original index = %d", flesh.OriginalIndex)
	}
}

func TestParse_AnimationMergedByShortID(t *testing.T) {
	doc, _, err := tpl.Parse(studioTPL)
	if err != nil {
		t.Fatal(err)
	}
	flesh := doc.Colors[2]
	if len(flesh.Keyframes) != 2 {
		t.Fatalf("keyframes = %d, want 2", len(flesh.Keyframes))
	}
	if flesh.Keyframes[0].Frame != 0 || flesh.Keyframes[0].R != 255 {
		t.Errorf("keyframe 0 = %+v", flesh.Keyframes[0])
	}
	if flesh.Keyframes[1].Frame != 10 || flesh.Keyframes[1].B != 255 {
		t.Errorf("keyframe 1 = %+v", flesh.Keyframes[1])
	}
	// style id 99 matches no color: dropped silently
	for _, c := range doc.Colors[:2] {
		if c.Animated() {
			t.Errorf("color %s unexpectedly animated", c.ID)
		}
	}
}

func TestParse_FrameCountFromMaxFrame(t *testing.T) {
	doc, _, err := tpl.Parse(studioTPL)
	if err != nil {
		t.Fatal(err)
	}
	if doc.FrameCount != 20 {
		t.Errorf("frame count = %d, want max frame 10 + 10", doc.FrameCount)
	}

	static, _, err := tpl.Parse(levelTPL)
	if err != nil {
		t.Fatal(err)
	}
	if static.FrameCount != palette.DefaultFrameCount {
		t.Errorf("static frame count = %d, want %d", static.FrameCount, palette.DefaultFrameCount)
	}
}

func TestParse_KeyframesSortedAndUnique(t *testing.T) {
	input := []byte(`<palette name="p">
  <version>71.0</version>
  <styles>
    <style>"p-1"c 3 0 0 0 255 </style>
  </styles>
  <animation>
    <style id="1">
      <keyframe frame="10">c 3 1 1 1 255 </keyframe>
      <keyframe frame="0">c 3 2 2 2 255 </keyframe>
      <keyframe frame="10">c 3 9 9 9 255 </keyframe>
    </style>
  </animation>
</palette>`)
	doc, _, err := tpl.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	ks := doc.Colors[0].Keyframes
	if len(ks) != 2 || ks[0].Frame != 0 || ks[1].Frame != 10 {
		t.Fatalf("keyframes = %+v", ks)
	}
	if ks[1].R != 9 {
		t.Errorf("duplicate frame 10: R = %d, want last value 9", ks[1].R)
	}
}

// --- level parsing ---

func TestParse_LevelPalette(t *testing.T) {
	doc, warnings, err := tpl.Parse(levelTPL)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings: %v", warnings)
	}
	if doc.Meta.StudioPalette {
		t.Error("level palette marked studio")
	}
	if doc.Meta.OriginalID != "7" {
		t.Errorf("original id = %q", doc.Meta.OriginalID)
	}
	if len(doc.Colors) != 2 {
		t.Fatalf("colors = %d", len(doc.Colors))
	}
	if doc.Colors[0].ID != "0" || doc.Colors[0].ShortID() != "0" {
		t.Errorf("level id = %q", doc.Colors[0].ID)
	}
	line := doc.Colors[1]
	if line.ID != "1" || line.Name != "line" || line.Role != palette.RoleHighlight ||
		!line.Trace || line.TagID != "4" || line.B != 30 {
		t.Errorf("line = %+v", line)
	}
}

// --- error handling ---

func TestParse_MalformedRecordSkipped(t *testing.T) {
	input := []byte(`<palette name="p">
  <version>71.0</version>
  <styles>
    <style>"p-0"bg 3 255 255 255 0 </style>
    <style>"p-1"broken 3 0 0 255 </style>
  </styles>
</palette>`)
	doc, warnings, err := tpl.Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Colors) != 1 || doc.Colors[0].Name != "bg" {
		t.Fatalf("expected exactly the well-formed color, got %d", len(doc.Colors))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "style 1") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestParse_NonIntegerChannelSkipped(t *testing.T) {
	input := []byte(`<palette name="p">
  <styles>
    <style>"p-0"bg 3 255 255 banana 0 </style>
  </styles>
</palette>`)
	doc, warnings, err := tpl.Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Colors) != 0 || len(warnings) != 1 {
		t.Errorf("colors = %d, warnings = %v", len(doc.Colors), warnings)
	}
}

func TestParse_MissingPaletteRootFatal(t *testing.T) {
	if _, _, err := tpl.Parse([]byte(`<notapalette></notapalette>`)); err == nil {
		t.Error("expected error for non-palette root")
	}
	if _, _, err := tpl.Parse([]byte(``)); err == nil {
		t.Error("expected error for empty input")
	}
}

// --- serialization ---

func TestMarshal_StudioRecordBodiesByteEquivalent(t *testing.T) {
	doc, _, err := tpl.Parse(studioTPL)
	if err != nil {
		t.Fatal(err)
	}
	out := string(tpl.Marshal(doc))
	for _, want := range []string{
		`<style>"p-0"bg 3 255 255 255 0 </style>`,
		`<style>"p-1"ink 3 0 0 0 255 </style>`,
		`<style>_1 "p-4"flesh_sh 3 200 150 120 255 </style>`,
		`<keyframe frame="0">flesh_sh 3 255 0 0 255 </keyframe>`,
		`<keyframe frame="10">flesh_sh 3 0 0 255 255 </keyframe>`,
		`<style id="4">`,
		`<page name="colors">0 1 2 </page>`,
		`<shortcuts>1;2;3;4;5;6;7;8;9;0</shortcuts>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestMarshal_ParseRoundTrip(t *testing.T) {
	doc, _, err := tpl.Parse(studioTPL)
	if err != nil {
		t.Fatal(err)
	}
	doc2, warnings, err := tpl.Parse(tpl.Marshal(doc))
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("round-trip warnings: %v", warnings)
	}
	if len(doc2.Colors) != len(doc.Colors) {
		t.Fatalf("round-trip color count %d vs %d", len(doc2.Colors), len(doc.Colors))
	}
	for i := range doc.Colors {
		a, b := doc.Colors[i], doc2.Colors[i]
		if a.ID != b.ID || a.Name != b.Name || a.Role != b.Role || a.Trace != b.Trace ||
			a.Base() != b.Base() || len(a.Keyframes) != len(b.Keyframes) {
			t.Errorf("[%d] mismatch:\n  %+v\n  %+v", i, a, b)
		}
	}
}

func TestMarshal_LevelPalette(t *testing.T) {
	doc, _, err := tpl.Parse(levelTPL)
	if err != nil {
		t.Fatal(err)
	}
	out := string(tpl.Marshal(doc))
	if !strings.Contains(out, `<palette id="7">`) {
		t.Errorf("missing level palette header:\n%s", out)
	}
	if !strings.Contains(out, `<style>bg 3 255 255 255 0 </style>`) {
		t.Errorf("level record body wrong:\n%s", out)
	}
	if !strings.Contains(out, `<style>_1 line_hl 4 10 20 30 255 </style>`) {
		t.Errorf("traced level record body wrong:\n%s", out)
	}
	if strings.Contains(out, `<animation>`) {
		t.Error("static palette emitted an animation block")
	}
}

func TestMarshal_EscapesMarkup(t *testing.T) {
	doc := palette.New("a <b> & c")
	out := string(tpl.Marshal(doc))
	if !strings.Contains(out, `name="a &lt;b&gt; &amp; c"`) {
		t.Errorf("attribute not escaped:\n%s", out)
	}
}

// --- JSON export ---

func TestExportJSON_Shape(t *testing.T) {
	doc, _, err := tpl.Parse(studioTPL)
	if err != nil {
		t.Fatal(err)
	}
	data, err := tpl.ExportJSON(doc.Colors)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`"id": "0"`,
		`"id": "4"`,
		`"name": "flesh"`,
		`"role": "shadow"`,
		`"frame": 10`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"keyframes": null`) {
		t.Error("static colors must export an empty keyframe array, not null")
	}
}
