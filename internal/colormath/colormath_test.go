package colormath_test

import (
	"math"
	"testing"

	"github.com/blackwell-systems/palctl/internal/colormath"
)

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// --- HSV ---

func TestHSVToRGB_Primaries(t *testing.T) {
	cases := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{60, 1, 1, 255, 255, 0},
		{180, 1, 1, 0, 255, 255},
		{300, 1, 1, 255, 0, 255},
		{0, 0, 1, 255, 255, 255},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0.5, 128, 128, 128},
	}
	for _, c := range cases {
		r, g, b := colormath.HSVToRGB(c.h, c.s, c.v)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("HSVToRGB(%v,%v,%v) = (%d,%d,%d), want (%d,%d,%d)",
				c.h, c.s, c.v, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestHSVToRGB_NegativeHueWraps(t *testing.T) {
	r1, g1, b1 := colormath.HSVToRGB(-120, 1, 1)
	r2, g2, b2 := colormath.HSVToRGB(240, 1, 1)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("hue -120 = (%d,%d,%d), hue 240 = (%d,%d,%d)", r1, g1, b1, r2, g2, b2)
	}
}

func TestRGBToHSV_Achromatic(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 255} {
		h, s, _ := colormath.RGBToHSV(v, v, v)
		if h != 0 {
			t.Errorf("gray %d: hue = %v, want 0", v, h)
		}
		if v > 0 && s != 0 {
			t.Errorf("gray %d: saturation = %v, want 0", v, s)
		}
	}
}

func TestRGBToHSV_TieBreakOrder(t *testing.T) {
	// Yellow: R and G share the max; the R branch must win, giving a hue
	// strictly inside [0, 120).
	h, _, _ := colormath.RGBToHSV(255, 255, 0)
	if math.Abs(h-60) > 1e-9 {
		t.Errorf("hue(255,255,0) = %v, want 60", h)
	}
}

func TestHSVRoundTrip_WithinOne(t *testing.T) {
	for r := 0; r < 256; r += 7 {
		for g := 0; g < 256; g += 11 {
			for b := 0; b < 256; b += 13 {
				h, s, v := colormath.RGBToHSV(uint8(r), uint8(g), uint8(b))
				r2, g2, b2 := colormath.HSVToRGB(h, s, v)
				if absDiff(uint8(r), r2) > 1 || absDiff(uint8(g), g2) > 1 || absDiff(uint8(b), b2) > 1 {
					t.Fatalf("round-trip (%d,%d,%d) -> (%d,%d,%d)", r, g, b, r2, g2, b2)
				}
			}
		}
	}
}

// --- Hex ---

func TestHexRoundTrip_Exact(t *testing.T) {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		hex := colormath.RGBToHex(int(v), int(255-v), int(v/2))
		r, g, b, ok := colormath.HexToRGB(hex)
		if !ok {
			t.Fatalf("HexToRGB(%q) failed", hex)
		}
		if r != v || g != 255-v || b != v/2 {
			t.Fatalf("round-trip %q: got (%d,%d,%d)", hex, r, g, b)
		}
	}
}

func TestRGBToHex_Clamps(t *testing.T) {
	if got := colormath.RGBToHex(-20, 300, 128); got != "#00ff80" {
		t.Errorf("RGBToHex(-20,300,128) = %q, want %q", got, "#00ff80")
	}
}

func TestHexToRGB_Forms(t *testing.T) {
	for _, s := range []string{"#1A2b3C", "1a2B3c"} {
		r, g, b, ok := colormath.HexToRGB(s)
		if !ok || r != 0x1a || g != 0x2b || b != 0x3c {
			t.Errorf("HexToRGB(%q) = (%d,%d,%d,%v)", s, r, g, b, ok)
		}
	}
}

func TestHexToRGB_Malformed(t *testing.T) {
	for _, s := range []string{"", "#", "fff", "#12345", "#12345g", "gggggg", "#1234567"} {
		if _, _, _, ok := colormath.HexToRGB(s); ok {
			t.Errorf("HexToRGB(%q) accepted malformed input", s)
		}
	}
}

// --- HSL ---

func TestRGBToHSL_KnownValues(t *testing.T) {
	h, s, l := colormath.RGBToHSL(255, 0, 0)
	if h != 0 || s != 1 || l != 0.5 {
		t.Errorf("HSL(red) = (%v,%v,%v), want (0,1,0.5)", h, s, l)
	}
	h, s, _ = colormath.RGBToHSL(128, 128, 128)
	if h != 0 || s != 0 {
		t.Errorf("HSL(gray) = (%v,%v,..), want achromatic", h, s)
	}
}
