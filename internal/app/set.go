package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE INDEX (#RRGGBB | R G B [A])",
		Short: "Set a color's base RGBA value",
		Long: `Set the base (static) color of an entry. A malformed hex string leaves
the palette untouched.

Examples:
  palctl set cutout.tpl 2 '#c89678'
  palctl set cutout.tpl 2 200 150 120 255`,
		Args: cobra.RangeArgs(3, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			idx, err := colorIndex(doc, args[1])
			if err != nil {
				return err
			}

			prev := doc.Colors[idx].Base()
			rgba, err := parseRGBAArgs(args[2:], prev.A)
			if err != nil {
				return err
			}

			doc.SetRGBA(idx, rgba)
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			ok("%s -> %s a=%d", doc.Colors[idx].ExportName(),
				colormath.RGBToHex(int(rgba.R), int(rgba.G), int(rgba.B)), rgba.A)
			return nil
		},
	}
}

// parseRGBAArgs reads either one hex token or 3-4 decimal channels.
// Decimal channels outside [0,255] are clamped rather than rejected.
func parseRGBAArgs(args []string, prevAlpha uint8) (palette.RGBA, error) {
	if len(args) == 1 {
		r, g, b, okHex := colormath.HexToRGB(args[0])
		if !okHex {
			return palette.RGBA{}, fmt.Errorf("invalid hex color %q", args[0])
		}
		return palette.RGBA{R: r, G: g, B: b, A: prevAlpha}, nil
	}
	if len(args) < 3 {
		return palette.RGBA{}, fmt.Errorf("want a hex color or 3-4 channel values")
	}

	var ch [4]int
	ch[3] = int(prevAlpha)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return palette.RGBA{}, fmt.Errorf("channel %q is not a number", arg)
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		ch[i] = n
	}
	return palette.RGBA{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: uint8(ch[3])}, nil
}
