package app

import (
	"fmt"

	"github.com/blackwell-systems/palctl/internal/anim"
	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample FILE INDEX FRAME",
		Short: "Print a color's frame-resolved value",
		Long: `Resolve a color at a frame: keyframed colors interpolate linearly
between surrounding keyframes and hold flat outside them, static colors
return their base value.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			idx, err := colorIndex(doc, args[1])
			if err != nil {
				return err
			}
			frame, err := parseFrame(args[2])
			if err != nil {
				return err
			}

			c := doc.Colors[idx]
			rgba := anim.Interpolate(c, frame)
			fmt.Printf("%s @ %d: %d %d %d %d  %s\n",
				c.ExportName(), frame, rgba.R, rgba.G, rgba.B, rgba.A,
				colormath.RGBToHex(int(rgba.R), int(rgba.G), int(rgba.B)))
			return nil
		},
	}
}
