package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show palette metadata and counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			kind := "level"
			if doc.Meta.StudioPalette {
				kind = "studio"
			}
			animated := 0
			traced := 0
			for _, c := range doc.Colors {
				if c.Animated() {
					animated++
				}
				if c.Trace {
					traced++
				}
			}

			header("Palette: %s", args[0])
			printField("kind", kind)
			if doc.Meta.StudioPalette {
				printField("name", doc.Meta.Name)
				printField("prefix", doc.Prefix)
			} else {
				printField("id", doc.Meta.OriginalID)
			}
			printField("version", doc.Meta.Version)
			printField("colors", fmt.Sprintf("%d", len(doc.Colors)))
			printField("animated", fmt.Sprintf("%d", animated))
			printField("autopaint", fmt.Sprintf("%d", traced))
			printField("frames", fmt.Sprintf("%d", doc.FrameCount))
			if doc.Meta.Shortcuts != "" {
				printField("shortcuts", doc.Meta.Shortcuts)
			}
			return nil
		},
	}
}
