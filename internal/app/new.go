package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/util"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create an empty studio palette",
		Long: `Create a studio palette seeded with the two conventional entries:
background (index 0) and ink (index 1).

Examples:
  palctl new cutout -o cutout.tpl
  palctl new -o cutout.tpl  (prompts for the name on a terminal)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				if !util.IsTTY() {
					return fmt.Errorf("palette name required (pass it as an argument)")
				}
				if err := promptName(&name); err != nil {
					return err
				}
			}

			doc := palette.New(name)
			doc.Meta.Version = cfg.Defaults.Version
			doc.Meta.Shortcuts = cfg.Defaults.Shortcuts
			doc.FrameCount = cfg.Defaults.FrameCount

			if err := saveDocument(output, doc); err != nil {
				return err
			}
			ok("created %s (palette %q, prefix %s)", output, name, doc.Prefix)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func promptName(name *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Palette name").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	)
	return form.Run()
}
