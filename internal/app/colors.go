package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/blackwell-systems/palctl/internal/tpl"
	"github.com/blackwell-systems/palctl/internal/view"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newColorsCmd() *cobra.Command {
	var (
		namePat       string
		caseSensitive bool
		exact         bool
		hue           float64
		hueThreshold  float64
		animatedOnly  bool
		sortKey       string
		descending    bool
		jsonOut       bool
	)

	cmd := &cobra.Command{
		Use:   "colors FILE",
		Short: "List colors with filtering and sorting",
		Long: `List palette colors. Name patterns treat '*' as a wildcard and match
against the full export name (base name plus role suffix).

Examples:
  palctl colors cutout.tpl --filter 'flesh*'
  palctl colors cutout.tpl --hue 0 --hue-threshold 30 --sort hue
  palctl colors cutout.tpl --animated --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			f := view.Filter{
				Name:          namePat,
				CaseSensitive: caseSensitive || cfg.Editor.CaseSensitive,
				Exact:         exact,
				HueSet:        cmd.Flags().Changed("hue"),
				Hue:           hue,
				HueThreshold:  hueThreshold,
				AnimatedOnly:  animatedOnly,
			}
			order := cfg.Editor.SortOrder()
			if cmd.Flags().Changed("sort") {
				key, okKey := view.ParseSortKey(sortKey)
				if !okKey {
					return fmt.Errorf("unknown sort key %q (index, name or hue)", sortKey)
				}
				order.Key = key
			}
			if cmd.Flags().Changed("desc") {
				order.Descending = descending
			}

			colors := order.Apply(f.Apply(doc.Colors))

			if jsonOut {
				data, err := tpl.ExportJSON(colors)
				if err != nil {
					return err
				}
				data = append(data, '\n')
				_, err = os.Stdout.Write(data)
				return err
			}

			for _, c := range colors {
				printColorLine(c)
			}
			fmt.Printf("\n%d of %d colors\n", len(colors), len(doc.Colors))
			return nil
		},
	}

	cmd.Flags().StringVar(&namePat, "filter", "", "Name pattern ('*' is a wildcard)")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match name case-sensitively")
	cmd.Flags().BoolVar(&exact, "exact", false, "Match the whole name, not a substring")
	cmd.Flags().Float64Var(&hue, "hue", 0, "Keep colors near this hue (degrees)")
	cmd.Flags().Float64Var(&hueThreshold, "hue-threshold", 30, "Circular hue distance allowed with --hue")
	cmd.Flags().BoolVar(&animatedOnly, "animated", false, "Keep only colors with keyframes")
	cmd.Flags().StringVar(&sortKey, "sort", "index", "Sort key: index, name or hue")
	cmd.Flags().BoolVar(&descending, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printColorLine(c *palette.Color) {
	hex := colormath.RGBToHex(int(c.R), int(c.G), int(c.B))
	marks := ""
	if c.Trace {
		marks += " " + color.YellowString("autopaint")
	}
	if c.Animated() {
		marks += " " + color.MagentaString("%d keys", len(c.Keyframes))
	}
	fmt.Printf("  %-4d %-24s %s a=%-3d %s%s\n",
		c.OriginalIndex,
		c.ExportName(),
		color.CyanString(hex),
		c.A,
		color.HiBlackString("id=%s", c.ShortID()),
		marks,
	)
}
