package app

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/palctl/internal/anim"
	"github.com/blackwell-systems/palctl/internal/palette"
	"github.com/spf13/cobra"
)

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename FILE INDEX NAME",
		Short: "Rename a color",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			idx, err := colorIndex(doc, args[1])
			if err != nil {
				return err
			}
			if !doc.Rename(idx, args[2]) {
				return fmt.Errorf("name must not be empty")
			}
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			ok("renamed color %d to %s", idx, doc.Colors[idx].ExportName())
			return nil
		},
	}
}

func newRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role FILE INDEX (none|shadow|highlight|ao)",
		Short: "Set a color's role tag",
		Long: `Set the semantic role of a color. Roles are encoded as name suffixes on
export: shadow "_sh", highlight "_hl", ambient occlusion "_ao".

The background and ink entries (indices 0 and 1) keep role none by
convention; palctl refuses to retag them.`,
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
			if doc.Protected(idx) {
				return fmt.Errorf("color %d is the %s entry; its role is fixed", idx, protectedName(idx))
			}
			role, okRole := palette.ParseRole(args[2])
			if !okRole {
				return fmt.Errorf("unknown role %q (none, shadow, highlight or ao)", args[2])
			}
			doc.SetRole(idx, role)
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			ok("color %d role -> %s", idx, role)
			return nil
		},
	}
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE INDEX (on|off)",
		Short: "Toggle a color's autopaint/ink-trace marker",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			idx, err := colorIndex(doc, args[1])
			if err != nil {
				return err
			}
			var trace bool
			switch args[2] {
			case "on", "true", "1":
				trace = true
			case "off", "false", "0":
				trace = false
			default:
				return fmt.Errorf("want on or off, have %q", args[2])
			}
			doc.SetTrace(idx, trace)
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			ok("color %d autopaint -> %v", idx, trace)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	var (
		fromIdx int
		frame   int
	)

	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Append a new color",
		Long: `Append a new color. With --from, the new color clones the source
entry's value as resolved at --frame (keyframe interpolation applies);
without it, the new color is mid-gray opaque.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			var seed *palette.RGBA
			if cmd.Flags().Changed("from") {
				if fromIdx < 0 || fromIdx >= len(doc.Colors) {
					return fmt.Errorf("--from index %d out of range", fromIdx)
				}
				resolved := anim.Interpolate(doc.Colors[fromIdx], frame)
				seed = &resolved
			}

			idx := doc.AddColor(seed)
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			ok("added color %d (id %s)", idx, doc.Colors[idx].ShortID())
			return nil
		},
	}

	cmd.Flags().IntVar(&fromIdx, "from", 0, "Clone this entry's color")
	cmd.Flags().IntVar(&frame, "frame", 0, "Resolve the source color at this frame")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE INDEX",
		Short: "Delete a color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			idx, err := colorIndex(doc, args[1])
			if err != nil {
				return err
			}
			if doc.Protected(idx) {
				return fmt.Errorf("color %d is the %s entry and cannot be deleted", idx, protectedName(idx))
			}
			name := doc.Colors[idx].ExportName()
			doc.RemoveColor(idx)
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			ok("removed %s", name)
			return nil
		},
	}
}

func protectedName(idx int) string {
	if idx == 0 {
		return "background"
	}
	return "ink"
}

// parseFrame parses a non-negative frame argument.
func parseFrame(arg string) (int, error) {
	frame, err := strconv.Atoi(arg)
	if err != nil || frame < 0 {
		return 0, fmt.Errorf("frame %q must be a non-negative number", arg)
	}
	return frame, nil
}
