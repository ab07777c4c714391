package app

import (
	"fmt"

	"github.com/blackwell-systems/palctl/internal/anim"
	"github.com/blackwell-systems/palctl/internal/colormath"
	"github.com/spf13/cobra"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Inspect and edit keyframe tracks",
	}
	cmd.AddCommand(
		newKeyToggleCmd(),
		newKeyListCmd(),
		newKeyNextCmd(),
	)
	return cmd
}

func newKeyToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle FILE INDEX FRAME",
		Short: "Toggle a keyframe at a frame",
		Long: `Remove the keyframe at FRAME if one exists; otherwise pin one whose
color is the currently interpolated value, so the animation does not
jump.`,
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
			_, existed := anim.KeyframeAt(c, frame)
			anim.ToggleKeyframe(c, frame)
			doc.Notify()
			if err := saveDocument(args[0], doc); err != nil {
				return err
			}
			if existed {
				ok("removed keyframe at frame %d (%d left)", frame, len(c.Keyframes))
			} else {
				ok("pinned keyframe at frame %d (%d total)", frame, len(c.Keyframes))
			}
			return nil
		},
	}
}

func newKeyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE INDEX",
		Short: "List a color's keyframes",
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

			c := doc.Colors[idx]
			if !c.Animated() {
				fmt.Printf("%s is static\n", c.ExportName())
				return nil
			}
			header("%s: %d keyframes", c.ExportName(), len(c.Keyframes))
			for _, k := range c.Keyframes {
				printField(fmt.Sprintf("frame %d", k.Frame),
					fmt.Sprintf("%s a=%d", colormath.RGBToHex(int(k.R), int(k.G), int(k.B)), k.A))
			}
			return nil
		},
	}
}

func newKeyNextCmd() *cobra.Command {
	var back bool

	cmd := &cobra.Command{
		Use:   "next FILE INDEX FROM",
		Short: "Find the next keyframe after (or before) a frame",
		Long: `Print the nearest keyframe strictly after FROM, wrapping to the first
keyframe when none follows. With --back, search backwards instead.`,
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
			from, err := parseFrame(args[2])
			if err != nil {
				return err
			}

			dir := anim.Forward
			if back {
				dir = anim.Backward
			}
			frame, found := anim.NextKeyframe(doc.Colors[idx], from, dir)
			if !found {
				warn("%s has no keyframes", doc.Colors[idx].ExportName())
				return nil
			}
			fmt.Println(frame)
			return nil
		},
	}

	cmd.Flags().BoolVar(&back, "back", false, "Search backwards")
	return cmd
}
