package app

import (
	"fmt"

	"github.com/blackwell-systems/palctl/internal/tpl"
	"github.com/blackwell-systems/palctl/internal/tui"
	"github.com/blackwell-systems/palctl/internal/util"
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit FILE",
		Short: "Open the interactive palette editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(args[0])
		},
	}
}

// runEditor loads the palette, runs the TUI and writes the file back if
// the session ends with unsaved changes committed by the user.
func runEditor(path string) error {
	if !util.IsTTY() {
		return fmt.Errorf("the editor needs a terminal; use the subcommands for scripting")
	}

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	result, err := tui.RunEditor(doc, cfg.Editor.SortOrder())
	if err != nil {
		return err
	}
	if result.Saved {
		if err := tpl.Save(path, doc); err != nil {
			return fmt.Errorf("writing palette: %w", err)
		}
		ok("saved %s", path)
	}
	return nil
}
