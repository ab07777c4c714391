package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/palctl/internal/config"
	"github.com/blackwell-systems/palctl/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	appVersion = "dev"

	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "palctl",
	Short: "Inspect and edit TPL palette files",
	Long: `palctl reads and writes TPL palette files: named RGBA styles with
optional per-color keyframe animation, as used by level and studio
palettes.

Run 'palctl edit FILE' for the interactive editor, or see the
subcommands for scriptable operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// `palctl FILE` on a terminal opens the editor directly.
		if len(args) == 1 && util.IsTTY() {
			return runEditor(args[0])
		}
		return cmd.Help()
	},
}

// SetVersion stores the ldflags-provided build version.
func SetVersion(v string) {
	appVersion = v
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/palctl/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	// Register sub-commands.
	rootCmd.AddCommand(
		newNewCmd(),
		newInfoCmd(),
		newColorsCmd(),
		newExportCmd(),
		newSetCmd(),
		newRenameCmd(),
		newRoleCmd(),
		newTraceCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newKeyCmd(),
		newSampleCmd(),
		newEditCmd(),
		newVersionCmd(),
	)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}
