package app

import (
	"os"

	"github.com/blackwell-systems/palctl/internal/tpl"
	"github.com/blackwell-systems/palctl/internal/util"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		output  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Re-serialize a palette to TPL or dump it as JSON",
		Long: `Export a palette. The TPL output reproduces the record conventions the
host application writes (token order, quoting, trailing spaces); the
JSON output is a plain structural dump keyed by short id.

Examples:
  palctl export cutout.tpl -o clean.tpl
  palctl export cutout.tpl --json -o cutout.json
  palctl export cutout.tpl --json        (writes to stdout)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if jsonOut {
				data, err = tpl.ExportJSON(doc.Colors)
				if err != nil {
					return err
				}
				data = append(data, '\n')
			} else {
				data = tpl.Marshal(doc)
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := util.WriteFileAtomic(output, data); err != nil {
				return err
			}
			ok("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Export as JSON instead of TPL")
	return cmd
}
