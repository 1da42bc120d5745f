package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

var exportForce bool

func init() {
	exportCmd.Flags().BoolVar(&exportForce, "force", false, "overwrite the output file if it exists")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportForce = false
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the site document to another file",
	Long: `Writes your sites to another file. The extension picks the format:
.toml for the native format, .xml for the Master Password desktop app.

No passwords are ever written, only site names, counters, types and logins.

Examples:
  mpw export backup.toml
  mpw export "John Doe.mpsites.xml"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		spinner, cleanup := startSpinner("Exporting sites...", verbose)
		defer cleanup()

		result, err := workflows.Export(context.Background(), workflows.ExportOptions{
			DocumentOptions: documentOptions(),
			OutputPath:      args[0],
			Force:           exportForce,
		})
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = fmt.Sprintf("%s Exported %d sites to %s (%s)",
			ui.Done, result.SiteCount, ui.Path.Sprint(result.OutputPath), result.Format)
		return nil
	},
}
