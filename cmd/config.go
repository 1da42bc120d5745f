package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mpw preferences",
	Long: `Shows and changes user preferences stored in config.toml.

Examples:
  mpw config show
  mpw config set-default-type max
  mpw config set-file ~/sync/john.mpsites.xml`,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configSetDefaultTypeCmd)
	ConfigCmd.AddCommand(configSetFileCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")
		spinner, cleanup := startSpinner("Loading configuration...", verbose)
		defer cleanup()

		result, err := workflows.ShowConfig(context.Background(), documentOptions())
		if err != nil {
			return fail(spinner, err)
		}

		lastFile := result.LastFile
		if lastFile == "" {
			lastFile = ui.Muted.Sprint("not set")
		} else {
			lastFile = ui.Path.Sprint(lastFile)
		}
		spinner.FinalMSG = fmt.Sprintf("Config file:   %s\nData dir:      %s\nDocument:      %s\nLast file:     %s\nDefault type:  %s\nInstall UUID:  %s",
			ui.Path.Sprint(result.ConfigPath),
			ui.Path.Sprint(result.DataPath),
			ui.Path.Sprint(result.DocumentPath),
			lastFile,
			ui.Highlight.Sprint(result.DefaultClass.String()),
			result.InstallUUID)
		return nil
	},
}

var configSetDefaultTypeCmd = &cobra.Command{
	Use:   "set-default-type <type>",
	Short: "Set the password type given to new sites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set-default-type command")
		spinner, cleanup := startSpinner("Saving configuration...", verbose)
		defer cleanup()

		class, err := workflows.SetDefaultType(context.Background(), args[0])
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = ui.Done.Line("New sites will use " + ui.Highlight.Sprint(class.String()))
		return nil
	},
}

var configSetFileCmd = &cobra.Command{
	Use:   "set-file <path>",
	Short: "Set the site document used when --file is not given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set-file command")
		spinner, cleanup := startSpinner("Saving configuration...", verbose)
		defer cleanup()

		path, err := workflows.SetFile(context.Background(), args[0])
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = ui.Done.Line("Using " + ui.Path.Sprint(path))
		return nil
	},
}
