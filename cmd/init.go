package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/utils"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

var (
	initUser  string
	initForce bool
)

func init() {
	initCmd.Flags().StringVarP(&initUser, "user", "u", "", "your full name, exactly as you will always type it")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing site document")
}

// resetInitCommandState resets the init command's global state for testing.
func resetInitCommandState() {
	initUser = ""
	initForce = false
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a site document for a user",
	Long: `Creates an empty site document for the given full name.

The full name is part of every derivation: "John Doe" and "john doe" produce
different passwords. The document is written to --file, the last used file,
or the default location in your data directory.

Examples:
  mpw init --user "John Doe"
  mpw init --user "John Doe" --file ~/sync/john.mpsites.xml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		user := initUser
		if user == "" && utils.IsTerminal() {
			fmt.Fprint(os.Stderr, "Full name: ")
			line, err := utils.ReadLine(os.Stdin)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read name: %v", err)
			}
			user = string(line)
		}

		spinner, cleanup := startSpinner("Creating site document...", verbose)
		defer cleanup()

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			DocumentOptions: documentOptions(),
			User:            user,
			Force:           initForce,
		})
		if err != nil {
			return fail(spinner, err)
		}

		Logger.Infof("Document written to %s", result.Path)
		spinner.FinalMSG = ui.Done.Line("Created site document for "+ui.Highlight.Sprint(result.User)) + "\n" +
			ui.Hint.Line("File: "+ui.Path.Sprint(result.Path)) + "\n" +
			ui.Hint.Line("Add a site with "+ui.Code.Sprint("mpw add example.com"))
		return nil
	},
}
