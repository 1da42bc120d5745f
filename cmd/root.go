package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	logger "github.com/PolarWolf314/mpw/internal/logging"
	"github.com/PolarWolf314/mpw/internal/ui"
)

var (
	verbose      bool
	debug        bool
	documentFile string
	Logger       logger.Logger

	RootCmd = &cobra.Command{
		Use:   "mpw",
		Short: "Stateless site passwords derived from your name and one master passphrase",
		Long: `mpw derives site passwords from your full name, a master passphrase and a
site name. Nothing secret is stored: the site document only remembers which
sites you use, their counters, password types and logins.

Examples:
  mpw init --user "John Doe"
  mpw add github.com --login john@doe.org
  mpw generate github.com
  mpw import ~/Downloads/John\ Doe.mpsites.xml --newer --add`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t, file=%q", cmd.Name(), verbose, debug, documentFile)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("mpw", "standard", "cyan", true)
			banner.Print()
			fmt.Println()
			fmt.Println(ui.Hint.Line("Run " + ui.Code.Sprint("mpw --help") + " to see available commands"))
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVarP(&documentFile, "file", "f", "", "site document (.toml or .xml); defaults to the last used file")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(updateCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(classesCmd)
}

// Execute runs the command tree. Errors not already shown by a command are printed to stderr.
func Execute() error {
	err := RootCmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, ui.Fail.Line(err.Error()))
	}
	return err
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	documentFile = ""
	resetInitCommandState()
	resetSiteCommandState()
	resetGenerateCommandState()
	resetImportCommandState()
	resetExportCommandState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag so one test's flags do not leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
