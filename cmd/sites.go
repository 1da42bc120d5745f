package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/sites"
	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/utils"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

var (
	addCounter uint32
	addType    string
	addLogin   string

	updateName    string
	updateCounter uint32
	updateType    string
	updateLogin   string
	updateBump    bool
)

func init() {
	addCmd.Flags().Uint32VarP(&addCounter, "counter", "c", sites.DefaultCounter, "site counter")
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "password type (see mpw classes); defaults to default_type")
	addCmd.Flags().StringVarP(&addLogin, "login", "l", "", "login name for the site")

	updateCmd.Flags().StringVar(&updateName, "name", "", "rename the site")
	updateCmd.Flags().Uint32VarP(&updateCounter, "counter", "c", 0, "set the counter")
	updateCmd.Flags().StringVarP(&updateType, "type", "t", "", "set the password type")
	updateCmd.Flags().StringVarP(&updateLogin, "login", "l", "", "set the login name")
	updateCmd.Flags().BoolVar(&updateBump, "bump", false, "increment the counter to get a new password")
}

// resetSiteCommandState resets the site commands' global state for testing.
func resetSiteCommandState() {
	addCounter = sites.DefaultCounter
	addType = ""
	addLogin = ""
	updateName = ""
	updateCounter = 0
	updateType = ""
	updateLogin = ""
	updateBump = false
}

var addCmd = &cobra.Command{
	Use:   "add <site>",
	Short: "Add a site to the document",
	Long: `Adds a site. Only the site name, counter, password type and login are stored.

Examples:
  mpw add github.com
  mpw add bank.example --type pin
  mpw add mail.example --login john@doe.org --counter 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")
		spinner, cleanup := startSpinner("Adding site...", verbose)
		defer cleanup()

		if addCounter == 0 {
			return fail(spinner, fmt.Errorf("counter 0: %w", mpwerrors.ErrInvalidCounter))
		}

		result, err := workflows.Add(context.Background(), workflows.AddOptions{
			DocumentOptions: documentOptions(),
			Name:            args[0],
			Counter:         addCounter,
			Type:            addType,
			Login:           addLogin,
		})
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = ui.Done.Line("Added " + ui.Site.Sprint(result.Site.Name) + " " + describeSite(result.Site))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <site>",
	Short: "Remove a site from the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")
		spinner, cleanup := startSpinner("Removing site...", verbose)
		defer cleanup()

		result, err := workflows.Remove(context.Background(), workflows.RemoveOptions{
			DocumentOptions: documentOptions(),
			Name:            args[0],
		})
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = ui.Done.Line("Removed " + ui.Site.Sprint(result.Site.Name))
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <site>",
	Short: "Change a site's name, counter, type or login",
	Long: `Updates a site. Only the flags you pass are changed.

Changing the name, counter or type changes the generated password.
Use --bump after rotating a password on the site itself.

Examples:
  mpw update github.com --bump
  mpw update github.com --login octocat
  mpw update old.example --name new.example`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting update command")

		opts := workflows.UpdateOptions{
			DocumentOptions: documentOptions(),
			Name:            args[0],
			Bump:            updateBump,
		}
		flags := cmd.Flags()
		if flags.Changed("name") {
			opts.NewName = &updateName
		}
		if flags.Changed("counter") {
			opts.Counter = &updateCounter
		}
		if flags.Changed("type") {
			opts.Type = &updateType
		}
		if flags.Changed("login") {
			opts.Login = &updateLogin
		}

		spinner, cleanup := startSpinner("Updating site...", verbose)
		defer cleanup()

		result, err := workflows.Update(context.Background(), opts)
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = ui.Done.Line("Updated " + ui.Site.Sprint(result.Site.Name) + " " + describeSite(result.Site))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [pattern]",
	Short: "List the sites in the document",
	Long: `Lists sites. A pattern filters by case-insensitive substring, or as a glob
when it contains *, ?, [ or {.

Examples:
  mpw list
  mpw list git
  mpw list "*.example"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		spinner, cleanup := startSpinner("Loading sites...", verbose)
		defer cleanup()

		result, err := workflows.List(context.Background(), workflows.ListOptions{
			DocumentOptions: documentOptions(),
			Pattern:         pattern,
		})
		if err != nil {
			return fail(spinner, err)
		}

		Logger.Debugf("Matched %d of %d sites", len(result.Sites), result.Total)
		if len(result.Sites) == 0 {
			if result.Total == 0 {
				spinner.FinalMSG = ui.Note.Line("No sites yet for "+ui.Highlight.Sprint(result.User)) + "\n" +
					ui.Hint.Line("Add one with "+ui.Code.Sprint("mpw add example.com"))
			} else {
				spinner.FinalMSG = ui.Note.Line("No sites match " + ui.Highlight.Sprint(pattern))
			}
			return nil
		}

		spinner.FinalMSG = fmt.Sprintf("%s sites of %s (%d of %d)\n\n%s",
			ui.Done, ui.Highlight.Sprint(result.User), len(result.Sites), result.Total, formatSiteTable(result.Sites))
		return nil
	},
}

func describeSite(s sites.Site) string {
	parts := []string{s.Class.String(), "counter " + strconv.FormatUint(uint64(s.Counter), 10)}
	if s.Login != "" {
		parts = append(parts, "login "+s.Login)
	}
	return ui.Muted.Sprint(strings.Join(parts, ", "))
}

func formatSiteTable(list []sites.Site) string {
	width := len("SITE")
	for _, s := range list {
		width = max(width, len([]rune(s.Name)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-23s  %7s  %s\n", utils.PadRight("SITE", width), "TYPE", "COUNTER", "LOGIN")
	for _, s := range list {
		fmt.Fprintf(&b, "%s  %-23s  %7d  %s\n", utils.PadRight(s.Name, width), s.Class, s.Counter, s.Login)
	}
	return b.String()
}
