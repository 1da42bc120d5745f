package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/mpw/internal/reconcile"
	"github.com/PolarWolf314/mpw/internal/sites"
	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/utils"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

var (
	importAddFlag       bool
	importNewerFlag     bool
	importConflictsFlag bool
	importOnlyFlag      string
	importDryRunFlag    bool
)

func init() {
	importCmd.Flags().BoolVar(&importAddFlag, "add", false, "add sites you do not have yet")
	importCmd.Flags().BoolVar(&importNewerFlag, "newer", false, "replace sites with the newer imported version")
	importCmd.Flags().BoolVar(&importConflictsFlag, "conflicts", false, "replace conflicting sites with the imported version")
	importCmd.Flags().StringVar(&importOnlyFlag, "only", "", "apply changes only to these sites (comma-separated)")
	importCmd.Flags().BoolVar(&importDryRunFlag, "dry-run", false, "show what would change without writing the document")
}

// resetImportCommandState resets the import command's global state for testing.
func resetImportCommandState() {
	importAddFlag = false
	importNewerFlag = false
	importConflictsFlag = false
	importOnlyFlag = ""
	importDryRunFlag = false
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge sites from another document",
	Long: `Compares another site document of the same user with yours and sorts its
sites into buckets:

  unchanged  identical in both
  added      only in the imported document
  missing    only in yours
  newer      imported looks newer (higher counter, or longer login)
  older      imported looks older
  conflicts  cannot be ordered (type changed, or same-length login)

Nothing is applied unless you choose buckets with --add, --newer and
--conflicts. Newer and conflicting sites replace yours; added sites are
appended. Missing and older sites are never touched.

Examples:
  mpw import laptop.mpsites.xml                  # Preview only
  mpw import laptop.mpsites.xml --add --newer
  mpw import laptop.toml --conflicts --only github.com
  mpw import laptop.toml --add --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")

		selection := reconcile.Selection{
			Added:     importAddFlag,
			Newer:     importNewerFlag,
			Conflicts: importConflictsFlag,
			Only:      utils.SplitList(importOnlyFlag),
		}
		Logger.Debugf("Import selection: %+v, dry-run: %v", selection, importDryRunFlag)

		spinner, cleanup := startSpinner("Reconciling sites...", verbose)
		defer cleanup()

		result, err := workflows.Import(context.Background(), workflows.ImportOptions{
			DocumentOptions: documentOptions(),
			Source:          args[0],
			Selection:       selection,
			DryRun:          importDryRunFlag,
		})
		if err != nil {
			return fail(spinner, err)
		}

		spinner.FinalMSG = formatImport(result, selection)
		return nil
	},
}

func formatImport(result *workflows.ImportResult, selection reconcile.Selection) string {
	var b strings.Builder
	if result.DryRun {
		b.WriteString(ui.Info.Sprint("Dry run") + " - no changes made\n\n")
	}
	fmt.Fprintf(&b, "Compared %s with %s\n\n", ui.Path.Sprint(result.Source), ui.Path.Sprint(result.Path))

	buckets := []struct {
		name  string
		sites []sites.Site
	}{
		{"Unchanged", result.Merge.Unchanged},
		{"Added", result.Merge.Added},
		{"Missing", result.Merge.Missing},
		{"Newer", result.Merge.Newer},
		{"Older", result.Merge.Older},
		{"Conflicts", result.Merge.Conflicts},
	}
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "%-10s %d", bucket.name+":", len(bucket.sites))
		if len(bucket.sites) > 0 && bucket.name != "Unchanged" {
			names := make([]string, len(bucket.sites))
			for i, s := range bucket.sites {
				names[i] = s.Name
			}
			b.WriteString(utils.FormatNames(names))
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	applied := len(result.Applied.Added) + len(result.Applied.Updated)
	switch {
	case !selection.Added && !selection.Newer && !selection.Conflicts:
		if result.Merge.Actionable() {
			b.WriteString(ui.Hint.Line("Apply changes with " + ui.Flag.Sprint("--add") + ", " +
				ui.Flag.Sprint("--newer") + " or " + ui.Flag.Sprint("--conflicts")))
		} else {
			b.WriteString(ui.Done.Line("Nothing to import"))
		}
	case applied == 0:
		b.WriteString(ui.Note.Line("No selected changes to apply"))
	case result.DryRun:
		fmt.Fprintf(&b, "%s Would add %d and update %d sites", ui.Hint, len(result.Applied.Added), len(result.Applied.Updated))
	default:
		fmt.Fprintf(&b, "%s Added %d and updated %d sites", ui.Done, len(result.Applied.Added), len(result.Applied.Updated))
	}
	return b.String()
}
