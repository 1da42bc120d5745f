package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/utils"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

var (
	generateAll             bool
	generatePattern         string
	generatePassphraseStdin bool
	generateParallel        int
	generateShowKeyID       bool
)

func init() {
	generateCmd.Flags().BoolVarP(&generateAll, "all", "a", false, "generate passwords for every site")
	generateCmd.Flags().StringVar(&generatePattern, "match", "", "generate passwords for sites matching a pattern (as in mpw list)")
	generateCmd.Flags().BoolVar(&generatePassphraseStdin, "passphrase-stdin", false, "read the master passphrase from the first line of stdin")
	generateCmd.Flags().IntVarP(&generateParallel, "parallel", "p", 0, "render at most N sites at once (default: number of CPUs)")
	generateCmd.Flags().BoolVar(&generateShowKeyID, "show-key-id", false, "print the key ID of the master secret")
}

// resetGenerateCommandState resets the generate command's global state for testing.
func resetGenerateCommandState() {
	generateAll = false
	generatePattern = ""
	generatePassphraseStdin = false
	generateParallel = 0
	generateShowKeyID = false
}

var generateCmd = &cobra.Command{
	Use:     "generate [site...]",
	Aliases: []string{"gen"},
	Short:   "Derive site passwords from your master passphrase",
	Long: `Prompts for your master passphrase and prints the passwords of the given sites.

The passphrase is read without echo and never stored. The key ID is a
fingerprint of the derived master secret: if it differs from the one you
saw before, you mistyped the passphrase.

Examples:
  mpw generate github.com
  mpw generate --all --show-key-id
  mpw generate --match "*.example"
  echo "$PASS" | mpw generate github.com --passphrase-stdin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")

		if len(args) == 0 && !generateAll && generatePattern == "" {
			return Logger.ErrorfAndReturn("name at least one site, or use --all or --match")
		}

		passphrase, err := readPassphrase(generatePassphraseStdin)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read passphrase: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		spinner, cleanup := startSpinner("Deriving master key...", verbose)
		defer cleanup()

		result, err := workflows.Generate(ctx, workflows.GenerateOptions{
			DocumentOptions: documentOptions(),
			Sites:           args,
			Pattern:         generatePattern,
			All:             generateAll,
			Passphrase:      passphrase, // wiped by Generate
			Parallelism:     generateParallel,
		})
		if err != nil {
			return fail(spinner, err)
		}

		Logger.Infof("Generated %d passwords from %s", len(result.Passwords), result.Path)
		spinner.FinalMSG = formatPasswords(result, generateShowKeyID)
		return nil
	},
}

// formatPasswords prints a bare password for a single site so it can be piped.
func formatPasswords(result *workflows.GenerateResult, showKeyID bool) string {
	var b strings.Builder
	if showKeyID {
		fmt.Fprintf(&b, "%s Key ID for %s: %s\n", ui.Hint, ui.Highlight.Sprint(result.User), result.KeyID)
	}

	if len(result.Passwords) == 1 && !showKeyID {
		b.WriteString(result.Passwords[0].Password)
		return b.String()
	}

	width := 0
	for _, p := range result.Passwords {
		width = max(width, len([]rune(p.Site)))
	}
	for _, p := range result.Passwords {
		line := utils.PadRight(p.Site, width) + "  " + ui.Password.Sprint(p.Password)
		if p.Login != "" {
			line += "  " + ui.Muted.Sprint(p.Login)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
