package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/ui"
	"github.com/PolarWolf314/mpw/internal/utils"
	"github.com/PolarWolf314/mpw/internal/workflows"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do not need trailing newlines; the cleanup function
// runs them through ui.EnsureNewline() before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Printed to stdout so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

func documentOptions() workflows.DocumentOptions {
	return workflows.DocumentOptions{File: documentFile}
}

// readPassphrase reads the master passphrase from piped stdin or prompts for it without echo.
func readPassphrase(fromStdin bool) ([]byte, error) {
	if fromStdin {
		Logger.Debugf("Reading passphrase from stdin")
		return utils.ReadPassphraseStdin()
	}
	Logger.Debugf("Prompting for passphrase")
	return utils.ReadPassphrase("Master passphrase: ")
}

// formatError formats a workflow error for display to the user.
func formatError(err error) string {
	hint := func(msg string) string { return ui.Fail.Line(err.Error()) + "\n" + ui.Hint.Line(msg) }

	switch {
	case errors.Is(err, mpwerrors.ErrDocumentNotFound):
		return ui.Fail.Line("No site document found") + "\n" +
			ui.Hint.Line("Run "+ui.Code.Sprint("mpw init --user \"Your Name\"")+" first, or pass "+ui.Flag.Sprint("--file"))

	case errors.Is(err, mpwerrors.ErrDocumentExists):
		return hint("Use " + ui.Flag.Sprint("--force") + " to overwrite it")

	case errors.Is(err, mpwerrors.ErrSiteNotFound):
		return hint("Run " + ui.Code.Sprint("mpw list") + " to see your sites")

	case errors.Is(err, mpwerrors.ErrSiteExists):
		return hint("Use " + ui.Code.Sprint("mpw update") + " to change an existing site")

	case errors.Is(err, mpwerrors.ErrUnknownPasswordClass):
		return hint("Run " + ui.Code.Sprint("mpw classes") + " to see valid password types")

	case errors.Is(err, mpwerrors.ErrUserMismatch):
		return ui.Fail.Line("The document belongs to a different user: "+err.Error()) + "\n" +
			ui.Hint.Line("Passwords derived for another name would not match")

	case errors.Is(err, mpwerrors.ErrNoSitesSelected):
		return ui.Fail.Line("No sites selected") + "\n" +
			ui.Hint.Line("Name one or more sites, or use "+ui.Flag.Sprint("--all"))

	case errors.Is(err, mpwerrors.ErrNoAuditLog):
		return ui.Note.Line("No audit log found. Operations are logged once you run a command that changes or uses the document.")

	default:
		return ui.Fail.Line(err.Error())
	}
}

// isUnexpectedError returns true if the error should cause a non-zero exit.
func isUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, mpwerrors.ErrNoAuditLog):
		return false
	default:
		return true
	}
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// fail shows err through the spinner's final message and returns what RunE should return.
func fail(s *spinner.Spinner, err error) error {
	Logger.Debugf("Command failed: %v", err)
	s.FinalMSG = formatError(err)
	if !isUnexpectedError(err) {
		return nil
	}
	return &reportedError{err: err}
}
