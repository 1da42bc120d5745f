// Package workflows provides high-level orchestration for mpw commands.
//
// Workflows coordinate the configs, sites, algorithm, reconcile and audit
// packages to implement complete user-facing features. Each workflow handles
// a single command's business logic, independent of CLI concerns like flag
// parsing, spinners, passphrase prompts and output formatting.
//
// The cmd/ package is a thin layer that:
//   - Parses command-line flags and arguments
//   - Reads the passphrase when one is needed
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading the user config and resolving the site document
//   - Validating and mutating the document
//   - Deriving passwords
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Init: Creates an empty site document for a user
//   - Add, Remove, Update, List: Manage sites in the document
//   - Generate: Derives passwords for selected sites
//   - Import: Reconciles another document into the current one
//   - Export: Writes the document to another file and format
//   - Log: Reads and filters the audit log
//   - ShowConfig, SetDefaultType, SetFile: Manage user preferences
//
// # Error Handling
//
// Workflows return sentinel errors from the internal/errors package, wrapped
// with context. Use errors.Is() to check for specific conditions:
//
//	result, err := workflows.Import(ctx, opts)
//	if errors.Is(err, mpwerrors.ErrUserMismatch) {
//	    // The imported document belongs to another identity.
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Generate honours cancellation while the master secret is being derived.
package workflows
