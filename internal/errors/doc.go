// Package errors provides typed error values for the mpw application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Derivation errors: stage failures (ErrStretchFailure, ErrSigningFailure)
//   - Reconciliation errors: bad merge input (ErrMalformedMergeInput)
//   - Document errors: persisted site list issues (ErrDocumentNotFound)
//   - Site errors: record lookups (ErrSiteNotFound, ErrSiteExists)
//
// # Usage
//
// Return errors from internal packages:
//
//	if userName == "" {
//	    return nil, errors.ErrEmptyUserName
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Generate(ctx, opts)
//	if errors.Is(err, mpwerrors.ErrDocumentNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("site %q: %w", name, errors.ErrSiteNotFound)
package errors
