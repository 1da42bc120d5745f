package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/mpw/internal/audit"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/reconcile"
	"github.com/PolarWolf314/mpw/internal/sites"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	DocumentOptions

	// Source is the document to reconcile into the current one (.toml or .xml).
	Source string

	// Selection picks the buckets to apply. A zero Selection applies nothing.
	Selection reconcile.Selection

	// DryRun reports the reconciliation without writing the document.
	DryRun bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	Path   string
	Source string

	// Merge is the full classification of the imported sites.
	Merge *reconcile.MergeResult

	// Applied lists what was (or, for a dry run, would be) written.
	Applied reconcile.Applied

	DryRun bool
}

// Import reconciles the sites of another document into the current one.
//
// Returns ErrDocumentNotFound if the source does not exist.
// Returns ErrUserMismatch if the source belongs to a different user.
// Returns ErrMalformedMergeInput if either side holds an invalid site.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}

	source, err := utils.ExpandHome(opts.Source)
	if err != nil {
		return nil, err
	}
	imported, err := sites.Load(source)
	if err != nil {
		return nil, err
	}
	if imported.User != opened.Doc.User {
		return nil, fmt.Errorf("%w: %q is not %q", mpwerrors.ErrUserMismatch, imported.User, opened.Doc.User)
	}

	merge, err := reconcile.Reconcile(opened.Doc.Sites, imported.Sites)
	if err != nil {
		return nil, err
	}
	updated, applied := reconcile.Apply(opened.Doc.Sites, merge, opts.Selection)

	result := &ImportResult{
		Path:    opened.Path,
		Source:  source,
		Merge:   merge,
		Applied: applied,
		DryRun:  opts.DryRun,
	}
	if opts.DryRun {
		return result, nil
	}

	if len(applied.Added)+len(applied.Updated) > 0 {
		opened.Doc.ReplaceSites(updated)
		if err := opened.save(); err != nil {
			return nil, err
		}
	}

	entry := audit.LogWithUser(audit.OpImport)
	entry.Document = opened.Path
	entry.Mode = importMode(opts.Selection)
	entry.AddedCount = len(applied.Added)
	entry.UpdatedCount = len(applied.Updated)
	audit.Log(entry)

	return result, nil
}

func importMode(sel reconcile.Selection) string {
	var parts []string
	if sel.Added {
		parts = append(parts, "added")
	}
	if sel.Newer {
		parts = append(parts, "newer")
	}
	if sel.Conflicts {
		parts = append(parts, "conflicts")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
