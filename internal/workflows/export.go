package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/mpw/internal/audit"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/sites"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	DocumentOptions

	// OutputPath is the destination. Its extension picks the format.
	OutputPath string

	// Force overwrites an existing destination.
	Force bool
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	Path       string
	OutputPath string
	Format     sites.Format
	SiteCount  int
}

// Export writes the document to another file, converting between TOML and
// XML by extension. Cached passwords are never written.
//
// Returns ErrUnsupportedFormat for an unknown extension.
// Returns ErrDocumentExists if the destination exists and Force is not set.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}

	output, err := utils.ExpandHome(opts.OutputPath)
	if err != nil {
		return nil, err
	}
	if output, err = filepath.Abs(output); err != nil {
		return nil, err
	}
	format, err := sites.FormatFor(output)
	if err != nil {
		return nil, err
	}
	if output == opened.Path {
		return nil, fmt.Errorf("%w: cannot export onto the current document %s", mpwerrors.ErrDocumentExists, output)
	}

	exists, err := utils.FileExists(output)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", mpwerrors.ErrDocumentExists, output)
	}

	if err := sites.Save(output, opened.Doc); err != nil {
		return nil, fmt.Errorf("writing %s: %w", output, err)
	}
	opened.remember()

	entry := audit.LogWithUser(audit.OpExport)
	entry.Document = opened.Path
	entry.OutputPath = output
	audit.Log(entry)

	return &ExportResult{
		Path:       opened.Path,
		OutputPath: output,
		Format:     format,
		SiteCount:  len(opened.Doc.Sites),
	}, nil
}
