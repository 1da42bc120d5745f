package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/mpw/internal/audit"
	"github.com/PolarWolf314/mpw/internal/configs"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/sites"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	DocumentOptions

	// User is the full name used as the Master Password identity.
	User string

	// Force overwrites an existing document.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	Path string
	User string
}

// Init creates an empty site document for a user.
//
// Returns ErrEmptyUserName if no user name is given.
// Returns ErrDocumentExists if the document exists and Force is not set.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	user := strings.TrimSpace(opts.User)
	if user == "" {
		return nil, mpwerrors.ErrEmptyUserName
	}

	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, err
	}
	path, err := configs.ResolveDocumentPath(opts.File, config)
	if err != nil {
		return nil, err
	}

	exists, err := utils.FileExists(path)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s", mpwerrors.ErrDocumentExists, path)
	}

	opened := &openedDocument{Path: path, Doc: sites.New(user), Config: config}
	if err := opened.save(); err != nil {
		return nil, err
	}

	entry := audit.LogWithUser(audit.OpInit)
	entry.Identity = user
	entry.Document = path
	audit.Log(entry)

	return &InitResult{Path: path, User: user}, nil
}
