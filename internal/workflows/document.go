package workflows

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/mpw/internal/configs"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/sites"
)

// DocumentOptions selects the site document a workflow operates on.
type DocumentOptions struct {
	// File is the --file flag value. Empty means last_file, then the default path.
	File string
}

// openedDocument bundles what most workflows need after resolving the document.
type openedDocument struct {
	Path   string
	Doc    *sites.Document
	Config *configs.UserConfig
}

// ResolveDocument returns the absolute path of the document opts refers to.
func ResolveDocument(opts DocumentOptions) (string, error) {
	config, err := configs.LoadUserConfig()
	if err != nil {
		return "", err
	}
	return configs.ResolveDocumentPath(opts.File, config)
}

// openDocument resolves and loads the site document.
//
// Returns ErrDocumentNotFound if the document does not exist.
func openDocument(opts DocumentOptions) (*openedDocument, error) {
	config, err := configs.EnsureUserConfig()
	if err != nil {
		return nil, err
	}

	path, err := configs.ResolveDocumentPath(opts.File, config)
	if err != nil {
		return nil, err
	}

	doc, err := sites.Load(path)
	if err != nil {
		if errors.Is(err, mpwerrors.ErrDocumentNotFound) {
			return nil, fmt.Errorf("%w: %s (run `mpw init` first)", mpwerrors.ErrDocumentNotFound, path)
		}
		return nil, err
	}

	return &openedDocument{Path: path, Doc: doc, Config: config}, nil
}

// save writes the document and remembers it as last_file.
func (o *openedDocument) save() error {
	if err := sites.Save(o.Path, o.Doc); err != nil {
		return fmt.Errorf("saving %s: %w", o.Path, err)
	}
	o.remember()
	return nil
}

// remember stores the document path as last_file. A config write failure is not fatal.
func (o *openedDocument) remember() {
	if o.Config != nil && o.Config.Preferences.LastFile == o.Path {
		return
	}
	_ = configs.RememberLastFile(o.Path)
}
