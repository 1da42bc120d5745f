package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	"github.com/PolarWolf314/mpw/internal/audit"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/sites"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	DocumentOptions

	Name    string
	Counter uint32
	// Type is a class name or alias. Empty uses default_type from the user config.
	Type  string
	Login string
}

// SiteResult is returned by workflows that change a single site.
type SiteResult struct {
	Path string
	Site sites.Site
}

// Add appends a new site to the document.
//
// Returns ErrSiteExists if a site with the same name is present.
// Returns ErrUnknownPasswordClass for an invalid type.
func Add(ctx context.Context, opts AddOptions) (*SiteResult, error) {
	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}

	site := sites.NewSite(opts.Name)
	if opts.Counter != 0 {
		site.Counter = opts.Counter
	}
	site.Login = opts.Login
	if opts.Type != "" {
		if site.Class, err = algorithm.ParsePasswordClass(opts.Type); err != nil {
			return nil, err
		}
	} else if site.Class, err = opened.Config.DefaultClass(); err != nil {
		return nil, err
	}

	if err := opened.Doc.Add(site); err != nil {
		return nil, err
	}
	if err := opened.save(); err != nil {
		return nil, err
	}

	logSites(audit.OpAdd, opened.Path, site.Name)
	return &SiteResult{Path: opened.Path, Site: site}, nil
}

// RemoveOptions configures the remove workflow.
type RemoveOptions struct {
	DocumentOptions
	Name string
}

// Remove deletes a site from the document.
//
// Returns ErrSiteNotFound if no site has the given name.
func Remove(ctx context.Context, opts RemoveOptions) (*SiteResult, error) {
	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}

	removed, err := opened.Doc.Remove(opts.Name)
	if err != nil {
		return nil, err
	}
	if err := opened.save(); err != nil {
		return nil, err
	}

	logSites(audit.OpRemove, opened.Path, removed.Name)
	return &SiteResult{Path: opened.Path, Site: removed}, nil
}

// UpdateOptions configures the update workflow. Nil fields are unchanged.
type UpdateOptions struct {
	DocumentOptions

	Name    string
	NewName *string
	Counter *uint32
	Type    *string
	Login   *string
	// Bump increments the counter, generating a fresh password for the site.
	Bump bool
}

// Update edits one site.
//
// Returns ErrSiteNotFound if no site has the given name.
// Returns ErrSiteExists if NewName is taken by another site.
func Update(ctx context.Context, opts UpdateOptions) (*SiteResult, error) {
	patch := sites.Patch{Name: opts.NewName, Counter: opts.Counter, Login: opts.Login, Bump: opts.Bump}
	if opts.Type != nil {
		class, err := algorithm.ParsePasswordClass(*opts.Type)
		if err != nil {
			return nil, err
		}
		patch.Class = &class
	}
	if patch.Empty() {
		return nil, fmt.Errorf("nothing to update for %q", opts.Name)
	}

	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}

	updated, err := opened.Doc.Update(opts.Name, patch)
	if err != nil {
		return nil, err
	}
	if err := opened.save(); err != nil {
		return nil, err
	}

	logSites(audit.OpUpdate, opened.Path, updated.Name)
	return &SiteResult{Path: opened.Path, Site: updated}, nil
}

// ListOptions configures the list workflow.
type ListOptions struct {
	DocumentOptions

	// Pattern filters by substring, or by glob when it has metacharacters.
	Pattern string
}

// ListResult contains the sites to display.
type ListResult struct {
	Path  string
	User  string
	Sites []sites.Site
	Total int
}

// List returns the document's sites, optionally filtered.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	opened, err := openDocument(opts.DocumentOptions)
	if err != nil {
		return nil, err
	}

	matched, err := opened.Doc.Filter(opts.Pattern)
	if err != nil {
		return nil, err
	}
	opened.remember()

	return &ListResult{
		Path:  opened.Path,
		User:  opened.Doc.User,
		Sites: matched,
		Total: len(opened.Doc.Sites),
	}, nil
}

// selectSites resolves site names or a filter pattern against the document.
//
// Returns ErrSiteNotFound for an unknown name, ErrNoSitesSelected if nothing matched.
func selectSites(doc *sites.Document, names []string, pattern string, all bool) ([]sites.Site, error) {
	var selected []sites.Site
	switch {
	case all:
		selected = append(selected, doc.Sites...)
	case pattern != "":
		matched, err := doc.Filter(pattern)
		if err != nil {
			return nil, err
		}
		selected = matched
	default:
		var missing []string
		for _, name := range names {
			s, ok := doc.Find(name)
			if !ok {
				missing = append(missing, name)
				continue
			}
			selected = append(selected, s)
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("%w: %s", mpwerrors.ErrSiteNotFound, strings.Join(missing, ", "))
		}
	}
	if len(selected) == 0 {
		return nil, mpwerrors.ErrNoSitesSelected
	}
	return selected, nil
}

func logSites(op, path string, names ...string) {
	entry := audit.LogWithUser(op)
	entry.Document = path
	entry.Sites = names
	audit.Log(entry)
}
