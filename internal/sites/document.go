package sites

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

// Document is the persisted site list of one user.
//
// Rendered passwords may be cached on the document for the lifetime of the
// process. The cache is never serialized and is dropped whenever the user,
// a site's name, counter or type changes, or ForgetPasswords is called.
type Document struct {
	User  string
	Sites []Site

	mu        sync.Mutex
	passwords map[string]string
}

// New returns an empty document for user.
func New(user string) *Document {
	return &Document{User: user}
}

// Index returns the position of the first site named name, or -1.
func (d *Document) Index(name string) int {
	return slices.IndexFunc(d.Sites, func(s Site) bool { return s.Name == name })
}

// Find returns the first site named name.
func (d *Document) Find(name string) (Site, bool) {
	if i := d.Index(name); i >= 0 {
		return d.Sites[i], true
	}
	return Site{}, false
}

// Names returns site names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Sites))
	for i, s := range d.Sites {
		names[i] = s.Name
	}
	return names
}

// Add appends site. Names must be unique within a document.
func (d *Document) Add(site Site) error {
	if err := site.Validate(); err != nil {
		return err
	}
	if d.Index(site.Name) >= 0 {
		return fmt.Errorf("%q: %w", site.Name, mpwerrors.ErrSiteExists)
	}
	d.Sites = append(d.Sites, site)
	return nil
}

// Remove deletes the site named name.
func (d *Document) Remove(name string) (Site, error) {
	i := d.Index(name)
	if i < 0 {
		return Site{}, fmt.Errorf("%q: %w", name, mpwerrors.ErrSiteNotFound)
	}
	removed := d.Sites[i]
	d.Sites = slices.Delete(d.Sites, i, i+1)
	d.forget(name)
	return removed, nil
}

// Update applies patch to the site named name and returns the result.
func (d *Document) Update(name string, patch Patch) (Site, error) {
	i := d.Index(name)
	if i < 0 {
		return Site{}, fmt.Errorf("%q: %w", name, mpwerrors.ErrSiteNotFound)
	}
	updated, derivationChanged, err := patch.apply(d.Sites[i])
	if err != nil {
		return Site{}, err
	}
	if updated.Name != name {
		if j := d.Index(updated.Name); j >= 0 && j != i {
			return Site{}, fmt.Errorf("%q: %w", updated.Name, mpwerrors.ErrSiteExists)
		}
	}
	d.Sites[i] = updated
	if derivationChanged {
		d.forget(name)
	}
	return updated, nil
}

// ReplaceSites swaps the whole site list, as after applying an import.
func (d *Document) ReplaceSites(sites []Site) {
	d.Sites = slices.Clone(sites)
	d.ForgetPasswords()
}

// SetUser changes the identity. Every cached password becomes stale.
func (d *Document) SetUser(user string) {
	d.User = user
	d.ForgetPasswords()
}

// Validate checks the user name, every site and name uniqueness.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.User) == "" {
		return fmt.Errorf("%w: %w", mpwerrors.ErrInvalidDocument, mpwerrors.ErrEmptyUserName)
	}
	seen := make(map[string]bool, len(d.Sites))
	for i, s := range d.Sites {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: site %d: %w", mpwerrors.ErrInvalidDocument, i+1, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %q: %w", mpwerrors.ErrInvalidDocument, s.Name, mpwerrors.ErrSiteExists)
		}
		seen[s.Name] = true
	}
	return nil
}

// Filter returns the sites matching pattern. A pattern with glob
// metacharacters is matched as a doublestar glob against the whole name,
// anything else as a case-insensitive substring. An empty pattern matches all.
func (d *Document) Filter(pattern string) ([]Site, error) {
	if pattern == "" {
		return slices.Clone(d.Sites), nil
	}

	var out []Site
	if strings.ContainsAny(pattern, "*?[{") {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
		for _, s := range d.Sites {
			if ok, _ := doublestar.Match(pattern, s.Name); ok {
				out = append(out, s)
			}
		}
		return out, nil
	}

	needle := strings.ToLower(pattern)
	for _, s := range d.Sites {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			out = append(out, s)
		}
	}
	return out, nil
}

// CachedPassword returns the rendered password remembered for name.
func (d *Document) CachedPassword(name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	pw, ok := d.passwords[name]
	return pw, ok
}

// CachePassword remembers a rendered password for name. Safe for concurrent use.
func (d *Document) CachePassword(name, password string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.passwords == nil {
		d.passwords = make(map[string]string)
	}
	d.passwords[name] = password
}

// ForgetPasswords drops every cached password, e.g. after a passphrase change.
func (d *Document) ForgetPasswords() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.passwords)
}

func (d *Document) forget(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.passwords, name)
}
