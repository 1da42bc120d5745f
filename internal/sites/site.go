package sites

import (
	"fmt"
	"math"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

// DefaultCounter is the counter of a newly added site.
const DefaultCounter uint32 = 1

// Site is one entry of the site list. Name is the reconciliation key and is
// compared exactly, without case folding or trimming.
type Site struct {
	Name    string
	Counter uint32
	Class   algorithm.PasswordClass
	Login   string
}

// NewSite returns a site with counter 1, LongPassword and no login.
func NewSite(name string) Site {
	return Site{
		Name:    name,
		Counter: DefaultCounter,
		Class:   algorithm.DefaultClass,
	}
}

// Validate checks the fields every stored site must have.
func (s Site) Validate() error {
	if s.Name == "" {
		return mpwerrors.ErrEmptySiteName
	}
	if s.Counter == 0 {
		return fmt.Errorf("site %q: %w", s.Name, mpwerrors.ErrInvalidCounter)
	}
	if !s.Class.Valid() {
		return fmt.Errorf("site %q: %w", s.Name, mpwerrors.ErrUnknownPasswordClass)
	}
	return nil
}

// Bump returns the site with its counter incremented, used to rotate a password.
func (s Site) Bump() (Site, error) {
	if s.Counter == math.MaxUint32 {
		return s, fmt.Errorf("site %q: %w", s.Name, mpwerrors.ErrInvalidCounter)
	}
	s.Counter++
	return s, nil
}

// Patch describes an edit to a site. Nil fields are left unchanged.
type Patch struct {
	Name    *string
	Counter *uint32
	Class   *algorithm.PasswordClass
	Login   *string
	Bump    bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Name == nil && p.Counter == nil && p.Class == nil && p.Login == nil && !p.Bump
}

// apply returns the patched site and whether a field that feeds the derivation changed.
func (p Patch) apply(s Site) (Site, bool, error) {
	before := s
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Counter != nil {
		s.Counter = *p.Counter
	}
	if p.Class != nil {
		s.Class = *p.Class
	}
	if p.Login != nil {
		s.Login = *p.Login
	}
	if p.Bump {
		var err error
		if s, err = s.Bump(); err != nil {
			return before, false, err
		}
	}
	if err := s.Validate(); err != nil {
		return before, false, err
	}
	derivationChanged := s.Name != before.Name || s.Counter != before.Counter || s.Class != before.Class
	return s, derivationChanged, nil
}
