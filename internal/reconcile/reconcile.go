package reconcile

import (
	"fmt"
	"slices"
	"unicode/utf16"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/sites"
)

// Outcome is the bucket a paired imported site is placed in.
type Outcome int

const (
	Unchanged Outcome = iota
	Newer
	Older
	Conflict
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Newer:
		return "newer"
	case Older:
		return "older"
	case Conflict:
		return "conflict"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MergeResult sorts two site lists into disjoint buckets.
//
// Unchanged, Newer, Older, Conflicts and Added hold imported records.
// Missing holds current records with no imported counterpart.
type MergeResult struct {
	Unchanged []sites.Site
	Added     []sites.Site
	Missing   []sites.Site
	Older     []sites.Site
	Newer     []sites.Site
	Conflicts []sites.Site
}

// Len returns the number of imported records in the result.
func (r *MergeResult) Len() int {
	return len(r.Unchanged) + len(r.Added) + len(r.Older) + len(r.Newer) + len(r.Conflicts)
}

// Actionable reports whether any bucket holds records that could be applied.
func (r *MergeResult) Actionable() bool {
	return len(r.Added)+len(r.Newer)+len(r.Conflicts) > 0
}

// Reconcile pairs every current site with the first imported site of the
// same name and classifies the imported one. Unpaired current sites are
// Missing, unpaired imported sites are Added. Neither input is modified.
//
// Newer and Older are guesses: a larger counter, or at equal counter and
// type a longer login, is taken to be newer. Equal-length logins and type
// changes cannot be ordered and are Conflicts.
func Reconcile(current, imported []sites.Site) (*MergeResult, error) {
	if err := validate("current", current); err != nil {
		return nil, err
	}
	if err := validate("imported", imported); err != nil {
		return nil, err
	}

	result := &MergeResult{}
	pool := slices.Clone(imported)

	for _, site := range current {
		i := slices.IndexFunc(pool, func(p sites.Site) bool { return p.Name == site.Name })
		if i < 0 {
			result.Missing = append(result.Missing, site)
			continue
		}
		partner := pool[i]
		pool = slices.Delete(pool, i, i+1)

		switch Classify(site, partner) {
		case Unchanged:
			result.Unchanged = append(result.Unchanged, partner)
		case Newer:
			result.Newer = append(result.Newer, partner)
		case Older:
			result.Older = append(result.Older, partner)
		case Conflict:
			result.Conflicts = append(result.Conflicts, partner)
		}
	}

	result.Added = append(result.Added, pool...)
	return result, nil
}

// Classify compares an imported site against the current site with the same name.
func Classify(current, imported sites.Site) Outcome {
	if current.Class == imported.Class && current.Counter == imported.Counter && current.Login == imported.Login {
		return Unchanged
	}
	if current.Counter != imported.Counter {
		if imported.Counter > current.Counter {
			return Newer
		}
		return Older
	}
	if current.Class != imported.Class {
		return Conflict
	}

	importedLen := loginLength(imported.Login)
	currentLen := loginLength(current.Login)
	switch {
	case importedLen > currentLen:
		return Newer
	case importedLen < currentLen:
		return Older
	default:
		return Conflict
	}
}

// loginLength counts UTF-16 code units, the length the desktop app compares.
func loginLength(login string) int {
	return len(utf16.Encode([]rune(login)))
}

func validate(side string, list []sites.Site) error {
	for i, s := range list {
		if s.Name == "" {
			return fmt.Errorf("%s site %d has no name: %w", side, i+1, mpwerrors.ErrMalformedMergeInput)
		}
		if s.Counter == 0 {
			return fmt.Errorf("%s site %q has counter 0: %w", side, s.Name, mpwerrors.ErrMalformedMergeInput)
		}
	}
	return nil
}
