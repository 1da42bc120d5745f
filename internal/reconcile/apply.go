package reconcile

import (
	"slices"

	"github.com/PolarWolf314/mpw/internal/sites"
)

// ApplyAdded appends an imported site that current does not have.
// A site whose name is already present is not added twice.
func ApplyAdded(current []sites.Site, site sites.Site) []sites.Site {
	out := slices.Clone(current)
	if slices.ContainsFunc(out, func(s sites.Site) bool { return s.Name == site.Name }) {
		return out
	}
	return append(out, site)
}

// ApplyReplacement replaces every current site named like site with site.
// Used to accept Newer and Conflicts entries.
func ApplyReplacement(current []sites.Site, site sites.Site) []sites.Site {
	out := slices.Clone(current)
	for i := range out {
		if out[i].Name == site.Name {
			out[i] = site
		}
	}
	return out
}

// Selection chooses which buckets of a MergeResult to apply.
type Selection struct {
	Added     bool
	Newer     bool
	Conflicts bool

	// Only restricts application to these site names when non-empty.
	Only []string
}

// Applied counts what Apply changed.
type Applied struct {
	Added   []sites.Site
	Updated []sites.Site
}

// Apply folds the selected buckets of result into current and returns the new list.
func Apply(current []sites.Site, result *MergeResult, sel Selection) ([]sites.Site, Applied) {
	var applied Applied
	out := slices.Clone(current)

	picked := func(s sites.Site) bool {
		return len(sel.Only) == 0 || slices.Contains(sel.Only, s.Name)
	}

	if sel.Newer {
		for _, s := range result.Newer {
			if picked(s) {
				out = ApplyReplacement(out, s)
				applied.Updated = append(applied.Updated, s)
			}
		}
	}
	if sel.Conflicts {
		for _, s := range result.Conflicts {
			if picked(s) {
				out = ApplyReplacement(out, s)
				applied.Updated = append(applied.Updated, s)
			}
		}
	}
	if sel.Added {
		for _, s := range result.Added {
			if picked(s) && !slices.ContainsFunc(out, func(c sites.Site) bool { return c.Name == s.Name }) {
				out = ApplyAdded(out, s)
				applied.Added = append(applied.Added, s)
			}
		}
	}
	return out, applied
}
