package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	"github.com/PolarWolf314/mpw/internal/sites"
)

func TestApplyAdded(t *testing.T) {
	current := []sites.Site{long("a", 1, "")}
	out := ApplyAdded(current, long("b", 1, ""))
	assert.Equal(t, []string{"a", "b"}, names(out))
	assert.Len(t, current, 1, "input must not change")

	out = ApplyAdded(out, long("a", 9, ""))
	assert.Equal(t, []string{"a", "b"}, names(out))
	assert.Equal(t, uint32(1), out[0].Counter)
}

func TestApplyReplacement(t *testing.T) {
	current := []sites.Site{long("a", 1, ""), long("b", 1, ""), long("a", 2, "")}
	out := ApplyReplacement(current, long("a", 5, "me"))

	assert.Equal(t, long("a", 5, "me"), out[0])
	assert.Equal(t, long("b", 1, ""), out[1])
	assert.Equal(t, long("a", 5, "me"), out[2])
	assert.Equal(t, uint32(1), current[0].Counter, "input must not change")
}

func TestApply(t *testing.T) {
	current := []sites.Site{
		long("same", 1, ""),
		long("bumped", 1, ""),
		site("retyped", 1, algorithm.PIN, ""),
		long("older", 4, ""),
		long("local-only", 1, ""),
	}
	imported := []sites.Site{
		long("same", 1, ""),
		long("bumped", 2, ""),
		long("retyped", 1, ""),
		long("older", 3, ""),
		long("new", 1, "me"),
	}

	result, err := Reconcile(current, imported)
	require.NoError(t, err)
	require.True(t, result.Actionable())

	t.Run("nothing selected", func(t *testing.T) {
		out, applied := Apply(current, result, Selection{})
		assert.Equal(t, current, out)
		assert.Empty(t, applied.Added)
		assert.Empty(t, applied.Updated)
	})

	t.Run("newer and added", func(t *testing.T) {
		out, applied := Apply(current, result, Selection{Added: true, Newer: true})
		assert.Equal(t, []string{"same", "bumped", "retyped", "older", "local-only", "new"}, names(out))
		assert.Equal(t, uint32(2), out[1].Counter)
		assert.Equal(t, algorithm.PIN, out[2].Class, "conflicts are not applied unless selected")
		assert.Equal(t, uint32(4), out[3].Counter, "older entries are never applied")
		assert.Equal(t, []string{"new"}, names(applied.Added))
		assert.Equal(t, []string{"bumped"}, names(applied.Updated))
	})

	t.Run("conflicts only for named sites", func(t *testing.T) {
		out, applied := Apply(current, result, Selection{Conflicts: true, Newer: true, Only: []string{"retyped"}})
		assert.Equal(t, algorithm.LongPassword, out[2].Class)
		assert.Equal(t, uint32(1), out[1].Counter)
		assert.Equal(t, []string{"retyped"}, names(applied.Updated))
	})
}
