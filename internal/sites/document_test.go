package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/mpw/internal/algorithm"
	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

func ptr[T any](v T) *T { return &v }

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	doc := New("John Doe")
	require.NoError(t, doc.Add(NewSite("github.com")))
	require.NoError(t, doc.Add(Site{Name: "gitlab.com", Counter: 3, Class: algorithm.PIN, Login: "jd"}))
	require.NoError(t, doc.Add(NewSite("ribeyesteaks.com")))
	return doc
}

func TestNewSiteDefaults(t *testing.T) {
	s := NewSite("example.com")
	assert.Equal(t, uint32(1), s.Counter)
	assert.Equal(t, algorithm.LongPassword, s.Class)
	assert.Empty(t, s.Login)
	assert.NoError(t, s.Validate())
}

func TestSiteValidate(t *testing.T) {
	assert.ErrorIs(t, Site{Counter: 1, Class: algorithm.PIN}.Validate(), mpwerrors.ErrEmptySiteName)
	assert.ErrorIs(t, Site{Name: "a", Class: algorithm.PIN}.Validate(), mpwerrors.ErrInvalidCounter)
	assert.ErrorIs(t, Site{Name: "a", Counter: 1}.Validate(), mpwerrors.ErrUnknownPasswordClass)
}

func TestAddRejectsDuplicates(t *testing.T) {
	doc := sampleDocument(t)
	err := doc.Add(NewSite("github.com"))
	assert.ErrorIs(t, err, mpwerrors.ErrSiteExists)

	// Names are case-sensitive.
	assert.NoError(t, doc.Add(NewSite("GitHub.com")))
	assert.Equal(t, []string{"github.com", "gitlab.com", "ribeyesteaks.com", "GitHub.com"}, doc.Names())
}

func TestRemove(t *testing.T) {
	doc := sampleDocument(t)
	removed, err := doc.Remove("gitlab.com")
	require.NoError(t, err)
	assert.Equal(t, "jd", removed.Login)
	assert.Equal(t, []string{"github.com", "ribeyesteaks.com"}, doc.Names())

	_, err = doc.Remove("gitlab.com")
	assert.ErrorIs(t, err, mpwerrors.ErrSiteNotFound)
}

func TestUpdate(t *testing.T) {
	doc := sampleDocument(t)

	updated, err := doc.Update("github.com", Patch{Login: ptr("octocat"), Bump: true})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), updated.Counter)
	assert.Equal(t, "octocat", updated.Login)

	_, err = doc.Update("github.com", Patch{Name: ptr("gitlab.com")})
	assert.ErrorIs(t, err, mpwerrors.ErrSiteExists)

	_, err = doc.Update("github.com", Patch{Counter: ptr(uint32(0))})
	assert.ErrorIs(t, err, mpwerrors.ErrInvalidCounter)
	site, _ := doc.Find("github.com")
	assert.Equal(t, uint32(2), site.Counter, "failed update must not change the site")

	_, err = doc.Update("missing.com", Patch{Bump: true})
	assert.ErrorIs(t, err, mpwerrors.ErrSiteNotFound)

	renamed, err := doc.Update("github.com", Patch{Name: ptr("github.io"), Class: ptr(algorithm.MediumPassword)})
	require.NoError(t, err)
	assert.Equal(t, "github.io", renamed.Name)
	assert.Equal(t, algorithm.MediumPassword, renamed.Class)
	_, ok := doc.Find("github.com")
	assert.False(t, ok)
}

func TestPasswordCacheInvalidation(t *testing.T) {
	doc := sampleDocument(t)
	doc.CachePassword("github.com", "cached-1")
	doc.CachePassword("gitlab.com", "cached-2")

	// Login edits do not change the derived password.
	_, err := doc.Update("github.com", Patch{Login: ptr("octocat")})
	require.NoError(t, err)
	pw, ok := doc.CachedPassword("github.com")
	assert.True(t, ok)
	assert.Equal(t, "cached-1", pw)

	_, err = doc.Update("github.com", Patch{Bump: true})
	require.NoError(t, err)
	_, ok = doc.CachedPassword("github.com")
	assert.False(t, ok, "counter change must drop the cached password")

	_, err = doc.Update("gitlab.com", Patch{Class: ptr(algorithm.LongPassword)})
	require.NoError(t, err)
	_, ok = doc.CachedPassword("gitlab.com")
	assert.False(t, ok, "type change must drop the cached password")

	doc.CachePassword("ribeyesteaks.com", "cached-3")
	doc.SetUser("Jane Doe")
	_, ok = doc.CachedPassword("ribeyesteaks.com")
	assert.False(t, ok, "user change must drop every cached password")

	doc.CachePassword("ribeyesteaks.com", "cached-4")
	_, err = doc.Remove("ribeyesteaks.com")
	require.NoError(t, err)
	_, ok = doc.CachedPassword("ribeyesteaks.com")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	doc := sampleDocument(t)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"github.com", "gitlab.com", "ribeyesteaks.com"}},
		{"git", []string{"github.com", "gitlab.com"}},
		{"GIT", []string{"github.com", "gitlab.com"}},
		{"steak", []string{"ribeyesteaks.com"}},
		{"git*.com", []string{"github.com", "gitlab.com"}},
		{"*hub*", []string{"github.com"}},
		{"{github,ribeyesteaks}.com", []string{"github.com", "ribeyesteaks.com"}},
		{"nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := doc.Filter(tt.pattern)
			require.NoError(t, err)
			var names []string
			for _, s := range got {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	_, err := doc.Filter("git[")
	assert.Error(t, err)
}

func TestDocumentValidate(t *testing.T) {
	doc := sampleDocument(t)
	assert.NoError(t, doc.Validate())

	doc.User = " "
	assert.ErrorIs(t, doc.Validate(), mpwerrors.ErrInvalidDocument)

	doc = sampleDocument(t)
	doc.Sites = append(doc.Sites, NewSite("github.com"))
	err := doc.Validate()
	assert.ErrorIs(t, err, mpwerrors.ErrInvalidDocument)
	assert.ErrorIs(t, err, mpwerrors.ErrSiteExists)
}

func TestReplaceSitesCopiesInput(t *testing.T) {
	doc := sampleDocument(t)
	doc.CachePassword("github.com", "x")

	next := []Site{NewSite("a.com")}
	doc.ReplaceSites(next)
	next[0].Name = "mutated"

	assert.Equal(t, []string{"a.com"}, doc.Names())
	_, ok := doc.CachedPassword("github.com")
	assert.False(t, ok)
}
