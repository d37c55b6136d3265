package menu

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeFor(itemURL, requestURL string, root ...string) bool {
	l := NewLink(itemURL, "x")
	New(l).SetActiveFromURL(requestURL, root...)
	return l.IsActive()
}

func TestActivePrefixMatch(t *testing.T) {
	assert.True(t, activeFor("/about", "/about/team"))
	assert.True(t, activeFor("/about", "/about"))
	assert.False(t, activeFor("/about-us", "/about"))
	assert.False(t, activeFor("/contact", "/about"))
}

// Matching is a plain prefix check, not segment aware.
func TestActivePrefixMatchIsNotSegmentAware(t *testing.T) {
	assert.True(t, activeFor("/about", "/about-us"))
}

func TestActiveRootOnlyMatchesExactly(t *testing.T) {
	assert.False(t, activeFor("/", "/anything"))
	assert.True(t, activeFor("/", "/"))
	assert.True(t, activeFor("/", ""))
	assert.True(t, activeFor("https://example.com/", "https://example.com"))
}

func TestActiveRequestOnRootOnlyMatchesExactly(t *testing.T) {
	assert.False(t, activeFor("/about", "/"))
}

func TestActiveCustomRoot(t *testing.T) {
	assert.False(t, activeFor("/en", "/en/about", "/en/"))
	assert.True(t, activeFor("/en", "/en", "/en"))
	assert.True(t, activeFor("/en/about", "/en/about/team", "/en"))
}

func TestActiveEmptyItemPathNeverMatches(t *testing.T) {
	assert.False(t, activeFor("/", "/en/about", "/en"))
	assert.False(t, activeFor("", "/en/about", "/en"))
}

func TestActiveCrossHost(t *testing.T) {
	assert.False(t, activeFor("https://other.example/x", "https://self.example/x"))
	assert.False(t, activeFor("https://other.example/x", "/x"))
	assert.True(t, activeFor("https://self.example/x", "https://self.example/x/y"))
	assert.True(t, activeFor("/x", "https://self.example/x"))
}

func TestActiveIgnoresTrailingSlashes(t *testing.T) {
	assert.True(t, activeFor("/about/", "/about"))
	assert.True(t, activeFor("/about", "/about///"))
}

func TestActiveIgnoresQuery(t *testing.T) {
	assert.True(t, activeFor("/blog", "/blog?page=2"))
}

func TestMalformedURLLeavesTreeInert(t *testing.T) {
	assert.False(t, activeFor("/about", "http://[::1"))
	assert.False(t, activeFor("/", "http://[::1"))
	assert.False(t, activeFor("", "http://%zz/"))

	assert.False(t, activeFor("http://%zz/", "/"))
	assert.False(t, activeFor("http://%zz/", ""))
	assert.False(t, activeFor("http://[::1", "/about"))
}

func TestMalformedLinkDoesNotAffectSiblings(t *testing.T) {
	bad := NewLink("http://%zz/", "Bad")
	home := NewLink("/", "Home")
	m := New(bad, home).SetActiveFromURL("/")

	assert.False(t, bad.IsActive())
	assert.True(t, home.IsActive())
	assert.Equal(t, `<ul><li><a href="http://%zz/">Bad</a></li><li class="active"><a href="/">Home</a></li></ul>`, m.Render())
}

func TestSetActiveFromURLEndToEnd(t *testing.T) {
	home := NewLink("/", "Home")
	about := NewLink("/about", "About")
	team := NewLink("/about/team", "Team")
	inner := New(team)
	outer := New(home, about, inner)

	outer.SetActiveFromURL("/about/team")

	assert.False(t, home.IsActive())
	assert.True(t, about.IsActive())
	assert.True(t, team.IsActive())
	assert.True(t, inner.IsActive())
	assert.True(t, outer.IsActive())
}

func TestActivePropagatesThroughThreeLevels(t *testing.T) {
	leaf := NewLink("/a/b/c", "C")
	level3 := New(NewRawHTML("x"), leaf)
	level2 := New(NewLink("/z", "Z"), level3)
	level1 := New(level2)

	assert.False(t, level1.IsActive())

	leaf.SetActive()

	assert.True(t, level3.IsActive())
	assert.True(t, level2.IsActive())
	assert.True(t, level1.IsActive())
}

func TestIsActiveIsDerived(t *testing.T) {
	l := NewLink("/a", "A")
	m := New(NewLink("/b", "B"), l)

	l.SetActive()
	assert.True(t, m.IsActive())

	l.SetInactive()
	assert.False(t, m.IsActive())

	m.Add(New(NewLink("/c", "C")))
	assert.False(t, m.IsActive())

	active := NewLink("/d", "D")
	active.SetActive()
	m.Items()[2].(*Menu).Add(active)
	assert.True(t, m.IsActive())
}

func TestSetActiveFromURLAppliesToLaterItems(t *testing.T) {
	m := New().Link("/", "Home").SetActiveFromURL("/blog/post")

	blog := NewLink("/blog", "Blog")
	m.Add(blog)
	assert.True(t, blog.IsActive())

	nested := NewLink("/blog/post", "Post")
	m.Add(New(nested))
	assert.True(t, nested.IsActive())

	other := NewLink("/shop", "Shop")
	m.Add(other)
	assert.False(t, other.IsActive())
}

func TestSetActiveFromURLKeepsRootForLaterItems(t *testing.T) {
	m := New().SetActiveFromURL("/en/about", "/en")

	home := NewLink("/en", "Home")
	m.Add(home)
	assert.False(t, home.IsActive())
}

func TestSetActiveFromCallable(t *testing.T) {
	home := NewLink("/", "Home")
	about := NewLink("/about", "About")
	team := NewLink("/about/team", "Team")
	raw := NewRawHTML("<hr>")
	m := New(home, about, raw, New(team))

	m.SetActiveFromCallable(When(func(l *Link) bool {
		return l.Text() == "About" || l.Text() == "Team"
	}))

	assert.False(t, home.IsActive())
	assert.True(t, about.IsActive())
	assert.True(t, team.IsActive())
	assert.False(t, raw.IsActive())

	later := NewLink("/x", "Team")
	m.Add(later)
	assert.True(t, later.IsActive())
}

func TestSetActiveFromCallableSkipsNonActivatable(t *testing.T) {
	raw := NewRawHTML("<hr>")
	link := NewLink("/", "Home")
	m := New(raw, link)

	m.SetActiveFromCallable(When(func(Item) bool { return true }))

	assert.False(t, raw.IsActive())
	assert.True(t, link.IsActive())
}

func TestPredicateTest(t *testing.T) {
	p := When(func(u HasURL) bool { return u.URL() == "/a" })

	assert.True(t, p.Test(NewLink("/a", "A")))
	assert.False(t, p.Test(NewLink("/b", "B")))
	assert.False(t, p.Test(NewRawHTML("/a")))
	assert.False(t, p.Test(nil))
	assert.False(t, Predicate{}.Test(NewLink("/a", "A")))
}

func TestSetActive(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		l := NewLink("/a", "A")
		require.NoError(t, New(l).SetActive("/a/b"))
		assert.True(t, l.IsActive())
	})

	t.Run("string with root", func(t *testing.T) {
		l := NewLink("/en", "Home")
		require.NoError(t, New(l).SetActive("/en/b", "/en"))
		assert.False(t, l.IsActive())
	})

	t.Run("url", func(t *testing.T) {
		l := NewLink("/a", "A")
		u, err := url.Parse("https://example.com/a")
		require.NoError(t, err)
		require.NoError(t, New(l).SetActive(u))
		assert.True(t, l.IsActive())
	})

	t.Run("predicate", func(t *testing.T) {
		l := NewLink("/a", "A")
		require.NoError(t, New(l).SetActive(When(func(*Link) bool { return true })))
		assert.True(t, l.IsActive())
	})

	t.Run("func", func(t *testing.T) {
		l := NewLink("/a", "A")
		require.NoError(t, New(l).SetActive(func(Item) bool { return true }))
		assert.True(t, l.IsActive())
	})
}

func TestSetActiveInvalidTarget(t *testing.T) {
	for _, target := range []any{42, nil, []string{"/a"}, (*url.URL)(nil), (func(Item) bool)(nil)} {
		l := NewLink("/a", "A")
		m := New(l)

		err := m.SetActive(target)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidActiveTarget), "%T", target)
		assert.False(t, l.IsActive())
	}
}

func TestSetActiveClassOnlyAffectsRender(t *testing.T) {
	l := NewLink("/a", "A")
	m := New(l).SetActiveClass("current").SetActiveFromURL("/a")

	assert.True(t, m.IsActive())
	assert.Equal(t, `<ul><li class="current"><a href="/a">A</a></li></ul>`, m.Render())
}
