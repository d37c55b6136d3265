package menu

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mchmarny/navmenu/pkg/urlmatch"
)

// DefaultRoot is the path treated as the site root by SetActiveFromURL.
const DefaultRoot = "/"

// ErrInvalidActiveTarget is returned by SetActive for targets that are
// neither a URL nor a predicate.
var ErrInvalidActiveTarget = errors.New("active target must be a URL or a predicate")

// Predicate decides whether an item is active. Like Filter, it declares the
// capability an item needs before it is consulted.
type Predicate struct {
	test func(Item) bool
}

// When returns a predicate that consults fn for items implementing T and
// reports false for every other item.
func When[T any](fn func(T) bool) Predicate {
	return Predicate{
		test: func(item Item) bool {
			v, ok := item.(T)
			return ok && fn(v)
		},
	}
}

// Test reports whether item satisfies p.
func (p Predicate) Test(item Item) bool {
	return p.test != nil && item != nil && p.test(item)
}

// IsActive reports whether any direct item is active. It is computed on
// every call and never cached.
func (m *Menu) IsActive() bool {
	for _, item := range m.items {
		if item.IsActive() {
			return true
		}
	}
	return false
}

// SetActive marks items active from a URL (string, *url.URL) or a predicate
// (Predicate, func(Item) bool). root only applies to URLs.
func (m *Menu) SetActive(target any, root ...string) error {
	switch t := target.(type) {
	case string:
		m.SetActiveFromURL(t, root...)
	case *url.URL:
		if t == nil {
			return fmt.Errorf("%w: nil %T", ErrInvalidActiveTarget, t)
		}
		m.SetActiveFromURL(t.String(), root...)
	case Predicate:
		m.SetActiveFromCallable(t)
	case func(Item) bool:
		if t == nil {
			return fmt.Errorf("%w: nil %T", ErrInvalidActiveTarget, t)
		}
		m.SetActiveFromCallable(When(t))
	default:
		return fmt.Errorf("%w: %T", ErrInvalidActiveTarget, target)
	}

	return nil
}

// SetActiveFromURL marks every link of the tree that matches requestURL.
// root defaults to "/".
//
// A link on another host never matches. When either path is the root only
// an exact match counts, so a home link does not light up everywhere.
// Otherwise a link matches when the request path starts with the link path.
// The comparison is not segment aware: "/about" also matches "/about-us".
//
// The matching is registered as a filter, so items added afterwards are
// checked against the same URL.
func (m *Menu) SetActiveFromURL(requestURL string, root ...string) *Menu {
	r := DefaultRoot
	if len(root) > 0 {
		r = root[0]
	}

	m.ApplyToAll(For(func(sub *Menu) {
		sub.SetActiveFromURL(requestURL, r)
	}))

	request, requestOK := urlmatch.Parse(requestURL)
	requestRoot := urlmatch.StripTrailingSeparators(r, urlmatch.Separator)

	return m.ApplyToAll(For(func(item ActivatableURL) {
		if !requestOK {
			return
		}

		// an unparsable link never matches, not even on the root
		target, ok := urlmatch.Parse(item.URL())
		if !ok {
			return
		}

		if urlMatches(target, request, requestRoot) {
			item.SetActive()
		}
	}))
}

// SetActiveFromCallable marks every activatable item of the tree for which p
// reports true. Like SetActiveFromURL it also applies to items added later.
func (m *Menu) SetActiveFromCallable(p Predicate) *Menu {
	m.ApplyToAll(For(func(sub *Menu) {
		sub.SetActiveFromCallable(p)
	}))

	return m.ApplyToAll(For(func(item activatableItem) {
		if p.Test(item) {
			item.SetActive()
		}
	}))
}

func urlMatches(item, request urlmatch.Parts, root string) bool {
	if item.Host != "" && item.Host != request.Host {
		return false
	}

	if request.Path == root || item.Path == root {
		return item.Path == request.Path
	}

	// empty path outside the root is a misconfigured link
	if item.Path == "" {
		return false
	}

	return strings.HasPrefix(request.Path, item.Path)
}
