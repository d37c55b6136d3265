// Package urlmatch splits URLs into the host and path components used to
// decide whether a menu link points at the current request.
package urlmatch

import (
	"net/url"
	"strings"
)

// Separator is the path separator stripped from the end of matched paths.
const Separator = "/"

// Parts holds the comparable components of a URL.
type Parts struct {
	// Host is empty for relative or path-only URLs.
	Host string

	// Path has its trailing separators removed, so "/" becomes "".
	Path string
}

// Parse splits raw into its host and path. Absolute, scheme-relative
// ("//host/path") and relative URLs are supported. The second result is
// false, with empty Parts, when raw cannot be parsed.
func Parse(raw string) (Parts, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Parts{}, false
	}

	return Parts{
		Host: strings.ToLower(u.Hostname()),
		Path: StripTrailingSeparators(u.Path, Separator),
	}, true
}

// StripTrailingSeparators removes every trailing occurrence of sep from path.
// An empty sep returns path unchanged.
func StripTrailingSeparators(path, sep string) string {
	if sep == "" {
		return path
	}

	for strings.HasSuffix(path, sep) {
		path = strings.TrimSuffix(path, sep)
	}

	return path
}
