package menu

import (
	neturl "net/url"
	"strings"

	"github.com/mchmarny/navmenu/pkg/markup"
)

// Link is a hyperlink leaf. Its text is inserted as markup, so it may carry
// icons or other inline elements.
type Link struct {
	url    string
	text   string
	active bool

	attributes       *markup.Attributes
	parentAttributes *markup.Attributes
}

// NewLink returns an inactive link to url.
func NewLink(url, text string) *Link {
	return &Link{
		url:              url,
		text:             text,
		attributes:       markup.NewAttributes(),
		parentAttributes: markup.NewAttributes(),
	}
}

// URL returns the link target.
func (l *Link) URL() string { return l.url }

// Text returns the link text.
func (l *Link) Text() string { return l.text }

// SetURL replaces the link target.
func (l *Link) SetURL(url string) *Link {
	l.url = url
	return l
}

// Prefix prepends prefix to relative paths. URLs with a scheme (mailto:,
// tel:, https:) or a host, fragment and query only links, and URLs that do
// not parse are left alone.
func (l *Link) Prefix(prefix string) *Link {
	if !isRelativePath(l.url) {
		return l
	}

	l.url = strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(l.url, "/")
	return l
}

// IsActive reports whether the link was marked active.
func (l *Link) IsActive() bool { return l.active }

// SetActive marks the link active.
func (l *Link) SetActive() {
	l.active = true
}

// SetInactive clears the active mark.
func (l *Link) SetInactive() {
	l.active = false
}

// Attributes returns the attributes of the anchor element.
func (l *Link) Attributes() *markup.Attributes { return l.attributes }

// ParentAttributes returns the attributes of the list item wrapping the link.
func (l *Link) ParentAttributes() *markup.Attributes { return l.parentAttributes }

// AddClass adds classes to the anchor element.
func (l *Link) AddClass(class string) *Link {
	l.attributes.AddClass(class)
	return l
}

// SetAttribute sets an attribute on the anchor element.
func (l *Link) SetAttribute(name, value string) *Link {
	l.attributes.Set(name, value)
	return l
}

// AddParentClass adds classes to the list item wrapping the link.
func (l *Link) AddParentClass(class string) *Link {
	l.parentAttributes.AddClass(class)
	return l
}

// SetParentAttribute sets an attribute on the list item wrapping the link.
func (l *Link) SetParentAttribute(name, value string) *Link {
	l.parentAttributes.Set(name, value)
	return l
}

// Render returns the anchor element.
func (l *Link) Render() string {
	attrs := markup.NewAttributes().Set("href", l.url).Merge(l.attributes)
	return markup.El("a", attrs, l.text)
}

// String implements fmt.Stringer.
func (l *Link) String() string {
	return l.Render()
}

func isRelativePath(raw string) bool {
	if strings.HasPrefix(raw, "#") || strings.HasPrefix(raw, "?") {
		return false
	}

	u, err := neturl.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme == "" && u.Host == ""
}
