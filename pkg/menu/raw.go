package menu

import "github.com/mchmarny/navmenu/pkg/markup"

// RawHTML is a leaf that renders a markup fragment as is. It is never active.
type RawHTML struct {
	html             string
	parentAttributes *markup.Attributes
}

// NewRawHTML returns a leaf holding html.
func NewRawHTML(html string) *RawHTML {
	return &RawHTML{
		html:             html,
		parentAttributes: markup.NewAttributes(),
	}
}

// Render returns the fragment unchanged.
func (r *RawHTML) Render() string { return r.html }

// IsActive always reports false.
func (r *RawHTML) IsActive() bool { return false }

// ParentAttributes returns the attributes of the list item wrapping the
// fragment.
func (r *RawHTML) ParentAttributes() *markup.Attributes { return r.parentAttributes }

// AddParentClass adds classes to the list item wrapping the fragment.
func (r *RawHTML) AddParentClass(class string) *RawHTML {
	r.parentAttributes.AddClass(class)
	return r
}

// SetParentAttribute sets an attribute on the list item wrapping the fragment.
func (r *RawHTML) SetParentAttribute(name, value string) *RawHTML {
	r.parentAttributes.Set(name, value)
	return r
}
