// Package menu builds nested HTML menus through a fluent API, resolves which
// entries are active for a request URL and renders the tree to markup.
//
// A Menu is itself an Item, so menus nest to any depth. Callbacks are
// applied through Filters, which declare the capability an item must have
// for the callback to run:
//
//	m := menu.New().
//		Link("/", "Home").
//		Link("/about", "About").
//		Add(menu.New().Link("/about/team", "Team"))
//
//	m.SetActiveFromURL("/about/team")
//	html := m.Render()
//
// A tree is not safe for concurrent use. Build a new one per request.
package menu

import (
	"github.com/mchmarny/navmenu/pkg/markup"
)

const (
	// DefaultActiveClass is the class added to the wrapper of active items.
	DefaultActiveClass = "active"

	// DefaultTag is the element wrapping the whole list.
	DefaultTag = "ul"

	// DefaultItemTag is the element wrapping each item.
	DefaultItemTag = "li"
)

// Menu is an ordered collection of items that renders as a list.
type Menu struct {
	items   []Item
	filters []Filter

	prepend string
	append  string

	activeClass string
	tag         string
	itemTag     string

	attributes       *markup.Attributes
	parentAttributes *markup.Attributes
}

// New returns a menu holding items in the given order. Nil items, including
// nil *Link, *RawHTML and *Menu pointers, are skipped.
func New(items ...Item) *Menu {
	m := &Menu{
		activeClass:      DefaultActiveClass,
		tag:              DefaultTag,
		itemTag:          DefaultItemTag,
		attributes:       markup.NewAttributes(),
		parentAttributes: markup.NewAttributes(),
	}

	for _, item := range items {
		if !isNil(item) {
			m.items = append(m.items, item)
		}
	}

	return m
}

// Add runs every registered filter on item, in registration order, then
// appends it. Nil items and nil pointers of this package's item types are
// ignored. A nil pointer of any other Item implementation cannot be told
// apart from a real item and is appended; it panics once a filter or Render
// calls its methods, so callers must not add one.
func (m *Menu) Add(item Item) *Menu {
	if isNil(item) {
		return m
	}

	for _, f := range m.filters {
		f.run(item)
	}

	m.items = append(m.items, item)

	return m
}

// AddIf adds item when cond is true.
func (m *Menu) AddIf(cond bool, item Item) *Menu {
	if !cond {
		return m
	}
	return m.Add(item)
}

// Link adds a link to url.
func (m *Menu) Link(url, text string) *Menu {
	return m.Add(NewLink(url, text))
}

// LinkIf adds a link to url when cond is true.
func (m *Menu) LinkIf(cond bool, url, text string) *Menu {
	if !cond {
		return m
	}
	return m.Link(url, text)
}

// HTML adds a raw markup fragment.
func (m *Menu) HTML(html string) *Menu {
	return m.Add(NewRawHTML(html))
}

// HTMLIf adds a raw markup fragment when cond is true.
func (m *Menu) HTMLIf(cond bool, html string) *Menu {
	if !cond {
		return m
	}
	return m.HTML(html)
}

// Submenu adds sub with header rendered in front of its list.
func (m *Menu) Submenu(header string, sub *Menu) *Menu {
	if sub == nil {
		return m
	}
	return m.Add(sub.Prepend(header))
}

func isNil(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Link:
		return v == nil
	case *RawHTML:
		return v == nil
	case *Menu:
		return v == nil
	default:
		return false
	}
}

// Items returns the direct items in order.
func (m *Menu) Items() []Item {
	return append([]Item(nil), m.items...)
}

// Len returns the number of direct items.
func (m *Menu) Len() int {
	return len(m.items)
}

// Prepend adds markup in front of the list. It is not escaped.
func (m *Menu) Prepend(html string) *Menu {
	m.prepend = html + m.prepend
	return m
}

// PrependIf prepends html when cond is true.
func (m *Menu) PrependIf(cond bool, html string) *Menu {
	if !cond {
		return m
	}
	return m.Prepend(html)
}

// Append adds markup after the list. It is not escaped.
func (m *Menu) Append(html string) *Menu {
	m.append += html
	return m
}

// AppendIf appends html when cond is true.
func (m *Menu) AppendIf(cond bool, html string) *Menu {
	if !cond {
		return m
	}
	return m.Append(html)
}

// SetTag changes the element wrapping the list, "ul" by default.
func (m *Menu) SetTag(tag string) *Menu {
	m.tag = tag
	return m
}

// SetItemTag changes the element wrapping each item, "li" by default.
func (m *Menu) SetItemTag(tag string) *Menu {
	m.itemTag = tag
	return m
}

// SetActiveClass changes the class given to wrappers of active items.
// It has no effect on IsActive.
func (m *Menu) SetActiveClass(class string) *Menu {
	m.activeClass = class
	return m
}

// ActiveClass returns the class given to wrappers of active items.
func (m *Menu) ActiveClass() string {
	return m.activeClass
}

// Attributes returns the attributes of the list element.
func (m *Menu) Attributes() *markup.Attributes { return m.attributes }

// ParentAttributes returns the attributes of the wrapper a parent menu
// renders around this menu.
func (m *Menu) ParentAttributes() *markup.Attributes { return m.parentAttributes }

// AddClass adds classes to the list element.
func (m *Menu) AddClass(class string) *Menu {
	m.attributes.AddClass(class)
	return m
}

// SetAttribute sets an attribute on the list element.
func (m *Menu) SetAttribute(name, value string) *Menu {
	m.attributes.Set(name, value)
	return m
}

// AddParentClass adds classes to the wrapper a parent menu renders around
// this menu.
func (m *Menu) AddParentClass(class string) *Menu {
	m.parentAttributes.AddClass(class)
	return m
}

// SetParentAttribute sets an attribute on the wrapper a parent menu renders
// around this menu.
func (m *Menu) SetParentAttribute(name, value string) *Menu {
	m.parentAttributes.Set(name, value)
	return m
}

// PrefixLinks prefixes the URL of every direct link, now and for links
// added later.
func (m *Menu) PrefixLinks(prefix string) *Menu {
	return m.ApplyToAll(For(func(l *Link) {
		l.Prefix(prefix)
	}))
}

// AddItemClass adds classes to the element of every item that owns one.
func (m *Menu) AddItemClass(class string) *Menu {
	return m.ApplyToAll(For(func(item HasAttributes) {
		item.Attributes().AddClass(class)
	}))
}

// SetItemAttribute sets an attribute on the element of every item that
// owns one.
func (m *Menu) SetItemAttribute(name, value string) *Menu {
	return m.ApplyToAll(For(func(item HasAttributes) {
		item.Attributes().Set(name, value)
	}))
}

// AddItemParentClass adds classes to the wrapper of every item.
func (m *Menu) AddItemParentClass(class string) *Menu {
	return m.ApplyToAll(For(func(item HasParentAttributes) {
		item.ParentAttributes().AddClass(class)
	}))
}

// SetItemParentAttribute sets an attribute on the wrapper of every item.
func (m *Menu) SetItemParentAttribute(name, value string) *Menu {
	return m.ApplyToAll(For(func(item HasParentAttributes) {
		item.ParentAttributes().Set(name, value)
	}))
}
