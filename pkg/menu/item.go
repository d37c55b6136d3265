package menu

import "github.com/mchmarny/navmenu/pkg/markup"

// Item is any node of a menu tree, either a leaf or a nested Menu.
type Item interface {
	// Render returns the item's own markup, without the list wrapper.
	Render() string

	// IsActive reports whether the item matches the current request.
	IsActive() bool
}

// Activatable is implemented by items that can be marked active.
type Activatable interface {
	SetActive()
}

// HasURL is implemented by items that point somewhere.
type HasURL interface {
	URL() string
}

// ActivatableURL is the capability required to take part in URL based
// active state resolution.
type ActivatableURL interface {
	Item
	HasURL
	Activatable
}

// HasAttributes is implemented by items that own the attributes of their
// own element.
type HasAttributes interface {
	Attributes() *markup.Attributes
}

// HasParentAttributes is implemented by items that own the attributes of the
// wrapper element their parent menu renders around them.
type HasParentAttributes interface {
	ParentAttributes() *markup.Attributes
}

type activatableItem interface {
	Item
	Activatable
}
