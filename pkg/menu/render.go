package menu

import "github.com/mchmarny/navmenu/pkg/markup"

// Render returns the prepend markup, the list and the append markup.
// Every item is wrapped in the item tag carrying its parent attributes and,
// when the item is active, the active class.
func (m *Menu) Render() string {
	contents := make([]string, 0, len(m.items))
	for _, item := range m.items {
		contents = append(contents, m.renderItem(item))
	}

	return m.prepend + markup.El(m.tag, m.attributes, contents...) + m.append
}

func (m *Menu) renderItem(item Item) string {
	attrs := markup.NewAttributes()

	if item.IsActive() {
		attrs.AddClass(m.activeClass)
	}

	if p, ok := item.(HasParentAttributes); ok {
		attrs.Merge(p.ParentAttributes())
	}

	return markup.El(m.itemTag, attrs, item.Render())
}

// String implements fmt.Stringer.
func (m *Menu) String() string {
	return m.Render()
}
