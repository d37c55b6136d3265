package menu

// Filter is a callback bound to the capability an item needs for the
// callback to run. Items lacking the capability are skipped silently.
type Filter struct {
	matches func(Item) bool
	apply   func(Item)
}

// For returns a filter that runs fn on items implementing T. T is usually a
// capability interface such as ActivatableURL or HasAttributes, or a
// concrete type such as *Link or *Menu.
func For[T any](fn func(T)) Filter {
	return Filter{
		matches: func(item Item) bool {
			_, ok := item.(T)
			return ok
		},
		apply: func(item Item) {
			if v, ok := item.(T); ok {
				fn(v)
			}
		},
	}
}

// ForAll returns a filter that runs fn on every item.
func ForAll(fn func(Item)) Filter {
	return Filter{apply: fn}
}

// Matches reports whether item has the capability f requires.
func (f Filter) Matches(item Item) bool {
	if item == nil {
		return false
	}
	return f.matches == nil || f.matches(item)
}

func (f Filter) run(item Item) {
	if f.apply == nil || !f.Matches(item) {
		return
	}
	f.apply(item)
}

// Each runs f once on every matching direct item.
func (m *Menu) Each(f Filter) *Menu {
	for _, item := range m.items {
		f.run(item)
	}
	return m
}

// RegisterFilter runs f on every matching item added from now on.
func (m *Menu) RegisterFilter(f Filter) *Menu {
	m.filters = append(m.filters, f)
	return m
}

// ApplyToAll runs f on every matching direct item and registers it for
// items added later.
func (m *Menu) ApplyToAll(f Filter) *Menu {
	return m.Each(f).RegisterFilter(f)
}
