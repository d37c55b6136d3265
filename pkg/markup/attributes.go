package markup

import (
	"html"
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ClassAttribute is stored separately from the other attributes so classes
// can be appended one at a time without rewriting the whole value.
const ClassAttribute = "class"

// namePattern is the grammar accepted for tag and attribute names. Anything
// else could break out of the element when rendered.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9:_.-]*$`)

// ValidName reports whether name can be rendered as a tag or attribute name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Attributes is an ordered attribute bag for a single element.
// Attributes render in insertion order, after the class attribute.
// The zero value is ready to use.
type Attributes struct {
	values  *orderedmap.OrderedMap[string, string]
	classes []string
}

// NewAttributes returns an empty attribute bag.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// Set sets name to value, replacing any previous value but keeping its
// position. Setting "class" adds the whitespace separated classes instead.
// An empty value renders as a bare attribute. Blank names and names outside
// the ValidName grammar are ignored.
func (a *Attributes) Set(name, value string) *Attributes {
	name = strings.TrimSpace(name)
	if !ValidName(name) {
		return a
	}

	if strings.EqualFold(name, ClassAttribute) {
		return a.AddClass(value)
	}

	if a.values == nil {
		a.values = orderedmap.New[string, string]()
	}
	a.values.Set(name, value)

	return a
}

// Get returns the value of name. For "class" the joined class list is returned.
func (a *Attributes) Get(name string) (string, bool) {
	if strings.EqualFold(name, ClassAttribute) {
		return strings.Join(a.classes, " "), len(a.classes) > 0
	}

	if a.values == nil {
		return "", false
	}

	return a.values.Get(name)
}

// AddClass appends classes, each argument may hold several whitespace
// separated tokens. Duplicates are ignored.
func (a *Attributes) AddClass(classes ...string) *Attributes {
	for _, c := range classes {
		for _, token := range strings.Fields(c) {
			if !a.HasClass(token) {
				a.classes = append(a.classes, token)
			}
		}
	}

	return a
}

// HasClass reports whether class has been added.
func (a *Attributes) HasClass(class string) bool {
	for _, c := range a.classes {
		if c == class {
			return true
		}
	}

	return false
}

// Classes returns a copy of the class list.
func (a *Attributes) Classes() []string {
	return append([]string(nil), a.classes...)
}

// Merge copies every attribute and class of other into a.
func (a *Attributes) Merge(other *Attributes) *Attributes {
	if other == nil {
		return a
	}

	a.AddClass(other.classes...)

	if other.values != nil {
		for pair := other.values.Oldest(); pair != nil; pair = pair.Next() {
			a.Set(pair.Key, pair.Value)
		}
	}

	return a
}

// Clone returns an independent copy of a.
func (a *Attributes) Clone() *Attributes {
	return NewAttributes().Merge(a)
}

// IsEmpty reports whether there is nothing to render.
func (a *Attributes) IsEmpty() bool {
	return a == nil || (len(a.classes) == 0 && (a.values == nil || a.values.Len() == 0))
}

// Render serializes the attributes with escaped values, without a leading
// space: `class="a b" href="/x" disabled`.
func (a *Attributes) Render() string {
	if a.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, 1+a.len())

	if len(a.classes) > 0 {
		parts = append(parts, renderAttribute(ClassAttribute, strings.Join(a.classes, " ")))
	}

	if a.values != nil {
		for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
			parts = append(parts, renderAttribute(pair.Key, pair.Value))
		}
	}

	return strings.Join(parts, " ")
}

func (a *Attributes) len() int {
	if a.values == nil {
		return 0
	}
	return a.values.Len()
}

func renderAttribute(name, value string) string {
	if value == "" {
		return html.EscapeString(name)
	}

	return html.EscapeString(name) + `="` + html.EscapeString(value) + `"`
}
