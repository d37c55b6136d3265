// Package markup renders HTML elements and their attribute bags.
// Attribute names and values are escaped here; element contents are
// inserted verbatim so already rendered markup can be nested.
package markup

import (
	"strings"
)

// El renders an element. tag may carry a class shorthand, "ul.nav.main"
// renders as <ul class="nav main">. Shorthand classes come before those in
// attrs. contents are concatenated in order. attrs is never modified.
// A missing or invalid tag name renders as div.
func El(tag string, attrs *Attributes, contents ...string) string {
	name, classes := splitTag(tag)

	a := attrs
	if len(classes) > 0 {
		a = NewAttributes().AddClass(classes...).Merge(attrs)
	}

	var b strings.Builder

	b.WriteString("<")
	b.WriteString(name)
	if rendered := a.Render(); rendered != "" {
		b.WriteString(" ")
		b.WriteString(rendered)
	}
	b.WriteString(">")

	for _, c := range contents {
		b.WriteString(c)
	}

	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")

	return b.String()
}

// splitTag separates "ul.nav.main" into "ul" and its classes.
func splitTag(tag string) (string, []string) {
	segments := strings.Split(strings.TrimSpace(tag), ".")

	name := segments[0]
	if !ValidName(name) {
		name = "div"
	}

	var classes []string
	for _, s := range segments[1:] {
		if s != "" {
			classes = append(classes, s)
		}
	}

	return name, classes
}
