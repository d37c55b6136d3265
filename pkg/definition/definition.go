// Package definition decodes menus described in YAML.
//
//	class: nav
//	activeClass: current
//	items:
//	  - url: /
//	    text: Home
//	  - url: /about
//	    text: About
//	  - header: <span>Docs</span>
//	    menu:
//	      items:
//	        - url: /docs/intro
//	          text: Intro
//	  - html: <hr>
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mchmarny/navmenu/pkg/markup"
	"github.com/mchmarny/navmenu/pkg/menu"
	"gopkg.in/yaml.v3"
)

// ErrInvalidItem is returned for items that are not exactly one of a link,
// a markup fragment or a submenu.
var ErrInvalidItem = errors.New("item must set exactly one of url, html or menu")

// ErrMisplacedField is returned for item fields that do not apply to the
// item's kind, such as a header on a link.
var ErrMisplacedField = errors.New("field does not apply to this kind of item")

// Menu describes a menu and its items.
type Menu struct {
	Tag         string     `yaml:"tag,omitempty"`
	Class       string     `yaml:"class,omitempty"`
	Attributes  Attributes `yaml:"attributes,omitempty"`
	ActiveClass string     `yaml:"activeClass,omitempty"`
	Prepend     string     `yaml:"prepend,omitempty"`
	Append      string     `yaml:"append,omitempty"`
	Prefix      string     `yaml:"prefix,omitempty"`
	Items       []Item     `yaml:"items"`
}

// Item describes a link (url), a markup fragment (html) or a submenu (menu).
//
// Links take text, class and attributes. On a submenu, class and attributes
// apply to its list element and header is rendered in front of it. Markup
// fragments only take parentClass and parentAttributes, which every kind
// accepts.
type Item struct {
	URL  string `yaml:"url,omitempty"`
	Text string `yaml:"text,omitempty"`
	HTML string `yaml:"html,omitempty"`

	Header string `yaml:"header,omitempty"`
	Menu   *Menu  `yaml:"menu,omitempty"`

	Class            string     `yaml:"class,omitempty"`
	Attributes       Attributes `yaml:"attributes,omitempty"`
	ParentClass      string     `yaml:"parentClass,omitempty"`
	ParentAttributes Attributes `yaml:"parentAttributes,omitempty"`
}

// Attribute is a single name/value pair.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is a YAML mapping decoded in document order.
type Attributes []Attribute

// UnmarshalYAML keeps the key order of the mapping.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}

	out := make(Attributes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("line %d: attribute %q: %w", node.Content[i+1].Line, node.Content[i].Value, err)
		}
		out = append(out, Attribute{Name: node.Content[i].Value, Value: value})
	}

	*a = out
	return nil
}

func (a Attributes) applyTo(attrs *markup.Attributes) {
	for _, attr := range a {
		attrs.Set(attr.Name, attr.Value)
	}
}

// Decode reads a definition from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Menu, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Menu
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("failed to decode menu definition: %w", err)
	}

	return &m, nil
}

// Parse decodes a definition held in memory.
func Parse(data []byte) (*Menu, error) {
	return Decode(bytes.NewReader(data))
}

// Load decodes the definition stored at path.
func Load(path string) (*Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu definition: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Validate checks every item of the tree.
func (d *Menu) Validate() error {
	return d.validate("items")
}

func (d *Menu) validate(path string) error {
	for i, item := range d.Items {
		at := fmt.Sprintf("%s[%d]", path, i)

		set := 0
		for _, ok := range []bool{item.URL != "", item.HTML != "", item.Menu != nil} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("%s: %w", at, ErrInvalidItem)
		}

		if field := item.misplacedField(); field != "" {
			return fmt.Errorf("%s.%s: %w", at, field, ErrMisplacedField)
		}

		if item.Menu != nil {
			if err := item.Menu.validate(at + ".menu.items"); err != nil {
				return err
			}
		}
	}

	return nil
}

// Build validates the definition and returns a new menu tree. Every call
// returns an independent tree.
func (d *Menu) Build() (*menu.Menu, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d.build(), nil
}

func (d *Menu) build() *menu.Menu {
	m := menu.New()

	if d.Tag != "" {
		m.SetTag(d.Tag)
	}
	if d.ActiveClass != "" {
		m.SetActiveClass(d.ActiveClass)
	}

	m.AddClass(d.Class)
	d.Attributes.applyTo(m.Attributes())
	m.Prepend(d.Prepend).Append(d.Append)

	for _, item := range d.Items {
		m.Add(item.build())
	}

	if d.Prefix != "" {
		m.PrefixLinks(d.Prefix)
	}

	return m
}

// misplacedField returns the first set field that the item's kind ignores.
func (it Item) misplacedField() string {
	type field struct {
		name string
		set  bool
	}

	var fields []field
	switch {
	case it.Menu != nil:
		fields = []field{{"text", it.Text != ""}}
	case it.HTML != "":
		fields = []field{
			{"text", it.Text != ""},
			{"header", it.Header != ""},
			{"class", it.Class != ""},
			{"attributes", len(it.Attributes) > 0},
		}
	default:
		fields = []field{{"header", it.Header != ""}}
	}

	for _, f := range fields {
		if f.set {
			return f.name
		}
	}

	return ""
}

func (it Item) build() menu.Item {
	switch {
	case it.Menu != nil:
		sub := it.Menu.build().Prepend(it.Header)
		sub.AddClass(it.Class).AddParentClass(it.ParentClass)
		it.Attributes.applyTo(sub.Attributes())
		it.ParentAttributes.applyTo(sub.ParentAttributes())
		return sub
	case it.HTML != "":
		r := menu.NewRawHTML(it.HTML).AddParentClass(it.ParentClass)
		it.ParentAttributes.applyTo(r.ParentAttributes())
		return r
	default:
		text := it.Text
		if text == "" {
			text = it.URL
		}
		l := menu.NewLink(it.URL, text).AddClass(it.Class).AddParentClass(it.ParentClass)
		it.Attributes.applyTo(l.Attributes())
		it.ParentAttributes.applyTo(l.ParentAttributes())
		return l
	}
}
