package definition

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const site = `
class: nav
attributes:
  role: navigation
  aria-label: Main
activeClass: current
items:
  - url: /
    text: Home
  - url: /about
    text: About
    class: link
    attributes:
      title: About us
    parentClass: top
  - header: <span>Docs</span>
    parentClass: dropdown
    menu:
      items:
        - url: /docs/intro
          text: Intro
  - html: <hr>
    parentAttributes:
      role: separator
`

func TestBuild(t *testing.T) {
	d, err := Parse([]byte(site))
	require.NoError(t, err)

	m, err := d.Build()
	require.NoError(t, err)

	m.SetActiveFromURL("/docs/intro/setup")

	want := `<ul class="nav" role="navigation" aria-label="Main">` +
		`<li><a href="/">Home</a></li>` +
		`<li class="top"><a class="link" href="/about" title="About us">About</a></li>` +
		`<li class="current dropdown"><span>Docs</span><ul><li class="active"><a href="/docs/intro">Intro</a></li></ul></li>` +
		`<li role="separator"><hr></li>` +
		`</ul>`

	if diff := cmp.Diff(want, m.Render()); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReturnsIndependentTrees(t *testing.T) {
	d, err := Parse([]byte(site))
	require.NoError(t, err)

	a, err := d.Build()
	require.NoError(t, err)
	b, err := d.Build()
	require.NoError(t, err)

	a.SetActiveFromURL("/about")

	assert.True(t, a.IsActive())
	assert.False(t, b.IsActive())
}

func TestBuildOptions(t *testing.T) {
	d, err := Parse([]byte(`
tag: ol
prefix: /en
prepend: <h2>Menu</h2>
append: <hr>
items:
  - url: /about
  - url: https://example.com
    text: Ext
`))
	require.NoError(t, err)

	m, err := d.Build()
	require.NoError(t, err)

	assert.Equal(t,
		`<h2>Menu</h2><ol><li><a href="/en/about">/about</a></li><li><a href="https://example.com">Ext</a></li></ol><hr>`,
		m.Render())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		path string
	}{
		{name: "empty item", yaml: "items:\n  - text: x\n", path: "items[0]"},
		{name: "url and html", yaml: "items:\n  - url: /\n    html: <hr>\n", path: "items[0]"},
		{
			name: "nested",
			yaml: "items:\n  - url: /\n  - menu:\n      items:\n        - text: x\n",
			path: "items[1].menu.items[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = d.Build()
			require.ErrorIs(t, err, ErrInvalidItem)
			assert.True(t, strings.HasPrefix(err.Error(), tt.path+":"), err.Error())
		})
	}
}

func TestValidateMisplacedFields(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		path string
	}{
		{name: "header on link", yaml: "items:\n  - url: /\n    header: <b>x</b>\n", path: "items[0].header"},
		{name: "class on html", yaml: "items:\n  - html: <hr>\n    class: sep\n", path: "items[0].class"},
		{name: "attributes on html", yaml: "items:\n  - html: <hr>\n    attributes:\n      id: x\n", path: "items[0].attributes"},
		{name: "text on html", yaml: "items:\n  - html: <hr>\n    text: x\n", path: "items[0].text"},
		{name: "text on menu", yaml: "items:\n  - text: x\n    menu:\n      items: []\n", path: "items[0].text"},
		{
			name: "nested",
			yaml: "items:\n  - menu:\n      items:\n        - url: /a\n          header: x\n",
			path: "items[0].menu.items[0].header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = d.Build()
			require.ErrorIs(t, err, ErrMisplacedField)
			assert.True(t, strings.HasPrefix(err.Error(), tt.path+":"), err.Error())
		})
	}
}

func TestBuildSubmenuClassAndAttributes(t *testing.T) {
	d, err := Parse([]byte(`
items:
  - header: <b>Docs</b>
    class: sub
    attributes:
      role: menu
    parentClass: dropdown
    menu:
      class: inner
      items:
        - url: /docs
          text: Docs
`))
	require.NoError(t, err)

	m, err := d.Build()
	require.NoError(t, err)

	assert.Equal(t,
		`<ul><li class="dropdown"><b>Docs</b><ul class="inner sub" role="menu"><li><a href="/docs">Docs</a></li></ul></li></ul>`,
		m.Render())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("items:\n  - url: /\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode menu definition")
}

func TestParseRejectsNonMappingAttributes(t *testing.T) {
	_, err := Parse([]byte("attributes: [a, b]\nitems: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attributes must be a mapping")
}

func TestParseEmpty(t *testing.T) {
	d, err := Parse(nil)
	require.NoError(t, err)

	m, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>", m.Render())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(site), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, d.Items, 4)
	assert.Equal(t, Attributes{{Name: "role", Value: "navigation"}, {Name: "aria-label", Value: "Main"}}, d.Attributes)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
