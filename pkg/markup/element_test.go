package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestElPlain(t *testing.T) {
	assert.Equal(t, "<ul></ul>", El("ul", nil))
	assert.Equal(t, "<li>a</li>", El("li", nil, "a"))
}

func TestElClassShorthand(t *testing.T) {
	attrs := NewAttributes().AddClass("extra").Set("id", "main")

	got := El("ul.nav.main", attrs, "<li>x</li>")

	assert.Equal(t, `<ul class="nav main extra" id="main"><li>x</li></ul>`, got)
	assert.Equal(t, []string{"extra"}, attrs.Classes(), "caller attributes must not change")
}

func TestElContentsKeepOrder(t *testing.T) {
	got := El("ol", nil, "<li>1</li>", "<li>2</li>", "<li>3</li>")
	assert.Equal(t, "<ol><li>1</li><li>2</li><li>3</li></ol>", got)
}

func TestElEmptyTagName(t *testing.T) {
	assert.Equal(t, `<div class="box"></div>`, El(".box", nil))
}

func TestElInvalidTagName(t *testing.T) {
	assert.Equal(t, `<div></div>`, El(`ul onclick="evil()"`, nil))
	assert.Equal(t, `<div>x</div>`, El("ul>", nil, "x"))
	assert.Equal(t, `<div class="nav"></div>`, El("u l.nav", nil))
}

func TestElEscapesShorthandClasses(t *testing.T) {
	assert.Equal(t, `<ul class="a&#34;onclick=&#34;x"></ul>`, El(`ul.a"onclick="x`, nil))
}

func TestElParsesAsNestedTree(t *testing.T) {
	inner := El("ul", nil, El("li", nil, "b"))
	out := El("ul.outer", NewAttributes().Set("title", `<"x">`), El("li", nil, "a"), El("li", nil, inner))

	nodes, err := html.ParseFragment(strings.NewReader(out), &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div})
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	ul := nodes[0]
	assert.Equal(t, "ul", ul.Data)

	attrs := map[string]string{}
	for _, a := range ul.Attr {
		attrs[a.Key] = a.Val
	}
	assert.Equal(t, "outer", attrs["class"])
	assert.Equal(t, `<"x">`, attrs["title"])

	var items []*html.Node
	for c := ul.FirstChild; c != nil; c = c.NextSibling {
		items = append(items, c)
	}
	require.Len(t, items, 2)
	assert.Equal(t, "ul", items[1].FirstChild.Data)
}
