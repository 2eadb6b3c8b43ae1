package soup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStringRoundTripsStructurallyEqualTree(t *testing.T) {
	root := Parse(`<div class="a"><br><p>hi &amp; bye</p></div>`)
	out := root.ToString()

	reparsed := Parse(out)
	assert.True(t, root.Equal(reparsed))

	a := root.Tags()[1] // <p>
	b := reparsed.Tags()[1]
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.ContentWithoutTags(), b.ContentWithoutTags())
}

func TestToStringVoidTagHasSelfClosingSlash(t *testing.T) {
	root := NewTag("img")
	root.IsNonPair = true
	root.Parameters.Set("src", "x.png")

	assert.Equal(t, `<img src="x.png" />`, root.ToString())
}

func TestToStringEscapesTextButNotScriptBody(t *testing.T) {
	div := NewTag("div")
	div.Content = []any{"a < b & c"}

	assert.Equal(t, "<div>a &lt; b &amp; c</div>", div.ToString())

	script := NewTag("script")
	script.Content = []any{"if (a < b) {}"}
	assert.Equal(t, "<script>if (a < b) {}</script>", script.ToString())
}

func TestToStringEscapesQuoteInAttributeValue(t *testing.T) {
	tag := NewTag("a")
	tag.Parameters.Set("title", `say "hi"`)
	assert.Equal(t, `<a title="say &quot;hi&quot;"></a>`, tag.ToString())
}

func TestToStringBareParameterWithEmptyValue(t *testing.T) {
	tag := NewTag("input")
	tag.IsNonPair = true
	tag.Parameters.Set("disabled", "")
	assert.Equal(t, "<input disabled />", tag.ToString())
}

func TestPrettifyIndentsNestedTags(t *testing.T) {
	root := Parse(`<div><p>hi</p></div>`)
	out := root.Prettify(0)
	assert.Equal(t, "<div>\n  <p>hi</p>\n</div>\n", out)
}
