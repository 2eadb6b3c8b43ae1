package soup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleTopLevelTagIsReturnedDirectly(t *testing.T) {
	root := Parse(`<html><tag PARAM="true"></html>`)

	require.Equal(t, "html", root.Name)
	require.Nil(t, root.Parent())
	require.Len(t, root.Tags(), 1)

	child := root.Tags()[0]
	assert.Equal(t, "tag", child.Name)
	assert.Same(t, root, child.Parent())

	v, ok := child.Parameters.Get("param")
	require.True(t, ok)
	assert.Equal(t, "true", v)
	assert.Equal(t, []string{"PARAM"}, child.Parameters.Keys())
}

func TestParseStrictModeRejectsLowercaseLookup(t *testing.T) {
	root := Parse(`<html><tag PARAM="true"></html>`, WithStrictParameters())
	child := root.Tags()[0]

	_, ok := child.Parameters.Get("param")
	assert.False(t, ok)
	_, ok = child.Parameters.Get("PARAM")
	assert.True(t, ok)
}

func TestParseVoidSiblingsDoNotNest(t *testing.T) {
	root := Parse(`<div><br><img><hr></div>`)

	require.Equal(t, "div", root.Name)
	children := root.Tags()
	require.Len(t, children, 3)

	names := []string{children[0].Name, children[1].Name, children[2].Name}
	assert.Equal(t, []string{"br", "img", "hr"}, names)

	for _, c := range children {
		assert.True(t, c.IsNonPair)
		assert.Same(t, root, c.Parent())
		assert.Empty(t, c.Content)
	}
}

func TestParseMultipleTopLevelTagsReturnSyntheticRoot(t *testing.T) {
	root := Parse("<sometag />\n<invalid tag=something\">notice...</invalid>\n<something_parsable />\n")

	assert.Equal(t, "", root.Name)
	tags := root.Tags()
	require.Len(t, tags, 3)

	assert.Equal(t, "sometag", tags[0].Name)
	assert.True(t, tags[0].IsNonPair)

	assert.Equal(t, "invalid", tags[1].Name)
	v, _ := tags[1].Parameters.Get("tag")
	assert.Equal(t, "something", v)
	assert.Contains(t, tags[1].ContentWithoutTags(), "notice")

	assert.Equal(t, "something_parsable", tags[2].Name)
	assert.True(t, tags[2].IsNonPair)
}

func TestParseUnclosedCodeTagBecomesText(t *testing.T) {
	root := Parse("<code>Bla</code\n<!-- -->\n    <div class=\"rating\">here is the rating</div>")

	assert.Equal(t, "", root.Name)

	// <code> was never properly closed, so its accumulated content is
	// reshaped out to root at EOF as siblings, and the ill-formed "</code"
	// attempt survives as text rather than vanishing.
	tags := root.Tags()
	require.Len(t, tags, 2)

	code := tags[0]
	assert.Equal(t, "code", code.Name)
	assert.True(t, code.IsNonPair)
	assert.Empty(t, code.Content)

	var recoveredText string
	commentFound := false
	for _, item := range root.Content {
		switch v := item.(type) {
		case string:
			recoveredText += v
		case Comment:
			commentFound = true
		}
	}
	assert.Contains(t, recoveredText, "Bla")
	assert.Contains(t, recoveredText, "</code")
	assert.True(t, commentFound)

	div := tags[1]
	assert.Equal(t, "div", div.Name)
	class, _ := div.Parameters.Get("class")
	assert.Equal(t, "rating", class)
}

func TestParseEntitiesDecodeIntoText(t *testing.T) {
	root := Parse("&amp;<b>x</b>&lt;")

	assert.Equal(t, "", root.Name)
	require.Len(t, root.Content, 3)
	assert.Equal(t, "&", root.Content[0])
	b, ok := root.Content[1].(*Tag)
	require.True(t, ok)
	assert.Equal(t, "b", b.Name)
	assert.Equal(t, "<", root.Content[2])
}

func TestParseEmbeddedNewlineInAttribute(t *testing.T) {
	root := Parse("<ubertag attribute=\"long attribute\n continues here\">x</ubertag>")

	require.Equal(t, "ubertag", root.Name)
	v, ok := root.Parameters.Get("attribute")
	require.True(t, ok)
	assert.Equal(t, "long attribute\n continues here", v)
}

func TestParseReshapeHoistsUnclosedSiblings(t *testing.T) {
	// "p" is not a default void tag, so three unclosed <p>s nest until the
	// single </div> arrives and must be reshaped into three siblings.
	root := Parse("<div><p>one<p>two<p>three</div>")

	require.Equal(t, "div", root.Name)
	ps := root.Tags()
	require.Len(t, ps, 3)
	for _, p := range ps {
		assert.Equal(t, "p", p.Name)
		assert.True(t, p.IsNonPair)
		assert.Same(t, root, p.Parent())
	}
}

func TestParseSpuriousCloseTagIsDiscarded(t *testing.T) {
	root := Parse("<div>x</span></div>")

	require.Equal(t, "div", root.Name)
	assert.Equal(t, "x", root.Content[0])
}

func TestParseStripsLeadingBOM(t *testing.T) {
	root := Parse("\xef\xbb\xbf<a>x</a>")
	assert.Equal(t, "a", root.Name)
}
