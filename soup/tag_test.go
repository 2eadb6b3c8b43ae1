package soup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagContentWithoutTags(t *testing.T) {
	root := Parse(`<div>one<span>two</span>three</div>`)
	assert.Equal(t, "onetwothree", root.ContentWithoutTags())
}

func TestTagEqualIgnoresContentAndParent(t *testing.T) {
	a := NewTag("a")
	a.Parameters.Set("id", "1")
	b := NewTag("a")
	b.Parameters.Set("id", "1")
	b.Content = append(b.Content, "unrelated text")

	assert.True(t, a.Equal(b))

	c := NewTag("a")
	c.Parameters.Set("id", "2")
	assert.False(t, a.Equal(c))
}

func TestTagDoubleLinkRestoresParents(t *testing.T) {
	root := NewTag("root")
	child := NewTag("child")
	root.Content = append(root.Content, child)
	require.Nil(t, child.Parent())

	root.DoubleLink()
	assert.Same(t, root, child.Parent())
}

func TestTagsFiltersNonTagContent(t *testing.T) {
	root := Parse(`<div>text<!-- c --><span>x</span></div>`)
	tags := root.Tags()
	require.Len(t, tags, 1)
	assert.Equal(t, "span", tags[0].Name)
}
