package soup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDepthFirstWithParams(t *testing.T) {
	root := Parse(`<div><x a="1"/><y><x a="1"/><x a="2"/></y></div>`)

	params := NewParams(false)
	params.Set("a", "1")

	matches := root.Find("x", FindOptions{Params: params})
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Equal(t, "x", m.Name)
		v, _ := m.Parameters.Get("a")
		assert.Equal(t, "1", v)
	}
}

func TestFindEmptyNameMatchesEverything(t *testing.T) {
	root := Parse(`<div><a/><b/></div>`)
	matches := root.Find("")
	// self (div) + a + b
	assert.Len(t, matches, 3)
}

func TestDepthFirstVisitsEveryNodeOnce(t *testing.T) {
	root := Parse(`<div>text1<a>text2</a><b/></div>`)
	var visited []any
	root.DepthFirst(false, func(item any) bool {
		visited = append(visited, item)
		return true
	})
	assert.Len(t, visited, 5) // div, "text1", a, "text2", b
}

func TestBreadthFirstVisitsSelfThenChildrenThenGrandchildren(t *testing.T) {
	root := Parse(`<div><a><c/></a><b/></div>`)
	var order []string
	root.BreadthFirst(true, func(item any) bool {
		order = append(order, item.(*Tag).Name)
		return true
	})
	assert.Equal(t, []string{"div", "a", "b", "c"}, order)
}

func TestWfindRestrictsToDirectChildren(t *testing.T) {
	root := Parse(`<div><a><b/></a><c><b/></c></div>`)

	// a "b" whose immediate parent is a matched "a"
	direct := root.Wfind("a").Wfind("b")
	require.Len(t, direct.Tags(), 1)
	assert.Same(t, root.Tags()[0].Tags()[0], direct.Tags()[0])
}

func TestMatchIsDescendantChained(t *testing.T) {
	root := Parse(`<div><a><wrap><b/></wrap></a></div>`)

	// match allows "b" to be any descendant of "a", not just a direct child
	matches := root.Match(MatchStep{Name: "a"}, MatchStep{Name: "b"})
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].Name)
}

func TestMatchPathsRequiresExactDirectChildPath(t *testing.T) {
	root := Parse(`<div><a><wrap><b/></wrap></a></div>`)

	// wrap intervenes, so the direct-child path a -> b does not exist
	matches := root.MatchPaths(MatchStep{Name: "a"}, MatchStep{Name: "b"})
	assert.Empty(t, matches)
}
