package soup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsCaseInsensitiveLookup(t *testing.T) {
	p := NewParams(false)
	p.Set("PARAM", "true")

	v, ok := p.Get("param")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	assert.Equal(t, []string{"PARAM"}, p.Keys())
}

func TestParamsStrictLookup(t *testing.T) {
	p := NewParams(true)
	p.Set("PARAM", "true")

	_, ok := p.Get("param")
	assert.False(t, ok)
}

func TestParamsSetReplacesCasingAndKeepsPosition(t *testing.T) {
	p := NewParams(false)
	p.Set("Key", "1")
	p.Set("KEY", "2")

	assert.Equal(t, []string{"KEY"}, p.Keys())
	v, _ := p.Get("key")
	assert.Equal(t, "2", v)
}

func TestParamsContainsSubset(t *testing.T) {
	p := NewParams(false)
	p.Set("class", "rating")
	p.Set("id", "x")

	subset := NewParams(false)
	subset.Set("class", "rating")

	assert.True(t, p.ContainsSubset(subset))

	subset.Set("missing", "1")
	assert.False(t, p.ContainsSubset(subset))
}

func TestParamsEqualIsOrderIndependent(t *testing.T) {
	a := NewParams(false)
	a.Set("x", "1")
	a.Set("y", "2")

	b := NewParams(false)
	b.Set("y", "2")
	b.Set("x", "1")

	assert.True(t, a.Equal(b))
}

func TestParamsDeleteAndClear(t *testing.T) {
	p := NewParams(false)
	p.Set("a", "1")
	p.Set("b", "2")

	p.Delete("a")
	assert.False(t, p.Has("a"))
	assert.Equal(t, 1, p.Len())

	p.Clear()
	assert.Equal(t, 0, p.Len())
}
