package soup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntityNamed(t *testing.T) {
	assert.Equal(t, "&", decodeEntity("&amp;"))
	assert.Equal(t, "<", decodeEntity("&lt;"))
	assert.Equal(t, " ", decodeEntity("&nbsp;"))
}

func TestDecodeEntityUnknownRoundTrips(t *testing.T) {
	assert.Equal(t, "&foo;", decodeEntity("&foo;"))
}

func TestDecodeEntityNumeric(t *testing.T) {
	assert.Equal(t, "A", decodeEntity("&#65;"))
	assert.Equal(t, "A", decodeEntity("&#x41;"))
}

func TestDecodeEntityMalformedNumericRoundTrips(t *testing.T) {
	assert.Equal(t, "&#;", decodeEntity("&#;"))
	assert.Equal(t, "&#xzz;", decodeEntity("&#xzz;"))
}
