package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentRefRoundTrip(t *testing.T) {
	ref := FormatContentRef("blog", 42)
	assert.Equal(t, "blog:42", ref)

	kind, id, err := ParseContentRef(ref)
	assert.NoError(t, err)
	assert.Equal(t, "blog", kind)
	assert.Equal(t, uint64(42), id)
}

func TestParseContentRefInvalid(t *testing.T) {
	for _, ref := range []string{"", "blog", "blog:", ":42", "blog:abc"} {
		_, _, err := ParseContentRef(ref)
		assert.Error(t, err, "ref=%s", ref)
	}
}
