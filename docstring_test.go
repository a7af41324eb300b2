package docparse_test

import (
	"testing"

	"github.com/jdidion/docparse"
	"github.com/stretchr/testify/assert"
)

func TestDocString_Parameter(t *testing.T) {
	t.Parallel()

	doc := &docparse.DocString{
		Parameters: []docparse.Field{
			{Name: "x", Type: "int", Description: "The value."},
			{Name: "y", Description: "Another value."},
		},
	}

	t.Run("returns the named parameter", func(t *testing.T) {
		t.Parallel()

		f, ok := doc.Parameter("x")

		assert.True(t, ok)
		assert.Equal(t, "int", f.Type)
		assert.Equal(t, "The value.", f.Description)
	})

	t.Run("reports a missing parameter", func(t *testing.T) {
		t.Parallel()

		_, ok := doc.Parameter("z")

		assert.False(t, ok)
	})
}

func TestDocString_Raise(t *testing.T) {
	t.Parallel()

	doc := &docparse.DocString{Raises: map[string]string{"ValueError": "If x is negative."}}

	desc, ok := doc.Raise("ValueError")
	assert.True(t, ok)
	assert.Equal(t, "If x is negative.", desc)

	_, ok = doc.Raise("KeyError")
	assert.False(t, ok)
}

func TestDocString_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, (&docparse.DocString{}).Empty())
	assert.False(t, (&docparse.DocString{Summary: "Something."}).Empty())
	assert.False(t, (&docparse.DocString{Returns: &docparse.TypeDoc{}}).Empty())
}
