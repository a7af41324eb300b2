package bloom_test

import (
	"testing"

	"github.com/jdidion/docparse/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("src/module.py"))

	f.Add("src/module.py")

	assert.True(t, f.Test("src/module.py"))
	assert.False(t, f.Test("src/other.py"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("a.py")
	f.Add("b.py")
	f.Add("c.py")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}
