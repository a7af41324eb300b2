package docparse_test

import (
	"testing"

	"github.com/jdidion/docparse"
	"github.com/stretchr/testify/assert"
)

func TestCleandoc(t *testing.T) {
	t.Parallel()

	t.Run("dedents lines after a flush first line", func(t *testing.T) {
		t.Parallel()

		text := "Summary line.\n\n    Args:\n      x: The value."

		assert.Equal(t, "Summary line.\n\nArgs:\n  x: The value.", docparse.Cleandoc(text))
	})

	t.Run("trims a fully indented docstring", func(t *testing.T) {
		t.Parallel()

		text := "    Summary line.\n    Second line."

		assert.Equal(t, "Summary line.\nSecond line.", docparse.Cleandoc(text))
	})

	t.Run("strips leading and trailing blank lines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Content.", docparse.Cleandoc("\n\n  Content.\n\n"))
	})

	t.Run("returns empty string for whitespace-only input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docparse.Cleandoc("  \n \t \n"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		text := "Summary.\n\n    Args:\n      x: The value."
		once := docparse.Cleandoc(text)

		assert.Equal(t, once, docparse.Cleandoc(once))
	})

	t.Run("keeps relative indentation within the body", func(t *testing.T) {
		t.Parallel()

		text := "Summary.\n  Args:\n    x: The value.\n      Continued."

		assert.Equal(t, "Summary.\nArgs:\n  x: The value.\n    Continued.", docparse.Cleandoc(text))
	})
}
