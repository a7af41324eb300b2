package docparse_test

import (
	"errors"
	"testing"

	"github.com/jdidion/docparse"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docparse.Errorf(docparse.ENOTFOUND, "entry %q not found", "test")

	assert.Equal(t, docparse.ENOTFOUND, docparse.ErrorCode(err))
	assert.Equal(t, "entry \"test\" not found", docparse.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docparse.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docparse.EINTERNAL, docparse.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docparse.ErrorMessage(nil))
}
