package storelist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/storelist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := storelist.Errorf(storelist.ENOTFOUND, "file %q not found", "p1.html")

	assert.Equal(t, storelist.ENOTFOUND, storelist.ErrorCode(err))
	assert.Equal(t, "file \"p1.html\" not found", storelist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, storelist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, storelist.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading: %w", storelist.Errorf(storelist.EINVALID, "bad bytes"))

	assert.Equal(t, storelist.EINVALID, storelist.ErrorCode(err))
	assert.Equal(t, "bad bytes", storelist.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, storelist.EINTERNAL, storelist.ErrorCode(err))
	assert.Equal(t, "disk on fire", storelist.ErrorMessage(err))
}
