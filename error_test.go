package codetex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/codetex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := codetex.Errorf(codetex.ENOTFOUND, "extraction %q not found", "abc")

	assert.Equal(t, codetex.ENOTFOUND, codetex.ErrorCode(err))
	assert.Equal(t, "extraction \"abc\" not found", codetex.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("running block: %w", codetex.Errorf(codetex.EEXEC, "exit status 1"))

	assert.Equal(t, codetex.EEXEC, codetex.ErrorCode(err))
	assert.Equal(t, "exit status 1", codetex.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, codetex.EINTERNAL, codetex.ErrorCode(err))
	assert.Equal(t, "Internal error.", codetex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, codetex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, codetex.ErrorMessage(nil))
}
