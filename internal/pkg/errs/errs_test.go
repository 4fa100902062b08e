//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"course-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("invalid promotion")
	cause := errs.New("promotion has expired")

	t.Run("stdlib errors.Is matches the mark", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("stdlib errors.Is still matches the cause", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("message stays the cause's message", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("nil cause collapses to the mark", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, sentinel.Error(), err.Error())
	})

	t.Run("marks stack across wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "checkout failed")
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("verbose format keeps the cause detail", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.Contains(t, fmt.Sprintf("%+v", err), "promotion has expired")
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil in, nil out", func(t *testing.T) {
		require.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("annotates and keeps the chain", func(t *testing.T) {
		cause := errors.New("no rows")
		err := errs.Wrap(cause, "promotion not found")
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "promotion not found")
	})
}
