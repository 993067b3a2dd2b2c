//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"washdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timedOutError struct {
	op string
}

func (e *timedOutError) Error() string {
	return fmt.Sprintf("%s timed out", e.op)
}

func TestMark(t *testing.T) {
	sentinel := errs.New("operation failed")

	t.Run("mark is visible to errors.Is", func(t *testing.T) {
		marked := errs.Mark(&timedOutError{op: "fetch"}, sentinel)

		assert.ErrorIs(t, marked, sentinel)
	})

	t.Run("the concrete cause stays reachable via errors.As", func(t *testing.T) {
		marked := errs.Mark(&timedOutError{op: "fetch"}, sentinel)

		var cause *timedOutError
		require.ErrorAs(t, marked, &cause)
		assert.Equal(t, "fetch", cause.op)
	})

	t.Run("the message is the cause's, not the mark's", func(t *testing.T) {
		marked := errs.Mark(&timedOutError{op: "fetch"}, sentinel)

		assert.Equal(t, "fetch timed out", marked.Error())
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})

	t.Run("a wrapped mark still matches", func(t *testing.T) {
		marked := errs.Wrap(errs.Mark(errors.New("row missing"), sentinel), "loading booking")

		assert.ErrorIs(t, marked, sentinel)
	})
}
