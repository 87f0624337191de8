package dllist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainbucket/dllist"
)

// mustPanicWith runs fn and asserts it panics with a *PreconditionError
// whose chain contains want.
func mustPanicWith(t *testing.T, want error, fn func(), msg string) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s: expected panic", msg)
		err, ok := r.(error)
		require.True(t, ok, "%s: panic value %v is not an error", msg, r)
		var pe *dllist.PreconditionError
		require.True(t, errors.As(err, &pe), "%s: panic %v is not a PreconditionError", msg, err)
		require.ErrorIs(t, err, want, msg)
	}()
	fn()
}

// payloads collects Data front to back.
func payloads(l *dllist.List[int]) []int {
	out := []int{}
	for n := range l.All() {
		out = append(out, n.Data)
	}

	return out
}

// isolated reports the self-loop encoding through the public surface.
func isolated(n *dllist.Node[int]) bool {
	return n.List() == nil && n.Next() == nil && n.Prev() == nil && n.State() != dllist.Resident
}
