package bpqueue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainbucket/bpqueue"
	"github.com/katalvlaran/gainbucket/dllist"
)

// TestQueue_RandomOps drives random operations against a plain key map and
// checks MaxKey, membership and the structural invariants after each step.
func TestQueue_RandomOps(t *testing.T) {
	const (
		low, high = -6, 6
		cells     = 40
		steps     = 5000
	)
	rng := rand.New(rand.NewSource(7))
	q := bpqueue.MustNew[int](low, high)
	var waiting dllist.List[bpqueue.Item[int]]

	nodes := make([]*dllist.Node[bpqueue.Item[int]], cells)
	keys := make(map[int]int) // queued cell → key
	for i := range nodes {
		nodes[i] = bpqueue.NewNode(i)
	}

	maxOf := func() (int, bool) {
		best, ok := 0, false
		for _, k := range keys {
			if !ok || k > best {
				best, ok = k, true
			}
		}
		return best, ok
	}

	for step := 0; step < steps; step++ {
		i := rng.Intn(cells)
		n := nodes[i]
		_, queued := keys[i]

		switch op := rng.Intn(6); {
		case !queued && n.State() == dllist.Free:
			k := low + rng.Intn(high-low+1)
			if op%2 == 0 {
				q.Append(n, k)
			} else {
				q.AppendLeft(n, k)
			}
			keys[i] = k
		case !queued && n.List() == &waiting:
			n.Detach()
			k := low + rng.Intn(high-low+1)
			q.Append(n, k)
			keys[i] = k
		case !queued:
			// locked: key updates are inert
			q.ModifyKey(n, 1)
			n.Clear()
		case op == 0:
			delete(keys, i)
			q.Detach(n)
		case op == 1:
			delete(keys, i)
			q.DetachTo(&waiting, n)
		case op == 2:
			top, _ := maxOf()
			got := q.PopHighest()
			require.Equal(t, top, q.Key(got), "step %d", step)
			delete(keys, got.Data.Value)
			if rng.Intn(2) == 0 {
				got.Lock()
			}
		default:
			d := rng.Intn(7) - 3
			nk := keys[i] + d
			if nk < low || nk > high {
				continue
			}
			q.ModifyKey(n, d)
			keys[i] = nk
		}

		top, ok := maxOf()
		require.Equal(t, !ok, q.IsEmpty(), "step %d", step)
		if ok {
			require.Equal(t, top, q.MaxKey(), "step %d", step)
		}
		require.NoError(t, q.Check(), "step %d", step)
		require.NoError(t, waiting.Check(), "step %d", step)
	}
}
