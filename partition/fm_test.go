package partition_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainbucket/bpqueue"
	"github.com/katalvlaran/gainbucket/partition"
)

// twoClusters builds two 4-cliques of 2-pin nets joined by a single net.
func twoClusters() *partition.Netlist {
	nl := &partition.Netlist{}
	for i := 0; i < 8; i++ {
		nl.Cells = append(nl.Cells, partition.Cell{Name: fmt.Sprintf("c%d", i), Weight: 1})
	}
	for _, base := range []int{0, 4} {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				nl.Nets = append(nl.Nets, partition.Net{
					Name:   fmt.Sprintf("n%d_%d", base+i, base+j),
					Weight: 1,
					Pins:   []int{base + i, base + j},
				})
			}
		}
	}
	nl.Nets = append(nl.Nets, partition.Net{Name: "bridge", Weight: 1, Pins: []int{3, 4}})

	return nl
}

// TestBipartition_Ladder follows one pass in which a cell must wait for
// the balance to allow its move.
func TestBipartition_Ladder(t *testing.T) {
	var stats []partition.PassStats
	res, err := partition.Bipartition(ladder(),
		partition.WithInitial([]int{0, 1, 0, 1}),
		partition.WithBalanceTolerance(0.25),
		partition.WithOnPass(func(st partition.PassStats) { stats = append(stats, st) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 0, 1, 1}, res.Parts)
	assert.Equal(t, 1, res.Cost)
	assert.Equal(t, [2]int{2, 2}, res.Weights)
	assert.Equal(t, 2, res.Passes)

	require.Len(t, stats, 2)
	assert.Equal(t, partition.PassStats{Pass: 1, Moves: 4, Kept: 2, Gain: 10, Cost: 1}, stats[0])
	assert.Equal(t, 2, stats[1].Pass)
	assert.Equal(t, 0, stats[1].Gain)
	assert.Equal(t, 1, stats[1].Cost)
}

// TestBipartition_Clusters checks cut improvement, balance and determinism
// on a random start.
func TestBipartition_Clusters(t *testing.T) {
	nl := twoClusters()
	initial := []int{0, 1, 0, 1, 0, 1, 0, 1}
	before, err := partition.CutCost(nl, initial)
	require.NoError(t, err)

	res, err := partition.Bipartition(nl, partition.WithInitial(initial))
	require.NoError(t, err)
	assert.Less(t, res.Cost, before)

	cost, err := partition.CutCost(nl, res.Parts)
	require.NoError(t, err)
	assert.Equal(t, cost, res.Cost)
	for _, w := range res.Weights {
		assert.GreaterOrEqual(t, w, 3)
		assert.LessOrEqual(t, w, 5)
	}
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1, 0, 1}, initial, "initial assignment must not be modified")

	a, err := partition.Bipartition(nl, partition.WithSeed(42))
	require.NoError(t, err)
	b, err := partition.Bipartition(nl, partition.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 8, a.Weights[0]+a.Weights[1])
}

// TestBipartition_PassLimit stops after a single pass.
func TestBipartition_PassLimit(t *testing.T) {
	calls := 0
	res, err := partition.Bipartition(twoClusters(),
		partition.WithMaxPasses(1),
		partition.WithOnPass(func(partition.PassStats) { calls++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, 1, calls)
}

// TestBipartition_NoNets handles a netlist whose gains are all zero.
func TestBipartition_NoNets(t *testing.T) {
	nl := &partition.Netlist{Cells: []partition.Cell{{Name: "a", Weight: 1}, {Name: "b", Weight: 1}}}
	res, err := partition.Bipartition(nl)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, 1, res.Passes)
	assert.ElementsMatch(t, []int{0, 1}, res.Parts)
}

// TestBipartition_Errors covers input rejection.
func TestBipartition_Errors(t *testing.T) {
	_, err := partition.Bipartition(nil)
	assert.ErrorIs(t, err, partition.ErrNilNetlist)

	_, err = partition.Bipartition(&partition.Netlist{})
	assert.ErrorIs(t, err, partition.ErrEmptyNetlist)

	_, err = partition.Bipartition(ladder(), partition.WithInitial([]int{0, 1}))
	assert.ErrorIs(t, err, partition.ErrBadInitial)

	heavy := ladder()
	heavy.Nets[0].Weight = bpqueue.MaxSpan / 2
	_, err = partition.Bipartition(heavy)
	assert.ErrorIs(t, err, bpqueue.ErrInvalidRange)
}

// TestOptions_Panics verifies option constructors reject meaningless input.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { partition.WithMaxPasses(0) })
	assert.Panics(t, func() { partition.WithBalanceTolerance(-0.1) })
	assert.Panics(t, func() { partition.WithBalanceTolerance(0.5) })
	assert.Panics(t, func() { partition.WithOnPass(nil) })

	o := partition.DefaultOptions()
	assert.Equal(t, partition.DefaultMaxPasses, o.MaxPasses)
	assert.Equal(t, partition.DefaultTolerance, o.Tolerance)
}

// TestBipartition_RandomInvariants runs random netlists and checks the
// reported cost, the balance window and that a pass never makes things worse.
func TestBipartition_RandomInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		nl := randomNetlist(60, 120, seed)
		prev := -1
		res, err := partition.Bipartition(nl,
			partition.WithSeed(seed),
			partition.WithOnPass(func(st partition.PassStats) {
				if prev >= 0 {
					assert.LessOrEqual(t, st.Cost, prev, "seed %d pass %d", seed, st.Pass)
				}
				assert.GreaterOrEqual(t, st.Gain, 0)
				prev = st.Cost
			}),
		)
		require.NoError(t, err)

		cost, err := partition.CutCost(nl, res.Parts)
		require.NoError(t, err)
		assert.Equal(t, cost, res.Cost)
		// W=60, tolerance 0.1: parts within [24, 36].
		for _, w := range res.Weights {
			assert.GreaterOrEqual(t, w, 24)
			assert.LessOrEqual(t, w, 36)
		}
	}
}
