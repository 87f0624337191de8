// Package robin enumerates the parts of a k-way partition in round-robin
// order, skipping one part. A k-way FM pass uses it to list the candidate
// destinations of a cell without allocating.
package robin

import (
	"fmt"
	"iter"
)

// Robin holds a cyclic successor table over parts 0..k-1.
type Robin struct {
	cycle []int
}

// New builds the cycle 0 → 1 → … → k-1 → 0.
// Panics if numParts < 1.
func New(numParts int) *Robin {
	if numParts < 1 {
		panic(fmt.Sprintf("robin: New(%d): need at least one part", numParts))
	}
	cycle := make([]int, numParts)
	for i := range cycle {
		cycle[i] = i + 1
	}
	cycle[numParts-1] = 0

	return &Robin{cycle: cycle}
}

// Len returns the number of parts.
func (r *Robin) Len() int { return len(r.cycle) }

// Exclude yields every part except from, starting right after it and
// wrapping around.
func (r *Robin) Exclude(from int) iter.Seq[int] {
	if from < 0 || from >= len(r.cycle) {
		panic(fmt.Sprintf("robin: Exclude(%d): part out of range [0,%d)", from, len(r.cycle)))
	}
	return func(yield func(int) bool) {
		for cur := r.cycle[from]; cur != from; cur = r.cycle[cur] {
			if !yield(cur) {
				return
			}
		}
	}
}
