package bpqueue

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gainbucket/dllist"
)

// MaxSpan is the largest number of distinct keys a queue may cover.
const MaxSpan = 1 << 24

// New creates an empty queue accepting keys in [low, high].
// Returns ErrInvalidRange if low > high or the range covers more than
// MaxSpan keys.
// Complexity: O(high-low).
func New[T any](low, high int) (*BPQueue[T], error) {
	if low > high {
		return nil, fmt.Errorf("New(%d, %d): %w", low, high, ErrInvalidRange)
	}
	// unsigned difference stays exact when high-low overflows int
	if uint(high)-uint(low) >= MaxSpan {
		return nil, fmt.Errorf("New(%d, %d): more than %d keys: %w", low, high, MaxSpan, ErrInvalidRange)
	}
	q := &BPQueue[T]{
		offset: low - 1,
		high:   high - low + 1,
	}
	q.bucket = make([]dllist.List[Item[T]], q.high+2)
	for i := range q.bucket {
		q.bucket[i].Init()
	}
	q.sentinel.Init(Item[T]{})
	q.bucket[0].AttachBack(&q.sentinel)

	return q, nil
}

// MustNew is New that panics on an invalid range.
func MustNew[T any](low, high int) *BPQueue[T] {
	q, err := New[T](low, high)
	if err != nil {
		panic(err)
	}

	return q
}

func violate(op string, err error) {
	panic(&dllist.PreconditionError{Op: "bpqueue." + op, Err: err})
}

// IsEmpty reports whether no item is queued.
// Complexity: O(1).
func (q *BPQueue[T]) IsEmpty() bool {
	return q.max == 0
}

// MaxKey returns the highest key present. On an empty queue it returns
// low-1 by convention.
// Complexity: O(1).
func (q *BPQueue[T]) MaxKey() int {
	return q.offset + q.max
}

// Low returns the smallest accepted key.
func (q *BPQueue[T]) Low() int { return q.offset + 1 }

// High returns the largest accepted key.
func (q *BPQueue[T]) High() int { return q.offset + q.high }

// Key returns the external key last recorded on n.
func (q *BPQueue[T]) Key(n *dllist.Node[Item[T]]) int {
	return q.offset + n.Data.index
}

// Contains reports whether n is currently resident in one of the queue's
// buckets.
func (q *BPQueue[T]) Contains(n *dllist.Node[Item[T]]) bool {
	idx := n.Data.index
	if idx < 1 || idx > q.high {
		return false
	}

	return n.List() == &q.bucket[idx]
}

// Clear empties the queue. Queued nodes are released to the Free state.
// Complexity: O(n) over queued nodes.
func (q *BPQueue[T]) Clear() {
	for q.max > 0 {
		q.bucket[q.max].Clear()
		q.max--
	}
}

// SetKey records key on a node that is not in the queue, for a later
// AppendFrom.
func (q *BPQueue[T]) SetKey(n *dllist.Node[Item[T]], key int) {
	if n.State() == dllist.Resident {
		violate("SetKey", dllist.ErrResident)
	}
	n.Data.index = q.index("SetKey", key)
}

// Append inserts n at the back of the bucket for key (FIFO within a key).
// Complexity: O(1).
func (q *BPQueue[T]) Append(n *dllist.Node[Item[T]], key int) {
	idx := q.index("Append", key)
	q.bucket[idx].AttachBack(n)
	n.Data.index = idx
	q.raise(idx)
}

// AppendLeft inserts n at the front of the bucket for key (LIFO within a key).
// Complexity: O(1).
func (q *BPQueue[T]) AppendLeft(n *dllist.Node[Item[T]], key int) {
	idx := q.index("AppendLeft", key)
	q.bucket[idx].AttachFront(n)
	n.Data.index = idx
	q.raise(idx)
}

// AppendFrom bulk-loads nodes whose keys were recorded with SetKey, in
// FIFO order, then locates max with a single downward scan.
// The whole batch is checked before the first attach, so a rejected batch
// leaves the queue untouched.
// Complexity: O(len(nodes) + high).
func (q *BPQueue[T]) AppendFrom(nodes ...*dllist.Node[Item[T]]) {
	seen := make(map[*dllist.Node[Item[T]]]struct{}, len(nodes))
	for _, n := range nodes {
		if idx := n.Data.index; idx < 1 || idx > q.high {
			violate("AppendFrom", ErrKeyOutOfRange)
		}
		if _, dup := seen[n]; dup || n.State() == dllist.Resident {
			violate("AppendFrom", dllist.ErrResident)
		}
		seen[n] = struct{}{}
	}
	for _, n := range nodes {
		q.bucket[n.Data.index].AttachBack(n)
	}
	q.max = q.high
	q.rewind()
}

// PopHighest detaches and returns the front node of the highest bucket.
// Panics with ErrEmptyQueue when the queue is empty.
// Complexity: amortized O(1).
func (q *BPQueue[T]) PopHighest() *dllist.Node[Item[T]] {
	if q.max == 0 {
		violate("PopHighest", ErrEmptyQueue)
	}
	n := q.bucket[q.max].PopFront()
	q.rewind()

	return n
}

// Detach removes n from the queue, leaving it Free.
// Complexity: amortized O(1).
func (q *BPQueue[T]) Detach(n *dllist.Node[Item[T]]) {
	q.mustContain("Detach", n)
	n.Detach()
	q.rewind()
}

// DetachTo removes n from the queue and appends it to dst as one move,
// e.g. to park it on a waiting list.
func (q *BPQueue[T]) DetachTo(dst *dllist.List[Item[T]], n *dllist.Node[Item[T]]) {
	q.Detach(n)
	dst.AttachBack(n)
}

// IncreaseKey moves n up by delta. The node goes to the front of its new
// bucket so a freshly promoted item is selected before older items of the
// same key.
// Complexity: O(1).
func (q *BPQueue[T]) IncreaseKey(n *dllist.Node[Item[T]], delta int) {
	if delta <= 0 {
		violate("IncreaseKey", ErrBadDelta)
	}
	q.mustContain("IncreaseKey", n)
	if delta > q.high-n.Data.index {
		violate("IncreaseKey", ErrKeyOutOfRange)
	}
	n.Detach()
	n.Data.index += delta
	q.bucket[n.Data.index].AttachFront(n)
	q.raise(n.Data.index)
}

// DecreaseKey moves n down by delta. The node goes to the back of its new
// bucket.
// Complexity: amortized O(1).
func (q *BPQueue[T]) DecreaseKey(n *dllist.Node[Item[T]], delta int) {
	if delta <= 0 {
		violate("DecreaseKey", ErrBadDelta)
	}
	q.mustContain("DecreaseKey", n)
	if delta >= n.Data.index {
		violate("DecreaseKey", ErrKeyOutOfRange)
	}
	n.Detach()
	n.Data.index -= delta
	q.bucket[n.Data.index].AttachBack(n)
	q.rewind()
}

// ModifyKey shifts the key of n by delta. Locked nodes are left untouched,
// as is any node when delta is zero.
func (q *BPQueue[T]) ModifyKey(n *dllist.Node[Item[T]], delta int) {
	if n.IsLocked() {
		return
	}
	switch {
	case delta > 0:
		q.IncreaseKey(n, delta)
	case delta < 0:
		q.DecreaseKey(n, -delta)
	}
}

// Items iterates queued nodes by descending key, front to back within a
// key. The visited node may be detached through the queue during the loop.
func (q *BPQueue[T]) Items() iter.Seq2[int, *dllist.Node[Item[T]]] {
	return func(yield func(int, *dllist.Node[Item[T]]) bool) {
		for i := q.max; i > 0; i-- {
			for n := range q.bucket[i].All() {
				if !yield(q.offset+i, n) {
					return
				}
			}
		}
	}
}

// Check verifies every bucket's linkage, the stored indices, the sentinel
// and the max invariant. It is meant for tests and debugging.
// Complexity: O(n + high).
func (q *BPQueue[T]) Check() error {
	if q.sentinel.List() != &q.bucket[0] || q.bucket[0].Len() != 1 {
		return fmt.Errorf("bucket 0 must hold only the sentinel: %w", dllist.ErrCorrupt)
	}
	if q.max < 0 || q.max > q.high {
		return fmt.Errorf("max=%d outside [0, %d]: %w", q.max, q.high, ErrBrokenMax)
	}
	for i := 1; i < len(q.bucket); i++ {
		b := &q.bucket[i]
		if err := b.Check(); err != nil {
			return fmt.Errorf("bucket %d: %w", i, err)
		}
		switch {
		case i > q.max && !b.IsEmpty():
			return fmt.Errorf("bucket %d occupied above max=%d: %w", i, q.max, ErrBrokenMax)
		case i == q.max && b.IsEmpty():
			return fmt.Errorf("max=%d points at an empty bucket: %w", q.max, ErrBrokenMax)
		}
		for n := range b.All() {
			if n.Data.index != i {
				return fmt.Errorf("node in bucket %d records index %d: %w", i, n.Data.index, dllist.ErrCorrupt)
			}
		}
	}

	return nil
}

// index maps an external key to a bucket index, enforcing [1, high].
func (q *BPQueue[T]) index(op string, key int) int {
	idx := key - q.offset
	if idx < 1 || idx > q.high {
		violate(op, ErrKeyOutOfRange)
	}

	return idx
}

func (q *BPQueue[T]) mustContain(op string, n *dllist.Node[Item[T]]) {
	if q.Contains(n) {
		return
	}
	if n.IsLocked() {
		violate(op, dllist.ErrLocked)
	}
	violate(op, ErrNotQueued)
}

func (q *BPQueue[T]) raise(idx int) {
	if q.max < idx {
		q.max = idx
	}
}

// rewind lowers max to the highest non-empty bucket. The sentinel keeps
// bucket 0 occupied, so the loop stops at 0 at the latest. Each step is paid
// for by an earlier raise, which keeps the cost amortized O(1).
func (q *BPQueue[T]) rewind() {
	for q.bucket[q.max].IsEmpty() {
		q.max--
	}
}
