// Package bpqueue defines the bounded priority queue type, its item payload
// and the sentinel errors it reports.
//
// Errors:
//
//	ErrInvalidRange   - New with low > high or more than MaxSpan keys (returned).
//	ErrKeyOutOfRange  - a key or key shift leaves the queue bounds (panic).
//	ErrEmptyQueue     - PopHighest on an empty queue (panic).
//	ErrNotQueued      - the node is not resident in this queue (panic).
//	ErrBadDelta       - IncreaseKey/DecreaseKey with delta <= 0 (panic).
//	ErrBrokenMax      - Check found max not on the highest occupied bucket.
package bpqueue

import (
	"errors"

	"github.com/katalvlaran/gainbucket/dllist"
)

// Sentinel errors for bounded priority queue operations.
var (
	// ErrInvalidRange indicates the key range is empty (low > high) or too wide.
	ErrInvalidRange = errors.New("bpqueue: invalid key range")

	// ErrKeyOutOfRange indicates a key outside [low, high].
	ErrKeyOutOfRange = errors.New("bpqueue: key out of range")

	// ErrEmptyQueue indicates a pop from an empty queue.
	ErrEmptyQueue = errors.New("bpqueue: queue is empty")

	// ErrNotQueued indicates the node is not a member of this queue.
	ErrNotQueued = errors.New("bpqueue: node is not in the queue")

	// ErrBadDelta indicates a non-positive shift passed to IncreaseKey/DecreaseKey.
	ErrBadDelta = errors.New("bpqueue: delta must be positive")

	// ErrBrokenMax indicates the tracked maximum disagrees with the buckets.
	ErrBrokenMax = errors.New("bpqueue: max index out of sync")
)

// Item is the payload carried by queue nodes: the caller's Value plus the
// internal bucket index the queue maintains.
type Item[T any] struct {
	index int
	Value T
}

// NewNode returns a Free queue node carrying v.
func NewNode[T any](v T) *dllist.Node[Item[T]] {
	return dllist.NewNode(Item[T]{Value: v})
}

// BPQueue is a bounded priority queue with integer keys in [low, high],
// implemented by an array of buckets (doubly-linked lists).
//
// Fields:
//   - offset: low-1; external key k lives in bucket k-offset.
//   - high:   number of real buckets; valid indices are 1..high.
//   - max:    index of the highest occupied bucket, 0 when empty.
//   - bucket: high+2 lists; bucket[0] permanently holds the sentinel so
//     the downward rewind of max always terminates.
//
// The queue does not own its nodes. A BPQueue must not be copied.
type BPQueue[T any] struct {
	max    int
	offset int
	high   int

	sentinel dllist.Node[Item[T]]
	bucket   []dllist.List[Item[T]]
}
