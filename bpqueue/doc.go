// Package bpqueue implements a bounded priority queue ("bucket queue") for
// small integer keys, built from dllist nodes and lists.
//
// 🚀 Where does it fit?
//
//	Iterative improvement heuristics such as Fiduccia–Mattheyses keep every
//	movable cell in a bucket indexed by its gain, repeatedly take the cell
//	with the highest gain and nudge the gains of its neighbours by ±1 or
//	±w. With gains bounded by a small range, a bucket array beats a binary
//	heap: every operation is O(1), amortized.
//
// Structure:
//
//	             bucket
//	  high  ┌────┐
//	        │    │
//	        ├────┤   ┌───┐   ┌───┐
//	  max → │    │──▶│ c │──▶│ c │
//	        ├────┤   └───┘   └───┘
//	        :    :
//	        ├────┤   ┌───┐   ┌───┐   ┌───┐
//	     1  │    │──▶│ c │──▶│ c │──▶│ c │
//	        ├────┤   └───┘   └───┘   └───┘
//	     0  │ s  │   sentinel, never empty
//	        └────┘
//
// Key mapping:
//
//	offset = low - 1, index = key - offset, valid indices 1..high.
//
// Tie-breaking:
//   - Append (FIFO) and AppendLeft (LIFO) choose the end of the bucket.
//   - IncreaseKey inserts at the front of the new bucket: a freshly
//     promoted item is picked before older items of the same gain.
//   - DecreaseKey inserts at the back of the new bucket.
//
// Max tracking:
//
//	max only rises on insertion and is lowered by a downward scan after a
//	removal empties the top bucket. The sentinel in bucket 0 ends the scan.
//	Every step down was paid for by an earlier step up, so the total rewind
//	work is bounded by the number of insertions and increases.
//
// Ownership:
//
//	The queue never owns its nodes. A node may leave the queue (Detach,
//	DetachTo, PopHighest), sit on an external dllist.List as a waiting
//	list, and come back with Append; ModifyKey ignores locked nodes.
//
// Errors:
//
//	New returns ErrInvalidRange for low > high. Every other contract
//	violation (out-of-range key, pop from an empty queue, detaching a node
//	that is not queued) is a programmer defect and panics with a
//	*dllist.PreconditionError wrapping a sentinel from this package.
//
// Not safe for concurrent use.
package bpqueue
