// Package dllist provides an intrusive, non-owning, doubly-linked list.
//
// 🚀 What is it for?
//
//	Greedy selection algorithms (FM partitioning and friends) keep thousands
//	of small records that hop between containers: a gain bucket, a waiting
//	list, nowhere at all. dllist lets such a record carry its own links so
//	every hop is an O(1) pointer splice, with no allocation and no copying.
//
// ✨ Key features:
//   - Sentinel-headed circular list: no nil checks on insert or unlink.
//   - Explicit node State (Free, Locked, Resident) and a container tag,
//     so "parked" and "isolated" are never confused.
//   - MoveToBack/MoveToFront: one logical hand-off between two lists.
//   - Range-over-func iteration that tolerates detaching the visited node.
//   - Fail-fast contracts: a violated precondition panics with a
//     *PreconditionError wrapping a sentinel error.
//
// Layout:
//
//	          head (sentinel)
//	   ┌──────────┴──────────┐
//	   ▼                     │
//	 [head] ⇄ [n1] ⇄ [n2] ⇄ [n3]
//	   ▲                     │
//	   └─────────────────────┘
//
// Empty iff head.next == head. An isolated node points to itself.
//
// ⚙️ Usage:
//
//	var waiting dllist.List[int]
//	n := dllist.NewNode(42)
//	waiting.AttachBack(n)
//	for m := range waiting.All() {
//	    m.Detach()
//	}
//
// Complexity: every operation is O(1) except Len, Clear and Check (O(n)).
//
// Not safe for concurrent use; callers serialize access.
package dllist
