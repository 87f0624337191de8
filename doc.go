// Package gainbucket provides the data structures behind gain-driven
// iterative improvement heuristics, and an FM bipartitioner built on them.
//
// 🚀 What's inside?
//
//	dllist/    — intrusive, non-owning, sentinel-headed doubly-linked list
//	bpqueue/   — bounded priority queue: an array of dllist buckets indexed
//	             by a small integer key, with amortized O(1) max tracking
//	robin/     — round-robin enumeration of partition parts
//	partition/ — Fiduccia–Mattheyses bipartition over a JSON netlist
//
// ✨ Why?
//
//   - O(1) insert, pop-highest, detach and key shifts for bounded keys.
//   - Nodes are caller-owned and move between a gain bucket and a waiting
//     list by relinking, never by copying.
//   - Fail-fast contracts: violated preconditions panic with a typed error
//     instead of corrupting the linkage.
//
// Quick example:
//
//	q := bpqueue.MustNew[string](-3, 3)
//	a := bpqueue.NewNode("A")
//	q.Append(a, 0)
//	q.IncreaseKey(a, 1)
//	fmt.Println(q.MaxKey()) // 1
//
// None of the types are safe for concurrent use.
//
//	go get github.com/katalvlaran/gainbucket
package gainbucket
