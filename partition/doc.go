// Package partition splits a netlist (hypergraph) into two balanced parts
// with Fiduccia–Mattheyses passes, driven by the gain buckets of bpqueue.
//
// 🚀 How a pass works:
//
//  1. Every cell gets the gain of moving it across: nets it would uncut
//     minus nets it would cut, weighted.
//  2. Cells enter the gain bucket of their current part.
//  3. The highest-gain cell whose move keeps both parts within the balance
//     window is moved and locked. Cells that cannot move yet are parked on
//     a waiting list and return to their bucket after the next move.
//  4. Neighbour gains are updated in O(1) per pin through ModifyKey.
//  5. When no cell can move, the prefix of moves with the best cumulative
//     gain is kept and the rest is undone.
//
// Passes repeat until one yields no improvement or MaxPasses is reached.
//
// ⚙️ Usage:
//
//	nl, err := partition.DecodeNetlist(r) // JSON: {"cells":[...],"nets":[...]}
//	if err != nil {
//	    return err
//	}
//	res, err := partition.Bipartition(nl,
//	    partition.WithBalanceTolerance(0.1),
//	    partition.WithSeed(7),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = partition.EncodeResult(os.Stdout, res)
//
// Options:
//
//	WithMaxPasses(n)          – pass limit (default 16)
//	WithBalanceTolerance(tol) – parts weigh W·(0.5 ± tol) (default 0.1)
//	WithInitial(parts)        – start from a given 0/1 assignment
//	WithSeed(seed)            – seed of the random initial split
//	WithOnPass(fn)            – per-pass statistics hook
//
// Errors:
//
//	ErrEmptyNetlist, ErrBadWeight, ErrPinOutOfRange, ErrDuplicatePin,
//	ErrBadInitial, ErrDecode.
package partition
