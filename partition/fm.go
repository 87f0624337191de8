package partition

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gainbucket/bpqueue"
	"github.com/katalvlaran/gainbucket/dllist"
	"github.com/katalvlaran/gainbucket/robin"
)

type cellNode = dllist.Node[bpqueue.Item[int]]

// fmState is the working set of one Bipartition run. Each cell owns one
// queue node for the whole run; the node sits in the gain bucket of its
// part, on the waiting list, or nowhere (locked after moving).
type fmState struct {
	nl      *Netlist
	cellNet [][]int // cell → incident nets

	part   []int
	weight [2]int
	lo, hi int

	gain    []int
	count   [][2]int // net → pins per part
	node    []cellNode
	queue   [2]*bpqueue.BPQueue[int]
	waiting dllist.List[bpqueue.Item[int]]
	robin   *robin.Robin

	moves []int
}

// Bipartition splits the netlist into two balanced parts minimizing the
// weighted cut with Fiduccia–Mattheyses passes.
//
// Each pass puts every cell in the gain bucket of its part, repeatedly moves
// the highest-gain cell whose move keeps both parts within the balance
// window, locks it and updates the gains of its neighbours. Cells whose move
// is not allowed yet wait on a side list and rejoin their bucket after the
// next move. The pass then keeps the move prefix with the best cumulative
// gain and undoes the rest.
//
// Errors: ErrNilNetlist, netlist validation errors, ErrBadInitial, and
// bpqueue.ErrInvalidRange when weighted cell degrees exceed the gain range.
// Complexity: O(P) per pass for P pins, plus O(pmax) per pass for the
// bucket arrays, where pmax is the largest weighted cell degree.
func Bipartition(nl *Netlist, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := nl.Validate(); err != nil {
		return Result{}, err
	}

	s, err := newState(nl, o.Tolerance)
	if err != nil {
		return Result{}, err
	}
	if o.Initial != nil {
		if err := checkParts(nl, o.Initial); err != nil {
			return Result{}, err
		}
		copy(s.part, o.Initial)
	} else {
		s.randomSplit(o.Seed)
	}
	s.weigh()

	res := Result{}
	for pass := 1; pass <= o.MaxPasses; pass++ {
		st := s.pass()
		st.Pass = pass
		res.Passes = pass
		st.Cost = cutCost(nl, s.part)
		if o.OnPass != nil {
			o.OnPass(st)
		}
		if st.Gain <= 0 {
			break
		}
	}

	res.Parts = append([]int(nil), s.part...)
	res.Cost = cutCost(nl, s.part)
	res.Weights = s.weight

	return res, nil
}

func newState(nl *Netlist, tol float64) (*fmState, error) {
	n := len(nl.Cells)
	s := &fmState{
		nl:      nl,
		cellNet: make([][]int, n),
		part:    make([]int, n),
		gain:    make([]int, n),
		count:   make([][2]int, len(nl.Nets)),
		node:    make([]cellNode, n),
		robin:   robin.New(2),
	}

	pmax := 0
	degree := make([]int, n)
	for e, net := range nl.Nets {
		for _, c := range net.Pins {
			s.cellNet[c] = append(s.cellNet[c], e)
			degree[c] += net.Weight
		}
	}
	for _, d := range degree {
		pmax = max(pmax, d)
	}
	for p := range s.queue {
		q, err := bpqueue.New[int](-pmax, pmax)
		if err != nil {
			return nil, fmt.Errorf("partition: gain range ±%d: %w", pmax, err)
		}
		s.queue[p] = q
	}
	for c := range s.node {
		s.node[c].Init(bpqueue.Item[int]{Value: c})
	}

	total := float64(nl.TotalWeight())
	s.lo = int(math.Floor(total * (0.5 - tol)))
	s.hi = int(math.Ceil(total * (0.5 + tol)))

	return s, nil
}

// randomSplit shuffles the cells and hands each to the lighter part.
func (s *fmState) randomSplit(seed int64) {
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))
	var w [2]int
	for _, c := range rng.Perm(len(s.part)) {
		p := 0
		if w[1] < w[0] {
			p = 1
		}
		s.part[c] = p
		w[p] += s.nl.Cells[c].Weight
	}
}

func (s *fmState) weigh() {
	s.weight = [2]int{}
	for c, p := range s.part {
		s.weight[p] += s.nl.Cells[c].Weight
	}
}

// pass runs one FM pass and applies its best prefix.
func (s *fmState) pass() PassStats {
	s.initGains()

	s.moves = s.moves[:0]
	cum, best, kept := 0, 0, 0
	for {
		c, to, ok := s.selectMove()
		if !ok {
			break
		}
		cum += s.gain[c]
		s.move(c, to)
		s.release()
		if cum > best {
			best, kept = cum, len(s.moves)
		}
	}

	for i := len(s.moves) - 1; i >= kept; i-- {
		c := s.moves[i]
		s.shift(c, 1-s.part[c])
	}
	st := PassStats{Moves: len(s.moves), Kept: kept, Gain: best}

	s.waiting.Clear()
	for p := range s.queue {
		s.queue[p].Clear()
	}

	return st
}

// initGains recounts net distribution and loads every cell into the
// bucket of its current part.
func (s *fmState) initGains() {
	for e, net := range s.nl.Nets {
		s.count[e] = [2]int{}
		for _, c := range net.Pins {
			s.count[e][s.part[c]]++
		}
	}

	var batch [2][]*cellNode
	for c := range s.gain {
		g := 0
		p := s.part[c]
		for _, e := range s.cellNet[c] {
			w := s.nl.Nets[e].Weight
			if s.count[e][p] == 1 {
				g += w
			}
			if s.count[e][1-p] == 0 {
				g -= w
			}
		}
		s.gain[c] = g

		n := &s.node[c]
		n.Clear()
		s.queue[p].SetKey(n, g)
		batch[p] = append(batch[p], n)
	}
	for p := range s.queue {
		s.queue[p].AppendFrom(batch[p]...)
	}
}

// selectMove pops the best cell whose move keeps the balance. Cells that
// cannot move yet are parked on the waiting list.
func (s *fmState) selectMove() (cell, to int, ok bool) {
	for {
		from := -1
		for p, q := range s.queue {
			if q.IsEmpty() {
				continue
			}
			if from < 0 || q.MaxKey() > s.queue[from].MaxKey() ||
				(q.MaxKey() == s.queue[from].MaxKey() && s.weight[p] > s.weight[from]) {
				from = p
			}
		}
		if from < 0 {
			return 0, 0, false
		}

		n := s.queue[from].PopHighest()
		c := n.Data.Value
		for t := range s.robin.Exclude(from) {
			if s.legal(c, from, t) {
				return c, t, true
			}
		}
		s.waiting.AttachBack(n)
	}
}

func (s *fmState) legal(c, from, to int) bool {
	w := s.nl.Cells[c].Weight
	return s.weight[to]+w <= s.hi && s.weight[from]-w >= s.lo
}

// move locks c, moves it to part to and updates neighbour gains.
func (s *fmState) move(c, to int) {
	from := s.part[c]
	s.node[c].Lock()

	for _, e := range s.cellNet[c] {
		w := s.nl.Nets[e].Weight
		pins := s.nl.Nets[e].Pins
		cnt := &s.count[e]

		switch cnt[to] {
		case 0:
			for _, v := range pins {
				s.adjust(v, w)
			}
		case 1:
			for _, v := range pins {
				if s.part[v] == to {
					s.adjust(v, -w)
				}
			}
		}

		cnt[from]--
		cnt[to]++

		switch cnt[from] {
		case 0:
			for _, v := range pins {
				s.adjust(v, -w)
			}
		case 1:
			for _, v := range pins {
				if v != c && s.part[v] == from {
					s.adjust(v, w)
				}
			}
		}
	}

	s.shift(c, to)
	s.moves = append(s.moves, c)
}

// adjust changes the gain of v by delta. Locked cells, including the one
// being moved, are left alone; parked cells only update the gain table and
// pick the new value up when they rejoin their bucket.
func (s *fmState) adjust(v, delta int) {
	n := &s.node[v]
	if n.IsLocked() {
		return
	}
	s.gain[v] += delta
	if q := s.queue[s.part[v]]; q.Contains(n) {
		q.ModifyKey(n, delta)
	}
}

// release returns every parked cell to the bucket of its part.
func (s *fmState) release() {
	for !s.waiting.IsEmpty() {
		n := s.waiting.PopFront()
		c := n.Data.Value
		s.queue[s.part[c]].Append(n, s.gain[c])
	}
}

func (s *fmState) shift(c, to int) {
	w := s.nl.Cells[c].Weight
	s.weight[s.part[c]] -= w
	s.weight[to] += w
	s.part[c] = to
}
