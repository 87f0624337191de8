package partition

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// Validate checks that the netlist is non-nil, has cells, positive weights and pins
// naming distinct existing cells.
// Complexity: O(C + P) for C cells and P pins.
func (nl *Netlist) Validate() error {
	if nl == nil {
		return ErrNilNetlist
	}
	if len(nl.Cells) == 0 {
		return ErrEmptyNetlist
	}
	for i, c := range nl.Cells {
		if c.Weight < 1 {
			return fmt.Errorf("cell %d (%q): %w", i, c.Name, ErrBadWeight)
		}
	}
	seen := make(map[int]struct{})
	for i, e := range nl.Nets {
		if e.Weight < 1 {
			return fmt.Errorf("net %d (%q): %w", i, e.Name, ErrBadWeight)
		}
		clear(seen)
		for _, p := range e.Pins {
			if p < 0 || p >= len(nl.Cells) {
				return fmt.Errorf("net %d (%q) pin %d: %w", i, e.Name, p, ErrPinOutOfRange)
			}
			if _, dup := seen[p]; dup {
				return fmt.Errorf("net %d (%q) pin %d: %w", i, e.Name, p, ErrDuplicatePin)
			}
			seen[p] = struct{}{}
		}
	}

	return nil
}

// TotalWeight sums the cell weights.
func (nl *Netlist) TotalWeight() int {
	w := 0
	for _, c := range nl.Cells {
		w += c.Weight
	}

	return w
}

// CutCost returns the total weight of nets with pins in both parts.
// Returns ErrNilNetlist for a nil netlist and ErrBadInitial if parts does
// not assign every cell to 0 or 1.
// Complexity: O(P).
func CutCost(nl *Netlist, parts []int) (int, error) {
	if nl == nil {
		return 0, ErrNilNetlist
	}
	if err := checkParts(nl, parts); err != nil {
		return 0, err
	}

	return cutCost(nl, parts), nil
}

// cutCost sums cut net weights for an assignment already known to be valid.
func cutCost(nl *Netlist, parts []int) int {
	cost := 0
	for _, e := range nl.Nets {
		var seen [2]bool
		for _, p := range e.Pins {
			seen[parts[p]] = true
		}
		if seen[0] && seen[1] {
			cost += e.Weight
		}
	}

	return cost
}

func checkParts(nl *Netlist, parts []int) error {
	if len(parts) != len(nl.Cells) {
		return fmt.Errorf("%d parts for %d cells: %w", len(parts), len(nl.Cells), ErrBadInitial)
	}
	for i, p := range parts {
		if p != 0 && p != 1 {
			return fmt.Errorf("cell %d assigned to part %d: %w", i, p, ErrBadInitial)
		}
	}

	return nil
}

// DecodeNetlist reads a JSON netlist, fills missing (zero) weights with 1
// and validates the result.
//
//	{"cells":[{"name":"a","weight":2},{"name":"b"}],
//	 "nets":[{"name":"n1","pins":[0,1]}]}
func DecodeNetlist(r io.Reader) (*Netlist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("partition: read netlist: %w", err)
	}
	var nl Netlist
	if err := sonnet.Unmarshal(data, &nl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for i := range nl.Cells {
		if nl.Cells[i].Weight == 0 {
			nl.Cells[i].Weight = 1
		}
	}
	for i := range nl.Nets {
		if nl.Nets[i].Weight == 0 {
			nl.Nets[i].Weight = 1
		}
	}
	if err := nl.Validate(); err != nil {
		return nil, err
	}

	return &nl, nil
}

// EncodeResult writes res as a single JSON document followed by a newline.
func EncodeResult(w io.Writer, res Result) error {
	data, err := sonnet.Marshal(res)
	if err != nil {
		return fmt.Errorf("partition: encode result: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("partition: write result: %w", err)
	}

	return nil
}
