// Package partition defines the netlist model, results and sentinel errors
// of the FM bipartition driver.
package partition

import "errors"

// Sentinel errors for partition operations.
var (
	// ErrNilNetlist indicates a nil *Netlist.
	ErrNilNetlist = errors.New("partition: netlist is nil")

	// ErrEmptyNetlist indicates a netlist without cells.
	ErrEmptyNetlist = errors.New("partition: netlist has no cells")

	// ErrBadWeight indicates a cell or net weight below 1.
	ErrBadWeight = errors.New("partition: weight must be >= 1")

	// ErrPinOutOfRange indicates a net pin that names no cell.
	ErrPinOutOfRange = errors.New("partition: pin out of range")

	// ErrDuplicatePin indicates a net listing the same cell twice.
	ErrDuplicatePin = errors.New("partition: duplicate pin on net")

	// ErrBadInitial indicates an initial assignment of the wrong length or
	// with a part other than 0 or 1.
	ErrBadInitial = errors.New("partition: invalid initial assignment")

	// ErrDecode indicates malformed netlist JSON.
	ErrDecode = errors.New("partition: cannot decode netlist")
)

// Cell is a movable module. Weight counts toward the balance of its part.
type Cell struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// Net connects cells by index into Netlist.Cells. Weight is added to the
// cut cost when the net spans both parts.
type Net struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Pins   []int  `json:"pins"`
}

// Netlist is a hypergraph of cells and nets.
type Netlist struct {
	Cells []Cell `json:"cells"`
	Nets  []Net  `json:"nets"`
}

// Result is the outcome of Bipartition.
//
// Parts[i] is 0 or 1 for cell i; Cost is the weighted cut; Weights holds
// the total cell weight of each part; Passes counts the FM passes run.
type Result struct {
	Parts   []int  `json:"parts"`
	Cost    int    `json:"cost"`
	Weights [2]int `json:"weights"`
	Passes  int    `json:"passes"`
}

// PassStats reports one FM pass to the OnPass hook.
//
// Moves is the number of tentative moves, Kept the length of the best
// prefix actually applied, Gain the cut reduction of that prefix and Cost
// the cut after the pass.
type PassStats struct {
	Pass  int
	Moves int
	Kept  int
	Gain  int
	Cost  int
}
