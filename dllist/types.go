// Package dllist defines the Node and List types, the State enum and the
// sentinel errors for intrusive doubly-linked lists.
//
// Errors:
//
//	ErrLocked        - Detach on a locked node.
//	ErrNotResident   - Detach on a node that is not linked into any list.
//	ErrResident      - attaching a node that is already linked somewhere,
//	                   to itself, or attaching a list sentinel.
//	ErrResidentLock  - Lock on a node that is still linked into a list.
//	ErrEmpty         - PopFront/PopBack on an empty list.
//	ErrCorrupt       - Check found a broken next/prev relation.
package dllist

import (
	"errors"
	"fmt"
)

// Sentinel errors for list operations.
var (
	// ErrLocked indicates a locked node was asked to leave a list.
	ErrLocked = errors.New("dllist: node is locked")

	// ErrNotResident indicates the node is not a member of any list.
	ErrNotResident = errors.New("dllist: node is not resident")

	// ErrResident indicates the node is already a member of a list.
	ErrResident = errors.New("dllist: node is already resident")

	// ErrResidentLock indicates Lock was called on a node still linked into a list.
	ErrResidentLock = errors.New("dllist: cannot lock a resident node")

	// ErrEmpty indicates a pop from an empty list.
	ErrEmpty = errors.New("dllist: list is empty")

	// ErrCorrupt indicates a linkage invariant does not hold.
	ErrCorrupt = errors.New("dllist: linkage corrupted")
)

// PreconditionError is the panic value raised when a caller violates an
// operation contract. Such violations are programmer defects: continuing
// past them would corrupt the linkage, so operations fail fast instead of
// returning an error.
type PreconditionError struct {
	Op  string // operation that was refused, e.g. "Detach"
	Err error  // one of the sentinel errors above
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap lets errors.Is match the underlying sentinel.
func (e *PreconditionError) Unwrap() error { return e.Err }

func violate(op string, err error) {
	panic(&PreconditionError{Op: op, Err: err})
}

// State describes which container, if any, currently holds a Node.
type State uint8

const (
	// Free is an isolated node: next and prev point to the node itself.
	Free State = iota

	// Locked is an isolated node that key-update operations must leave alone.
	Locked

	// Resident is a node linked into exactly one List.
	Resident
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Locked:
		return "locked"
	case Resident:
		return "resident"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Node is an intrusive link carrying a payload.
//
// A Node participates in at most one List at a time. Its memory belongs to
// the caller: lists only link and unlink it, and a node keeps its identity
// while migrating between lists (no copies are made).
//
// Isolated nodes (Free or Locked) satisfy next == prev == self. Resident
// nodes satisfy next.prev == self and prev.next == self.
type Node[T any] struct {
	next, prev *Node[T]
	list       *List[T] // current container; nil unless Resident
	state      State

	// Data is the payload. The list never reads or writes it.
	Data T
}

// List is a sentinel-headed circular doubly-linked list of Nodes.
//
// The list owns no nodes. Ordering is FIFO from the front (head.next) to
// the back (head.prev). The zero value is an empty list ready to use; a
// List must not be copied once it holds members.
type List[T any] struct {
	head Node[T]
}
