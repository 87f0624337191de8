package dllist

// NewNode returns an isolated (Free) node carrying data.
// Complexity: O(1).
func NewNode[T any](data T) *Node[T] {
	n := &Node[T]{Data: data}
	n.Clear()

	return n
}

// Init resets a caller-allocated node to the Free state and returns it.
// Use it for nodes stored by value in a slice or struct.
func (n *Node[T]) Init(data T) *Node[T] {
	n.Data = data
	n.Clear()

	return n
}

// Clear forces the node into the isolated Free state. It does not touch the
// neighbours, so calling it on a resident node leaves that list pointing at
// a node that no longer points back; use Detach for members.
func (n *Node[T]) Clear() {
	n.next = n
	n.prev = n
	n.list = nil
	n.state = Free
}

// Lock marks an isolated node as not manageable by key updates.
// Panics with ErrResidentLock if the node is still linked into a list or is
// a list sentinel.
func (n *Node[T]) Lock() {
	if n.state == Resident || n.isHead() {
		violate("Lock", ErrResidentLock)
	}
	n.next = n
	n.prev = n
	n.state = Locked
}

// IsLocked reports whether the node has been locked.
func (n *Node[T]) IsLocked() bool {
	return n.state == Locked
}

// State returns the node's current state.
func (n *Node[T]) State() State {
	return n.state
}

// List returns the list currently holding the node, or nil.
func (n *Node[T]) List() *List[T] {
	return n.list
}

// Next returns the following member, or nil at the end of the list or when
// the node is not resident.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil || n.next == &n.list.head {
		return nil
	}

	return n.next
}

// Prev returns the preceding member, or nil at the front of the list or when
// the node is not resident.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil || n.prev == &n.list.head {
		return nil
	}

	return n.prev
}

// AttachFront links node immediately after n. n must be a list sentinel or
// a resident node; node must be neither resident, n itself, nor a list
// sentinel. A Locked node may be attached and becomes Resident.
// Complexity: O(1).
func (n *Node[T]) AttachFront(node *Node[T]) {
	owner := n.owner("AttachFront")
	n.admit("AttachFront", node)
	node.next = n.next
	n.next.prev = node
	n.next = node
	node.prev = n
	node.list = owner
	node.state = Resident
}

// AttachBack links node immediately before n. The same preconditions as
// AttachFront apply.
// Complexity: O(1).
func (n *Node[T]) AttachBack(node *Node[T]) {
	owner := n.owner("AttachBack")
	n.admit("AttachBack", node)
	node.prev = n.prev
	n.prev.next = node
	n.prev = node
	node.next = n
	node.list = owner
	node.state = Resident
}

// Detach unlinks n from its list and leaves it Free.
// Panics with ErrLocked on a locked node and ErrNotResident on an
// isolated one.
// Complexity: O(1).
func (n *Node[T]) Detach() {
	switch n.state {
	case Locked:
		violate("Detach", ErrLocked)
	case Free:
		violate("Detach", ErrNotResident)
	}
	n.unlink()
}

// unlink splices n out without checking its state.
func (n *Node[T]) unlink() {
	p, q := n.prev, n.next
	p.next = q
	q.prev = p
	n.Clear()
}

// admit panics with ErrResident unless node can be linked next to n: it
// must not be resident, n itself, or any list's sentinel.
func (n *Node[T]) admit(op string, node *Node[T]) {
	if node.state == Resident || node == n || node.isHead() {
		violate(op, ErrResident)
	}
}

// isHead reports whether n is the sentinel of an initialized list.
func (n *Node[T]) isHead() bool {
	return n.list != nil && &n.list.head == n
}

// owner resolves the list a reference node belongs to: the list itself for
// a sentinel, the container for a resident member.
func (n *Node[T]) owner(op string) *List[T] {
	if n.state == Resident {
		return n.list
	}
	if n.isHead() {
		return n.list
	}
	violate(op, ErrNotResident)

	return nil
}
