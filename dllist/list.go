package dllist

import (
	"fmt"
	"iter"
)

// New returns an initialized empty list.
func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// Init resets l to the empty state and returns it. Members still linked
// into l are not released; call Clear for that.
func (l *List[T]) Init() *List[T] {
	l.head.next = &l.head
	l.head.prev = &l.head
	l.head.list = l
	l.head.state = Free

	return l
}

// lazyInit makes the zero value usable.
func (l *List[T]) lazyInit() {
	if l.head.next == nil {
		l.Init()
	}
}

// Head returns the sentinel. It can serve as the reference node for
// AttachFront/AttachBack and never appears during iteration.
func (l *List[T]) Head() *Node[T] {
	l.lazyInit()

	return &l.head
}

// IsEmpty reports whether the list has no members.
// Complexity: O(1).
func (l *List[T]) IsEmpty() bool {
	return l.head.next == nil || l.head.next == &l.head
}

// Len counts the members.
// Complexity: O(n).
func (l *List[T]) Len() int {
	cnt := 0
	for range l.All() {
		cnt++
	}

	return cnt
}

// Front returns the first member or nil.
func (l *List[T]) Front() *Node[T] {
	if l.IsEmpty() {
		return nil
	}

	return l.head.next
}

// Back returns the last member or nil.
func (l *List[T]) Back() *Node[T] {
	if l.IsEmpty() {
		return nil
	}

	return l.head.prev
}

// AttachFront inserts n as the first member (LIFO order).
// Complexity: O(1).
func (l *List[T]) AttachFront(n *Node[T]) {
	l.lazyInit()
	l.head.AttachFront(n)
}

// AttachBack inserts n as the last member (FIFO order).
// Complexity: O(1).
func (l *List[T]) AttachBack(n *Node[T]) {
	l.lazyInit()
	l.head.AttachBack(n)
}

// PopFront detaches and returns the first member.
// Panics with ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[T]) PopFront() *Node[T] {
	if l.IsEmpty() {
		violate("PopFront", ErrEmpty)
	}
	n := l.head.next
	n.unlink()

	return n
}

// PopBack detaches and returns the last member.
// Panics with ErrEmpty on an empty list.
// Complexity: O(1).
func (l *List[T]) PopBack() *Node[T] {
	if l.IsEmpty() {
		violate("PopBack", ErrEmpty)
	}
	n := l.head.prev
	n.unlink()

	return n
}

// Clear releases every member back to the Free state and empties the list.
// Complexity: O(n).
func (l *List[T]) Clear() {
	if l.head.next == nil {
		l.Init()
		return
	}
	for n := l.head.next; n != &l.head; {
		next := n.next
		n.Clear()
		n = next
	}
	l.Init()
}

// All iterates members from front to back. The successor is read before a
// node is yielded, so the yielded node may be detached or moved elsewhere
// during the loop without corrupting the traversal. Other mutations are
// safe but their effect on the visiting order is unspecified.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l.head.next == nil {
			return
		}
		for n := l.head.next; n != &l.head; {
			next := n.next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Backward iterates members from back to front with the same mutation
// tolerance as All.
func (l *List[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l.head.prev == nil {
			return
		}
		for n := l.head.prev; n != &l.head; {
			prev := n.prev
			if !yield(n) {
				return
			}
			n = prev
		}
	}
}

// MoveToBack hands n over to dst: n leaves its current list, if any, and
// becomes the last member of dst. It is the single logical move used to
// migrate a node between independent containers.
// Panics with ErrLocked if n is locked.
func MoveToBack[T any](dst *List[T], n *Node[T]) {
	if n.state == Locked {
		violate("MoveToBack", ErrLocked)
	}
	if n.state == Resident {
		n.unlink()
	}
	dst.AttachBack(n)
}

// MoveToFront is MoveToBack inserting at the front of dst.
func MoveToFront[T any](dst *List[T], n *Node[T]) {
	if n.state == Locked {
		violate("MoveToFront", ErrLocked)
	}
	if n.state == Resident {
		n.unlink()
	}
	dst.AttachFront(n)
}

// Check verifies the linkage of l: every member satisfies
// next.prev == n and prev.next == n, is Resident and is tagged with l.
// It returns an error wrapping ErrCorrupt rather than panicking.
// Complexity: O(n).
func (l *List[T]) Check() error {
	if l.head.next == nil {
		return nil
	}
	if l.head.list != l {
		return fmt.Errorf("sentinel not owned by list: %w", ErrCorrupt)
	}
	pos := 0
	for n := &l.head; ; {
		if n.next.prev != n || n.prev.next != n {
			return fmt.Errorf("broken link at position %d: %w", pos, ErrCorrupt)
		}
		n = n.next
		if n == &l.head {
			return nil
		}
		if n.state != Resident || n.list != l {
			return fmt.Errorf("member %d (%s) not owned by list: %w", pos, n.state, ErrCorrupt)
		}
		pos++
	}
}
