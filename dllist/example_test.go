package dllist_test

import (
	"fmt"

	"github.com/katalvlaran/gainbucket/dllist"
)

// ExampleList shows FIFO/LIFO insertion and a hand-off between two lists.
func ExampleList() {
	var active, waiting dllist.List[string]

	a := dllist.NewNode("a")
	b := dllist.NewNode("b")
	c := dllist.NewNode("c")
	active.AttachBack(a)
	active.AttachBack(b)
	active.AttachFront(c)

	order := []string{}
	for n := range active.All() {
		order = append(order, n.Data)
	}
	fmt.Println(order)

	// Park b on the waiting list without copying it.
	dllist.MoveToBack(&waiting, b)
	fmt.Println("active:", active.Len(), "waiting:", waiting.Front().Data)

	// Output:
	// [c a b]
	// active: 2 waiting: b
}
