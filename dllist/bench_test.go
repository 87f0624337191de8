package dllist_test

import (
	"testing"

	"github.com/katalvlaran/gainbucket/dllist"
)

// BenchmarkAttachDetach measures one attach/detach cycle on a warm list.
func BenchmarkAttachDetach(b *testing.B) {
	l := dllist.New[int]()
	for i := 0; i < 64; i++ {
		l.AttachBack(dllist.NewNode(i))
	}
	n := dllist.NewNode(-1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.AttachBack(n)
		n.Detach()
	}
}

// BenchmarkMoveBetweenLists measures the waiting-list hand-off.
func BenchmarkMoveBetweenLists(b *testing.B) {
	l1, l2 := dllist.New[int](), dllist.New[int]()
	n := dllist.NewNode(0)
	l1.AttachBack(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			dllist.MoveToBack(l2, n)
		} else {
			dllist.MoveToFront(l1, n)
		}
	}
}
