package platform

// Node is a single cell of a SingleLinkedList. Each node is linked from
// exactly one place: its predecessor, or the list head.
type Node[T any] struct {
	val  T
	next *Node[T]
}

func newNode[T any](val T, next *Node[T]) *Node[T] {
	return &Node[T]{val: val, next: next}
}

func (n *Node[T]) Value() T {
	return n.val
}

func (n *Node[T]) SetValue(val T) {
	n.val = val
}

// Next returns the successor or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// SetNext replaces the successor link. The sublist previously linked from n
// is no longer reachable through n.
func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

// unlinkNext detaches and returns the successor, relinking n past it.
func (n *Node[T]) unlinkNext() *Node[T] {
	removed := n.next
	n.next = removed.next
	removed.next = nil
	return removed
}
