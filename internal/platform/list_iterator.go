package platform

import errors "simple-list/internal/platform/error"

// pendingEdit records the node returned by the most recent Next while it can
// still be Set or Removed. before is its predecessor, nil when it is the head.
type pendingEdit[T any] struct {
	node   *Node[T]
	before *Node[T]
}

// ListIterator is a forward cursor over a SingleLinkedList that can insert,
// replace and remove in place. It is only valid while the list is not
// structurally modified through any other handle.
type ListIterator[T any] struct {
	list    *SingleLinkedList[T]
	prev    *Node[T]
	cur     *Node[T]
	index   int
	pending *pendingEdit[T]
}

func newListIterator[T any](list *SingleLinkedList[T]) *ListIterator[T] {
	return &ListIterator[T]{
		list: list,
		cur:  list.head,
	}
}

func (it *ListIterator[T]) HasNext() bool {
	return it.cur != nil
}

func (it *ListIterator[T]) Next() (T, error) {
	if it.cur == nil {
		var zero T
		return zero, errors.NewStackTraceError(errors.ErrEndOfSequence.Msg, errors.EndOfSequenceErrorCode)
	}
	before := it.prev
	it.advance()
	it.pending = &pendingEdit[T]{node: it.prev, before: before}
	return it.prev.val, nil
}

// HasPrevious is always false: a singly linked list cannot be walked backwards.
func (it *ListIterator[T]) HasPrevious() bool {
	return false
}

func (it *ListIterator[T]) Previous() (T, error) {
	var zero T
	return zero, errors.NewStackTraceError(errors.ErrUnsupportedBackwardTraversal.Msg, errors.UnsupportedBackwardTraversalErrorCode)
}

func (it *ListIterator[T]) NextIndex() int {
	return it.index
}

func (it *ListIterator[T]) PreviousIndex() int {
	return it.index - 1
}

// Remove unlinks the element returned by the last Next.
func (it *ListIterator[T]) Remove() error {
	if it.pending == nil {
		return errors.NewStackTraceError(errors.ErrIllegalCursorState.Msg, errors.IllegalCursorStateErrorCode)
	}
	before := it.pending.before
	if before == nil {
		it.list.unlinkHead()
	} else {
		before.unlinkNext()
		it.list.count--
	}
	it.prev = before
	it.index--
	it.pending = nil
	return nil
}

// Set overwrites the element returned by the last Next. It uses up the pending edit.
func (it *ListIterator[T]) Set(val T) error {
	if it.pending == nil {
		return errors.NewStackTraceError(errors.ErrIllegalCursorState.Msg, errors.IllegalCursorStateErrorCode)
	}
	it.pending.node.val = val
	it.pending = nil
	return nil
}

// Add splices val in before the element the next call to Next would return.
func (it *ListIterator[T]) Add(val T) {
	node := newNode(val, it.cur)
	if it.prev == nil {
		it.list.head = node
	} else {
		it.prev.next = node
	}
	it.prev = node
	it.list.count++
	it.index++
	it.pending = nil
}

func (it *ListIterator[T]) advance() {
	it.prev = it.cur
	it.cur = it.cur.next
	it.index++
}
