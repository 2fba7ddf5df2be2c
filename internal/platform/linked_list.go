package platform

import (
	"fmt"
	"iter"
	errors "simple-list/internal/platform/error"
	"strings"
)

const displaySeparator = " -> "

type (
	EqFunc[T any] func(a, b T) bool

	// SingleLinkedList is an ordered container of values linked head to tail.
	// It is not safe for concurrent use.
	SingleLinkedList[T any] struct {
		head   *Node[T]
		count  int
		equals EqFunc[T]
	}
)

func NewSingleLinkedList[T any](equals EqFunc[T]) *SingleLinkedList[T] {
	return &SingleLinkedList[T]{
		head:   nil,
		equals: equals,
	}
}

// NewComparableList builds a list that compares values with ==.
func NewComparableList[T comparable]() *SingleLinkedList[T] {
	return NewSingleLinkedList[T](func(a, b T) bool { return a == b })
}

func (l *SingleLinkedList[T]) Count() int {
	return l.count
}

func (l *SingleLinkedList[T]) IsEmpty() bool {
	return l.count == 0
}

// Head returns the first node, or nil when the list is empty.
func (l *SingleLinkedList[T]) Head() *Node[T] {
	return l.head
}

func (l *SingleLinkedList[T]) AddFront(val T) {
	l.head = newNode(val, l.head)
	l.count++
}

func (l *SingleLinkedList[T]) AddBack(val T) {
	node := newNode[T](val, nil)
	if l.head == nil {
		l.head = node
	} else {
		last := l.head
		for last.next != nil {
			last = last.next
		}
		last.next = node
	}
	l.count++
}

// InsertAt places val so that it ends up at position pos. Valid positions are 0..Count().
func (l *SingleLinkedList[T]) InsertAt(pos int, val T) error {
	if pos < 0 || pos > l.count {
		return errors.NewInvalidPositionError(pos, l.count)
	}
	if pos == 0 {
		l.AddFront(val)
		return nil
	}
	prev := l.nodeAt(pos - 1)
	prev.next = newNode(val, prev.next)
	l.count++
	return nil
}

func (l *SingleLinkedList[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= l.count {
		var zero T
		return zero, errors.NewInvalidPositionError(pos, l.count)
	}
	return l.nodeAt(pos).val, nil
}

// Remove drops the first node holding a value equal to val and reports whether one was found.
func (l *SingleLinkedList[T]) Remove(val T) bool {
	if l.head == nil {
		return false
	}
	if l.equals(l.head.val, val) {
		l.unlinkHead()
		return true
	}
	prev := l.head
	for prev.next != nil && !l.equals(prev.next.val, val) {
		prev = prev.next
	}
	if prev.next == nil {
		return false
	}
	prev.unlinkNext()
	l.count--
	return true
}

func (l *SingleLinkedList[T]) RemoveFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.NewStackTraceError(errors.ErrEmptyList.Msg, errors.EmptyListErrorCode)
	}
	return l.unlinkHead().val, nil
}

func (l *SingleLinkedList[T]) RemoveAt(pos int) (T, error) {
	if pos < 0 || pos >= l.count {
		var zero T
		return zero, errors.NewInvalidPositionError(pos, l.count)
	}
	if pos == 0 {
		return l.RemoveFront()
	}
	removed := l.nodeAt(pos - 1).unlinkNext()
	l.count--
	return removed.val, nil
}

func (l *SingleLinkedList[T]) Contains(val T) bool {
	for node := l.head; node != nil; node = node.next {
		if l.equals(node.val, val) {
			return true
		}
	}
	return false
}

// CountUniques counts the values whose first occurrence is at their own
// position. Every node is checked against all nodes before it, so the cost
// is O(n²) time with O(1) extra space; no set is built.
func (l *SingleLinkedList[T]) CountUniques() int {
	unique := 0
	for node := l.head; node != nil; node = node.next {
		seen := false
		for checker := l.head; checker != node; checker = checker.next {
			if l.equals(checker.val, node.val) {
				seen = true
				break
			}
		}
		if !seen {
			unique++
		}
	}
	return unique
}

func (l *SingleLinkedList[T]) Clear() {
	l.head = nil
	l.count = 0
}

func (l *SingleLinkedList[T]) Values() []T {
	values := make([]T, 0, l.count)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.val)
	}
	return values
}

func (l *SingleLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.val) {
				return
			}
		}
	}
}

func (l *SingleLinkedList[T]) String() string {
	var sb strings.Builder
	for node := l.head; node != nil; node = node.next {
		sb.WriteString(fmt.Sprint(node.val))
		if node.next != nil {
			sb.WriteString(displaySeparator)
		}
	}
	return sb.String()
}

// Iterator returns a cursor positioned before the first element.
func (l *SingleLinkedList[T]) Iterator() *ListIterator[T] {
	return newListIterator(l)
}

// IteratorAt returns a cursor whose first Next yields the element at idx.
// idx may equal Count(), in which case the cursor starts exhausted.
func (l *SingleLinkedList[T]) IteratorAt(idx int) (*ListIterator[T], error) {
	if idx < 0 || idx > l.count {
		return nil, errors.NewIndexOutOfRangeError(idx, l.count)
	}
	it := newListIterator(l)
	for it.index < idx {
		it.advance()
	}
	return it, nil
}

// nodeAt walks pos links from the head. pos must be in range.
func (l *SingleLinkedList[T]) nodeAt(pos int) *Node[T] {
	node := l.head
	for i := 0; i < pos; i++ {
		node = node.next
	}
	return node
}

func (l *SingleLinkedList[T]) unlinkHead() *Node[T] {
	removed := l.head
	l.head = removed.next
	removed.next = nil
	l.count--
	return removed
}
