package mesh

// List is the generic singly linked substrate beneath the mesh lists. The
// chain is acyclic except when a caller deliberately closes it (last.next ==
// first), which the move operations preserve. Payloads are compared by
// identity, so a payload value doubles as a handle for lookups.
type List[T comparable] struct {
	first  *ListNode[T]
	last   *ListNode[T]
	nNodes int
}

// ListNode carries one payload. Callers hold *ListNode values as positions;
// they stay valid until the node is removed or the list is flushed.
type ListNode[T comparable] struct {
	data T
	next *ListNode[T]
}

// Get returns the payload.
func (ln *ListNode[T]) Get() T { return ln.data }

// Next returns the following list node, nil at the end.
func (ln *ListNode[T]) Next() *ListNode[T] { return ln.next }

func (l *List[T]) Size() int     { return l.nNodes }
func (l *List[T]) IsEmpty() bool { return l.first == nil }

// First returns the head list node, nil when empty.
func (l *List[T]) First() *ListNode[T] { return l.first }

// Last returns the tail list node, nil when empty.
func (l *List[T]) Last() *ListNode[T] { return l.last }

func (l *List[T]) InsertAtFront(value T) {
	node := &ListNode[T]{data: value}
	if l.IsEmpty() {
		l.first = node
		l.last = node
	} else {
		node.next = l.first
		// Preserve circularity if the caller closed the chain.
		if l.last.next == l.first {
			l.last.next = node
		}
		l.first = node
	}
	l.nNodes++
}

func (l *List[T]) InsertAtBack(value T) {
	node := &ListNode[T]{data: value}
	if l.IsEmpty() {
		l.first = node
		l.last = node
	} else {
		node.next = l.last.next
		l.last.next = node
		l.last = node
	}
	l.nNodes++
}

// RemoveFromFront pops the head payload. The second result is false on an
// empty list.
func (l *List[T]) RemoveFromFront() (T, bool) {
	var zero T
	if l.IsEmpty() {
		return zero, false
	}
	node := l.first
	if l.first == l.last {
		l.first = nil
		l.last = nil
	} else {
		if l.last.next == l.first {
			l.last.next = node.next
		}
		l.first = node.next
	}
	l.nNodes--
	return node.data, true
}

// RemoveNext unlinks and returns the payload after prev. A nil or tail
// anchor removes nothing.
func (l *List[T]) RemoveNext(prev *ListNode[T]) (T, bool) {
	var zero T
	if prev == nil || prev.next == nil {
		return zero, false
	}
	node := prev.next
	if node == l.first {
		// Circular list: removing through the tail anchor.
		return l.RemoveFromFront()
	}
	prev.next = node.next
	if node == l.last {
		l.last = prev
	}
	l.nNodes--
	return node.data, true
}

// RemovePrev unlinks and returns the payload before anchor.
func (l *List[T]) RemovePrev(anchor *ListNode[T]) (T, bool) {
	var zero T
	if anchor == nil || l.IsEmpty() || (anchor == l.first && l.last.next == nil) {
		return zero, false
	}
	if anchor == l.first.next {
		return l.RemoveFromFront()
	}
	prev := l.first
	for prev.next.next != anchor {
		prev = prev.next
	}
	return l.RemoveNext(prev)
}

// prevOf walks to the list node before target. Handing it a node from some
// other list is a programming fault.
func (l *List[T]) prevOf(target *ListNode[T]) *ListNode[T] {
	prev := l.first
	for prev != nil && prev.next != target {
		prev = prev.next
		if prev == l.first {
			break // circular list wrapped around
		}
	}
	if prev == nil || prev.next != target {
		fatalf("list node is not on this list")
	}
	return prev
}

// MoveToBack detaches node and reattaches it at the tail.
func (l *List[T]) MoveToBack(node *ListNode[T]) {
	if node == l.last {
		return
	}
	if node == l.first {
		l.first = node.next
		if l.last.next == node {
			l.last.next = l.first
		}
	} else {
		l.prevOf(node).next = node.next
	}
	node.next = l.last.next
	l.last.next = node
	l.last = node
}

// MoveToFront detaches node and reattaches it at the head.
func (l *List[T]) MoveToFront(node *ListNode[T]) {
	if node == l.first {
		return
	}
	prev := l.prevOf(node)
	prev.next = node.next
	if node == l.last {
		l.last = prev
	}
	node.next = l.first
	l.first = node
	if l.last.next != nil {
		l.last.next = l.first
	}
}

// FindNode returns the list node carrying value, or nil. Identity comparison:
// for pointer payloads this finds the exact element.
func (l *List[T]) FindNode(value T) *ListNode[T] {
	for ln := l.first; ln != nil; ln = ln.next {
		if ln.data == value {
			return ln
		}
		if ln.next == l.first {
			break
		}
	}
	return nil
}

// Flush discards every list node. Positions and payload borrows taken before
// the flush are dead.
func (l *List[T]) Flush() {
	l.first = nil
	l.last = nil
	l.nNodes = 0
}
