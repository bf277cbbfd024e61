package mesh

// Iterators hold a cursor into a list. They are cheap values; make as many as
// needed, but an iterator does not survive removal of the node it sits on or
// a Flush of its list.

// ListIter walks a plain List front to back.
type ListIter[T comparable] struct {
	list *List[T]
	cur  *ListNode[T]
}

func NewListIter[T comparable](l *List[T]) *ListIter[T] {
	return &ListIter[T]{list: l, cur: l.First()}
}

// First resets the cursor to the head and reports whether the list is
// nonempty.
func (it *ListIter[T]) First() bool {
	it.cur = it.list.First()
	return it.cur != nil
}

// Next advances the cursor and reports whether it still points at a node.
// Advancing on a circular list stops after the tail rather than wrapping.
func (it *ListIter[T]) Next() bool {
	if it.cur == nil {
		return false
	}
	if it.cur == it.list.Last() {
		it.cur = nil
		return false
	}
	it.cur = it.cur.Next()
	return it.cur != nil
}

// Get returns the payload under the cursor. Calling it on an exhausted
// iterator is a programming fault.
func (it *ListIter[T]) Get() T {
	if it.cur == nil {
		fatalf("iterator is not on a node")
	}
	return it.cur.Get()
}

// NodePtr exposes the list node under the cursor for use as a removal or
// move anchor, nil when exhausted.
func (it *ListIter[T]) NodePtr() *ListNode[T] { return it.cur }

// MeshIter walks a MeshList and understands its partition.
type MeshIter[T Payload] struct {
	list *MeshList[T]
	cur  *ListNode[T]
}

func NewMeshIter[T Payload](m *MeshList[T]) *MeshIter[T] {
	return &MeshIter[T]{list: m, cur: m.First()}
}

func (it *MeshIter[T]) First() bool {
	it.cur = it.list.First()
	return it.cur != nil
}

func (it *MeshIter[T]) Next() bool {
	if it.cur == nil {
		return false
	}
	if it.cur == it.list.Last() {
		it.cur = nil
		return false
	}
	it.cur = it.cur.Next()
	return it.cur != nil
}

func (it *MeshIter[T]) Get() T {
	if it.cur == nil {
		fatalf("iterator is not on a node")
	}
	return it.cur.Get()
}

func (it *MeshIter[T]) NodePtr() *ListNode[T] { return it.cur }

// LastActive parks the cursor on the final active node and reports whether
// one exists.
func (it *MeshIter[T]) LastActive() bool {
	it.cur = it.list.LastActive()
	return it.cur != nil
}

// FirstBoundary parks the cursor on the first boundary node and reports
// whether one exists.
func (it *MeshIter[T]) FirstBoundary() bool {
	it.cur = it.list.FirstBoundary()
	return it.cur != nil
}

// IsActive reports whether the cursor sits in the active prefix. The check is
// positional: it trusts the list, not the payload's flag.
func (it *MeshIter[T]) IsActive() bool {
	if it.cur == nil {
		return false
	}
	return it.list.InActiveList(it.cur.Get())
}

// NextActive advances within the active prefix only, reporting false once the
// cursor would cross into the boundary suffix.
func (it *MeshIter[T]) NextActive() bool {
	if it.cur == nil || it.cur == it.list.LastActive() {
		it.cur = nil
		return false
	}
	return it.Next()
}
