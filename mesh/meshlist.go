package mesh

// MeshList partitions a singly linked list into an active prefix and a
// boundary suffix. Interior and stream payloads are active; open and closed
// boundary payloads are not. The invariants maintained by every operation:
//
//   - every active payload precedes every boundary payload
//   - lastactive addresses the final active list node, nil when none
//   - nActiveNodes counts the active prefix exactly
//
// Insertion routes by the payload's current boundary flag. Changing a flag
// after insertion without going through SetBoundary breaks the partition.
type MeshList[T Payload] struct {
	List[T]
	lastactive   *ListNode[T]
	nActiveNodes int
}

func (m *MeshList[T]) ActiveSize() int { return m.nActiveNodes }

// LastActive returns the final list node of the active prefix, nil when the
// list holds no active payloads.
func (m *MeshList[T]) LastActive() *ListNode[T] { return m.lastactive }

// FirstBoundary returns the first list node of the boundary suffix, nil when
// the list holds no boundary payloads.
func (m *MeshList[T]) FirstBoundary() *ListNode[T] {
	if m.lastactive != nil {
		return m.lastactive.next
	}
	return m.first
}

// InActiveList reports whether value sits in the active prefix. The test is
// positional, not flag-based: a payload whose flag changed without a
// SetBoundary call is judged by where it actually is.
func (m *MeshList[T]) InActiveList(value T) bool {
	if m.nActiveNodes == 0 {
		return false
	}
	for ln := m.first; ln != nil; ln = ln.next {
		if ln.data == value {
			return true
		}
		if ln == m.lastactive || ln.next == m.first {
			break
		}
	}
	return false
}

// InsertAtFront places value at the head when it is active, or at the head of
// the boundary suffix when it is not.
func (m *MeshList[T]) InsertAtFront(value T) {
	if value.Boundary().IsActive() {
		m.List.InsertAtFront(value)
		if m.nActiveNodes == 0 {
			m.lastactive = m.first
		}
		m.nActiveNodes++
		return
	}
	m.insertAtBoundFront(value)
}

// InsertAtBack appends value at the tail when it is boundary, or at the back
// of the active prefix when it is not.
func (m *MeshList[T]) InsertAtBack(value T) {
	if value.Boundary().IsActive() {
		m.insertAtActiveBack(value)
		return
	}
	m.List.InsertAtBack(value)
}

func (m *MeshList[T]) insertAtActiveBack(value T) {
	if m.lastactive == nil {
		m.List.InsertAtFront(value)
		m.lastactive = m.first
	} else {
		node := &ListNode[T]{data: value, next: m.lastactive.next}
		m.lastactive.next = node
		if m.lastactive == m.last {
			m.last = node
		}
		m.lastactive = node
		m.nNodes++
	}
	m.nActiveNodes++
}

func (m *MeshList[T]) insertAtBoundFront(value T) {
	if m.lastactive == nil {
		m.List.InsertAtFront(value)
		return
	}
	node := &ListNode[T]{data: value, next: m.lastactive.next}
	m.lastactive.next = node
	if m.lastactive == m.last {
		m.last = node
	}
	m.nNodes++
}

// RemoveFromFront pops the head payload, tracking the partition when the head
// was the only active node.
func (m *MeshList[T]) RemoveFromFront() (T, bool) {
	removingActive := m.nActiveNodes > 0
	if removingActive && m.first == m.lastactive {
		m.lastactive = nil
	}
	value, ok := m.List.RemoveFromFront()
	if ok && removingActive {
		m.nActiveNodes--
	}
	return value, ok
}

// RemoveFromActiveBack pops the payload at the back of the active prefix.
func (m *MeshList[T]) RemoveFromActiveBack() (T, bool) {
	var zero T
	if m.nActiveNodes == 0 {
		return zero, false
	}
	node := m.lastactive
	if node == m.first {
		return m.RemoveFromFront()
	}
	prev := m.prevOf(node)
	prev.next = node.next
	if node == m.last {
		m.last = prev
	}
	m.lastactive = prev
	m.nNodes--
	m.nActiveNodes--
	return node.data, true
}

// RemoveFromBoundFront pops the payload at the front of the boundary suffix.
func (m *MeshList[T]) RemoveFromBoundFront() (T, bool) {
	var zero T
	if m.lastactive == nil {
		// Entirely boundary: the suffix front is the list front.
		if m.IsEmpty() {
			return zero, false
		}
		return m.List.RemoveFromFront()
	}
	return m.List.RemoveNext(m.lastactive)
}

// RemoveNext unlinks the payload following prev. A removal that crosses the
// partition seam updates lastactive and the active counter.
func (m *MeshList[T]) RemoveNext(prev *ListNode[T]) (T, bool) {
	var zero T
	if prev == nil || prev.next == nil {
		return zero, false
	}
	if prev == m.lastactive {
		return m.RemoveFromBoundFront()
	}
	if prev.next == m.lastactive {
		return m.RemoveFromActiveBack()
	}
	removingActive := m.nActiveNodes > 0 && m.InActiveList(prev.next.data)
	value, ok := m.List.RemoveNext(prev)
	if ok && removingActive {
		m.nActiveNodes--
	}
	return value, ok
}

// RemovePrev unlinks the payload preceding anchor.
func (m *MeshList[T]) RemovePrev(anchor *ListNode[T]) (T, bool) {
	var zero T
	if anchor == nil {
		return zero, false
	}
	if anchor == m.first {
		if m.last.next == nil {
			return zero, false
		}
		// Circular list: the node before the head is the tail.
		if m.last == m.lastactive {
			return m.RemoveFromActiveBack()
		}
		return m.List.RemovePrev(anchor)
	}
	if m.first.next == anchor {
		return m.RemoveFromFront()
	}
	prev := m.first
	for prev.next.next != anchor {
		prev = prev.next
	}
	return m.RemoveNext(prev)
}

// MoveToBack sends value's node to the absolute tail of the list, regardless
// of partition. An active payload moved past the seam leaves the active
// count; callers doing that normally pair it with SetBoundary.
func (m *MeshList[T]) MoveToBack(node *ListNode[T]) {
	if node == nil || node == m.last {
		return
	}
	wasActive := node == m.lastactive || m.nActiveNodes > 0 && m.InActiveList(node.data)
	if node == m.lastactive {
		if node == m.first {
			m.lastactive = nil
		} else {
			m.lastactive = m.prevOf(node)
		}
	}
	m.List.MoveToBack(node)
	if wasActive {
		if m.nActiveNodes == 1 {
			m.lastactive = nil
		}
		m.nActiveNodes--
	}
}

// MoveToFront sends value's node to the absolute head of the list. A boundary
// payload moved to the head joins the active prefix positionally; callers
// pair that with SetBoundary to keep flag and position agreeing.
func (m *MeshList[T]) MoveToFront(node *ListNode[T]) {
	if node == nil || node == m.first {
		return
	}
	wasActive := m.nActiveNodes > 0 && m.InActiveList(node.data)
	if node == m.lastactive {
		m.lastactive = m.prevOf(node)
	}
	m.List.MoveToFront(node)
	if !wasActive {
		if m.lastactive == nil {
			m.lastactive = m.first
		}
		m.nActiveNodes++
	}
}

// MoveToActiveBack relocates node to the back of the active prefix. The
// active count is untouched: a node already active keeps its membership, and
// a boundary node arriving here is assumed to be mid-SetBoundary, which owns
// the counter.
func (m *MeshList[T]) MoveToActiveBack(node *ListNode[T]) {
	if node == nil || node == m.lastactive {
		return
	}
	if m.lastactive == nil {
		m.List.MoveToFront(node)
		m.lastactive = m.first
		return
	}
	if node == m.first {
		m.first = node.next
		if m.last.next == node {
			m.last.next = m.first
		}
	} else {
		prev := m.prevOf(node)
		prev.next = node.next
		if node == m.last {
			m.last = prev
		}
	}
	node.next = m.lastactive.next
	m.lastactive.next = node
	if m.lastactive == m.last {
		m.last = node
	}
	m.lastactive = node
}

// MoveToBoundFront relocates node to the front of the boundary suffix. Like
// MoveToActiveBack the counter is owned by SetBoundary.
func (m *MeshList[T]) MoveToBoundFront(node *ListNode[T]) {
	if node == nil {
		return
	}
	if m.lastactive == nil || node == m.lastactive.next {
		if m.lastactive == nil && node != m.first {
			m.List.MoveToFront(node)
		}
		return
	}
	if node == m.lastactive {
		// Demoting the seam node leaves it in place; the seam moves back.
		if node == m.first {
			m.lastactive = nil
		} else {
			m.lastactive = m.prevOf(node)
		}
		return
	}
	// Detach.
	if node == m.first {
		m.first = node.next
		if m.last.next == node {
			m.last.next = m.first
		}
	} else {
		prev := m.prevOf(node)
		prev.next = node.next
		if node == m.last {
			m.last = prev
		}
	}
	// Reattach after lastactive.
	node.next = m.lastactive.next
	m.lastactive.next = node
	if m.lastactive == m.last {
		m.last = node
	}
}

// SetBoundary changes value's boundary flag and relocates its list node so
// the partition invariant holds. Flag and position always change together;
// the active counter is adjusted exactly when the payload crosses the seam.
func (m *MeshList[T]) SetBoundary(value T, flag BoundaryFlag) {
	node := m.FindNode(value)
	if node == nil {
		fatalf("payload is not on this mesh list")
	}
	isActive := m.InActiveList(value)
	value.setBoundaryFlag(flag)
	if flag.IsActive() == isActive {
		return
	}
	if flag.IsActive() {
		m.MoveToActiveBack(node)
		m.nActiveNodes++
	} else {
		m.MoveToBoundFront(node)
		m.nActiveNodes--
	}
}

// NextToBack rotates the node after anchor to the tail appropriate for its
// position: an active node goes to the active back, a boundary node to the
// absolute back.
func (m *MeshList[T]) NextToBack(anchor *ListNode[T]) {
	if anchor == nil || anchor.next == nil {
		return
	}
	node := anchor.next
	if m.nActiveNodes > 0 && m.InActiveList(node.data) {
		m.MoveToActiveBack(node)
	} else {
		m.List.MoveToBack(node)
	}
}

// FrontToBack rotates the head to its partition's back. The rotation group is
// per partition: on a uniform list n rotations restore the original order,
// while on a mixed list only the active prefix cycles, with period
// nActiveNodes.
func (m *MeshList[T]) FrontToBack() {
	if m.IsEmpty() {
		return
	}
	node := m.first
	if m.nActiveNodes > 0 {
		m.MoveToActiveBack(node)
	} else {
		m.List.MoveToBack(node)
	}
}

// Flush discards the whole list and resets the partition bookkeeping.
func (m *MeshList[T]) Flush() {
	m.List.Flush()
	m.lastactive = nil
	m.nActiveNodes = 0
}
