package mesh

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nodeWithFlag(id int, flag BoundaryFlag) *Node {
	return NewNode(id, float64(id), float64(id), 0, flag)
}

func buildList(flags ...BoundaryFlag) *MeshList[*Node] {
	l := &MeshList[*Node]{}
	for i, f := range flags {
		l.InsertAtBack(nodeWithFlag(i, f))
	}
	return l
}

// listOrder returns the node ids front to back.
func listOrder(l *MeshList[*Node]) []int {
	ids := []int{}
	for it := NewMeshIter(l); it.NodePtr() != nil; it.Next() {
		ids = append(ids, it.Get().ID())
	}
	return ids
}

// checkPartition asserts the structural invariants: an all-active prefix, an
// all-boundary suffix, lastactive on the seam, and an accurate counter.
func checkPartition(t *testing.T, l *MeshList[*Node]) {
	t.Helper()
	active := 0
	seenBoundary := false
	for it := NewMeshIter(l); it.NodePtr() != nil; it.Next() {
		if it.Get().Boundary().IsActive() {
			assert.False(t, seenBoundary, "active node %d after a boundary node", it.Get().ID())
			active++
			assert.Equal(t, it.NodePtr() == l.LastActive(), active == l.ActiveSize())
		} else {
			seenBoundary = true
		}
	}
	assert.Equal(t, active, l.ActiveSize())
	if active == 0 {
		assert.Nil(t, l.LastActive())
	} else {
		require.NotNil(t, l.LastActive())
		assert.True(t, l.LastActive().Get().Boundary().IsActive())
	}
}

func TestMeshListPartitionedInsert(t *testing.T) {
	l := buildList(Interior, Interior, Stream, OpenBoundary, ClosedBoundary)

	assert.Equal(t, 5, l.Size())
	assert.Equal(t, 3, l.ActiveSize())
	require.NotNil(t, l.LastActive())
	assert.Equal(t, 2, l.LastActive().Get().ID())
	require.NotNil(t, l.FirstBoundary())
	assert.Equal(t, 3, l.FirstBoundary().Get().ID())
	checkPartition(t, l)
}

func TestMeshListInsertRouting(t *testing.T) {
	l := &MeshList[*Node]{}
	// Interleave insertions; each must land in its partition regardless of
	// call order.
	l.InsertAtBack(nodeWithFlag(0, ClosedBoundary))
	l.InsertAtFront(nodeWithFlag(1, Interior))
	l.InsertAtBack(nodeWithFlag(2, Stream))
	l.InsertAtFront(nodeWithFlag(3, OpenBoundary))
	l.InsertAtBack(nodeWithFlag(4, Interior))

	assert.Equal(t, []int{1, 2, 4, 3, 0}, listOrder(l))
	checkPartition(t, l)
}

func TestMeshListInsertAtFrontActivatesEmptyPrefix(t *testing.T) {
	l := buildList(OpenBoundary, ClosedBoundary)
	assert.Nil(t, l.LastActive())

	l.InsertAtFront(nodeWithFlag(10, Interior))
	assert.Equal(t, []int{10, 0, 1}, listOrder(l))
	assert.Equal(t, 1, l.ActiveSize())
	checkPartition(t, l)
}

func TestMeshListRemoveFromFront(t *testing.T) {
	l := buildList(Interior, Stream, OpenBoundary)

	n, ok := l.RemoveFromFront()
	require.True(t, ok)
	assert.Equal(t, 0, n.ID())
	assert.Equal(t, 1, l.ActiveSize())
	checkPartition(t, l)

	n, ok = l.RemoveFromFront()
	require.True(t, ok)
	assert.Equal(t, 1, n.ID())
	assert.Equal(t, 0, l.ActiveSize())
	assert.Nil(t, l.LastActive())
	checkPartition(t, l)

	n, ok = l.RemoveFromFront()
	require.True(t, ok)
	assert.Equal(t, 2, n.ID())
	assert.True(t, l.IsEmpty())

	_, ok = l.RemoveFromFront()
	assert.False(t, ok)
}

func TestMeshListRemoveFromActiveBack(t *testing.T) {
	l := buildList(Interior, Stream, OpenBoundary)

	n, ok := l.RemoveFromActiveBack()
	require.True(t, ok)
	assert.Equal(t, 1, n.ID())
	assert.Equal(t, []int{0, 2}, listOrder(l))
	checkPartition(t, l)

	// The sole remaining active node is also the list head; removing it must
	// leave the boundary suffix intact.
	n, ok = l.RemoveFromActiveBack()
	require.True(t, ok)
	assert.Equal(t, 0, n.ID())
	assert.Equal(t, []int{2}, listOrder(l))
	assert.Equal(t, 0, l.ActiveSize())
	checkPartition(t, l)

	_, ok = l.RemoveFromActiveBack()
	assert.False(t, ok)
}

func TestMeshListRemoveFromBoundFront(t *testing.T) {
	l := buildList(Interior, OpenBoundary, ClosedBoundary)

	n, ok := l.RemoveFromBoundFront()
	require.True(t, ok)
	assert.Equal(t, 1, n.ID())
	checkPartition(t, l)

	// Removing the last boundary node must repair the list tail.
	n, ok = l.RemoveFromBoundFront()
	require.True(t, ok)
	assert.Equal(t, 2, n.ID())
	require.NotNil(t, l.Last())
	assert.Equal(t, 0, l.Last().Get().ID())
	checkPartition(t, l)

	_, ok = l.RemoveFromBoundFront()
	assert.False(t, ok)

	// All-boundary list: the suffix front is the list front.
	l2 := buildList(ClosedBoundary, OpenBoundary)
	n, ok = l2.RemoveFromBoundFront()
	require.True(t, ok)
	assert.Equal(t, 0, n.ID())
}

func TestMeshListRemoveNext(t *testing.T) {
	l := buildList(Interior, Interior, Stream, OpenBoundary, ClosedBoundary)

	// nil anchor and tail anchor remove nothing.
	_, ok := l.RemoveNext(nil)
	assert.False(t, ok)
	_, ok = l.RemoveNext(l.Last())
	assert.False(t, ok)

	// Removal inside the active prefix.
	n, ok := l.RemoveNext(l.First())
	require.True(t, ok)
	assert.Equal(t, 1, n.ID())
	assert.Equal(t, 2, l.ActiveSize())
	checkPartition(t, l)

	// Anchor on the seam removes the first boundary node.
	n, ok = l.RemoveNext(l.LastActive())
	require.True(t, ok)
	assert.Equal(t, 3, n.ID())
	assert.Equal(t, 2, l.ActiveSize())
	checkPartition(t, l)

	// Target on the seam delegates to the active-back removal.
	n, ok = l.RemoveNext(l.First())
	require.True(t, ok)
	assert.Equal(t, 2, n.ID())
	assert.Equal(t, 1, l.ActiveSize())
	checkPartition(t, l)
}

func TestMeshListSetBoundaryDemote(t *testing.T) {
	l := buildList(Interior, Interior, Stream, OpenBoundary, ClosedBoundary)
	node3 := l.LastActive().Get()

	l.SetBoundary(node3, ClosedBoundary)

	assert.Equal(t, ClosedBoundary, node3.Boundary())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, listOrder(l))
	assert.Equal(t, 2, l.ActiveSize())
	require.NotNil(t, l.FirstBoundary())
	assert.Equal(t, node3, l.FirstBoundary().Get())
	checkPartition(t, l)
}

func TestMeshListSetBoundaryPromote(t *testing.T) {
	l := buildList(Interior, OpenBoundary, ClosedBoundary)
	target := l.FirstBoundary().Get()

	l.SetBoundary(target, Stream)

	assert.Equal(t, Stream, target.Boundary())
	assert.Equal(t, []int{0, 1, 2}, listOrder(l))
	assert.Equal(t, 2, l.ActiveSize())
	assert.Equal(t, target, l.LastActive().Get())
	checkPartition(t, l)
}

func TestMeshListSetBoundarySameSideKeepsPosition(t *testing.T) {
	l := buildList(Interior, Stream, OpenBoundary)
	head := l.First().Get()

	l.SetBoundary(head, Stream)

	assert.Equal(t, Stream, head.Boundary())
	assert.Equal(t, []int{0, 1, 2}, listOrder(l))
	assert.Equal(t, 2, l.ActiveSize())
	checkPartition(t, l)
}

func TestMeshListSetBoundaryDemoteMidPrefix(t *testing.T) {
	l := buildList(Interior, Interior, Interior, OpenBoundary)
	mid := l.First().Next().Get()

	l.SetBoundary(mid, OpenBoundary)

	assert.Equal(t, []int{0, 2, 1, 3}, listOrder(l))
	assert.Equal(t, 2, l.ActiveSize())
	checkPartition(t, l)
}

func TestMeshListSetBoundaryOnlyActive(t *testing.T) {
	l := buildList(Interior, OpenBoundary)
	head := l.First().Get()

	l.SetBoundary(head, ClosedBoundary)

	assert.Equal(t, 0, l.ActiveSize())
	assert.Nil(t, l.LastActive())
	assert.Equal(t, []int{0, 1}, listOrder(l))
	checkPartition(t, l)
}

func TestMeshListFrontToBackRotation(t *testing.T) {
	// On an all-boundary list n rotations are the identity.
	l := buildList(ClosedBoundary, OpenBoundary, ClosedBoundary, OpenBoundary, ClosedBoundary)
	original := listOrder(l)

	for i := 1; i <= 5; i++ {
		l.FrontToBack()
		if i < 5 {
			assert.NotEqual(t, original, listOrder(l), "rotation %d", i)
		}
	}
	assert.Equal(t, original, listOrder(l))
	checkPartition(t, l)
}

func TestMeshListFrontToBackActivePrefix(t *testing.T) {
	// With active nodes present the rotation cycles the active prefix only.
	l := buildList(Interior, Stream, Interior, OpenBoundary)
	l.FrontToBack()
	assert.Equal(t, []int{1, 2, 0, 3}, listOrder(l))
	assert.Equal(t, 3, l.ActiveSize())
	checkPartition(t, l)

	l.FrontToBack()
	l.FrontToBack()
	assert.Equal(t, []int{0, 1, 2, 3}, listOrder(l))
	checkPartition(t, l)
}

func TestMeshListNextToBack(t *testing.T) {
	l := buildList(Interior, Interior, Stream, OpenBoundary, ClosedBoundary)

	// Active target rotates to the active back.
	l.NextToBack(l.First())
	assert.Equal(t, []int{0, 2, 1, 3, 4}, listOrder(l))
	checkPartition(t, l)

	// Boundary target rotates to the absolute back.
	l.NextToBack(l.LastActive())
	assert.Equal(t, []int{0, 2, 1, 4, 3}, listOrder(l))
	checkPartition(t, l)
}

func TestMeshListMoveToActiveBack(t *testing.T) {
	l := buildList(Interior, Interior, Stream, OpenBoundary)
	head := l.First()

	l.MoveToActiveBack(head)
	assert.Equal(t, []int{1, 2, 0, 3}, listOrder(l))
	assert.Equal(t, 3, l.ActiveSize())
	assert.Equal(t, 0, l.LastActive().Get().ID())
	checkPartition(t, l)

	// Already at the active back: no-op.
	l.MoveToActiveBack(l.LastActive())
	assert.Equal(t, []int{1, 2, 0, 3}, listOrder(l))
	checkPartition(t, l)
}

func TestMeshListInActiveList(t *testing.T) {
	l := buildList(Interior, Stream, OpenBoundary)
	active := l.First().Get()
	boundary := l.Last().Get()

	assert.True(t, l.InActiveList(active))
	assert.False(t, l.InActiveList(boundary))
	assert.False(t, l.InActiveList(nodeWithFlag(99, Interior)))

	empty := buildList(OpenBoundary)
	assert.False(t, empty.InActiveList(empty.First().Get()))
}

func TestMeshListCounterInvariantUnderMixedOps(t *testing.T) {
	flags := []BoundaryFlag{
		Interior, Stream, OpenBoundary, Interior, ClosedBoundary,
		Stream, OpenBoundary, Interior, ClosedBoundary, Interior,
	}
	l := buildList(flags...)
	checkPartition(t, l)

	ops := []func(){
		func() { l.RemoveFromFront() },
		func() { l.RemoveFromActiveBack() },
		func() { l.RemoveFromBoundFront() },
		func() { l.FrontToBack() },
		func() { l.InsertAtBack(nodeWithFlag(100, Stream)) },
		func() { l.InsertAtFront(nodeWithFlag(101, ClosedBoundary)) },
		func() { l.RemoveNext(l.First()) },
		func() {
			if la := l.LastActive(); la != nil {
				l.SetBoundary(la.Get(), OpenBoundary)
			}
		},
		func() {
			if fb := l.FirstBoundary(); fb != nil {
				l.SetBoundary(fb.Get(), Interior)
			}
		},
	}
	for i, op := range ops {
		op()
		t.Run(fmt.Sprintf("after op %d", i), func(t *testing.T) {
			checkPartition(t, l)
		})
	}
}

func TestMeshListIterationTotality(t *testing.T) {
	l := buildList(Interior, Stream, Interior, OpenBoundary, ClosedBoundary, OpenBoundary)

	seen := map[*Node]bool{}
	count := 0
	for it := NewMeshIter(l); it.NodePtr() != nil; it.Next() {
		assert.False(t, seen[it.Get()])
		seen[it.Get()] = true
		count++
	}
	assert.Equal(t, l.Size(), count)
}

func TestMeshIterPartitionQueries(t *testing.T) {
	l := buildList(Interior, Stream, OpenBoundary, ClosedBoundary)
	it := NewMeshIter(l)

	require.True(t, it.First())
	assert.True(t, it.IsActive())

	require.True(t, it.LastActive())
	assert.Equal(t, 1, it.Get().ID())
	assert.True(t, it.IsActive())

	require.True(t, it.FirstBoundary())
	assert.Equal(t, 2, it.Get().ID())
	assert.False(t, it.IsActive())

	// NextActive stops at the seam.
	require.True(t, it.First())
	assert.True(t, it.NextActive())
	assert.Equal(t, 1, it.Get().ID())
	assert.False(t, it.NextActive())

	// Exhausted iterator.
	empty := &MeshList[*Node]{}
	eit := NewMeshIter(empty)
	assert.False(t, eit.First())
	assert.False(t, eit.LastActive())
	assert.False(t, eit.FirstBoundary())
	assert.False(t, eit.IsActive())
}

func TestMeshListFlushRoundTrip(t *testing.T) {
	flags := []BoundaryFlag{Interior, Stream, OpenBoundary, ClosedBoundary}
	nodes := make([]*Node, len(flags))
	for i, f := range flags {
		nodes[i] = nodeWithFlag(i, f)
	}

	l := &MeshList[*Node]{}
	for _, n := range nodes {
		l.InsertAtBack(n)
	}
	orderBefore := listOrder(l)
	activeBefore := l.ActiveSize()

	l.Flush()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.ActiveSize())
	assert.Nil(t, l.LastActive())
	assert.Nil(t, l.FirstBoundary())

	for _, n := range nodes {
		l.InsertAtBack(n)
	}
	assert.Equal(t, orderBefore, listOrder(l))
	assert.Equal(t, activeBefore, l.ActiveSize())
	assert.Equal(t, nodes[0], l.First().Get())
	assert.Equal(t, nodes[len(nodes)-1], l.Last().Get())
	assert.Equal(t, nodes[1], l.LastActive().Get())
	checkPartition(t, l)
}

func TestListRemoveNextAnchorChecks(t *testing.T) {
	l := &List[int]{}
	_, ok := l.RemoveNext(nil)
	assert.False(t, ok)

	l.InsertAtBack(1)
	l.InsertAtBack(2)
	_, ok = l.RemoveNext(l.Last())
	assert.False(t, ok)

	v, ok := l.RemoveNext(l.First())
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, l.First(), l.Last())
}

func TestListMoves(t *testing.T) {
	l := &List[int]{}
	for i := 0; i < 4; i++ {
		l.InsertAtBack(i)
	}

	l.MoveToBack(l.First())
	assert.Equal(t, []int{1, 2, 3, 0}, drain(l))

	l.MoveToFront(l.Last())
	assert.Equal(t, []int{0, 1, 2, 3}, drain(l))

	l.MoveToFront(l.First().Next())
	assert.Equal(t, []int{1, 0, 2, 3}, drain(l))
}

func drain(l *List[int]) []int {
	out := []int{}
	for it := NewListIter(l); it.NodePtr() != nil; it.Next() {
		out = append(out, it.Get())
	}
	return out
}
