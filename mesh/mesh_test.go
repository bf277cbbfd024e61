package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshAddNodePartitioning(t *testing.T) {
	m := NewMesh()
	m.AddNode(0, 0, 0, Interior)
	m.AddNode(1, 0, 0, ClosedBoundary)
	m.AddNode(2, 0, 0, Stream)
	m.AddNode(3, 0, 0, OpenBoundary)

	assert.Equal(t, 4, m.Nodes.Size())
	assert.Equal(t, 2, m.Nodes.ActiveSize())
	assert.Equal(t, 2, m.Nodes.LastActive().Get().ID())
	assert.Equal(t, 1, m.Nodes.FirstBoundary().Get().ID())
}

func TestMeshAddEdgePair(t *testing.T) {
	m := NewMesh()
	a := m.AddNode(0, 0, 0, Interior)
	b := m.AddNode(1, 0, 0, ClosedBoundary)
	c := m.AddNode(0, 1, 0, ClosedBoundary)

	e, tw := m.AddEdgePair(a, b)

	// Twin symmetry.
	assert.Equal(t, e, tw.Twin())
	assert.Equal(t, tw, e.Twin())
	assert.Equal(t, a, e.Origin())
	assert.Equal(t, b, e.Dest())
	assert.Equal(t, b, tw.Origin())
	assert.Equal(t, a, tw.Dest())

	// One active endpoint makes the edge active.
	assert.Equal(t, Interior, e.Boundary())
	// Two boundary endpoints make a boundary edge.
	be, _ := m.AddEdgePair(b, c)
	assert.Equal(t, ClosedBoundary, be.Boundary())

	// The edge list partitions like the node list.
	assert.Equal(t, 4, m.Edges.Size())
	assert.Equal(t, 2, m.Edges.ActiveSize())

	// Endpoints adopted an outgoing edge.
	assert.Equal(t, e, a.Edg())
	assert.Equal(t, tw, b.Edg())
}

func TestMeshSpokeRing(t *testing.T) {
	m := NewMesh()
	hub := m.AddNode(0, 0, 0, Interior)
	// Insert spokes out of angular order; the ring must come out CCW anyway.
	east := m.AddNode(1, 0, 0, Interior)
	north := m.AddNode(0, 1, 0, Interior)
	west := m.AddNode(-1, 0, 0, Interior)
	south := m.AddNode(0, -1, 0, Interior)

	m.AddEdgePair(hub, north)
	m.AddEdgePair(hub, south)
	m.AddEdgePair(hub, east)
	m.AddEdgePair(hub, west)

	// Walk the ring from any spoke; four steps return to the start, and each
	// step turns counterclockwise.
	start := hub.Edg()
	require.NotNil(t, start)
	seen := map[*Edge]bool{}
	e := start
	for i := 0; i < 4; i++ {
		assert.False(t, seen[e])
		seen[e] = true
		e = e.CCWEdg()
	}
	assert.Equal(t, start, e)

	// Check CCW order by finding east and confirming the sequence.
	for e.Dest() != east {
		e = e.CCWEdg()
	}
	assert.Equal(t, north, e.CCWEdg().Dest())
	assert.Equal(t, west, e.CCWEdg().CCWEdg().Dest())
	assert.Equal(t, south, e.CCWEdg().CCWEdg().CCWEdg().Dest())
}

func TestMeshFindEdge(t *testing.T) {
	m := NewMesh()
	a := m.AddNode(0, 0, 0, Interior)
	b := m.AddNode(1, 0, 0, Interior)
	c := m.AddNode(0, 1, 0, Interior)
	e, tw := m.AddEdgePair(a, b)

	assert.Equal(t, e, m.FindEdge(a, b))
	assert.Equal(t, tw, m.FindEdge(b, a))
	assert.Nil(t, m.FindEdge(a, c))
	assert.Nil(t, m.FindEdge(c, a), "unconnected node has no spoke")
}

func TestMeshAddTriangle(t *testing.T) {
	m := NewMesh()
	n0 := m.AddNode(0, 0, 0, Interior)
	n1 := m.AddNode(1, 0, 0, Interior)
	n2 := m.AddNode(0, 1, 0, Interior)
	m.AddEdgePair(n0, n1)
	m.AddEdgePair(n1, n2)
	m.AddEdgePair(n2, n0)

	// Clockwise input gets reordered.
	tri := m.AddTriangle(n0, n2, n1)
	assert.True(t, NewTriCCW(tri))

	// Side edges point along the CCW boundary and adopt the triangle.
	for i := 0; i < 3; i++ {
		e := tri.E(i)
		assert.Equal(t, tri.P(i), e.Origin())
		assert.Equal(t, tri.P((i+1)%3), e.Dest())
		assert.Equal(t, tri, e.Left())
	}
	// No neighbors yet.
	for i := 0; i < 3; i++ {
		assert.Nil(t, tri.N(i))
	}
}

func TestMeshAddTriangleNeighborLinks(t *testing.T) {
	// Unit square split along the diagonal into two triangles.
	m := NewMesh()
	n0 := m.AddNode(0, 0, 0, Interior)
	n1 := m.AddNode(1, 0, 0, Interior)
	n2 := m.AddNode(1, 1, 0, Interior)
	n3 := m.AddNode(0, 1, 0, Interior)
	m.AddEdgePair(n0, n1)
	m.AddEdgePair(n1, n2)
	m.AddEdgePair(n2, n3)
	m.AddEdgePair(n3, n0)
	m.AddEdgePair(n0, n2)

	t1 := m.AddTriangle(n0, n1, n2)
	t2 := m.AddTriangle(n0, n2, n3)

	// Each triangle's neighbor across the diagonal is the other, opposite the
	// vertex not on the diagonal.
	assertNeighbor := func(tri, want *Triangle) {
		t.Helper()
		found := 0
		for i := 0; i < 3; i++ {
			if tri.N(i) == want {
				found++
				// The shared side is opposite vertex i.
				assert.Equal(t, want, tri.E((i+1)%3).Twin().Left())
			}
		}
		assert.Equal(t, 1, found)
	}
	assertNeighbor(t1, t2)
	assertNeighbor(t2, t1)
	assert.Equal(t, 2, m.Triangles.Size())
}

func TestNodeDbgName(t *testing.T) {
	active := NewNode(0, 0, 0, 0, Interior)
	boundary := NewNode(1, 1, 0, 0, ClosedBoundary)

	// Stable per node, distinct between nodes, and colored by partition (the
	// ANSI escape differs between an active and a boundary node).
	assert.Equal(t, active.DbgName(), active.DbgName())
	assert.NotEqual(t, active.DbgName(), boundary.DbgName())
	assert.Contains(t, active.DbgName(), "\x1b[")
	assert.NotEqual(t, active.DbgName()[:5], boundary.DbgName()[:5])
}

func TestMeshFlush(t *testing.T) {
	m := buildBasinMesh("basin")
	require.Greater(t, m.Nodes.Size(), 0)

	m.Flush()
	assert.Equal(t, 0, m.Nodes.Size())
	assert.Equal(t, 0, m.Edges.Size())
	assert.Equal(t, 0, m.Triangles.Size())

	// Identifier counters restart.
	n := m.AddNode(0, 0, 0, Interior)
	assert.Equal(t, 0, n.ID())
}

func TestBasinFixtureInvariants(t *testing.T) {
	m := buildBasinMesh("basin")
	m.dbgDraw(2)
	m.dbgDumpSpokes()

	// One interior hub, the rest closed boundary.
	assert.Equal(t, 1, m.Nodes.ActiveSize())
	assert.Equal(t, 8, m.Nodes.Size())

	t.Run("triangles are CCW", func(t *testing.T) {
		for it := NewListIter(&m.Triangles); it.NodePtr() != nil; it.Next() {
			assert.True(t, NewTriCCW(it.Get()), "%v", it.Get())
		}
	})

	t.Run("half-edge symmetry", func(t *testing.T) {
		for it := NewMeshIter(&m.Edges); it.NodePtr() != nil; it.Next() {
			e := it.Get()
			require.NotNil(t, e.Twin())
			assert.Equal(t, e, e.Twin().Twin())
			assert.Equal(t, e.Origin(), e.Twin().Dest())
		}
	})

	t.Run("spoke rings close", func(t *testing.T) {
		for it := NewMeshIter(&m.Nodes); it.NodePtr() != nil; it.Next() {
			n := it.Get()
			require.NotNil(t, n.Edg())
			e := n.Edg()
			steps := 0
			for {
				assert.Equal(t, n, e.Origin())
				e = e.CCWEdg()
				steps++
				require.LessOrEqual(t, steps, m.Edges.Size(), "unclosed spoke ring at node %d", n.ID())
				if e == n.Edg() {
					break
				}
			}
		}
	})

	t.Run("every triangle side borders its triangle", func(t *testing.T) {
		for it := NewListIter(&m.Triangles); it.NodePtr() != nil; it.Next() {
			tri := it.Get()
			for i := 0; i < 3; i++ {
				assert.Equal(t, tri, tri.E(i).Left())
			}
		}
	})

	t.Run("hub is inside every fan triangle's circumcircle complement", func(t *testing.T) {
		// The fan around the hub is Delaunay-consistent with the rim: no rim
		// node lies strictly inside a neighboring fan triangle.
		for it := NewListIter(&m.Triangles); it.NodePtr() != nil; it.Next() {
			tri := it.Get()
			for nit := NewMeshIter(&m.Nodes); nit.NodePtr() != nil; nit.Next() {
				n := nit.Get()
				if n == tri.P(0) || n == tri.P(1) || n == tri.P(2) {
					continue
				}
				inside := InNewTri(n.Point(), tri)
				assert.False(t, inside, "node %d inside %v", n.ID(), tri)
			}
		}
	})
}
