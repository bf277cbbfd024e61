package mesh

import "github.com/tinmesh/tinmesh/predicates"

// Mesh owns the element lists. Nodes and edges live on two-partition lists so
// the solver can sweep the active prefix without touching boundary elements;
// triangles have no boundary classification and sit on a plain list. All
// pointers held by elements borrow from these lists and die with Flush.
type Mesh struct {
	Nodes     MeshList[*Node]
	Edges     MeshList[*Edge]
	Triangles List[*Triangle]

	nextNodeID int
	nextEdgeID int
	nextTriID  int
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// AddNode allocates a node and threads it into the node list's partition for
// its flag.
func (m *Mesh) AddNode(x, y, z float64, flag BoundaryFlag) *Node {
	n := NewNode(m.nextNodeID, x, y, z, flag)
	m.nextNodeID++
	m.Nodes.InsertAtBack(n)
	return n
}

// AddEdgePair allocates the half-edge and its twin between two nodes and
// threads both into the edge list. An edge is active when either endpoint is
// active; an edge between two boundary nodes runs along the boundary. Each
// endpoint without an outgoing edge adopts the new one.
func (m *Mesh) AddEdgePair(org, dest *Node) (*Edge, *Edge) {
	flag := Interior
	if !org.Boundary().IsActive() && !dest.Boundary().IsActive() {
		flag = ClosedBoundary
	}
	e := &Edge{id: m.nextEdgeID, origin: org, flag: flag}
	t := &Edge{id: m.nextEdgeID + 1, origin: dest, flag: flag}
	m.nextEdgeID += 2
	e.twin = t
	t.twin = e
	spliceSpoke(org, e)
	spliceSpoke(dest, t)
	m.Edges.InsertAtBack(e)
	m.Edges.InsertAtBack(t)
	return e, t
}

// spliceSpoke links e into the CCW ring of outgoing edges around its origin.
// The ring is kept sorted by angle so CCWEdg walks the spoke in true
// counterclockwise order.
func spliceSpoke(org *Node, e *Edge) {
	if org.Edg() == nil {
		e.next = e
		org.SetEdg(e)
		return
	}
	after := spokePredecessor(org, e)
	e.next = after.next
	after.next = e
}

// spokePredecessor finds the existing outgoing edge after which e belongs in
// CCW order. With fewer than two existing spokes any position is correct.
func spokePredecessor(org *Node, e *Edge) *Edge {
	first := org.Edg()
	if first.next == first {
		return first
	}
	p := org.Point()
	cur := first
	for {
		next := cur.next
		if ccwBetween(p, cur.Dest().Point(), e.Dest().Point(), next.Dest().Point()) {
			return cur
		}
		cur = next
		if cur == first {
			// Numerically ambiguous ring; fall back to inserting after first.
			return first
		}
	}
}

// ccwBetween reports whether direction b falls strictly between directions a
// and c going counterclockwise around p.
func ccwBetween(p, a, b, c [2]float64) bool {
	if predicates.Orient2D(p, a, c) > 0 {
		return predicates.Orient2D(p, a, b) > 0 && predicates.Orient2D(p, b, c) > 0
	}
	return predicates.Orient2D(p, a, b) > 0 || predicates.Orient2D(p, b, c) > 0
}

// FindEdge returns the directed edge from org to dest by walking org's spoke,
// or nil when the nodes are not connected.
func (m *Mesh) FindEdge(org, dest *Node) *Edge {
	first := org.Edg()
	if first == nil {
		return nil
	}
	for e := first; ; e = e.next {
		if e.Dest() == dest {
			return e
		}
		if e.next == first {
			return nil
		}
	}
}

// AddTriangle builds a triangle over three connected nodes. The vertices are
// reordered counterclockwise if given clockwise; a collinear triple is a
// programming fault. Side edges take the triangle as their left face, and
// neighbor links are derived from the twins' left faces.
func (m *Mesh) AddTriangle(n0, n1, n2 *Node) *Triangle {
	orient := predicates.Orient2D(n0.Point(), n1.Point(), n2.Point())
	if orient == 0 {
		fatalf("triangle over collinear nodes %d %d %d", n0.ID(), n1.ID(), n2.ID())
	}
	if orient < 0 {
		n1, n2 = n2, n1
	}
	t := &Triangle{id: m.nextTriID, nodes: [3]*Node{n0, n1, n2}}
	m.nextTriID++
	for i := 0; i < 3; i++ {
		e := m.FindEdge(t.nodes[i], t.nodes[(i+1)%3])
		if e == nil {
			fatalf("triangle side %d -> %d has no edge",
				t.nodes[i].ID(), t.nodes[(i+1)%3].ID())
		}
		t.edges[i] = e
		e.left = t
	}
	// The neighbor opposite vertex i shares the side from i+1 to i+2, so it
	// is the left face of that side's twin.
	for i := 0; i < 3; i++ {
		nbr := t.edges[(i+1)%3].twin.left
		t.nbrs[i] = nbr
		if nbr != nil {
			for j := 0; j < 3; j++ {
				if nbr.edges[j].twin == t.edges[(i+1)%3] {
					nbr.nbrs[(j+2)%3] = t
				}
			}
		}
	}
	m.Triangles.InsertAtBack(t)
	return t
}

// Flush empties every list and resets the identifier counters. All element
// pointers handed out before the flush are dead.
func (m *Mesh) Flush() {
	m.Nodes.Flush()
	m.Edges.Flush()
	m.Triangles.Flush()
	m.nextNodeID = 0
	m.nextEdgeID = 0
	m.nextTriID = 0
}
