package mesh

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/tinmesh/tinmesh/dbg"
)

// The half-edge element model. Nodes, directed edges, and triangles point at
// each other freely; none of the pointers own anything. Ownership lives in the
// mesh lists, and every pointer here is a borrow that dies with Flush.

// Node is a TIN vertex: a position, an elevation, and one outgoing half-edge.
// The boundary flag is private on purpose. On a live list it may only change
// through MeshList.SetBoundary, which keeps the flag and the node's partition
// in agreement.
type Node struct {
	id      int
	x, y, z float64
	flag    BoundaryFlag
	edg     *Edge
}

func NewNode(id int, x, y, z float64, flag BoundaryFlag) *Node {
	return &Node{id: id, x: x, y: y, z: z, flag: flag}
}

func (n *Node) ID() int                { return n.id }
func (n *Node) X() float64             { return n.x }
func (n *Node) Y() float64             { return n.y }
func (n *Node) Z() float64             { return n.z }
func (n *Node) SetZ(z float64)         { n.z = z }
func (n *Node) Boundary() BoundaryFlag { return n.flag }

func (n *Node) setBoundaryFlag(f BoundaryFlag) { n.flag = f }

// Point returns the position in the two-element form the predicates take.
func (n *Node) Point() [2]float64 { return [2]float64{n.x, n.y} }

// Edg returns one outgoing half-edge, or nil for an unconnected node. Which
// one is unspecified; walk Twin/Next from it to enumerate the spoke.
func (n *Node) Edg() *Edge     { return n.edg }
func (n *Node) SetEdg(e *Edge) { n.edg = e }

func (n *Node) String() string {
	return fmt.Sprintf("node %d (%.6g, %.6g, %.6g) %v", n.id, n.x, n.y, n.z, n.flag)
}

// DbgName gives the node a stable readable name for debug output, colored by
// partition so active and boundary nodes are easy to tell apart in a trace.
func (n *Node) DbgName() string {
	name := dbg.Name(n)
	switch n.flag {
	case Interior:
		name = aurora.Green(name).String()
	case Stream:
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Red(name).String()
	}
	return name
}

// Edge is a directed half-edge from origin to its twin's origin. next is the
// next outgoing edge around the origin in counterclockwise order; left is the
// triangle on the edge's left, nil along the hull.
type Edge struct {
	id     int
	origin *Node
	twin   *Edge
	next   *Edge
	left   *Triangle
	flag   BoundaryFlag
}

func (e *Edge) ID() int                { return e.id }
func (e *Edge) Origin() *Node          { return e.origin }
func (e *Edge) Twin() *Edge            { return e.twin }
func (e *Edge) Left() *Triangle        { return e.left }
func (e *Edge) Boundary() BoundaryFlag { return e.flag }

func (e *Edge) setBoundaryFlag(f BoundaryFlag) { e.flag = f }

// Dest is the node the edge points at, which by half-edge symmetry is the
// twin's origin.
func (e *Edge) Dest() *Node { return e.twin.origin }

// CCWEdg is the next outgoing edge around the origin, counterclockwise.
func (e *Edge) CCWEdg() *Edge { return e.next }

func (e *Edge) String() string {
	return fmt.Sprintf("edge %d (%d -> %d)", e.id, e.origin.id, e.Dest().id)
}

// Triangle keeps its three vertices in counterclockwise order, the directed
// edge along each side, and the neighbor triangle opposite each vertex (nil
// along the hull).
type Triangle struct {
	id    int
	nodes [3]*Node
	edges [3]*Edge
	nbrs  [3]*Triangle
}

func (t *Triangle) ID() int { return t.id }

// P returns vertex i.
func (t *Triangle) P(i int) *Node { return t.nodes[i] }

// E returns the directed edge from vertex i to vertex (i+1)%3.
func (t *Triangle) E(i int) *Edge { return t.edges[i] }

// N returns the neighbor opposite vertex i.
func (t *Triangle) N(i int) *Triangle { return t.nbrs[i] }

func (t *Triangle) String() string {
	return fmt.Sprintf("triangle %d (%d %d %d)",
		t.id, t.nodes[0].id, t.nodes[1].id, t.nodes[2].id)
}
