package mesh

import "github.com/tinmesh/tinmesh/predicates"

// Delaunay acceptance tests for mesh surgery. These are the only callers of
// the in-circle predicate in the core; everything else settles for the
// cheaper circumcenter arithmetic in TriPasses.

// Next3Delaunay reads the three nodes starting at the iterator's cursor,
// orients them counterclockwise, and reports whether their circumcircle is
// empty of test. A point exactly on the circle does not violate the triangle.
// The caller's iterator is not disturbed. False when fewer than three nodes
// remain.
func Next3Delaunay(it *MeshIter[*Node], test *Node) bool {
	probe := *it
	if probe.NodePtr() == nil {
		return false
	}
	p0 := probe.Get()
	if !probe.Next() {
		return false
	}
	p1 := probe.Get()
	if !probe.Next() {
		return false
	}
	p2 := probe.Get()
	return tripleDelaunay(p0, p1, p2, test)
}

// PointAndNext2Delaunay anchors the triangle on a fixed node plus the two
// nodes at the iterator's cursor, then runs the same empty-circumcircle test.
func PointAndNext2Delaunay(anchor *Node, it *MeshIter[*Node], test *Node) bool {
	probe := *it
	if probe.NodePtr() == nil {
		return false
	}
	p1 := probe.Get()
	if !probe.Next() {
		return false
	}
	p2 := probe.Get()
	return tripleDelaunay(anchor, p1, p2, test)
}

func tripleDelaunay(p0, p1, p2, test *Node) bool {
	a, b, c := p0.Point(), p1.Point(), p2.Point()
	orient := predicates.Orient2D(a, b, c)
	if orient == 0 {
		// Collinear triple has no circumcircle to violate.
		return false
	}
	if orient < 0 {
		b, c = c, b
	}
	return predicates.InCircle(a, b, c, test.Point()) <= 0
}
