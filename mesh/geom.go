package mesh

import (
	"math"

	"github.com/tinmesh/tinmesh/predicates"
)

// Stateless geometry over points, edges, and triangles. Orientation decisions
// all go through the adaptive predicates so that every caller sees the same
// answer for the same triple; only distance-style quantities are computed
// with ordinary floating point.

func DistanceBW2Points(p0, p1 [2]float64) float64 {
	return math.Hypot(p1[0]-p0[0], p1[1]-p0[1])
}

// UnitVector returns the direction cosines of e. Zero-length edges are the
// caller's problem; the components come back NaN or Inf.
func UnitVector(e *Edge) (dx, dy float64) {
	o := e.Origin().Point()
	d := e.Dest().Point()
	norm := DistanceBW2Points(o, d)
	return (d[0] - o[0]) / norm, (d[1] - o[1]) / norm
}

// FindCosineAngle0_2_1 returns the cosine of the angle at p1 spanned by p0
// and p2, via the normalized dot product.
func FindCosineAngle0_2_1(p0, p1, p2 [2]float64) float64 {
	ax, ay := p0[0]-p1[0], p0[1]-p1[1]
	bx, by := p2[0]-p1[0], p2[1]-p1[1]
	dot := ax*bx + ay*by
	return dot / (math.Hypot(ax, ay) * math.Hypot(bx, by))
}

// PointsCCW reports whether the triple winds counterclockwise. Collinear
// triples are not CCW.
func PointsCCW(p0, p1, p2 [2]float64) bool {
	return predicates.Orient2D(p0, p1, p2) > 0
}

// NewTriCCW reports whether a candidate triangle's vertices wind
// counterclockwise.
func NewTriCCW(t *Triangle) bool {
	return PointsCCW(t.P(0).Point(), t.P(1).Point(), t.P(2).Point())
}

// InNewTri reports whether p lies inside or on the candidate triangle. The
// triangle must already be CCW.
func InNewTri(p [2]float64, t *Triangle) bool {
	for i := 0; i < 3; i++ {
		a := t.P(i).Point()
		b := t.P((i + 1) % 3).Point()
		if predicates.Orient2D(a, b, p) < 0 {
			return false
		}
	}
	return true
}

// TriPasses reports whether the triangle (p0, p1, p2) is locally Delaunay
// with respect to ptest: true when ptest is outside (or on) the circumcircle.
// The test compares squared distances to the circumcenter, which is cheap and
// adequate here; callers that need an exact verdict on cocircular input use
// the Delaunay tests built on the in-circle predicate.
func TriPasses(ptest, p0, p1, p2 [2]float64) bool {
	cx, cy, ok := circumcenter(p0, p1, p2)
	if !ok {
		// Degenerate triangle has no circumcircle; nothing violates it.
		return true
	}
	dtest := (ptest[0]-cx)*(ptest[0]-cx) + (ptest[1]-cy)*(ptest[1]-cy)
	r2 := (p0[0]-cx)*(p0[0]-cx) + (p0[1]-cy)*(p0[1]-cy)
	return dtest >= r2
}

// circumcenter solves the perpendicular-bisector system for the triangle's
// circumcenter. ok is false for collinear input.
func circumcenter(p0, p1, p2 [2]float64) (cx, cy float64, ok bool) {
	ax, ay := p1[0]-p0[0], p1[1]-p0[1]
	bx, by := p2[0]-p0[0], p2[1]-p0[1]
	d := 2 * (ax*by - ay*bx)
	if d == 0 {
		return 0, 0, false
	}
	asq := ax*ax + ay*ay
	bsq := bx*bx + by*by
	cx = p0[0] + (by*asq-ay*bsq)/d
	cy = p0[1] + (ax*bsq-bx*asq)/d
	return cx, cy, true
}

// SegmentsIntersect reports whether segment (a1, a2) meets segment (b1, b2).
// Proper crossings need the endpoints of each segment strictly on opposite
// sides of the other; touching and collinear-overlapping configurations also
// count as intersecting.
func SegmentsIntersect(a1, a2, b1, b2 [2]float64) bool {
	d1 := predicates.Orient2D(b1, b2, a1)
	d2 := predicates.Orient2D(b1, b2, a2)
	d3 := predicates.Orient2D(a1, a2, b1)
	d4 := predicates.Orient2D(a1, a2, b2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(b1, b2, a1) {
		return true
	}
	if d2 == 0 && onSegment(b1, b2, a2) {
		return true
	}
	if d3 == 0 && onSegment(a1, a2, b1) {
		return true
	}
	if d4 == 0 && onSegment(a1, a2, b2) {
		return true
	}
	return false
}

// onSegment assumes p is collinear with (s1, s2) and reports whether it lies
// within the segment's bounding box.
func onSegment(s1, s2, p [2]float64) bool {
	return math.Min(s1[0], s2[0]) <= p[0] && p[0] <= math.Max(s1[0], s2[0]) &&
		math.Min(s1[1], s2[1]) <= p[1] && p[1] <= math.Max(s1[1], s2[1])
}

// Intersect reports whether two mesh edges cross.
func Intersect(e1, e2 *Edge) bool {
	return SegmentsIntersect(
		e1.Origin().Point(), e1.Dest().Point(),
		e2.Origin().Point(), e2.Dest().Point())
}

// IntersectsAnyEdgeInList scans the list and returns the first edge crossing
// probe, or nil. Edges sharing an endpoint with probe are skipped; adjacency
// is not a crossing.
func IntersectsAnyEdgeInList(probe *Edge, edges *List[*Edge]) *Edge {
	for it := NewListIter(edges); it.NodePtr() != nil; it.Next() {
		e := it.Get()
		if e == probe || e == probe.Twin() {
			continue
		}
		if e.Origin() == probe.Origin() || e.Origin() == probe.Dest() ||
			e.Dest() == probe.Origin() || e.Dest() == probe.Dest() {
			continue
		}
		if Intersect(probe, e) {
			return e
		}
	}
	return nil
}

// FindIntersectionCoords returns the intersection point of the lines through
// the two segments. ok is false for parallel or degenerate input. The
// determinants go through the exact difference-of-products routine so a
// near-parallel pair cannot produce a wildly wrong crossing from cancellation.
func FindIntersectionCoords(a1, a2, b1, b2 [2]float64) (p [2]float64, ok bool) {
	// Solve a1 + t*(a2-a1) = b1 + u*(b2-b1) by Cramer's rule.
	denom := predicates.DiffOfProductsOfDifferences(
		a1[0], a2[0], b1[1], b2[1],
		a1[1], a2[1], b1[0], b2[0])
	if denom == 0 {
		return p, false
	}
	tnum := predicates.DiffOfProductsOfDifferences(
		a1[0], b1[0], b1[1], b2[1],
		a1[1], b1[1], b1[0], b2[0])
	t := tnum / denom
	p[0] = a1[0] + t*(a2[0]-a1[0])
	p[1] = a1[1] + t*(a2[1]-a1[1])
	return p, true
}

// LineFit interpolates linearly through (x0, y0) and (x1, y1), returning the
// y value at x. Vertical pairs (x0 == x1) return y0.
func LineFit(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// PlaneFit evaluates the plane through three nodes at (x, y), returning the
// interpolated elevation. The nodes must not be collinear.
func PlaneFit(x, y float64, p0, p1, p2 *Node) float64 {
	ax, ay, az := p1.X()-p0.X(), p1.Y()-p0.Y(), p1.Z()-p0.Z()
	bx, by, bz := p2.X()-p0.X(), p2.Y()-p0.Y(), p2.Z()-p0.Z()
	// Plane normal by cross product.
	nx := ay*bz - az*by
	ny := az*bx - ax*bz
	nz := ax*by - ay*bx
	if nz == 0 {
		fatalf("plane fit through collinear nodes %d %d %d", p0.ID(), p1.ID(), p2.ID())
	}
	return p0.Z() - (nx*(x-p0.X())+ny*(y-p0.Y()))/nz
}
