// Robust geometric predicates and a TIN mesh core for Go.
//
// This package exposes exact-sign orientation and in-circle tests built on
// adaptive expansion arithmetic, and a half-edge triangulated-irregular-network
// container whose element lists are partitioned into active (interior, stream)
// and boundary elements for solver sweeps.
package tinmesh

import (
	"io"

	"github.com/tinmesh/tinmesh/mesh"
	"github.com/tinmesh/tinmesh/predicates"
)

// Point is a bare coordinate pair, the form the predicates take.
type Point = [2]float64

type Node = mesh.Node
type Edge = mesh.Edge
type Triangle = mesh.Triangle
type Mesh = mesh.Mesh
type BoundaryFlag = mesh.BoundaryFlag

const (
	Interior       = mesh.Interior
	Stream         = mesh.Stream
	OpenBoundary   = mesh.OpenBoundary
	ClosedBoundary = mesh.ClosedBoundary
)

func NewMesh() *Mesh { return mesh.NewMesh() }

// Orient2D returns a value whose sign is exactly the sign of the signed twice
// area of the triangle (pa, pb, pc): positive for counterclockwise, negative
// for clockwise, zero for collinear.
func Orient2D(pa, pb, pc [2]float64) float64 {
	return predicates.Orient2D(pa, pb, pc)
}

// Orient2DFast is the naive determinant without the adaptive escalation. The
// sign can be wrong near degeneracy; use it only where that is tolerable.
func Orient2DFast(pa, pb, pc [2]float64) float64 {
	return predicates.Orient2DFast(pa, pb, pc)
}

// InCircle returns a value whose sign says where pd sits relative to the
// circumcircle of the counterclockwise triangle (pa, pb, pc): positive
// strictly inside, zero on the circle, negative outside.
func InCircle(pa, pb, pc, pd [2]float64) float64 {
	return predicates.InCircle(pa, pb, pc, pd)
}

// InCircleFast is the naive lifted determinant without the adaptive
// escalation.
func InCircleFast(pa, pb, pc, pd [2]float64) float64 {
	return predicates.InCircleFast(pa, pb, pc, pd)
}

// WriteCheckpoint persists the mesh's nodes to w. Internal faults surface as
// errors rather than panics.
func WriteCheckpoint(w io.Writer, m *Mesh) (err error) {
	defer func() {
		if recoveredErr := mesh.HandleMeshPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return mesh.WriteNodes(w, &m.Nodes)
}

// ReadCheckpoint restores the node list of a checkpoint written by
// WriteCheckpoint on the same platform.
func ReadCheckpoint(r io.Reader, m *Mesh) (err error) {
	defer func() {
		if recoveredErr := mesh.HandleMeshPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return mesh.ReadNodes(r, &m.Nodes)
}
