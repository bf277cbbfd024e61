package mesh

// BoundaryFlag classifies a mesh element. Interior and Stream elements are
// "active": the solver visits them every step. OpenBoundary and ClosedBoundary
// elements only supply boundary conditions and live in the back partition of
// the mesh lists.
type BoundaryFlag int

const (
	Interior BoundaryFlag = iota
	Stream
	OpenBoundary
	ClosedBoundary
)

// IsActive reports whether elements with this flag belong in the active
// partition.
func (f BoundaryFlag) IsActive() bool {
	return f == Interior || f == Stream
}

func (f BoundaryFlag) String() string {
	switch f {
	case Interior:
		return "interior"
	case Stream:
		return "stream"
	case OpenBoundary:
		return "open boundary"
	case ClosedBoundary:
		return "closed boundary"
	}
	return "unknown"
}

// Boundable is implemented by any payload a mesh list can partition. It is
// the bridge the iterator uses to ask an element which side of the partition
// it belongs on, without knowing whether it holds a node or an edge.
type Boundable interface {
	Boundary() BoundaryFlag

	// setBoundaryFlag is unexported so the flag of a payload on a live list
	// can only change through MeshList.SetBoundary, which relocates the
	// payload to the matching partition in the same step.
	setBoundaryFlag(BoundaryFlag)
}

// Payload is the constraint for mesh-list element types. Payloads are pointers
// in practice, so comparability is identity.
type Payload interface {
	comparable
	Boundable
}
