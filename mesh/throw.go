package mesh

import "github.com/pkg/errors"

// Threading errors through every list relink and pointer walk would bury the
// mesh operations in plumbing. Internal faults panic instead, and the public
// entry points recover to convert them to an error.

type MeshError error

// Panic with a MeshError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleMeshPanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError
		}
		panic(r)
	}
	return nil
}
