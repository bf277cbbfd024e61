package tinmesh

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestFacade(t *testing.T) {
	a, b, c := [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}
	assert.Positive(t, Orient2D(a, b, c))
	assert.Positive(t, InCircle(a, b, c, [2]float64{0.25, 0.25}))
	assert.Negative(t, InCircle(a, b, c, [2]float64{2, 2}))

	m := NewMesh()
	m.AddNode(0, 0, 10, Interior)
	m.AddNode(1, 0, 11, ClosedBoundary)

	var buf bytes.Buffer
	assert.NoError(t, WriteCheckpoint(&buf, m))

	restored := NewMesh()
	assert.NoError(t, ReadCheckpoint(&buf, restored))
	assert.Equal(t, 2, restored.Nodes.Size())
	assert.Equal(t, 1, restored.Nodes.ActiveSize())
}
