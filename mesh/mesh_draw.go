package mesh

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

func (m *Mesh) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for it := NewMeshIter(&m.Nodes); it.NodePtr() != nil; it.Next() {
		n := it.Get()
		minX = math.Min(minX, n.X())
		minY = math.Min(minY, n.Y())
		maxX = math.Max(maxX, n.X())
		maxY = math.Max(maxY, n.Y())
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Each edge pair draws twice, which doesn't matter here.
	c.SetLineWidth(1)
	c.SetRGB(0, 0.5, 0)
	for it := NewMeshIter(&m.Edges); it.NodePtr() != nil; it.Next() {
		e := it.Get()
		o, d := e.Origin(), e.Dest()
		c.MoveTo(o.X(), o.Y())
		c.LineTo(d.X(), d.Y())
	}
	c.Stroke()

	// Active nodes cyan, boundary nodes red.
	for it := NewMeshIter(&m.Nodes); it.NodePtr() != nil; it.Next() {
		n := it.Get()
		if n.Boundary().IsActive() {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.DrawCircle(n.X(), n.Y(), 3/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/tin_mesh.png")
	imgcat.CatFile("/tmp/tin_mesh.png", os.Stdout)
}

// dbgDumpSpokes prints every node's spoke ring with readable colored names,
// for eyeballing adjacency while debugging mesh surgery.
func (m *Mesh) dbgDumpSpokes() {
	for it := NewMeshIter(&m.Nodes); it.NodePtr() != nil; it.Next() {
		n := it.Get()
		if n.Edg() == nil {
			fmt.Println(n.DbgName(), "has no spokes")
			continue
		}
		fmt.Print(n.DbgName(), " ->")
		e := n.Edg()
		for {
			fmt.Print(" ", e.Dest().DbgName())
			e = e.CCWEdg()
			if e == n.Edg() {
				break
			}
		}
		fmt.Println()
	}
}
