package mesh

import "math"

// Raster is a regular grid of values anchored at its lower-left corner, used
// to seed node elevations from gridded terrain. Cell (0, 0) is the lower-left
// cell; values[j][i] holds column i, row j counted upward.
type Raster struct {
	Values    [][]float64
	XLLCorner float64
	YLLCorner float64
	CellSize  float64
	NoData    float64
}

func (r *Raster) NumRows() int { return len(r.Values) }

func (r *Raster) NumCols() int {
	if len(r.Values) == 0 {
		return 0
	}
	return len(r.Values[0])
}

// InterpMethod selects how InterpSquareGrid samples the raster.
type InterpMethod int

const (
	InterpNearest InterpMethod = iota
	InterpBilinear
)

// InterpSquareGrid samples the raster at (x, y). Nearest returns the value of
// the enclosing cell; Bilinear returns the distance-weighted average of the
// four surrounding cell centers, falling back to the enclosing cell along the
// raster's outer half-cell rim. Coordinates outside the raster, and any
// sample whose contributing cells include the nodata sentinel, return NoData.
func (r *Raster) InterpSquareGrid(x, y float64, method InterpMethod) float64 {
	fx := (x - r.XLLCorner) / r.CellSize
	fy := (y - r.YLLCorner) / r.CellSize
	cols, rows := r.NumCols(), r.NumRows()
	if fx < 0 || fy < 0 || fx >= float64(cols) || fy >= float64(rows) {
		return r.NoData
	}
	ci, cj := int(fx), int(fy)

	if method == InterpNearest {
		return r.Values[cj][ci]
	}

	// Bilinear over cell centers: shift by half a cell so (gx, gy) indexes
	// the center grid, then clamp the rim to the nearest centers.
	gx, gy := fx-0.5, fy-0.5
	i0 := clampIndex(int(math.Floor(gx)), cols-1)
	j0 := clampIndex(int(math.Floor(gy)), rows-1)
	i1 := clampIndex(i0+1, cols-1)
	j1 := clampIndex(j0+1, rows-1)

	v00 := r.Values[j0][i0]
	v10 := r.Values[j0][i1]
	v01 := r.Values[j1][i0]
	v11 := r.Values[j1][i1]
	if v00 == r.NoData || v10 == r.NoData || v01 == r.NoData || v11 == r.NoData {
		return r.NoData
	}

	tx := gx - math.Floor(gx)
	ty := gy - math.Floor(gy)
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}
	bottom := v00 + tx*(v10-v00)
	top := v01 + tx*(v11-v01)
	return bottom + ty*(top-bottom)
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

