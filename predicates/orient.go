// Sign-exact orientation and in-circle tests for the TIN core. Inexact
// arithmetic on nearly degenerate inputs can flip the sign of an orientation
// determinant and silently corrupt mesh topology, so every topological
// decision goes through these rather than the naive formulas.
package predicates

// abs avoids math.Abs so the whole hot path stays free of function calls the
// inliner might not flatten.
func abs(a float64) float64 {
	if a >= 0 {
		return a
	}
	return -a
}

// Orient2DFast returns the naive signed twice-area of triangle (pa, pb, pc):
// positive for counterclockwise, negative for clockwise, zero for collinear.
// No roundoff protection; use only where a wrong sign on near-degenerate
// input is tolerable.
func Orient2DFast(pa, pb, pc [2]float64) float64 {
	acx := pa[0] - pc[0]
	bcx := pb[0] - pc[0]
	acy := pa[1] - pc[1]
	bcy := pb[1] - pc[1]
	return acx*bcy - acy*bcx
}

// Orient2D returns a value whose sign is exactly the sign of the signed
// twice-area of triangle (pa, pb, pc): positive for counterclockwise,
// negative for clockwise, zero for collinear. The magnitude is only an
// approximation of the area once the adaptive ladder has escalated.
func Orient2D(pa, pb, pc [2]float64) float64 {
	ensureInit()

	detleft := (pa[0] - pc[0]) * (pb[1] - pc[1])
	detright := (pa[1] - pc[1]) * (pb[0] - pc[0])
	det := detleft - detright

	var detsum float64
	if detleft > 0.0 {
		if detright <= 0.0 {
			return det
		}
		detsum = detleft + detright
	} else if detleft < 0.0 {
		if detright >= 0.0 {
			return det
		}
		detsum = -detleft - detright
	} else {
		return det
	}

	errbound := ccwerrboundA * detsum
	if det >= errbound || -det >= errbound {
		return det
	}

	return orient2dAdapt(pa, pb, pc, detsum)
}

// orient2dAdapt is the slow path: it rebuilds the determinant as an exact
// expansion, layer by layer, bailing out as soon as an error bound proves the
// accumulated sign correct. Falls through to a fully exact 16-component
// expansion whose top component carries the true sign.
func orient2dAdapt(pa, pb, pc [2]float64, detsum float64) float64 {
	var b, u [4]float64
	var c1 [8]float64
	var c2 [12]float64
	var d [16]float64

	acx := pa[0] - pc[0]
	bcx := pb[0] - pc[0]
	acy := pa[1] - pc[1]
	bcy := pb[1] - pc[1]

	detleft, detlefttail := twoProduct(acx, bcy)
	detright, detrighttail := twoProduct(acy, bcx)

	b[3], b[2], b[1], b[0] = twoTwoDiff(detleft, detlefttail, detright, detrighttail)

	det := estimate(b[:])
	errbound := ccwerrboundB * detsum
	if det >= errbound || -det >= errbound {
		return det
	}

	acxtail := twoDiffTail(pa[0], pc[0], acx)
	bcxtail := twoDiffTail(pb[0], pc[0], bcx)
	acytail := twoDiffTail(pa[1], pc[1], acy)
	bcytail := twoDiffTail(pb[1], pc[1], bcy)

	if acxtail == 0.0 && acytail == 0.0 && bcxtail == 0.0 && bcytail == 0.0 {
		return det
	}

	errbound = ccwerrboundC*detsum + resulterrbound*abs(det)
	det += (acx*bcytail + bcy*acxtail) - (acy*bcxtail + bcx*acytail)
	if det >= errbound || -det >= errbound {
		return det
	}

	s1, s0 := twoProduct(acxtail, bcy)
	t1, t0 := twoProduct(acytail, bcx)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	c1len := fastExpansionSumZeroelim(b[:], u[:], c1[:])

	s1, s0 = twoProduct(acx, bcytail)
	t1, t0 = twoProduct(acy, bcxtail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	c2len := fastExpansionSumZeroelim(c1[:c1len], u[:], c2[:])

	s1, s0 = twoProduct(acxtail, bcytail)
	t1, t0 = twoProduct(acytail, bcxtail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	dlen := fastExpansionSumZeroelim(c2[:c2len], u[:], d[:])

	return d[dlen-1]
}

// DiffOfProductsOfDifferences returns a value whose sign is exactly the sign
// of (a-b)*(c-d) - (e-f)*(g-h). It is Orient2D over arbitrary scalars rather
// than point coordinates; segment-intersection coordinates use it to decide
// which side of zero a denominator falls on.
func DiffOfProductsOfDifferences(a, b, c, d, e, f, g, h float64) float64 {
	ensureInit()

	left := (a - b) * (c - d)
	right := (e - f) * (g - h)
	diff := left - right

	var sum float64
	if left > 0.0 {
		if right <= 0.0 {
			return diff
		}
		sum = left + right
	} else if left < 0.0 {
		if right >= 0.0 {
			return diff
		}
		sum = -left - right
	} else {
		return diff
	}

	errbound := ccwerrboundA * sum
	if diff >= errbound || -diff >= errbound {
		return diff
	}
	return adaptDiffOfProds(a, b, c, d, e, f, g, h, sum)
}

func adaptDiffOfProds(terma, termb, termc, termd, terme, termf, termg, termh, sum float64) float64 {
	var bb, u [4]float64
	var c1 [8]float64
	var c2 [12]float64
	var dd [16]float64

	diff1 := terma - termb
	diff2 := termc - termd
	diff3 := terme - termf
	diff4 := termg - termh

	leftprod, leftprodtail := twoProduct(diff1, diff2)
	rightprod, rightprodtail := twoProduct(diff3, diff4)

	bb[3], bb[2], bb[1], bb[0] = twoTwoDiff(leftprod, leftprodtail, rightprod, rightprodtail)

	diff := estimate(bb[:])
	errbound := ccwerrboundB * sum
	if diff >= errbound || -diff >= errbound {
		return diff
	}

	diff1tail := twoDiffTail(terma, termb, diff1)
	diff2tail := twoDiffTail(termc, termd, diff2)
	diff3tail := twoDiffTail(terme, termf, diff3)
	diff4tail := twoDiffTail(termg, termh, diff4)

	if diff1tail == 0.0 && diff2tail == 0.0 && diff3tail == 0.0 && diff4tail == 0.0 {
		return diff
	}

	errbound = ccwerrboundC*sum + resulterrbound*abs(diff)
	diff += (diff1*diff2tail + diff2*diff1tail) - (diff3*diff4tail + diff4*diff3tail)
	if diff >= errbound || -diff >= errbound {
		return diff
	}

	s1, s0 := twoProduct(diff1tail, diff2)
	t1, t0 := twoProduct(diff3tail, diff4)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	c1len := fastExpansionSumZeroelim(bb[:], u[:], c1[:])

	s1, s0 = twoProduct(diff1, diff2tail)
	t1, t0 = twoProduct(diff3, diff4tail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	c2len := fastExpansionSumZeroelim(c1[:c1len], u[:], c2[:])

	s1, s0 = twoProduct(diff1tail, diff2tail)
	t1, t0 = twoProduct(diff3tail, diff4tail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	dlen := fastExpansionSumZeroelim(c2[:c2len], u[:], dd[:])

	return dd[dlen-1]
}
