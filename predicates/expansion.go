package predicates

// Exact floating-point arithmetic on expansions, after Shewchuk's "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates".
// An expansion is a slice of float64 components, sorted by increasing
// magnitude, whose true sum is the represented value. The components are
// nonoverlapping: no bit of one component coincides with a bit of another, so
// the sign of the expansion is the sign of its largest (last) component.
//
// Everything here assumes IEEE-754 doubles with round-to-nearest-even and no
// excess precision in intermediates, which Go guarantees for float64
// arithmetic. Call Check at startup if you want that verified on an unfamiliar
// platform.

// fastTwoSum computes x + y == a + b exactly, provided |a| >= |b|.
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bvirt := x - a
	y = b - bvirt
	return x, y
}

// twoSum computes x + y == a + b exactly, with no precondition on magnitudes.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bvirt := x - a
	avirt := x - bvirt
	bround := b - bvirt
	around := a - avirt
	y = around + bround
	return x, y
}

// twoDiff computes x + y == a - b exactly.
func twoDiff(a, b float64) (x, y float64) {
	x = a - b
	return x, twoDiffTail(a, b, x)
}

// twoDiffTail recovers the rounding error of x = a - b.
func twoDiffTail(a, b, x float64) float64 {
	bvirt := a - x
	avirt := x + bvirt
	bround := bvirt - b
	around := a - avirt
	return around + bround
}

// split breaks a into two half-length significands whose sum is a, so that
// products of halves are exact.
func split(a float64) (hi, lo float64) {
	c := splitter * a
	abig := c - a
	hi = c - abig
	lo = a - hi
	return hi, lo
}

// twoProduct computes x + y == a * b exactly.
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	err := x - ahi*bhi
	err -= alo * bhi
	err -= ahi * blo
	y = alo*blo - err
	return x, y
}

// twoProductPresplit is twoProduct with b already split, for scaling a whole
// expansion by the same scalar.
func twoProductPresplit(a, b, bhi, blo float64) (x, y float64) {
	x = a * b
	ahi, alo := split(a)
	err := x - ahi*bhi
	err -= alo * bhi
	err -= ahi * blo
	y = alo*blo - err
	return x, y
}

// square computes x + y == a * a exactly, slightly cheaper than twoProduct.
func square(a float64) (x, y float64) {
	x = a * a
	ahi, alo := split(a)
	err := x - ahi*ahi
	err -= (ahi + ahi) * alo
	y = alo*alo - err
	return x, y
}

// twoOneDiff computes the three-component expansion (a1, a0) - b.
func twoOneDiff(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoDiff(a0, b)
	x2, x1 = twoSum(a1, i)
	return x2, x1, x0
}

// twoOneSum computes the three-component expansion (a1, a0) + b.
func twoOneSum(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0 := twoSum(a0, b)
	x2, x1 = twoSum(a1, i)
	return x2, x1, x0
}

// twoTwoDiff computes the four-component expansion (a1, a0) - (b1, b0).
func twoTwoDiff(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, r0, x0 := twoOneDiff(a1, a0, b0)
	x3, x2, x1 = twoOneDiff(j, r0, b1)
	return x3, x2, x1, x0
}

// twoTwoSum computes the four-component expansion (a1, a0) + (b1, b0).
func twoTwoSum(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, r0, x0 := twoOneSum(a1, a0, b0)
	x3, x2, x1 = twoOneSum(j, r0, b1)
	return x3, x2, x1, x0
}

// growExpansion writes e + b into h and returns the number of components.
// h must have room for len(e)+1 components. Maintains nonoverlap, and with
// round-to-even also strong nonoverlap and nonadjacency.
func growExpansion(e []float64, b float64, h []float64) int {
	q := b
	for i, enow := range e {
		q, h[i] = twoSum(q, enow)
	}
	h[len(e)] = q
	return len(e) + 1
}

// growExpansionZeroelim is growExpansion with zero components squeezed out of
// the result. The returned expansion always has at least one component.
func growExpansionZeroelim(e []float64, b float64, h []float64) int {
	hindex := 0
	q := b
	for _, enow := range e {
		var hh float64
		q, hh = twoSum(q, enow)
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	if q != 0.0 || hindex == 0 {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// fastExpansionSum writes e + f into h and returns the component count. The
// inputs must be strongly nonoverlapping; the output is too, under
// round-to-even. h must have room for len(e)+len(f) components.
func fastExpansionSum(e, f, h []float64) int {
	enow, fnow := e[0], f[0]
	eindex, findex := 0, 0
	var q float64
	if (fnow > enow) == (fnow > -enow) {
		q = enow
		eindex++
		if eindex < len(e) {
			enow = e[eindex]
		}
	} else {
		q = fnow
		findex++
		if findex < len(f) {
			fnow = f[findex]
		}
	}
	hindex := 0
	if eindex < len(e) && findex < len(f) {
		var qnew float64
		if (fnow > enow) == (fnow > -enow) {
			qnew, h[0] = fastTwoSum(enow, q)
			eindex++
			if eindex < len(e) {
				enow = e[eindex]
			}
		} else {
			qnew, h[0] = fastTwoSum(fnow, q)
			findex++
			if findex < len(f) {
				fnow = f[findex]
			}
		}
		q = qnew
		hindex = 1
		for eindex < len(e) && findex < len(f) {
			if (fnow > enow) == (fnow > -enow) {
				qnew, h[hindex] = twoSum(q, enow)
				eindex++
				if eindex < len(e) {
					enow = e[eindex]
				}
			} else {
				qnew, h[hindex] = twoSum(q, fnow)
				findex++
				if findex < len(f) {
					fnow = f[findex]
				}
			}
			q = qnew
			hindex++
		}
	}
	for eindex < len(e) {
		var qnew float64
		qnew, h[hindex] = twoSum(q, enow)
		eindex++
		if eindex < len(e) {
			enow = e[eindex]
		}
		q = qnew
		hindex++
	}
	for findex < len(f) {
		var qnew float64
		qnew, h[hindex] = twoSum(q, fnow)
		findex++
		if findex < len(f) {
			fnow = f[findex]
		}
		q = qnew
		hindex++
	}
	h[hindex] = q
	return hindex + 1
}

// fastExpansionSumZeroelim is fastExpansionSum with zero components squeezed
// out. This is the merge the adaptive predicates lean on.
func fastExpansionSumZeroelim(e, f, h []float64) int {
	enow, fnow := e[0], f[0]
	eindex, findex := 0, 0
	var q float64
	if (fnow > enow) == (fnow > -enow) {
		q = enow
		eindex++
		if eindex < len(e) {
			enow = e[eindex]
		}
	} else {
		q = fnow
		findex++
		if findex < len(f) {
			fnow = f[findex]
		}
	}
	hindex := 0
	var qnew, hh float64
	if eindex < len(e) && findex < len(f) {
		if (fnow > enow) == (fnow > -enow) {
			qnew, hh = fastTwoSum(enow, q)
			eindex++
			if eindex < len(e) {
				enow = e[eindex]
			}
		} else {
			qnew, hh = fastTwoSum(fnow, q)
			findex++
			if findex < len(f) {
				fnow = f[findex]
			}
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
		for eindex < len(e) && findex < len(f) {
			if (fnow > enow) == (fnow > -enow) {
				qnew, hh = twoSum(q, enow)
				eindex++
				if eindex < len(e) {
					enow = e[eindex]
				}
			} else {
				qnew, hh = twoSum(q, fnow)
				findex++
				if findex < len(f) {
					fnow = f[findex]
				}
			}
			q = qnew
			if hh != 0.0 {
				h[hindex] = hh
				hindex++
			}
		}
	}
	for eindex < len(e) {
		qnew, hh = twoSum(q, enow)
		eindex++
		if eindex < len(e) {
			enow = e[eindex]
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	for findex < len(f) {
		qnew, hh = twoSum(q, fnow)
		findex++
		if findex < len(f) {
			fnow = f[findex]
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	if q != 0.0 || hindex == 0 {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// scaleExpansion writes b*e into h and returns the component count. h must
// have room for 2*len(e) components.
func scaleExpansion(e []float64, b float64, h []float64) int {
	bhi, blo := split(b)
	var q float64
	q, h[0] = twoProductPresplit(e[0], b, bhi, blo)
	hindex := 1
	for eindex := 1; eindex < len(e); eindex++ {
		product1, product0 := twoProductPresplit(e[eindex], b, bhi, blo)
		var sum float64
		sum, h[hindex] = twoSum(q, product0)
		hindex++
		q, h[hindex] = twoSum(product1, sum)
		hindex++
	}
	h[hindex] = q
	return 2 * len(e)
}

// scaleExpansionZeroelim is scaleExpansion with zero components squeezed out.
func scaleExpansionZeroelim(e []float64, b float64, h []float64) int {
	bhi, blo := split(b)
	var q, hh float64
	q, hh = twoProductPresplit(e[0], b, bhi, blo)
	hindex := 0
	if hh != 0.0 {
		h[hindex] = hh
		hindex++
	}
	for eindex := 1; eindex < len(e); eindex++ {
		product1, product0 := twoProductPresplit(e[eindex], b, bhi, blo)
		var sum float64
		sum, hh = twoSum(q, product0)
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
		q, hh = fastTwoSum(product1, sum)
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	if q != 0.0 || hindex == 0 {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// compress squeezes an expansion into the fewest components that still sum to
// the same value, largest last. Under round-to-even the result is nonadjacent.
// h may alias e. Not used by the adaptive predicates themselves; provided for
// callers that want to keep an exact intermediate around.
func compress(e []float64, h []float64) int {
	bottom := len(e) - 1
	q := e[bottom]
	for eindex := len(e) - 2; eindex >= 0; eindex-- {
		qnew, small := fastTwoSum(q, e[eindex])
		if small != 0 {
			h[bottom] = qnew
			bottom--
			q = small
		} else {
			q = qnew
		}
	}
	top := 0
	for hindex := bottom + 1; hindex < len(e); hindex++ {
		qnew, small := fastTwoSum(h[hindex], q)
		if small != 0 {
			h[top] = small
			top++
		}
		q = qnew
	}
	h[top] = q
	return top + 1
}

// estimate collapses an expansion to a single float64 by naive summation. The
// result is within one ulp of the true value for nonoverlapping expansions,
// which is enough to test against an error bound.
func estimate(e []float64) float64 {
	q := e[0]
	for _, comp := range e[1:] {
		q += comp
	}
	return q
}
