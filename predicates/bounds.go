package predicates

import "sync"

// Process-wide constants for the adaptive predicates. They are derived from
// machine epsilon at first use and never written again, so concurrent readers
// are safe once initOnce has fired.
var (
	initOnce sync.Once

	// epsilon is the largest power of two such that 1.0 + epsilon == 1.0
	// under round-to-nearest-even. It bounds relative roundoff error.
	epsilon float64

	// splitter is 2^ceil(p/2) + 1, used to split a double into two
	// half-length significands for exact multiplication.
	splitter float64

	resulterrbound float64
	ccwerrboundA   float64
	ccwerrboundB   float64
	ccwerrboundC   float64
	o3derrboundA   float64
	o3derrboundB   float64
	o3derrboundC   float64
	iccerrboundA   float64
	iccerrboundB   float64
	iccerrboundC   float64
	isperrboundA   float64
	isperrboundB   float64
	isperrboundC   float64
)

// exactInit finds epsilon and splitter by repeated halving and doubling, then
// derives the error bounds the adaptive tests compare against. Probing at
// runtime rather than hardcoding constants means a platform that computes with
// different precision shows up in Check instead of in wrong signs.
func exactInit() {
	everyOther := true
	half := 0.5
	epsilon = 1.0
	splitter = 1.0
	check := 1.0
	for {
		lastcheck := check
		epsilon *= half
		if everyOther {
			splitter *= 2.0
		}
		everyOther = !everyOther
		check = 1.0 + epsilon
		if check == 1.0 || check == lastcheck {
			break
		}
	}
	splitter += 1.0

	resulterrbound = (3.0 + 8.0*epsilon) * epsilon
	ccwerrboundA = (3.0 + 16.0*epsilon) * epsilon
	ccwerrboundB = (2.0 + 12.0*epsilon) * epsilon
	ccwerrboundC = (9.0 + 64.0*epsilon) * epsilon * epsilon
	o3derrboundA = (7.0 + 56.0*epsilon) * epsilon
	o3derrboundB = (3.0 + 28.0*epsilon) * epsilon
	o3derrboundC = (26.0 + 288.0*epsilon) * epsilon * epsilon
	iccerrboundA = (10.0 + 96.0*epsilon) * epsilon
	iccerrboundB = (4.0 + 48.0*epsilon) * epsilon
	iccerrboundC = (44.0 + 576.0*epsilon) * epsilon * epsilon
	isperrboundA = (16.0 + 224.0*epsilon) * epsilon
	isperrboundB = (5.0 + 72.0*epsilon) * epsilon
	isperrboundC = (71.0 + 1408.0*epsilon) * epsilon * epsilon
}

func ensureInit() {
	initOnce.Do(exactInit)
}

// Check exercises the predicates on inputs with known exact answers and
// reports whether the platform's arithmetic behaves as the adaptive staircase
// requires (IEEE-754 doubles, round-to-nearest-even). Call it once at startup
// if you are running somewhere exotic; on conforming platforms it always
// returns true.
func Check() bool {
	// An exactly collinear triple must come out exactly zero.
	a := [2]float64{0.5, 0.5}
	b := [2]float64{12, 12}
	c := [2]float64{24, 24}
	if Orient2D(a, b, c) != 0 {
		return false
	}
	// A point well inside a circumcircle must come out positive.
	pa := [2]float64{0, 0}
	pb := [2]float64{1, 0}
	pc := [2]float64{0, 1}
	pd := [2]float64{0.25, 0.25}
	return InCircle(pa, pb, pc, pd) > 0
}
