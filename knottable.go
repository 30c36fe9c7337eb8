package nurbs

import (
	"math"
	"slices"
	"sort"

	"github.com/samber/lo"
)

// This file implements the algebra on knot tables: parallel slices of
// distinct knot values and their multiplicities.

// expand returns the knot table as a flat, non-decreasing sequence with every
// value repeated according to its multiplicity.
func expand(values []float64, mults []int) []float64 {
	out := make([]float64, 0, lo.Sum(mults))
	for i, v := range values {
		out = append(out, lo.Times(mults[i], func(int) float64 { return v })...)
	}
	return out
}

// tabulate is the inverse of expand. Consecutive values closer than tol are
// collapsed into a single entry carrying the first value of the run.
func tabulate(flat []float64, tol float64) ([]float64, []int) {
	return beautifyTable(flat, lo.Times(len(flat), func(int) int { return 1 }), tol)
}

// beautifyTable merges adjacent entries whose values differ by less than tol,
// summing their multiplicities, and drops entries of multiplicity zero.
func beautifyTable(values []float64, mults []int, tol float64) ([]float64, []int) {
	outV := make([]float64, 0, len(values))
	outM := make([]int, 0, len(mults))
	for i, v := range values {
		if mults[i] == 0 {
			continue
		}
		if n := len(outV); n > 0 && v-outV[n-1] < tol {
			outM[n-1] += mults[i]
			continue
		}
		outV = append(outV, v)
		outM = append(outM, mults[i])
	}
	return outV, outM
}

// mergeKnot returns a copy of the knot table prepared for receiving t. If t
// coincides with an existing value, that entry is the slot; otherwise a new
// entry of multiplicity zero is inserted in order. It also returns the
// multiplicity of the slot before the insertion and the slot's exact value,
// which is t unless t was snapped to an existing knot. The caller increments
// the slot's multiplicity.
func mergeKnot(op string, values []float64, mults []int, t, tol float64) (nv []float64, nm []int, slot, prior int, snapped float64) {
	for i, v := range values {
		if math.Abs(v-t) < tol {
			return slices.Clone(values), slices.Clone(mults), i, mults[i], v
		}
	}
	i := sort.SearchFloat64s(values, t)
	if i == 0 || i == len(values) {
		fault(op, "no knot slot for parameter %g in [%g, %g]", t, values[0], values[len(values)-1])
	}
	nv = slices.Insert(slices.Clone(values), i, t)
	nm = slices.Insert(slices.Clone(mults), i, 0)
	return nv, nm, i, 0, t
}

// multiplicityOf returns the multiplicity of the knot value coinciding with t,
// or 0 if t is not a knot.
func multiplicityOf(values []float64, mults []int, t, tol float64) int {
	for i, v := range values {
		if math.Abs(v-t) < tol {
			return mults[i]
		}
	}
	return 0
}

// closedKnots builds the flat knot sequence of a periodic vector of the given
// degree and control point count whose domain is [start, end]. One period of
// knots is taken from the table entries in [start, end) and extended
// periodically in both directions, aligned so that the last copy of start
// lands on index degree.
func closedKnots(op string, values []float64, mults []int, start, end float64, degree, nControl int, tol float64) []float64 {
	var period []float64
	for i, v := range values {
		if v > start-tol && v < end-tol {
			period = append(period, lo.Times(mults[i], func(int) float64 { return v })...)
		}
	}
	if len(period) != nControl {
		fault(op, "one period holds %d knots, want %d", len(period), nControl)
	}
	m := 0
	for _, v := range period {
		if v-period[0] >= tol {
			break
		}
		m++
	}
	if m > degree {
		fault(op, "domain start %g has multiplicity %d above degree %d", start, m, degree)
	}
	span := end - start
	off := degree - m + 1
	flat := make([]float64, nControl+2*degree+1)
	for i := range flat {
		k := i - off
		q := floorDiv(k, nControl)
		flat[i] = period[k-q*nControl] + float64(q)*span
	}
	return flat
}

// renormalizeSeam rebuilds the simple knots of a periodic vector after the
// knot at index changed near the seam. The windows [1, 2·degree] at the head
// and [n−2·degree, n−1] at the tail must stay periodic copies of each other;
// whichever window the change touched becomes the reference, and the knot
// gaps are propagated from it to the other window. When the windows overlap,
// every knot outside the domain is rebuilt from the domain knots instead.
func renormalizeSeam(simple []float64, degree, index int) []float64 {
	s := slices.Clone(simple)
	n := len(s)
	headS, headE := 1, 2*degree
	tailS, tailE := n-2*degree, n-1
	period := n - 2*degree - 1

	refer := 0
	if headS <= index && index <= headE {
		refer |= 1
	}
	if tailS <= index && index <= tailE {
		refer |= 2
	}
	if tailS <= headE {
		refer = 3
	}

	switch refer {
	case 1:
		j, k := 2, tailS+1
		for range 2*degree - 1 {
			s[k] = s[k-1] + (s[j] - s[j-1])
			j++
			k++
		}
		s[0] = s[1] - (s[period+1] - s[period])
	case 2:
		j, k := 2*degree-1, n-2
		for range 2*degree - 1 {
			s[j] = s[j+1] - (s[k+1] - s[k])
			j--
			k--
		}
		s[0] = s[1] - (s[k+1] - s[k])
	case 3:
		// s[degree:degree+period] holds one period of knots.
		span := s[degree+period] - s[degree]
		for i := range s {
			q := floorDiv(i-degree, period)
			s[i] = s[i-q*period] + float64(q)*span
		}
	}
	return s
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
