package nurbs

import "math"

// ValidSegments lists the segments of a knot vector that have non-zero width,
// in parameter order.
type ValidSegments struct {
	heads   []float64
	tails   []float64
	numbers []int
}

// ValidSegments returns the segments of the domain that have non-zero width.
func (kv KnotVector) ValidSegments() ValidSegments {
	var vs ValidSegments
	p := kv.degree
	for s := range kv.NumSegments() {
		head, tail := kv.flat[s+p], kv.flat[s+p+1]
		if tail > head {
			vs.heads = append(vs.heads, head)
			vs.tails = append(vs.tails, tail)
			vs.numbers = append(vs.numbers, s)
		}
	}
	return vs
}

// Len returns the number of valid segments.
func (vs ValidSegments) Len() int { return len(vs.numbers) }

// Head returns the parameter at which the i'th valid segment starts.
func (vs ValidSegments) Head(i int) float64 { return vs.heads[i] }

// Tail returns the parameter at which the i'th valid segment ends.
func (vs ValidSegments) Tail(i int) float64 { return vs.tails[i] }

// Number returns the segment number of the i'th valid segment, in the
// numbering used by [KnotVector.SegmentIndex], which counts zero-width
// segments too.
func (vs ValidSegments) Number(i int) int { return vs.numbers[i] }

// find returns the index of the valid segment whose blossom reproduces the
// control point with the parameter window params. Candidates are the
// segments overlapping [params[0], params[len-1]]; among them the middle one
// is preferred, moving on to the next segment if the window coincides with
// that segment's extent within tol.
func (vs ValidSegments) find(params []float64, tol float64) int {
	first, last := params[0], params[len(params)-1]
	n := vs.Len()

	lower := -1
	for k := range n {
		if !(first > vs.tails[k]) {
			lower = k
			break
		}
	}
	upper := n
	for k := n - 1; k >= 0; k-- {
		if !(vs.heads[k] > last) {
			upper = k
			break
		}
	}

	switch {
	case lower == -1:
		return upper
	case upper == n:
		return lower
	case first < vs.heads[lower]:
		return lower
	case last > vs.tails[upper]:
		return upper
	}
	mid := (lower + upper) / 2
	if mid != n-1 {
		next := mid + 1
		if math.Abs(first-vs.heads[next]) < tol && math.Abs(last-vs.tails[next]) < tol {
			return next
		}
	}
	return mid
}

// endingAt returns the index of the valid segment whose tail is t, or -1.
func (vs ValidSegments) endingAt(t, tol float64) int {
	for k, tail := range vs.tails {
		if math.Abs(tail-t) < tol {
			return k
		}
	}
	return -1
}

// startingAt returns the index of the valid segment whose head is t, or -1.
func (vs ValidSegments) startingAt(t, tol float64) int {
	for k, head := range vs.heads {
		if math.Abs(head-t) < tol {
			return k
		}
	}
	return -1
}
