package nurbs

import "math"

// InsertKnot returns the same curve with the knot t inserted once, raising
// the multiplicity of t by one if it already is a knot. The result has one
// more control point. t must lie in the curve's domain.
//
// Inserting a knot does not change the shape of the curve. Only the degree
// control points around t are recomputed, as affine combinations of their
// neighbours (Boehm's algorithm).
func (c Curve) InsertKnot(t float64) Curve {
	if c.knots.periodic {
		kv, rows := insertPeriodic(c.knots, c.net, t)
		return newCurve("InsertKnot", kv, rows, c.net.rational)
	}
	kv, polys := insertOpen(c.knots, [][]Vec{c.net.rows}, t)
	return newCurve("InsertKnot", kv, polys[0], c.net.rational)
}

// insertionRatio returns the weights of control points j−1 and j in the new
// control point j after inserting t.
func insertionRatio(kv KnotVector, j int, t, tol float64) (float64, float64) {
	kf := kv.flat[j+kv.degree]
	kb := kv.flat[j]
	if kf-kb < tol {
		return 0.5, 0.5
	}
	t0 := (kf - t) / (kf - kb)
	return t0, 1 - t0
}

// insertOpen inserts t into the non-periodic knot vector kv and applies the
// same refinement to each of polys, which all have kv.NumControlPoints()
// points. Surfaces use this to refine every row of their control grid at
// once.
func insertOpen(kv KnotVector, polys [][]Vec, t float64) (KnotVector, [][]Vec) {
	const op = "InsertKnot"
	tol := CurrentTolerance().Parameter
	p := kv.degree
	seg := kv.SegmentIndex(t)
	values, mults, slot, prior, t := mergeKnot(op, kv.values, kv.mults, t, tol)
	if prior > p {
		fault(op, "knot %g already has multiplicity %d", t, prior)
	}
	mults[slot]++

	n := kv.nControl
	out := make([][]Vec, len(polys))
	for k, old := range polys {
		if len(old) != n {
			fault(op, "polygon %d has %d points, want %d", k, len(old), n)
		}
		pts := make([]Vec, n+1)
		for j := 0; j <= seg; j++ {
			pts[j] = old[j].Clone()
		}
		for j := seg + 1; j <= seg+p; j++ {
			a, b := insertionRatio(kv, j, t, tol)
			pts[j] = combine(a, old[j-1], b, old[j])
		}
		for j := seg + p + 1; j <= n; j++ {
			pts[j] = old[j-1].Clone()
		}
		out[k] = pts
	}
	return mustKnotVector(op, p, values, mults, n+1, false), out
}

// insertPeriodic inserts t into a periodic curve. Control points are indexed
// modulo their count, and the knots on both sides of the seam are
// renormalized afterwards so that they stay periodic copies of each other.
func insertPeriodic(kv KnotVector, net ControlNet, t float64) (KnotVector, []Vec) {
	const op = "InsertKnot"
	tol := CurrentTolerance().Parameter
	p := kv.degree
	seg := kv.SegmentIndex(t)
	values, mults, slot, prior, t := mergeKnot(op, kv.values, kv.mults, t, tol)
	if prior >= p {
		fault(op, "knot %g of periodic curve already has multiplicity %d", t, prior)
	}
	mults[slot]++

	simple := expand(values, mults)
	index := -1
	for i, v := range simple {
		if math.Abs(v-t) < tol {
			index = i
			break
		}
	}
	if index == -1 {
		fault(op, "inserted knot %g not found", t)
	}
	simple = renormalizeSeam(simple, p, index)
	values, mults = tabulate(simple, tol)

	n := kv.nControl
	n1 := n + 1
	rows := make([]Vec, n1)
	for j := 0; j <= seg; j++ {
		rows[j] = net.row(j).Clone()
	}
	for j := seg + 1; j <= seg+p; j++ {
		a, b := insertionRatio(kv, j, t, tol)
		rows[j%n1] = combine(a, net.row(j-1), b, net.row(j))
	}
	for j := seg + p + 1; j < n1; j++ {
		rows[j] = net.row(j - 1).Clone()
	}
	return mustKnotVector(op, p, values, mults, n1, true), rows
}
