package nurbs

// ElevateDegree returns the same curve represented with a degree one higher.
// The result has one more control point per non-empty segment.
//
// Every new control point is computed exactly from blossoms of the original
// curve: the new point with knot window u₁…uₚ₊₁ is the average of the p+1
// original blossoms that each omit one of the uᵢ.
func (c Curve) ElevateDegree() Curve {
	const op = "ElevateDegree"
	kv := c.knots
	p := kv.degree
	tol := CurrentTolerance().Parameter
	vs := kv.ValidSegments()
	nNew := kv.nControl + vs.Len()
	start, end := kv.Domain()

	var values []float64
	var mults []int
	if kv.kind == Uniform {
		// Every knot bounding a domain segment appears twice.
		flat := make([]float64, 0, len(kv.flat)+kv.NumSegments()+1)
		for i, v := range kv.flat {
			flat = append(flat, v)
			if p <= i && i <= p+kv.NumSegments() {
				flat = append(flat, v)
			}
		}
		values, mults = tabulate(flat, tol)
	} else {
		b := kv.Beautify()
		values, mults = b.Knots(), b.Multiplicities()
		for i, v := range values {
			if !(start > v) && !(v > end) {
				mults[i]++
			}
		}
	}

	var nkv KnotVector
	if kv.periodic {
		flat := closedKnots(op, values, mults, start, end, p+1, nNew, tol)
		values, mults = tabulate(flat, tol)
		nkv = mustKnotVector(op, p+1, values, mults, nNew, true)
	} else {
		values, mults = beautifyTable(values, mults, tol)
		nkv = mustKnotVector(op, p+1, values, mults, nNew, false)
	}

	rows := make([]Vec, nNew)
	window := make([]float64, p+1)
	params := make([]float64, 0, p)
	for i := range rows {
		for k := range window {
			window[k] = nkv.flat[i+1+k]
		}
		target := vs.find(window, tol)
		if first, last := window[0], window[p]; last-first < tol {
			// The window sits on a knot of full multiplicity. The point
			// before the break ends the left segment, the one after it
			// starts the right segment.
			side := -1
			switch {
			case i+p+2 < len(nkv.flat) && nkv.flat[i+p+2]-last < tol:
				side = vs.endingAt(last, tol)
			case first-nkv.flat[i] < tol:
				side = vs.startingAt(first, tol)
			}
			if side != -1 {
				target = side
			}
		}
		seg := vs.Number(target)
		sum := make(Vec, len(c.net.rows[0]))
		for j := range window {
			params = append(params[:0], window[:j]...)
			params = append(params, window[j+1:]...)
			blendInto(sum, 1, 1, blossom(kv, c.net, seg, params))
		}
		rows[i] = sum.Div(float64(p + 1))
	}

	log().Debug("elevated degree", "degree", p+1, "controls", nNew, "segments", vs.Len())
	return newCurve(op, nkv, rows, c.net.rational)
}
