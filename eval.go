package nurbs

// evaluate returns the point at t and its derivatives up to order, in the
// coordinates of the control net, using de Boor's algorithm. Derivatives are
// computed from difference vectors of the control points, each run through
// a de Boor recursion one level shorter than the previous.
func evaluate(kv KnotVector, net ControlNet, t float64, order int) []Vec {
	p := kv.degree
	seg := kv.SegmentIndex(t)
	if net.Len() == 0 {
		fault("evaluate", "control net has no points")
	}

	pts := make([]Vec, p+1)
	for j := range pts {
		pts[j] = net.row(seg + j).Clone()
	}

	// diffs[k] holds the k'th order difference vectors, k+1 ≤ order.
	diffs := make([][]Vec, min(order, p))
	prev := pts
	for k := range diffs {
		cur := make([]Vec, p-k)
		for j := range cur {
			gap := kv.flat[seg+p+j+1] - kv.flat[seg+j+k+1]
			cur[j] = prev[j+1].Sub(prev[j]).Div(gap)
		}
		diffs[k] = cur
		prev = cur
	}

	out := make([]Vec, order+1)
	deBoor(kv, p, seg+p, t, pts)
	out[0] = pts[p]
	scale := 1.0
	for k := 1; k <= order; k++ {
		if k > p {
			out[k] = make(Vec, len(pts[0]))
			continue
		}
		q := p - k
		deBoor(kv, q, seg+p, t, diffs[k-1])
		scale *= float64(p - k + 1)
		out[k] = diffs[k-1][q].Mul(scale)
	}
	return out
}

// deBoor runs the triangular de Boor recursion of the given depth over buf in
// place, leaving the result in buf[levels]. span is the index of the last
// knot at or before t.
func deBoor(kv KnotVector, levels, span int, t float64, buf []Vec) {
	for j := 1; j <= levels; j++ {
		for k, i := levels, span; k >= j; k, i = k-1, i-1 {
			kf := kv.flat[i+levels-j+1]
			kb := kv.flat[i]
			t1 := (kf - t) / (kf - kb)
			blendInto(buf[k], 1-t1, t1, buf[k-1])
		}
	}
}

// blossom evaluates the blossom of the given segment's polynomial at params.
// It is de Boor's algorithm with a different parameter at every level.
func blossom(kv KnotVector, net ControlNet, seg int, params []float64) Vec {
	p := kv.degree
	if len(params) != p {
		fault("blossom", "got %d parameters for degree %d", len(params), p)
	}
	if seg < 0 || seg >= kv.NumSegments() {
		fault("blossom", "segment %d out of range [0, %d)", seg, kv.NumSegments())
	}
	buf := make([]Vec, p+1)
	for j := range buf {
		buf[j] = net.row(seg + j).Clone()
	}
	span := seg + p
	for j := 1; j <= p; j++ {
		t := params[j-1]
		for k, i := p, span; k >= j; k, i = k-1, i-1 {
			kf := kv.flat[i+p-j+1]
			kb := kv.flat[i]
			t1 := (kf - t) / (kf - kb)
			blendInto(buf[k], 1-t1, t1, buf[k-1])
		}
	}
	return buf[p]
}
