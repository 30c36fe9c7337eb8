package nurbs

import (
	"fmt"
	"iter"
)

// BezierSegment is a Bézier curve of arbitrary degree, as produced by
// decomposing a B-spline. It is parametrized over [0, 1]. T0 and T1 record
// the parameter range of the B-spline that the segment was cut from.
//
// If Weights is non-nil, the segment is rational.
type BezierSegment struct {
	Points  []Vec
	Weights []float64
	T0, T1  float64
}

func (b BezierSegment) String() string {
	return fmt.Sprintf("BezierSegment{degree: %d, [%g, %g]}", b.Degree(), b.T0, b.T1)
}

func (b BezierSegment) Degree() int { return len(b.Points) - 1 }

func (b BezierSegment) Rational() bool { return b.Weights != nil }

func (b BezierSegment) Domain() (start, end float64) { return 0, 1 }

func (b BezierSegment) Start() Vec { return b.Points[0].Clone() }

func (b BezierSegment) End() Vec { return b.Points[len(b.Points)-1].Clone() }

// Param maps the local parameter u ∈ [0, 1] to the parameter of the
// B-spline the segment was cut from.
func (b BezierSegment) Param(u float64) float64 {
	return b.T0 + u*(b.T1-b.T0)
}

// Eval evaluates the segment at u using de Casteljau's algorithm.
func (b BezierSegment) Eval(u float64) Vec {
	h := deCasteljau(b.homogeneous(), u)
	if b.Rational() {
		return dehomogenize(h)
	}
	return h
}

// Subdivide splits the segment at u = 0.5 into two segments of the same
// degree.
func (b BezierSegment) Subdivide() (BezierSegment, BezierSegment) {
	left, right := subdivide(b.homogeneous(), 0.5)
	mid := b.Param(0.5)
	return b.fromHomogeneous(left, b.T0, mid), b.fromHomogeneous(right, mid, b.T1)
}

// Raise returns a segment of one degree higher that exactly represents b.
func (b BezierSegment) Raise() BezierSegment {
	h := b.homogeneous()
	n := len(h) - 1
	out := make([]Vec, n+2)
	out[0] = h[0].Clone()
	out[n+1] = h[n].Clone()
	for i := 1; i <= n; i++ {
		a := float64(i) / float64(n+1)
		out[i] = combine(a, h[i-1], 1-a, h[i])
	}
	return b.fromHomogeneous(out, b.T0, b.T1)
}

// Differentiate returns the hodograph of a non-rational segment: the Bézier
// curve of one degree lower whose value at u is the derivative of b at u.
func (b BezierSegment) Differentiate() BezierSegment {
	if b.Rational() {
		panic("cannot differentiate a rational Bézier segment")
	}
	n := b.Degree()
	out := make([]Vec, n)
	for i := range out {
		out[i] = b.Points[i+1].Sub(b.Points[i]).Mul(float64(n))
	}
	return BezierSegment{Points: out, T0: b.T0, T1: b.T1}
}

func (b BezierSegment) homogeneous() []Vec {
	if !b.Rational() {
		return b.Points
	}
	out := make([]Vec, len(b.Points))
	for i, p := range b.Points {
		out[i] = homogenize(p, b.Weights[i])
	}
	return out
}

func (b BezierSegment) fromHomogeneous(h []Vec, t0, t1 float64) BezierSegment {
	return bezierFromRows(h, b.Rational(), t0, t1)
}

func bezierFromRows(h []Vec, rational bool, t0, t1 float64) BezierSegment {
	seg := BezierSegment{T0: t0, T1: t1}
	if !rational {
		seg.Points = cloneVecs(h)
		return seg
	}
	seg.Points = make([]Vec, len(h))
	seg.Weights = make([]float64, len(h))
	for i, r := range h {
		seg.Points[i] = dehomogenize(r)
		seg.Weights[i] = r[len(r)-1]
	}
	return seg
}

func deCasteljau(pts []Vec, u float64) Vec {
	buf := cloneVecs(pts)
	for n := len(buf) - 1; n > 0; n-- {
		for i := range n {
			blendInto(buf[i], 1-u, u, buf[i+1])
		}
	}
	return buf[0]
}

// subdivide splits the control polygon of a Bézier curve at u.
func subdivide(pts []Vec, u float64) ([]Vec, []Vec) {
	n := len(pts)
	buf := cloneVecs(pts)
	left := make([]Vec, n)
	right := make([]Vec, n)
	for k := range n {
		left[k] = buf[0].Clone()
		right[n-1-k] = buf[n-1-k].Clone()
		for i := range n - 1 - k {
			blendInto(buf[i], 1-u, u, buf[i+1])
		}
	}
	return left, right
}

// Bezier decomposes the curve into Bézier segments, one per non-empty knot
// span of the domain, in parameter order. Every knot in the domain is
// inserted until its multiplicity equals the degree, after which the control
// points of each span form a Bézier control polygon.
//
// Periodic curves are first unrolled into non-periodic ones.
func (c Curve) Bezier() []BezierSegment {
	kv, polys := bezierRefine(c.knots, [][]Vec{c.net.unrolled(c.knots.degree)})
	segs := make([]BezierSegment, 0, kv.ValidSegments().Len())
	for w := range bezierWindows(kv) {
		segs = append(segs, bezierFromRows(polys[0][w.first:w.first+kv.degree+1], c.net.rational, w.t0, w.t1))
	}
	log().Debug("decomposed curve", "segments", len(segs), "degree", kv.degree)
	return segs
}

// bezierRefine turns kv into an explicit, non-periodic knot vector whose
// domain knots all have multiplicity of at least the degree, applying the
// same insertions to every polygon in polys. For periodic kv, polys must be
// unrolled already.
func bezierRefine(kv KnotVector, polys [][]Vec) (KnotVector, [][]Vec) {
	const op = "Bezier"
	kv = kv.Beautify().MakeExplicit()
	p := kv.degree
	if kv.periodic {
		kv = mustKnotVector(op, p, kv.values, kv.mults, kv.nControl+p, false)
	}
	start, end := kv.Domain()
	for _, v := range kv.Knots() {
		if v < start || v > end {
			continue
		}
		for kv.MultiplicityOf(v) < p {
			kv, polys = insertOpen(kv, polys, v)
		}
	}
	return kv, polys
}

type bezierWindow struct {
	first  int
	t0, t1 float64
}

// bezierWindows yields, for each non-empty span of a fully refined knot
// vector, the index of the span's first control point and its parameter
// range.
func bezierWindows(kv KnotVector) iter.Seq[bezierWindow] {
	return func(yield func(bezierWindow) bool) {
		vs := kv.ValidSegments()
		for i := range vs.Len() {
			if !yield(bezierWindow{vs.Number(i), vs.Head(i), vs.Tail(i)}) {
				return
			}
		}
	}
}
