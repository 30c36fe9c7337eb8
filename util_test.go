package nurbs

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

const epsilon = 1e-9

func assertNear(t *testing.T, got, want Vec, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon || math.IsNaN(d) {
		t.Fatalf("got %s, want %s (distance %g)", got, want, d)
	}
}

// assertFault calls f and fails the test unless it panics with an
// *InternalError.
func assertFault(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if _, ok := r.(*InternalError); !ok {
			t.Errorf("got panic value %v, want *InternalError", r)
		}
	}()
	f()
}

// params returns n+1 evenly spaced parameters covering the domain of kv.
func params(kv KnotVector, n int) []float64 {
	start, end := kv.Domain()
	out := make([]float64, n+1)
	for i := range out {
		out[i] = start + (end-start)*float64(i)/float64(n)
	}
	out[n] = end
	return out
}

// assertSameCurve checks that got evaluates to the same points as want on
// want's domain, shifted by offset.
func assertSameCurve(t *testing.T, want, got Curve, offset float64) {
	t.Helper()
	for _, u := range params(want.Knots(), 50) {
		assertNear(t, got.Eval(got.Knots().Clamp(u+offset)), want.Eval(u), epsilon)
	}
}

func mustCurve(t testing.TB, kv KnotVector, err error, pts ...Vec) Curve {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	net, err := NewControlNet(pts)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCurve(kv, net)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

var sixPoints = []Vec{V(0, 0), V(1, 2), V(3, 3), V(4, 1), V(6, 0), V(7, 2)}

// uniformCubic is a non-periodic cubic with uniform knots and six control
// points in the plane.
func uniformCubic(t testing.TB) Curve {
	kv, err := NewUniformKnotVector(3, 6, false)
	return mustCurve(t, kv, err, sixPoints...)
}

func clampedCubic(t testing.TB) Curve {
	kv, err := NewClampedKnotVector(3, []float64{0, 0.5, 2, 3})
	return mustCurve(t, kv, err, sixPoints...)
}

// multiCubic has a double interior knot and a knot of full multiplicity.
func multiCubic(t testing.TB) Curve {
	kv, err := NewKnotVector(3, []float64{0, 1, 2, 3, 4}, []int{4, 2, 1, 3, 4}, 10, false)
	return mustCurve(t, kv, err,
		V(0, 0, 0), V(1, 2, 1), V(3, 3, 0), V(4, 1, -1), V(6, 0, 2),
		V(7, 2, 1), V(8, 4, 0), V(9, 3, 3), V(10, 1, 1), V(11, 0, 0))
}

func periodicQuadratic(t testing.TB) Curve {
	kv, err := NewUniformKnotVector(2, 4, true)
	return mustCurve(t, kv, err, V(0, 0), V(2, 0), V(2, 2), V(0, 2))
}

func periodicCubic(t testing.TB) Curve {
	kv, err := NewUniformKnotVector(3, 4, true)
	return mustCurve(t, kv, err, V(0, 0), V(3, -1), V(4, 3), V(-1, 2))
}

// skewedPeriodic is a periodic quadratic with non-uniform knots.
func skewedPeriodic(t testing.TB) Curve {
	kv, err := NewKnotVector(2, []float64{-3, -1.5, 0, 1, 3, 4.5, 6, 7, 9}, []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, 4, true)
	return mustCurve(t, kv, err, V(0, 0), V(4, 1), V(3, 5), V(-1, 3))
}

// unitCircle is the rational quadratic representation of the unit circle
// with nine control points.
func unitCircle(t testing.TB) Curve {
	kv, err := NewKnotVector(2, []float64{0, 0.25, 0.5, 0.75, 1}, []int{3, 2, 2, 2, 3}, 9, false)
	if err != nil {
		t.Fatal(err)
	}
	w := math.Sqrt2 / 2
	net, err := NewRationalControlNet(
		[]Vec{V(1, 0), V(1, 1), V(0, 1), V(-1, 1), V(-1, 0), V(-1, -1), V(0, -1), V(1, -1), V(1, 0)},
		[]float64{1, w, 1, w, 1, w, 1, w, 1})
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCurve(kv, net)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// smallPeriodic is a periodic quartic with only five control points, so the
// knot windows on both sides of its seam overlap.
func smallPeriodic(t testing.TB) Curve {
	kv, err := NewUniformKnotVector(4, 5, true)
	return mustCurve(t, kv, err, V(0, 0), V(3, -1), V(5, 2), V(2, 4), V(-1, 2))
}

// brokenLinear jumps at t = 1, where its knot has full multiplicity.
func brokenLinear(t testing.TB) Curve {
	kv, err := NewKnotVector(1, []float64{0, 1, 2, 3}, []int{2, 2, 1, 2}, 5, false)
	return mustCurve(t, kv, err, V(0, 0), V(1, 0), V(5, 5), V(6, 5), V(7, 0))
}

// brokenQuadratic jumps at t = 1, where its knot has full multiplicity.
func brokenQuadratic(t testing.TB) Curve {
	kv, err := NewKnotVector(2, []float64{0, 1, 2, 3}, []int{3, 3, 1, 3}, 7, false)
	return mustCurve(t, kv, err, V(0, 0), V(1, 1), V(2, 0), V(3, 3), V(4, 4), V(5, 2), V(6, 3))
}

type namedCurve struct {
	name  string
	curve func(testing.TB) Curve
}

var testCurves = []namedCurve{
	{"uniform cubic", uniformCubic},
	{"clamped cubic", clampedCubic},
	{"multiple knots", multiCubic},
	{"periodic quadratic", periodicQuadratic},
	{"periodic cubic", periodicCubic},
	{"skewed periodic", skewedPeriodic},
	{"circle", unitCircle},
	{"small periodic", smallPeriodic},
}

// brokenCurves are discontinuous at an interior knot. They are kept out of
// testCurves because tests comparing pieces at their shared ends do not hold
// across the jump.
var brokenCurves = []namedCurve{
	{"broken linear", brokenLinear},
	{"broken quadratic", brokenQuadratic},
}
