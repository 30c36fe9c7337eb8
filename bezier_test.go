package nurbs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveBezier(t *testing.T) {
	for _, tc := range testCurves {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.curve(t)
			segs := c.Bezier()
			require.Len(t, segs, c.Knots().ValidSegments().Len())

			start, end := c.Domain()
			assert.InDelta(t, start, segs[0].T0, epsilon)
			assert.InDelta(t, end, segs[len(segs)-1].T1, epsilon)
			for i, seg := range segs {
				assert.Equal(t, c.Degree(), seg.Degree())
				assert.Equal(t, c.Rational(), seg.Rational())
				if i > 0 {
					assert.Equal(t, segs[i-1].T1, seg.T0)
				}
				for j := range 11 {
					u := float64(j) / 10
					assertNear(t, seg.Eval(u), c.Eval(seg.Param(u)), epsilon)
				}
			}
		})
	}
}

func TestCurveBezierPoints(t *testing.T) {
	kv, err := NewClampedKnotVector(2, []float64{0, 1, 2})
	c := mustCurve(t, kv, err, V(0, 0), V(1, 2), V(3, 2), V(4, 0))
	segs := c.Bezier()
	require.Len(t, segs, 2)
	diff(t, []Vec{V(0, 0), V(1, 2), V(2, 2)}, segs[0].Points)
	diff(t, []Vec{V(2, 2), V(3, 2), V(4, 0)}, segs[1].Points)
	assert.Nil(t, segs[0].Weights)
	assert.Equal(t, "BezierSegment{degree: 2, [1, 2]}", segs[1].String())
}

func TestCurveBezierCircle(t *testing.T) {
	segs := unitCircle(t).Bezier()
	require.Len(t, segs, 4)
	w := segs[0].Weights
	require.Len(t, w, 3)
	assert.InDelta(t, 1, w[0], epsilon)
	assert.InDelta(t, 0.7071067811865476, w[1], epsilon)
	assert.InDelta(t, 1, w[2], epsilon)
	assertNear(t, segs[1].Start(), V(0, 1), epsilon)
	assertNear(t, segs[1].End(), V(-1, 0), epsilon)
}

func TestBezierSegmentRaise(t *testing.T) {
	for _, seg := range append(uniformCubic(t).Bezier(), unitCircle(t).Bezier()...) {
		r := seg.Raise()
		assert.Equal(t, seg.Degree()+1, r.Degree())
		for i := range 11 {
			u := float64(i) / 10
			assertNear(t, r.Eval(u), seg.Eval(u), epsilon)
		}
	}
}

func TestBezierSegmentSubdivide(t *testing.T) {
	for _, seg := range append(clampedCubic(t).Bezier(), unitCircle(t).Bezier()...) {
		a, b := seg.Subdivide()
		assert.Equal(t, seg.T0, a.T0)
		assert.Equal(t, a.T1, b.T0)
		assert.Equal(t, seg.T1, b.T1)
		for i := range 11 {
			u := float64(i) / 10
			assertNear(t, a.Eval(u), seg.Eval(u/2), epsilon)
			assertNear(t, b.Eval(u), seg.Eval(0.5+u/2), epsilon)
		}
	}
}

func TestBezierSegmentDifferentiate(t *testing.T) {
	c := clampedCubic(t)
	for _, seg := range c.Bezier() {
		d := seg.Differentiate()
		assert.Equal(t, seg.Degree()-1, d.Degree())
		scale := seg.T1 - seg.T0
		for i := range 11 {
			u := float64(i) / 10
			want := c.Derivs(seg.Param(u), 1)[1].Mul(scale)
			assertNear(t, d.Eval(u), want, 1e-8)
		}
	}

	seg := unitCircle(t).Bezier()[0]
	assert.Panics(t, func() { seg.Differentiate() })
}

func TestBezierDoesNotModifyCurve(t *testing.T) {
	c := periodicCubic(t)
	pts := c.Net().Points()
	segs := c.Bezier()
	segs[0].Points[0][0] = 1e6
	diff(t, pts, c.Net().Points())
}

func BenchmarkBezier(b *testing.B) {
	for _, degree := range []int{2, 3, 5} {
		c := wavyCurve(degree, 20)
		b.Run(fmt.Sprintf("degree=%d", degree), func(b *testing.B) {
			for range b.N {
				c.Bezier()
			}
		})
	}
}
