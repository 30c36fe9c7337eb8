package nurbs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitOpen(t *testing.T) {
	splits := map[string][]float64{
		"uniform cubic":  {0.4, 1, 1.5, 2.7},
		"clamped cubic":  {0.5, 1.2},
		"multiple knots": {0.5, 1, 3, 3.5},
		"circle":         {0.25, 0.3, 0.5},
	}
	for _, tc := range testCurves {
		c := tc.curve(t)
		for _, u := range splits[tc.name] {
			t.Run(fmt.Sprintf("%s/%g", tc.name, u), func(t *testing.T) {
				pieces := c.Split(u)
				require.Len(t, pieces, 2)
				front, rear := pieces[0], pieces[1]
				start, end := c.Domain()
				p := c.Degree()

				fs, fe := front.Domain()
				assert.Equal(t, 0.0, fs)
				assert.InDelta(t, u-start, fe, epsilon)
				rs, re := rear.Domain()
				assert.Equal(t, 0.0, rs)
				assert.InDelta(t, end-u, re, epsilon)

				for i := range 21 {
					v := (u - start) * float64(i) / 20
					assertNear(t, front.Eval(v), c.Eval(v+start), epsilon)
					w := (end - u) * float64(i) / 20
					assertNear(t, rear.Eval(w), c.Eval(w+u), epsilon)
				}

				// Both pieces end exactly at the control point they share.
				diff(t, front.End(), rear.Start())
				diff(t, front.Net().Point(front.Net().Len()-1), rear.Net().Point(0))
				assert.Equal(t, p+1, front.Knots().Multiplicity(front.Knots().NumKnots()-1))
				assert.Equal(t, p+1, rear.Knots().Multiplicity(0))
				assert.Equal(t, c.Rational(), front.Rational())
				assert.Equal(t, c.Rational(), rear.Rational())
			})
		}
	}
}

func TestSplitControlCount(t *testing.T) {
	c := clampedCubic(t)
	pieces := c.Split(1.2)
	// Three insertions, and the point at the cut is shared.
	assert.Equal(t, c.Net().Len()+3+1, pieces[0].Net().Len()+pieces[1].Net().Len())

	// A knot of full multiplicity is not shared.
	c = multiCubic(t).InsertKnot(3)
	pieces = c.Split(3)
	assert.Equal(t, c.Net().Len(), pieces[0].Net().Len()+pieces[1].Net().Len())
	assertNear(t, pieces[0].End(), pieces[1].Start(), epsilon)
}

func TestSplitPeriodic(t *testing.T) {
	splits := map[string][]float64{
		"periodic quadratic": {0, 0.5, 2, 3.7},
		"periodic cubic":     {0, 1.3, 2, 3.9},
		"skewed periodic":    {0, 1, 2.2, 5},
		"small periodic":     {0, 2.5, 3.75},
	}
	for _, tc := range testCurves {
		c := tc.curve(t)
		for _, u := range splits[tc.name] {
			t.Run(fmt.Sprintf("%s/%g", tc.name, u), func(t *testing.T) {
				pieces := c.Split(u)
				require.Len(t, pieces, 1)
				open := pieces[0]
				assert.False(t, open.Periodic())
				assert.Equal(t, c.Net().Len()+c.Degree()-c.Knots().MultiplicityOf(u)+1, open.Net().Len())

				start, end := open.Domain()
				assert.Equal(t, 0.0, start)
				assert.InDelta(t, c.Knots().Period(), end, epsilon)

				for _, v := range params(open.Knots(), 40) {
					assertNear(t, open.Eval(v), c.Eval(c.Knots().Wrap(v+u)), epsilon)
				}
				assertNear(t, open.Start(), c.Eval(u), epsilon)
				assertNear(t, open.End(), c.Eval(u), epsilon)
			})
		}
	}
}

func TestSplitPeriodicWrapsParameter(t *testing.T) {
	c := periodicCubic(t)
	a := c.Split(1.3)[0]
	b := c.Split(5.3)[0]
	for _, v := range params(a.Knots(), 20) {
		assertNear(t, a.Eval(v), b.Eval(v), epsilon)
	}
}

func TestSplitAtDomainEnds(t *testing.T) {
	c := uniformCubic(t)
	start, end := c.Domain()
	for _, u := range []float64{start, end, start - 1, end + 1} {
		assertFault(t, func() { c.Split(u) })
	}
}
