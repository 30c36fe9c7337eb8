package nurbs

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestVec(t *testing.T) {
	a := V(1, 2, 3)
	b := V(4, -1, 0.5)

	diff(t, V(5, 1, 3.5), a.Add(b))
	diff(t, V(-3, 3, 2.5), a.Sub(b))
	diff(t, V(2, 4, 6), a.Mul(2))
	diff(t, V(0.5, 1, 1.5), a.Div(2))
	diff(t, V(-1, -2, -3), a.Negate())
	diff(t, V(2.5, 0.5, 1.75), a.Midpoint(b))
	diff(t, V(1.75, 1.25, 2.375), a.Lerp(b, 0.25))
	assert.Equal(t, 3.5, a.Dot(b))
	assert.Equal(t, 14.0, a.Hypot2())
	assert.InDelta(t, math.Sqrt(14), a.Hypot(), 1e-15)
	assert.InDelta(t, 1, b.Normalize().Hypot(), 1e-15)
	assert.InDelta(t, 5, V(0, 0).Distance(V(3, 4)), 1e-15)
	assert.Equal(t, 3, a.Dim())
	assert.Equal(t, "⟨1, 2, 3⟩", a.String())

	// Operations leave their operands alone.
	diff(t, V(1, 2, 3), a)
	diff(t, V(4, -1, 0.5), b)
}

func TestVecClone(t *testing.T) {
	coords := []float64{1, 2}
	v := V(coords...)
	coords[0] = 9
	diff(t, V(1, 2), v)

	c := v.Clone()
	c[1] = 7
	diff(t, V(1, 2), v)

	assert.Nil(t, Vec(nil).Clone())
}

func TestVecAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, V(1, 0).Angle(V(0, 3)), 1e-12)
	assert.InDelta(t, math.Pi, V(1, 1).Angle(V(-2, -2)), 1e-6)
	assert.InDelta(t, 0, V(1, 1).Angle(V(2, 2)), 1e-6)

	assert.True(t, V(1, 2, 3).Parallel(V(2, 4, 6)))
	assert.False(t, V(1, 2, 3).Parallel(V(-1, -2, -3)))
	assert.False(t, V(1, 0).Parallel(V(1, 0.1)))
	assert.False(t, V(0, 0).Parallel(V(1, 0)))

	assert.True(t, V(1, 1).Coincides(V(1, 1+1e-8)))
	assert.False(t, V(1, 1).Coincides(V(1, 1.1)))
}

func TestVecNaNInf(t *testing.T) {
	assert.True(t, V(1, math.NaN()).IsNaN())
	assert.False(t, V(1, 2).IsNaN())
	assert.True(t, V(math.Inf(-1), 0).IsInf())
	assert.False(t, V(1, 2).IsInf())
	assert.True(t, V(0, 0).Normalize().IsNaN())
}

func TestHomogeneous(t *testing.T) {
	h := homogenize(V(1, -2), 0.5)
	diff(t, V(0.5, -1, 0.5), h)
	diff(t, V(1, -2), dehomogenize(h))
}

func TestCombine(t *testing.T) {
	x, y := V(1, 2), V(3, 5)
	diff(t, V(2.5, 4.25), combine(0.25, x, 0.75, y))

	dst := V(1, 1)
	blendInto(dst, 2, -1, y)
	diff(t, V(-1, -3), dst)
	diff(t, V(3, 5), y)
}

func TestBox(t *testing.T) {
	b := BoxOf(V(1, 2), V(-1, 5), V(0, 0))
	diff(t, Box{Min: V(-1, 0), Max: V(1, 5)}, b)
	assert.Equal(t, 2, b.Dim())
	diff(t, V(2, 5), b.Size())
	diff(t, V(0, 2.5), b.Center())

	assert.True(t, b.Contains(V(0, 1)))
	assert.True(t, b.Contains(V(1, 5)))
	assert.False(t, b.Contains(V(1.5, 1)))

	u := b.Union(BoxOf(V(3, -1)))
	diff(t, Box{Min: V(-1, -1), Max: V(3, 5)}, u)
	diff(t, Box{Min: V(-1, 0), Max: V(1, 5)}, b)

	diff(t, Box{Min: V(-1.5, -0.5), Max: V(1.5, 5.5)}, b.Inflate(0.5), cmpopts.EquateApprox(0, 1e-15))
	diff(t, Box{}, BoxOf())
}
