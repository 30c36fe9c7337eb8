package nurbs

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vec is a point or vector with an arbitrary number of coordinates. Control
// points of rational curves are stored in homogeneous form, with the weight
// as the last coordinate and the other coordinates premultiplied by it.
//
// Methods never modify their receiver or arguments. All vectors passed to a
// binary operation must have the same dimension.
type Vec []float64

// V returns the vector with the given coordinates.
func V(coords ...float64) Vec {
	return Vec(coords).Clone()
}

func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteString("⟨")
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteString("⟩")
	return sb.String()
}

// Dim returns the number of coordinates.
func (v Vec) Dim() int { return len(v) }

// Clone returns a copy of v that does not share storage with it.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

func (v Vec) Add(o Vec) Vec {
	return floats.AddTo(make(Vec, len(v)), v, o)
}

func (v Vec) Sub(o Vec) Vec {
	return floats.SubTo(make(Vec, len(v)), v, o)
}

// Mul returns v scaled by f.
func (v Vec) Mul(f float64) Vec {
	return floats.ScaleTo(make(Vec, len(v)), f, v)
}

// Div returns v scaled by 1/f.
func (v Vec) Div(f float64) Vec {
	return v.Mul(1 / f)
}

// Negate returns -v.
func (v Vec) Negate() Vec {
	return v.Mul(-1)
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return combine(1-t, v, t, o)
}

// Midpoint returns the point halfway between v and o.
func (v Vec) Midpoint(o Vec) Vec {
	return v.Lerp(o, 0.5)
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return floats.Dot(v, o)
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	return floats.Norm(v, 2)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	return floats.Distance(v, o, 2)
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec) Normalize() Vec {
	return v.Div(v.Hypot())
}

// Angle returns the angle in radians between v and o, in [0, π].
func (v Vec) Angle(o Vec) float64 {
	c := v.Dot(o) / (v.Hypot() * o.Hypot())
	return math.Acos(max(-1, min(1, c)))
}

// Parallel reports whether v and o point in the same direction, within the
// angle tolerance. Zero vectors are not parallel to anything.
func (v Vec) Parallel(o Vec) bool {
	if v.Hypot2() == 0 || o.Hypot2() == 0 {
		return false
	}
	return v.Angle(o) <= CurrentTolerance().Angle
}

// Coincides reports whether v and o are within the distance tolerance of
// each other.
func (v Vec) Coincides(o Vec) bool {
	return v.Distance(o) <= CurrentTolerance().Distance
}

func (v Vec) IsNaN() bool {
	return floats.HasNaN(v)
}

func (v Vec) IsInf() bool {
	for _, c := range v {
		if math.IsInf(c, 0) {
			return true
		}
	}
	return false
}

// combine returns a·x + b·y.
func combine(a float64, x Vec, b float64, y Vec) Vec {
	out := floats.ScaleTo(make(Vec, len(x)), a, x)
	floats.AddScaled(out, b, y)
	return out
}

// blendInto overwrites dst with a·dst + b·y.
func blendInto(dst Vec, a float64, b float64, y Vec) {
	floats.Scale(a, dst)
	floats.AddScaled(dst, b, y)
}

func cloneVecs(vs []Vec) []Vec {
	out := make([]Vec, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

// homogenize returns (w·p, w).
func homogenize(p Vec, w float64) Vec {
	out := make(Vec, len(p)+1)
	floats.ScaleTo(out[:len(p)], w, p)
	out[len(p)] = w
	return out
}

// dehomogenize returns the Cartesian point of the homogeneous vector h.
func dehomogenize(h Vec) Vec {
	n := len(h) - 1
	return floats.ScaleTo(make(Vec, n), 1/h[n], h[:n])
}
