package nurbs

import "fmt"

// MaxDerivative is the highest derivative order the evaluation routines
// compute.
const MaxDerivative = 3

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t, which must lie in the domain.
	Eval(t float64) Vec
	// Domain returns the range of valid parameters.
	Domain() (start, end float64)
	Start() Vec
	End() Vec
}

var _ ParametricCurve = Curve{}
var _ ParametricCurve = BezierSegment{}

// Curve is a B-spline or NURBS curve: a knot vector together with a control
// net of matching size. Curves are immutable; the refinement operations
// return new curves that share no storage with their input.
type Curve struct {
	knots KnotVector
	net   ControlNet
}

// NewCurve pairs a knot vector with a control net. The net must have exactly
// as many points as the knot vector parametrizes.
func NewCurve(kv KnotVector, net ControlNet) (Curve, error) {
	if kv.IsZero() {
		return Curve{}, fmt.Errorf("%w: zero knot vector", ErrSizeMismatch)
	}
	if net.Len() != kv.NumControlPoints() {
		return Curve{}, fmt.Errorf("%w: %d control points, knot vector wants %d", ErrSizeMismatch, net.Len(), kv.NumControlPoints())
	}
	net.periodic = kv.Periodic()
	return Curve{knots: kv, net: net}, nil
}

// newCurve is NewCurve for pairs computed by this package, taking ownership
// of rows.
func newCurve(op string, kv KnotVector, rows []Vec, rational bool) Curve {
	if len(rows) != kv.NumControlPoints() {
		fault(op, "computed %d control points for %s", len(rows), kv)
	}
	return Curve{knots: kv, net: netFromRows(rows, rational, kv.Periodic())}
}

func (c Curve) Knots() KnotVector { return c.knots }
func (c Curve) Net() ControlNet   { return c.net }
func (c Curve) Degree() int       { return c.knots.degree }
func (c Curve) Periodic() bool    { return c.knots.periodic }
func (c Curve) Rational() bool    { return c.net.rational }

// Dimension returns the number of coordinates of the curve's points.
func (c Curve) Dimension() int { return c.net.Dimension() }

func (c Curve) Domain() (start, end float64) { return c.knots.Domain() }

func (c Curve) String() string {
	return fmt.Sprintf("Curve{%s, %d points}", c.knots, c.net.Len())
}

// Eval returns the point of the curve at t.
func (c Curve) Eval(t float64) Vec {
	return c.Derivs(t, 0)[0]
}

func (c Curve) Start() Vec {
	start, _ := c.Domain()
	return c.Eval(start)
}

func (c Curve) End() Vec {
	_, end := c.Domain()
	return c.Eval(end)
}

// Derivs returns the point of the curve at t followed by its first order
// derivatives, up to and including order, which must be between 0 and
// [MaxDerivative]. For rational curves, the derivatives are those of the
// projected curve.
func (c Curve) Derivs(t float64, order int) []Vec {
	h := c.HomogeneousDerivs(t, order)
	if !c.net.rational {
		return h
	}
	return rationalDerivs(h)
}

// HomogeneousDerivs is like [Curve.Derivs] but returns the derivatives of
// the curve in homogeneous coordinates, with the weight as the last
// coordinate. For non-rational curves it is identical to Derivs.
func (c Curve) HomogeneousDerivs(t float64, order int) []Vec {
	if order < 0 || order > MaxDerivative {
		panic(fmt.Sprintf("derivative order %d out of range", order))
	}
	return evaluate(c.knots, c.net, t, order)
}

// Blossom evaluates the blossom of the polynomial piece belonging to the
// given segment number at params, which must hold Degree parameters. For
// rational curves the result is in homogeneous coordinates.
func (c Curve) Blossom(segment int, params []float64) Vec {
	return blossom(c.knots, c.net, segment, params)
}

// BoundingBox returns a box containing the curve.
func (c Curve) BoundingBox() Box {
	return c.net.BoundingBox()
}

// rationalDerivs projects the homogeneous derivatives h of a rational curve,
// using the quotient rule C⁽ᵏ⁾ = (A⁽ᵏ⁾ − Σᵢ₌₁ᵏ (ᵏᵢ) w⁽ⁱ⁾ C⁽ᵏ⁻ⁱ⁾) / w.
func rationalDerivs(h []Vec) []Vec {
	d := len(h[0]) - 1
	w := make([]float64, len(h))
	for k, hk := range h {
		w[k] = hk[d]
	}
	out := make([]Vec, len(h))
	for k := range h {
		v := h[k][:d].Clone()
		for i := 1; i <= k; i++ {
			blendInto(v, 1, -binomial(k, i)*w[i], out[k-i])
		}
		out[k] = v.Div(w[0])
	}
	return out
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}
