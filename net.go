package nurbs

import (
	"fmt"
	"math"
)

// ControlNet is the ordered sequence of control points of a B-spline curve,
// optionally weighted.
//
// Rational nets are stored in homogeneous coordinates. All refinement
// algorithms operate on the homogeneous points, and [ControlNet.Point]
// projects them back.
//
// Once a net is part of a periodic [Curve], indices passed to
// [ControlNet.At] wrap around modulo the number of control points.
type ControlNet struct {
	rows     []Vec
	rational bool
	periodic bool
}

// NewControlNet returns a non-rational control net. All points must have the
// same, non-zero dimension.
func NewControlNet(points []Vec) (ControlNet, error) {
	if err := checkDims(points); err != nil {
		return ControlNet{}, err
	}
	return ControlNet{rows: cloneVecs(points)}, nil
}

// NewRationalControlNet returns a control net whose points carry weights.
// Weights must be positive.
func NewRationalControlNet(points []Vec, weights []float64) (ControlNet, error) {
	if err := checkDims(points); err != nil {
		return ControlNet{}, err
	}
	if len(weights) != len(points) {
		return ControlNet{}, fmt.Errorf("%w: %d weights for %d points", ErrWeight, len(weights), len(points))
	}
	rows := make([]Vec, len(points))
	for i, p := range points {
		w := weights[i]
		if !(w > 0) || math.IsInf(w, 0) {
			return ControlNet{}, fmt.Errorf("%w: weight %d is %g", ErrWeight, i, w)
		}
		rows[i] = homogenize(p, w)
	}
	return ControlNet{rows: rows, rational: true}, nil
}

func checkDims(points []Vec) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no control points", ErrDimension)
	}
	d := len(points[0])
	if d == 0 {
		return fmt.Errorf("%w: control point 0 has no coordinates", ErrDimension)
	}
	for i, p := range points {
		if len(p) != d {
			return fmt.Errorf("%w: control point %d has %d coordinates, want %d", ErrDimension, i, len(p), d)
		}
	}
	return nil
}

// Len returns the number of control points.
func (net ControlNet) Len() int { return len(net.rows) }

// Rational reports whether the control points are weighted.
func (net ControlNet) Rational() bool { return net.rational }

// Dimension returns the number of coordinates of the control points, not
// counting weights.
func (net ControlNet) Dimension() int {
	if len(net.rows) == 0 {
		fault("Dimension", "control net has no points")
	}
	if net.rational {
		return len(net.rows[0]) - 1
	}
	return len(net.rows[0])
}

// Point returns the i'th control point.
func (net ControlNet) Point(i int) Vec {
	if net.rational {
		return dehomogenize(net.rows[i])
	}
	return net.rows[i].Clone()
}

// Weight returns the weight of the i'th control point, which is 1 for
// non-rational nets.
func (net ControlNet) Weight(i int) float64 {
	if net.rational {
		r := net.rows[i]
		return r[len(r)-1]
	}
	return 1
}

// Homogeneous returns the i'th control point in homogeneous coordinates, that
// is the weighted point followed by its weight. For non-rational nets it
// returns the point itself.
func (net ControlNet) Homogeneous(i int) Vec {
	return net.rows[i].Clone()
}

// At returns the control point at logical index i, wrapping modulo Len for
// periodic curves.
func (net ControlNet) At(i int) Vec {
	return net.Point(net.index(i))
}

// Points returns all control points.
func (net ControlNet) Points() []Vec {
	out := make([]Vec, len(net.rows))
	for i := range net.rows {
		out[i] = net.Point(i)
	}
	return out
}

// Weights returns the weights of all control points, or nil for non-rational
// nets.
func (net ControlNet) Weights() []float64 {
	if !net.rational {
		return nil
	}
	out := make([]float64, len(net.rows))
	for i := range net.rows {
		out[i] = net.Weight(i)
	}
	return out
}

// BoundingBox returns the bounding box of the control points. Curves lie
// within the convex hull of their control points and thus within this box.
func (net ControlNet) BoundingBox() Box {
	return BoxOf(net.Points()...)
}

func (net ControlNet) index(i int) int {
	if net.periodic {
		n := len(net.rows)
		i %= n
		if i < 0 {
			i += n
		}
	}
	return i
}

// row returns the homogeneous control point at logical index i without
// copying it. Callers must not modify the result.
func (net ControlNet) row(i int) Vec {
	return net.rows[net.index(i)]
}

// unrolled returns copies of the homogeneous control points of a periodic net
// followed by copies of its first degree points, which is the control polygon
// of the same curve viewed as a non-periodic B-spline.
func (net ControlNet) unrolled(degree int) []Vec {
	out := cloneVecs(net.rows)
	if net.periodic {
		for i := range degree {
			out = append(out, net.row(i).Clone())
		}
	}
	return out
}

func netFromRows(rows []Vec, rational, periodic bool) ControlNet {
	return ControlNet{rows: rows, rational: rational, periodic: periodic}
}
