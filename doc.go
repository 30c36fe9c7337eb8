// Package nurbs implements non-uniform rational B-spline curves and surfaces
// and the structural operations on them: evaluation of points and
// derivatives, blossoming, knot insertion, degree elevation, splitting, and
// decomposition into Bézier segments.
//
// # Knot vectors and control nets
//
// A [KnotVector] describes the parametrization of a B-spline: its degree,
// whether it is periodic, and its knots, stored as distinct values with
// multiplicities. Knot vectors are either uniform, with knots at the integers
// and a domain starting at zero, or explicit.
//
// A [ControlNet] holds the control points, optionally with weights. A
// [Curve] pairs a knot vector with a control net of matching size.
//
// For a non-periodic curve of degree p with n control points, there are
// n+p+1 knots. A periodic curve with n control points has n+2p+1 knots, and
// its control points are indexed modulo n: the curve closes on itself and
// the first p control points are reused after the last one.
//
// # Parameters
//
// Curves are defined over the domain reported by [Curve.Domain]. Parameters
// passed to evaluation and refinement must lie within it; callers normalize
// them with [KnotVector.Wrap] for periodic curves and [KnotVector.Clamp] for
// others. Passing a parameter outside of the domain is a programming error
// and causes a panic with an [*InternalError], as does any other violation of
// an invariant that constructors already checked.
//
// # Refinement
//
// All refinement operations return new curves and never modify their input.
// [Curve.InsertKnot], [Curve.ElevateDegree] and [Curve.Split] change the
// representation of a curve but not its shape. [Curve.Bezier] and
// [Surface.Bezier] decompose curves and surfaces into Bézier segments and
// patches.
//
// # Rational curves
//
// Weighted control points are stored in homogeneous coordinates, with the
// weight as the last coordinate. All algorithms operate on these
// coordinates. [Curve.HomogeneousDerivs] returns evaluation results in
// homogeneous form; [Curve.Eval] and [Curve.Derivs] project them back.
//
// # Tolerances
//
// Knot comparisons use the parameter tolerance of the process-wide
// [Tolerance] configuration, see [SetTolerance]. The configuration should be
// set once, before curves are processed.
package nurbs
