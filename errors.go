package nurbs

import (
	"errors"
	"fmt"
)

// Errors returned by constructors when their structural inputs are malformed.
// Constructor errors wrap one of these; match them with [errors.Is].
var (
	ErrDegree        = errors.New("nurbs: invalid degree")
	ErrKnotCount     = errors.New("nurbs: knot count does not match control point count")
	ErrKnotOrder     = errors.New("nurbs: knot values are not strictly increasing")
	ErrMultiplicity  = errors.New("nurbs: invalid knot multiplicity")
	ErrControlCount  = errors.New("nurbs: too few control points")
	ErrEmptyDomain   = errors.New("nurbs: parameter domain is empty")
	ErrPeriodicKnots = errors.New("nurbs: periodic knot spacing differs across the seam")
	ErrDimension     = errors.New("nurbs: inconsistent coordinate dimension")
	ErrWeight        = errors.New("nurbs: invalid weight")
	ErrSizeMismatch  = errors.New("nurbs: control net size does not match knot vector")
	ErrTolerance     = errors.New("nurbs: invalid tolerance")
)

// InternalError is the value passed to panic when an algorithm detects that
// its own invariants do not hold, such as a parameter that was not
// normalized into the curve's domain or a knot table whose multiplicities do
// not add up. It is never returned as an ordinary error.
type InternalError struct {
	Op  string
	Msg string
}

func (err *InternalError) Error() string {
	return fmt.Sprintf("nurbs: internal error in %s: %s", err.Op, err.Msg)
}

func fault(op string, format string, args ...any) {
	panic(&InternalError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
