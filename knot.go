package nurbs

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// KnotKind describes how a knot vector was specified.
type KnotKind int

const (
	// Explicit knot vectors carry a table of distinct values and
	// multiplicities.
	Explicit KnotKind = iota
	// Uniform knot vectors have unit spacing: the expanded knot at index i is
	// i − degree.
	Uniform
)

func (k KnotKind) String() string {
	switch k {
	case Explicit:
		return "explicit"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("KnotKind(%d)", int(k))
	}
}

// KnotVector describes the parametrization of a B-spline: its degree,
// periodicity, and the non-decreasing sequence of knots, stored as distinct
// values with multiplicities.
//
// For a non-periodic vector with n control points, the multiplicities add up
// to n+degree+1 and there are n−degree segments. A periodic vector with n
// control points has n+2·degree+1 knots and n segments; its control points
// are indexed modulo n. In both cases the usable parameter domain is
// [KnotValue(degree), KnotValue(degree+NumSegments())].
//
// KnotVector values are immutable. Operations that change the knots return
// new values.
type KnotVector struct {
	degree   int
	periodic bool
	kind     KnotKind
	values   []float64
	mults    []int
	flat     []float64
	nControl int
}

// NewKnotVector returns a knot vector of the given degree for nControl
// control points, from a table of strictly increasing knot values and their
// multiplicities.
//
// The degree must be at least 1. Multiplicities may not exceed degree+1, or
// degree for periodic vectors. Non-periodic vectors need not be clamped: the
// end knots may have any multiplicity up to degree+1. For periodic vectors,
// the knot gaps at the start must repeat those one period later.
func NewKnotVector(degree int, values []float64, mults []int, nControl int, periodic bool) (KnotVector, error) {
	kv := KnotVector{
		degree:   degree,
		periodic: periodic,
		kind:     Explicit,
		values:   slices.Clone(values),
		mults:    slices.Clone(mults),
		nControl: nControl,
	}
	if err := kv.init(); err != nil {
		return KnotVector{}, err
	}
	return kv, nil
}

// NewUniformKnotVector returns a uniform knot vector of the given degree for
// nControl control points. Knots have unit spacing and the domain starts at
// zero. The vector is not clamped: a non-periodic uniform curve does not in
// general interpolate its first and last control points.
func NewUniformKnotVector(degree, nControl int, periodic bool) (KnotVector, error) {
	kv := KnotVector{
		degree:   degree,
		periodic: periodic,
		kind:     Uniform,
		nControl: nControl,
	}
	if degree < 1 {
		return KnotVector{}, fmt.Errorf("%w: %d", ErrDegree, degree)
	}
	n := kv.expectedKnots()
	kv.values = lo.Times(n, func(i int) float64 { return float64(i - degree) })
	kv.mults = lo.Times(n, func(int) int { return 1 })
	if err := kv.init(); err != nil {
		return KnotVector{}, err
	}
	return kv, nil
}

// NewClampedKnotVector returns a non-periodic knot vector of the given degree
// whose breakpoints are breaks. The first and last breakpoints have
// multiplicity degree+1, interior ones multiplicity 1, so the curve
// interpolates its first and last control points. The number of control
// points is len(breaks)−1+degree.
func NewClampedKnotVector(degree int, breaks []float64) (KnotVector, error) {
	if len(breaks) < 2 {
		return KnotVector{}, fmt.Errorf("%w: need at least two breakpoints, got %d", ErrKnotCount, len(breaks))
	}
	mults := lo.Times(len(breaks), func(int) int { return 1 })
	mults[0] = degree + 1
	mults[len(mults)-1] = degree + 1
	return NewKnotVector(degree, breaks, mults, len(breaks)-1+degree, false)
}

// mustKnotVector is NewKnotVector for knot tables computed by this package.
// An invalid table indicates a bug and causes a fault.
func mustKnotVector(op string, degree int, values []float64, mults []int, nControl int, periodic bool) KnotVector {
	kv, err := NewKnotVector(degree, values, mults, nControl, periodic)
	if err != nil {
		fault(op, "%s", err)
	}
	return kv
}

func (kv KnotVector) expectedKnots() int {
	if kv.periodic {
		return kv.nControl + 2*kv.degree + 1
	}
	return kv.nControl + kv.degree + 1
}

func (kv *KnotVector) init() error {
	p := kv.degree
	if p < 1 {
		return fmt.Errorf("%w: %d", ErrDegree, p)
	}
	if len(kv.values) != len(kv.mults) {
		return fmt.Errorf("%w: %d values but %d multiplicities", ErrKnotCount, len(kv.values), len(kv.mults))
	}
	if len(kv.values) < 2 {
		return fmt.Errorf("%w: need at least two distinct knots", ErrKnotCount)
	}
	maxMult := p + 1
	if kv.periodic {
		maxMult = p
	}
	for i, v := range kv.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: knot %d is %g", ErrKnotOrder, i, v)
		}
		if i > 0 && !(v > kv.values[i-1]) {
			return fmt.Errorf("%w: knot %d (%g) follows %g", ErrKnotOrder, i, v, kv.values[i-1])
		}
		if m := kv.mults[i]; m < 1 || m > maxMult {
			return fmt.Errorf("%w: knot %g has multiplicity %d, want 1 to %d", ErrMultiplicity, v, m, maxMult)
		}
	}
	if kv.nControl < p+1 {
		return fmt.Errorf("%w: %d control points for degree %d", ErrControlCount, kv.nControl, p)
	}
	if got, want := lo.Sum(kv.mults), kv.expectedKnots(); got != want {
		return fmt.Errorf("%w: multiplicities add up to %d, want %d for %d control points", ErrKnotCount, got, want, kv.nControl)
	}

	kv.flat = expand(kv.values, kv.mults)
	start, end := kv.Domain()
	if !(end > start) {
		return fmt.Errorf("%w: [%g, %g]", ErrEmptyDomain, start, end)
	}
	if kv.periodic {
		tol := CurrentTolerance().Parameter
		n := kv.nControl
		for i := 2; i <= 2*p; i++ {
			head := kv.flat[i] - kv.flat[i-1]
			tail := kv.flat[i+n] - kv.flat[i+n-1]
			if math.Abs(head-tail) >= tol {
				return fmt.Errorf("%w: gap %g before knot %d, %g one period later", ErrPeriodicKnots, head, i, tail)
			}
		}
	}
	return nil
}

func (kv KnotVector) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "KnotVector{degree: %d, periodic: %t, %s, controls: %d, knots: [", kv.degree, kv.periodic, kv.kind, kv.nControl)
	for i, v := range kv.values {
		if i > 0 {
			sb.WriteString(" ")
		}
		if kv.mults[i] == 1 {
			fmt.Fprintf(&sb, "%g", v)
		} else {
			fmt.Fprintf(&sb, "%g×%d", v, kv.mults[i])
		}
	}
	sb.WriteString("]}")
	return sb.String()
}

func (kv KnotVector) Degree() int        { return kv.degree }
func (kv KnotVector) Periodic() bool     { return kv.periodic }
func (kv KnotVector) Kind() KnotKind     { return kv.kind }
func (kv KnotVector) IsZero() bool       { return kv.flat == nil }
func (kv KnotVector) NumKnots() int      { return len(kv.values) }
func (kv KnotVector) NumKnotValues() int { return len(kv.flat) }

// NumControlPoints returns the number of control points the knot vector
// parametrizes.
func (kv KnotVector) NumControlPoints() int { return kv.nControl }

// NumSegments returns the number of knot spans inside the domain, including
// spans of zero width.
func (kv KnotVector) NumSegments() int {
	if kv.periodic {
		return kv.nControl
	}
	return kv.nControl - kv.degree
}

// KnotValue returns the knot at index i of the expanded knot sequence, in
// which every value is repeated according to its multiplicity.
func (kv KnotVector) KnotValue(i int) float64 {
	return kv.flat[i]
}

// Knot returns the i'th distinct knot value.
func (kv KnotVector) Knot(i int) float64 { return kv.values[i] }

// Multiplicity returns the multiplicity of the i'th distinct knot value.
func (kv KnotVector) Multiplicity(i int) int { return kv.mults[i] }

// Knots returns the distinct knot values.
func (kv KnotVector) Knots() []float64 { return slices.Clone(kv.values) }

// Multiplicities returns the multiplicities of the distinct knot values.
func (kv KnotVector) Multiplicities() []int { return slices.Clone(kv.mults) }

// KnotValues returns the expanded knot sequence.
func (kv KnotVector) KnotValues() []float64 { return slices.Clone(kv.flat) }

// MultiplicityOf returns the multiplicity of the knot coinciding with t
// within the parameter tolerance, or 0 if t is not a knot.
func (kv KnotVector) MultiplicityOf(t float64) int {
	return multiplicityOf(kv.values, kv.mults, t, CurrentTolerance().Parameter)
}

// snap returns the knot value coinciding with t within the parameter
// tolerance, or t itself.
func (kv KnotVector) snap(t float64) float64 {
	tol := CurrentTolerance().Parameter
	for _, v := range kv.values {
		if math.Abs(v-t) < tol {
			return v
		}
	}
	return t
}

// Domain returns the parameter range over which the curve is defined.
func (kv KnotVector) Domain() (start, end float64) {
	return kv.flat[kv.degree], kv.flat[kv.degree+kv.NumSegments()]
}

// Period returns the length of the domain.
func (kv KnotVector) Period() float64 {
	start, end := kv.Domain()
	return end - start
}

// Wrap maps t into the half-open domain [start, end) modulo its length. It is
// the normalization used for periodic curves.
func (kv KnotVector) Wrap(t float64) float64 {
	start, end := kv.Domain()
	span := end - start
	t = start + math.Mod(t-start, span)
	if t < start {
		t += span
	}
	if t >= end {
		t = start
	}
	return t
}

// Clamp forces t into the closed domain. It is the normalization used for
// non-periodic curves.
func (kv KnotVector) Clamp(t float64) float64 {
	start, end := kv.Domain()
	return max(start, min(end, t))
}

// SegmentIndex returns the number of the segment containing t, counted from
// the first segment of the domain. The segment number is also the index of
// the first control point influencing the segment. Zero-width segments are
// never returned; at the end of the domain the last non-empty segment is.
//
// t must have been normalized into the domain, see [KnotVector.Wrap] and
// [KnotVector.Clamp]. Parameters outside the domain by more than the
// parameter tolerance cause a panic with an [*InternalError].
func (kv KnotVector) SegmentIndex(t float64) int {
	start, end := kv.Domain()
	tol := CurrentTolerance().Parameter
	if math.IsNaN(t) || t < start-tol || t > end+tol {
		fault("SegmentIndex", "parameter %g outside of domain [%g, %g]", t, start, end)
	}
	p := kv.degree
	last := p + kv.NumSegments() - 1
	if t >= end {
		for k := last; k >= p; k-- {
			if kv.flat[k] < kv.flat[k+1] {
				return k - p
			}
		}
		fault("SegmentIndex", "no segment of non-zero width in %s", kv)
	}
	t = max(t, start)
	k := sort.Search(len(kv.flat), func(i int) bool { return kv.flat[i] > t }) - 1
	k = max(p, min(last, k))
	return k - p
}

// Beautify returns a knot vector in which knot values closer together than
// the parameter tolerance have been merged into one value, summing their
// multiplicities.
func (kv KnotVector) Beautify() KnotVector {
	if kv.kind == Uniform {
		return kv
	}
	values, mults := beautifyTable(kv.values, kv.mults, CurrentTolerance().Parameter)
	if len(values) == len(kv.values) {
		return kv
	}
	return mustKnotVector("Beautify", kv.degree, values, mults, kv.nControl, kv.periodic)
}

// MakeExplicit returns the knot vector as an explicit table of values and
// multiplicities. Uniform knot vectors are expanded; explicit ones are
// returned as is.
func (kv KnotVector) MakeExplicit() KnotVector {
	kv.kind = Explicit
	return kv
}

// periodicKnot returns the knot at index i of a periodic vector's infinite
// knot sequence, which repeats the domain knots shifted by multiples of the
// period.
func (kv KnotVector) periodicKnot(i int) float64 {
	n, p := kv.nControl, kv.degree
	q := floorDiv(i-p, n)
	return kv.flat[i-q*n] + float64(q)*kv.Period()
}
