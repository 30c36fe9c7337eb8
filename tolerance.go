package nurbs

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Tolerance holds the numeric tolerances consulted by the algorithms in this
// package.
type Tolerance struct {
	// Distance is the largest distance at which two points are considered
	// coincident.
	Distance float64 `yaml:"distance"`
	// Parameter is the largest difference at which two parameter values,
	// knots in particular, are considered equal.
	Parameter float64 `yaml:"parameter"`
	// Angle, in radians, is the largest angle at which two directions are
	// considered equal.
	Angle float64 `yaml:"angle"`
}

var DefaultTolerance = Tolerance{
	Distance:  1e-6,
	Parameter: 1e-9,
	Angle:     1e-4,
}

var tolerance atomic.Pointer[Tolerance]

func init() {
	tol := DefaultTolerance
	tolerance.Store(&tol)
}

// CurrentTolerance returns the process-wide tolerance configuration.
func CurrentTolerance() Tolerance {
	return *tolerance.Load()
}

// SetTolerance replaces the process-wide tolerance configuration. It is meant
// to be called once during program initialization, before any curves are
// processed. Changing tolerances while curves are being refined concurrently
// makes results depend on timing.
func SetTolerance(tol Tolerance) error {
	if err := tol.validate(); err != nil {
		return err
	}
	tolerance.Store(&tol)
	return nil
}

func (tol Tolerance) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"distance", tol.Distance},
		{"parameter", tol.Parameter},
		{"angle", tol.Angle},
	} {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s tolerance %g is not a positive finite number", ErrTolerance, f.name, f.v)
		}
	}
	return nil
}

// ParseTolerance decodes a YAML document of the form
//
//	distance: 1e-6
//	parameter: 1e-9
//	angle: 1e-4
//
// Omitted fields keep their values from [DefaultTolerance].
func ParseTolerance(data []byte) (Tolerance, error) {
	tol := DefaultTolerance
	if err := yaml.Unmarshal(data, &tol); err != nil {
		return Tolerance{}, fmt.Errorf("%w: %s", ErrTolerance, err)
	}
	if err := tol.validate(); err != nil {
		return Tolerance{}, err
	}
	return tol, nil
}

// ToleranceFromMap builds a tolerance from loosely typed configuration
// values, as produced by flag, environment or generic config loaders. Values
// may be numbers or numeric strings. Missing keys keep their values from
// [DefaultTolerance]; unknown keys are ignored.
func ToleranceFromMap(m map[string]any) (Tolerance, error) {
	tol := DefaultTolerance
	for key, dst := range map[string]*float64{
		"distance":  &tol.Distance,
		"parameter": &tol.Parameter,
		"angle":     &tol.Angle,
	} {
		v, ok := m[key]
		if !ok {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return Tolerance{}, fmt.Errorf("%w: %s: %s", ErrTolerance, key, err)
		}
		*dst = f
	}
	if err := tol.validate(); err != nil {
		return Tolerance{}, err
	}
	return tol, nil
}
