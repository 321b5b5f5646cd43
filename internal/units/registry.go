package units

import (
	"errors"
	"fmt"
	"math"

	"github.com/unitful-go/unitful/internal/quantity"
)

// Common errors.
var (
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrDuplicateUnit = errors.New("unit already defined")
	ErrOffsetUnit    = errors.New("offset unit cannot form composite units")
)

// unit is the registry's unit token: a name, a dimensional signature,
// and a linear mapping to the coherent base of that signature.
type unit struct {
	name   string
	dims   quantity.Dimensions
	scale  float64
	offset float64
}

// String returns the unit's display name.
func (u *unit) String() string { return u.name }

// Registry resolves unit names and implements quantity.Registry.
//
// Definitions are append-only: register every unit before dispatching
// begins, then treat the registry as immutable.
type Registry struct {
	byName        map[string]*unit
	dimensionless *unit
	angle         *unit
}

// Verify that Registry implements the adapter interface the dispatcher
// consumes.
var _ quantity.Registry = (*Registry)(nil)

// New creates a registry pre-loaded with the built-in definitions.
func New() *Registry {
	r := &Registry{byName: make(map[string]*unit)}
	r.dimensionless = r.mustDefine("dimensionless", quantity.Dimensions{}, 1, 0)
	r.angle = r.mustDefine("rad", dim(quantity.Angle, 1), 1, 0)
	registerBuiltins(r)
	return r
}

// Define registers a named unit with the given signature and linear
// mapping to the coherent base. Scale must be positive.
func (r *Registry) Define(name string, dims quantity.Dimensions, scale, offset float64) (quantity.Unit, error) {
	if name == "" {
		return nil, fmt.Errorf("unit has no name")
	}
	if scale <= 0 {
		return nil, fmt.Errorf("unit %q: scale must be positive, got %v", name, scale)
	}
	if _, exists := r.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateUnit, name)
	}
	u := &unit{name: name, dims: dims, scale: scale, offset: offset}
	r.byName[name] = u
	return u, nil
}

func (r *Registry) mustDefine(name string, dims quantity.Dimensions, scale, offset float64) *unit {
	u, err := r.Define(name, dims, scale, offset)
	if err != nil {
		panic(err)
	}
	return u.(*unit)
}

// Unit resolves a unit by name.
func (r *Registry) Unit(name string) (quantity.Unit, error) {
	u, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// MustUnit is like Unit but panics on unknown names.
func (r *Registry) MustUnit(name string) quantity.Unit {
	u, err := r.Unit(name)
	if err != nil {
		panic(err)
	}
	return u
}

// resolve accepts only tokens minted by a Registry. Foreign Unit
// implementations are rejected, not probed.
func (r *Registry) resolve(u quantity.Unit) (*unit, error) {
	if u == nil {
		return r.dimensionless, nil
	}
	ru, ok := u.(*unit)
	if !ok {
		return nil, fmt.Errorf("%w: foreign unit token %T (%s)", ErrUnknownUnit, u, u)
	}
	return ru, nil
}

// Dimensionality returns the dimensional signature of a unit.
func (r *Registry) Dimensionality(u quantity.Unit) (quantity.Dimensions, error) {
	ru, err := r.resolve(u)
	if err != nil {
		return quantity.Dimensions{}, err
	}
	return ru.dims, nil
}

// Conversion returns the linear rescaling from one unit to another,
// failing with a dimension error when the signatures differ.
//
// With value_base = v*from.scale + from.offset, the conversion into the
// target is (value_base - to.offset) / to.scale, which stays linear.
func (r *Registry) Conversion(from, to quantity.Unit) (quantity.Conversion, error) {
	f, err := r.resolve(from)
	if err != nil {
		return quantity.Conversion{}, err
	}
	t, err := r.resolve(to)
	if err != nil {
		return quantity.Conversion{}, err
	}
	if f.dims != t.dims {
		return quantity.Conversion{}, &quantity.DimensionError{
			Arg:      -1,
			From:     f,
			To:       t,
			FromDims: f.dims,
			ToDims:   t.dims,
		}
	}
	return quantity.Conversion{
		Scale:  f.scale / t.scale,
		Offset: (f.offset - t.offset) / t.scale,
	}, nil
}

// IsDimensionless reports whether a unit has a zero signature.
func (r *Registry) IsDimensionless(u quantity.Unit) bool {
	ru, err := r.resolve(u)
	if err != nil {
		return false
	}
	return ru.dims.IsZero()
}

// Dimensionless returns the canonical dimensionless unit.
func (r *Registry) Dimensionless() quantity.Unit { return r.dimensionless }

// Angle returns the canonical angle unit (radian).
func (r *Registry) Angle() quantity.Unit { return r.angle }

// noOffset rejects affine units in composite positions: multiplying or
// exponentiating celsius has no meaningful linear factor.
func noOffset(u *unit) error {
	if u.offset != 0 {
		return fmt.Errorf("%w: %q", ErrOffsetUnit, u.name)
	}
	return nil
}

// Mul returns the product unit of a and b.
func (r *Registry) Mul(a, b quantity.Unit) (quantity.Unit, error) {
	ua, err := r.resolve(a)
	if err != nil {
		return nil, err
	}
	ub, err := r.resolve(b)
	if err != nil {
		return nil, err
	}
	if err := noOffset(ua); err != nil {
		return nil, err
	}
	if err := noOffset(ub); err != nil {
		return nil, err
	}
	if ua.dims.IsZero() && ua.scale == 1 {
		return ub, nil
	}
	if ub.dims.IsZero() && ub.scale == 1 {
		return ua, nil
	}
	return &unit{
		name:  fmt.Sprintf("%s·%s", ua.name, ub.name),
		dims:  ua.dims.Add(ub.dims),
		scale: ua.scale * ub.scale,
	}, nil
}

// Div returns the quotient unit of a and b.
func (r *Registry) Div(a, b quantity.Unit) (quantity.Unit, error) {
	ua, err := r.resolve(a)
	if err != nil {
		return nil, err
	}
	ub, err := r.resolve(b)
	if err != nil {
		return nil, err
	}
	if err := noOffset(ua); err != nil {
		return nil, err
	}
	if err := noOffset(ub); err != nil {
		return nil, err
	}
	if ub.dims.IsZero() && ub.scale == 1 {
		return ua, nil
	}
	return &unit{
		name:  fmt.Sprintf("%s/%s", ua.name, ub.name),
		dims:  ua.dims.Sub(ub.dims),
		scale: ua.scale / ub.scale,
	}, nil
}

// Pow returns u raised to the integer power n.
func (r *Registry) Pow(u quantity.Unit, n int) (quantity.Unit, error) {
	ru, err := r.resolve(u)
	if err != nil {
		return nil, err
	}
	switch n {
	case 0:
		return r.dimensionless, nil
	case 1:
		return ru, nil
	}
	if err := noOffset(ru); err != nil {
		return nil, err
	}
	return &unit{
		name:  fmt.Sprintf("%s^%d", ru.name, n),
		dims:  ru.dims.Scale(n),
		scale: math.Pow(ru.scale, float64(n)),
	}, nil
}

// Root returns the n-th root of u. Signatures carry integer exponents,
// so roots of units with exponents not divisible by n are
// dimensionally unrepresentable.
func (r *Registry) Root(u quantity.Unit, n int) (quantity.Unit, error) {
	ru, err := r.resolve(u)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return ru, nil
	}
	if ru.dims.IsZero() && ru.scale == 1 {
		return r.dimensionless, nil
	}
	if err := noOffset(ru); err != nil {
		return nil, err
	}
	rooted, err := ru.dims.Root(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d-th root of %q %s", quantity.ErrIncompatibleDimensions, n, ru.name, ru.dims)
	}
	return &unit{
		name:  fmt.Sprintf("%s^(1/%d)", ru.name, n),
		dims:  rooted,
		scale: math.Pow(ru.scale, 1/float64(n)),
	}, nil
}

// dim builds a signature with a single nonzero exponent.
func dim(d quantity.Dimension, exp int8) quantity.Dimensions {
	var out quantity.Dimensions
	out[d] = exp
	return out
}
