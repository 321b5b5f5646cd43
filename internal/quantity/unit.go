package quantity

// Unit is an opaque unit token. Units are produced and interpreted by
// the Registry; this layer only passes them around and compares their
// dimensional signatures through the Registry.
type Unit interface {
	// String returns the display name of the unit (e.g. "m", "km/h").
	String() string
}

// Conversion is a linear magnitude rescaling between two compatible
// units: converted = value*Scale + Offset. Offsets are nonzero only for
// affine units such as celsius.
type Conversion struct {
	Scale  float64
	Offset float64
}

// Apply converts a single magnitude value.
func (c Conversion) Apply(x float64) float64 {
	return x*c.Scale + c.Offset
}

// Identity reports whether the conversion leaves magnitudes unchanged.
func (c Conversion) Identity() bool {
	return c.Scale == 1 && c.Offset == 0
}

// Registry resolves unit tokens to dimensional signatures and
// conversion factors. It is an external collaborator: implementations
// own the unit definitions, this layer only consumes them.
//
// Implementations must be safe for concurrent use after construction.
type Registry interface {
	// Dimensionality returns the dimensional signature of a unit.
	Dimensionality(u Unit) (Dimensions, error)

	// Conversion returns the linear rescaling that converts magnitudes
	// from one unit to another. It fails with an error wrapping
	// ErrIncompatibleDimensions when the signatures differ.
	Conversion(from, to Unit) (Conversion, error)

	// IsDimensionless reports whether a unit has a zero signature.
	IsDimensionless(u Unit) bool

	// Dimensionless returns the canonical dimensionless unit.
	Dimensionless() Unit

	// Angle returns the canonical angle unit (radian-equivalent).
	Angle() Unit

	// Mul returns the product unit of a and b.
	Mul(a, b Unit) (Unit, error)

	// Div returns the quotient unit of a and b.
	Div(a, b Unit) (Unit, error)

	// Pow returns u raised to the integer power n.
	Pow(u Unit, n int) (Unit, error)

	// Root returns the n-th root of u. It fails when the root unit
	// cannot be represented with integer exponents.
	Root(u Unit, n int) (Unit, error)
}
