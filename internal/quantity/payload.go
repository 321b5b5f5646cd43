package quantity

// Payload is the capability set this layer requires of a bare
// magnitude. Payloads are opaque beyond this metadata: all numeric work
// on them goes through a Backend.
type Payload interface {
	Shape() Shape
	DType() DataType
	NumElements() int
}

// InPlaceScaler is an optional payload capability: magnitudes that can
// be rescaled in their existing storage. Used by in-place unit
// conversion; payloads without it only support out-of-place conversion.
type InPlaceScaler interface {
	ScaleInPlace(scale, offset float64) error
}

// Backend implements the bare-magnitude compute kernels over one
// payload representation. Backends receive pre-converted, unit-stripped
// payloads and know nothing about units.
//
// Operations return an error rather than panicking on invalid input;
// shape or dtype mismatches surface as plain errors, foreign payload
// types as errors wrapping ErrUnsupportedPayload.
type Backend interface {
	// Name returns the backend name (e.g. "native").
	Name() string

	// Supports reports whether this backend can operate on the payload.
	Supports(p Payload) bool

	// FromScalar wraps a bare scalar into a 0-d payload.
	FromScalar(v float64) Payload

	// ScalarValue extracts the value of a single-element payload.
	ScalarValue(p Payload) (float64, bool)

	// Scale applies a linear rescaling (unit conversion) out of place.
	Scale(p Payload, scale, offset float64) (Payload, error)

	// Element-wise binary operations (with broadcasting).
	Add(a, b Payload) (Payload, error)
	Sub(a, b Payload) (Payload, error)
	Mul(a, b Payload) (Payload, error)
	Div(a, b Payload) (Payload, error)
	Pow(a, b Payload) (Payload, error)
	Mod(a, b Payload) (Payload, error)
	Atan2(a, b Payload) (Payload, error)
	Hypot(a, b Payload) (Payload, error)

	// Divmod returns floor quotient and remainder.
	Divmod(a, b Payload) (Payload, Payload, error)

	// Element-wise unary operations.
	Neg(x Payload) (Payload, error)
	Abs(x Payload) (Payload, error)
	Sqrt(x Payload) (Payload, error)
	Exp(x Payload) (Payload, error)
	Log(x Payload) (Payload, error)
	Log2(x Payload) (Payload, error)
	Log10(x Payload) (Payload, error)
	Sin(x Payload) (Payload, error)
	Cos(x Payload) (Payload, error)
	Tan(x Payload) (Payload, error)
	Asin(x Payload) (Payload, error)
	Acos(x Payload) (Payload, error)
	Atan(x Payload) (Payload, error)
	Floor(x Payload) (Payload, error)
	Ceil(x Payload) (Payload, error)
	Round(x Payload) (Payload, error)

	// Reductions (scalar result).
	Sum(x Payload) (Payload, error)
	Mean(x Payload) (Payload, error)
	Min(x Payload) (Payload, error)
	Max(x Payload) (Payload, error)

	// Linear algebra.
	MatMul(a, b Payload) (Payload, error)

	// Shape manipulation.
	Reshape(x Payload, shape Shape) (Payload, error)
	Transpose(x Payload, axes ...int) (Payload, error)
	Concat(xs []Payload, dim int) (Payload, error)
	Stack(xs []Payload, dim int) (Payload, error)

	// Comparisons (bool payload result).
	Greater(a, b Payload) (Payload, error)
	GreaterEqual(a, b Payload) (Payload, error)
	Less(a, b Payload) (Payload, error)
	LessEqual(a, b Payload) (Payload, error)
	Equal(a, b Payload) (Payload, error)
	NotEqual(a, b Payload) (Payload, error)

	// Where selects elements from x or y based on a bool condition.
	Where(cond, x, y Payload) (Payload, error)
}
