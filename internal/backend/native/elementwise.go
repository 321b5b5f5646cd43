package native

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/unitful-go/unitful/internal/quantity"
)

// elementWise applies a binary op with NumPy-style broadcasting. The
// fastOp, when non-nil, handles the common same-shape case over whole
// slices (gonum vectorized kernels).
func (n *Backend) elementWise(a, b quantity.Payload, fastOp func(dst, x, y []float64), op func(x, y float64) float64) (quantity.Payload, error) {
	fa, err := n.asFloatArray(a)
	if err != nil {
		return nil, err
	}
	fb, err := n.asFloatArray(b)
	if err != nil {
		return nil, err
	}

	outShape, needsBroadcast, err := quantity.BroadcastShapes(fa.shape, fb.shape)
	if err != nil {
		return nil, err
	}
	out := newFloat(outShape)

	if !needsBroadcast && fastOp != nil {
		fastOp(out.f, fa.f, fb.f)
		return out, nil
	}

	for i := range out.f {
		x := fa.f[quantity.BroadcastIndex(i, outShape, fa.shape)]
		y := fb.f[quantity.BroadcastIndex(i, outShape, fb.shape)]
		out.f[i] = op(x, y)
	}
	return out, nil
}

// Add performs element-wise addition with broadcasting.
func (n *Backend) Add(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b,
		func(dst, x, y []float64) { floats.AddTo(dst, x, y) },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (n *Backend) Sub(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b,
		func(dst, x, y []float64) { floats.SubTo(dst, x, y) },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (n *Backend) Mul(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b,
		func(dst, x, y []float64) { floats.MulTo(dst, x, y) },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (n *Backend) Div(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b,
		func(dst, x, y []float64) { floats.DivTo(dst, x, y) },
		func(x, y float64) float64 { return x / y })
}

// Pow performs element-wise exponentiation with broadcasting.
func (n *Backend) Pow(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b, nil, math.Pow)
}

// Mod performs element-wise floored modulo with broadcasting.
func (n *Backend) Mod(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b, nil, func(x, y float64) float64 {
		return x - math.Floor(x/y)*y
	})
}

// Atan2 performs the element-wise two-argument arctangent.
func (n *Backend) Atan2(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b, nil, math.Atan2)
}

// Hypot performs the element-wise Euclidean norm of two operands.
func (n *Backend) Hypot(a, b quantity.Payload) (quantity.Payload, error) {
	return n.elementWise(a, b, nil, math.Hypot)
}

// Divmod returns element-wise floor quotient and remainder.
func (n *Backend) Divmod(a, b quantity.Payload) (quantity.Payload, quantity.Payload, error) {
	quo, err := n.elementWise(a, b, nil, func(x, y float64) float64 {
		return math.Floor(x / y)
	})
	if err != nil {
		return nil, nil, err
	}
	rem, err := n.Mod(a, b)
	if err != nil {
		return nil, nil, err
	}
	return quo, rem, nil
}
