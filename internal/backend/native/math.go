package native

import (
	"math"

	"github.com/unitful-go/unitful/internal/quantity"
)

// unary applies an element-wise function to float64 storage.
func (n *Backend) unary(x quantity.Payload, op func(v float64) float64) (quantity.Payload, error) {
	fx, err := n.asFloatArray(x)
	if err != nil {
		return nil, err
	}
	out := newFloat(fx.shape)
	for i, v := range fx.f {
		out.f[i] = op(v)
	}
	return out, nil
}

// Neg negates element-wise.
func (n *Backend) Neg(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, func(v float64) float64 { return -v })
}

// Abs takes element-wise absolute values.
func (n *Backend) Abs(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Abs)
}

// Sqrt takes element-wise square roots.
func (n *Backend) Sqrt(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Sqrt)
}

// Exp computes the element-wise exponential.
func (n *Backend) Exp(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Exp)
}

// Log computes the element-wise natural logarithm.
func (n *Backend) Log(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Log)
}

// Log2 computes the element-wise base-2 logarithm.
func (n *Backend) Log2(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Log2)
}

// Log10 computes the element-wise base-10 logarithm.
func (n *Backend) Log10(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Log10)
}

// Sin computes the element-wise sine.
func (n *Backend) Sin(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Sin)
}

// Cos computes the element-wise cosine.
func (n *Backend) Cos(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Cos)
}

// Tan computes the element-wise tangent.
func (n *Backend) Tan(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Tan)
}

// Asin computes the element-wise inverse sine.
func (n *Backend) Asin(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Asin)
}

// Acos computes the element-wise inverse cosine.
func (n *Backend) Acos(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Acos)
}

// Atan computes the element-wise inverse tangent.
func (n *Backend) Atan(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Atan)
}

// Floor rounds element-wise toward negative infinity.
func (n *Backend) Floor(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Floor)
}

// Ceil rounds element-wise toward positive infinity.
func (n *Backend) Ceil(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Ceil)
}

// Round rounds element-wise to the nearest integer.
func (n *Backend) Round(x quantity.Payload) (quantity.Payload, error) {
	return n.unary(x, math.Round)
}
