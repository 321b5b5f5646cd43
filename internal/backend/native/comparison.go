package native

import (
	"fmt"

	"github.com/unitful-go/unitful/internal/quantity"
)

// compare applies a predicate with broadcasting, producing bool storage.
func (n *Backend) compare(a, b quantity.Payload, pred func(x, y float64) bool) (quantity.Payload, error) {
	fa, err := n.asFloatArray(a)
	if err != nil {
		return nil, err
	}
	fb, err := n.asFloatArray(b)
	if err != nil {
		return nil, err
	}

	outShape, _, err := quantity.BroadcastShapes(fa.shape, fb.shape)
	if err != nil {
		return nil, err
	}
	out := make([]bool, outShape.NumElements())
	for i := range out {
		x := fa.f[quantity.BroadcastIndex(i, outShape, fa.shape)]
		y := fb.f[quantity.BroadcastIndex(i, outShape, fb.shape)]
		out[i] = pred(x, y)
	}
	return &Array{shape: outShape.Clone(), dtype: quantity.Bool, b: out}, nil
}

// Greater compares element-wise a > b.
func (n *Backend) Greater(a, b quantity.Payload) (quantity.Payload, error) {
	return n.compare(a, b, func(x, y float64) bool { return x > y })
}

// GreaterEqual compares element-wise a >= b.
func (n *Backend) GreaterEqual(a, b quantity.Payload) (quantity.Payload, error) {
	return n.compare(a, b, func(x, y float64) bool { return x >= y })
}

// Less compares element-wise a < b.
func (n *Backend) Less(a, b quantity.Payload) (quantity.Payload, error) {
	return n.compare(a, b, func(x, y float64) bool { return x < y })
}

// LessEqual compares element-wise a <= b.
func (n *Backend) LessEqual(a, b quantity.Payload) (quantity.Payload, error) {
	return n.compare(a, b, func(x, y float64) bool { return x <= y })
}

// Equal compares element-wise a == b.
func (n *Backend) Equal(a, b quantity.Payload) (quantity.Payload, error) {
	return n.compare(a, b, func(x, y float64) bool { return x == y })
}

// NotEqual compares element-wise a != b.
func (n *Backend) NotEqual(a, b quantity.Payload) (quantity.Payload, error) {
	return n.compare(a, b, func(x, y float64) bool { return x != y })
}

// Where selects elements from x or y based on a bool condition, with
// broadcasting across all three operands.
func (n *Backend) Where(cond, x, y quantity.Payload) (quantity.Payload, error) {
	fc, err := n.asArray(cond)
	if err != nil {
		return nil, err
	}
	if fc.dtype != quantity.Bool {
		return nil, fmt.Errorf("where condition must be bool, got %s", fc.dtype)
	}
	fx, err := n.asFloatArray(x)
	if err != nil {
		return nil, err
	}
	fy, err := n.asFloatArray(y)
	if err != nil {
		return nil, err
	}

	outShape, _, err := quantity.BroadcastShapes(fx.shape, fy.shape)
	if err != nil {
		return nil, err
	}
	outShape, _, err = quantity.BroadcastShapes(outShape, fc.shape)
	if err != nil {
		return nil, err
	}

	out := newFloat(outShape)
	for i := range out.f {
		if fc.b[quantity.BroadcastIndex(i, outShape, fc.shape)] {
			out.f[i] = fx.f[quantity.BroadcastIndex(i, outShape, fx.shape)]
		} else {
			out.f[i] = fy.f[quantity.BroadcastIndex(i, outShape, fy.shape)]
		}
	}
	return out, nil
}
