package native

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/unitful-go/unitful/internal/quantity"
)

// MatMul performs 2D matrix multiplication via gonum.
func (n *Backend) MatMul(a, b quantity.Payload) (quantity.Payload, error) {
	fa, err := n.asFloatArray(a)
	if err != nil {
		return nil, err
	}
	fb, err := n.asFloatArray(b)
	if err != nil {
		return nil, err
	}
	if len(fa.shape) != 2 || len(fb.shape) != 2 {
		return nil, fmt.Errorf("matmul requires 2D arrays, got %v and %v", fa.shape, fb.shape)
	}
	if fa.shape[1] != fb.shape[0] {
		return nil, fmt.Errorf("incompatible shapes for matmul: %v @ %v", fa.shape, fb.shape)
	}

	ma := mat.NewDense(fa.shape[0], fa.shape[1], fa.f)
	mb := mat.NewDense(fb.shape[0], fb.shape[1], fb.f)

	var prod mat.Dense
	prod.Mul(ma, mb)

	out := newFloat(quantity.Shape{fa.shape[0], fb.shape[1]})
	copy(out.f, prod.RawMatrix().Data)
	return out, nil
}
