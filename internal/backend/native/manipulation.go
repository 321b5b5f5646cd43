package native

import (
	"fmt"

	"github.com/unitful-go/unitful/internal/quantity"
)

// Reshape returns the array with the same elements in a new shape.
func (n *Backend) Reshape(x quantity.Payload, shape quantity.Shape) (quantity.Payload, error) {
	fx, err := n.asFloatArray(x)
	if err != nil {
		return nil, err
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != fx.NumElements() {
		return nil, fmt.Errorf("cannot reshape %v to %v", fx.shape, shape)
	}
	out := newFloat(shape)
	copy(out.f, fx.f)
	return out, nil
}

// Transpose permutes dimensions; with no axes all dimensions reverse.
func (n *Backend) Transpose(x quantity.Payload, axes ...int) (quantity.Payload, error) {
	fx, err := n.asFloatArray(x)
	if err != nil {
		return nil, err
	}
	ndim := len(fx.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		return nil, fmt.Errorf("transpose needs %d axes, got %d", ndim, len(axes))
	}

	outShape := make(quantity.Shape, ndim)
	seen := make([]bool, ndim)
	for i, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("transpose axis %d out of range for %d dimensions", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("transpose axis %d repeated", ax)
		}
		seen[ax] = true
		outShape[i] = fx.shape[ax]
	}

	inStrides := fx.shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	out := newFloat(outShape)
	for i := range out.f {
		temp := i
		srcIdx := 0
		for d := 0; d < ndim; d++ {
			idx := temp / outStrides[d]
			temp %= outStrides[d]
			srcIdx += idx * inStrides[axes[d]]
		}
		out.f[i] = fx.f[srcIdx]
	}
	return out, nil
}

// Concat concatenates arrays along a dimension. Scalars are promoted to
// one-element vectors for dimension 0.
func (n *Backend) Concat(xs []quantity.Payload, dim int) (quantity.Payload, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("concat: at least one array required")
	}

	arrays := make([]*Array, len(xs))
	for i, x := range xs {
		fx, err := n.asFloatArray(x)
		if err != nil {
			return nil, err
		}
		arrays[i] = fx
	}

	first := arrays[0].shape
	if len(first) == 0 {
		first = quantity.Shape{1}
	}
	if dim < 0 || dim >= len(first) {
		return nil, fmt.Errorf("concat dimension %d out of range for %d dimensions", dim, len(first))
	}

	outShape := first.Clone()
	for i, a := range arrays[1:] {
		sh := a.shape
		if len(sh) == 0 {
			sh = quantity.Shape{1}
		}
		if len(sh) != len(first) {
			return nil, fmt.Errorf("argument %d has %d dimensions, want %d", i+1, len(sh), len(first))
		}
		for d := range sh {
			if d == dim {
				continue
			}
			if sh[d] != first[d] {
				return nil, fmt.Errorf("argument %d has shape %v, incompatible with %v along dimension %d",
					i+1, a.shape, first, d)
			}
		}
		outShape[dim] += sh[dim]
	}

	out := newFloat(outShape)

	// Row-major copy: iterate over the outer block of each input and
	// splice its rows into the output at the running offset.
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= outShape[d]
	}
	innerOut := outShape.NumElements() / outer

	offset := 0
	for _, a := range arrays {
		sh := a.shape
		if len(sh) == 0 {
			sh = quantity.Shape{1}
		}
		innerIn := a.NumElements() / outer
		for blk := 0; blk < outer; blk++ {
			src := a.f[blk*innerIn : (blk+1)*innerIn]
			copy(out.f[blk*innerOut+offset:], src)
		}
		offset += innerIn
	}
	return out, nil
}

// Stack joins equally-shaped arrays along a new leading dimension.
func (n *Backend) Stack(xs []quantity.Payload, dim int) (quantity.Payload, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("stack: at least one array required")
	}
	if dim != 0 {
		return nil, fmt.Errorf("stack supports dimension 0 only, got %d", dim)
	}

	var (
		inner quantity.Shape
		data  []float64
	)
	for i, x := range xs {
		fx, err := n.asFloatArray(x)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			inner = fx.shape.Clone()
		} else if !fx.shape.Equal(inner) {
			return nil, fmt.Errorf("argument %d has shape %v, want %v", i, fx.shape, inner)
		}
		data = append(data, fx.f...)
	}

	outShape := append(quantity.Shape{len(xs)}, inner...)
	out := newFloat(outShape)
	copy(out.f, data)
	return out, nil
}
