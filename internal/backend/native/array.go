package native

import (
	"fmt"

	"github.com/unitful-go/unitful/internal/quantity"
)

// Array is the native backend's payload: a dense row-major array of
// float64 magnitudes (or bools for predicate results).
type Array struct {
	shape quantity.Shape
	dtype quantity.DataType
	f     []float64
	b     []bool
}

// NewArray creates a float64 array from a slice. The data is copied.
func NewArray(data []float64, shape quantity.Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array{
		shape: shape.Clone(),
		dtype: quantity.Float64,
		f:     append([]float64(nil), data...),
	}, nil
}

// NewBoolArray creates a bool array from a slice. The data is copied.
func NewBoolArray(data []bool, shape quantity.Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array{
		shape: shape.Clone(),
		dtype: quantity.Bool,
		b:     append([]bool(nil), data...),
	}, nil
}

// Scalar creates a 0-d array holding a single value.
func Scalar(v float64) *Array {
	return &Array{shape: quantity.Shape{}, dtype: quantity.Float64, f: []float64{v}}
}

// newFloat allocates an uninitialized float64 array.
func newFloat(shape quantity.Shape) *Array {
	return &Array{
		shape: shape.Clone(),
		dtype: quantity.Float64,
		f:     make([]float64, shape.NumElements()),
	}
}

// Shape returns the array's shape.
func (a *Array) Shape() quantity.Shape { return a.shape }

// DType returns the array's element type.
func (a *Array) DType() quantity.DataType { return a.dtype }

// NumElements returns the total number of elements.
func (a *Array) NumElements() int { return a.shape.NumElements() }

// Float64s returns the float64 storage.
// Modifications to the returned slice modify the array.
func (a *Array) Float64s() []float64 { return a.f }

// Bools returns the bool storage.
func (a *Array) Bools() []bool { return a.b }

// At returns the element at the given indices.
func (a *Array) At(indices ...int) (float64, error) {
	if a.dtype != quantity.Float64 {
		return 0, fmt.Errorf("array dtype is %s, not float64", a.dtype)
	}
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("expected %d indices, got %d", len(a.shape), len(indices))
	}
	offset := 0
	strides := a.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i])
		}
		offset += idx * strides[i]
	}
	return a.f[offset], nil
}

// ScaleInPlace rescales the magnitudes in the existing storage. Bool
// storage cannot represent rescaled magnitudes.
func (a *Array) ScaleInPlace(scale, offset float64) error {
	if a.dtype != quantity.Float64 {
		return fmt.Errorf("cannot rescale %s storage", a.dtype)
	}
	for i := range a.f {
		a.f[i] = a.f[i]*scale + offset
	}
	return nil
}

// String returns a human-readable representation of the array.
func (a *Array) String() string {
	return fmt.Sprintf("Array[%s]%v", a.dtype, a.shape)
}
