package native

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/unitful-go/unitful/internal/quantity"
)

// reduce collapses float64 storage to a 0-d scalar array.
func (n *Backend) reduce(x quantity.Payload, f func(vals []float64) float64) (quantity.Payload, error) {
	fx, err := n.asFloatArray(x)
	if err != nil {
		return nil, err
	}
	if len(fx.f) == 0 {
		return nil, fmt.Errorf("cannot reduce an empty array")
	}
	return Scalar(f(fx.f)), nil
}

// Sum reduces to the scalar total.
func (n *Backend) Sum(x quantity.Payload) (quantity.Payload, error) {
	return n.reduce(x, floats.Sum)
}

// Mean reduces to the scalar mean.
func (n *Backend) Mean(x quantity.Payload) (quantity.Payload, error) {
	return n.reduce(x, func(vals []float64) float64 {
		return stat.Mean(vals, nil)
	})
}

// Min reduces to the scalar minimum.
func (n *Backend) Min(x quantity.Payload) (quantity.Payload, error) {
	return n.reduce(x, floats.Min)
}

// Max reduces to the scalar maximum.
func (n *Backend) Max(x quantity.Payload) (quantity.Payload, error) {
	return n.reduce(x, floats.Max)
}
