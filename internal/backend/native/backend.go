// Package native implements the reference compute backend over dense
// float64 arrays, with kernels built on gonum.
package native

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/unitful-go/unitful/internal/quantity"
)

// Backend implements quantity.Backend over *Array payloads.
type Backend struct{}

// Verify that Backend implements the compute interface.
var _ quantity.Backend = (*Backend)(nil)

// New creates a native backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (n *Backend) Name() string {
	return "native"
}

// Supports reports whether the payload is a native Array.
func (n *Backend) Supports(p quantity.Payload) bool {
	_, ok := p.(*Array)
	return ok
}

// FromScalar wraps a scalar into a 0-d array.
func (n *Backend) FromScalar(v float64) quantity.Payload {
	return Scalar(v)
}

// ScalarValue extracts the value of a single-element float64 array.
func (n *Backend) ScalarValue(p quantity.Payload) (float64, bool) {
	a, ok := p.(*Array)
	if !ok || a.dtype != quantity.Float64 || len(a.f) != 1 {
		return 0, false
	}
	return a.f[0], true
}

// asArray rejects foreign payload types. The engine checks Supports
// before calling kernels, so this is a second line of defense for
// direct backend users.
func (n *Backend) asArray(p quantity.Payload) (*Array, error) {
	a, ok := p.(*Array)
	if !ok {
		return nil, &quantity.PayloadError{
			Arg:    -1,
			Reason: fmt.Sprintf("native backend cannot operate on %T", p),
		}
	}
	return a, nil
}

// asFloatArray additionally requires float64 storage.
func (n *Backend) asFloatArray(p quantity.Payload) (*Array, error) {
	a, err := n.asArray(p)
	if err != nil {
		return nil, err
	}
	if a.dtype != quantity.Float64 {
		return nil, fmt.Errorf("operation requires float64 storage, got %s", a.dtype)
	}
	return a, nil
}

// Scale applies a linear rescaling (unit conversion) out of place.
func (n *Backend) Scale(p quantity.Payload, scale, offset float64) (quantity.Payload, error) {
	a, err := n.asFloatArray(p)
	if err != nil {
		return nil, err
	}
	out := newFloat(a.shape)
	copy(out.f, a.f)
	floats.Scale(scale, out.f)
	if offset != 0 {
		floats.AddConst(offset, out.f)
	}
	return out, nil
}
