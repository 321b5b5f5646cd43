package quantity

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockPayload is a minimal float64/bool payload for testing. It is a
// deliberately different representation from the native backend's
// Array, so tests can prove unit handling is payload-independent.
type MockPayload struct {
	shape Shape
	dtype DataType
	vals  []float64
	bools []bool
}

// NewMockPayload creates a float64 mock payload.
func NewMockPayload(vals []float64, shape Shape) *MockPayload {
	if shape.NumElements() != len(vals) {
		panic(fmt.Sprintf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(vals)))
	}
	return &MockPayload{shape: shape.Clone(), dtype: Float64, vals: vals}
}

// Shape returns the payload's shape.
func (p *MockPayload) Shape() Shape { return p.shape }

// DType returns the payload's element type.
func (p *MockPayload) DType() DataType { return p.dtype }

// NumElements returns the total element count.
func (p *MockPayload) NumElements() int { return p.shape.NumElements() }

// Values returns the float64 storage.
func (p *MockPayload) Values() []float64 { return p.vals }

// Bools returns the bool storage.
func (p *MockPayload) Bools() []bool { return p.bools }

// ScaleInPlace rescales the magnitudes in the existing storage.
func (p *MockPayload) ScaleInPlace(scale, offset float64) error {
	if p.dtype != Float64 {
		return fmt.Errorf("cannot rescale %s storage", p.dtype)
	}
	for i := range p.vals {
		p.vals[i] = p.vals[i]*scale + offset
	}
	return nil
}

// MockBackend is a naive reference backend over MockPayload. It
// implements every operation directly for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a MockBackend.
func NewMockBackend() *MockBackend { return &MockBackend{} }

// Name returns the backend name.
func (m *MockBackend) Name() string { return "mock" }

// Supports reports whether the payload is a MockPayload.
func (m *MockBackend) Supports(p Payload) bool {
	_, ok := p.(*MockPayload)
	return ok
}

// FromScalar wraps a scalar into a 0-d payload.
func (m *MockBackend) FromScalar(v float64) Payload {
	return NewMockPayload([]float64{v}, Shape{})
}

// ScalarValue extracts a single-element payload's value.
func (m *MockBackend) ScalarValue(p Payload) (float64, bool) {
	mp, ok := p.(*MockPayload)
	if !ok || mp.dtype != Float64 || len(mp.vals) != 1 {
		return 0, false
	}
	return mp.vals[0], true
}

func (m *MockBackend) asMock(p Payload) (*MockPayload, error) {
	mp, ok := p.(*MockPayload)
	if !ok {
		return nil, &PayloadError{Arg: -1, Reason: fmt.Sprintf("mock backend cannot operate on %T", p)}
	}
	return mp, nil
}

// Scale applies a linear rescaling out of place.
func (m *MockBackend) Scale(p Payload, scale, offset float64) (Payload, error) {
	mp, err := m.asMock(p)
	if err != nil {
		return nil, err
	}
	if mp.dtype != Float64 {
		return nil, fmt.Errorf("cannot rescale %s payload", mp.dtype)
	}
	out := make([]float64, len(mp.vals))
	for i, v := range mp.vals {
		out[i] = v*scale + offset
	}
	return NewMockPayload(out, mp.shape), nil
}

func (m *MockBackend) elementWise(a, b Payload, op func(x, y float64) float64) (Payload, error) {
	ma, err := m.asMock(a)
	if err != nil {
		return nil, err
	}
	mb, err := m.asMock(b)
	if err != nil {
		return nil, err
	}
	outShape, _, err := BroadcastShapes(ma.shape, mb.shape)
	if err != nil {
		return nil, err
	}
	out := make([]float64, outShape.NumElements())
	for i := range out {
		x := ma.vals[BroadcastIndex(i, outShape, ma.shape)]
		y := mb.vals[BroadcastIndex(i, outShape, mb.shape)]
		out[i] = op(x, y)
	}
	return NewMockPayload(out, outShape), nil
}

func (m *MockBackend) unary(x Payload, op func(v float64) float64) (Payload, error) {
	mx, err := m.asMock(x)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(mx.vals))
	for i, v := range mx.vals {
		out[i] = op(v)
	}
	return NewMockPayload(out, mx.shape), nil
}

func (m *MockBackend) compare(a, b Payload, pred func(x, y float64) bool) (Payload, error) {
	ma, err := m.asMock(a)
	if err != nil {
		return nil, err
	}
	mb, err := m.asMock(b)
	if err != nil {
		return nil, err
	}
	outShape, _, err := BroadcastShapes(ma.shape, mb.shape)
	if err != nil {
		return nil, err
	}
	out := make([]bool, outShape.NumElements())
	for i := range out {
		x := ma.vals[BroadcastIndex(i, outShape, ma.shape)]
		y := mb.vals[BroadcastIndex(i, outShape, mb.shape)]
		out[i] = pred(x, y)
	}
	return &MockPayload{shape: outShape, dtype: Bool, bools: out}, nil
}

func (m *MockBackend) reduce(x Payload, f func(vals []float64) float64) (Payload, error) {
	mx, err := m.asMock(x)
	if err != nil {
		return nil, err
	}
	if len(mx.vals) == 0 {
		return nil, fmt.Errorf("cannot reduce empty payload")
	}
	return m.FromScalar(f(mx.vals)), nil
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// Pow performs element-wise exponentiation.
func (m *MockBackend) Pow(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, math.Pow)
}

// Mod performs element-wise floored modulo.
func (m *MockBackend) Mod(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - math.Floor(x/y)*y })
}

// Atan2 performs element-wise two-argument arctangent.
func (m *MockBackend) Atan2(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, math.Atan2)
}

// Hypot performs element-wise Euclidean norm of two operands.
func (m *MockBackend) Hypot(a, b Payload) (Payload, error) {
	return m.elementWise(a, b, math.Hypot)
}

// Divmod returns element-wise floor quotient and remainder.
func (m *MockBackend) Divmod(a, b Payload) (Payload, Payload, error) {
	quo, err := m.elementWise(a, b, func(x, y float64) float64 { return math.Floor(x / y) })
	if err != nil {
		return nil, nil, err
	}
	rem, err := m.Mod(a, b)
	if err != nil {
		return nil, nil, err
	}
	return quo, rem, nil
}

// Neg negates element-wise.
func (m *MockBackend) Neg(x Payload) (Payload, error) {
	return m.unary(x, func(v float64) float64 { return -v })
}

// Abs takes element-wise absolute values.
func (m *MockBackend) Abs(x Payload) (Payload, error) { return m.unary(x, math.Abs) }

// Sqrt takes element-wise square roots.
func (m *MockBackend) Sqrt(x Payload) (Payload, error) { return m.unary(x, math.Sqrt) }

// Exp computes the element-wise exponential.
func (m *MockBackend) Exp(x Payload) (Payload, error) { return m.unary(x, math.Exp) }

// Log computes the element-wise natural logarithm.
func (m *MockBackend) Log(x Payload) (Payload, error) { return m.unary(x, math.Log) }

// Log2 computes the element-wise base-2 logarithm.
func (m *MockBackend) Log2(x Payload) (Payload, error) { return m.unary(x, math.Log2) }

// Log10 computes the element-wise base-10 logarithm.
func (m *MockBackend) Log10(x Payload) (Payload, error) { return m.unary(x, math.Log10) }

// Sin computes the element-wise sine.
func (m *MockBackend) Sin(x Payload) (Payload, error) { return m.unary(x, math.Sin) }

// Cos computes the element-wise cosine.
func (m *MockBackend) Cos(x Payload) (Payload, error) { return m.unary(x, math.Cos) }

// Tan computes the element-wise tangent.
func (m *MockBackend) Tan(x Payload) (Payload, error) { return m.unary(x, math.Tan) }

// Asin computes the element-wise inverse sine.
func (m *MockBackend) Asin(x Payload) (Payload, error) { return m.unary(x, math.Asin) }

// Acos computes the element-wise inverse cosine.
func (m *MockBackend) Acos(x Payload) (Payload, error) { return m.unary(x, math.Acos) }

// Atan computes the element-wise inverse tangent.
func (m *MockBackend) Atan(x Payload) (Payload, error) { return m.unary(x, math.Atan) }

// Floor rounds element-wise toward negative infinity.
func (m *MockBackend) Floor(x Payload) (Payload, error) { return m.unary(x, math.Floor) }

// Ceil rounds element-wise toward positive infinity.
func (m *MockBackend) Ceil(x Payload) (Payload, error) { return m.unary(x, math.Ceil) }

// Round rounds element-wise to the nearest integer.
func (m *MockBackend) Round(x Payload) (Payload, error) { return m.unary(x, math.Round) }

// Sum reduces to the scalar total.
func (m *MockBackend) Sum(x Payload) (Payload, error) {
	return m.reduce(x, func(vals []float64) float64 {
		total := 0.0
		for _, v := range vals {
			total += v
		}
		return total
	})
}

// Mean reduces to the scalar mean.
func (m *MockBackend) Mean(x Payload) (Payload, error) {
	return m.reduce(x, func(vals []float64) float64 {
		total := 0.0
		for _, v := range vals {
			total += v
		}
		return total / float64(len(vals))
	})
}

// Min reduces to the scalar minimum.
func (m *MockBackend) Min(x Payload) (Payload, error) {
	return m.reduce(x, func(vals []float64) float64 {
		lo := vals[0]
		for _, v := range vals[1:] {
			lo = math.Min(lo, v)
		}
		return lo
	})
}

// Max reduces to the scalar maximum.
func (m *MockBackend) Max(x Payload) (Payload, error) {
	return m.reduce(x, func(vals []float64) float64 {
		hi := vals[0]
		for _, v := range vals[1:] {
			hi = math.Max(hi, v)
		}
		return hi
	})
}

// MatMul performs naive 2D matrix multiplication.
func (m *MockBackend) MatMul(a, b Payload) (Payload, error) {
	ma, err := m.asMock(a)
	if err != nil {
		return nil, err
	}
	mb, err := m.asMock(b)
	if err != nil {
		return nil, err
	}
	if len(ma.shape) != 2 || len(mb.shape) != 2 {
		return nil, fmt.Errorf("matmul requires 2D payloads, got %v and %v", ma.shape, mb.shape)
	}
	if ma.shape[1] != mb.shape[0] {
		return nil, fmt.Errorf("incompatible shapes for matmul: %v @ %v", ma.shape, mb.shape)
	}
	rows, inner, cols := ma.shape[0], ma.shape[1], mb.shape[1]
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += ma.vals[i*inner+k] * mb.vals[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}
	return NewMockPayload(out, Shape{rows, cols}), nil
}

// Reshape returns the payload with a new shape.
func (m *MockBackend) Reshape(x Payload, shape Shape) (Payload, error) {
	mx, err := m.asMock(x)
	if err != nil {
		return nil, err
	}
	if shape.NumElements() != mx.NumElements() {
		return nil, fmt.Errorf("cannot reshape %v to %v", mx.shape, shape)
	}
	return NewMockPayload(mx.vals, shape), nil
}

// Transpose permutes dimensions; with no axes all dimensions reverse.
func (m *MockBackend) Transpose(x Payload, axes ...int) (Payload, error) {
	mx, err := m.asMock(x)
	if err != nil {
		return nil, err
	}
	n := len(mx.shape)
	if len(axes) == 0 {
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	if len(axes) != n {
		return nil, fmt.Errorf("transpose needs %d axes, got %d", n, len(axes))
	}
	outShape := make(Shape, n)
	for i, ax := range axes {
		if ax < 0 || ax >= n {
			return nil, fmt.Errorf("transpose axis %d out of range for %d dimensions", ax, n)
		}
		outShape[i] = mx.shape[ax]
	}
	inStrides := mx.shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	out := make([]float64, len(mx.vals))
	for i := range out {
		temp := i
		srcIdx := 0
		for d := 0; d < n; d++ {
			idx := temp / outStrides[d]
			temp %= outStrides[d]
			srcIdx += idx * inStrides[axes[d]]
		}
		out[i] = mx.vals[srcIdx]
	}
	return NewMockPayload(out, outShape), nil
}

// Concat concatenates payloads along a dimension.
func (m *MockBackend) Concat(xs []Payload, dim int) (Payload, error) {
	if dim != 0 {
		return nil, fmt.Errorf("mock backend concatenates along dimension 0 only")
	}
	var (
		out   []float64
		shape Shape
	)
	for i, x := range xs {
		mx, err := m.asMock(x)
		if err != nil {
			return nil, err
		}
		sh := mx.shape
		if len(sh) == 0 {
			sh = Shape{1}
		}
		if i == 0 {
			shape = sh.Clone()
		} else {
			if !sh[1:].Equal(shape[1:]) {
				return nil, fmt.Errorf("argument %d has shape %v, incompatible with %v", i, mx.shape, shape)
			}
			shape[0] += sh[0]
		}
		out = append(out, mx.vals...)
	}
	return NewMockPayload(out, shape), nil
}

// Stack joins payloads along a new leading dimension.
func (m *MockBackend) Stack(xs []Payload, dim int) (Payload, error) {
	if dim != 0 {
		return nil, fmt.Errorf("mock backend stacks along dimension 0 only")
	}
	var (
		out   []float64
		inner Shape
	)
	for i, x := range xs {
		mx, err := m.asMock(x)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			inner = mx.shape.Clone()
		} else if !mx.shape.Equal(inner) {
			return nil, fmt.Errorf("argument %d has shape %v, want %v", i, mx.shape, inner)
		}
		out = append(out, mx.vals...)
	}
	return NewMockPayload(out, append(Shape{len(xs)}, inner...)), nil
}

// Greater compares element-wise a > b.
func (m *MockBackend) Greater(a, b Payload) (Payload, error) {
	return m.compare(a, b, func(x, y float64) bool { return x > y })
}

// GreaterEqual compares element-wise a >= b.
func (m *MockBackend) GreaterEqual(a, b Payload) (Payload, error) {
	return m.compare(a, b, func(x, y float64) bool { return x >= y })
}

// Less compares element-wise a < b.
func (m *MockBackend) Less(a, b Payload) (Payload, error) {
	return m.compare(a, b, func(x, y float64) bool { return x < y })
}

// LessEqual compares element-wise a <= b.
func (m *MockBackend) LessEqual(a, b Payload) (Payload, error) {
	return m.compare(a, b, func(x, y float64) bool { return x <= y })
}

// Equal compares element-wise a == b.
func (m *MockBackend) Equal(a, b Payload) (Payload, error) {
	return m.compare(a, b, func(x, y float64) bool { return x == y })
}

// NotEqual compares element-wise a != b.
func (m *MockBackend) NotEqual(a, b Payload) (Payload, error) {
	return m.compare(a, b, func(x, y float64) bool { return x != y })
}

// Where selects elements from x or y based on a bool condition.
func (m *MockBackend) Where(cond, x, y Payload) (Payload, error) {
	mc, err := m.asMock(cond)
	if err != nil {
		return nil, err
	}
	if mc.dtype != Bool {
		return nil, fmt.Errorf("where condition must be bool, got %s", mc.dtype)
	}
	mx, err := m.asMock(x)
	if err != nil {
		return nil, err
	}
	my, err := m.asMock(y)
	if err != nil {
		return nil, err
	}
	outShape, _, err := BroadcastShapes(mx.shape, my.shape)
	if err != nil {
		return nil, err
	}
	outShape, _, err = BroadcastShapes(outShape, mc.shape)
	if err != nil {
		return nil, err
	}
	out := make([]float64, outShape.NumElements())
	for i := range out {
		if mc.bools[BroadcastIndex(i, outShape, mc.shape)] {
			out[i] = mx.vals[BroadcastIndex(i, outShape, mx.shape)]
		} else {
			out[i] = my.vals[BroadcastIndex(i, outShape, my.shape)]
		}
	}
	return NewMockPayload(out, outShape), nil
}
