package quantity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitful-go/unitful/internal/quantity"
	"github.com/unitful-go/unitful/internal/units"
)

// newEngine builds an engine over the built-in registry and the mock
// backend.
func newEngine(t *testing.T) (*quantity.Engine, *units.Registry) {
	t.Helper()
	reg := units.New()
	return quantity.New(reg, quantity.NewMockBackend()), reg
}

// wrap builds a quantity from float values; unit "" means dimensionless.
func wrap(t *testing.T, eng *quantity.Engine, reg *units.Registry, vals []float64, shape quantity.Shape, unitName string) *quantity.Quantity {
	t.Helper()
	var u quantity.Unit
	if unitName != "" {
		u = reg.MustUnit(unitName)
	}
	q, err := eng.Wrap(quantity.NewMockPayload(vals, shape), u)
	require.NoError(t, err)
	return q
}

func values(t *testing.T, q *quantity.Quantity) []float64 {
	t.Helper()
	require.NotNil(t, q)
	mp, ok := q.Payload().(*quantity.MockPayload)
	require.True(t, ok, "payload is %T, want *MockPayload", q.Payload())
	return mp.Values()
}

func TestConvertToRoundTrip(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "m")

	cm, err := q.ConvertTo(reg.MustUnit("cm"))
	require.NoError(t, err)
	assert.InDelta(t, 300, values(t, cm)[0], 1e-12)

	back, err := cm.ConvertTo(reg.MustUnit("m"))
	require.NoError(t, err)
	assert.InDelta(t, 3, values(t, back)[0], 1e-12)
	assert.Equal(t, "m", back.Unit().String())
}

func TestConvertToIncompatible(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "m")

	_, err := q.ConvertTo(reg.MustUnit("s"))
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)

	var de *quantity.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "m", de.From.String())
	assert.Equal(t, "s", de.To.String())
}

func TestConvertToOffsetUnit(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{25}, quantity.Shape{}, "degC")

	k, err := q.ConvertTo(reg.MustUnit("K"))
	require.NoError(t, err)
	assert.InDelta(t, 298.15, values(t, k)[0], 1e-9)

	back, err := k.ConvertTo(reg.MustUnit("degC"))
	require.NoError(t, err)
	assert.InDelta(t, 25, values(t, back)[0], 1e-9)
}

func TestConvertToInPlace(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "km")

	require.NoError(t, q.ConvertToInPlace(reg.MustUnit("m")))
	assert.InDelta(t, 2000, values(t, q)[0], 1e-12)
	assert.Equal(t, "m", q.Unit().String())
}

func TestDispatchAddConvertsToPrimary(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{50}, quantity.Shape{}, "cm")

	res, err := eng.Dispatch("add", x, y)
	require.NoError(t, err)
	sum := res.Quantity()
	assert.InDelta(t, 1.5, values(t, sum)[0], 1e-12)
	assert.Equal(t, "m", sum.Unit().String())
}

func TestDispatchAddIncompatible(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "s")

	_, err := eng.Dispatch("add", x, y)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)

	var de *quantity.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "add", de.Op)
	assert.Equal(t, 1, de.Arg)
}

func TestHypotUnitInvariance(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{3, 4}, quantity.Shape{2}, "m")
	y := wrap(t, eng, reg, []float64{400, 300}, quantity.Shape{2}, "cm")

	res, err := eng.Dispatch("hypot", x, y)
	require.NoError(t, err)
	h := res.Quantity()
	assert.Equal(t, "m", h.Unit().String())
	got := values(t, h)
	assert.InDelta(t, 5, got[0], 1e-12)
	assert.InDelta(t, 5, got[1], 1e-12)
}

func TestForcedDimensionlessAcceptsScaledUnit(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{50}, quantity.Shape{}, "percent")

	res, err := eng.Dispatch("exp", q)
	require.NoError(t, err)
	out := res.Quantity()
	assert.InDelta(t, math.Exp(0.5), values(t, out)[0], 1e-12)
	assert.Equal(t, "dimensionless", out.Unit().String())
}

func TestForcedDimensionlessRejectsUnitedInput(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "m")

	_, err := eng.Dispatch("exp", q)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)

	var de *quantity.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "exp", de.Op)
	assert.Equal(t, 0, de.Arg)
}

func TestAngleRoleConvertsDegrees(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{90}, quantity.Shape{}, "deg")

	res, err := eng.Dispatch("sin", q)
	require.NoError(t, err)
	assert.InDelta(t, 1, values(t, res.Quantity())[0], 1e-12)
}

func TestAngleRoleTakesDimensionlessAsRadians(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{math.Pi / 2}, quantity.Shape{}, "")

	res, err := eng.Dispatch("sin", q)
	require.NoError(t, err)
	assert.InDelta(t, 1, values(t, res.Quantity())[0], 1e-12)
}

func TestAngleRoleRejectsUnitedInput(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "kg")

	_, err := eng.Dispatch("cos", q)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)
}

func TestArcsinProducesAngle(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "")

	res, err := eng.Dispatch("arcsin", q)
	require.NoError(t, err)
	out := res.Quantity()
	assert.Equal(t, "rad", out.Unit().String())
	assert.InDelta(t, math.Pi/2, values(t, out)[0], 1e-12)
}

func TestArctan2MatchesUnits(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{100}, quantity.Shape{}, "cm")

	res, err := eng.Dispatch("arctan2", x, y)
	require.NoError(t, err)
	out := res.Quantity()
	assert.Equal(t, "rad", out.Unit().String())
	assert.InDelta(t, math.Pi/4, values(t, out)[0], 1e-12)
}

func TestMultiplyDerivesSignature(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "s")

	res, err := eng.Dispatch("multiply", x, y)
	require.NoError(t, err)
	out := res.Quantity()
	assert.InDelta(t, 6, values(t, out)[0], 1e-12)

	dims, err := out.Dimensionality()
	require.NoError(t, err)
	assert.EqualValues(t, 1, dims[quantity.Length])
	assert.EqualValues(t, 1, dims[quantity.Time])
}

func TestDivideDerivesQuotient(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{10}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "s")

	out, err := x.Div(y)
	require.NoError(t, err)
	assert.InDelta(t, 5, values(t, out)[0], 1e-12)
	assert.Equal(t, "m/s", out.Unit().String())

	dims, err := out.Dimensionality()
	require.NoError(t, err)
	assert.EqualValues(t, 1, dims[quantity.Length])
	assert.EqualValues(t, -1, dims[quantity.Time])
}

func TestMultiplyBareScalar(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "m")

	out, err := x.Mul(2.0)
	require.NoError(t, err)
	assert.InDelta(t, 6, values(t, out)[0], 1e-12)
	assert.Equal(t, "m", out.Unit().String())
}

func TestPowerDerivesUnit(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "m")

	res, err := eng.Dispatch("power", x, 2)
	require.NoError(t, err)
	out := res.Quantity()
	assert.InDelta(t, 9, values(t, out)[0], 1e-12)

	dims, err := out.Dimensionality()
	require.NoError(t, err)
	assert.EqualValues(t, 2, dims[quantity.Length])
}

func TestPowerDimensionlessBase(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "")

	res, err := eng.Dispatch("power", x, 3.7)
	require.NoError(t, err)
	out := res.Quantity()
	assert.InDelta(t, math.Pow(2, 3.7), values(t, out)[0], 1e-12)
	assert.Equal(t, "dimensionless", out.Unit().String())
}

func TestPowerRejectsFractionalOnUnitedBase(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{4}, quantity.Shape{}, "m")

	_, err := eng.Dispatch("power", x, 0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)
}

func TestSqrtRootsSignature(t *testing.T) {
	eng, reg := newEngine(t)
	a := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "m")
	b := wrap(t, eng, reg, []float64{8}, quantity.Shape{}, "m")

	area, err := a.Mul(b)
	require.NoError(t, err)

	res, err := eng.Dispatch("sqrt", area)
	require.NoError(t, err)
	out := res.Quantity()
	assert.InDelta(t, 4, values(t, out)[0], 1e-12)

	dims, err := out.Dimensionality()
	require.NoError(t, err)
	assert.EqualValues(t, 1, dims[quantity.Length])
}

func TestSqrtRejectsOddExponent(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{9}, quantity.Shape{}, "m")

	_, err := eng.Dispatch("sqrt", q)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)
}

func TestComparisonReturnsBarePayload(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{250}, quantity.Shape{}, "cm")

	res, err := eng.Dispatch("greater", x, y)
	require.NoError(t, err)
	assert.Nil(t, res.Quantity(), "comparison output carries no unit")

	mp, ok := res.Payload().(*quantity.MockPayload)
	require.True(t, ok)
	assert.Equal(t, quantity.Bool, mp.DType())
	assert.Equal(t, []bool{true}, mp.Bools())
}

func TestDivmodOutputs(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{7}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{200}, quantity.Shape{}, "cm")

	res, err := eng.Dispatch("divmod", x, y)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())

	quo := res.QuantityAt(0)
	assert.Equal(t, "dimensionless", quo.Unit().String())
	assert.InDelta(t, 3, values(t, quo)[0], 1e-12)

	rem := res.QuantityAt(1)
	assert.Equal(t, "m", rem.Unit().String())
	assert.InDelta(t, 1, values(t, rem)[0], 1e-12)
}

func TestWhereDropsConditionUnit(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{1, 4}, quantity.Shape{2}, "m")
	y := wrap(t, eng, reg, []float64{200, 300}, quantity.Shape{2}, "cm")

	cmp, err := eng.Dispatch("greater", x, y)
	require.NoError(t, err)

	res, err := eng.Dispatch("where", cmp.Payload(), x, y)
	require.NoError(t, err)
	out := res.Quantity()
	assert.Equal(t, "m", out.Unit().String())
	got := values(t, out)
	assert.InDelta(t, 2, got[0], 1e-12) // x[0] < y[0], take y converted to m
	assert.InDelta(t, 4, got[1], 1e-12) // x[1] > y[1], take x
}

func TestVariadicConcatenateConverts(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{1, 2}, quantity.Shape{2}, "m")
	y := wrap(t, eng, reg, []float64{300}, quantity.Shape{1}, "cm")

	res, err := eng.Dispatch("concatenate", x, y)
	require.NoError(t, err)
	out := res.Quantity()
	assert.Equal(t, quantity.Shape{3}, out.Shape())
	assert.Equal(t, "m", out.Unit().String())
	assert.InDeltaSlice(t, []float64{1, 2, 3}, values(t, out), 1e-12)
}

func TestVariadicStackMismatchIdentifiesOffender(t *testing.T) {
	eng, reg := newEngine(t)
	a := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")
	b := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "km")
	c := wrap(t, eng, reg, []float64{3}, quantity.Shape{}, "s")

	_, err := eng.Dispatch("stack", a, b, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)

	var de *quantity.DimensionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "stack", de.Op)
	assert.Equal(t, 2, de.Arg)
}

func TestStackJoinsAlongNewDimension(t *testing.T) {
	eng, reg := newEngine(t)
	a := wrap(t, eng, reg, []float64{1, 2}, quantity.Shape{2}, "m")
	b := wrap(t, eng, reg, []float64{300, 400}, quantity.Shape{2}, "cm")

	res, err := eng.Dispatch("stack", a, b)
	require.NoError(t, err)
	out := res.Quantity()
	assert.Equal(t, quantity.Shape{2, 2}, out.Shape())
	assert.InDeltaSlice(t, []float64{1, 2, 3, 4}, values(t, out), 1e-12)
}

func TestMatMulDerivesUnit(t *testing.T) {
	eng, reg := newEngine(t)
	a := wrap(t, eng, reg, []float64{1, 2, 3, 4}, quantity.Shape{2, 2}, "m")
	b := wrap(t, eng, reg, []float64{5, 6, 7, 8}, quantity.Shape{2, 2}, "s")

	out, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, quantity.Shape{2, 2}, out.Shape())
	assert.InDeltaSlice(t, []float64{19, 22, 43, 50}, values(t, out), 1e-12)
	assert.Equal(t, "m·s", out.Unit().String())
}

func TestReshapeKeepsUnit(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{1, 2, 3, 4, 5, 6}, quantity.Shape{2, 3}, "m")

	out, err := q.Reshape(3, 2)
	require.NoError(t, err)
	assert.Equal(t, quantity.Shape{3, 2}, out.Shape())
	assert.Equal(t, "m", out.Unit().String())
}

func TestReductionsKeepUnit(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{1, 2, 3}, quantity.Shape{3}, "m")

	sum, err := q.Sum()
	require.NoError(t, err)
	assert.InDelta(t, 6, values(t, sum)[0], 1e-12)
	assert.Equal(t, "m", sum.Unit().String())

	mean, err := q.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 2, values(t, mean)[0], 1e-12)
}

func TestDeferOnUpcastType(t *testing.T) {
	type upstream struct{}

	eng, reg := newEngine(t)
	require.NoError(t, eng.Arbiter().RegisterUpcast(&upstream{}))
	q := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")

	res, err := eng.Dispatch("add", q, &upstream{})
	require.NoError(t, err)
	assert.True(t, res.IsDeferred())
	assert.Same(t, quantity.Deferred, res)
}

func TestDeferWithoutQuantityOperand(t *testing.T) {
	eng, _ := newEngine(t)

	res, err := eng.Dispatch("add", 1.0, 2.0)
	require.NoError(t, err)
	assert.True(t, res.IsDeferred())
}

func TestUnsupportedOperation(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")

	_, err := eng.Dispatch("fourier", q)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrUnsupportedOperation)

	var oe *quantity.OperationError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "fourier", oe.Op)
}

func TestUnsupportedPayloadOperand(t *testing.T) {
	eng, reg := newEngine(t)
	q := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")

	_, err := eng.Dispatch("add", q, "not a magnitude")
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrUnsupportedPayload)

	var pe *quantity.PayloadError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Arg)
}

func TestWrapRejectsForeignPayload(t *testing.T) {
	eng, reg := newEngine(t)

	_, err := eng.Wrap(foreignPayload{}, reg.MustUnit("m"))
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrUnsupportedPayload)
}

// foreignPayload satisfies Payload but belongs to no backend.
type foreignPayload struct{}

func (foreignPayload) Shape() quantity.Shape    { return quantity.Shape{} }
func (foreignPayload) DType() quantity.DataType { return quantity.Float64 }
func (foreignPayload) NumElements() int         { return 1 }

func TestDispatchIsStateless(t *testing.T) {
	eng, reg := newEngine(t)
	x := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "m")
	y := wrap(t, eng, reg, []float64{1}, quantity.Shape{}, "s")

	_, err := eng.Dispatch("add", x, y)
	require.Error(t, err)

	// A failed call leaves no residue: the same operands still work for
	// a compatible operation afterwards.
	res, err := eng.Dispatch("multiply", x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1, values(t, res.Quantity())[0], 1e-12)
	assert.InDeltaSlice(t, []float64{1}, values(t, x), 1e-12)
	assert.InDeltaSlice(t, []float64{1}, values(t, y), 1e-12)
}

func TestCustomTableRegistration(t *testing.T) {
	reg := units.New()
	table := quantity.DefaultTable()
	require.NoError(t, table.Register(&quantity.Spec{
		Name:  "double",
		Roles: []quantity.Role{quantity.RolePrimary},
		Outs:  []quantity.OutRule{{Kind: quantity.OutPrimary}},
		Kernel: func(b quantity.Backend, args []quantity.Payload, _ []any) ([]quantity.Payload, error) {
			out, err := b.Add(args[0], args[0])
			if err != nil {
				return nil, err
			}
			return []quantity.Payload{out}, nil
		},
	}))

	eng := quantity.New(reg, quantity.NewMockBackend(), quantity.WithTable(table))
	q := wrap(t, eng, reg, []float64{2}, quantity.Shape{}, "m")

	res, err := eng.Dispatch("double", q)
	require.NoError(t, err)
	assert.InDelta(t, 4, values(t, res.Quantity())[0], 1e-12)
	assert.Equal(t, "m", res.Quantity().Unit().String())
}

func TestDeferredErrorIsNotAnError(t *testing.T) {
	eng, _ := newEngine(t)

	res, err := eng.Dispatch("add", "x", "y")
	require.NoError(t, err)
	require.True(t, res.IsDeferred())
	assert.False(t, errors.Is(err, quantity.ErrUnsupportedOperation))
	assert.Nil(t, res.Quantity())
	assert.Nil(t, res.Payload())
}
