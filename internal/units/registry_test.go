package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitful-go/unitful/internal/quantity"
)

func TestUnitResolution(t *testing.T) {
	r := New()

	m, err := r.Unit("m")
	require.NoError(t, err)
	assert.Equal(t, "m", m.String())

	_, err = r.Unit("furlong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	assert.Panics(t, func() { r.MustUnit("furlong") })
}

func TestDefineRejectsDuplicates(t *testing.T) {
	r := New()

	_, err := r.Define("m", dim(quantity.Length, 1), 1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateUnit)

	_, err = r.Define("bogus", dim(quantity.Length, 1), -2, 0)
	require.Error(t, err, "non-positive scale")
}

func TestConversionFactors(t *testing.T) {
	r := New()

	tests := []struct {
		from, to string
		scale    float64
		offset   float64
	}{
		{from: "km", to: "m", scale: 1000},
		{from: "m", to: "cm", scale: 100},
		{from: "mi", to: "km", scale: 1.609344},
		{from: "h", to: "s", scale: 3600},
		{from: "lb", to: "g", scale: 453.59237},
		{from: "deg", to: "rad", scale: math.Pi / 180},
		{from: "percent", to: "dimensionless", scale: 0.01},
		{from: "degC", to: "K", scale: 1, offset: 273.15},
		{from: "K", to: "degC", scale: 1, offset: -273.15},
	}

	for _, tt := range tests {
		t.Run(tt.from+"→"+tt.to, func(t *testing.T) {
			conv, err := r.Conversion(r.MustUnit(tt.from), r.MustUnit(tt.to))
			require.NoError(t, err)
			assert.InDelta(t, tt.scale, conv.Scale, 1e-12)
			assert.InDelta(t, tt.offset, conv.Offset, 1e-9)
		})
	}
}

func TestConversionIncompatible(t *testing.T) {
	r := New()

	_, err := r.Conversion(r.MustUnit("m"), r.MustUnit("kg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)

	var de *quantity.DimensionError
	require.ErrorAs(t, err, &de)
	assert.EqualValues(t, 1, de.FromDims[quantity.Length])
	assert.EqualValues(t, 1, de.ToDims[quantity.Mass])
}

func TestConversionRejectsForeignToken(t *testing.T) {
	r := New()

	_, err := r.Conversion(foreignUnit{}, r.MustUnit("m"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

type foreignUnit struct{}

func (foreignUnit) String() string { return "foreign" }

func TestDimensionality(t *testing.T) {
	r := New()

	dims, err := r.Dimensionality(r.MustUnit("N"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, dims[quantity.Mass])
	assert.EqualValues(t, 1, dims[quantity.Length])
	assert.EqualValues(t, -2, dims[quantity.Time])

	assert.True(t, r.IsDimensionless(r.MustUnit("percent")))
	assert.False(t, r.IsDimensionless(r.MustUnit("m")))
	assert.True(t, r.IsDimensionless(nil), "nil unit reads as dimensionless")
}

func TestCompositeUnits(t *testing.T) {
	r := New()
	m, s := r.MustUnit("m"), r.MustUnit("s")

	prod, err := r.Mul(m, s)
	require.NoError(t, err)
	assert.Equal(t, "m·s", prod.String())

	speed, err := r.Div(m, s)
	require.NoError(t, err)
	assert.Equal(t, "m/s", speed.String())
	dims, err := r.Dimensionality(speed)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dims[quantity.Length])
	assert.EqualValues(t, -1, dims[quantity.Time])

	// km/h to m/s carries the composed scale.
	kmh, err := r.Div(r.MustUnit("km"), r.MustUnit("h"))
	require.NoError(t, err)
	conv, err := r.Conversion(kmh, speed)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/3600.0, conv.Scale, 1e-12)
}

func TestMulByCanonicalDimensionless(t *testing.T) {
	r := New()
	m := r.MustUnit("m")

	out, err := r.Mul(m, r.Dimensionless())
	require.NoError(t, err)
	assert.Same(t, m, out)

	out, err = r.Div(m, r.Dimensionless())
	require.NoError(t, err)
	assert.Same(t, m, out)
}

func TestPowAndRoot(t *testing.T) {
	r := New()
	m := r.MustUnit("m")

	area, err := r.Pow(m, 2)
	require.NoError(t, err)
	dims, err := r.Dimensionality(area)
	require.NoError(t, err)
	assert.EqualValues(t, 2, dims[quantity.Length])

	back, err := r.Root(area, 2)
	require.NoError(t, err)
	dims, err = r.Dimensionality(back)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dims[quantity.Length])

	_, err = r.Root(m, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrIncompatibleDimensions)

	same, err := r.Pow(m, 1)
	require.NoError(t, err)
	assert.Same(t, m, same)

	none, err := r.Pow(m, 0)
	require.NoError(t, err)
	assert.Same(t, r.Dimensionless(), none)
}

func TestOffsetUnitsCannotCompose(t *testing.T) {
	r := New()
	degC := r.MustUnit("degC")

	_, err := r.Mul(degC, r.MustUnit("s"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetUnit)

	_, err = r.Div(r.MustUnit("s"), degC)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetUnit)

	_, err = r.Pow(degC, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOffsetUnit)
}
