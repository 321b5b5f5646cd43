package units

import (
	"math"

	"github.com/unitful-go/unitful/internal/quantity"
)

// sig builds a signature from a dimension→exponent map.
func sig(exps map[quantity.Dimension]int8) quantity.Dimensions {
	var out quantity.Dimensions
	for d, e := range exps {
		out[d] = e
	}
	return out
}

// registerBuiltins loads the built-in unit table. The coherent base is
// SI: meter, kilogram, second, ampere, kelvin, mole, candela, radian.
func registerBuiltins(r *Registry) {
	type def struct {
		name   string
		dims   quantity.Dimensions
		scale  float64
		offset float64
	}

	length := dim(quantity.Length, 1)
	mass := dim(quantity.Mass, 1)
	duration := dim(quantity.Time, 1)
	angle := dim(quantity.Angle, 1)

	defs := []def{
		// Dimensionless scales.
		{name: "percent", scale: 0.01},
		{name: "ppm", scale: 1e-6},

		// Angle.
		{name: "deg", dims: angle, scale: math.Pi / 180},

		// Length.
		{name: "m", dims: length, scale: 1},
		{name: "km", dims: length, scale: 1000},
		{name: "cm", dims: length, scale: 0.01},
		{name: "mm", dims: length, scale: 0.001},
		{name: "mi", dims: length, scale: 1609.344},
		{name: "ft", dims: length, scale: 0.3048},
		{name: "in", dims: length, scale: 0.0254},

		// Mass.
		{name: "kg", dims: mass, scale: 1},
		{name: "g", dims: mass, scale: 0.001},
		{name: "t", dims: mass, scale: 1000},
		{name: "lb", dims: mass, scale: 0.45359237},

		// Time.
		{name: "s", dims: duration, scale: 1},
		{name: "ms", dims: duration, scale: 0.001},
		{name: "min", dims: duration, scale: 60},
		{name: "h", dims: duration, scale: 3600},
		{name: "day", dims: duration, scale: 86400},

		// Remaining SI bases.
		{name: "A", dims: dim(quantity.Current, 1), scale: 1},
		{name: "K", dims: dim(quantity.Temperature, 1), scale: 1},
		{name: "degC", dims: dim(quantity.Temperature, 1), scale: 1, offset: 273.15},
		{name: "mol", dims: dim(quantity.Amount, 1), scale: 1},
		{name: "cd", dims: dim(quantity.Luminosity, 1), scale: 1},

		// Common derived units.
		{name: "Hz", dims: dim(quantity.Time, -1), scale: 1},
		{name: "N", dims: sig(map[quantity.Dimension]int8{
			quantity.Mass: 1, quantity.Length: 1, quantity.Time: -2,
		}), scale: 1},
		{name: "Pa", dims: sig(map[quantity.Dimension]int8{
			quantity.Mass: 1, quantity.Length: -1, quantity.Time: -2,
		}), scale: 1},
		{name: "J", dims: sig(map[quantity.Dimension]int8{
			quantity.Mass: 1, quantity.Length: 2, quantity.Time: -2,
		}), scale: 1},
		{name: "W", dims: sig(map[quantity.Dimension]int8{
			quantity.Mass: 1, quantity.Length: 2, quantity.Time: -3,
		}), scale: 1},
		{name: "L", dims: dim(quantity.Length, 3), scale: 0.001},
	}

	for _, d := range defs {
		r.mustDefine(d.name, d.dims, d.scale, d.offset)
	}
}
