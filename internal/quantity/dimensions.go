package quantity

import (
	"fmt"
	"strings"
)

// Dimension identifies one base physical dimension.
type Dimension int

// Base dimensions. Angle is carried as an explicit dimension so that
// angle-consuming operations can gate on it rather than on unit names.
const (
	Length Dimension = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity
	Angle

	// NumDimensions is the number of base dimensions.
	NumDimensions
)

// String returns the dimension name.
func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Time:
		return "time"
	case Current:
		return "current"
	case Temperature:
		return "temperature"
	case Amount:
		return "amount"
	case Luminosity:
		return "luminosity"
	case Angle:
		return "angle"
	default:
		return "unknown"
	}
}

// Dimensions is a dimensional signature: a vector of integer exponents
// over the base dimensions. The zero value is dimensionless.
type Dimensions [NumDimensions]int8

// IsZero reports whether every exponent is zero (dimensionless).
func (d Dimensions) IsZero() bool {
	return d == Dimensions{}
}

// Add returns the signature of a product of units.
func (d Dimensions) Add(other Dimensions) Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = d[i] + other[i]
	}
	return out
}

// Sub returns the signature of a quotient of units.
func (d Dimensions) Sub(other Dimensions) Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = d[i] - other[i]
	}
	return out
}

// Scale returns the signature of a unit raised to the power n.
func (d Dimensions) Scale(n int) Dimensions {
	var out Dimensions
	for i := range d {
		out[i] = d[i] * int8(n)
	}
	return out
}

// Root returns the signature of the n-th root of a unit. It fails when
// any exponent is not divisible by n, since signatures carry integer
// exponents only.
func (d Dimensions) Root(n int) (Dimensions, error) {
	if n <= 0 {
		return Dimensions{}, fmt.Errorf("invalid root order %d", n)
	}
	var out Dimensions
	for i := range d {
		if int(d[i])%n != 0 {
			return Dimensions{}, fmt.Errorf("signature %s has no integer %d-th root", d, n)
		}
		out[i] = d[i] / int8(n)
	}
	return out, nil
}

// String formats the signature like "[length]·[time]^-2".
// A zero signature formats as "[dimensionless]".
func (d Dimensions) String() string {
	var parts []string
	for i, exp := range d {
		if exp == 0 {
			continue
		}
		if exp == 1 {
			parts = append(parts, fmt.Sprintf("[%s]", Dimension(i)))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]^%d", Dimension(i), exp))
		}
	}
	if len(parts) == 0 {
		return "[dimensionless]"
	}
	return strings.Join(parts, "·")
}
