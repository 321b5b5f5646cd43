package quantity

import "fmt"

// Quantity pairs a bare magnitude payload with a unit. A Quantity's
// unit is always defined: dimensionless is itself a valid unit, never
// the absence of one.
//
// Quantities are logically immutable: operations that change the unit
// or magnitude produce a new Quantity. The only exception is
// ConvertToInPlace, which re-validates that the payload's storage can
// represent the rescaled magnitudes.
type Quantity struct {
	payload Payload
	unit    Unit
	eng     *Engine
}

// Unit returns the quantity's unit.
func (q *Quantity) Unit() Unit {
	return q.unit
}

// Payload returns the bare magnitude.
func (q *Quantity) Payload() Payload {
	return q.payload
}

// Shape returns the payload's shape by delegation.
func (q *Quantity) Shape() Shape {
	return q.payload.Shape()
}

// DType returns the payload's element type by delegation.
func (q *Quantity) DType() DataType {
	return q.payload.DType()
}

// NumElements returns the payload's total element count.
func (q *Quantity) NumElements() int {
	return q.payload.NumElements()
}

// Dimensionality returns the dimensional signature of the unit,
// independent of the magnitude.
func (q *Quantity) Dimensionality() (Dimensions, error) {
	return q.eng.registry.Dimensionality(q.unit)
}

// ConvertTo returns a new Quantity with the magnitude rescaled to the
// target unit. It fails with an error wrapping
// ErrIncompatibleDimensions when the two units have different
// dimensional signatures.
//
// Converting and converting back reproduces the original magnitude up
// to the numeric precision of the backend.
func (q *Quantity) ConvertTo(target Unit) (*Quantity, error) {
	conv, err := q.eng.registry.Conversion(q.unit, target)
	if err != nil {
		return nil, err
	}
	if conv.Identity() {
		return &Quantity{payload: q.payload, unit: target, eng: q.eng}, nil
	}
	scaled, err := q.eng.backend.Scale(q.payload, conv.Scale, conv.Offset)
	if err != nil {
		return nil, fmt.Errorf("convert %q to %q: %w", q.unit, target, err)
	}
	return &Quantity{payload: scaled, unit: target, eng: q.eng}, nil
}

// MustConvertTo is like ConvertTo but panics on error.
func (q *Quantity) MustConvertTo(target Unit) *Quantity {
	out, err := q.ConvertTo(target)
	if err != nil {
		panic(err)
	}
	return out
}

// ConvertToInPlace rescales the magnitude in its existing storage. The
// payload must support in-place rescaling; payloads that cannot
// represent the conversion (for example bool storage) fail with an
// error wrapping ErrUnsupportedPayload.
func (q *Quantity) ConvertToInPlace(target Unit) error {
	conv, err := q.eng.registry.Conversion(q.unit, target)
	if err != nil {
		return err
	}
	scaler, ok := q.payload.(InPlaceScaler)
	if !ok {
		return &PayloadError{
			Arg:    -1,
			Reason: fmt.Sprintf("payload %T does not support in-place rescaling", q.payload),
		}
	}
	if !conv.Identity() {
		if err := scaler.ScaleInPlace(conv.Scale, conv.Offset); err != nil {
			return fmt.Errorf("convert %q to %q in place: %w", q.unit, target, err)
		}
	}
	q.unit = target
	return nil
}

// Engine returns the engine this quantity is bound to.
func (q *Quantity) Engine() *Engine {
	return q.eng
}

// String returns a human-readable representation of the quantity.
func (q *Quantity) String() string {
	return fmt.Sprintf("Quantity(shape=%v, dtype=%s, unit=%q)", q.Shape(), q.DType(), q.unit)
}
