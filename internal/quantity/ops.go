package quantity

// Convenience operation methods. Each goes through the full dispatch
// pipeline, so unit checking, conversion and precedence arbitration
// behave exactly as with Engine.Dispatch.

// dispatchOne dispatches and returns the single quantity output.
func (q *Quantity) dispatchOne(op string, operands ...any) (*Quantity, error) {
	res, err := q.eng.Dispatch(op, operands...)
	if err != nil {
		return nil, err
	}
	if res.IsDeferred() {
		return nil, nil
	}
	return res.Quantity(), nil
}

// Add performs unit-checked element-wise addition. The other operand is
// converted to this quantity's unit first.
func (q *Quantity) Add(other any) (*Quantity, error) {
	return q.dispatchOne("add", q, other)
}

// Sub performs unit-checked element-wise subtraction.
func (q *Quantity) Sub(other any) (*Quantity, error) {
	return q.dispatchOne("subtract", q, other)
}

// Mul performs element-wise multiplication; the output unit is the
// product of the operand units.
func (q *Quantity) Mul(other any) (*Quantity, error) {
	return q.dispatchOne("multiply", q, other)
}

// Div performs element-wise division; the output unit is the quotient
// of the operand units.
func (q *Quantity) Div(other any) (*Quantity, error) {
	return q.dispatchOne("divide", q, other)
}

// MatMul performs matrix multiplication; the output unit is the product
// of the operand units.
func (q *Quantity) MatMul(other any) (*Quantity, error) {
	return q.dispatchOne("matmul", q, other)
}

// Sum reduces the quantity to its scalar total, keeping the unit.
func (q *Quantity) Sum() (*Quantity, error) {
	return q.dispatchOne("sum", q)
}

// Mean reduces the quantity to its scalar mean, keeping the unit.
func (q *Quantity) Mean() (*Quantity, error) {
	return q.dispatchOne("mean", q)
}

// Reshape returns the quantity with the same magnitudes in a new shape.
func (q *Quantity) Reshape(shape ...int) (*Quantity, error) {
	return q.dispatchOne("reshape", q, Shape(shape))
}
