package quantity

// Result is the outcome of one dispatched operation: either the
// deferred sentinel, or one or more outputs. Each output is a *Quantity
// for unit-bearing results or a bare Payload for unitless predicate
// results.
type Result struct {
	deferred bool
	outputs  []any
}

// Deferred is the "not my operation" sentinel: the arbiter found an
// operand whose type outranks this layer, and the caller should hand
// the operation to that operand's own dispatcher. It is a control
// value, not a failure.
var Deferred = &Result{deferred: true}

// IsDeferred reports whether this result is the defer sentinel.
func (r *Result) IsDeferred() bool {
	return r.deferred
}

// Len returns the number of outputs.
func (r *Result) Len() int {
	return len(r.outputs)
}

// Output returns the i-th output, a *Quantity or a bare Payload.
func (r *Result) Output(i int) any {
	return r.outputs[i]
}

// Quantity returns the first output as a *Quantity, or nil if the
// result is deferred or the output is a bare payload.
func (r *Result) Quantity() *Quantity {
	return r.QuantityAt(0)
}

// QuantityAt returns the i-th output as a *Quantity, or nil.
func (r *Result) QuantityAt(i int) *Quantity {
	if i < 0 || i >= len(r.outputs) {
		return nil
	}
	q, _ := r.outputs[i].(*Quantity)
	return q
}

// Payload returns the first output's payload: the bare payload for
// unitless outputs, or the wrapped quantity's magnitude otherwise.
// Returns nil for a deferred result.
func (r *Result) Payload() Payload {
	if len(r.outputs) == 0 {
		return nil
	}
	switch v := r.outputs[0].(type) {
	case *Quantity:
		return v.Payload()
	case Payload:
		return v
	default:
		return nil
	}
}
