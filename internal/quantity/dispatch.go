package quantity

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Dispatch orchestrates one operation end to end:
//
//	Arbitrating → Resolving-Spec → Converting → Computing → Wrapping
//
// Each invocation is a self-contained transaction. If any operand's
// type outranks this layer, the Deferred sentinel is returned with no
// work performed. Failures abort the whole operation before the backend
// computation runs; there is no partial or retry state.
func (e *Engine) Dispatch(op string, operands ...any) (*Result, error) {
	decision, normalized := e.arbiter.Decide(operands)
	if decision == Defer {
		e.log.Debug("dispatch deferred", zap.String("op", op))
		return Deferred, nil
	}

	spec, ok := e.table.Lookup(op)
	if !ok {
		return nil, &OperationError{Op: op}
	}

	e.log.Debug("dispatch",
		zap.String("op", op),
		zap.Int("operands", len(operands)),
		zap.Bool("variadic", spec.Variadic))

	if spec.Variadic {
		return e.dispatchVariadic(spec, normalized)
	}
	return e.dispatchFixed(spec, normalized)
}

// dispatchFixed handles a fixed-arity specification.
func (e *Engine) dispatchFixed(spec *Spec, normalized []Operand) (*Result, error) {
	if len(normalized) != len(spec.Roles) {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d",
			spec.Name, len(spec.Roles), len(normalized))
	}

	// The primary argument defines the reference unit for the call.
	// A bare primary means the reference unit is dimensionless.
	primary := e.registry.Dimensionless()
	for i, role := range spec.Roles {
		if role == RolePrimary && normalized[i].Kind == KindQuantity {
			primary = normalized[i].Quantity.Unit()
		}
	}

	var (
		args     []Payload
		argUnits []Unit
		params   []any
	)

	for i, role := range spec.Roles {
		if role == RoleParam {
			params = append(params, paramValue(normalized[i]))
			continue
		}

		p, u, err := e.resolvePayload(spec.Name, i, normalized[i])
		if err != nil {
			return nil, err
		}

		switch role {
		case RolePrimary, RoleAny:
			// Passes through unconverted, carrying its own unit.

		case RoleBare:
			// Units dropped deliberately; treated as dimensionless.
			u = e.registry.Dimensionless()

		case RoleMatched:
			p, err = e.convert(spec.Name, i, p, u, primary)
			if err != nil {
				return nil, err
			}
			u = primary

		case RoleDimensionless:
			// The gate is the signature check, not numeric
			// convertibility: percent passes, meters never do.
			dims, derr := e.registry.Dimensionality(u)
			if derr != nil {
				return nil, fmt.Errorf("%s: argument %d: %w", spec.Name, i, derr)
			}
			if !dims.IsZero() {
				return nil, &DimensionError{
					Op:       spec.Name,
					Arg:      i,
					From:     u,
					To:       e.registry.Dimensionless(),
					FromDims: dims,
				}
			}
			p, err = e.convert(spec.Name, i, p, u, e.registry.Dimensionless())
			if err != nil {
				return nil, err
			}
			u = e.registry.Dimensionless()

		case RoleAngle:
			// Plain dimensionless input is taken as radians already;
			// anything else must convert to the registry's angle unit.
			if !e.registry.IsDimensionless(u) {
				p, err = e.convert(spec.Name, i, p, u, e.registry.Angle())
				if err != nil {
					return nil, err
				}
			}
			u = e.registry.Angle()
		}

		args = append(args, p)
		argUnits = append(argUnits, u)
	}

	outs, err := spec.Kernel(e.backend, args, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}

	return e.wrapOutputs(spec, outs, primary, argUnits, params)
}

// dispatchVariadic handles a specification whose arguments form one
// sequence sharing a unit: the first element's unit is the primary and
// every subsequent element is converted to it.
func (e *Engine) dispatchVariadic(spec *Spec, normalized []Operand) (*Result, error) {
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%s: at least one argument required", spec.Name)
	}

	args := make([]Payload, len(normalized))
	units := make([]Unit, len(normalized))
	for i, operand := range normalized {
		p, u, err := e.resolvePayload(spec.Name, i, operand)
		if err != nil {
			return nil, err
		}
		args[i], units[i] = p, u
	}

	primary := units[0]
	for i := 1; i < len(args); i++ {
		converted, err := e.convert(spec.Name, i, args[i], units[i], primary)
		if err != nil {
			return nil, err
		}
		args[i] = converted
	}

	outs, err := spec.Kernel(e.backend, args, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}

	return e.wrapOutputs(spec, outs, primary, units, nil)
}

// paramValue returns the raw value a RoleParam operand carries.
func paramValue(o Operand) any {
	if o.Kind == KindQuantity {
		return o.Quantity
	}
	return o.Value
}

// resolvePayload extracts the payload and effective unit of one operand
// and verifies the backend can operate on it. Bare operands become
// implicit dimensionless payloads.
func (e *Engine) resolvePayload(op string, arg int, operand Operand) (Payload, Unit, error) {
	var (
		p Payload
		u Unit
	)
	if operand.Kind == KindQuantity {
		p, u = operand.Quantity.Payload(), operand.Quantity.Unit()
	} else {
		u = e.registry.Dimensionless()
		switch v := operand.Value.(type) {
		case Payload:
			p = v
		default:
			f, ok := toFloat(operand.Value)
			if !ok {
				return nil, nil, &PayloadError{
					Op:     op,
					Arg:    arg,
					Reason: fmt.Sprintf("cannot treat %T as a magnitude payload", operand.Value),
				}
			}
			p = e.backend.FromScalar(f)
		}
	}

	if !e.backend.Supports(p) {
		return nil, nil, &PayloadError{
			Op:     op,
			Arg:    arg,
			Reason: fmt.Sprintf("payload %T not supported by backend %s", p, e.backend.Name()),
		}
	}
	return p, u, nil
}

// convert rescales a payload from one unit to another, decorating
// dimension errors with the operation name and argument position.
func (e *Engine) convert(op string, arg int, p Payload, from, to Unit) (Payload, error) {
	conv, err := e.registry.Conversion(from, to)
	if err != nil {
		var de *DimensionError
		if errors.As(err, &de) {
			annotated := *de
			annotated.Op, annotated.Arg = op, arg
			return nil, &annotated
		}
		return nil, fmt.Errorf("%s: argument %d: %w", op, arg, err)
	}
	if conv.Identity() {
		return p, nil
	}
	out, err := e.backend.Scale(p, conv.Scale, conv.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: argument %d: %w", op, arg, err)
	}
	return out, nil
}

// wrapOutputs derives each output's unit per its declared rule and
// wraps the bare kernel results.
func (e *Engine) wrapOutputs(spec *Spec, outs []Payload, primary Unit, argUnits []Unit, params []any) (*Result, error) {
	if len(outs) != len(spec.Outs) {
		return nil, fmt.Errorf("%s: kernel produced %d outputs, spec declares %d",
			spec.Name, len(outs), len(spec.Outs))
	}

	outputs := make([]any, len(outs))
	for i, rule := range spec.Outs {
		var (
			u   Unit
			err error
		)
		switch rule.Kind {
		case OutBare:
			outputs[i] = outs[i]
			continue
		case OutPrimary:
			u = primary
		case OutUnitless:
			u = e.registry.Dimensionless()
		case OutAngle:
			u = e.registry.Angle()
		case OutMultiply:
			if len(argUnits) < 2 {
				return nil, fmt.Errorf("%s: multiply-derived output needs two unit-carrying arguments", spec.Name)
			}
			u, err = e.registry.Mul(argUnits[0], argUnits[1])
		case OutDivide:
			if len(argUnits) < 2 {
				return nil, fmt.Errorf("%s: quotient-derived output needs two unit-carrying arguments", spec.Name)
			}
			u, err = e.registry.Div(argUnits[0], argUnits[1])
		case OutPower:
			u, err = e.powerUnit(spec.Name, primary, params)
		case OutRoot:
			u, err = e.registry.Root(primary, rule.N)
		default:
			return nil, fmt.Errorf("%s: unknown output rule %d", spec.Name, rule.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
		outputs[i] = &Quantity{payload: outs[i], unit: u, eng: e}
	}

	return &Result{outputs: outputs}, nil
}

// powerUnit derives the output unit of a power operation from the
// runtime exponent. Dimensionless bases accept any exponent; unit
// bearing bases require an integer (or half-integer) exponent so the
// result stays representable with integer signature exponents.
func (e *Engine) powerUnit(op string, base Unit, params []any) (Unit, error) {
	if e.registry.IsDimensionless(base) {
		return e.registry.Dimensionless(), nil
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("power output declared but no exponent parameter given")
	}
	exp, ok := toFloat(params[0])
	if !ok {
		return nil, fmt.Errorf("exponent must be a scalar number, got %T", params[0])
	}

	if exp == math.Trunc(exp) {
		return e.registry.Pow(base, int(exp))
	}
	if half := exp * 2; half == math.Trunc(half) {
		squared, err := e.registry.Pow(base, int(half))
		if err != nil {
			return nil, err
		}
		return e.registry.Root(squared, 2)
	}
	return nil, fmt.Errorf("%w: unit %q cannot be raised to non-integer power %v",
		ErrIncompatibleDimensions, base, exp)
}
