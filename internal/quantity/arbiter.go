package quantity

import (
	"fmt"
	"reflect"
)

// Decision is the arbiter's verdict for one operation.
type Decision int

// Arbiter verdicts.
const (
	// Handle means this layer performs the operation.
	Handle Decision = iota
	// Defer means a higher-precedence operand's own dispatch should
	// get a chance; this layer must do no work at all.
	Defer
)

// OperandKind tags one normalized operand.
type OperandKind int

// Operand kinds.
const (
	// KindQuantity marks an operand that is a *Quantity.
	KindQuantity OperandKind = iota
	// KindBare marks any other operand, treated as an implicit
	// dimensionless payload.
	KindBare
)

// Operand is an operand normalized by the arbiter. Exactly one of
// Quantity or Value is meaningful depending on Kind.
type Operand struct {
	Kind     OperandKind
	Quantity *Quantity
	Value    any
}

// Arbiter decides, among the concrete types of the operands of one
// operation, whether this layer owns the operation or must defer to a
// higher-precedence wrapper type.
//
// Precedence is a directed acyclic graph over wrapper type identities:
// an edge from A to B means A outranks B. The Quantity type is an
// implicit node; any type with a path to it is an upcast type. The
// graph is validated for acyclicity at registration time, so a cyclic
// configuration is rejected as a configuration error rather than
// resolved at dispatch time.
//
// Registration is append-only and must complete before concurrent
// dispatching begins.
type Arbiter struct {
	self  reflect.Type
	edges map[reflect.Type][]reflect.Type
}

// NewArbiter creates an arbiter with no upcast types registered.
func NewArbiter() *Arbiter {
	return &Arbiter{
		self:  reflect.TypeOf(&Quantity{}),
		edges: make(map[reflect.Type][]reflect.Type),
	}
}

// RegisterUpcast declares that the given type outranks this layer.
// The sample argument carries only type identity; its value is unused.
func (a *Arbiter) RegisterUpcast(sample any) error {
	t := reflect.TypeOf(sample)
	if t == nil {
		return fmt.Errorf("register upcast: nil sample")
	}
	return a.addEdge(t, a.self)
}

// RegisterPrecedence declares that higher outranks lower, for composing
// rankings between wrapper types other than this layer.
func (a *Arbiter) RegisterPrecedence(higher, lower any) error {
	ht, lt := reflect.TypeOf(higher), reflect.TypeOf(lower)
	if ht == nil || lt == nil {
		return fmt.Errorf("register precedence: nil sample")
	}
	return a.addEdge(ht, lt)
}

// addEdge inserts hi→lo after checking it would not close a cycle.
func (a *Arbiter) addEdge(hi, lo reflect.Type) error {
	if hi == lo {
		return fmt.Errorf("%w: %s outranks itself", ErrPrecedenceCycle, hi)
	}
	if a.reachable(lo, hi) {
		return fmt.Errorf("%w: %s already outranks %s", ErrPrecedenceCycle, lo, hi)
	}
	a.edges[hi] = append(a.edges[hi], lo)
	return nil
}

// reachable reports whether there is a path from→to in the graph.
func (a *Arbiter) reachable(from, to reflect.Type) bool {
	if from == to {
		return true
	}
	seen := map[reflect.Type]bool{from: true}
	stack := []reflect.Type{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range a.edges[n] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// Outranks reports whether the given type is an upcast type: one this
// layer must defer to.
func (a *Arbiter) Outranks(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return a.reachable(t, a.self)
}

// Decide classifies the operands of one operation.
//
// If any operand's type outranks this layer the whole operation is
// deferred; no partial handling is allowed. Otherwise the operation is
// handled when at least one operand is a Quantity, with every
// unrecognized operand tagged as an implicit dimensionless payload.
// With no Quantity among the operands the call is not ours either, and
// is deferred.
func (a *Arbiter) Decide(operands []any) (Decision, []Operand) {
	normalized := make([]Operand, len(operands))
	sawQuantity := false

	for i, op := range operands {
		if q, ok := op.(*Quantity); ok {
			normalized[i] = Operand{Kind: KindQuantity, Quantity: q}
			sawQuantity = true
			continue
		}
		if a.Outranks(reflect.TypeOf(op)) {
			return Defer, nil
		}
		normalized[i] = Operand{Kind: KindBare, Value: op}
	}

	if !sawQuantity {
		return Defer, nil
	}
	return Handle, normalized
}
