package quantity

import "fmt"

// Role declares how the dispatcher treats one argument position of an
// operation before the backend kernel runs.
type Role int

// Argument roles.
const (
	// RolePrimary defines the reference unit for the call. The payload
	// passes through unconverted.
	RolePrimary Role = iota
	// RoleMatched converts the argument to the primary's unit, failing
	// on incompatible dimensions.
	RoleMatched
	// RoleBare passes the bare magnitude through unchanged; units are
	// dropped deliberately (e.g. the condition of a where).
	RoleBare
	// RoleDimensionless requires a zero dimensional signature. The gate
	// is the signature check, not numeric convertibility: percent
	// passes (and is rescaled to its base), meters never do.
	RoleDimensionless
	// RoleAngle requires convertibility to the registry's angle unit,
	// converts, and passes the result as dimensionless.
	RoleAngle
	// RoleAny carries its own unit through unconverted; used by
	// operations whose output unit is derived algebraically from the
	// input units (multiply, divide, matmul).
	RoleAny
	// RoleParam routes the raw argument to the kernel without treating
	// it as a payload at all (reshape target shape, power exponent).
	RoleParam
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleMatched:
		return "matched-to-primary"
	case RoleBare:
		return "unit-free"
	case RoleDimensionless:
		return "forced-dimensionless"
	case RoleAngle:
		return "angle"
	case RoleAny:
		return "carries-own-unit"
	case RoleParam:
		return "parameter"
	default:
		return "unknown"
	}
}

// OutKind declares how one output's unit is derived.
type OutKind int

// Output-unit rules.
const (
	// OutPrimary wraps the output in the primary argument's unit.
	OutPrimary OutKind = iota
	// OutBare returns the bare payload with no unit attached
	// (comparison predicates).
	OutBare
	// OutUnitless wraps the output in the dimensionless unit.
	OutUnitless
	// OutAngle wraps the output in the registry's angle unit.
	OutAngle
	// OutMultiply derives the unit as the product of the first two
	// unit-carrying arguments' units.
	OutMultiply
	// OutDivide derives the unit as their quotient.
	OutDivide
	// OutPower raises the primary unit to the exponent argument.
	OutPower
	// OutRoot takes the N-th root of the primary unit.
	OutRoot
)

// OutRule is one output's unit derivation. N is the root order for
// OutRoot; it is ignored by the other kinds.
type OutRule struct {
	Kind OutKind
	N    int
}

// Kernel invokes the bare backend computation for one operation. The
// args are pre-converted, unit-stripped payloads in argument order;
// params carries RoleParam arguments unchanged.
type Kernel func(b Backend, args []Payload, params []any) ([]Payload, error)

// Spec is the declarative rule for one named operation: per-argument
// unit handling, output unit derivation, and the kernel that performs
// the bare computation.
//
// A Spec with Variadic set accepts any number (≥1) of payload operands
// that must all share one unit; the first operand's unit is the
// primary, every subsequent operand is converted to it.
type Spec struct {
	Name     string
	Roles    []Role
	Variadic bool
	Outs     []OutRule
	Kernel   Kernel
}

// validate checks structural invariants of a specification.
func (s *Spec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("spec has no name")
	}
	if s.Kernel == nil {
		return fmt.Errorf("spec %q has no kernel", s.Name)
	}
	if len(s.Outs) == 0 {
		return fmt.Errorf("spec %q declares no outputs", s.Name)
	}
	if s.Variadic && len(s.Roles) != 0 {
		return fmt.Errorf("spec %q is variadic but declares fixed roles", s.Name)
	}
	if !s.Variadic && len(s.Roles) == 0 {
		return fmt.Errorf("spec %q declares no argument roles", s.Name)
	}
	primaries := 0
	for _, r := range s.Roles {
		if r == RolePrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return fmt.Errorf("spec %q declares %d primary arguments", s.Name, primaries)
	}
	for _, out := range s.Outs {
		if out.Kind == OutRoot && out.N <= 0 {
			return fmt.Errorf("spec %q: root output needs a positive order", s.Name)
		}
	}
	return nil
}
