package quantity

import "fmt"

// Table maps operation names to their specifications. Lookup is
// exact-name: operations absent from the table are unsupported by
// design, and extending support means registering an entry, never
// defaulting. Registration is append-only and must complete before
// concurrent dispatching begins.
type Table struct {
	specs map[string]*Spec
}

// NewTable creates an empty specification table.
func NewTable() *Table {
	return &Table{specs: make(map[string]*Spec)}
}

// Register adds a specification. Duplicate names and structurally
// invalid specs are rejected.
func (t *Table) Register(s *Spec) error {
	if err := s.validate(); err != nil {
		return err
	}
	if _, exists := t.specs[s.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSpec, s.Name)
	}
	t.specs[s.Name] = s
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// process-initialization table construction.
func (t *Table) MustRegister(s *Spec) {
	if err := t.Register(s); err != nil {
		panic(err)
	}
}

// Lookup resolves an operation name to its specification.
func (t *Table) Lookup(name string) (*Spec, bool) {
	s, ok := t.specs[name]
	return s, ok
}

// Names returns the registered operation names, for enumeration in
// diagnostics and tests. Order is unspecified.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.specs))
	for name := range t.specs {
		names = append(names, name)
	}
	return names
}

// Kernel adapters.

func unary(f func(Backend, Payload) (Payload, error)) Kernel {
	return func(b Backend, args []Payload, _ []any) ([]Payload, error) {
		out, err := f(b, args[0])
		if err != nil {
			return nil, err
		}
		return []Payload{out}, nil
	}
}

func binary(f func(Backend, Payload, Payload) (Payload, error)) Kernel {
	return func(b Backend, args []Payload, _ []any) ([]Payload, error) {
		out, err := f(b, args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []Payload{out}, nil
	}
}

// toFloat coerces the numeric parameter types accepted for exponents.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// toShape coerces the parameter types accepted for reshape targets.
func toShape(v any) (Shape, bool) {
	switch x := v.(type) {
	case Shape:
		return x, true
	case []int:
		return Shape(x), true
	default:
		return nil, false
	}
}

// DefaultTable builds the specification table covering the supported
// elementwise operations, reductions, linear algebra, comparisons and
// shape manipulation. Integrators extend it with Register before
// handing it to an Engine.
func DefaultTable() *Table {
	t := NewTable()

	// Unit-unifying arithmetic.
	t.MustRegister(&Spec{
		Name:   "add",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: binary(Backend.Add),
	})
	t.MustRegister(&Spec{
		Name:   "subtract",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: binary(Backend.Sub),
	})
	t.MustRegister(&Spec{
		Name:   "hypot",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: binary(Backend.Hypot),
	})
	t.MustRegister(&Spec{
		Name:   "modulo",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: binary(Backend.Mod),
	})
	t.MustRegister(&Spec{
		Name:  "divmod",
		Roles: []Role{RolePrimary, RoleMatched},
		Outs:  []OutRule{{Kind: OutUnitless}, {Kind: OutPrimary}},
		Kernel: func(b Backend, args []Payload, _ []any) ([]Payload, error) {
			quo, rem, err := b.Divmod(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return []Payload{quo, rem}, nil
		},
	})

	// Unit-deriving arithmetic.
	t.MustRegister(&Spec{
		Name:   "multiply",
		Roles:  []Role{RoleAny, RoleAny},
		Outs:   []OutRule{{Kind: OutMultiply}},
		Kernel: binary(Backend.Mul),
	})
	t.MustRegister(&Spec{
		Name:   "divide",
		Roles:  []Role{RoleAny, RoleAny},
		Outs:   []OutRule{{Kind: OutDivide}},
		Kernel: binary(Backend.Div),
	})
	t.MustRegister(&Spec{
		Name:   "matmul",
		Roles:  []Role{RoleAny, RoleAny},
		Outs:   []OutRule{{Kind: OutMultiply}},
		Kernel: binary(Backend.MatMul),
	})
	t.MustRegister(&Spec{
		Name:  "power",
		Roles: []Role{RolePrimary, RoleParam},
		Outs:  []OutRule{{Kind: OutPower}},
		Kernel: func(b Backend, args []Payload, params []any) ([]Payload, error) {
			exp, ok := toFloat(params[0])
			if !ok {
				return nil, fmt.Errorf("power: exponent must be a scalar number, got %T", params[0])
			}
			out, err := b.Pow(args[0], b.FromScalar(exp))
			if err != nil {
				return nil, err
			}
			return []Payload{out}, nil
		},
	})
	t.MustRegister(&Spec{
		Name:   "sqrt",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutRoot, N: 2}},
		Kernel: unary(Backend.Sqrt),
	})

	// Unit-preserving elementwise operations.
	t.MustRegister(&Spec{
		Name:   "negative",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Neg),
	})
	t.MustRegister(&Spec{
		Name:   "absolute",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Abs),
	})
	t.MustRegister(&Spec{
		Name:   "floor",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Floor),
	})
	t.MustRegister(&Spec{
		Name:   "ceil",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Ceil),
	})
	t.MustRegister(&Spec{
		Name:   "round",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Round),
	})

	// Forced-dimensionless transcendentals.
	t.MustRegister(&Spec{
		Name:   "exp",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Exp),
	})
	t.MustRegister(&Spec{
		Name:   "log",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Log),
	})
	t.MustRegister(&Spec{
		Name:   "log2",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Log2),
	})
	t.MustRegister(&Spec{
		Name:   "log10",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Log10),
	})

	// Angle-consuming and angle-producing trigonometry.
	t.MustRegister(&Spec{
		Name:   "sin",
		Roles:  []Role{RoleAngle},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Sin),
	})
	t.MustRegister(&Spec{
		Name:   "cos",
		Roles:  []Role{RoleAngle},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Cos),
	})
	t.MustRegister(&Spec{
		Name:   "tan",
		Roles:  []Role{RoleAngle},
		Outs:   []OutRule{{Kind: OutUnitless}},
		Kernel: unary(Backend.Tan),
	})
	t.MustRegister(&Spec{
		Name:   "arcsin",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutAngle}},
		Kernel: unary(Backend.Asin),
	})
	t.MustRegister(&Spec{
		Name:   "arccos",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutAngle}},
		Kernel: unary(Backend.Acos),
	})
	t.MustRegister(&Spec{
		Name:   "arctan",
		Roles:  []Role{RoleDimensionless},
		Outs:   []OutRule{{Kind: OutAngle}},
		Kernel: unary(Backend.Atan),
	})
	t.MustRegister(&Spec{
		Name:   "arctan2",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutAngle}},
		Kernel: binary(Backend.Atan2),
	})

	// Reductions.
	t.MustRegister(&Spec{
		Name:   "sum",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Sum),
	})
	t.MustRegister(&Spec{
		Name:   "mean",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Mean),
	})
	t.MustRegister(&Spec{
		Name:   "min",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Min),
	})
	t.MustRegister(&Spec{
		Name:   "max",
		Roles:  []Role{RolePrimary},
		Outs:   []OutRule{{Kind: OutPrimary}},
		Kernel: unary(Backend.Max),
	})

	// Shape manipulation.
	t.MustRegister(&Spec{
		Name:  "reshape",
		Roles: []Role{RolePrimary, RoleParam},
		Outs:  []OutRule{{Kind: OutPrimary}},
		Kernel: func(b Backend, args []Payload, params []any) ([]Payload, error) {
			shape, ok := toShape(params[0])
			if !ok {
				return nil, fmt.Errorf("reshape: target shape must be a Shape or []int, got %T", params[0])
			}
			out, err := b.Reshape(args[0], shape)
			if err != nil {
				return nil, err
			}
			return []Payload{out}, nil
		},
	})
	t.MustRegister(&Spec{
		Name:  "transpose",
		Roles: []Role{RolePrimary},
		Outs:  []OutRule{{Kind: OutPrimary}},
		Kernel: func(b Backend, args []Payload, _ []any) ([]Payload, error) {
			out, err := b.Transpose(args[0])
			if err != nil {
				return nil, err
			}
			return []Payload{out}, nil
		},
	})
	t.MustRegister(&Spec{
		Name:     "concatenate",
		Variadic: true,
		Outs:     []OutRule{{Kind: OutPrimary}},
		Kernel: func(b Backend, args []Payload, _ []any) ([]Payload, error) {
			out, err := b.Concat(args, 0)
			if err != nil {
				return nil, err
			}
			return []Payload{out}, nil
		},
	})
	t.MustRegister(&Spec{
		Name:     "stack",
		Variadic: true,
		Outs:     []OutRule{{Kind: OutPrimary}},
		Kernel: func(b Backend, args []Payload, _ []any) ([]Payload, error) {
			out, err := b.Stack(args, 0)
			if err != nil {
				return nil, err
			}
			return []Payload{out}, nil
		},
	})

	// Comparison predicates: unit-checked inputs, bare boolean output.
	t.MustRegister(&Spec{
		Name:   "greater",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutBare}},
		Kernel: binary(Backend.Greater),
	})
	t.MustRegister(&Spec{
		Name:   "greater_equal",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutBare}},
		Kernel: binary(Backend.GreaterEqual),
	})
	t.MustRegister(&Spec{
		Name:   "less",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutBare}},
		Kernel: binary(Backend.Less),
	})
	t.MustRegister(&Spec{
		Name:   "less_equal",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutBare}},
		Kernel: binary(Backend.LessEqual),
	})
	t.MustRegister(&Spec{
		Name:   "equal",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutBare}},
		Kernel: binary(Backend.Equal),
	})
	t.MustRegister(&Spec{
		Name:   "not_equal",
		Roles:  []Role{RolePrimary, RoleMatched},
		Outs:   []OutRule{{Kind: OutBare}},
		Kernel: binary(Backend.NotEqual),
	})

	// Conditional selection: condition is unit-free by design.
	t.MustRegister(&Spec{
		Name:  "where",
		Roles: []Role{RoleBare, RolePrimary, RoleMatched},
		Outs:  []OutRule{{Kind: OutPrimary}},
		Kernel: func(b Backend, args []Payload, _ []any) ([]Payload, error) {
			out, err := b.Where(args[0], args[1], args[2])
			if err != nil {
				return nil, err
			}
			return []Payload{out}, nil
		},
	})

	return t
}
