package quantity

import (
	"go.uber.org/zap"
)

// Engine is the dispatcher: the runtime entry point invoked whenever a
// generic operation is applied to one or more Quantities. It holds only
// read-only configuration (registry, backend, spec table, arbiter) and
// is safe for unrestricted concurrent use once configured.
//
// Configuration follows a configure-then-freeze discipline: register
// specs and precedence entries before the first Dispatch call. Mutating
// the table or arbiter while dispatching concurrently is undefined.
type Engine struct {
	registry Registry
	backend  Backend
	table    *Table
	arbiter  *Arbiter
	log      *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a logger for debug-level dispatch tracing.
// The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTable replaces the default operation specification table.
func WithTable(t *Table) Option {
	return func(e *Engine) { e.table = t }
}

// WithArbiter replaces the default (empty) precedence arbiter.
func WithArbiter(a *Arbiter) Option {
	return func(e *Engine) { e.arbiter = a }
}

// New creates an engine over a unit registry and a compute backend.
func New(registry Registry, backend Backend, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		backend:  backend,
		table:    DefaultTable(),
		arbiter:  NewArbiter(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the unit registry adapter.
func (e *Engine) Registry() Registry { return e.registry }

// Backend returns the compute backend.
func (e *Engine) Backend() Backend { return e.backend }

// Table returns the operation specification table.
func (e *Engine) Table() *Table { return e.table }

// Arbiter returns the type precedence arbiter.
func (e *Engine) Arbiter() *Arbiter { return e.arbiter }

// Wrap binds a payload and a unit into a Quantity. A nil unit means
// dimensionless. The payload must be supported by the engine's backend.
func (e *Engine) Wrap(p Payload, u Unit) (*Quantity, error) {
	if !e.backend.Supports(p) {
		return nil, &PayloadError{
			Arg:    -1,
			Reason: "payload type not supported by backend " + e.backend.Name(),
		}
	}
	if u == nil {
		u = e.registry.Dimensionless()
	}
	return &Quantity{payload: p, unit: u, eng: e}, nil
}

// MustWrap is like Wrap but panics on error.
func (e *Engine) MustWrap(p Payload, u Unit) *Quantity {
	q, err := e.Wrap(p, u)
	if err != nil {
		panic(err)
	}
	return q
}
