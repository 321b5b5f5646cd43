// Package quantity implements the unit-aware operation dispatcher: the
// Quantity value type, the operation specification table, the type
// precedence arbiter, and the dispatch engine that ties them together.
//
// The package consumes two narrow interfaces it does not implement:
//
//   - Registry: unit dimensionality and conversion factors
//   - Backend: the bare-magnitude compute kernels
//
// All configuration (spec table entries, precedence registrations) is
// built once before dispatching begins and treated as immutable after
// that. Dispatch itself is stateless and safe for concurrent use.
package quantity
