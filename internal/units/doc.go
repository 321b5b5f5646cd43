// Package units provides the built-in unit registry: named unit
// definitions with dimensional signatures and linear conversion factors
// to a coherent base, plus composite units derived by multiplication,
// division and exponentiation.
//
// The dispatcher core consumes registries only through the narrow
// quantity.Registry interface; this package exists so the module is
// usable and testable without an external unit system. It deliberately
// does not parse unit expressions from text — definitions are
// registered programmatically or loaded from a YAML definition table.
package units
