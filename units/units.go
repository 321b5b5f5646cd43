// Copyright 2025 The Unitful Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package units provides the built-in unit registry: named units with
// dimensional signatures and linear conversions to a coherent SI base,
// composite units, and YAML definition loading.
//
// Example:
//
//	reg := units.New()
//	meter := reg.MustUnit("m")
//	hour := reg.MustUnit("h")
package units

import (
	"github.com/unitful-go/unitful/internal/quantity"
	"github.com/unitful-go/unitful/internal/units"
)

// Registry resolves unit names and implements quantity.Registry.
type Registry = units.Registry

// Common errors.
var (
	// ErrUnknownUnit marks unresolvable unit names and foreign tokens.
	ErrUnknownUnit = units.ErrUnknownUnit
	// ErrDuplicateUnit marks re-definition of a unit name.
	ErrDuplicateUnit = units.ErrDuplicateUnit
	// ErrOffsetUnit marks affine units used in composite positions.
	ErrOffsetUnit = units.ErrOffsetUnit
)

// New creates a registry pre-loaded with the built-in definitions.
func New() *Registry {
	return units.New()
}

// Compile-time check that Registry implements the adapter interface.
var _ quantity.Registry = (*Registry)(nil)
