// Copyright 2025 The Unitful Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantity

import "github.com/unitful-go/unitful/internal/quantity"

// Spec is the declarative rule for one named operation.
type Spec = quantity.Spec

// Table maps operation names to their specifications.
type Table = quantity.Table

// Kernel invokes the bare backend computation for one operation.
type Kernel = quantity.Kernel

// Role declares per-argument unit handling.
type Role = quantity.Role

// Argument roles.
const (
	RolePrimary       Role = quantity.RolePrimary
	RoleMatched       Role = quantity.RoleMatched
	RoleBare          Role = quantity.RoleBare
	RoleDimensionless Role = quantity.RoleDimensionless
	RoleAngle         Role = quantity.RoleAngle
	RoleAny           Role = quantity.RoleAny
	RoleParam         Role = quantity.RoleParam
)

// OutKind declares how one output's unit is derived.
type OutKind = quantity.OutKind

// Output-unit rules.
const (
	OutPrimary  OutKind = quantity.OutPrimary
	OutBare     OutKind = quantity.OutBare
	OutUnitless OutKind = quantity.OutUnitless
	OutAngle    OutKind = quantity.OutAngle
	OutMultiply OutKind = quantity.OutMultiply
	OutDivide   OutKind = quantity.OutDivide
	OutPower    OutKind = quantity.OutPower
	OutRoot     OutKind = quantity.OutRoot
)

// OutRule is one output's unit derivation.
type OutRule = quantity.OutRule

// NewTable creates an empty specification table.
func NewTable() *Table {
	return quantity.NewTable()
}

// DefaultTable builds the table of supported operations.
func DefaultTable() *Table {
	return quantity.DefaultTable()
}

// Arbiter decides whether this layer owns an operation or defers to a
// higher-precedence wrapper type.
type Arbiter = quantity.Arbiter

// NewArbiter creates an arbiter with no upcast types registered.
func NewArbiter() *Arbiter {
	return quantity.NewArbiter()
}
