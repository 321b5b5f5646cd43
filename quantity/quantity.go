// Copyright 2025 The Unitful Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package quantity provides the public API for unit-aware numeric
// operation dispatch.
//
// The package pairs bare magnitudes with units and routes generic
// operations through a dispatcher that validates and converts units,
// rejects dimensionally inconsistent operations, and defers to
// higher-precedence wrapper types:
//
//	reg := units.New()
//	eng := quantity.NewEngine(reg, native.New())
//
//	d, _ := native.NewArray([]float64{3, 4}, quantity.Shape{2})
//	dist := eng.MustWrap(d, reg.MustUnit("m"))
//
//	res, err := eng.Dispatch("multiply", dist, dist)
package quantity

import (
	"github.com/unitful-go/unitful/internal/quantity"
)

// Type aliases for public API

// Quantity pairs a bare magnitude payload with a unit.
type Quantity = quantity.Quantity

// Engine is the operation dispatcher.
type Engine = quantity.Engine

// Option configures an Engine.
type Option = quantity.Option

// Result is the outcome of one dispatched operation.
type Result = quantity.Result

// Unit is an opaque unit token interpreted by a Registry.
type Unit = quantity.Unit

// Registry is the unit registry adapter interface this layer consumes.
type Registry = quantity.Registry

// Conversion is a linear magnitude rescaling between compatible units.
type Conversion = quantity.Conversion

// Payload is the capability set required of a bare magnitude.
type Payload = quantity.Payload

// InPlaceScaler is the optional in-place rescaling payload capability.
type InPlaceScaler = quantity.InPlaceScaler

// Shape represents the dimensions of an array payload.
type Shape = quantity.Shape

// DataType represents the element type of a payload.
type DataType = quantity.DataType

// Element type constants.
const (
	Float64 DataType = quantity.Float64
	Bool    DataType = quantity.Bool
)

// Dimension identifies one base physical dimension.
type Dimension = quantity.Dimension

// Base dimension constants.
const (
	Length      Dimension = quantity.Length
	Mass        Dimension = quantity.Mass
	Time        Dimension = quantity.Time
	Current     Dimension = quantity.Current
	Temperature Dimension = quantity.Temperature
	Amount      Dimension = quantity.Amount
	Luminosity  Dimension = quantity.Luminosity
	Angle       Dimension = quantity.Angle
)

// Dimensions is a dimensional signature over the base dimensions.
type Dimensions = quantity.Dimensions

// Deferred is the "not my operation" sentinel returned by Dispatch when
// an operand's type outranks this layer. It is a control value, not a
// failure.
var Deferred = quantity.Deferred

// NewEngine creates a dispatcher over a unit registry and a compute
// backend.
func NewEngine(registry Registry, backend Backend, opts ...Option) *Engine {
	return quantity.New(registry, backend, opts...)
}

// Engine options.
var (
	// WithLogger sets a logger for debug-level dispatch tracing.
	WithLogger = quantity.WithLogger
	// WithTable replaces the default operation specification table.
	WithTable = quantity.WithTable
	// WithArbiter replaces the default precedence arbiter.
	WithArbiter = quantity.WithArbiter
)
