// Copyright 2025 The Unitful Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package native provides the reference compute backend: dense float64
// arrays with kernels built on gonum.
package native

import (
	internalnative "github.com/unitful-go/unitful/internal/backend/native"
	"github.com/unitful-go/unitful/quantity"
)

// Backend implements quantity.Backend over dense float64 arrays.
type Backend = internalnative.Backend

// Array is the native backend's payload type.
type Array = internalnative.Array

// Compile-time check that Backend implements quantity.Backend.
var _ quantity.Backend = (*Backend)(nil)

// New creates a native backend.
//
// Example:
//
//	backend := native.New()
//	eng := quantity.NewEngine(units.New(), backend)
func New() *Backend {
	return internalnative.New()
}

// NewArray creates a float64 array from a slice. The data is copied.
func NewArray(data []float64, shape quantity.Shape) (*Array, error) {
	return internalnative.NewArray(data, shape)
}

// NewBoolArray creates a bool array from a slice. The data is copied.
func NewBoolArray(data []bool, shape quantity.Shape) (*Array, error) {
	return internalnative.NewBoolArray(data, shape)
}

// Scalar creates a 0-d array holding a single value.
func Scalar(v float64) *Array {
	return internalnative.Scalar(v)
}
