// Copyright 2025 The Unitful Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantity

import "github.com/unitful-go/unitful/internal/quantity"

// Common errors.
var (
	// ErrIncompatibleDimensions marks failed conversions and signature
	// checks.
	ErrIncompatibleDimensions = quantity.ErrIncompatibleDimensions
	// ErrUnsupportedOperation marks operation names with no
	// specification entry.
	ErrUnsupportedOperation = quantity.ErrUnsupportedOperation
	// ErrUnsupportedPayload marks payloads lacking a required
	// capability.
	ErrUnsupportedPayload = quantity.ErrUnsupportedPayload
	// ErrPrecedenceCycle marks cyclic precedence configuration.
	ErrPrecedenceCycle = quantity.ErrPrecedenceCycle
	// ErrDuplicateSpec marks re-registration of an operation name.
	ErrDuplicateSpec = quantity.ErrDuplicateSpec
)

// DimensionError reports a failed conversion or signature check,
// carrying both units and signatures involved.
type DimensionError = quantity.DimensionError

// OperationError reports an operation name with no specification entry.
type OperationError = quantity.OperationError

// PayloadError reports a payload lacking a required capability.
type PayloadError = quantity.PayloadError
