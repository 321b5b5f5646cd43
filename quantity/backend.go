// Copyright 2025 The Unitful Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantity

import "github.com/unitful-go/unitful/internal/quantity"

// Backend defines the interface that all compute backends must
// implement. Backends receive pre-converted, unit-stripped payloads and
// know nothing about units.
//
// Implementations:
//   - backend/native: dense float64 arrays with gonum kernels
//
// The MockBackend in internal/quantity serves as a reference for
// writing new ones.
type Backend = quantity.Backend
