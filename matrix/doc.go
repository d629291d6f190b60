// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 buffer shared by the
// instance model, the min-cut oracle and the separation routines.
//
// A Dense owns exactly one contiguous slice of rows*cols values; element
// (i, j) lives at offset i*cols + j. Row(i) exposes a no-copy view of a single
// row so hot loops (max-flow, cycle tracing) can iterate without repeated
// bounds checks, while At/Set stay safe for everything else.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c).
package matrix
