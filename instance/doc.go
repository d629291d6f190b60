// SPDX-License-Identifier: MIT

// Package instance holds the immutable ATSP instance model: the node count n
// and the n×n distance matrix, plus a loader for TSPLIB files stored in
// EXPLICIT / FULL_MATRIX form (the format of the TSPLIB ATSP collection).
//
// Contract:
//   - n ≥ 2.
//   - distance[i][j] is finite and non-negative for i ≠ j.
//   - The diagonal is ignored and stored as 0; there are no self loops.
//
// An *Instance is read-only after construction and safe to share between
// goroutines (e.g. several solves in a batch).
package instance
