// SPDX-License-Identifier: MIT

package mip

import (
	"time"

	"go.uber.org/zap"
)

// Default engine parameters.
const (
	DefaultMaxCutRounds = 50
	DefaultIntTol       = 1e-6
	DefaultFeasTol      = 1e-6
)

// Option configures a Model at construction time.
type Option func(*Model)

// WithTimeLimit sets the wall-clock limit of each Optimize call (0 = none).
func WithTimeLimit(d time.Duration) Option {
	return func(m *Model) { m.timeLimit = d }
}

// WithLogger routes engine progress to l at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithMaxCutRounds bounds how many times one node is re-solved after
// MIPNode callbacks add violated rows. Negative values are ignored.
func WithMaxCutRounds(k int) Option {
	return func(m *Model) {
		if k >= 0 {
			m.maxCutRounds = k
		}
	}
}

// WithIntTol sets the integrality tolerance (default 1e-6).
func WithIntTol(tol float64) Option {
	return func(m *Model) {
		if tol > 0 {
			m.intTol = tol
		}
	}
}
