// SPDX-License-Identifier: MIT

package instance

import "errors"

// MaxDimension caps the DIMENSION accepted by Parse.
const MaxDimension = 4096

var (
	// ErrTooSmall is returned for instances with fewer than two nodes.
	ErrTooSmall = errors.New("instance: need at least 2 nodes")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("instance: distance matrix is not square")

	// ErrNegativeDistance is returned for a negative off-diagonal distance.
	ErrNegativeDistance = errors.New("instance: negative distance")

	// ErrInvalidDistance is returned for NaN or ±Inf off-diagonal distances.
	ErrInvalidDistance = errors.New("instance: distance is NaN or Inf")

	// ErrTooLarge is returned when a TSPLIB DIMENSION exceeds MaxDimension.
	ErrTooLarge = errors.New("instance: dimension exceeds MaxDimension")

	// ErrMissingDimension is returned when a TSPLIB header lacks DIMENSION.
	ErrMissingDimension = errors.New("instance: missing DIMENSION")

	// ErrMissingSection is returned when EDGE_WEIGHT_SECTION never appears.
	ErrMissingSection = errors.New("instance: missing EDGE_WEIGHT_SECTION")

	// ErrUnsupportedFormat is returned for TSPLIB weight formats other than FULL_MATRIX.
	ErrUnsupportedFormat = errors.New("instance: unsupported edge weight format")

	// ErrTruncated is returned when fewer than n*n weights follow the section header.
	ErrTruncated = errors.New("instance: truncated edge weight section")
)
