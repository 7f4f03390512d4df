// SPDX-License-Identifier: MIT

package noisemap

import "errors"

// Sentinel errors for noise-map operations.
var (
	// ErrBadSize indicates a non-positive map width or height.
	ErrBadSize = errors.New("noisemap: width and height must be positive")
	// ErrOutOfRange indicates cell coordinates outside the map.
	ErrOutOfRange = errors.New("noisemap: cell out of range")
	// ErrBadBounds indicates a sampling window with lower >= upper on an axis.
	ErrBadBounds = errors.New("noisemap: lower bound must be below upper bound")
)
