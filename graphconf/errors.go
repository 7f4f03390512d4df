// SPDX-License-Identifier: MIT

package graphconf

import "errors"

// Sentinel errors for graph configuration.
var (
	// ErrInvalidConfig indicates a structurally invalid document: duplicate or
	// empty ids, wrong source count, bad settings or sampling window.
	ErrInvalidConfig = errors.New("graphconf: invalid configuration")
	// ErrUnknownModule indicates a reference to an id that no node declares.
	ErrUnknownModule = errors.New("graphconf: unknown module id")
)
