// SPDX-License-Identifier: MIT
// Package: lvnoise/module
//
// errors.go: sentinel errors for the module package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w (see moduleErrorf), never baked into sentinels.
//   • Setters return errors; Evaluate is a hot path and faults instead.

package module

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a setter or constructor received a value that
// would break a node invariant: a slot index outside [0, SourceModuleCount),
// a nil source module, or lowerBound >= upperBound.
var ErrInvalidParameter = errors.New("module: invalid parameter")

// ErrNoModule indicates that a source slot was read before a module was bound
// to it, or the requested slot does not exist.
var ErrNoModule = errors.New("module: source module not connected")

// ErrNotBuilt indicates a Builder (fractal generator, Voronoi, Turbulence) was
// used before Build. Evaluate panics with an error wrapping this sentinel.
var ErrNotBuilt = errors.New("module: generator not built")

// ErrCycle indicates that a graph walk came back to a node still on its path.
var ErrCycle = errors.New("module: cycle detected")

// ErrUnknownKind indicates an unrecognized node kind name or value.
var ErrUnknownKind = errors.New("module: unknown module kind")

// ErrNotCloneable indicates CloneGraph met a node that does not implement Cloner.
var ErrNotCloneable = errors.New("module: module does not support cloning")

// moduleErrorf wraps err with the method name and a formatted detail:
// "<method>: <detail>: <err>".
func moduleErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// notBuilt is the panic value raised by Evaluate on an unbuilt generator.
func notBuilt(kind Kind) error {
	return moduleErrorf(kind.String()+".Evaluate", ErrNotBuilt, "call Build after configuring")
}
