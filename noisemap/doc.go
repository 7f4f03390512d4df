// Package noisemap samples a module graph onto a 2D grid of float64 values.
//
// What:
//
//   - Map is a row-major width×height grid with bounds-checked access and
//     summary statistics.
//   - Plane, Sphere and Cylinder map 2D surface coordinates into the 3D
//     space a module is defined on.
//   - BuildPlane, BuildSphere and BuildCylinder fill a new Map by sampling a
//     module over a rectangular window of the surface.
//
// Why:
//
//   - Heightmaps, texture sources and seamless tiles.
//   - Planet surfaces sampled by latitude and longitude.
//
// Complexity:
//
//   - Build*: O(W×H) module evaluations (×4 for seamless planes), Memory: O(W×H).
//   - Stats:  O(W×H).
//
// Options:
//
//   - WithSeamless(true): blend each plane sample with its copies one extent
//     away so opposite edges of the map tile without a visible seam.
//   - WithRowCallback(fn): fn(row) after each completed row, e.g. progress.
//
// Errors:
//
//   - ErrBadSize: width or height below 1.
//   - ErrOutOfRange: cell coordinates outside the map.
//   - ErrBadBounds: a lower bound not strictly below its upper bound.
//   - Graph errors from module.Validate (ErrNoModule, ErrNotBuilt, ErrCycle)
//     are returned unchanged before sampling begins.
package noisemap
