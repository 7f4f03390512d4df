// SPDX-License-Identifier: MIT

package module

import "strings"

// Kind identifies a node type. Every Kind has a fixed source-slot count.
type Kind int

// Node kinds, generators first.
const (
	KindConst Kind = iota
	KindCheckerboard
	KindSpheres
	KindPerlin
	KindBillow
	KindSimplex
	KindOpenSimplex
	KindVoronoi
	KindInvert
	KindClamp
	KindExponent
	KindCached
	KindScalePoint
	KindTranslatePoint
	KindRotatePoint
	KindTurbulence
	KindMax
	KindBlend
	KindSelect

	kindCount
)

// kindNames and kindArity are kept apart from the factory table so that
// constructors may consult arity without an initialization cycle.
var kindNames = [kindCount]string{
	KindConst:          "const",
	KindCheckerboard:   "checkerboard",
	KindSpheres:        "spheres",
	KindPerlin:         "perlin",
	KindBillow:         "billow",
	KindSimplex:        "simplex",
	KindOpenSimplex:    "opensimplex",
	KindVoronoi:        "voronoi",
	KindInvert:         "invert",
	KindClamp:          "clamp",
	KindExponent:       "exponent",
	KindCached:         "cached",
	KindScalePoint:     "scalepoint",
	KindTranslatePoint: "translatepoint",
	KindRotatePoint:    "rotatepoint",
	KindTurbulence:     "turbulence",
	KindMax:            "max",
	KindBlend:          "blend",
	KindSelect:         "select",
}

var kindArity = [kindCount]int{
	KindInvert:         1,
	KindClamp:          1,
	KindExponent:       1,
	KindCached:         1,
	KindScalePoint:     1,
	KindTranslatePoint: 1,
	KindRotatePoint:    1,
	KindTurbulence:     1,
	KindMax:            2,
	KindBlend:          3,
	KindSelect:         3,
}

var kindFactories = [kindCount]func() Module{
	KindConst:          func() Module { return NewConst(0) },
	KindCheckerboard:   func() Module { return NewCheckerboard() },
	KindSpheres:        func() Module { return NewSpheres() },
	KindPerlin:         func() Module { return NewPerlin() },
	KindBillow:         func() Module { return NewBillow() },
	KindSimplex:        func() Module { return NewSimplex() },
	KindOpenSimplex:    func() Module { return NewOpenSimplex() },
	KindVoronoi:        func() Module { return NewVoronoi() },
	KindInvert:         func() Module { return NewInvert(nil) },
	KindClamp:          func() Module { return NewClamp(nil) },
	KindExponent:       func() Module { return NewExponent(nil) },
	KindCached:         func() Module { return NewCached(nil) },
	KindScalePoint:     func() Module { return NewScalePoint(nil) },
	KindTranslatePoint: func() Module { return NewTranslatePoint(nil) },
	KindRotatePoint:    func() Module { return NewRotatePoint(nil) },
	KindTurbulence:     func() Module { return NewTurbulence(nil) },
	KindMax:            func() Module { return NewMax(nil, nil) },
	KindBlend:          func() Module { return NewBlend(nil, nil, nil) },
	KindSelect:         func() Module { return NewSelect(nil, nil, nil) },
}

// Valid reports whether k names a registered kind.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// String returns the lower-case registry name, e.g. "perlin".
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}

	return kindNames[k]
}

// SourceCount returns the fixed arity of k, or -1 for an invalid kind.
func (k Kind) SourceCount() int {
	if !k.Valid() {
		return -1
	}

	return kindArity[k]
}

// IsGenerator reports whether k takes no sources.
func (k Kind) IsGenerator() bool { return k.SourceCount() == 0 }

// Kinds returns every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind maps a case-insensitive registry name to its Kind.
//
// Complexity: O(K) over the registry.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}

	return 0, moduleErrorf("ParseKind", ErrUnknownKind, "%q", name)
}

// New returns a default-configured node of kind k with every slot unbound.
func New(k Kind) (Module, error) {
	if !k.Valid() {
		return nil, moduleErrorf("New", ErrUnknownKind, "kind %d", int(k))
	}

	return kindFactories[k](), nil
}

// kinded is implemented by every node of this package.
type kinded interface {
	Kind() Kind
}

// KindOf reports the registry kind of m; ok is false for foreign modules.
func KindOf(m Module) (k Kind, ok bool) {
	kd, ok := m.(kinded)
	if !ok {
		return 0, false
	}

	return kd.Kind(), true
}

// kindLabel names m for error paths.
func kindLabel(m Module) string {
	if k, ok := KindOf(m); ok {
		return k.String()
	}

	return "foreign"
}
