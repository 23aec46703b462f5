package geomtool

import "github.com/gogpu/gg"

// Kind identifies a drafting instrument. The set is closed.
type Kind uint8

const (
	// Ruler is a straight edge with centimetre graduations.
	Ruler Kind = iota
	// Protractor is a half disk with degree graduations.
	Protractor
	// Setsquare is a right isosceles triangle.
	Setsquare
	// Compass draws around a centre with an adjustable radius.
	Compass

	kindCount
)

var kindNames = [...]string{
	Ruler:      "ruler",
	Protractor: "protractor",
	Setsquare:  "setsquare",
	Compass:    "compass",
}

// String returns the lower-case name of the instrument.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Kinds returns every instrument kind in declaration order.
func Kinds() []Kind {
	return []Kind{Ruler, Protractor, Setsquare, Compass}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Overlay is the opaque identity of something drawn over a page.
// Overlays are compared by identity, so implementations should be pointers.
type Overlay interface {
	// Bounds returns the overlay's extent in document coordinates.
	Bounds() gg.Rect
}

// Tool is the read-only view of a geometry tool model.
//
// The model is the single source of truth for pose and size; views never
// mutate it. All coordinates are document coordinates unless noted.
type Tool interface {
	Overlay

	// Kind returns the instrument variant.
	Kind() Kind

	// Height returns the characteristic length in centimetres
	// (ruler half-length, protractor and compass radius, set square height).
	Height() float64

	// Rotation returns the rotation angle in radians.
	Rotation() float64

	// Translation returns the position of the tool origin.
	Translation() gg.Point

	// Matrix maps tool-local centimetres to document coordinates.
	Matrix() gg.Matrix

	// LongestEdge returns the endpoints of the guiding edge.
	LongestEdge() (a, b gg.Point)
}
