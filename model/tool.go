package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/geomtool"
	"github.com/gogpu/gg"
)

// Height limits in centimetres applied by Resize and SetHeight.
const (
	MinHeight = 0.5
	MaxHeight = 20.0
)

// labelMargin pads the tool extent, in document units, so that borders,
// outer ticks and labels are inside the reported bounds.
const labelMargin = 12.0

// DefaultHeight returns the initial characteristic length of kind in centimetres.
func DefaultHeight(kind geomtool.Kind) float64 {
	switch kind {
	case geomtool.Ruler:
		return 8
	case geomtool.Protractor, geomtool.Setsquare:
		return 4.5
	case geomtool.Compass:
		return 3
	}
	return 0
}

// Tool is a geometry tool model. It implements geomtool.Tool.
//
// Tool is not safe for concurrent use; mutate it from the UI thread only.
type Tool struct {
	kind     geomtool.Kind
	height   float64
	rotation float64
	pos      gg.Point

	observers []geomtool.Observer
	closed    bool
}

var _ geomtool.Tool = (*Tool)(nil)

// Option configures a Tool during creation.
type Option func(*Tool)

// WithHeight sets the initial characteristic length in centimetres,
// clamped to [0, MaxHeight]. A zero height gives a degenerate tool.
func WithHeight(h float64) Option {
	return func(t *Tool) {
		t.height = clamp(h, 0, MaxHeight)
	}
}

// WithPosition sets the tool origin in document coordinates.
func WithPosition(x, y float64) Option {
	return func(t *Tool) {
		t.pos = gg.Pt(x, y)
	}
}

// WithRotation sets the initial rotation in radians.
func WithRotation(angle float64) Option {
	return func(t *Tool) {
		t.rotation = angle
	}
}

// New creates a tool of the given kind.
func New(kind geomtool.Kind, opts ...Option) (*Tool, error) {
	if !slices.Contains(geomtool.Kinds(), kind) {
		return nil, fmt.Errorf("%w: %d", geomtool.ErrUnknownKind, kind)
	}
	t := &Tool{
		kind:   kind,
		height: DefaultHeight(kind),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Kind returns the instrument variant.
func (t *Tool) Kind() geomtool.Kind { return t.kind }

// Height returns the characteristic length in centimetres.
func (t *Tool) Height() float64 { return t.height }

// Rotation returns the rotation in radians.
func (t *Tool) Rotation() float64 { return t.rotation }

// Translation returns the tool origin in document coordinates.
func (t *Tool) Translation() gg.Point { return t.pos }

// Closed reports whether Close has been called.
func (t *Tool) Closed() bool { return t.closed }

// Matrix maps tool-local centimetres to document coordinates:
// scale to document units, rotate, then translate to the origin.
func (t *Tool) Matrix() gg.Matrix {
	return gg.Translate(t.pos.X, t.pos.Y).
		Multiply(gg.Rotate(t.rotation)).
		Multiply(gg.Scale(geomtool.CM, geomtool.CM))
}

// localEdge returns the guiding edge in tool-local centimetres.
func (t *Tool) localEdge() (gg.Point, gg.Point) {
	h := t.height
	if t.kind == geomtool.Compass {
		return gg.Pt(0, 0), gg.Pt(h, 0)
	}
	return gg.Pt(-h, 0), gg.Pt(h, 0)
}

// LongestEdge returns the guiding edge in document coordinates: the ruler's
// top edge, the protractor's diameter, the set square's hypotenuse or the
// compass arm.
func (t *Tool) LongestEdge() (a, b gg.Point) {
	m := t.Matrix()
	la, lb := t.localEdge()
	return m.TransformPoint(la), m.TransformPoint(lb)
}

// localBounds returns the outline extent in tool-local centimetres.
func (t *Tool) localBounds() gg.Rect {
	h := t.height
	switch t.kind {
	case geomtool.Ruler:
		return gg.NewRect(gg.Pt(-h, 0), gg.Pt(h, geomtool.RulerDepth))
	case geomtool.Compass:
		// Outer graduations stick out by 0.4 cm.
		return gg.NewRect(gg.Pt(-h-0.4, -h-0.4), gg.Pt(h+0.4, h+0.4))
	default:
		return gg.NewRect(gg.Pt(-h, 0), gg.Pt(h, h))
	}
}

// Bounds returns the full extent of the tool in document coordinates,
// including room for borders and labels.
func (t *Tool) Bounds() gg.Rect {
	r := geomtool.TransformRect(t.Matrix(), t.localBounds())
	return gg.Rect{
		Min: gg.Pt(r.Min.X-labelMargin, r.Min.Y-labelMargin),
		Max: gg.Pt(r.Max.X+labelMargin, r.Max.Y+labelMargin),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
