package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// SnapMode selects how the temporary stroke follows the guiding edge.
type SnapMode uint8

const (
	// SnapAlongEdge runs from the projected anchor to the projected pointer.
	SnapAlongEdge SnapMode = iota
	// SnapToMidpoint runs from the projected pointer to the edge midpoint.
	SnapToMidpoint
)

// String returns the mode name used in scene files.
func (m SnapMode) String() string {
	switch m {
	case SnapAlongEdge:
		return "edge"
	case SnapToMidpoint:
		return "midpoint"
	default:
		return "unknown"
	}
}

// ParseSnapMode returns the SnapMode named s.
func ParseSnapMode(s string) (SnapMode, bool) {
	switch s {
	case "edge", "":
		return SnapAlongEdge, true
	case "midpoint":
		return SnapToMidpoint, true
	}
	return 0, false
}

// degenerateEps is the squared length below which an edge or a path has no extent.
const degenerateEps = 1e-18

// SnapPoint projects p orthogonally onto the segment ab, clamped to its ends.
// ok is false when ab has zero length.
func SnapPoint(a, b, p gg.Point) (q gg.Point, ok bool) {
	d := b.Sub(a)
	l2 := d.LengthSquared()
	if l2 < degenerateEps || math.IsNaN(l2) {
		return gg.Point{}, false
	}
	t := p.Sub(a).Dot(d) / l2
	t = math.Max(0, math.Min(1, t))
	return a.Add(d.Mul(t)), true
}

// snapPath returns the two-point path a snapped stroke follows on edge ab.
// It returns nil when the edge or the resulting path is degenerate.
func snapPath(a, b, anchor, live gg.Point, mode SnapMode) []gg.Point {
	p, ok := SnapPoint(a, b, live)
	if !ok {
		return nil
	}
	var path []gg.Point
	switch mode {
	case SnapToMidpoint:
		path = []gg.Point{p, a.Lerp(b, 0.5)}
	default:
		start, _ := SnapPoint(a, b, anchor)
		path = []gg.Point{start, p}
	}
	if path[1].Sub(path[0]).LengthSquared() < degenerateEps {
		return nil
	}
	return path
}
