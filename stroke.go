package geomtool

import (
	"github.com/gogpu/gg"
)

// StrokeStyle carries the pen settings a stroke inherits when it starts.
type StrokeStyle struct {
	// Width is the pen width in document units.
	Width float64
	// Color is the pen colour.
	Color gg.RGBA
}

// DefaultStrokeStyle is a thin black pen.
var DefaultStrokeStyle = StrokeStyle{Width: 1.41, Color: gg.Black}

// Stroke is an ink polyline in document coordinates.
//
// A temporary stroke belongs to exactly one view until it is committed;
// after that it belongs to whoever received it.
type Stroke struct {
	points []gg.Point
	style  StrokeStyle
}

// NewStroke returns an empty stroke with the given style.
func NewStroke(style StrokeStyle) *Stroke {
	return &Stroke{style: style}
}

// Style returns the pen settings.
func (s *Stroke) Style() StrokeStyle {
	return s.style
}

// Points returns a copy of the polyline.
func (s *Stroke) Points() []gg.Point {
	out := make([]gg.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points.
func (s *Stroke) Len() int {
	return len(s.points)
}

// Empty reports whether the stroke has nothing to draw.
func (s *Stroke) Empty() bool {
	return len(s.points) < 2
}

// AddPoint appends p to the polyline.
func (s *Stroke) AddPoint(p gg.Point) {
	s.points = append(s.points, p)
}

// setPoints replaces the polyline with pts.
func (s *Stroke) setPoints(pts []gg.Point) {
	s.points = append(s.points[:0], pts...)
}

// Bounds returns the area covered by the ink, including half the pen width.
// An empty stroke has the zero Rect.
func (s *Stroke) Bounds() gg.Rect {
	r, ok := boundsOf(s.points...)
	if !ok {
		return gg.Rect{}
	}
	return padRect(r, s.style.Width/2)
}

// Draw renders the stroke's own polyline. Hosts use it for committed strokes.
func (s *Stroke) Draw(cv Canvas) error {
	return s.draw(cv, s.points)
}

// draw strokes pts with the stroke's style. Fewer than two points draw nothing.
func (s *Stroke) draw(cv Canvas, pts []gg.Point) error {
	if len(pts) < 2 {
		return nil
	}
	cv.SetColor(s.style.Color.Color())
	cv.SetLineWidth(s.style.Width)
	cv.SetLineCap(gg.LineCapRound)
	cv.ClearDash()
	cv.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		cv.LineTo(p.X, p.Y)
	}
	return cv.Stroke()
}
