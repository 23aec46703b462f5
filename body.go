package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// values is the render cache refreshed by OnUpdateValues.
type values struct {
	height   float64
	rotation float64
	matrix   gg.Matrix
}

// valuesOf reads the current pose of t.
func valuesOf(t Tool) values {
	return values{height: t.Height(), rotation: t.Rotation(), matrix: t.Matrix()}
}

// drawable reports whether the cached pose describes a body with extent.
func (v values) drawable() bool {
	return v.height > 0 && !math.IsInf(v.height, 0)
}

// bodyEnv is the per-view styling shared by every body.
type bodyEnv struct {
	theme  Theme
	lbl    labeler
	labels bool
}

// body draws one instrument variant in tool-local centimetres.
type body interface {
	draw(cv Canvas, v values, env *bodyEnv) error
}

// bodyFor returns the body for k. The set of variants is closed.
func bodyFor(k Kind) (body, bool) {
	switch k {
	case Ruler:
		return rulerBody{}, true
	case Protractor:
		return protractorBody{}, true
	case Setsquare:
		return setsquareBody{}, true
	case Compass:
		return compassBody{}, true
	}
	return nil, false
}

const (
	borderWidth = 1.0
	tickWidth   = 0.5
	armWidth    = 1.5
)

// inTool runs fn with cv transformed into tool-local centimetres.
func inTool(cv Canvas, m gg.Matrix, fn func() error) error {
	cv.Push()
	defer cv.Pop()
	cv.Transform(m)
	return fn()
}

// fillAndOutline fills the path built by outline with the body colour and
// strokes it with the border colour.
func fillAndOutline(cv Canvas, env *bodyEnv, outline func()) error {
	outline()
	cv.SetColor(env.theme.Body.Color())
	if err := cv.Fill(); err != nil {
		return err
	}
	outline()
	cv.SetColor(env.theme.Border.Color())
	cv.SetLineWidth(borderWidth)
	return cv.Stroke()
}

// strokeTicks strokes the current path with the graduation style.
func strokeTicks(cv Canvas, env *bodyEnv) error {
	cv.SetColor(env.theme.Ticks.Color())
	cv.SetLineWidth(tickWidth)
	return cv.Stroke()
}

// centreMark adds a small cross at (x, y) to the current path.
func centreMark(cv Canvas, x, y, size float64) {
	cv.MoveTo(x-size, y)
	cv.LineTo(x+size, y)
	cv.MoveTo(x, y-size)
	cv.LineTo(x, y+size)
}

// graduation returns the tick length for the i-th millimetre.
func graduation(i int) float64 {
	switch {
	case i%10 == 0:
		return 0.5
	case i%5 == 0:
		return 0.35
	default:
		return 0.2
	}
}

// label draws s at the tool-local point p, rotated by angle radians in
// document space. Text is placed outside the tool transform so the font
// is not scaled by it.
func label(cv Canvas, v values, env *bodyEnv, p gg.Point, s string, angle float64) {
	if !env.labels {
		return
	}
	q := v.matrix.TransformPoint(p)
	cv.Push()
	defer cv.Pop()
	cv.SetColor(env.theme.Labels.Color())
	cv.Translate(q.X, q.Y)
	ShowTextCenteredAndRotated(cv, s, angle)
}
