package geomtool

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is the immediate-mode drawing context views render into.
// *gg.Context satisfies it.
//
// Paths are built in user space and transformed by the current matrix when
// they are added; line widths are in device units.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Transform(m gg.Matrix)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	SetColor(c color.Color)
	SetLineWidth(width float64)
	SetLineCap(lineCap gg.LineCap)
	SetDash(lengths ...float64)
	ClearDash()

	Fill() error
	Stroke() error

	// DrawStringAnchored draws s so that the anchor (ax, ay), in fractions
	// of the text extent, lands on (x, y).
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Canvas = (*gg.Context)(nil)
