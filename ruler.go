package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// RulerDepth is the width of the ruler body in centimetres.
const RulerDepth = 1.5

// rulerBody is a straight edge from (-h, 0) to (h, 0) with the body below it.
// Graduations count centimetres from the left end.
type rulerBody struct{}

func (rulerBody) draw(cv Canvas, v values, env *bodyEnv) error {
	if !v.drawable() {
		return nil
	}
	h := v.height
	n := int(math.Floor(2*h*10 + 1e-9))

	err := inTool(cv, v.matrix, func() error {
		err := fillAndOutline(cv, env, func() {
			cv.MoveTo(-h, 0)
			cv.LineTo(h, 0)
			cv.LineTo(h, RulerDepth)
			cv.LineTo(-h, RulerDepth)
			cv.ClosePath()
		})
		if err != nil {
			return err
		}
		for i := 0; i <= n; i++ {
			x := -h + float64(i)/10
			cv.MoveTo(x, 0)
			cv.LineTo(x, graduation(i))
		}
		return strokeTicks(cv, env)
	})
	if err != nil {
		return err
	}

	for i := 0; i <= n; i += 10 {
		x := -h + float64(i)/10
		label(cv, v, env, gg.Pt(x, 0.8), env.lbl.integer(i/10), v.rotation)
	}
	return nil
}
