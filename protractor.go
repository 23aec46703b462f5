package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// protractorBody is a half disk of radius h below the diameter (-h, 0)-(h, 0).
// Degrees grow clockwise on screen from the right end of the diameter.
type protractorBody struct{}

func (protractorBody) draw(cv Canvas, v values, env *bodyEnv) error {
	if !v.drawable() {
		return nil
	}
	h := v.height

	err := inTool(cv, v.matrix, func() error {
		err := fillAndOutline(cv, env, func() {
			arcTo(cv, 0, 0, h, 0, math.Pi, true)
			cv.ClosePath()
		})
		if err != nil {
			return err
		}
		for deg := 0; deg <= 180; deg++ {
			l := graduation(deg)
			if l >= h {
				continue
			}
			s, c := math.Sincos(Rad(float64(deg)))
			cv.MoveTo(h*c, h*s)
			cv.LineTo((h-l)*c, (h-l)*s)
		}
		centreMark(cv, 0, 0, 0.3)
		return strokeTicks(cv, env)
	})
	if err != nil {
		return err
	}

	r := h - 0.9
	if r <= 0 {
		return nil
	}
	for deg := 0; deg <= 180; deg += 10 {
		a := Rad(float64(deg))
		s, c := math.Sincos(a)
		label(cv, v, env, gg.Pt(r*c, r*s), env.lbl.integer(deg), v.rotation+a-math.Pi/2)
	}
	return nil
}
