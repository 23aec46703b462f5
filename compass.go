package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// compassBody is a circle of radius h around the origin with the arm
// (0, 0)-(h, 0) as its guiding edge.
type compassBody struct{}

func (compassBody) draw(cv Canvas, v values, env *bodyEnv) error {
	if !v.drawable() {
		return nil
	}
	h := v.height

	err := inTool(cv, v.matrix, func() error {
		arcTo(cv, 0, 0, h, 0, 2*math.Pi, true)
		cv.ClosePath()
		cv.SetColor(env.theme.Body.Color())
		if err := cv.Fill(); err != nil {
			return err
		}

		arcTo(cv, 0, 0, h, 0, 2*math.Pi, true)
		cv.ClosePath()
		cv.SetColor(env.theme.Border.Color())
		cv.SetLineWidth(borderWidth)
		cv.SetDash(4, 4)
		err := cv.Stroke()
		cv.ClearDash()
		if err != nil {
			return err
		}

		for deg := 0; deg < 360; deg += 5 {
			l := 0.2
			if deg%30 == 0 {
				l = 0.4
			}
			s, c := math.Sincos(Rad(float64(deg)))
			cv.MoveTo(h*c, h*s)
			cv.LineTo((h+l)*c, (h+l)*s)
		}
		centreMark(cv, 0, 0, 0.3)
		if err := strokeTicks(cv, env); err != nil {
			return err
		}

		cv.MoveTo(0, 0)
		cv.LineTo(h, 0)
		cv.SetColor(env.theme.Border.Color())
		cv.SetLineWidth(armWidth)
		return cv.Stroke()
	})
	if err != nil {
		return err
	}

	label(cv, v, env, gg.Pt(h/2, -0.4), env.lbl.length(h), v.rotation)
	return nil
}
