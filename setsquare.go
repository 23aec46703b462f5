package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// setsquareBody is the right isosceles triangle (-h, 0), (h, 0), (0, h).
// The hypotenuse carries millimetre graduations counted from its midpoint;
// an inner arc carries degree graduations around that midpoint.
type setsquareBody struct{}

func (setsquareBody) draw(cv Canvas, v values, env *bodyEnv) error {
	if !v.drawable() {
		return nil
	}
	h := v.height
	n := int(math.Floor(h*10 + 1e-9))
	// Every point of this arc lies inside the triangle: r(sin a + |cos a|) <= h.
	r := 0.6 * h

	err := inTool(cv, v.matrix, func() error {
		err := fillAndOutline(cv, env, func() {
			cv.MoveTo(-h, 0)
			cv.LineTo(h, 0)
			cv.LineTo(0, h)
			cv.ClosePath()
		})
		if err != nil {
			return err
		}
		for i := -n; i <= n; i++ {
			x := float64(i) / 10
			l := math.Min(graduation(absInt(i)), h-math.Abs(x))
			if l <= 0 {
				continue
			}
			cv.MoveTo(x, 0)
			cv.LineTo(x, l)
		}
		for deg := 0; deg <= 180; deg++ {
			l := graduation(deg) * 0.6
			if l >= r {
				continue
			}
			s, c := math.Sincos(Rad(float64(deg)))
			cv.MoveTo(r*c, r*s)
			cv.LineTo((r-l)*c, (r-l)*s)
		}
		return strokeTicks(cv, env)
	})
	if err != nil {
		return err
	}

	for i := -n + 10; i <= n-10; i += 10 {
		x := float64(i) / 10
		label(cv, v, env, gg.Pt(x, 0.75), env.lbl.integer(absInt(i)/10), v.rotation)
	}
	if lr := r - 0.6; lr > 0 {
		for deg := 10; deg <= 170; deg += 10 {
			a := Rad(float64(deg))
			s, c := math.Sincos(a)
			label(cv, v, env, gg.Pt(lr*c, lr*s), env.lbl.integer(deg), v.rotation+a-math.Pi/2)
		}
	}
	label(cv, v, env, gg.Pt(0, 0.3*h), env.lbl.angle(Deg(v.rotation)), v.rotation)
	return nil
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
