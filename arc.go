package geomtool

import "math"

// arcTo appends a circular arc centred at (cx, cy) from angle a1 to a2
// (radians, a2 >= a1) as cubic Bézier segments of at most a quarter turn.
// Unlike gg.Context.DrawArc, the radius goes through the current transform.
//
// When move is true the arc starts a new subpath, otherwise it is joined
// to the current point with a line.
func arcTo(cv Canvas, cx, cy, r, a1, a2 float64, move bool) {
	x0, y0 := cx+r*math.Cos(a1), cy+r*math.Sin(a1)
	if move {
		cv.MoveTo(x0, y0)
	} else {
		cv.LineTo(x0, y0)
	}
	if a2 <= a1 || r <= 0 {
		return
	}

	n := int(math.Ceil((a2 - a1) / (math.Pi / 2)))
	step := (a2 - a1) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		e := s + step
		cs, ss := math.Cos(s), math.Sin(s)
		ce, se := math.Cos(e), math.Sin(e)
		cv.CubicTo(
			cx+r*(cs-k*ss), cy+r*(ss+k*cs),
			cx+r*(ce+k*se), cy+r*(se-k*ce),
			cx+r*ce, cy+r*se,
		)
	}
}
