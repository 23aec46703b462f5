package geomtool

import (
	"math"

	"github.com/gogpu/gg"
)

// CM is the number of document units (points) per centimetre.
// Tool-local geometry is expressed in centimetres.
const CM = 72 / 2.54

// Rad converts an angle in degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Deg converts an angle in radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Cathete returns the length of the missing leg of a right triangle with
// hypotenuse h and other leg o, that is sqrt(h² - o²).
//
// The caller must ensure h >= |o|. Outside that domain the result is NaN;
// it is never clamped to a plausible length.
func Cathete(h, o float64) float64 {
	return math.Sqrt(h*h - o*o)
}

// boundsOf returns the smallest rectangle containing all points.
// It returns the zero Rect and false when pts is empty.
func boundsOf(pts ...gg.Point) (gg.Rect, bool) {
	if len(pts) == 0 {
		return gg.Rect{}, false
	}
	r := gg.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Union(gg.Rect{Min: p, Max: p})
	}
	return r, true
}

// padRect grows r by d on every side.
func padRect(r gg.Rect, d float64) gg.Rect {
	return gg.Rect{
		Min: gg.Pt(r.Min.X-d, r.Min.Y-d),
		Max: gg.Pt(r.Max.X+d, r.Max.Y+d),
	}
}

// TransformRect returns the axis-aligned bounding box of r after applying m.
func TransformRect(m gg.Matrix, r gg.Rect) gg.Rect {
	out, _ := boundsOf(
		m.TransformPoint(r.Min),
		m.TransformPoint(gg.Pt(r.Max.X, r.Min.Y)),
		m.TransformPoint(r.Max),
		m.TransformPoint(gg.Pt(r.Min.X, r.Max.Y)),
	)
	return out
}
