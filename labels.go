package geomtool

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// labeler formats numeric readouts for the user's locale.
type labeler struct {
	p *message.Printer
}

func newLabeler(tag language.Tag) labeler {
	return labeler{p: message.NewPrinter(tag)}
}

// length formats a length in centimetres with one decimal.
func (l labeler) length(cm float64) string {
	return l.p.Sprintf("%.1f cm", cm)
}

// angle formats an angle given in degrees with one decimal, normalized to [0, 360).
func (l labeler) angle(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 359.95 {
		deg = 0
	}
	return l.p.Sprintf("%.1f°", deg)
}

// integer formats a graduation number.
func (l labeler) integer(n int) string {
	return l.p.Sprintf("%d", n)
}
