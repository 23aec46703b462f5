package geomtool

import (
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// Theme holds the colours used to draw tool bodies.
type Theme struct {
	// Body fills the instrument outline.
	Body gg.RGBA
	// Border outlines the instrument.
	Border gg.RGBA
	// Ticks draws graduations and guides.
	Ticks gg.RGBA
	// Labels draws numbers and readouts.
	Labels gg.RGBA
}

// DefaultTheme is a translucent grey instrument with dark graduations.
var DefaultTheme = Theme{
	Body:   gg.RGBA2(0.7, 0.75, 0.8, 0.25),
	Border: gg.RGBA2(0.2, 0.2, 0.25, 0.9),
	Ticks:  gg.RGBA2(0.1, 0.1, 0.15, 0.9),
	Labels: gg.RGBA2(0.1, 0.1, 0.15, 1),
}

// Option configures a View during creation.
//
// Example:
//
//	v, err := geomtool.NewView(tool, page,
//	    geomtool.WithTheme(myTheme),
//	    geomtool.WithLanguage(language.German))
type Option func(*viewOptions)

type viewOptions struct {
	theme  Theme
	lang   language.Tag
	labels bool
}

func defaultOptions() viewOptions {
	return viewOptions{
		theme:  DefaultTheme,
		lang:   language.English,
		labels: true,
	}
}

// WithTheme sets the colours of the tool body.
func WithTheme(t Theme) Option {
	return func(o *viewOptions) {
		o.theme = t
	}
}

// WithLanguage sets the locale used to format numeric labels.
func WithLanguage(tag language.Tag) Option {
	return func(o *viewOptions) {
		o.lang = tag
	}
}

// WithLabels enables or disables numeric labels. Labels are on by default.
func WithLabels(on bool) Option {
	return func(o *viewOptions) {
		o.labels = on
	}
}
