// Package config loads scene descriptions for the geomdemo command.
//
// A scene is a TOML document describing a page, one geometry tool and an
// optional stroke drawn along it:
//
//	language = "de"
//
//	[page]
//	width = 800
//	height = 600
//	background = "#fdfdf6"
//
//	[tool]
//	kind = "setsquare"
//	x = 400
//	y = 300
//	rotation = 15   # degrees
//
//	[stroke]
//	mode = "edge"
//	anchor = [300, 300]
//	points = [[350, 310], [480, 320]]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/geomtool"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("config: invalid scene")

// Scene is a complete scene description.
type Scene struct {
	Language   string  `toml:"language"`
	HideLabels bool    `toml:"hide_labels"`
	Page       Page    `toml:"page"`
	Tool       Tool    `toml:"tool"`
	Stroke     *Stroke `toml:"stroke"`
}

// Page describes the drawing page.
type Page struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	FontSize   float64 `toml:"font_size"`
}

// Tool describes the geometry tool pose.
type Tool struct {
	Kind string `toml:"kind"`
	// Height in centimetres; zero selects the kind's default.
	Height float64 `toml:"height"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	// Rotation in degrees.
	Rotation float64 `toml:"rotation"`
}

// Stroke describes pointer input along the tool.
type Stroke struct {
	Mode   string      `toml:"mode"`
	Anchor []float64   `toml:"anchor"`
	Points [][]float64 `toml:"points"`
	Width  float64     `toml:"width"`
	Color  string      `toml:"color"`
	// Commit hands the stroke to the page after the last point.
	Commit bool `toml:"commit"`
}

// Default returns the scene used when no file is given.
func Default() *Scene {
	return &Scene{
		Language: "en",
		Page: Page{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
			FontSize:   9,
		},
		Tool: Tool{
			Kind: geomtool.Setsquare.String(),
			X:    400,
			Y:    300,
		},
	}
}

// Decode parses a TOML scene on top of Default and validates it.
// Unknown keys are rejected.
func Decode(data []byte) (*Scene, error) {
	s := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			e := serr.Errors[0]
			row, col := e.Position()
			return nil, fmt.Errorf("%w: line %d column %d: unknown key %q",
				ErrInvalidScene, row, col, strings.Join(e.Key(), "."))
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrInvalidScene, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if s.Stroke != nil {
		s.Stroke.applyDefaults()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (st *Stroke) applyDefaults() {
	if st.Width == 0 {
		st.Width = geomtool.DefaultStrokeStyle.Width
	}
	if st.Color == "" {
		st.Color = "#000000"
	}
}

// Validate checks every field and reports the first problem.
func (s *Scene) Validate() error {
	if s.Page.Width <= 0 || s.Page.Height <= 0 {
		return fmt.Errorf("%w: page size %dx%d", ErrInvalidScene, s.Page.Width, s.Page.Height)
	}
	if s.Page.FontSize < 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalidScene, s.Page.FontSize)
	}
	if !validHex(s.Page.Background) {
		return fmt.Errorf("%w: background %q", ErrInvalidScene, s.Page.Background)
	}
	if _, ok := geomtool.ParseKind(s.Tool.Kind); !ok {
		return fmt.Errorf("%w: tool kind %q", ErrInvalidScene, s.Tool.Kind)
	}
	if s.Tool.Height < 0 {
		return fmt.Errorf("%w: tool height %g", ErrInvalidScene, s.Tool.Height)
	}
	if _, err := language.Parse(s.Language); err != nil {
		return fmt.Errorf("%w: language %q: %w", ErrInvalidScene, s.Language, err)
	}
	if s.Stroke == nil {
		return nil
	}

	st := s.Stroke
	if _, ok := geomtool.ParseSnapMode(st.Mode); !ok {
		return fmt.Errorf("%w: stroke mode %q", ErrInvalidScene, st.Mode)
	}
	if len(st.Anchor) != 2 {
		return fmt.Errorf("%w: stroke anchor needs 2 coordinates, got %d", ErrInvalidScene, len(st.Anchor))
	}
	if len(st.Points) == 0 {
		return fmt.Errorf("%w: stroke has no points", ErrInvalidScene)
	}
	for i, p := range st.Points {
		if len(p) != 2 {
			return fmt.Errorf("%w: stroke point %d needs 2 coordinates, got %d", ErrInvalidScene, i, len(p))
		}
	}
	if st.Width <= 0 {
		return fmt.Errorf("%w: stroke width %g", ErrInvalidScene, st.Width)
	}
	if !validHex(st.Color) {
		return fmt.Errorf("%w: stroke color %q", ErrInvalidScene, st.Color)
	}
	return nil
}

// validHex accepts the forms gg.Hex understands: #RGB, #RGBA, #RRGGBB, #RRGGBBAA.
func validHex(s string) bool {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
