package config

import (
	"fmt"

	"github.com/gogpu/geomtool"
	"github.com/gogpu/geomtool/host"
	"github.com/gogpu/geomtool/model"
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// Built holds the objects a scene expands to.
type Built struct {
	Page *host.Page
	Tool *model.Tool
	View *geomtool.View
}

// Build creates the page, tool and view described by s, subscribes the
// view and replays the stroke input, if any.
func (s *Scene) Build() (*Built, error) {
	var pageOpts []host.PageOption
	pageOpts = append(pageOpts, host.WithBackground(gg.Hex(s.Page.Background)))
	if s.Page.FontSize > 0 {
		face, err := host.DefaultFace(s.Page.FontSize)
		if err != nil {
			return nil, err
		}
		pageOpts = append(pageOpts, host.WithFace(face))
	}
	page := host.NewPage(s.Page.Width, s.Page.Height, pageOpts...)

	kind, _ := geomtool.ParseKind(s.Tool.Kind)
	toolOpts := []model.Option{
		model.WithPosition(s.Tool.X, s.Tool.Y),
		model.WithRotation(geomtool.Rad(s.Tool.Rotation)),
	}
	if s.Tool.Height > 0 {
		toolOpts = append(toolOpts, model.WithHeight(s.Tool.Height))
	}
	tool, err := model.New(kind, toolOpts...)
	if err != nil {
		return nil, err
	}

	view, err := tool.Attach(page,
		geomtool.WithLanguage(language.Make(s.Language)),
		geomtool.WithLabels(!s.HideLabels))
	if err != nil {
		return nil, err
	}
	page.Add(view)

	if s.Stroke != nil {
		if err := s.Stroke.replay(view, page); err != nil {
			return nil, err
		}
	}
	return &Built{Page: page, Tool: tool, View: view}, nil
}

func (st *Stroke) replay(v *geomtool.View, sink geomtool.StrokeSink) error {
	mode, _ := geomtool.ParseSnapMode(st.Mode)
	style := geomtool.StrokeStyle{Width: st.Width, Color: gg.Hex(st.Color)}
	if err := v.BeginStroke(gg.Pt(st.Anchor[0], st.Anchor[1]), mode, style); err != nil {
		return fmt.Errorf("config: stroke: %w", err)
	}
	for _, p := range st.Points {
		if err := v.ExtendStroke(gg.Pt(p[0], p[1])); err != nil {
			return fmt.Errorf("config: stroke: %w", err)
		}
	}
	if st.Commit {
		v.CommitTo(sink)
	}
	return nil
}
