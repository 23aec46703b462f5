package geomtool

import (
	"fmt"

	"github.com/gogpu/gg"
)

// View renders a geometry tool and the temporary stroke drawn along it.
//
// A View holds non-owning references to its tool and host. The tool must
// deliver OnFinalize before it is destroyed; from then on the View never
// touches it again. The host must outlive the View.
//
// View implements Observer and OverlayView. It is not safe for concurrent
// use; notifications, input and drawing all happen on the UI thread.
type View struct {
	tool Tool
	host Repaintable
	body body
	env  bodyEnv
	vals values

	stroke *Stroke
	input  strokeInput
}

// strokeInput is the pointer state that determines the snapped stroke.
type strokeInput struct {
	active bool
	anchor gg.Point
	live   gg.Point
	mode   SnapMode
	style  StrokeStyle
}

var (
	_ Observer    = (*View)(nil)
	_ OverlayView = (*View)(nil)
)

// NewView creates the view of t on host. The body variant is chosen from
// t.Kind() and fixed for the lifetime of the view.
//
// NewView does not subscribe the view to t; the model's owner registers it.
func NewView(t Tool, host Repaintable, opts ...Option) (*View, error) {
	if t == nil {
		return nil, ErrNilTool
	}
	if host == nil {
		return nil, ErrNilHost
	}
	b, ok := bodyFor(t.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, t.Kind())
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &View{
		tool: t,
		host: host,
		body: b,
		env: bodyEnv{
			theme:  o.theme,
			lbl:    newLabeler(o.lang),
			labels: o.labels,
		},
		vals: valuesOf(t),
	}, nil
}

// OnDirtyRegion forwards r unchanged to the host.
func (v *View) OnDirtyRegion(r gg.Rect) {
	if v.tool == nil {
		return
	}
	v.host.FlagDirtyRegion(r)
}

// OnUpdateValues refreshes the cached pose used for drawing.
// It does not request a repaint; a dirty region notification follows.
func (v *View) OnUpdateValues(height, rotation float64, m gg.Matrix) {
	if v.tool == nil {
		return
	}
	v.vals = values{height: height, rotation: rotation, matrix: m}
	if v.input.active && v.stroke != nil {
		// The paired dirty region covers the edge before and after the move.
		v.snapStroke()
	}
	Logger().Debug("geomtool: values updated",
		"kind", v.tool.Kind(), "height", height, "rotation", rotation)
}

// OnFinalize detaches the view from its tool and requests one last repaint
// of r so the tool body disappears. Later notifications are ignored.
func (v *View) OnFinalize(r gg.Rect) {
	if v.tool == nil {
		return
	}
	Logger().Info("geomtool: tool finalized", "kind", v.tool.Kind())
	v.tool = nil
	v.input.active = false
	v.host.FlagDirtyRegion(r)
}

// Detached reports whether the tool has been finalized.
func (v *View) Detached() bool {
	return v.tool == nil
}

// IsViewOf reports whether v renders the overlay o.
// A detached view renders no overlay.
func (v *View) IsViewOf(o Overlay) bool {
	if v.tool == nil || o == nil {
		return false
	}
	return Overlay(v.tool) == o
}

// Draw renders the tool body and then the temporary stroke, both from the
// state cached by the last notification or input. After finalization only
// the stroke is drawn. Draw does not change any state, so repeated calls
// issue the same primitives.
func (v *View) Draw(cv Canvas) error {
	if v.tool != nil {
		if err := v.body.draw(cv, v.vals, &v.env); err != nil {
			return fmt.Errorf("geomtool: draw %s: %w", v.tool.Kind(), err)
		}
	}
	return v.drawTemporaryStroke(cv)
}

// drawTemporaryStroke renders the stroke as last snapped. Like the body it
// only changes on notifications and input, never during Draw.
func (v *View) drawTemporaryStroke(cv Canvas) error {
	if v.stroke == nil {
		return nil
	}
	return v.stroke.Draw(cv)
}

// snapStroke rebuilds the stroke from the pointer input and the tool's
// current edge. A degenerate edge leaves the stroke empty.
func (v *View) snapStroke() {
	a, b := v.tool.LongestEdge()
	v.stroke.setPoints(snapPath(a, b, v.input.anchor, v.input.live, v.input.mode))
}

// Stroke returns the temporary stroke, or nil when none is in progress.
func (v *View) Stroke() *Stroke {
	return v.stroke
}

// BeginStroke starts snapped input at anchor. A previous uncommitted stroke
// is discarded. The stroke itself is created by the first ExtendStroke.
func (v *View) BeginStroke(anchor gg.Point, mode SnapMode, style StrokeStyle) error {
	if v.tool == nil {
		return ErrDetached
	}
	if v.stroke != nil {
		r := v.stroke.Bounds()
		v.stroke = nil
		v.flag(r)
	}
	v.input = strokeInput{
		active: true,
		anchor: anchor,
		live:   anchor,
		mode:   mode,
		style:  style,
	}
	return nil
}

// ExtendStroke moves the live pointer to p and snaps the stroke to the
// tool's longest edge. The union of the old and new stroke area is flagged
// for repaint.
func (v *View) ExtendStroke(p gg.Point) error {
	if v.tool == nil {
		return ErrDetached
	}
	if !v.input.active {
		return ErrNoStroke
	}
	v.input.live = p

	var old gg.Rect
	if v.stroke == nil {
		v.stroke = NewStroke(v.input.style)
	} else {
		old = v.stroke.Bounds()
	}

	v.snapStroke()
	v.flag(old, v.stroke.Bounds())

	Logger().Debug("geomtool: stroke extended", "points", v.stroke.Len(), "mode", v.input.mode)
	return nil
}

// CommitStroke hands the temporary stroke off to the caller and clears the
// view's reference. It returns nil when there is nothing worth keeping.
func (v *View) CommitStroke() *Stroke {
	s := v.takeStroke()
	if s == nil {
		return nil
	}
	v.flag(s.Bounds())
	return s
}

// CommitTo hands the temporary stroke to sink. It reports whether a stroke
// was transferred.
func (v *View) CommitTo(sink StrokeSink) bool {
	s := v.takeStroke()
	if s == nil {
		return false
	}
	sink.AddStroke(s)
	v.flag(s.Bounds())
	return true
}

func (v *View) takeStroke() *Stroke {
	s := v.stroke
	v.stroke = nil
	v.input.active = false
	if s == nil {
		return nil
	}
	if s.Empty() {
		v.flag(s.Bounds())
		return nil
	}
	Logger().Info("geomtool: stroke committed", "points", s.Len())
	return s
}

// flag requests a repaint of the union of the non-empty rectangles.
func (v *View) flag(rs ...gg.Rect) {
	var (
		u  gg.Rect
		ok bool
	)
	for _, r := range rs {
		if r.Width() <= 0 && r.Height() <= 0 {
			continue
		}
		if !ok {
			u, ok = r, true
			continue
		}
		u = u.Union(r)
	}
	if ok {
		v.host.FlagDirtyRegion(u)
	}
}
