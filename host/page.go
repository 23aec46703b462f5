package host

import (
	"errors"
	"slices"

	"github.com/gogpu/geomtool"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// maxDirtyRects is the threshold after which the page switches to a full redraw.
const maxDirtyRects = 16

// Page is a drawing page: a background, committed strokes and overlay views.
// It implements geomtool.Repaintable and geomtool.StrokeSink.
//
// Page is not safe for concurrent use.
type Page struct {
	width, height int
	background    gg.RGBA
	face          text.Face

	views   []geomtool.OverlayView
	strokes []*geomtool.Stroke

	dirtyRects []gg.Rect
	fullRedraw bool
}

var (
	_ geomtool.Repaintable = (*Page)(nil)
	_ geomtool.StrokeSink  = (*Page)(nil)
)

// PageOption configures a Page during creation.
type PageOption func(*Page)

// WithBackground sets the page colour. The default is white.
func WithBackground(c gg.RGBA) PageOption {
	return func(p *Page) {
		p.background = c
	}
}

// WithFace sets the font used for tool labels. Without a face gg draws no text.
func WithFace(f text.Face) PageOption {
	return func(p *Page) {
		p.face = f
	}
}

// NewPage creates a page of the given size in document units.
// A new page needs a full redraw.
func NewPage(width, height int, opts ...PageOption) *Page {
	p := &Page{
		width:      width,
		height:     height,
		background: gg.White,
		fullRedraw: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Width returns the page width.
func (p *Page) Width() int { return p.width }

// Height returns the page height.
func (p *Page) Height() int { return p.height }

// Add puts v on top of the overlay stack.
func (p *Page) Add(v geomtool.OverlayView) {
	p.views = append(p.views, v)
}

// Views returns the overlay views in drawing order.
func (p *Page) Views() []geomtool.OverlayView {
	return slices.Clone(p.views)
}

// ViewOf returns the view rendering o.
func (p *Page) ViewOf(o geomtool.Overlay) (geomtool.OverlayView, bool) {
	for _, v := range p.views {
		if v.IsViewOf(o) {
			return v, true
		}
	}
	return nil, false
}

// Remove drops the view rendering o and flags the overlay's area.
// It reports whether such a view was found.
func (p *Page) Remove(o geomtool.Overlay) bool {
	i := slices.IndexFunc(p.views, func(v geomtool.OverlayView) bool {
		return v.IsViewOf(o)
	})
	if i < 0 {
		return false
	}
	p.views = slices.Delete(p.views, i, i+1)
	p.FlagDirtyRegion(o.Bounds())
	return true
}

// RemoveView drops v itself, whether or not it is still attached to a tool.
func (p *Page) RemoveView(v geomtool.OverlayView) bool {
	i := slices.Index(p.views, v)
	if i < 0 {
		return false
	}
	p.views = slices.Delete(p.views, i, i+1)
	p.fullRedraw = true
	return true
}

// AddStroke takes ownership of a committed stroke.
func (p *Page) AddStroke(s *geomtool.Stroke) {
	if s == nil {
		return
	}
	p.strokes = append(p.strokes, s)
	p.FlagDirtyRegion(s.Bounds())
}

// Strokes returns the committed strokes in drawing order.
func (p *Page) Strokes() []*geomtool.Stroke {
	return slices.Clone(p.strokes)
}

// FlagDirtyRegion marks r for repaint. Rectangles without area are ignored.
func (p *Page) FlagDirtyRegion(r gg.Rect) {
	if p.fullRedraw {
		return
	}
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	p.dirtyRects = append(p.dirtyRects, r)
	if len(p.dirtyRects) > maxDirtyRects {
		p.InvalidateAll()
	}
}

// InvalidateAll forces a full redraw on the next Render.
func (p *Page) InvalidateAll() {
	p.fullRedraw = true
	p.dirtyRects = p.dirtyRects[:0]
}

// DirtyRegions returns the pending rectangles, or nil when a full redraw
// is pending. The slice must not be modified.
func (p *Page) DirtyRegions() []gg.Rect {
	if p.fullRedraw {
		return nil
	}
	return p.dirtyRects
}

// NeedsFullRedraw reports whether the whole page will be repainted.
func (p *Page) NeedsFullRedraw() bool {
	return p.fullRedraw
}

// HasDirtyRegions reports whether Render has anything to do.
func (p *Page) HasDirtyRegions() bool {
	return p.fullRedraw || len(p.dirtyRects) > 0
}

// ClearDirty resets damage tracking.
func (p *Page) ClearDirty() {
	p.dirtyRects = p.dirtyRects[:0]
	p.fullRedraw = false
}

// damage returns the union of the pending rectangles.
func (p *Page) damage() gg.Rect {
	u := p.dirtyRects[0]
	for _, r := range p.dirtyRects[1:] {
		u = u.Union(r)
	}
	return u
}

// Render repaints the damaged area of the page into dc: background,
// committed strokes, then overlay views in order. Damage is cleared even
// when a view fails; all errors are returned joined.
func (p *Page) Render(dc *gg.Context) error {
	if !p.HasDirtyRegions() {
		return nil
	}
	defer p.ClearDirty()

	dc.Push()
	defer dc.Pop()
	if !p.fullRedraw {
		d := p.damage()
		dc.ClipRect(d.Min.X, d.Min.Y, d.Width(), d.Height())
	}
	if p.face != nil {
		dc.SetFont(p.face)
	}

	var errs []error
	dc.SetColor(p.background.Color())
	dc.DrawRectangle(0, 0, float64(p.width), float64(p.height))
	if err := dc.Fill(); err != nil {
		errs = append(errs, err)
	}
	for _, s := range p.strokes {
		if err := s.Draw(dc); err != nil {
			errs = append(errs, err)
		}
	}
	for _, v := range p.views {
		if err := v.Draw(dc); err != nil {
			geomtool.Logger().Warn("host: overlay draw failed", "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RenderAll repaints the whole page.
func (p *Page) RenderAll(dc *gg.Context) error {
	p.InvalidateAll()
	return p.Render(dc)
}
