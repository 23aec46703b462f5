package gpuhost

import (
	"errors"
	"fmt"

	"github.com/gogpu/geomtool"
	"github.com/gogpu/geomtool/host"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// ErrClosed is returned when the host is used after Close.
var ErrClosed = errors.New("gpuhost: host is closed")

// Host is a repaintable surface backed by a GPU canvas.
//
// Host is not safe for concurrent use.
type Host struct {
	canvas *ggcanvas.Canvas
	page   *host.Page
	closed bool
}

var (
	_ geomtool.Repaintable = (*Host)(nil)
	_ geomtool.StrokeSink  = (*Host)(nil)
)

// New creates a host of the given size on the provider's device.
// The page options are passed to host.NewPage.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...host.PageOption) (*Host, error) {
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("gpuhost: %w", err)
	}
	return &Host{
		canvas: c,
		page:   host.NewPage(width, height, opts...),
	}, nil
}

// Page returns the page holding the overlays and committed strokes.
func (h *Host) Page() *host.Page {
	return h.page
}

// Canvas returns the underlying GPU canvas.
func (h *Host) Canvas() *ggcanvas.Canvas {
	return h.canvas
}

// FlagDirtyRegion records r on the page and marks the canvas for upload.
func (h *Host) FlagDirtyRegion(r gg.Rect) {
	if h.closed {
		return
	}
	h.page.FlagDirtyRegion(r)
	h.canvas.MarkDirty()
}

// AddStroke hands a committed stroke to the page.
func (h *Host) AddStroke(s *geomtool.Stroke) {
	if h.closed {
		return
	}
	h.page.AddStroke(s)
	h.canvas.MarkDirty()
}

// Redraw repaints the damaged part of the page into the canvas.
// It does nothing when no region is dirty.
func (h *Host) Redraw() error {
	if h.closed {
		return ErrClosed
	}
	if !h.page.HasDirtyRegions() {
		return nil
	}
	var renderErr error
	err := h.canvas.Draw(func(dc *gg.Context) {
		renderErr = h.page.Render(dc)
	})
	if err != nil {
		return fmt.Errorf("gpuhost: %w", err)
	}
	return renderErr
}

// Flush redraws and uploads the canvas to its GPU texture.
func (h *Host) Flush() (any, error) {
	if err := h.Redraw(); err != nil {
		return nil, err
	}
	tex, err := h.canvas.Flush()
	if err != nil {
		return nil, fmt.Errorf("gpuhost: %w", err)
	}
	return tex, nil
}

// Close releases the canvas. Further calls are no-ops.
func (h *Host) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.canvas.Close()
}
