package geomtool

import "github.com/gogpu/gg"

// Observer receives the notifications a geometry tool model pushes to its
// views. Delivery is synchronous, on the thread that mutates the model.
type Observer interface {
	// OnDirtyRegion reports that pixels inside r are stale.
	OnDirtyRegion(r gg.Rect)

	// OnUpdateValues reports a new pose: height in centimetres, rotation in
	// radians and the tool-local to document matrix.
	OnUpdateValues(height, rotation float64, m gg.Matrix)

	// OnFinalize is sent once, right before the model is destroyed.
	// r covers the full extent of the tool.
	OnFinalize(r gg.Rect)
}

// Repaintable is the host surface that schedules repaints.
type Repaintable interface {
	// FlagDirtyRegion requests a repaint of r, in document coordinates.
	FlagDirtyRegion(r gg.Rect)
}

// StrokeSink receives finished strokes. Ownership moves to the sink.
type StrokeSink interface {
	AddStroke(s *Stroke)
}

// OverlayView is what a host keeps for each overlay it displays.
type OverlayView interface {
	// Draw renders the overlay.
	Draw(cv Canvas) error

	// IsViewOf reports whether this view renders o.
	IsViewOf(o Overlay) bool
}
