package model

import (
	"slices"

	"github.com/gogpu/geomtool"
	"github.com/gogpu/gg"
)

// AddObserver subscribes o to notifications. Adding the same observer
// twice has no effect. Observers added after Close are ignored.
//
// Observers are told apart by ==, so they should be pointers. An observer
// of a non-comparable type is never considered a duplicate and cannot be
// removed with RemoveObserver.
func (t *Tool) AddObserver(o geomtool.Observer) {
	if t.closed || o == nil {
		return
	}
	if slices.ContainsFunc(t.observers, func(x geomtool.Observer) bool { return sameObserver(x, o) }) {
		return
	}
	t.observers = append(t.observers, o)
}

// RemoveObserver unsubscribes o.
func (t *Tool) RemoveObserver(o geomtool.Observer) {
	t.observers = slices.DeleteFunc(t.observers, func(x geomtool.Observer) bool {
		return sameObserver(x, o)
	})
}

// sameObserver reports a == b, treating non-comparable dynamic types as
// distinct instead of panicking.
func sameObserver(a, b geomtool.Observer) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Attach creates a view of t on host and subscribes it.
func (t *Tool) Attach(host geomtool.Repaintable, opts ...geomtool.Option) (*geomtool.View, error) {
	v, err := geomtool.NewView(t, host, opts...)
	if err != nil {
		return nil, err
	}
	t.AddObserver(v)
	return v, nil
}

// Move translates the tool by (dx, dy) document units.
func (t *Tool) Move(dx, dy float64) {
	t.update(func() {
		t.pos = t.pos.Add(gg.Pt(dx, dy))
	})
}

// SetPosition moves the tool origin to (x, y).
func (t *Tool) SetPosition(x, y float64) {
	t.update(func() {
		t.pos = gg.Pt(x, y)
	})
}

// Rotate turns the tool by da radians about its origin.
func (t *Tool) Rotate(da float64) {
	t.update(func() {
		t.rotation += da
	})
}

// SetRotation sets the rotation to angle radians.
func (t *Tool) SetRotation(angle float64) {
	t.update(func() {
		t.rotation = angle
	})
}

// Resize scales the characteristic length by factor, clamped to
// [MinHeight, MaxHeight].
func (t *Tool) Resize(factor float64) {
	t.update(func() {
		t.height = clamp(t.height*factor, MinHeight, MaxHeight)
	})
}

// SetHeight sets the characteristic length, clamped to [MinHeight, MaxHeight].
func (t *Tool) SetHeight(h float64) {
	t.update(func() {
		t.height = clamp(h, MinHeight, MaxHeight)
	})
}

// Close notifies every observer that the tool is going away, passing the
// full tool extent, and drops them. Mutations after Close are ignored.
// Calling Close again has no effect.
func (t *Tool) Close() {
	if t.closed {
		return
	}
	t.closed = true
	r := t.Bounds()
	obs := t.observers
	t.observers = nil
	for _, o := range obs {
		o.OnFinalize(r)
	}
	geomtool.Logger().Debug("model: tool closed", "kind", t.kind, "observers", len(obs))
}

// update applies fn and notifies observers with the new values and the
// region covering both the old and the new extent.
func (t *Tool) update(fn func()) {
	if t.closed {
		return
	}
	old := t.Bounds()
	fn()
	m := t.Matrix()
	dirty := old.Union(t.Bounds())

	// Observers may unsubscribe while being notified.
	obs := slices.Clone(t.observers)
	for _, o := range obs {
		o.OnUpdateValues(t.height, t.rotation, m)
	}
	for _, o := range obs {
		o.OnDirtyRegion(dirty)
	}
}
