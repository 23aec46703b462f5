// Package geomtool renders drafting instruments (ruler, protractor, set
// square, compass) over a freehand-drawing page and snaps the temporary
// ink stroke drawn with them to the instrument's guiding edge.
//
// # Overview
//
// A geometry tool model (see package model) owns the pose of the
// instrument. A [View] observes the model and draws it:
//
//	tool, _ := model.New(geomtool.Setsquare, model.WithPosition(300, 300))
//	page := host.NewPage(800, 600)
//	view, _ := geomtool.NewView(tool, page)
//	tool.AddObserver(view)
//	page.Add(view)
//
//	tool.Rotate(geomtool.Rad(15)) // view caches the pose, page gets a dirty rect
//	_ = page.Render(dc)           // dc is a *gg.Context
//
// # Notifications
//
// The model pushes exactly three notifications through [Observer]:
// a dirty region, new pose values, and finalization. A dirty region is
// forwarded unchanged to the [Repaintable] host. New values only refresh
// the view's render cache. Finalization detaches the view for good; after
// it, the view draws only its temporary stroke.
//
// # Temporary stroke
//
// Stroke input goes through [View.BeginStroke], [View.ExtendStroke] and
// [View.CommitStroke]. The stroke always lies on the tool's longest edge,
// either from the projected anchor to the projected pointer
// ([SnapAlongEdge]) or from the projected pointer to the edge midpoint
// ([SnapToMidpoint]). Committing moves the stroke out of the view.
//
// # Coordinate System
//
// Document coordinates follow gg: origin top-left, Y down, angles in
// radians. Tool-local geometry is in centimetres; see [CM].
package geomtool
