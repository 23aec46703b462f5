// Package host provides a CPU page that hosts geometry tool views.
//
// Page plays the part of the repaintable surface and of the document: it
// collects dirty regions flagged by views, keeps the strokes they commit
// and repaints damaged areas into a *gg.Context.
//
// Damage tracking follows gg's render.Scene: rectangles accumulate until
// more than 16 are pending, after which the page switches to a full redraw.
package host
