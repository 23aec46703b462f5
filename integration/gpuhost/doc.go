// Package gpuhost shows geometry tool overlays in a GPU-accelerated window.
//
// Host pairs a host.Page with a ggcanvas.Canvas. Views flag dirty regions
// on the Host; Redraw repaints the damaged part of the page into the
// canvas and Flush uploads it to the GPU texture:
//
//	h, err := gpuhost.New(app.GPUContextProvider(), 800, 600)
//	if err != nil { ... }
//	defer h.Close()
//
//	view, _ := tool.Attach(h)
//	h.Page().Add(view)
//
//	// per frame
//	_ = h.Redraw()
//	_ = h.Canvas().RenderTo(dc)
//
// The package only depends on gpucontext interfaces, never on a concrete
// windowing library.
package gpuhost
