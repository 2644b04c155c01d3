// Package swayimg implements the core of an image viewer: a thread-aware
// event queue drained by a poll-based dispatch loop, and a viewport
// transform engine mapping image pixel space to window pixel space.
//
// # Overview
//
// External producers (a background loader, window-system callbacks,
// POSIX signals) append typed events to an App's queue from any
// goroutine. An eventfd wakes the single consumer goroutine, which
// drains the queue inside the poll loop and routes each event either to
// a small set of common actions or to the active mode handler (viewer
// or gallery). Mode handlers mutate the Canvas, whose placement and
// scale are read synchronously by the renderer once per frame.
//
// # Quick Start
//
//	app := swayimg.NewApp(
//	    swayimg.WithMode(swayimg.ModeViewer),
//	    swayimg.WithScaleMode(swayimg.ScaleFitOptimal),
//	)
//	defer app.Close()
//
//	app.Watch(conn.Fd(), dispatchWayland)
//	go loadImages(app)
//
//	if !app.Run() {
//	    os.Exit(1)
//	}
//
// # Threading
//
// Exactly one goroutine runs App.Run and owns all non-queue state: the
// Canvas, the loop state, and the mode handlers. Producers interact
// with that state only through queued events. The Append* helpers are
// safe to call from any goroutine; everything else is not.
//
// # Coordinate System
//
// Origin (0,0) at the window's top-left, X increases right, Y increases
// down. The image placement rectangle may extend outside the window;
// the clamp pass keeps it centered or flush against the window edges.
package swayimg
