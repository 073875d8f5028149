// Package toast is the public surface of goey: a Toaster that shows,
// updates and dismisses morphing toasts, tracks promises, and hands each
// toast to a Host for display.
//
// A Toaster owns one morph controller per toast. Expandable toasts (with
// a description or an action) are shown with a Persistent duration and
// dismiss themselves once their collapse settles; simple pills are
// closed by the host's timer.
//
//	t := toast.New(host, loop, toast.WithConfig(cfg))
//	t.Success("Saved", toast.WithDescription("Your changes are live."))
//
//	h := t.Loading("Uploading...")
//	// later
//	h.Success("Uploaded")
//
// # Hosts
//
// EventHost forwards toasts to a browser client through an Emitter, the
// same custom-event mechanism Vango handlers use with ctx.Emit:
//
//	window.addEventListener("goey:show", (e) => {
//	    const { id, position, duration, html } = e.detail;
//	    // mount html, drive hover/click back to the server
//	});
//
// ListHost keeps toasts in an in-memory list with headless elements. The
// simulator, preview server and tests use it.
//
// # Threading
//
// Toaster methods may be called from any goroutine. Work is dispatched
// onto the scheduler's loop, where every controller runs.
package toast
