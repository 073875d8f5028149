// Package preview serves goey outlines, rendered toasts and live frame
// streams over HTTP for design work.
//
//	GET /outline.svg?pill=120&body=300&height=96&t=0.5&anchor=center
//	GET /toast?title=Saved&description=Live&phase=success&at=1500
//	GET /ws/frames?title=Saved&description=Live
//	GET /metrics
//	GET /healthz
//
// /ws/frames runs a timeline on a fake clock and paces its frames over a
// WebSocket in real time, one JSON Frame per message.
package preview
