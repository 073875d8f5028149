// Package shell maps a toast's morph snapshot to markup.
//
// Render is a pure function of its View: it picks the phase icon and
// colors, draws the outline path, copies the controller's constraints
// and transforms into inline styles, and shows the description and
// action only while the body is visible. Rich description content is
// rendered behind a Boundary so a panicking component renders nothing
// instead of taking the toast list down with it.
package shell
