// Package geometry builds the outline of a toast as it morphs between a
// compact pill and an expanded blob.
//
// Every function in this package is pure: identical inputs always produce
// an identical Outline, so the outline can be recomputed on every
// animation frame from whatever value is driving the morph.
//
// # Shapes
//
// At progress 0 the outline is a capsule of height PillHeight. As progress
// grows, a rounded body grows out from under the pill, joined to it by a
// quadratic curve whose sweep scales with progress:
//
//	outline := geometry.Morph(140, 320, 120, 0.5, geometry.EdgeLeft)
//	path.SetAttribute("d", outline.String())
//
// # Anchors
//
// EdgeLeft keeps the pill flush left and grows the body to the right.
// EdgeRight is its mirror image. Center keeps the pill at its final
// centered offset for the whole animation and grows the body
// symmetrically, so nothing jumps sideways mid-animation.
package geometry
