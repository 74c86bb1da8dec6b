// Package geom provides the small set of planar types shared by the viewport
// packages: axis-aligned rectangles, points and 2x3 affine matrices.
//
// All types are plain values. Operations never fail; degenerate input (zero
// sizes, NaN, infinities) flows through IEEE-754 arithmetic unchanged, and
// [Matrix.IsFinite] lets callers decide whether a result is usable.
package geom
