// Package viewport computes the affine transform that maps SVG viewBox
// content into a destination viewport.
//
// The computation follows the "computing a viewport's transform" procedure of
// the SVG coordinate-system chapter: given the viewBox rectangle, the element
// rectangle, a preserveAspectRatio alignment and a meet/slice mode, it
// produces a scale plus translation.
//
// # Usage
//
//	m := viewport.Transform(
//	    geom.Rect{Width: 100, Height: 50},  // viewBox
//	    geom.Rect{Width: 200, Height: 200}, // element
//	    viewport.AlignXMidYMid,
//	    viewport.Meet,
//	    false,
//	)
//	// m.A == m.E == 2, m.C == 0, m.F == 50
//
// # Alignment matching
//
// [Transform] inspects the alignment for the substrings "xMid", "xMax",
// "YMid" and "YMax" rather than switching on the nine defined tokens, so a
// malformed or composite alignment still contributes every offset it names.
// Use [Align.Valid] when strict membership matters.
//
// # Fit mode None
//
// When the fit mode is [None], the smaller axis ratio is applied uniformly
// and the content is centered on both axes. The alignment is not consulted in
// that branch at all, even when it is not "none".
//
// # Degenerate input
//
// Nothing is validated. Zero or negative sizes and NaN coordinates propagate
// through float arithmetic into the returned matrix; callers should check
// [geom.Matrix.IsFinite] before rendering with it.
package viewport
