// Package pkg provides the libraries behind the viewport tool.
//
// # Overview
//
// Viewport computes the affine transform that places SVG viewBox content
// inside a destination rectangle. The pkg directory is organized as:
//
//  1. [geom] - Rectangles, points and 2x3 affine matrices
//  2. [viewport] - The viewBox-to-viewport transform calculator
//  3. [errors] - Coded errors and caller-side input validation
//  4. [config] - TOML batch files of named mappings
//  5. [server] - HTTP API over the calculator
//  6. [observability] - Optional instrumentation hooks
//
// # Data Flow
//
//	CLI flags / batch file / HTTP request
//	         ↓
//	    [errors] validation (optional, strict mode)
//	         ↓
//	    [viewport.Transform]
//	         ↓
//	    [geom.Matrix] → text, JSON, or SVG transform attribute
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/viewport/pkg/geom"
//	    "github.com/matzehuels/viewport/pkg/viewport"
//	)
//
//	m := viewport.Transform(
//	    geom.Rect{Width: 100, Height: 50},
//	    geom.Rect{Width: 200, Height: 200},
//	    viewport.AlignXMidYMid, viewport.Meet, false,
//	)
//	fmt.Println(m.SVG()) // matrix(2 0 0 2 0 50)
package pkg
