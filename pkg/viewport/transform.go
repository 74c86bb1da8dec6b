package viewport

import (
	"math"

	"github.com/matzehuels/viewport/pkg/geom"
)

// Transform returns the matrix mapping viewBox coordinates into element.
//
// The result is a scale by (scaleX, scaleY) followed by a translation.
// When fromSymbol is set the translation is itself multiplied by the scale,
// which is what a referenced symbol or marker definition expects.
//
// Transform is pure and safe for concurrent use.
func Transform(viewBox, element geom.Rect, align Align, fit FitMode, fromSymbol bool) geom.Matrix {
	vbX, vbY := viewBox.X, viewBox.Y
	vbWidth, vbHeight := viewBox.Width, viewBox.Height

	eX, eY := element.X, element.Y
	eWidth, eHeight := element.Width, element.Height

	scaleX := eWidth / vbWidth
	scaleY := eHeight / vbHeight

	// float64() around products blocks fused multiply-add, keeping results
	// identical across architectures.
	translateX := eX - float64(vbX*scaleX)
	translateY := eY - float64(vbY*scaleY)

	if fit == None {
		// align is not consulted in this branch.
		scale := math.Min(scaleX, scaleY)
		scaleX, scaleY = scale, scale

		if scale > 1 {
			translateX -= (eWidth/scale - vbWidth) / 2
			translateY -= (eHeight/scale - vbHeight) / 2
		} else {
			translateX -= (eWidth - float64(vbWidth*scale)) / 2
			translateY -= (eHeight - float64(vbHeight*scale)) / 2
		}
	} else {
		if !align.IsNone() && fit == Meet {
			scale := math.Min(scaleX, scaleY)
			scaleX, scaleY = scale, scale
		} else if !align.IsNone() && fit == Slice {
			scale := math.Max(scaleX, scaleY)
			scaleX, scaleY = scale, scale
		}

		// Offsets are additive; a composite token gets every one it names.
		if align.has("xMid") {
			translateX += (eWidth - float64(vbWidth*scaleX)) / 2
		}
		if align.has("xMax") {
			translateX += eWidth - float64(vbWidth*scaleX)
		}
		if align.has("YMid") {
			translateY += (eHeight - float64(vbHeight*scaleY)) / 2
		}
		if align.has("YMax") {
			translateY += eHeight - float64(vbHeight*scaleY)
		}
	}

	if fromSymbol {
		translateX *= scaleX
		translateY *= scaleY
	}

	// translate(tx, ty) scale(sx, sy), built directly so the zero shear terms
	// stay zero when a scale is infinite.
	return geom.Matrix{
		A: scaleX, B: 0, C: translateX,
		D: 0, E: scaleY, F: translateY,
	}
}

// Params bundles the inputs of [Transform].
type Params struct {
	ViewBox    geom.Rect `json:"view_box"`
	Element    geom.Rect `json:"element"`
	Align      Align     `json:"align"`
	Fit        FitMode   `json:"fit"`
	FromSymbol bool      `json:"from_symbol"`
}

// Transform calls [Transform] with p's fields.
func (p Params) Transform() geom.Matrix {
	return Transform(p.ViewBox, p.Element, p.Align, p.Fit, p.FromSymbol)
}
