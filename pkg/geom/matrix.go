package geom

import (
	"strconv"
	"strings"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
	F float64 `json:"f"`
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformRect maps both corners of r and returns the rectangle spanned by
// them. Only meaningful for matrices without rotation or shear.
func (m Matrix) TransformRect(r Rect) Rect {
	p0 := m.TransformPoint(r.Min())
	p1 := m.TransformPoint(r.Max())
	return Rect{X: p0.X, Y: p0.Y, Width: p1.X - p0.X, Height: p1.Y - p0.Y}
}

// Invert returns the inverse matrix. ok is false when the determinant is
// zero or not finite; tiny but nonzero determinants still invert.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || !isFinite(det) {
		return Matrix{}, false
	}

	invDet := 1.0 / det
	inv = Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
	return inv, inv.IsFinite()
}

// IsFinite reports whether all six components are finite.
// Renderers should skip content whose transform is not finite.
func (m Matrix) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

// SVG formats m as the value of an SVG transform attribute,
// e.g. "matrix(2 0 0 2 0 50)".
func (m Matrix) SVG() string {
	var b strings.Builder
	b.WriteString("matrix(")
	for i, v := range [...]float64{m.A, m.D, m.B, m.E, m.C, m.F} {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	return m.SVG()
}
