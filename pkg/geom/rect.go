package geom

import "math"

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle given by its minimum corner and size,
// the same shape as an SVG viewBox (min-x, min-y, width, height).
// Width and Height may be zero or negative.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromSlice builds a Rect from a four-element slice in viewBox order.
// ok is false when vals does not have exactly four elements.
func RectFromSlice(vals []float64) (r Rect, ok bool) {
	if len(vals) != 4 {
		return Rect{}, false
	}
	return Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, true
}

// Right returns X + Width.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Min returns the minimum corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the corner opposite Min.
func (r Rect) Max() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// Empty reports whether the rectangle has no positive area.
// NaN sizes count as empty.
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// IsFinite reports whether every component is a finite number.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
