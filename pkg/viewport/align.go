package viewport

import "strings"

// Align is a preserveAspectRatio alignment value.
type Align string

// The nine alignment tokens and "none".
const (
	AlignNone     Align = "none"
	AlignXMinYMin Align = "xMinYMin"
	AlignXMidYMin Align = "xMidYMin"
	AlignXMaxYMin Align = "xMaxYMin"
	AlignXMinYMid Align = "xMinYMid"
	AlignXMidYMid Align = "xMidYMid"
	AlignXMaxYMid Align = "xMaxYMid"
	AlignXMinYMax Align = "xMinYMax"
	AlignXMidYMax Align = "xMidYMax"
	AlignXMaxYMax Align = "xMaxYMax"
)

// DefaultAlign is the SVG initial value of preserveAspectRatio's alignment.
const DefaultAlign = AlignXMidYMid

// Aligns lists every valid alignment value, "none" first.
var Aligns = []Align{
	AlignNone,
	AlignXMinYMin, AlignXMidYMin, AlignXMaxYMin,
	AlignXMinYMid, AlignXMidYMid, AlignXMaxYMid,
	AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax,
}

// Valid reports whether a is exactly one of [Aligns].
func (a Align) Valid() bool {
	for _, v := range Aligns {
		if a == v {
			return true
		}
	}
	return false
}

// IsNone reports whether a is the literal "none".
func (a Align) IsNone() bool { return a == AlignNone }

func (a Align) has(token string) bool {
	return strings.Contains(string(a), token)
}

// String implements fmt.Stringer.
func (a Align) String() string { return string(a) }
