package viewport

import "fmt"

// FitMode selects how the viewBox is fitted into the element: the
// meetOrSlice part of preserveAspectRatio, plus the centering mode None.
type FitMode int

const (
	// Meet scales uniformly so the whole viewBox is visible.
	Meet FitMode = iota
	// Slice scales uniformly so the viewBox covers the whole element.
	Slice
	// None takes the smaller ratio and centers the content on both axes.
	None
)

var fitNames = [...]string{Meet: "meet", Slice: "slice", None: "none"}

// String returns "meet", "slice" or "none".
func (f FitMode) String() string {
	if f >= 0 && int(f) < len(fitNames) {
		return fitNames[f]
	}
	return fmt.Sprintf("FitMode(%d)", int(f))
}

// ParseFitMode maps a fit mode name back to its value.
func ParseFitMode(s string) (FitMode, error) {
	for i, name := range fitNames {
		if s == name {
			return FitMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fit mode %q (must be 'meet', 'slice', or 'none')", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FitMode) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(fitNames) {
		return nil, fmt.Errorf("invalid fit mode %d", int(f))
	}
	return []byte(fitNames[f]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FitMode) UnmarshalText(text []byte) error {
	v, err := ParseFitMode(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
