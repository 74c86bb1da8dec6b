package errors

import (
	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/viewport"
)

// ValidateRect checks that r is usable as a viewBox or element rectangle.
// name identifies the rectangle in the message ("viewBox", "element").
//
// The calculator accepts anything; this is the stricter caller-side check:
//   - every component must be finite
//   - width and height must be strictly positive
func ValidateRect(name string, r geom.Rect) error {
	if !r.IsFinite() {
		return New(ErrCodeInvalidRect, "%s must contain only finite numbers", name)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return New(ErrCodeInvalidRect, "%s width and height must be positive (got %gx%g)", name, r.Width, r.Height)
	}
	return nil
}

// ValidateAlign checks that s is one of the nine alignment tokens or "none".
func ValidateAlign(s string) error {
	if s == "" {
		return New(ErrCodeInvalidAlign, "alignment cannot be empty")
	}
	if !viewport.Align(s).Valid() {
		return New(ErrCodeInvalidAlign, "unknown alignment %q", s)
	}
	return nil
}

// ValidateFit parses a fit mode name, returning a coded error for unknown names.
func ValidateFit(s string) (viewport.FitMode, error) {
	f, err := viewport.ParseFitMode(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidFit, err, "invalid fit mode")
	}
	return f, nil
}

// ValidateParams runs ValidateRect on both rectangles and ValidateAlign on the
// alignment.
func ValidateParams(p viewport.Params) error {
	if err := ValidateRect("viewBox", p.ViewBox); err != nil {
		return err
	}
	if err := ValidateRect("element", p.Element); err != nil {
		return err
	}
	return ValidateAlign(string(p.Align))
}
