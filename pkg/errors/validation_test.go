package errors

import (
	"math"
	"testing"

	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/viewport"
)

func TestValidateRect(t *testing.T) {
	tests := []struct {
		name    string
		rect    geom.Rect
		wantErr bool
	}{
		{"valid", geom.Rect{X: -5, Y: 3, Width: 10, Height: 20}, false},
		{"fractional", geom.Rect{Width: 0.001, Height: 0.5}, false},

		{"zero width", geom.Rect{Width: 0, Height: 10}, true},
		{"negative height", geom.Rect{Width: 10, Height: -1}, true},
		{"nan x", geom.Rect{X: math.NaN(), Width: 10, Height: 10}, true},
		{"inf width", geom.Rect{Width: math.Inf(1), Height: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRect("viewBox", tt.rect)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRect() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRect) {
				t.Errorf("ValidateRect() code = %v, want %v", GetCode(err), ErrCodeInvalidRect)
			}
		})
	}
}

func TestValidateAlign(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"none", "none", false},
		{"xMidYMid", "xMidYMid", false},
		{"xMaxYMin", "xMaxYMin", false},

		{"empty", "", true},
		{"lowercase", "xmidymid", true},
		{"with meet", "xMidYMid meet", true},
		{"composite", "xMidxMaxYMid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlign(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidAlign) {
				t.Errorf("ValidateAlign(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidAlign)
			}
		})
	}
}

func TestValidateFit(t *testing.T) {
	f, err := ValidateFit("slice")
	if err != nil {
		t.Fatalf("ValidateFit(slice) error: %v", err)
	}
	if f != viewport.Slice {
		t.Errorf("ValidateFit(slice) = %v, want %v", f, viewport.Slice)
	}

	_, err = ValidateFit("cover")
	if !Is(err, ErrCodeInvalidFit) {
		t.Errorf("ValidateFit(cover) code = %v, want %v", GetCode(err), ErrCodeInvalidFit)
	}
}

func TestValidateParams(t *testing.T) {
	valid := viewport.Params{
		ViewBox: geom.Rect{Width: 100, Height: 50},
		Element: geom.Rect{Width: 200, Height: 200},
		Align:   viewport.AlignXMidYMid,
	}
	if err := ValidateParams(valid); err != nil {
		t.Errorf("ValidateParams(valid) error: %v", err)
	}

	badElement := valid
	badElement.Element.Width = 0
	err := ValidateParams(badElement)
	if !Is(err, ErrCodeInvalidRect) {
		t.Fatalf("ValidateParams(bad element) = %v, want INVALID_RECT", err)
	}
	if got := UserMessage(err); got != "element width and height must be positive (got 0x200)" {
		t.Errorf("UserMessage() = %q", got)
	}

	badAlign := valid
	badAlign.Align = "center"
	if err := ValidateParams(badAlign); !Is(err, ErrCodeInvalidAlign) {
		t.Errorf("ValidateParams(bad align) = %v, want INVALID_ALIGN", err)
	}
}
