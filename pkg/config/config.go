// Package config loads batch files describing viewport mappings.
//
// A batch file is TOML with an optional [defaults] table and any number of
// [[mapping]] entries:
//
//	[defaults]
//	align = "xMidYMid"
//	fit = "meet"
//
//	[[mapping]]
//	name = "icon"
//	view_box = [0, 0, 100, 50]
//	element = [0, 0, 200, 200]
//	fit = "slice"
//	from_symbol = true
//
// Mapping fields left out fall back to the defaults, and the defaults fall
// back to the SVG initial value "xMidYMid meet".
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/viewport"
)

// File is the decoded form of a batch file.
type File struct {
	Defaults Defaults  `toml:"defaults"`
	Mappings []Mapping `toml:"mapping"`
}

// Defaults apply to every mapping that does not set the field itself.
type Defaults struct {
	Align      string `toml:"align"`
	Fit        string `toml:"fit"`
	FromSymbol bool   `toml:"from_symbol"`
}

// Mapping is one viewBox-to-element computation.
type Mapping struct {
	Name       string    `toml:"name"`
	ViewBox    []float64 `toml:"view_box"`
	Element    []float64 `toml:"element"`
	Align      string    `toml:"align"`
	Fit        string    `toml:"fit"`
	FromSymbol *bool     `toml:"from_symbol"`
}

// Entry is a resolved mapping ready for computation.
type Entry struct {
	Name   string
	Params viewport.Params
}

// Load reads and parses the batch file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "batch file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return f, nil
}

// Parse decodes batch file contents. Unknown keys are rejected so that a
// misspelt field does not silently fall back to a default.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if len(f.Mappings) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no [[mapping]] entries")
	}
	return &f, nil
}

// Entries validates every mapping and resolves it against the defaults.
// Entries keep file order.
func (f *File) Entries() ([]Entry, error) {
	defAlign := viewport.DefaultAlign
	if f.Defaults.Align != "" {
		if err := errors.ValidateAlign(f.Defaults.Align); err != nil {
			return nil, fmt.Errorf("defaults: %w", err)
		}
		defAlign = viewport.Align(f.Defaults.Align)
	}
	defFit := viewport.Meet
	if f.Defaults.Fit != "" {
		fit, err := errors.ValidateFit(f.Defaults.Fit)
		if err != nil {
			return nil, fmt.Errorf("defaults: %w", err)
		}
		defFit = fit
	}

	seen := make(map[string]bool, len(f.Mappings))
	entries := make([]Entry, 0, len(f.Mappings))
	for i, m := range f.Mappings {
		if m.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "mapping %d: name is required", i)
		}
		if seen[m.Name] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "mapping %q: duplicate name", m.Name)
		}
		seen[m.Name] = true

		p, err := m.params(defAlign, defFit, f.Defaults.FromSymbol)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", m.Name, err)
		}
		entries = append(entries, Entry{Name: m.Name, Params: p})
	}
	return entries, nil
}

func (m Mapping) params(align viewport.Align, fit viewport.FitMode, fromSymbol bool) (viewport.Params, error) {
	vb, ok := geom.RectFromSlice(m.ViewBox)
	if !ok {
		return viewport.Params{}, errors.New(errors.ErrCodeInvalidRect, "view_box needs 4 numbers, got %d", len(m.ViewBox))
	}
	el, ok := geom.RectFromSlice(m.Element)
	if !ok {
		return viewport.Params{}, errors.New(errors.ErrCodeInvalidRect, "element needs 4 numbers, got %d", len(m.Element))
	}

	if m.Align != "" {
		if err := errors.ValidateAlign(m.Align); err != nil {
			return viewport.Params{}, err
		}
		align = viewport.Align(m.Align)
	}
	if m.Fit != "" {
		f, err := errors.ValidateFit(m.Fit)
		if err != nil {
			return viewport.Params{}, err
		}
		fit = f
	}
	if m.FromSymbol != nil {
		fromSymbol = *m.FromSymbol
	}

	return viewport.Params{
		ViewBox:    vb,
		Element:    el,
		Align:      align,
		Fit:        fit,
		FromSymbol: fromSymbol,
	}, nil
}
