package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/viewport"
)

// result is one computed transform as printed by compute and batch.
type result struct {
	Name   string          `json:"name,omitempty"`
	Params viewport.Params `json:"params"`
	Matrix geom.Matrix     `json:"matrix"`
	SVG    string          `json:"svg"`
	Finite bool            `json:"finite"`
}

func newResult(name string, p viewport.Params) result {
	m := p.Transform()
	return result{
		Name:   name,
		Params: p,
		Matrix: m,
		SVG:    m.SVG(),
		Finite: m.IsFinite(),
	}
}

// writeResults prints results in the given format. JSON output is a single
// object for one unnamed result and an array otherwise.
func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case formatSVG:
		for _, r := range results {
			if r.Name != "" {
				fmt.Fprintf(w, "%s\t%s\n", r.Name, r.SVG)
			} else {
				fmt.Fprintln(w, r.SVG)
			}
		}
		return nil
	case formatJSON:
		return writeJSON(w, results)
	default:
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeText(w, r)
		}
		return nil
	}
}

func writeJSON(w io.Writer, results []result) error {
	// encoding/json rejects NaN and infinities, so non-finite numbers are
	// written as zero and "finite" reports false.
	for i := range results {
		r := &results[i]
		if !r.Params.ViewBox.IsFinite() || !r.Params.Element.IsFinite() {
			r.Params.ViewBox = finiteRect(r.Params.ViewBox)
			r.Params.Element = finiteRect(r.Params.Element)
			r.Finite = false
		}
		if !r.Finite {
			r.Matrix = geom.Matrix{}
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 && results[0].Name == "" {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

func writeText(w io.Writer, r result) {
	if r.Name != "" {
		printTitle(w, r.Name)
	}
	m := r.Matrix
	printKeyValue(w, "scale", pair(m.A, m.E))
	printKeyValue(w, "translate", pair(m.C, m.F))
	printKeyValue(w, "transform", r.SVG)

	if !r.Finite {
		printWarning(w, "transform is not finite; check viewBox and element sizes")
		return
	}
	mapped := m.TransformRect(r.Params.ViewBox)
	printDetail(w, "viewBox maps to x=%s y=%s w=%s h=%s",
		num(mapped.X), num(mapped.Y), num(mapped.Width), num(mapped.Height))
	if inv, ok := m.Invert(); ok {
		printDetail(w, "inverse %s", inv.SVG())
	}
}

// finiteRect replaces NaN and infinite components of r with zero.
func finiteRect(r geom.Rect) geom.Rect {
	for _, v := range [...]*float64{&r.X, &r.Y, &r.Width, &r.Height} {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	return r
}

func pair(a, b float64) string {
	return StyleNumber.Render(num(a)) + ", " + StyleNumber.Render(num(b))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
