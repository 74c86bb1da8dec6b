package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/geom"
	"github.com/matzehuels/viewport/pkg/observability"
	"github.com/matzehuels/viewport/pkg/viewport"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	viewBox []float64 // min-x, min-y, width, height
	element []float64 // x, y, width, height
	align   string    // preserveAspectRatio alignment
	fit     string    // meet, slice or none
	symbol  bool      // viewBox belongs to a referenced symbol
	strict  bool      // reject unknown alignments and non-positive sizes
	format  string    // text, json or svg
}

// computeCommand creates the compute command for a single transform.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{
		align:  string(viewport.DefaultAlign),
		fit:    viewport.Meet.String(),
		format: formatText,
	}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the transform for one viewBox and element",
		Example: `  viewport compute --viewbox 0,0,100,50 --element 0,0,200,200
  viewport compute --viewbox 0,0,24,24 --element 10,10,48,32 --align xMinYMid --fit slice --symbol
  viewport compute --viewbox 0,0,100,50 --element 0,0,200,200 --format svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.viewBox, "viewbox", nil, "viewBox as min-x,min-y,width,height")
	cmd.Flags().Float64SliceVar(&opts.element, "element", nil, "element rectangle as x,y,width,height")
	cmd.Flags().StringVarP(&opts.align, "align", "a", opts.align, "alignment: none, xMinYMin ... xMaxYMax")
	cmd.Flags().StringVar(&opts.fit, "fit", opts.fit, "fit mode: meet, slice, none")
	cmd.Flags().BoolVar(&opts.symbol, "symbol", false, "viewBox belongs to a referenced symbol or marker")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject unknown alignments and non-positive sizes")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, svg")
	_ = cmd.MarkFlagRequired("viewbox")
	_ = cmd.MarkFlagRequired("element")
	registerValueCompletions(cmd)

	return cmd
}

func runCompute(ctx context.Context, w io.Writer, opts *computeOpts) error {
	p, err := opts.params()
	if err != nil {
		observability.Transform().OnRejected(ctx, "compute", err)
		return err
	}
	logger := loggerFromContext(ctx)
	logger.Debug("Computing transform",
		"viewBox", opts.viewBox, "element", opts.element,
		"align", p.Align, "fit", p.Fit, "symbol", p.FromSymbol)

	start := time.Now()
	r := newResult("", p)
	observability.Transform().OnTransform(ctx, "compute", p, r.Matrix, time.Since(start))

	if !r.Finite {
		logger.Warn("Transform is not finite", "transform", r.SVG)
	}
	return writeResults(w, opts.format, []result{r})
}

// params validates the flags and converts them to transform parameters.
func (o *computeOpts) params() (viewport.Params, error) {
	if !validFormats[o.format] {
		return viewport.Params{}, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'text', 'json', or 'svg')", o.format)
	}
	vb, err := rectFlag("viewbox", o.viewBox)
	if err != nil {
		return viewport.Params{}, err
	}
	el, err := rectFlag("element", o.element)
	if err != nil {
		return viewport.Params{}, err
	}
	fit, err := errors.ValidateFit(o.fit)
	if err != nil {
		return viewport.Params{}, err
	}

	p := viewport.Params{
		ViewBox:    vb,
		Element:    el,
		Align:      viewport.Align(o.align),
		Fit:        fit,
		FromSymbol: o.symbol,
	}
	if o.strict {
		if err := errors.ValidateParams(p); err != nil {
			return viewport.Params{}, err
		}
	}
	return p, nil
}

func rectFlag(name string, vals []float64) (geom.Rect, error) {
	r, ok := geom.RectFromSlice(vals)
	if !ok {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidRect, "--%s needs 4 comma-separated numbers, got %d", name, len(vals))
	}
	return r, nil
}
