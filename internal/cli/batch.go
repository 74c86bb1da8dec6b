package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/config"
	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/observability"
)

// batchCommand creates the batch command, which computes every mapping in a
// TOML batch file.
func (c *CLI) batchCommand() *cobra.Command {
	format := formatText

	cmd := &cobra.Command{
		Use:   "batch [file.toml]",
		Short: "Compute transforms for every mapping in a batch file",
		Long: `Compute transforms for every [[mapping]] in a TOML batch file.

Example file:

  [defaults]
  align = "xMidYMid"
  fit = "meet"

  [[mapping]]
  name = "icon"
  view_box = [0, 0, 100, 50]
  element = [0, 0, 200, 200]
  from_symbol = true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[format] {
				return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'text', 'json', or 'svg')", format)
			}
			return runBatch(cmd.Context(), cmd.OutOrStdout(), args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", format, "output format: text, json, svg")
	registerValueCompletions(cmd)

	return cmd
}

func runBatch(ctx context.Context, w io.Writer, path, format string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Loading %s", path)

	f, err := config.Load(path)
	if err != nil {
		observability.Transform().OnRejected(ctx, "batch", err)
		return err
	}
	entries, err := f.Entries()
	if err != nil {
		observability.Transform().OnRejected(ctx, "batch", err)
		return err
	}

	results := make([]result, 0, len(entries))
	nonFinite := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		r := newResult(e.Name, e.Params)
		observability.Transform().OnTransform(ctx, "batch", e.Params, r.Matrix, time.Since(start))
		logger.Debug("Computed", "name", e.Name, "transform", r.SVG)
		if !r.Finite {
			nonFinite++
			logger.Warn("Transform is not finite", "name", e.Name)
		}
		results = append(results, r)
	}

	if err := writeResults(w, format, results); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %d mappings", len(results)))
	if format == formatText {
		fmt.Fprintln(w)
		if nonFinite > 0 {
			printWarning(w, "%d of %d transforms are not finite", nonFinite, len(results))
		} else {
			printSuccess(w, "%d transforms computed", len(results))
		}
	}
	return nil
}
