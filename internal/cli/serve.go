package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/server"
)

const (
	defaultAddr            = "127.0.0.1:8080"
	defaultShutdownTimeout = 10 * time.Second
)

// serveCommand creates the serve command, which runs the HTTP API until
// interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	addr := defaultAddr
	shutdown := defaultShutdownTimeout

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transform API over HTTP",
		Long: `Serve the transform API over HTTP.

Endpoints:
  POST /v1/transform  compute a transform from a JSON request
  GET  /healthz       liveness check
  GET  /version       build information`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return server.New(loggerFromContext(ctx)).ListenAndServe(ctx, addr, shutdown)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	cmd.Flags().DurationVar(&shutdown, "shutdown-timeout", shutdown, "grace period for in-flight requests")

	return cmd
}
