package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/heatpump/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the heatpump HTTP API.",
	Long: `Serve the summary over HTTP.

Endpoints:
- GET  /healthz       liveness and version
- GET  /api/columns   required columns and roles
- POST /api/summary   multipart upload of file_a and optional file_b,
                      with optional start, end and format (json or csv)

Each request is processed on its own; uploads are never stored.

Examples:
  heatpump serve --addr :8080
  curl -F file_a=@old.csv -F file_b=@new.csv -F start=2024-01-01 localhost:8080/api/summary`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.ListenAndServe(ctx, cfg, version, logrus.StandardLogger())
	},
}
