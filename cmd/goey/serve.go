package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/goey/pkg/preview"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

Routes:
  /outline.svg   outline for pill, body, height, t and anchor
  /toast         toast markup at ?at= milliseconds
  /ws/frames     websocket stream of a script's frames
  /metrics       Prometheus metrics
  /healthz       liveness

Examples:
  goey serve
  goey serve --port 8080 --host 0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			pc, err := cfg.PreviewServerConfig()
			if err != nil {
				return err
			}
			pc.Logger = g.logger(cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			success(w, "Preview on http://%s", displayAddr(cfg.Preview.Host, cfg.Preview.Port))
			info(w, "Press Ctrl+C to stop")
			return preview.New(pc).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from goey.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from goey.json)")

	return cmd
}

func displayAddr(host string, port int) string {
	if host == "" {
		host = "localhost"
	}
	return host + ":" + strconv.Itoa(port)
}
