package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsawler/contour/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve outline extraction over HTTP",
	Long: `Serve starts an HTTP service with two endpoints: POST /v1/outline
accepts a document upload (multipart "file" field or raw body) and responds
with its extraction record, and GET /healthz reports liveness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.DefaultConfig()
		cfg.Addr, _ = cmd.Flags().GetString("addr")
		cfg.MaxUploadBytes, _ = cmd.Flags().GetInt64("max-upload")
		cfg.MaxPages, _ = cmd.Flags().GetInt("max-pages")
		cfg.Logger = logger

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.NewServer(cfg).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().Int64("max-upload", 50<<20, "maximum upload size in bytes")
	serveCmd.Flags().Int("max-pages", 0, "refuse documents with more pages than this (0 = no cap)")
}
