// Package main provides the repo-summarizer CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/server"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/sigctx"
)

// serveCmd runs the HTTP service.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarizer HTTP service",
	Long: `Start the HTTP service exposing POST /summarize, GET /healthz and
GET /metrics. The service shuts down gracefully on SIGINT/SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
		defer a.close()

		ctx, cancel := sigctx.WithSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv := server.New(a.svc, a.metrics, a.logger, a.cfg.Server)
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
