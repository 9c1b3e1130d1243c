// Package main provides the repo-summarizer CLI application.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/sigctx"
)

// summarizeCmd summarizes a single repository and prints the JSON result.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <github-url>",
	Short: "Summarize one repository and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
		defer a.close()

		ctx, cancel := sigctx.WithSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		out, err := a.svc.Summarize(ctx, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
