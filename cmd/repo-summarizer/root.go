// Package main provides the repo-summarizer CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/repo-ai-toolkit/repo-summarizer/pkg/cache"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/config"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/github"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/llm"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/observability"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/service"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/summarizer"
	"github.com/repo-ai-toolkit/repo-summarizer/pkg/version"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "repo-summarizer",
	Short: "AI-powered GitHub repository summarizer",
	Long: `repo-summarizer selects the most informative files of a public
GitHub repository under a strict content budget and asks an
OpenAI-compatible model for a structured summary.`,
	Version: version.FullString(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default from REPO_SUMMARIZER_CONFIG)")
}

// app bundles the wired collaborators behind a single construction point
// shared by the serve and summarize commands.
type app struct {
	cfg     *config.Config
	logger  observability.Logger
	metrics *observability.Metrics
	store   cache.Cache
	svc     *service.Service
}

func newApp() (*app, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	logger := observability.NewLogger(cfg.Global.LogLevel)

	gh, err := github.NewClient(cfg.GitHub)
	if err != nil {
		return nil, err
	}

	store, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics()
	model := summarizer.New(llm.NewClient(cfg.LLM))

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		store:   store,
		svc:     service.New(gh, model, store, metrics, logger, cfg),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("cache close failed", observability.Err(err))
	}
	_ = a.logger.Sync()
}
