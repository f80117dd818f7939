package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/founder-scout/internal/config"
	"github.com/jonathan/founder-scout/internal/githubapi"
	"github.com/jonathan/founder-scout/internal/observability"
	"github.com/jonathan/founder-scout/internal/pipeline"
	"github.com/jonathan/founder-scout/internal/profile"
	"github.com/jonathan/founder-scout/internal/ratelimit"
	"github.com/jonathan/founder-scout/internal/schemas"
	"github.com/jonathan/founder-scout/internal/scoring"
)

var searchCommand = &cobra.Command{
	Use:   "search",
	Short: "Search for candidates and rank them by founder potential",
	Long: `Runs the full aggregation pipeline: user search, rate-limited profile
and repository fetching, activity classification, scoring, deduplication,
and ranking.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runSearchCmd,
}

var (
	searchConfigPath  string
	searchName        string
	searchCompany     string
	searchRole        string
	searchMaxResults  int
	searchConcurrency int
	searchRateLimit   int
	searchToken       string
	searchOutput      string
	searchVerbose     bool
)

func init() {
	// Config file flag (processed first)
	searchCommand.Flags().StringVar(&searchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	searchCommand.Flags().StringVarP(&searchName, "name", "n", "", "Candidate name to search for")
	searchCommand.Flags().StringVarP(&searchCompany, "company", "c", "", "Company filter term")
	searchCommand.Flags().StringVarP(&searchRole, "role", "r", "", "Role filter term")
	searchCommand.Flags().IntVar(&searchMaxResults, "max-results", 0, "Search hits to process per run")
	searchCommand.Flags().IntVar(&searchConcurrency, "concurrency", 0, "Parallel profile fetches")
	searchCommand.Flags().IntVar(&searchRateLimit, "rate-limit", 0, "Requests allowed per hourly window")
	searchCommand.Flags().StringVarP(&searchOutput, "output", "o", "", "Path for the exported JSON results")
	searchCommand.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "Print detailed debug information")

	// Token can be passed as a flag, or read from env var GITHUB_TOKEN
	searchCommand.Flags().StringVar(&searchToken, "token", "", "GitHub API token (optional, defaults to GITHUB_TOKEN env var)")

	rootCmd.AddCommand(searchCommand)
}

func runSearchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := slog.Default()

	// Step 1: Load config file if provided
	var cfg config.Config
	if searchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(searchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if searchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", searchConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("name") {
		cfg.Name = searchName
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = searchCompany
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = searchRole
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults = searchMaxResults
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = searchConcurrency
	}
	if cmd.Flags().Changed("rate-limit") {
		cfg.RateLimit = searchRateLimit
	}
	if cmd.Flags().Changed("token") {
		cfg.Token = searchToken
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = searchOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = searchVerbose
	}

	// Step 3: Apply defaults and validate
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return err
	}

	runner := buildRunner(&cfg, logger)
	printer := observability.NewPrinter(os.Stdout)

	opts := pipeline.RunOptions{
		Query:       pipeline.Query{Name: cfg.Name, Company: cfg.Company, Role: cfg.Role},
		MaxResults:  cfg.MaxResults,
		Concurrency: cfg.Concurrency,
		Verbose:     cfg.Verbose,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
		}
	}

	profiles, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}

	printer.PrintRanking(profiles)
	if cfg.Verbose {
		for _, p := range profiles {
			printer.PrintProfile(p)
		}
	}

	if cfg.Output != "" {
		if err := exportResults(cfg.Output, profiles); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", cfg.Output)
	}
	return nil
}

// buildRunner wires the rate limiter, executor, fetcher, and pipeline
// runner from the effective configuration.
func buildRunner(cfg *config.Config, logger *slog.Logger) *pipeline.Runner {
	limiter := ratelimit.New(map[string]int{profile.Source: cfg.RateLimit})
	executor := githubapi.NewExecutor(limiter, config.ResolveToken(cfg, logger))
	fetcher := profile.NewFetcher(executor, scoring.NewCalculator(scoring.DefaultWeights()))
	return pipeline.NewRunner(executor, fetcher)
}

// exportResults writes the ranked profiles as JSON, validating the
// document against the results schema before it touches disk.
func exportResults(path string, profiles any) error {
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := schemas.ValidateResults(data); err != nil {
		return fmt.Errorf("refusing to export malformed results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
