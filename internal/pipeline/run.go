// Package pipeline provides the high-level orchestration for a candidate
// search run: search, bounded parallel profile aggregation, deduplication,
// and ranking.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/founder-scout/internal/dedupe"
	"github.com/jonathan/founder-scout/internal/githubapi"
	"github.com/jonathan/founder-scout/internal/profile"
	"github.com/jonathan/founder-scout/internal/types"
)

// DefaultSearchURL is the user search endpoint of the GitHub REST API.
const DefaultSearchURL = "https://api.github.com/search/users"

// Pipeline step identifiers used in progress events.
const (
	StepSearch  = "search"
	StepProfile = "profile"
	StepRank    = "rank"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Query       Query
	MaxResults  int
	Concurrency int
	Verbose     bool
	OnProgress  ProgressCallback
}

// searchResponse is the subset of the user-search payload the pipeline
// consumes.
type searchResponse struct {
	Items []profile.Reference `json:"items"`
}

// Runner executes search runs. SearchURL is swappable for tests.
type Runner struct {
	Executor  *githubapi.Executor
	Fetcher   *profile.Fetcher
	SearchURL string
	Logger    *slog.Logger
}

// NewRunner creates a Runner that searches the public GitHub API.
func NewRunner(executor *githubapi.Executor, fetcher *profile.Fetcher) *Runner {
	return &Runner{
		Executor:  executor,
		Fetcher:   fetcher,
		SearchURL: DefaultSearchURL,
		Logger:    slog.Default(),
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// Run executes one search run and returns the deduplicated profiles in
// descending founder-potential order. A failed search is fatal; a failed
// individual profile fetch only drops that candidate. Ties in the final
// ranking keep search-result order.
func (r *Runner) Run(ctx context.Context, opts RunOptions) ([]*types.Profile, error) {
	if opts.Query.Empty() {
		return nil, fmt.Errorf("search query is empty: provide a name, company, or role")
	}
	runID := uuid.NewString()

	refs, err := r.search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("user search failed: %w", err)
	}
	emitProgress(&opts, runID, StepSearch,
		fmt.Sprintf("Found %d candidates for %q", len(refs), opts.Query.Terms()), nil)

	// Fetch profiles in parallel with bounded concurrency. Results are
	// collected by input index so the ranking tie-break stays stable.
	fetched := make([]*types.Profile, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			p, err := r.Fetcher.Fetch(gctx, ref)
			if err != nil {
				r.Logger.Warn("dropping candidate", "login", ref.Login, "run_id", runID, "error", err)
				return nil
			}
			fetched[i] = p
			emitProgress(&opts, runID, StepProfile,
				fmt.Sprintf("Aggregated profile for %s", ref.Login), nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profiles := make([]*types.Profile, 0, len(fetched))
	for _, p := range fetched {
		if p != nil {
			profiles = append(profiles, p)
		}
	}

	profiles = dedupe.Profiles(profiles)
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Scores.FounderPotential > profiles[j].Scores.FounderPotential
	})

	emitProgress(&opts, runID, StepRank,
		fmt.Sprintf("Ranked %d unique candidates", len(profiles)), profiles)
	return profiles, nil
}

// search issues the user search and returns up to MaxResults references.
func (r *Runner) search(ctx context.Context, opts RunOptions) ([]profile.Reference, error) {
	params := url.Values{"q": {opts.Query.Terms()}}
	if opts.MaxResults > 0 {
		params.Set("per_page", strconv.Itoa(opts.MaxResults))
	}

	body, err := r.Executor.Execute(ctx, profile.Source, r.SearchURL, nil, params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &githubapi.RequestError{URL: r.SearchURL, Message: "undecodable search response", Cause: err}
	}

	refs := resp.Items
	if opts.MaxResults > 0 && len(refs) > opts.MaxResults {
		refs = refs[:opts.MaxResults]
	}
	return refs, nil
}
