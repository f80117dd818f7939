// Package profile turns one search hit into a fully aggregated candidate
// profile: user detail, repositories, and recent events fetched through
// the shared executor, then classified and scored.
package profile

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/jonathan/founder-scout/internal/activity"
	"github.com/jonathan/founder-scout/internal/age"
	"github.com/jonathan/founder-scout/internal/githubapi"
	"github.com/jonathan/founder-scout/internal/scoring"
	"github.com/jonathan/founder-scout/internal/types"
)

// Source labels profiles produced by this fetcher.
const Source = "github"

// topRepoCount limits the repository projection on the final profile.
const topRepoCount = 3

// Reference identifies a candidate found by search: the login and the API
// URL of the user-detail resource.
type Reference struct {
	Login string `json:"login"`
	URL   string `json:"url"`
}

// Fetcher aggregates the three per-candidate API resources into a Profile.
//
// Failure semantics are asymmetric on purpose: a failed or undecodable
// user-detail fetch drops the candidate, while failed repository or event
// fetches degrade to empty lists so the candidate still appears with
// whatever could be derived.
type Fetcher struct {
	Executor *githubapi.Executor
	Calc     *scoring.Calculator
	Analyzer *scoring.Analyzer
	Logger   *slog.Logger
}

// NewFetcher creates a Fetcher backed by the given executor and score
// calculator, with the default heuristic analyzer.
func NewFetcher(executor *githubapi.Executor, calc *scoring.Calculator) *Fetcher {
	return &Fetcher{
		Executor: executor,
		Calc:     calc,
		Analyzer: scoring.NewAnalyzer(scoring.DefaultAnalyzerWeights()),
		Logger:   slog.Default(),
	}
}

// Fetch builds the aggregated profile for ref. A nil error always carries
// a complete profile; an error means the candidate must be dropped.
func (f *Fetcher) Fetch(ctx context.Context, ref Reference) (*types.Profile, error) {
	body, err := f.Executor.Execute(ctx, Source, ref.URL, nil, nil)
	if err != nil {
		return nil, err
	}
	var user types.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, &githubapi.RequestError{URL: ref.URL, Message: "undecodable user detail", Cause: err}
	}

	repos := f.fetchRepos(ctx, ref)
	events := f.fetchEvents(ctx, ref)

	act := activity.Classify(events)
	ages := age.Estimate(user, repos)
	scores := f.Calc.Score(user, repos, act)
	future := f.Analyzer.FounderScore(scoring.Candidate{
		Age:         ages.EstimatedAge,
		Source:      Source,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
	})

	// The name is kept exactly as reported, even when empty: the dedupe
	// key is built from it and a login substitute would split records the
	// key is meant to collapse. Display surfaces fall back to Login.
	return &types.Profile{
		Login:              ref.Login,
		Name:               user.Name,
		Company:            user.Company,
		Location:           user.Location,
		Bio:                user.Bio,
		GitHubURL:          user.HTMLURL,
		PublicRepos:        user.PublicRepos,
		Followers:          user.Followers,
		Following:          user.Following,
		AccountAge:         ages.AccountAge,
		EstimatedAge:       ages.EstimatedAge,
		EarlyAchievements:  ages.EarlyAchievements,
		Scores:             scores,
		FutureFounderScore: future,
		Languages:          languageHistogram(repos),
		TopRepos:           topRepositories(repos, topRepoCount),
		ContributionFreq:   act.Frequency,
		Source:             Source,
	}, nil
}

// fetchRepos lists the candidate's repositories, degrading to an empty
// list on any fetch or decode failure.
func (f *Fetcher) fetchRepos(ctx context.Context, ref Reference) []types.Repository {
	body, err := f.Executor.Execute(ctx, Source, ref.URL+"/repos", nil, nil)
	if err != nil {
		f.Logger.Warn("repository fetch failed, continuing without repos", "login", ref.Login, "error", err)
		return nil
	}
	var repos []types.Repository
	if err := json.Unmarshal(body, &repos); err != nil {
		f.Logger.Warn("repository listing undecodable", "login", ref.Login, "error", err)
		return nil
	}
	return repos
}

// fetchEvents lists the candidate's recent public events, degrading to an
// empty list on any fetch or decode failure.
func (f *Fetcher) fetchEvents(ctx context.Context, ref Reference) []types.Event {
	body, err := f.Executor.Execute(ctx, Source, ref.URL+"/events/public", nil, nil)
	if err != nil {
		f.Logger.Warn("event fetch failed, continuing without events", "login", ref.Login, "error", err)
		return nil
	}
	var events []types.Event
	if err := json.Unmarshal(body, &events); err != nil {
		f.Logger.Warn("event listing undecodable", "login", ref.Login, "error", err)
		return nil
	}
	return events
}

// topRepositories projects the n most-starred repositories onto the
// summary shape carried by the profile.
func topRepositories(repos []types.Repository, n int) []types.RepoSummary {
	sorted := make([]types.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	summaries := make([]types.RepoSummary, 0, len(sorted))
	for _, repo := range sorted {
		summaries = append(summaries, types.RepoSummary{
			Name:        repo.Name,
			Description: repo.Description,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Language:    repo.Language,
			CreatedAt:   repo.CreatedAt,
		})
	}
	return summaries
}

// languageHistogram counts repositories per language, skipping repos with
// no detected language.
func languageHistogram(repos []types.Repository) map[string]int {
	histogram := make(map[string]int)
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		histogram[repo.Language]++
	}
	return histogram
}
