package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-scout/internal/config"
	"github.com/jonathan/founder-scout/internal/pipeline"
	"github.com/jonathan/founder-scout/internal/types"
)

func TestBuildRunner(t *testing.T) {
	cfg := config.Config{RateLimit: 100}
	runner := buildRunner(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NotNil(t, runner)
	assert.Equal(t, pipeline.DefaultSearchURL, runner.SearchURL)
	assert.NotNil(t, runner.Executor)
	assert.NotNil(t, runner.Fetcher)
}

func TestExportResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	profiles := []*types.Profile{
		{
			Name:              "Alice Doe",
			EarlyAchievements: []types.Achievement{},
			Languages:         map[string]int{},
			TopRepos:          []types.RepoSummary{},
			ContributionFreq:  types.FrequencyLow,
			Source:            "github",
		},
	}

	require.NoError(t, exportResults(path, profiles))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alice Doe")
}

func TestExportResults_RejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	// A document that does not satisfy the results schema must never be
	// written.
	err := exportResults(path, []map[string]any{{"company": "Acme"}})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
