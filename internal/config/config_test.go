package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{"name":"jane","company":"acme","max_results":25,"verbose":true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "jane", cfg.Name)
	assert.Equal(t, "acme", cfg.Company)
	assert.Equal(t, 25, cfg.MaxResults)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTempConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestValidate_Ranges(t *testing.T) {
	ok := Config{MaxResults: 50, Concurrency: 8, RateLimit: 4500}
	assert.NoError(t, ok.Validate())

	zero := Config{}
	assert.NoError(t, zero.Validate(), "unset fields are filled later by MergeWithDefaults")

	tooMany := Config{MaxResults: 500}
	assert.Error(t, tooMany.Validate())

	overLimit := Config{RateLimit: 9000}
	assert.Error(t, overLimit.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Name: "jane", MaxResults: 3}
	merged := cfg.MergeWithDefaults(Config{Name: "ignored", Company: "acme", Concurrency: 2})

	assert.Equal(t, "jane", merged.Name, "explicit values win")
	assert.Equal(t, "acme", merged.Company)
	assert.Equal(t, 3, merged.MaxResults)
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, DefaultRateLimit, merged.RateLimit, "package default fills the rest")
}

func TestMergeWithDefaults_AllUnset(t *testing.T) {
	var cfg Config
	merged := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, DefaultMaxResults, merged.MaxResults)
	assert.Equal(t, DefaultConcurrency, merged.Concurrency)
	assert.Equal(t, DefaultRateLimit, merged.RateLimit)
}

func TestValidTokenShape(t *testing.T) {
	valid := "ghp_" + strings.Repeat("A", 40)
	assert.True(t, ValidTokenShape(valid))

	assert.False(t, ValidTokenShape(""))
	assert.False(t, ValidTokenShape("gho_"+strings.Repeat("A", 40)), "wrong prefix")
	assert.False(t, ValidTokenShape("ghp_short"))
	assert.False(t, ValidTokenShape("ghp_"+strings.Repeat("A", 35)+" # x"), "comment residue")
}

func TestResolveToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	valid := "ghp_" + strings.Repeat("A", 40)

	t.Run("env wins over config", func(t *testing.T) {
		envToken := "ghp_" + strings.Repeat("B", 40)
		t.Setenv("GITHUB_TOKEN", envToken)
		got := ResolveToken(&Config{Token: valid}, logger)
		assert.Equal(t, envToken, got)
	})

	t.Run("config used when env unset", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		got := ResolveToken(&Config{Token: valid}, logger)
		assert.Equal(t, valid, got)
	})

	t.Run("malformed token treated as absent", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "not-a-token")
		got := ResolveToken(&Config{}, logger)
		assert.Empty(t, got)
	})

	t.Run("no token anywhere", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		got := ResolveToken(&Config{}, logger)
		assert.Empty(t, got)
	})
}
