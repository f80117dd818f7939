package age

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/founder-scout/internal/types"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func stamp(t time.Time) string { return t.Format(time.RFC3339) }

func TestEstimate_TenYearOldAccountWithoutBioHint(t *testing.T) {
	user := types.User{CreatedAt: stamp(testNow.AddDate(-10, 0, 0))}

	got := estimateAt(testNow, user, nil)

	assert.Equal(t, 26, got.EstimatedAge)
	assert.InDelta(t, 10.0, got.AccountAgeYears, 0.02)
	assert.Equal(t, "10.0 years", got.AccountAge)
	assert.Empty(t, got.EarlyAchievements)
}

func TestEstimate_GradYearInBioWins(t *testing.T) {
	user := types.User{
		Bio:       "Builder. Class of 2020. Espresso enjoyer.",
		CreatedAt: stamp(testNow.AddDate(-10, 0, 0)),
	}

	got := estimateAt(testNow, user, nil)

	// 2025 - 2020 + 22, matched case-insensitively.
	assert.Equal(t, 27, got.EstimatedAge)
}

func TestEstimate_UnparseableCreationTimestamp(t *testing.T) {
	got := estimateAt(testNow, types.User{CreatedAt: "garbage"}, nil)

	assert.Equal(t, types.AccountAgeUnknown, got.AccountAge)
	assert.Equal(t, types.EstimatedAgeUnknown, got.EstimatedAge)
	assert.Empty(t, got.EarlyAchievements)
}

func TestEstimate_EarlyAchievements(t *testing.T) {
	created := testNow.AddDate(-6, 0, 0)
	user := types.User{CreatedAt: stamp(created)}
	repos := []types.Repository{
		// Qualifies: 80 stars, one year after account creation.
		{Name: "breakout", Stars: 80, CreatedAt: stamp(created.AddDate(1, 0, 0))},
		// Too late: created four years after the account.
		{Name: "latecomer", Stars: 900, CreatedAt: stamp(created.AddDate(4, 0, 0))},
		// Too few stars.
		{Name: "quiet", Stars: 10, CreatedAt: stamp(created.AddDate(0, 6, 0))},
	}

	got := estimateAt(testNow, user, repos)

	require.Len(t, got.EarlyAchievements, 1)
	achievement := got.EarlyAchievements[0]
	assert.Equal(t, "breakout", achievement.Name)
	assert.Equal(t, 80, achievement.Stars)
	assert.InDelta(t, 1.0, achievement.CreatedAfterYears, 0.01)
}

func TestEstimate_OnlyTopThreeReposConsidered(t *testing.T) {
	created := testNow.AddDate(-6, 0, 0)
	user := types.User{CreatedAt: stamp(created)}
	early := stamp(created.AddDate(0, 6, 0))
	repos := []types.Repository{
		{Name: "a", Stars: 500, CreatedAt: early},
		{Name: "b", Stars: 400, CreatedAt: early},
		{Name: "c", Stars: 300, CreatedAt: early},
		// Qualifies on its own, but is ranked fourth by stars.
		{Name: "d", Stars: 60, CreatedAt: early},
	}

	got := estimateAt(testNow, user, repos)

	require.Len(t, got.EarlyAchievements, 3)
	for _, achievement := range got.EarlyAchievements {
		assert.NotEqual(t, "d", achievement.Name)
	}
}

func TestEstimate_BadRepoTimestampFallsBackToUnknown(t *testing.T) {
	created := testNow.AddDate(-6, 0, 0)
	user := types.User{CreatedAt: stamp(created)}
	repos := []types.Repository{{Name: "broken", Stars: 100, CreatedAt: "nope"}}

	got := estimateAt(testNow, user, repos)

	assert.Equal(t, types.AccountAgeUnknown, got.AccountAge)
	assert.Equal(t, types.EstimatedAgeUnknown, got.EstimatedAge)
}

func TestEstimate_BrandNewAccountFloorsAtSixteen(t *testing.T) {
	user := types.User{CreatedAt: stamp(testNow.AddDate(0, 0, -3))}

	got := estimateAt(testNow, user, nil)

	assert.Equal(t, 16, got.EstimatedAge)
}
