package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/founder-scout/internal/types"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func stamp(t time.Time) string { return t.Format(time.RFC3339) }

func lowActivity() types.ActivityProfile {
	return types.ActivityProfile{Frequency: types.FrequencyLow}
}

func TestScore_EmptyRepoListZeroesProjectScores(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	user := types.User{Followers: 1000, Following: 500, CreatedAt: stamp(testNow.AddDate(-9, 0, 0))}

	got := calc.scoreAt(testNow, user, nil, lowActivity())

	assert.Zero(t, got.Technical)
	assert.Zero(t, got.Innovation)
	assert.Zero(t, got.Collaboration)
	assert.Zero(t, got.FounderPotential)
	// Age score is still computed normally.
	assert.Greater(t, got.Age, 0.0)
}

func TestScore_SaturatedTechnicalProfile(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	user := types.User{CreatedAt: stamp(testNow.AddDate(-9, 0, 0))}

	// 20 repos, 300 stars and 100 forks total, 5 distinct languages:
	// every technical term meets or exceeds its cap contribution.
	languages := []string{"Go", "Rust", "Python", "TypeScript", "C"}
	repos := make([]types.Repository, 20)
	for i := range repos {
		repos[i] = types.Repository{
			Name:      "r",
			Stars:     15,
			Forks:     5,
			Language:  languages[i%len(languages)],
			CreatedAt: stamp(testNow.AddDate(-1, 0, 0)),
		}
	}

	got := calc.scoreAt(testNow, user, repos, lowActivity())
	assert.InDelta(t, 10.0, got.Technical, 1e-9)
}

func TestScore_ActivityBonusRaisesInnovationAndCollaboration(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	user := types.User{CreatedAt: stamp(testNow.AddDate(-5, 0, 0))}
	repos := []types.Repository{{Name: "only", Stars: 10, Forks: 2, Language: "Go", CreatedAt: stamp(testNow.AddDate(-1, 0, 0))}}

	quiet := calc.scoreAt(testNow, user, repos, lowActivity())
	active := calc.scoreAt(testNow, user, repos, types.ActivityProfile{Frequency: types.FrequencyVeryHigh})

	assert.InDelta(t, 2.0, active.Innovation-quiet.Innovation, 1e-9)
	assert.InDelta(t, 2.0, active.Collaboration-quiet.Collaboration, 1e-9)
}

func TestScore_FounderPotentialMixesUnscaledSubScores(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	user := types.User{Followers: 500, Following: 200, CreatedAt: stamp(testNow.AddDate(-9, 0, 0))}
	repos := make([]types.Repository, 20)
	for i := range repos {
		repos[i] = types.Repository{Stars: 15, Forks: 5, Language: "Go", CreatedAt: stamp(testNow.AddDate(-1, 0, 0))}
	}

	got := calc.scoreAt(testNow, user, repos, types.ActivityProfile{Frequency: types.FrequencyHigh})

	// technical=1.0, innovation=1.0 (capped), collaboration=1.0 (capped):
	// founder potential = (0.4+0.3+0.3) * 10.
	assert.InDelta(t, 10.0, got.FounderPotential, 1e-9)
}

func TestScore_FounderPotentialWeighting(t *testing.T) {
	calc := NewCalculator(DefaultWeights())
	user := types.User{CreatedAt: stamp(testNow.AddDate(-5, 0, 0))}
	// 50 stars, no forks, 1 language, 1 repo, low activity, no followers.
	repos := []types.Repository{{Stars: 50, Language: "Go", CreatedAt: stamp(testNow.AddDate(-1, 0, 0))}}

	got := calc.scoreAt(testNow, user, repos, lowActivity())

	technical := 50*0.3/100.0 + 1*0.2/5.0 + 1*0.3/20.0
	innovation := 50*0.4/100.0 + 0.1
	collaboration := 0.2
	expected := (technical*0.4 + innovation*0.3 + collaboration*0.3) * 10

	assert.InDelta(t, expected, got.FounderPotential, 1e-9)
	assert.InDelta(t, technical*10, got.Technical, 1e-9)
	assert.InDelta(t, innovation*10, got.Innovation, 1e-9)
	assert.InDelta(t, collaboration*10, got.Collaboration, 1e-9)
}

func TestAgeScore_Bands(t *testing.T) {
	tests := []struct {
		name         string
		accountYears int
		want         float64
	}{
		// estimated age = 16 + account years.
		{"brand new account scores 7.0", 0, 7.0},
		{"peak at estimated age 25", 9, 10.0},
		{"estimated age 45 scores 5.0", 29, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := types.User{CreatedAt: stamp(testNow.AddDate(-tt.accountYears, 0, 0))}
			got := ageScoreAt(testNow, user)
			assert.InDelta(t, tt.want, got, 0.1)
		})
	}
}

func TestAgeScore_UnparseableCreationDefaultsToNeutral(t *testing.T) {
	assert.Equal(t, neutralAgeScore, ageScoreAt(testNow, types.User{CreatedAt: "bogus"}))
}
