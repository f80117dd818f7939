package scoring

import (
	"math"
	"time"

	"github.com/jonathan/founder-scout/internal/types"
)

// neutralAgeScore is reported when the account age cannot be derived.
const neutralAgeScore = 5.0

// scoreScale converts 0-1 sub-scores to the reported 0-10 range.
const scoreScale = 10.0

// Calculator turns a raw user record, its repositories, and its activity
// classification into a complete ScoreSet. It never fails: sparse or
// malformed inputs degrade individual scores instead.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a Calculator with the given weight configuration.
func NewCalculator(weights Weights) *Calculator {
	return &Calculator{weights: weights}
}

// Score computes the five scores. All sub-scores are derived in the 0-1
// range and capped at 1.0; founder potential mixes the 0-1 values before
// scaling, so the exact order of operations here is deliberate and must
// not be algebraically "simplified".
func (c *Calculator) Score(user types.User, repos []types.Repository, activity types.ActivityProfile) types.ScoreSet {
	return c.scoreAt(time.Now().UTC(), user, repos, activity)
}

func (c *Calculator) scoreAt(now time.Time, user types.User, repos []types.Repository, activity types.ActivityProfile) types.ScoreSet {
	w := c.weights

	var technical, innovation, collaboration float64
	if len(repos) > 0 {
		totalStars := 0
		totalForks := 0
		languages := make(map[string]struct{})
		for _, repo := range repos {
			totalStars += repo.Stars
			totalForks += repo.Forks
			if repo.Language != "" {
				languages[repo.Language] = struct{}{}
			}
		}

		technical = cap01(
			float64(totalStars)*w.TechnicalStars/w.StarNorm +
				float64(totalForks)*w.TechnicalForks/w.ForkNorm +
				float64(len(languages))*w.TechnicalLanguages/w.LanguageNorm +
				float64(len(repos))*w.TechnicalRepos/w.RepoNorm)

		innovationBonus := w.InnovationQuietBonus
		if activity.Frequency.Elevated() {
			innovationBonus = w.InnovationActiveBonus
		}
		innovation = cap01(
			float64(totalStars)*w.InnovationStars/w.StarNorm +
				float64(totalForks)*w.InnovationForks/w.ForkNorm +
				innovationBonus)

		collabBonus := w.CollabQuietBonus
		if activity.Frequency.Elevated() {
			collabBonus = w.CollabActiveBonus
		}
		collaboration = cap01(
			float64(user.Followers)*w.CollabFollowers/w.FollowerNorm +
				float64(user.Following)*w.CollabFollowing/w.FollowingNorm +
				collabBonus)
	}

	founder := technical*w.FounderTechnical +
		innovation*w.FounderInnovation +
		collaboration*w.FounderCollaboration

	return types.ScoreSet{
		Technical:        technical * scoreScale,
		Innovation:       innovation * scoreScale,
		Collaboration:    collaboration * scoreScale,
		Age:              ageScoreAt(now, user),
		FounderPotential: founder * scoreScale,
	}
}

// ageScoreAt favors estimated ages near 25: ramping up from 16, peaking at
// 25, declining to 35, then declining faster. Unparseable account creation
// defaults to the neutral midpoint.
func ageScoreAt(now time.Time, user types.User) float64 {
	created, err := types.ParseTimestamp(user.CreatedAt)
	if err != nil {
		return neutralAgeScore
	}

	days := math.Floor(now.Sub(created).Hours() / 24)
	estimatedAge := 16 + days/365.25

	var score float64
	switch {
	case estimatedAge < 25:
		score = 0.7 + (estimatedAge-16)*0.03
	case estimatedAge <= 35:
		score = 1.0 - (estimatedAge-25)*0.03
	default:
		score = 0.7 - (estimatedAge-35)*0.02
	}

	return math.Max(0, math.Min(score*scoreScale, scoreScale))
}

func cap01(v float64) float64 {
	return math.Min(v, 1.0)
}
