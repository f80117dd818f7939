// Package age derives account age, an estimated real-world age, and early
// achievement signals from account and repository metadata.
package age

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/founder-scout/internal/types"
)

const (
	daysPerYear = 365.25

	// minAccountAge assumes nobody opened their account before age 16.
	minAccountAge = 16

	// gradAge assumes graduation at 22 when a "class of YYYY" bio hint
	// is present.
	gradAge = 22

	// Early achievement gates: a repo must reach earlyStars stars and be
	// created within earlyYears of the account to qualify.
	earlyYears = 2.0
	earlyStars = 50

	// topRepoCount limits how many repos are examined for achievements.
	topRepoCount = 3
)

var gradYearPattern = regexp.MustCompile(`class of (20\d{2})`)

// Estimate derives an AgeProfile from the user record and repository set.
// On any creation-timestamp parsing failure it returns the unknown profile
// rather than an error: sparse upstream data must never fail a record.
func Estimate(user types.User, repos []types.Repository) types.AgeProfile {
	return estimateAt(time.Now().UTC(), user, repos)
}

func estimateAt(now time.Time, user types.User, repos []types.Repository) types.AgeProfile {
	unknown := types.AgeProfile{
		AccountAge:        types.AccountAgeUnknown,
		EstimatedAge:      types.EstimatedAgeUnknown,
		EarlyAchievements: []types.Achievement{},
	}

	created, err := types.ParseTimestamp(user.CreatedAt)
	if err != nil {
		return unknown
	}
	accountYears := yearsBetween(created, now)

	achievements := []types.Achievement{}
	for _, repo := range topByStars(repos, topRepoCount) {
		repoCreated, err := types.ParseTimestamp(repo.CreatedAt)
		if err != nil {
			return unknown
		}
		repoYears := yearsBetween(created, repoCreated)
		if repoYears <= earlyYears && repo.Stars >= earlyStars {
			achievements = append(achievements, types.Achievement{
				Name:              repo.Name,
				Stars:             repo.Stars,
				CreatedAfterYears: math.Round(repoYears*10) / 10,
			})
		}
	}

	estimated := estimateFromBio(now, user.Bio)
	if estimated == types.EstimatedAgeUnknown {
		estimated = int(math.Max(minAccountAge+accountYears, minAccountAge))
	}

	return types.AgeProfile{
		AccountAge:        fmt.Sprintf("%.1f years", accountYears),
		AccountAgeYears:   accountYears,
		EstimatedAge:      estimated,
		EarlyAchievements: achievements,
	}
}

// estimateFromBio searches the bio for a "class of YYYY" hint and converts
// the graduation year into an age estimate.
func estimateFromBio(now time.Time, bio string) int {
	match := gradYearPattern.FindStringSubmatch(strings.ToLower(bio))
	if match == nil {
		return types.EstimatedAgeUnknown
	}
	gradYear, err := strconv.Atoi(match[1])
	if err != nil {
		return types.EstimatedAgeUnknown
	}
	return now.Year() - gradYear + gradAge
}

// topByStars returns up to n repositories ordered by star count descending
// without mutating the input.
func topByStars(repos []types.Repository, n int) []types.Repository {
	sorted := make([]types.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// yearsBetween measures whole elapsed days between two instants and
// converts to fractional years.
func yearsBetween(from, to time.Time) float64 {
	days := math.Floor(to.Sub(from).Hours() / 24)
	return days / daysPerYear
}
