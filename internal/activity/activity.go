// Package activity derives a contribution-frequency classification from a
// candidate's recent public events.
package activity

import (
	"math"
	"time"

	"github.com/jonathan/founder-scout/internal/types"
)

// recentWindowDays is how far back events count toward the classification.
const recentWindowDays = 90

// Thresholds for the frequency classes (event counts within the window).
const (
	veryHighThreshold = 100
	highThreshold     = 50
	mediumThreshold   = 20
)

// Classify counts events at most 90 whole days old and maps the count to
// a frequency class. Malformed timestamps are skipped individually; an
// empty or missing event list classifies as low.
func Classify(events []types.Event) types.ActivityProfile {
	return classifyAt(time.Now().UTC(), events)
}

func classifyAt(now time.Time, events []types.Event) types.ActivityProfile {
	recent := 0
	for _, event := range events {
		created, err := types.ParseTimestamp(event.CreatedAt)
		if err != nil {
			continue
		}
		// Whole elapsed days, floored, so an event 90.9 days old still
		// counts. Future-dated events yield negative day counts and count
		// as well.
		days := math.Floor(now.Sub(created).Hours() / 24)
		if days <= recentWindowDays {
			recent++
		}
	}

	return types.ActivityProfile{Frequency: classifyCount(recent)}
}

func classifyCount(recent int) types.Frequency {
	switch {
	case recent > veryHighThreshold:
		return types.FrequencyVeryHigh
	case recent > highThreshold:
		return types.FrequencyHigh
	case recent > mediumThreshold:
		return types.FrequencyMedium
	default:
		return types.FrequencyLow
	}
}
