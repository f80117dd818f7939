// Package scoring computes the technical, innovation, collaboration, age,
// and founder-potential scores for an assembled candidate record.
package scoring

// Weights holds every weight and normalization constant used by the
// Calculator. It is constructed once at startup and passed by value so
// there is no hidden mutable state; tests can override individual terms.
type Weights struct {
	// Technical score terms.
	TechnicalStars     float64
	TechnicalForks     float64
	TechnicalLanguages float64
	TechnicalRepos     float64

	// Innovation score terms.
	InnovationStars       float64
	InnovationForks       float64
	InnovationActiveBonus float64
	InnovationQuietBonus  float64

	// Collaboration score terms.
	CollabFollowers   float64
	CollabFollowing   float64
	CollabActiveBonus float64
	CollabQuietBonus  float64

	// Founder-potential mix of the 0-1 sub-scores.
	FounderTechnical     float64
	FounderInnovation    float64
	FounderCollaboration float64

	// Normalization denominators: the input value at which a term alone
	// would saturate its weight.
	StarNorm      float64
	ForkNorm      float64
	LanguageNorm  float64
	RepoNorm      float64
	FollowerNorm  float64
	FollowingNorm float64
}

// DefaultWeights returns the standard scoring configuration.
func DefaultWeights() Weights {
	return Weights{
		TechnicalStars:     0.3,
		TechnicalForks:     0.2,
		TechnicalLanguages: 0.2,
		TechnicalRepos:     0.3,

		InnovationStars:       0.4,
		InnovationForks:       0.3,
		InnovationActiveBonus: 0.3,
		InnovationQuietBonus:  0.1,

		CollabFollowers:   0.4,
		CollabFollowing:   0.2,
		CollabActiveBonus: 0.4,
		CollabQuietBonus:  0.2,

		FounderTechnical:     0.4,
		FounderInnovation:    0.3,
		FounderCollaboration: 0.3,

		StarNorm:      100,
		ForkNorm:      50,
		LanguageNorm:  5,
		RepoNorm:      20,
		FollowerNorm:  500,
		FollowingNorm: 200,
	}
}
