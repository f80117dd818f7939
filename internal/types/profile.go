package types

// Frequency classifies how often a candidate contributed recently.
type Frequency string

// Contribution frequency classes, ordered from least to most active.
const (
	FrequencyLow      Frequency = "low"
	FrequencyMedium   Frequency = "medium"
	FrequencyHigh     Frequency = "high"
	FrequencyVeryHigh Frequency = "very_high"
)

// Elevated reports whether the frequency qualifies for the activity
// bonuses used in innovation and collaboration scoring.
func (f Frequency) Elevated() bool {
	return f == FrequencyHigh || f == FrequencyVeryHigh
}

// ActivityProfile is the derived activity classification for a candidate.
type ActivityProfile struct {
	Frequency Frequency `json:"frequency"`
}

// Sentinels for fields that could not be derived. Absence is always
// explicit so downstream scoring sees a single consistent contract.
const (
	// AccountAgeUnknown is reported when the account creation timestamp
	// could not be parsed.
	AccountAgeUnknown = "N/A"
	// EstimatedAgeUnknown marks an estimated age that could not be derived.
	EstimatedAgeUnknown = 0
)

// Achievement records a repository that gained significant popularity
// within two years of its owner's account creation.
type Achievement struct {
	Name              string  `json:"name"`
	Stars             int     `json:"stars"`
	CreatedAfterYears float64 `json:"created_after_years"`
}

// AgeProfile holds the age signals derived from account and repository
// metadata.
type AgeProfile struct {
	// AccountAge is a human-readable account age ("7.3 years"), or
	// AccountAgeUnknown when the creation timestamp was unparseable.
	AccountAge string `json:"account_age"`
	// AccountAgeYears is the account age in fractional years; zero when
	// unknown.
	AccountAgeYears float64 `json:"account_age_years"`
	// EstimatedAge is the estimated real-world age in whole years, or
	// EstimatedAgeUnknown.
	EstimatedAge      int           `json:"estimated_age,omitempty"`
	EarlyAchievements []Achievement `json:"early_achievements"`
}

// ScoreSet holds the five computed scores, each scaled to [0,10].
type ScoreSet struct {
	Technical        float64 `json:"technical_score"`
	Innovation       float64 `json:"innovation_score"`
	Collaboration    float64 `json:"collaboration_score"`
	Age              float64 `json:"age_score"`
	FounderPotential float64 `json:"founder_potential"`
}

// RepoSummary is the arbitrary-field projection of a top repository
// included on the aggregated profile.
type RepoSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	CreatedAt   string `json:"created_at"`
}

// Profile is the externally visible aggregation unit: user-detail fields
// merged with the derived activity, age, and score data. It is created
// once per candidate and immutable afterwards.
type Profile struct {
	// Login is the source account handle, carried for display and export.
	// Name stays exactly as the source reports it, possibly empty, because
	// the deduplication key is built from it.
	Login              string         `json:"login"`
	Name               string         `json:"name"`
	Company            string         `json:"company"`
	Location           string         `json:"location"`
	Bio                string         `json:"bio"`
	GitHubURL          string         `json:"github_url"`
	PublicRepos        int            `json:"public_repos"`
	Followers          int            `json:"followers"`
	Following          int            `json:"following"`
	AccountAge         string         `json:"account_age"`
	EstimatedAge       int            `json:"estimated_age,omitempty"`
	EarlyAchievements  []Achievement  `json:"early_achievements"`
	Scores             ScoreSet       `json:"scores"`
	FutureFounderScore float64        `json:"future_founder_score"`
	Languages          map[string]int `json:"languages"`
	TopRepos           []RepoSummary  `json:"top_repos"`
	ContributionFreq   Frequency      `json:"contribution_frequency"`
	Source             string         `json:"source"`
}

// IdentityKey is the deduplication key: name and company concatenated,
// with empty strings standing in for missing values. Two distinct people
// sharing a name and employer string collide under this key.
func (p *Profile) IdentityKey() string {
	return p.Name + "-" + p.Company
}
