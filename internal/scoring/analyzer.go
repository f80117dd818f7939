package scoring

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Position is one role in a candidate's employment history.
type Position struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"` // "YYYY-MM"
}

// Education is one degree entry on a candidate record.
type Education struct {
	School string `json:"school"`
	Field  string `json:"field"`
	Degree string `json:"degree"`
}

// Candidate is the analyzer's view of an enriched profile record. Fields
// may be zero; every sub-score degrades to a neutral value on missing data.
type Candidate struct {
	Age             int
	Title           string
	EducationText   string
	Education       []Education
	Career          []Position
	ExperienceYears int
	Source          string
	PublicRepos     int
	Followers       int
}

// Progression summarizes a candidate's career trajectory.
type Progression struct {
	Rate        float64 `json:"progression_rate"`
	Promotions  int     `json:"promotions"`
	Trajectory  string  `json:"growth_trajectory"`
	TitleLevels []int   `json:"title_levels"`
}

// AnalyzerWeights is the immutable heuristic configuration for the
// composite future-founder analysis: component weights, the title-level
// map, school tiers, and age bands. Build it once with
// DefaultAnalyzerWeights and pass it in; nothing mutates it afterwards.
type AnalyzerWeights struct {
	Age                float64
	CareerProgression  float64
	TechnicalExpertise float64
	Innovation         float64
	Leadership         float64
	Education          float64

	TitleLevels       map[string]int
	DefaultTitleLevel int

	TopSchools     []string
	GoodSchools    []string
	TechFields     []string
	BusinessFields []string

	IdealAgeMin, IdealAgeMax   int
	TargetAgeMin, TargetAgeMax int
}

// DefaultAnalyzerWeights returns the standard heuristic configuration.
func DefaultAnalyzerWeights() AnalyzerWeights {
	return AnalyzerWeights{
		Age:                0.20,
		CareerProgression:  0.20,
		TechnicalExpertise: 0.15,
		Innovation:         0.15,
		Leadership:         0.15,
		Education:          0.15,

		TitleLevels: map[string]int{
			"intern":         1,
			"associate":      2,
			"analyst":        2,
			"specialist":     2,
			"coordinator":    2,
			"manager":        3,
			"senior":         4,
			"lead":           4,
			"principal":      5,
			"director":       6,
			"head":           6,
			"vp":             7,
			"vice president": 7,
			"ceo":            8,
			"cto":            8,
			"cfo":            8,
			"c-level":        8,
			"founder":        10,
			"co-founder":     10,
			"entrepreneur":   10,
		},
		DefaultTitleLevel: 2,

		TopSchools:     []string{"stanford", "harvard", "mit", "berkeley", "princeton", "yale"},
		GoodSchools:    []string{"columbia", "upenn", "cornell", "dartmouth", "brown", "duke"},
		TechFields:     []string{"computer science", "engineering", "mathematics", "physics"},
		BusinessFields: []string{"business", "economics", "finance", "mba"},

		IdealAgeMin:  25,
		IdealAgeMax:  35,
		TargetAgeMin: 20,
		TargetAgeMax: 40,
	}
}

// Analyzer computes the composite future-founder score from enriched
// candidate signals (title history, education, age bands).
type Analyzer struct {
	weights AnalyzerWeights
}

// NewAnalyzer creates an Analyzer with the given heuristic configuration.
func NewAnalyzer(weights AnalyzerWeights) *Analyzer {
	return &Analyzer{weights: weights}
}

// FounderScore combines the six weighted 0-1 component scores and rounds
// to three decimals.
func (a *Analyzer) FounderScore(c Candidate) float64 {
	w := a.weights
	score := a.ageScore(c.Age)*w.Age +
		a.careerProgressionScore(c)*w.CareerProgression +
		a.technicalExpertiseScore(c)*w.TechnicalExpertise +
		a.innovationScore(c)*w.Innovation +
		a.leadershipScore(c)*w.Leadership +
		a.educationScore(c.Education)*w.Education
	return math.Round(score*1000) / 1000
}

func (a *Analyzer) ageScore(age int) float64 {
	if age == 0 {
		return 0.5
	}
	w := a.weights
	switch {
	case age >= w.IdealAgeMin && age <= w.IdealAgeMax:
		return 1.0
	case age >= w.TargetAgeMin && age <= w.TargetAgeMax:
		return 0.7
	case age < w.TargetAgeMin:
		return 0.3
	default:
		return 0.1
	}
}

func (a *Analyzer) careerProgressionScore(c Candidate) float64 {
	if len(c.Career) == 0 || c.ExperienceYears == 0 {
		return 0.5
	}

	levels := make([]int, 0, len(c.Career))
	for _, position := range c.Career {
		levels = append(levels, a.TitleLevel(position.Title))
	}
	if len(levels) < 2 {
		return 0.5
	}

	increase := maxInt(levels) - minInt(levels)
	switch {
	case c.ExperienceYears >= 3 && increase >= 2:
		return 1.0
	case c.ExperienceYears >= 2 && increase >= 1:
		return 0.8
	case increase > 0:
		return 0.6
	default:
		return 0.3
	}
}

func (a *Analyzer) technicalExpertiseScore(c Candidate) float64 {
	score := 0.0
	if c.Source == "github" {
		score += math.Min(float64(c.PublicRepos)/20, 1)*0.3 +
			math.Min(float64(c.Followers)/500, 1)*0.2
	}
	return math.Min(score, 1.0)
}

func (a *Analyzer) innovationScore(c Candidate) float64 {
	score := 0.0
	if c.Source == "github" && c.PublicRepos > 0 {
		score += math.Min(float64(c.PublicRepos)/20, 0.5)
	}
	return math.Min(score, 1.0)
}

func (a *Analyzer) leadershipScore(c Candidate) float64 {
	score := float64(a.TitleLevel(c.Title)) / 10
	if c.Source == "github" {
		score += math.Min(float64(c.Followers)/1000, 0.3)
	}
	return math.Min(score, 1.0)
}

func (a *Analyzer) educationScore(education []Education) float64 {
	if len(education) == 0 {
		return 0.5
	}

	best := 0.0
	for _, edu := range education {
		school := strings.ToLower(edu.School)
		field := strings.ToLower(edu.Field)
		degree := strings.ToLower(edu.Degree)

		score := 0.0
		if containsAny(school, a.weights.TopSchools) {
			score = math.Max(score, 1.0)
		}
		if containsAny(school, a.weights.GoodSchools) {
			score = math.Max(score, 0.9)
		}
		if containsAny(field, a.weights.TechFields) {
			score = math.Max(score, 0.8)
		}
		if containsAny(field, a.weights.BusinessFields) || strings.Contains(degree, "mba") {
			score = math.Max(score, 0.7)
		}
		switch degree {
		case "phd", "doctorate", "ms", "master":
			score = math.Min(score+0.1, 1.0)
		}

		best = math.Max(best, score)
	}

	if best > 0 {
		return best
	}
	return 0.5
}

// TitleLevel maps a job title to its seniority level via keyword lookup.
func (a *Analyzer) TitleLevel(title string) int {
	lower := strings.ToLower(title)
	best := 0
	for keyword, level := range a.weights.TitleLevels {
		if strings.Contains(lower, keyword) && level > best {
			best = level
		}
	}
	if best == 0 {
		return a.weights.DefaultTitleLevel
	}
	return best
}

// ExtractAge derives an age from whichever signal is available: a direct
// age field, a graduation year in the education text, or experience years.
// Returns 0 when nothing applies.
func (a *Analyzer) ExtractAge(c Candidate) int {
	if c.Age > 0 {
		return c.Age
	}

	if c.EducationText != "" {
		if year := extractGraduationYear(c.EducationText); year > 0 {
			estimated := time.Now().Year() - year + 22
			return clampInt(estimated, 18, 100)
		}
	}

	if c.ExperienceYears > 0 {
		return clampInt(22+c.ExperienceYears, 18, 100)
	}

	return 0
}

// AnalyzeCareerProgression derives promotion counts and a trajectory label
// from a position history ordered by start date.
func (a *Analyzer) AnalyzeCareerProgression(positions []Position) Progression {
	if len(positions) < 2 {
		return Progression{Trajectory: "stable"}
	}

	sorted := make([]Position, len(positions))
	copy(sorted, positions)
	sortPositionsByStart(sorted)

	levels := make([]int, 0, len(sorted))
	promotions := 0
	for i, position := range sorted {
		level := a.TitleLevel(position.Title)
		levels = append(levels, level)
		if i > 0 && level > levels[i-1] {
			promotions++
		}
	}

	span := len(levels)
	rate := float64(maxInt(levels)-minInt(levels)) / float64(max(span, 1))

	trajectory := "stable"
	switch {
	case rate >= 1.5:
		trajectory = "rapid"
	case rate >= 0.5:
		trajectory = "steady"
	}

	return Progression{
		Rate:        math.Round(rate*100) / 100,
		Promotions:  promotions,
		Trajectory:  trajectory,
		TitleLevels: levels,
	}
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// extractGraduationYear picks the most recent four-digit year mentioned.
func extractGraduationYear(text string) int {
	years := yearPattern.FindAllString(text, -1)
	best := 0
	for _, raw := range years {
		if year, err := strconv.Atoi(raw); err == nil && year > best {
			best = year
		}
	}
	return best
}

func sortPositionsByStart(positions []Position) {
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].StartDate < positions[j].StartDate
	})
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func minInt(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxInt(values []int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
