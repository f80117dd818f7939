// Package types defines the shared data structures exchanged between
// pipeline stages.
package types

import "time"

// User is the subset of the GitHub user-detail payload the pipeline
// consumes. It is immutable once fetched.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

// Repository is one entry of a user's repository listing.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
	CreatedAt   string `json:"created_at"`
}

// Event is one entry of a user's public event listing. Only the
// timestamp matters for activity classification.
type Event struct {
	CreatedAt string `json:"created_at"`
}

// ParseTimestamp parses a GitHub API timestamp (RFC 3339, UTC) and
// normalizes it to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
