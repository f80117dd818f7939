// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jonathan/founder-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of one aggregated profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", displayName(profile)))
	if profile.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:   %s\n", profile.Company))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", profile.Location))
	}
	sb.WriteString(fmt.Sprintf("Account:   %s, %d repos, %d followers\n",
		profile.AccountAge, profile.PublicRepos, profile.Followers))
	sb.WriteString(fmt.Sprintf("Activity:  %s\n", profile.ContributionFreq))
	sb.WriteString("\n")

	sb.WriteString("Scores:\n")
	sb.WriteString(fmt.Sprintf("  Technical:      %.1f\n", profile.Scores.Technical))
	sb.WriteString(fmt.Sprintf("  Innovation:     %.1f\n", profile.Scores.Innovation))
	sb.WriteString(fmt.Sprintf("  Collaboration:  %.1f\n", profile.Scores.Collaboration))
	sb.WriteString(fmt.Sprintf("  Age:            %.1f\n", profile.Scores.Age))
	sb.WriteString(fmt.Sprintf("  Founder:        %.1f\n", profile.Scores.FounderPotential))
	sb.WriteString(fmt.Sprintf("  Future fit:     %.3f\n", profile.FutureFounderScore))

	if len(profile.TopRepos) > 0 {
		sb.WriteString("\nTop repositories:\n")
		for _, repo := range profile.TopRepos {
			sb.WriteString(fmt.Sprintf("  • %s (%d★", repo.Name, repo.Stars))
			if repo.Language != "" {
				sb.WriteString(", " + repo.Language)
			}
			sb.WriteString(")\n")
		}
	}

	if len(profile.EarlyAchievements) > 0 {
		sb.WriteString("\nEarly achievements:\n")
		for _, a := range profile.EarlyAchievements {
			sb.WriteString(fmt.Sprintf("  • %s reached %d★ within %.1f years\n",
				a.Name, a.Stars, a.CreatedAfterYears))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates with their founder
// potential scores.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRanking(profiles []*types.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(p.out, "No candidates found.")
		return
	}

	headline := color.New(color.FgCyan, color.Bold)
	headline.Fprintf(p.out, "Top candidates (%d total):\n", len(profiles))

	count := min(len(profiles), maxItemsToShow)
	for i := 0; i < count; i++ {
		profile := profiles[i]
		name := displayName(profile)
		if profile.Company != "" {
			name += " @ " + profile.Company
		}
		fmt.Fprintf(p.out, "#%d  %-40s %.1f\n", i+1, name, profile.Scores.FounderPotential)
	}
	if len(profiles) > maxItemsToShow {
		fmt.Fprintf(p.out, "... and %d more\n", len(profiles)-maxItemsToShow)
	}
}

// displayName prefers the human name and falls back to the login. Display
// only; identity handling elsewhere uses the raw name.
func displayName(profile *types.Profile) string {
	if profile.Name != "" {
		return profile.Name
	}
	return profile.Login
}
