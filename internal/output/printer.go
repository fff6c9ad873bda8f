// Package output renders engine results for the console.
package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gitflow/gitflow-go/internal/git"
)

// Printer writes human-readable views of repository records.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Stats prints the aggregated repository statistics block.
func (p *Printer) Stats(stats git.Stats) {
	fmt.Fprintf(p.w, "\n=== Repository Statistics ===\n\n")
	fmt.Fprintf(p.w, "Total Commits:     %s\n", humanize.Comma(int64(stats.TotalCommits)))
	fmt.Fprintf(p.w, "Total Files:       %s\n", humanize.Comma(int64(stats.TotalFiles)))
	fmt.Fprintf(p.w, "Contributors:      %d\n", stats.Contributors)
	fmt.Fprintf(p.w, "Recent Activity:   %d commits (last 30 days)\n", stats.CommitsLast30Days)

	if len(stats.TopContributors) > 0 {
		fmt.Fprintf(p.w, "\n--- Top Contributors ---\n\n")
		for _, c := range stats.TopContributors {
			fmt.Fprintf(p.w, "  %4d commits  %s\n", c.Commits, c.Name)
		}
	}
	fmt.Fprintln(p.w)
}

// Commits prints the recent commit list, one block per commit.
func (p *Printer) Commits(commits []git.Commit) {
	fmt.Fprintf(p.w, "\n=== Recent Commits ===\n\n")
	for _, c := range commits {
		fmt.Fprintf(p.w, "%s  %s\n", c.Hash, c.Subject)
		fmt.Fprintf(p.w, "         %s - %s\n\n", c.Author, c.Time)
	}
}

// Branches prints branch names under a title, marking the current branch.
func (p *Printer) Branches(title string, branches []string, current string) {
	fmt.Fprintf(p.w, "\n=== %s ===\n\n", title)
	for _, branch := range branches {
		marker := " "
		if branch == current {
			marker = ">"
		}
		fmt.Fprintf(p.w, "  %s %s\n", marker, branch)
	}
	fmt.Fprintln(p.w)
}

// Status prints the enhanced status view: branch, working tree changes,
// and the most recent commit when one exists.
func (p *Printer) Status(branch string, changes []string, last *git.Commit) {
	fmt.Fprintf(p.w, "\n=== On branch: %s ===\n\n", branch)

	if len(changes) > 0 {
		fmt.Fprintf(p.w, "Changes:\n\n")
		for _, line := range changes {
			fmt.Fprintf(p.w, "  %s\n", line)
		}
		fmt.Fprintln(p.w)
	} else {
		fmt.Fprintf(p.w, "✅ Working tree clean\n\n")
	}

	if last != nil {
		fmt.Fprintf(p.w, "Last commit: %s - %s\n", last.Hash, last.Subject)
		fmt.Fprintf(p.w, "   %s - %s\n\n", last.Author, last.Time)
	}
}
