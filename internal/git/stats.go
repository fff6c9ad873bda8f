package git

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Contributor pairs an author name with their commit count.
type Contributor struct {
	Name    string
	Commits int
}

// Stats aggregates repository statistics. A failed query leaves its
// fields at zero; it never aborts the other queries.
type Stats struct {
	TotalCommits      int
	TotalFiles        int
	Contributors      int
	CommitsLast30Days int
	TopContributors   []Contributor
}

// shortlog -sn lines: leading whitespace, count, whitespace, author name.
var shortlogLine = regexp.MustCompile(`^\s*(\d+)\s+(.+)$`)

const topContributorLimit = 5

const recentActivityDays = 30

// Stats runs four independent queries and aggregates the results.
func (c *Client) Stats() Stats {
	var stats Stats

	if res := c.runner.Run("rev-list", "--count", "HEAD"); res.OK {
		stats.TotalCommits = parseCount(res.Output)
	}

	if res := c.runner.Run("shortlog", "-sn", "--all"); res.OK {
		stats.Contributors, stats.TopContributors = parseShortlog(res.Output)
	}

	if res := c.runner.Run("ls-files"); res.OK {
		stats.TotalFiles = countLines(res.Output)
	}

	since := time.Now().AddDate(0, 0, -recentActivityDays).Format("2006-01-02")
	if res := c.runner.Run("rev-list", "--count", "--since="+since, "HEAD"); res.OK {
		stats.CommitsLast30Days = parseCount(res.Output)
	}

	return stats
}

func parseCount(output string) int {
	n, err := strconv.Atoi(strings.TrimSpace(output))
	if err != nil {
		return 0
	}
	return n
}

func countLines(output string) int {
	if output == "" {
		return 0
	}
	return len(strings.Split(output, "\n"))
}

// parseShortlog reads "count name" summary lines. Non-matching lines are
// ignored for the ranking; only the first five lines contribute to it.
func parseShortlog(output string) (contributors int, top []Contributor) {
	for i, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		contributors++
		if i >= topContributorLimit {
			continue
		}
		if m := shortlogLine.FindStringSubmatch(line); m != nil {
			count, _ := strconv.Atoi(m[1])
			top = append(top, Contributor{Name: m[2], Commits: count})
		}
	}
	return contributors, top
}
