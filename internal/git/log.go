package git

import (
	"fmt"
	"strings"
)

// Commit is one parsed log entry, discarded after display.
type Commit struct {
	Hash    string // shortened to 7 characters
	Author  string
	Email   string
	Time    string // relative age, e.g. "2 days ago"
	Subject string
}

// Five pipe-separated fields: full hash, author name, author email,
// relative age, subject.
const logFormat = "%H|%an|%ae|%ar|%s"

// Commits returns up to n most recent commits, newest first. Returns an
// empty list on command failure.
func (c *Client) Commits(n int) []Commit {
	res := c.runner.Run("log", fmt.Sprintf("-%d", n), "--pretty=format:"+logFormat)
	if !res.OK {
		return nil
	}
	return parseCommitLog(res.Output)
}

func parseCommitLog(output string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		commit, ok := parseCommitLine(line)
		if !ok {
			continue
		}
		commits = append(commits, commit)
	}
	return commits
}

// parseCommitLine splits one pipe-delimited log line. Lines that do not
// carry exactly five fields produce no record.
func parseCommitLine(line string) (Commit, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return Commit{}, false
	}
	hash := parts[0]
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return Commit{
		Hash:    hash,
		Author:  parts[1],
		Email:   parts[2],
		Time:    parts[3],
		Subject: parts[4],
	}, true
}

// Subjects returns commit subject lines in log order, optionally bounded
// by a since date. The second return is false when the log query itself
// fails (as opposed to returning no lines).
func (c *Client) Subjects(since string) ([]string, bool) {
	args := []string{"log", "--pretty=format:%s"}
	if since != "" {
		args = append(args, "--since="+since)
	}
	res := c.runner.Run(args...)
	if !res.OK {
		return nil, false
	}
	var subjects []string
	for _, line := range strings.Split(res.Output, "\n") {
		if line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects, true
}
