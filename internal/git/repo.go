package git

import "strings"

// Client issues repository queries through a Runner and parses the raw
// output into structured records. Every query is independent and
// stateless; command failure degrades to an empty or zero result.
type Client struct {
	runner    *Runner
	remote    string
	protected []string
}

// NewClient creates a Client. remote is the prefix stripped from remote
// branch names (typically "origin"); protected branches are never offered
// for cleanup.
func NewClient(runner *Runner, remote string, protected []string) *Client {
	return &Client{runner: runner, remote: remote, protected: protected}
}

// IsRepo reports whether the working directory is inside a git repository.
func (c *Client) IsRepo() bool {
	return c.runner.Run("rev-parse", "--git-dir").OK
}

// CurrentBranch returns the checked-out branch name.
func (c *Client) CurrentBranch() (string, bool) {
	res := c.runner.Run("branch", "--show-current")
	if !res.OK {
		return "", false
	}
	return res.Output, true
}

// Branches lists local or remote branch names, in git's output order. The
// line marking the checked-out branch is dropped; in remote mode the
// remote prefix is stripped. Returns an empty list on command failure.
func (c *Client) Branches(remote bool) []string {
	args := []string{"branch"}
	if remote {
		args = append(args, "-r")
	}
	res := c.runner.Run(args...)
	if !res.OK {
		return nil
	}
	prefix := ""
	if remote {
		prefix = c.remote + "/"
	}
	return parseBranchList(res.Output, prefix)
}

func parseBranchList(output, remotePrefix string) []string {
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}
		if remotePrefix != "" {
			line = strings.TrimPrefix(line, remotePrefix)
		}
		branches = append(branches, line)
	}
	return branches
}

// MergedBranches lists branches already merged into the current branch,
// excluding protected names. Returns an empty list on command failure.
func (c *Client) MergedBranches() []string {
	res := c.runner.Run("branch", "--merged")
	if !res.OK {
		return nil
	}
	return parseMergedBranches(res.Output, c.protected)
}

func parseMergedBranches(output string, protected []string) []string {
	var candidates []string
	for _, line := range strings.Split(output, "\n") {
		branch := strings.TrimLeft(strings.TrimSpace(line), "* ")
		if branch == "" || contains(protected, branch) {
			continue
		}
		candidates = append(candidates, branch)
	}
	return candidates
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// CleanupBranches returns the merged, non-protected branches. When dryRun
// is false each candidate is deleted one at a time with a safe branch -d;
// individual deletion failures are ignored.
func (c *Client) CleanupBranches(dryRun bool) []string {
	branches := c.MergedBranches()
	if !dryRun {
		for _, branch := range branches {
			c.runner.Run("branch", "-d", branch)
		}
	}
	return branches
}

// Init initializes a repository in the working directory.
func (c *Client) Init() Result {
	return c.runner.Run("init")
}

// StageAll stages every change in the working tree.
func (c *Client) StageAll() Result {
	return c.runner.Run("add", "-A")
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(message string) Result {
	return c.runner.Run("commit", "-m", message)
}

// Push pushes the current branch to its upstream.
func (c *Client) Push() Result {
	return c.runner.Run("push")
}

// StatusShort returns the short-form working tree status.
func (c *Client) StatusShort() Result {
	return c.runner.Run("status", "--short")
}
