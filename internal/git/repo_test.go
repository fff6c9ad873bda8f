package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

// newTestRepo initializes a throwaway repository on branch "main" and
// returns a Client bound to it.
func newTestRepo(t *testing.T) (*Client, string) {
	t.Helper()
	tmp := t.TempDir()

	if err := gitIn(tmp, "init"); err != nil {
		t.Skip("git not available")
	}
	gitIn(tmp, "checkout", "-b", "main")
	gitIn(tmp, "config", "user.email", "test@example.com")
	gitIn(tmp, "config", "user.name", "Test User")
	gitIn(tmp, "config", "commit.gpgsign", "false")

	runner := NewRunner(nil)
	runner.Dir = tmp
	return NewClient(runner, "origin", []string{"main", "master", "develop"}), tmp
}

func gitIn(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Run()
}

func commitFile(t *testing.T, dir, name, message string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := gitIn(dir, "add", name); err != nil {
		t.Fatal(err)
	}
	if err := gitIn(dir, "commit", "-m", message); err != nil {
		t.Fatal(err)
	}
}

func TestIsRepo(t *testing.T) {
	client, _ := newTestRepo(t)
	if !client.IsRepo() {
		t.Error("expected IsRepo to succeed inside a repository")
	}

	runner := NewRunner(nil)
	runner.Dir = t.TempDir()
	outside := NewClient(runner, "origin", nil)
	if outside.IsRepo() {
		t.Error("expected IsRepo to fail outside a repository")
	}
}

func TestCurrentBranch(t *testing.T) {
	client, dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "initial")

	branch, ok := client.CurrentBranch()
	if !ok {
		t.Fatal("CurrentBranch failed")
	}
	if branch != "main" {
		t.Errorf("expected main, got %q", branch)
	}
}

func TestBranchesDropsCurrent(t *testing.T) {
	client, dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "initial")
	gitIn(dir, "branch", "feature-a")
	gitIn(dir, "branch", "feature-b")

	branches := client.Branches(false)
	want := []string{"feature-a", "feature-b"}
	if !reflect.DeepEqual(branches, want) {
		t.Errorf("expected %v, got %v", want, branches)
	}
}

func TestBranchesEmptyOnFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	runner := NewRunner(nil)
	runner.Dir = t.TempDir()
	client := NewClient(runner, "origin", nil)

	if branches := client.Branches(false); len(branches) != 0 {
		t.Errorf("expected no branches, got %v", branches)
	}
}

func TestMergedBranchesExcludesProtected(t *testing.T) {
	client, dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "initial")
	gitIn(dir, "branch", "feature-a")

	branches := client.MergedBranches()
	want := []string{"feature-a"}
	if !reflect.DeepEqual(branches, want) {
		t.Errorf("expected %v, got %v", want, branches)
	}
}

func TestCleanupDryRunKeepsBranches(t *testing.T) {
	client, dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "initial")
	gitIn(dir, "branch", "feature-a")

	client.CleanupBranches(true)

	if branches := client.Branches(false); !reflect.DeepEqual(branches, []string{"feature-a"}) {
		t.Errorf("dry run must not delete branches, have %v", branches)
	}
}

func TestCleanupForceDeletes(t *testing.T) {
	client, dir := newTestRepo(t)
	commitFile(t, dir, "a.txt", "initial")
	gitIn(dir, "branch", "feature-a")

	deleted := client.CleanupBranches(false)
	if !reflect.DeepEqual(deleted, []string{"feature-a"}) {
		t.Fatalf("expected feature-a to be deleted, got %v", deleted)
	}
	if branches := client.Branches(false); len(branches) != 0 {
		t.Errorf("expected no branches left, got %v", branches)
	}
}

func TestParseBranchList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		prefix string
		want   []string
	}{
		{
			name:   "local drops current marker line",
			output: "  feature-a\n* main\n  feature-b",
			want:   []string{"feature-a", "feature-b"},
		},
		{
			name:   "remote strips prefix",
			output: "  origin/feature-a\n  origin/fix-1",
			prefix: "origin/",
			want:   []string{"feature-a", "fix-1"},
		},
		{
			name:   "blank lines skipped",
			output: "\n  feature-a\n\n",
			want:   []string{"feature-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBranchList(tt.output, tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseMergedBranches(t *testing.T) {
	output := "* main\n  feature-a\n  develop\n  master\n  fix-1"
	got := parseMergedBranches(output, []string{"main", "master", "develop"})
	want := []string{"feature-a", "fix-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
