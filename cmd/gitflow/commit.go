package main

import (
	"fmt"

	"github.com/gitflow/gitflow-go/internal/changelog"
	"github.com/spf13/cobra"
)

var (
	commitScope  string
	commitNoPush bool
)

var commitCmd = &cobra.Command{
	Use:   "commit <type> <message>",
	Short: "Create a conventional commit",
	Long: `Stage all changes and commit them with a conventional message of the
form "type(scope): message".

The type must be one of: feat, fix, docs, style, refactor, perf, test,
chore, build, ci.

Examples:
  gitflow commit feat "Add user login"
  gitflow commit fix "Handle empty input" --scope parser
  gitflow commit chore "Bump dependencies" --no-push`,
	Args: cobra.ExactArgs(2),
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().StringVar(&commitScope, "scope", "", "commit scope (optional)")
	commitCmd.Flags().BoolVar(&commitNoPush, "no-push", false, "don't push after commit")
}

func runCommit(cmd *cobra.Command, args []string) error {
	if !ensureRepo() {
		return nil
	}

	commitType, message := args[0], args[1]
	if !changelog.IsType(commitType) {
		return fmt.Errorf("unknown commit type %q (expected one of: %s)", commitType, changelog.TypeKeys())
	}

	scopePart := ""
	if commitScope != "" {
		scopePart = "(" + commitScope + ")"
	}
	full := fmt.Sprintf("%s%s: %s", commitType, scopePart, message)

	fmt.Println("⏳ Staging changes...")
	if res := gitClient.StageAll(); !res.OK {
		fmt.Printf("❌ Failed to stage: %s\n", res.Output)
		return nil
	}

	fmt.Printf("⏳ Committing: %s\n", full)
	if res := gitClient.Commit(full); !res.OK {
		fmt.Printf("❌ Failed to commit: %s\n", res.Output)
		return nil
	}

	fmt.Printf("✅ Committed: %s\n", changelog.Label(commitType))

	if commitNoPush || !cfg.AutoPush {
		return nil
	}

	fmt.Println("⏳ Pushing to remote...")
	if res := gitClient.Push(); res.OK {
		fmt.Println("✅ Pushed to remote")
	} else {
		fmt.Printf("⚠️  Push failed: %s\n", res.Output)
		fmt.Println("💡 Run 'git push' manually if needed")
	}
	return nil
}
