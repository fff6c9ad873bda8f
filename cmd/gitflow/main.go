package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gitflow/gitflow-go/internal/config"
	"github.com/gitflow/gitflow-go/internal/git"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version = "dev"

	cfgFile   string
	verbose   bool
	logger    *logrus.Logger
	cfg       *config.Config
	gitClient *git.Client
)

func main() {
	go handleInterrupt()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// handleInterrupt reports Ctrl-C and exits cleanly, without a stack trace.
func handleInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	<-ch
	fmt.Println("\n\n💡 GitFlow interrupted")
	os.Exit(0)
}

var rootCmd = &cobra.Command{
	Use:   "gitflow",
	Short: "GitFlow - Smart git workflow assistant",
	Long: `GitFlow wraps everyday git operations: conventional commits,
branch management, repository statistics, and changelog generation.

Examples:
  gitflow commit feat "Add user login"      # Conventional commit
  gitflow log                               # Recent commits
  gitflow stats                             # Repository statistics
  gitflow branches                          # List branches
  gitflow cleanup --dry-run                 # Preview branch cleanup
  gitflow changelog --since 7.days          # Generate changelog`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger
		logger = logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}

		runner := git.NewRunner(logger)
		runner.Timeout = cfg.Timeout
		gitClient = git.NewClient(runner, cfg.Remote, cfg.ProtectedBranches)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gitflow/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(changelogCmd)
	rootCmd.AddCommand(statusCmd)
}

// ensureRepo prints a notice when the working directory is not a git
// repository. Commands other than init bail out quietly when it returns
// false, keeping the zero exit of the reference behavior.
func ensureRepo() bool {
	if gitClient.IsRepo() {
		return true
	}
	fmt.Println("❌ Not a git repository")
	fmt.Println("💡 Run 'gitflow init' or 'git init' to initialize")
	return false
}
