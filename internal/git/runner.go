package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds every git invocation.
const DefaultTimeout = 30 * time.Second

// Result is the outcome of a single git invocation. Output holds trimmed
// stdout when OK, trimmed stderr (or a failure description) otherwise.
// Expected command failure is a value, not an error.
type Result struct {
	OK     bool
	Output string
}

// Runner executes git commands with a bounded timeout. It is a pure
// process boundary: no parsing happens here.
type Runner struct {
	Dir     string // working directory ("" = current)
	Timeout time.Duration
	logger  *logrus.Logger
}

// NewRunner creates a Runner with the default timeout.
func NewRunner(logger *logrus.Logger) *Runner {
	return &Runner{Timeout: DefaultTimeout, logger: logger}
}

// Run invokes git with the given arguments and waits for it to finish.
func (r *Runner) Run(args ...string) Result {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{
			"args":     strings.Join(args, " "),
			"duration": time.Since(start),
			"ok":       err == nil,
		}).Debug("git invocation")
	}

	switch {
	case err == nil:
		return Result{OK: true, Output: strings.TrimSpace(stdout.String())}
	case ctx.Err() == context.DeadlineExceeded:
		return Result{Output: "Command timed out"}
	case errors.Is(err, exec.ErrNotFound):
		return Result{Output: "Git not found. Please install git."}
	default:
		out := strings.TrimSpace(stderr.String())
		if out == "" {
			out = err.Error()
		}
		return Result{Output: out}
	}
}
