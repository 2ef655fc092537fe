// Package runner executes generated test documents through the test
// framework binary. Run failures are data, not errors: every outcome
// comes back as a structured Result so batch runs keep going.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a test run when the caller does not supply a
// timeout.
const DefaultTimeout = 30 * time.Second

// Options configures how a generated document is executed.
type Options struct {
	// Command is the runner invocation; the test file path is appended
	// as the last argument. Defaults to {"npx", "jest"}.
	Command []string

	// Timeout bounds the child process; on expiry the child is killed
	// and the result reports a timeout.
	Timeout time.Duration

	// Dir is the working directory for the child process.
	Dir string

	Logger *zap.Logger
}

// Result reports one harness invocation.
type Result struct {
	Success  bool
	TimedOut bool
	Output   string
	Error    string
	Duration time.Duration
}

// Run executes the test file and waits for completion. A non-zero
// exit, a spawn failure and a timeout all surface as Success: false
// with a descriptive Error; the function itself never fails.
func Run(ctx context.Context, testFile string, opts Options) Result {
	if len(opts.Command) == 0 {
		opts.Command = []string{"npx", "jest"}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	args := make([]string, 0, len(opts.Command))
	args = append(args, opts.Command[1:]...)
	args = append(args, testFile)
	cmd := exec.CommandContext(ctx, opts.Command[0], args...)
	cmd.Dir = opts.Dir

	logger.Debug("running generated tests",
		zap.String("file", testFile),
		zap.Strings("command", opts.Command),
		zap.Duration("timeout", opts.Timeout))

	start := time.Now()
	output, err := cmd.CombinedOutput()
	result := Result{
		Output:   string(output),
		Duration: time.Since(start),
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		result.TimedOut = true
		result.Error = fmt.Sprintf("test run timed out after %s", opts.Timeout)
	case err == nil:
		result.Success = true
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.Error = fmt.Sprintf("test run failed with exit code %d", exitErr.ExitCode())
		} else {
			result.Error = fmt.Sprintf("failed to start test runner: %v", err)
		}
	}

	logger.Debug("test run finished",
		zap.Bool("success", result.Success),
		zap.Bool("timedOut", result.TimedOut),
		zap.Duration("duration", result.Duration))

	return result
}
