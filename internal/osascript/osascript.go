package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/applebridge/osascript-mcp-server/internal/protocol"
	"github.com/applebridge/osascript-mcp-server/internal/script"
)

// Options holds the execution envelope constants. Zero fields take the
// documented defaults.
type Options struct {
	// Binary is the interpreter executable.
	Binary string
	// Timeout is the wall-clock limit per attempt.
	Timeout time.Duration
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// RetryDelay is the base backoff delay, doubled per failed attempt.
	RetryDelay time.Duration
	// OutputCap bounds captured stdout and stderr in bytes.
	OutputCap int64
}

// Defaults for the execution envelope.
const (
	DefaultBinary     = "osascript"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
	DefaultOutputCap  = 1 << 20
)

// Runner executes composed scripts against the host application via the
// out-of-process interpreter. Runner holds no per-request state; a single
// instance serves concurrent calls.
type Runner struct {
	opts   Options
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New builds a Runner, filling unset options with defaults.
func New(opts Options, logger *slog.Logger) *Runner {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.OutputCap <= 0 {
		opts.OutputCap = DefaultOutputCap
	}
	return &Runner{opts: opts, logger: logger, sleep: sleepCtx}
}

// Run executes script, retrying transient failures with exponential backoff.
// The returned string is the trimmed interpreter stdout of the first
// successful attempt; the returned error wraps protocol.ErrExecution and
// carries the last attempt's failure.
func (r *Runner) Run(ctx context.Context, script string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := r.opts.RetryDelay << (attempt - 1)
			if r.logger != nil {
				r.logger.Warn("retrying script", "attempt", attempt+1, "delay", delay.String(), "error", lastErr)
			}
			if err := r.sleep(ctx, delay); err != nil {
				return "", fmt.Errorf("%w: %v", protocol.ErrExecution, err)
			}
		}
		output, err := r.runOnce(ctx, script)
		if err == nil {
			return output, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: %v", protocol.ErrExecution, lastErr)
}

// Probe runs the degenerate availability script through the same execute
// path and reduces the result to a boolean: the application is available iff
// it answers with its own name.
func (r *Runner) Probe(ctx context.Context, appName string) bool {
	output, err := r.Run(ctx, `return name of application `+script.Quote(appName))
	return err == nil && output == appName
}

func (r *Runner) runOnce(ctx context.Context, script string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	cmd := exec.CommandContext(attemptCtx, r.opts.Binary, "-e", script)
	stdout := &capBuffer{cap: r.opts.OutputCap}
	stderr := &capBuffer{cap: r.opts.OutputCap}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	// Don't let orphaned children of a killed interpreter hold the output
	// pipes open past the deadline.
	cmd.WaitDelay = time.Second

	err := cmd.Run()

	if diag := strings.TrimSpace(stderr.String()); diag != "" && r.logger != nil {
		r.logger.Warn("interpreter stderr", "stderr", diag)
	}

	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("timed out after %s", r.opts.Timeout)
	}
	if err != nil {
		if diag := strings.TrimSpace(stderr.String()); diag != "" {
			return "", fmt.Errorf("%v: %s", err, diag)
		}
		return "", err
	}
	if stdout.truncated {
		return "", fmt.Errorf("output exceeded %d bytes", r.opts.OutputCap)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// capBuffer collects writes up to cap bytes and records overflow instead of
// growing without bound.
type capBuffer struct {
	buf       bytes.Buffer
	cap       int64
	truncated bool
}

func (b *capBuffer) Write(p []byte) (int, error) {
	remaining := b.cap - int64(b.buf.Len())
	if remaining <= 0 {
		b.truncated = true
		return len(p), nil
	}
	if int64(len(p)) > remaining {
		b.truncated = true
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	b.buf.Write(p)
	return len(p), nil
}

func (b *capBuffer) String() string {
	return b.buf.String()
}
