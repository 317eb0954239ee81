package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/codetex"
)

// Ensure LoggingRunner implements codetex.Runner.
var _ codetex.Runner = (*LoggingRunner)(nil)

// LoggingRunner wraps a Runner with logging.
type LoggingRunner struct {
	next   codetex.Runner
	logger *slog.Logger
}

// NewLoggingRunner creates a new LoggingRunner.
func NewLoggingRunner(next codetex.Runner, logger *slog.Logger) *LoggingRunner {
	return &LoggingRunner{next: next, logger: logger}
}

// Run delegates to the wrapped runner and logs the outcome.
func (r *LoggingRunner) Run(ctx context.Context, code string) (res *codetex.RunResult, err error) {
	defer func(begin time.Time) {
		exitCode := -1
		if res != nil {
			exitCode = res.ExitCode
		}
		r.logger.Info("run",
			"lines", countLines(code),
			"exit", exitCode,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Run(ctx, code)
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}
