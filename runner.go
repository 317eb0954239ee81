package codetex

import (
	"context"
	"time"
)

// RunResult captures the outcome of running one code block.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes a code block as a standalone program.
// Implementations run untrusted code without sandboxing.
type Runner interface {
	// Run executes code and returns its captured output.
	// A program that fails returns both a result and an EEXEC error.
	Run(ctx context.Context, code string) (*RunResult, error)
}
