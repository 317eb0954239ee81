package mock

import (
	"context"

	"github.com/fwojciec/codetex"
)

var _ codetex.Runner = (*Runner)(nil)

// Runner is a mock implementation of codetex.Runner.
type Runner struct {
	RunFn func(ctx context.Context, code string) (*codetex.RunResult, error)
}

func (r *Runner) Run(ctx context.Context, code string) (*codetex.RunResult, error) {
	return r.RunFn(ctx, code)
}
