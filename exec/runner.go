// Package exec provides a codetex.Runner that runs code blocks through an
// external interpreter process.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/fwojciec/codetex"
)

// DefaultInterpreter runs the Python listings of the original presentation.
const DefaultInterpreter = "python3"

// waitDelay bounds how long output pipes are drained after the
// interpreter is killed, since children may keep them open.
const waitDelay = time.Second

// Ensure Runner implements codetex.Runner at compile time.
var _ codetex.Runner = (*Runner)(nil)

// Runner writes each block to a temporary file and runs
// "<interpreter> <args...> <file>". Nothing is sandboxed.
type Runner struct {
	interpreter string
	args        []string
	timeout     time.Duration
	extension   string
	dir         string
}

// Option configures a Runner.
type Option func(*Runner)

// WithArgs sets arguments passed to the interpreter before the file name.
func WithArgs(args ...string) Option {
	return func(r *Runner) {
		r.args = args
	}
}

// WithTimeout bounds each run. Zero, the default, means no limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithExtension sets the temporary file extension, e.g. ".py".
func WithExtension(ext string) Option {
	return func(r *Runner) {
		r.extension = ext
	}
}

// WithDir sets where temporary files are created.
// Defaults to os.TempDir().
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// NewRunner creates a Runner for the given interpreter.
func NewRunner(interpreter string, opts ...Option) *Runner {
	r := &Runner{
		interpreter: interpreter,
		extension:   codetex.DefaultExtension,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes code and captures its output.
func (r *Runner) Run(ctx context.Context, code string) (*codetex.RunResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	path, err := r.writeTemp(code)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	args := make([]string, 0, len(r.args)+1)
	args = append(args, r.args...)
	args = append(args, path)

	var stdout, stderr bytes.Buffer
	cmd := osexec.CommandContext(ctx, r.interpreter, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	begin := time.Now()
	runErr := cmd.Run()
	result := &codetex.RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(begin),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, fmt.Errorf("%s interrupted: %w", r.interpreter, ctxErr)
	}

	var exitErr *osexec.ExitError
	if errors.As(runErr, &exitErr) {
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			return result, codetex.Errorf(codetex.EEXEC, "exit status %d", result.ExitCode)
		}
		return result, codetex.Errorf(codetex.EEXEC, "exit status %d: %s", result.ExitCode, msg)
	}
	return nil, codetex.Errorf(codetex.EEXEC, "cannot run %s: %v", r.interpreter, runErr)
}

func (r *Runner) writeTemp(code string) (string, error) {
	f, err := os.CreateTemp(r.dir, "codetex-*"+r.extension)
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(code); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
