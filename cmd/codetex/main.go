package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/codetex"
	"github.com/fwojciec/codetex/exec"
	"github.com/fwojciec/codetex/fs"
	codetexhttp "github.com/fwojciec/codetex/http"
	codetexslog "github.com/fwojciec/codetex/slog"
	"github.com/fwojciec/codetex/sqlite"
	"github.com/joho/godotenv"
)

// version is reported in the banner.
const version = "0.0.1"

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); empty uses CODETEX_DB or
	// ~/.codetex/codetex.db.
	DBPath string

	// SQLite database used by the extraction catalog.
	DB *sqlite.DB

	// Fetcher and Runner replace the network fetcher and the interpreter
	// when set. Used for end-to-end testing.
	Fetcher codetex.Fetcher
	Runner  codetex.Runner

	// Catalog service, available after Run for end-to-end testing.
	ExtractionService codetex.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("codetex"),
		kong.Description("Extract code listings from a LaTeX presentation and run them slide by slide"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Kong prints help and would carry on into the default command,
	// so help requests stop here.
	if len(args) == 1 && args[0] == "help" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse(args)
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()
	deps.Extension = cli.Extension

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database
	if m.DBPath == "" {
		m.DBPath = defaultDBPath()
	}
	if err := ensureDBDir(m.DBPath); err != nil {
		return fmt.Errorf("failed to create database directory for %q: %w", m.DBPath, err)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CODETEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ExtractionService = sqlite.NewExtractionService(m.DB)
	deps.Extractions = m.ExtractionService

	if cmd == "extract" {
		deps.Fetcher = m.Fetcher
		if deps.Fetcher == nil {
			if cli.Extract.File != "" {
				deps.Fetcher = fs.NewFetcher()
			} else {
				deps.Fetcher = codetexhttp.NewFetcher(codetexhttp.WithTimeout(cli.Extract.Timeout))
			}
		}
		defer deps.Fetcher.Close()
		if deps.Logger != nil {
			deps.Fetcher = codetexslog.NewLoggingFetcher(deps.Fetcher, deps.Logger)
		}
	}

	if cmd == "extract" || cmd == "run" || cmd == "run <id>" {
		deps.Runner = m.Runner
		if deps.Runner == nil {
			deps.Runner = exec.NewRunner(cli.Interpreter,
				exec.WithArgs(cli.InterpreterArgs...),
				exec.WithExtension(cli.Extension),
				exec.WithTimeout(cli.RunTimeout),
			)
		}
		if deps.Logger != nil {
			deps.Runner = codetexslog.NewLoggingRunner(deps.Runner, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CODETEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "codetex.db"
	}
	return filepath.Join(home, ".codetex", "codetex.db")
}

// ensureDBDir creates the directory holding a file database.
func ensureDBDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0755)
}
