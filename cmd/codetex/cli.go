package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/codetex"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Fetcher     codetex.Fetcher
	Runner      codetex.Runner
	Extractions codetex.ExtractionService
	Logger      *slog.Logger

	// Extension is shared by artifact names and the runner's temp files.
	Extension string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose         bool          `short:"v" help:"Log fetches, writes and runs to stderr"`
	Interpreter     string        `default:"python3" env:"CODETEX_INTERPRETER" help:"Interpreter used to run code blocks"`
	InterpreterArgs []string      `name:"interpreter-arg" help:"Argument passed to the interpreter before the file (repeatable)"`
	Extension       string        `default:".py" env:"CODETEX_EXT" help:"Extension of written and executed files"`
	RunTimeout      time.Duration `default:"0s" help:"Time limit per code block (0 means none)"`

	Extract ExtractCmd `cmd:"" default:"withargs" help:"Extract code blocks, write them to files and run them interactively"`
	Run     RunCmd     `cmd:"" help:"Run code blocks from a previous extraction"`
	List    ListCmd    `cmd:"" help:"List previous extractions"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an extraction from the catalog"`
}

// ExtractCmd is the "extract" subcommand and the default.
type ExtractCmd struct {
	URL           string        `default:"https://raw.githubusercontent.com/dithua/presentations/master/python/src/presentation.tex" env:"CODETEX_URL" help:"Presentation source URL"`
	File          string        `short:"f" type:"existingfile" help:"Read the presentation from a local file instead"`
	Dir           string        `short:"o" default:"presentation-code" env:"CODETEX_DIR" help:"Output directory"`
	Prefix        string        `default:"slide" env:"CODETEX_PREFIX" help:"File name prefix"`
	Separator     string        `default:"-" env:"CODETEX_SEPARATOR" help:"Separator between prefix, frame and block"`
	FrameMarker   string        `default:"frame" help:"Outer environment name"`
	ListingMarker string        `default:"lstlisting" help:"Code environment name"`
	Timeout       time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	NoInteractive bool          `short:"n" help:"Write files and exit without prompting"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	ID  string `arg:"" optional:"" help:"Extraction ID (default: newest)"`
	URL string `help:"Use the newest extraction of this source"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"l" default:"20" help:"Maximum number of extractions to show"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}
