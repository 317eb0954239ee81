package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/codetex"
)

const rule = "--------------------------------"

// Session is the interactive prompt that runs a slide's code blocks on demand.
type Session struct {
	Extraction *codetex.Extraction
	Runner     codetex.Runner
	In         io.Reader
	Out        io.Writer
}

// Run prompts for slide numbers until the operator types the exit keyword
// or input ends. Failures of individual blocks are reported, never returned.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Input the number of the slide you wish to run the code of.")
	fmt.Fprintf(s.Out, "Type %s to leave the programme at any time.\n", codetex.ExitKeyword)

	scanner := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.Out, "\nslide number: ")
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}

		input := codetex.ParseInput(scanner.Text())
		switch input.Kind {
		case codetex.InputExit:
			fmt.Fprintln(s.Out, "bye!")
			return nil
		case codetex.InputInvalid:
			fmt.Fprintln(s.Out, "\nI was expecting a number!")
		case codetex.InputNumber:
			s.runSlide(ctx, input.Number)
		}
	}
}

func (s *Session) runSlide(ctx context.Context, slide int) {
	blocks := s.Extraction.Frame(slide)
	if len(blocks) == 0 {
		fmt.Fprintf(s.Out, "\nSorry, There is no example on slide %d!\n", slide)
		return
	}

	for i, block := range blocks {
		fmt.Fprintf(s.Out, "\nRunning example %d of slide %d\n", i+1, slide)
		fmt.Fprintf(s.Out, "%s\n\n", rule)

		res, err := s.Runner.Run(ctx, block.Code)
		if res != nil {
			io.WriteString(s.Out, res.Stdout)
		}
		if err != nil {
			fmt.Fprintln(s.Out, "Oops.. we got an error Houston")
			fmt.Fprintln(s.Out)
			fmt.Fprintln(s.Out, describe(err))
			fmt.Fprintln(s.Out)
			fmt.Fprintln(s.Out, block.Code)
			continue
		}
		if res != nil && res.Stderr != "" {
			io.WriteString(s.Out, res.Stderr)
		}
		fmt.Fprintf(s.Out, "\n%s\n\n", rule)
	}
}

// describe prefers the application message, falling back to the raw error.
func describe(err error) string {
	if codetex.ErrorCode(err) == codetex.EINTERNAL {
		return err.Error()
	}
	return strings.TrimSpace(codetex.ErrorMessage(err))
}
