package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/codetex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, codetex.ExtractionFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codetex.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'codetex extract' to create one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  slides=%d blocks=%d hash=%s\n",
			e.ID, e.CreatedAt.Local().Format(time.DateTime), e.SourceURL,
			e.FrameCount(), len(e.Blocks), e.ContentHash)
	}

	return nil
}
