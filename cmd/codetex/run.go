package main

import (
	"fmt"

	"github.com/fwojciec/codetex"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	extraction, err := c.find(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codetex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Loaded extraction %s of %s (%d slides with code)\n",
		extraction.ID, extraction.SourceURL, extraction.FrameCount())

	session := &Session{
		Extraction: extraction,
		Runner:     deps.Runner,
		In:         deps.Stdin,
		Out:        deps.Stdout,
	}
	return session.Run(deps.Ctx)
}

func (c *RunCmd) find(deps *Dependencies) (*codetex.Extraction, error) {
	if c.ID != "" {
		return deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	}

	filter := codetex.ExtractionFilter{Limit: 1}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}
	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(extractions) == 0 {
		return nil, codetex.Errorf(codetex.ENOTFOUND, "no extractions found. Use 'codetex extract' to create one.")
	}
	return extractions[0], nil
}
