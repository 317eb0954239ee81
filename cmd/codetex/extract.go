package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/codetex"
	"github.com/fwojciec/codetex/fs"
	codetexslog "github.com/fwojciec/codetex/slog"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	naming := codetex.ArtifactNaming{
		Prefix:    c.Prefix,
		Separator: c.Separator,
		Extension: deps.Extension,
	}
	if err := c.validate(naming); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codetex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "You are running slide evaluation v%s\n", version)

	dirWriter := fs.NewArtifactWriter(c.Dir, naming)
	created, err := dirWriter.EnsureDir()
	if err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", c.Dir, err)
	}
	if created {
		fmt.Fprintf(deps.Stdout, "Creating folder %q to add code samples\n", c.Dir)
	}

	source := c.source()
	text, err := deps.Fetcher.Fetch(deps.Ctx, source)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", source, err)
	}

	extraction := codetex.Extract(text, codetex.ExtractOptions{
		SourceURL:     source,
		FrameMarker:   c.FrameMarker,
		ListingMarker: c.ListingMarker,
	})

	var writer codetex.ArtifactWriter = dirWriter
	if deps.Logger != nil {
		writer = codetexslog.NewLoggingArtifactWriter(writer, deps.Logger)
	}
	if err := writeArtifacts(deps.Ctx, writer, extraction.Blocks); err != nil {
		return err
	}

	// The catalog annotates its copy with IDs and hashes.
	if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction.Clone()); err != nil {
		return fmt.Errorf("failed to record extraction: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Written %d files to folder %q\n", extraction.FrameCount(), c.Dir)

	if c.NoInteractive {
		return nil
	}

	session := &Session{
		Extraction: extraction,
		Runner:     deps.Runner,
		In:         deps.Stdin,
		Out:        deps.Stdout,
	}
	return session.Run(deps.Ctx)
}

// writeArtifacts writes blocks in document order, stopping at the first
// failure.
func writeArtifacts(ctx context.Context, writer codetex.ArtifactWriter, blocks []*codetex.CodeBlock) error {
	for _, block := range blocks {
		if _, err := writer.WriteArtifact(ctx, block); err != nil {
			return fmt.Errorf("failed to write frame %d block %d: %w", block.Frame, block.Index, err)
		}
	}
	return nil
}

// source returns the local file when given, otherwise the URL.
func (c *ExtractCmd) source() string {
	if c.File != "" {
		return c.File
	}
	return c.URL
}

func (c *ExtractCmd) validate(naming codetex.ArtifactNaming) error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.FrameMarker, validation.Required),
		validation.Field(&c.ListingMarker, validation.Required),
		validation.Field(&c.URL, validation.When(c.File == "", validation.Required, validation.By(checkURL))),
	)
	if err != nil {
		return codetex.Errorf(codetex.EINVALID, "%s", err.Error())
	}
	return naming.Validate()
}

// checkURL accepts absolute http(s) URLs.
func checkURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (!strings.EqualFold(u.Scheme, "http") && !strings.EqualFold(u.Scheme, "https")) {
		return validation.NewError("codetex.url_invalid", "must be an http or https URL")
	}
	return nil
}
