package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/codetex"
)

// Ensure LoggingArtifactWriter implements codetex.ArtifactWriter.
var _ codetex.ArtifactWriter = (*LoggingArtifactWriter)(nil)

// LoggingArtifactWriter wraps an ArtifactWriter with logging.
type LoggingArtifactWriter struct {
	next   codetex.ArtifactWriter
	logger *slog.Logger
}

// NewLoggingArtifactWriter creates a new LoggingArtifactWriter.
func NewLoggingArtifactWriter(next codetex.ArtifactWriter, logger *slog.Logger) *LoggingArtifactWriter {
	return &LoggingArtifactWriter{next: next, logger: logger}
}

// WriteArtifact delegates to the wrapped writer and logs the operation.
func (w *LoggingArtifactWriter) WriteArtifact(ctx context.Context, block *codetex.CodeBlock) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write artifact",
			"frame", block.Frame,
			"block", block.Index,
			"path", path,
			"bytes", len(block.Code),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArtifact(ctx, block)
}
