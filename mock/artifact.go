package mock

import (
	"context"

	"github.com/fwojciec/codetex"
)

var _ codetex.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of codetex.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, block *codetex.CodeBlock) (string, error)
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, block *codetex.CodeBlock) (string, error) {
	return w.WriteArtifactFn(ctx, block)
}
