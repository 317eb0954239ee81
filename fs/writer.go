// Package fs provides file-based storage for extracted code blocks.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/codetex"
)

// Ensure ArtifactWriter implements codetex.ArtifactWriter at compile time.
var _ codetex.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter writes code blocks as individual files into one directory.
// Writes are not atomic and overwrite existing files.
type ArtifactWriter struct {
	dir    string
	naming codetex.ArtifactNaming
}

// NewArtifactWriter creates a new ArtifactWriter that writes to dir.
func NewArtifactWriter(dir string, naming codetex.ArtifactNaming) *ArtifactWriter {
	return &ArtifactWriter{dir: dir, naming: naming}
}

// Dir returns the output directory.
func (w *ArtifactWriter) Dir() string {
	return w.dir
}

// EnsureDir creates the output directory if it does not exist.
// It reports whether the directory had to be created.
func (w *ArtifactWriter) EnsureDir() (created bool, err error) {
	info, err := os.Stat(w.dir)
	if err == nil {
		if !info.IsDir() {
			return false, codetex.Errorf(codetex.EINVALID, "%q exists and is not a directory", w.dir)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// WriteArtifact writes the block's code to <dir>/<name> and returns the path.
func (w *ArtifactWriter) WriteArtifact(ctx context.Context, block *codetex.CodeBlock) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, w.naming.Name(block.Frame, block.Index))
	if err := os.WriteFile(path, []byte(block.Code), 0644); err != nil {
		return "", err
	}
	return path, nil
}
