package fs

import (
	"context"
	"os"
	"strings"

	"github.com/fwojciec/codetex"
)

// Ensure Fetcher implements codetex.Fetcher at compile time.
var _ codetex.Fetcher = (*Fetcher)(nil)

// Fetcher reads presentation sources from the local filesystem.
// Accepts plain paths and file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new file-based Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at path.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(strings.TrimPrefix(path, "file://"))
	if os.IsNotExist(err) {
		return "", codetex.Errorf(codetex.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
