package codetex

import "context"

// Fetcher retrieves the presentation source text.
type Fetcher interface {
	// Fetch retrieves the document at url and returns it as UTF-8 text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
