package codetex

import (
	"context"
	"sort"
	"time"
)

// CodeBlock is one normalized listing found inside a frame.
type CodeBlock struct {
	// Frame is the zero-based index of the enclosing frame in the document.
	Frame int `json:"frame"`

	// Index is the zero-based position of the listing within its frame.
	Index int `json:"index"`

	// Code is the listing with its indentation removed.
	Code string `json:"code"`

	// Hash is the content hash of Code. Set by storage.
	Hash string `json:"hash"`
}

// Extraction holds every code block found in one presentation source.
// It is built once by Extract and not modified afterwards.
type Extraction struct {
	ID          string       `json:"id"`
	SourceURL   string       `json:"sourceUrl"`
	ContentHash string       `json:"contentHash"`
	FrameTotal  int          `json:"frameTotal"`
	Blocks      []*CodeBlock `json:"blocks"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Frame returns the blocks of frame i in order, or nil if it has none.
func (e *Extraction) Frame(i int) []*CodeBlock {
	var blocks []*CodeBlock
	for _, b := range e.Blocks {
		if b.Frame == i {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// FrameIndexes returns the sorted indexes of frames with at least one block.
func (e *Extraction) FrameIndexes() []int {
	seen := make(map[int]struct{})
	var idx []int
	for _, b := range e.Blocks {
		if _, ok := seen[b.Frame]; ok {
			continue
		}
		seen[b.Frame] = struct{}{}
		idx = append(idx, b.Frame)
	}
	sort.Ints(idx)
	return idx
}

// FrameCount returns the number of frames that yielded at least one block.
func (e *Extraction) FrameCount() int {
	return len(e.FrameIndexes())
}

// Clone returns a copy of e that shares no blocks with it.
func (e *Extraction) Clone() *Extraction {
	c := *e
	c.Blocks = make([]*CodeBlock, len(e.Blocks))
	for i, b := range e.Blocks {
		block := *b
		c.Blocks[i] = &block
	}
	return &c
}

// Validate returns an error if the extraction cannot be stored.
func (e *Extraction) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "extraction source URL required")
	}
	for _, b := range e.Blocks {
		if b.Frame < 0 || b.Index < 0 {
			return Errorf(EINVALID, "invalid block position %d/%d", b.Frame, b.Index)
		}
	}
	return nil
}

// ExtractOptions configures Extract.
type ExtractOptions struct {
	// SourceURL records where the text came from.
	SourceURL string

	// FrameMarker names the outer environment. Defaults to FrameMarker.
	FrameMarker string

	// ListingMarker names the inner environment. Defaults to ListingMarker.
	ListingMarker string
}

// Extract scans text for frames and, inside each frame, for listings.
// Frames are numbered from zero in document order; listings from zero
// within each frame. Every listing is unindented with RemoveIndent.
func Extract(text string, opts ExtractOptions) *Extraction {
	frameName := opts.FrameMarker
	if frameName == "" {
		frameName = FrameMarker
	}
	listingName := opts.ListingMarker
	if listingName == "" {
		listingName = ListingMarker
	}

	frames := NewBlockMatcher(frameName).FindAll(text)
	listings := NewBlockMatcher(listingName)

	e := &Extraction{
		SourceURL:  opts.SourceURL,
		FrameTotal: len(frames),
	}
	for i, frame := range frames {
		for j, listing := range listings.FindAll(frame.Content) {
			e.Blocks = append(e.Blocks, &CodeBlock{
				Frame: i,
				Index: j,
				Code:  RemoveIndent(listing.Content),
			})
		}
	}
	return e
}

// ExtractionService manages the catalog of past extractions.
type ExtractionService interface {
	// CreateExtraction stores an extraction and its blocks.
	// Sets ID, CreatedAt and the content hashes.
	CreateExtraction(ctx context.Context, e *Extraction) error

	// FindExtractionByID retrieves an extraction with its blocks.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction removes an extraction and its blocks.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
