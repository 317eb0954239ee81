package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/codetex"
	main "github.com/fwojciec/codetex/cmd/codetex"
	"github.com/fwojciec/codetex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists extractions with ID, source and counts", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, filter codetex.ExtractionFilter) ([]*codetex.Extraction, error) {
				assert.Equal(t, 20, filter.Limit)
				return []*codetex.Extraction{
					{
						ID:          "ext-123",
						SourceURL:   "https://example.com/deck.tex",
						ContentHash: "00000000deadbeef",
						CreatedAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
						Blocks: []*codetex.CodeBlock{
							{Frame: 0, Index: 0},
							{Frame: 0, Index: 1},
							{Frame: 4, Index: 0},
						},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: extractions,
		}

		err := (&main.ListCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "ext-123")
		assert.Contains(t, output, "https://example.com/deck.tex")
		assert.Contains(t, output, "slides=2")
		assert.Contains(t, output, "blocks=3")
		assert.Contains(t, output, "hash=00000000deadbeef")
	})

	t.Run("shows helpful message when catalog is empty", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, _ codetex.ExtractionFilter) ([]*codetex.Extraction, error) {
				return []*codetex.Extraction{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: extractions,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No extractions found")
	})

	t.Run("returns error when lookup fails", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			FindExtractionsFn: func(_ context.Context, _ codetex.ExtractionFilter) ([]*codetex.Extraction, error) {
				return nil, errors.New("database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Extractions: extractions,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
