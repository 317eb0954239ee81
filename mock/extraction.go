package mock

import (
	"context"

	"github.com/fwojciec/codetex"
)

var _ codetex.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of codetex.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, e *codetex.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*codetex.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter codetex.ExtractionFilter) ([]*codetex.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, e *codetex.Extraction) error {
	return s.CreateExtractionFn(ctx, e)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*codetex.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter codetex.ExtractionFilter) ([]*codetex.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
