package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/codetex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ codetex.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements codetex.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// CreateExtraction stores an extraction and all of its blocks in one transaction.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *codetex.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	codes := make([]string, 0, len(e.Blocks))
	for _, b := range e.Blocks {
		b.Hash = hashContent(b.Code)
		codes = append(codes, b.Code)
	}
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now().UTC()
	e.ContentHash = hashBlocks(codes)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO extractions (id, source_url, content_hash, frame_total, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.SourceURL, e.ContentHash, e.FrameTotal, formatTime(e.CreatedAt)); err != nil {
		return err
	}

	for _, b := range e.Blocks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO code_blocks (extraction_id, frame, idx, code, hash)
			VALUES (?, ?, ?, ?, ?)
		`, e.ID, b.Frame, b.Index, b.Code, b.Hash); err != nil {
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return codetex.Errorf(codetex.ECONFLICT, "duplicate block %d/%d", b.Frame, b.Index)
			}
			return err
		}
	}

	return tx.Commit()
}

// FindExtractionByID retrieves an extraction with its blocks.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*codetex.Extraction, error) {
	e, err := s.scanExtraction(s.db.QueryRowContext(ctx, `
		SELECT id, source_url, content_hash, frame_total, created_at
		FROM extractions
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, codetex.Errorf(codetex.ENOTFOUND, "extraction %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachBlocks(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
// Blocks are loaded for every returned extraction.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter codetex.ExtractionFilter) ([]*codetex.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, frame_total, created_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*codetex.Extraction
	for rows.Next() {
		e, err := s.scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	// Blocks are loaded after the cursor is closed: the pool holds one connection.
	for _, e := range extractions {
		if err := s.attachBlocks(ctx, e); err != nil {
			return nil, err
		}
	}
	return extractions, nil
}

// DeleteExtraction removes an extraction. Blocks go with it via ON DELETE CASCADE.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return codetex.Errorf(codetex.ENOTFOUND, "extraction %q not found", id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *ExtractionService) scanExtraction(row scanner) (*codetex.Extraction, error) {
	var e codetex.Extraction
	var createdAt string

	if err := row.Scan(&e.ID, &e.SourceURL, &e.ContentHash, &e.FrameTotal, &createdAt); err != nil {
		return nil, err
	}

	var err error
	e.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ExtractionService) attachBlocks(ctx context.Context, e *codetex.Extraction) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT frame, idx, code, hash
		FROM code_blocks
		WHERE extraction_id = ?
		ORDER BY frame ASC, idx ASC
	`, e.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	e.Blocks = nil
	for rows.Next() {
		var b codetex.CodeBlock
		if err := rows.Scan(&b.Frame, &b.Index, &b.Code, &b.Hash); err != nil {
			return err
		}
		e.Blocks = append(e.Blocks, &b)
	}
	return rows.Err()
}
