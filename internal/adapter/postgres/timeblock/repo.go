// Package timeblock implements the TimeBlock repository using PostgreSQL.
// List uses squirrel to build the dynamic filter; the stats aggregates live
// in stats.go and never materialize block history in Go.
package timeblock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/atinroy/focusflow-backend/internal/adapter/postgres"
	"github.com/atinroy/focusflow-backend/internal/domain"
)

// Repo provides time block persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time block repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const blockColumns = `id, user_id, todo_id, tag_id, purpose, mode, started_at, ended_at,
    planned_duration_seconds, actual_duration_seconds, completed, notes, created_at, updated_at`

const createSQL = `
INSERT INTO time_blocks (id, user_id, todo_id, tag_id, purpose, mode, started_at,
    planned_duration_seconds, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + blockColumns

const getByIDSQL = `
SELECT ` + blockColumns + `
FROM time_blocks
WHERE id = $1`

const getActiveSQL = `
SELECT ` + blockColumns + `
FROM time_blocks
WHERE user_id = $1 AND ended_at IS NULL`

const endSQL = `
UPDATE time_blocks
SET ended_at = $3, actual_duration_seconds = $4, completed = $5, notes = $6, updated_at = $7
WHERE id = $1 AND user_id = $2 AND ended_at IS NULL
RETURNING ` + blockColumns

const deleteSQL = `
DELETE FROM time_blocks
WHERE id = $1 AND user_id = $2`

const countByTagIDSQL = `
SELECT count(*) FROM time_blocks WHERE tag_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a block by primary key without an ownership filter: the
// service needs the real owner to distinguish ErrNotFound from ErrForbidden.
func (r *Repo) GetByID(ctx context.Context, blockID uuid.UUID) (*domain.TimeBlock, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, blockID)

	block, err := scanBlock(row)
	if err != nil {
		return nil, mapError(err, "time_block", blockID)
	}

	return block, nil
}

// GetActive returns the user's currently running block.
// Returns domain.ErrNotFound if no block is running. The partial unique index
// guarantees at most one row matches.
func (r *Repo) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeBlock, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getActiveSQL, userID)

	block, err := scanBlock(row)
	if err != nil {
		return nil, mapError(err, "time_block", uuid.Nil)
	}

	return block, nil
}

// List returns a user's blocks matching the filter, ordered by started_at
// ascending. Returns an empty slice (not nil) for no matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TimeBlockFilter) ([]*domain.TimeBlock, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := buildListQuery(userID, f)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list time blocks: %w", err)
	}
	defer rows.Close()

	blocks, err := scanBlocks(rows)
	if err != nil {
		return nil, fmt.Errorf("list time blocks: %w", err)
	}

	return blocks, nil
}

// CountByTagID counts blocks referencing a tag.
// Used to block deletion of in-use tags.
func (r *Repo) CountByTagID(ctx context.Context, tagID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countByTagIDSQL, tagID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count time blocks by tag_id: %w", err)
	}

	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new running block. The partial unique index on
// (user_id) WHERE ended_at IS NULL makes a second concurrent start fail with
// domain.ErrAlreadyExists, which the engine reports as a conflict.
func (r *Repo) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	startedAt := block.StartedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		block.ID,
		block.UserID,
		block.TodoID,
		block.TagID,
		string(block.Purpose),
		string(block.Mode),
		startedAt,
		block.PlannedDurationSeconds,
		block.Notes,
		now,
	)

	created, err := scanBlock(row)
	if err != nil {
		return nil, mapError(err, "time_block", block.ID)
	}

	return created, nil
}

// End persists the close of a running block: ended_at plus the derived
// duration and completion fields. Returns domain.ErrNotFound if the block
// does not exist, belongs to another user, or has already ended.
func (r *Repo) End(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, endSQL,
		block.ID,
		block.UserID,
		block.EndedAt,
		block.ActualDurationSeconds,
		block.Completed,
		block.Notes,
		now,
	)

	ended, err := scanBlock(row)
	if err != nil {
		return nil, mapError(err, "time_block", block.ID)
	}

	return ended, nil
}

// Delete removes a block owned by the user.
// Returns domain.ErrNotFound if the block does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, blockID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, blockID, userID)
	if err != nil {
		return mapError(err, "time_block", blockID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("time_block %s: %w", blockID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanBlock(row pgx.Row) (*domain.TimeBlock, error) {
	var (
		b       domain.TimeBlock
		purpose string
		mode    string
	)

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.TodoID,
		&b.TagID,
		&purpose,
		&mode,
		&b.StartedAt,
		&b.EndedAt,
		&b.PlannedDurationSeconds,
		&b.ActualDurationSeconds,
		&b.Completed,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Purpose = domain.BlockPurpose(purpose)
	b.Mode = domain.BlockMode(mode)

	return &b, nil
}

func scanBlocks(rows pgx.Rows) ([]*domain.TimeBlock, error) {
	var blocks []*domain.TimeBlock
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if blocks == nil {
		blocks = []*domain.TimeBlock{}
	}

	return blocks, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
