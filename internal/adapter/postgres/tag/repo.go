// Package tag implements the Tag repository using PostgreSQL.
package tag

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

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const tagColumns = `id, user_id, label, hex_color, created_at, updated_at`

const createSQL = `
INSERT INTO tags (id, user_id, label, hex_color, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + tagColumns

const getByIDSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE id = $1`

const listSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE user_id = $1
ORDER BY label`

const updateSQL = `
UPDATE tags
SET label = $3, hex_color = $4, updated_at = $5
WHERE id = $1 AND user_id = $2
RETURNING ` + tagColumns

const deleteSQL = `
DELETE FROM tags
WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tag by primary key without an ownership filter: the
// service needs the real owner to distinguish ErrNotFound from ErrForbidden.
func (r *Repo) GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, tagID)

	tag, err := scanTag(row)
	if err != nil {
		return nil, mapError(err, "tag", tagID)
	}

	return tag, nil
}

// List returns all tags for a user ordered by label.
// Returns an empty slice (not nil) when the user has no tags.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags, err := scanTags(rows)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new tag. The UNIQUE (user_id, label) constraint surfaces a
// duplicate label as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		tag.ID,
		tag.UserID,
		tag.Label,
		tag.HexColor,
		now,
	)

	created, err := scanTag(row)
	if err != nil {
		return nil, mapError(err, "tag", tag.ID)
	}

	return created, nil
}

// Update rewrites label and color for a tag owned by the user.
// Returns domain.ErrNotFound if the tag does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSQL,
		tag.ID,
		tag.UserID,
		tag.Label,
		tag.HexColor,
		now,
	)

	updated, err := scanTag(row)
	if err != nil {
		return nil, mapError(err, "tag", tag.ID)
	}

	return updated, nil
}

// Delete removes a tag owned by the user.
// Returns domain.ErrNotFound if the tag does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, tagID, userID)
	if err != nil {
		return mapError(err, "tag", tagID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("tag %s: %w", tagID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.UserID, &t.Label, &t.HexColor, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTags(rows pgx.Rows) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Label, &t.HexColor, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []*domain.Tag{}
	}

	return tags, nil
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
