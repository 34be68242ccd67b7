// Package todo implements the Todo repository using PostgreSQL.
package todo

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

// Repo provides todo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new todo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const todoColumns = `id, user_id, tag_id, title, description, completed, priority, created_at, updated_at`

const createSQL = `
INSERT INTO todos (id, user_id, tag_id, title, description, completed, priority, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + todoColumns

const getByIDSQL = `
SELECT ` + todoColumns + `
FROM todos
WHERE id = $1`

const listSQL = `
SELECT ` + todoColumns + `
FROM todos
WHERE user_id = $1
  AND ($2::boolean IS NULL OR completed = $2)
  AND ($3::uuid IS NULL OR tag_id = $3)
ORDER BY created_at DESC`

const listIncompleteByPrioritySQL = `
SELECT ` + todoColumns + `
FROM todos
WHERE user_id = $1 AND completed = false
ORDER BY priority ASC NULLS LAST, created_at ASC`

const updateSQL = `
UPDATE todos
SET tag_id = $3, title = $4, description = $5, completed = $6, priority = $7, updated_at = $8
WHERE id = $1 AND user_id = $2
RETURNING ` + todoColumns

const deleteSQL = `
DELETE FROM todos
WHERE id = $1 AND user_id = $2`

const countByTagIDSQL = `
SELECT count(*) FROM todos WHERE tag_id = $1`

const countByUserSQL = `
SELECT
    count(*),
    count(*) FILTER (WHERE completed)
FROM todos
WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a todo by primary key without an ownership filter: the
// service needs the real owner to distinguish ErrNotFound from ErrForbidden.
func (r *Repo) GetByID(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, todoID)

	todo, err := scanTodo(row)
	if err != nil {
		return nil, mapError(err, "todo", todoID)
	}

	return todo, nil
}

// List returns a user's todos, newest first, optionally filtered by
// completion status and tag. Returns an empty slice (not nil) for no matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TodoFilter) ([]*domain.Todo, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL, userID, f.Completed, f.TagID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

// ListIncompleteByPriority returns incomplete todos ordered by priority
// (unprioritized last, oldest first within equal priority).
func (r *Repo) ListIncompleteByPriority(ctx context.Context, userID uuid.UUID) ([]*domain.Todo, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listIncompleteByPrioritySQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list incomplete todos: %w", err)
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		return nil, fmt.Errorf("list incomplete todos: %w", err)
	}

	return todos, nil
}

// CountByTagID counts todos referencing a tag, across completion states.
// Used to block deletion of in-use tags.
func (r *Repo) CountByTagID(ctx context.Context, tagID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countByTagIDSQL, tagID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count todos by tag_id: %w", err)
	}

	return n, nil
}

// CountByUser returns total and completed todo counts for a user.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (total, completed int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countByUserSQL, userID).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("count todos by user: %w", err)
	}

	return total, completed, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new todo and returns the persisted row.
func (r *Repo) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		todo.ID,
		todo.UserID,
		todo.TagID,
		todo.Title,
		todo.Description,
		todo.Completed,
		todo.Priority,
		now,
	)

	created, err := scanTodo(row)
	if err != nil {
		return nil, mapError(err, "todo", todo.ID)
	}

	return created, nil
}

// Update rewrites all mutable fields of a todo owned by the user.
// Returns domain.ErrNotFound if the todo does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSQL,
		todo.ID,
		todo.UserID,
		todo.TagID,
		todo.Title,
		todo.Description,
		todo.Completed,
		todo.Priority,
		now,
	)

	updated, err := scanTodo(row)
	if err != nil {
		return nil, mapError(err, "todo", todo.ID)
	}

	return updated, nil
}

// Delete removes a todo owned by the user.
// Returns domain.ErrNotFound if the todo does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, todoID, userID)
	if err != nil {
		return mapError(err, "todo", todoID)
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("todo %s: %w", todoID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTodo(row pgx.Row) (*domain.Todo, error) {
	var t domain.Todo
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.TagID,
		&t.Title,
		&t.Description,
		&t.Completed,
		&t.Priority,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTodos(rows pgx.Rows) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.TagID,
			&t.Title,
			&t.Description,
			&t.Completed,
			&t.Priority,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []*domain.Todo{}
	}

	return todos, nil
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
