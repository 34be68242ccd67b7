// Package streak implements the UserStreak repository using PostgreSQL.
// One row per user, created at registration and mutated in place.
package streak

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

// Repo provides streak persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new streak repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const streakColumns = `id, user_id, current_streak, best_streak, last_activity_date, streak_start_date, created_at, updated_at`

const createSQL = `
INSERT INTO user_streaks (id, user_id, current_streak, best_streak, last_activity_date, streak_start_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
RETURNING ` + streakColumns

const getByUserIDSQL = `
SELECT ` + streakColumns + `
FROM user_streaks
WHERE user_id = $1`

// FOR UPDATE serializes concurrent end-block transactions for the same user
// so streak transitions never apply to a stale snapshot.
const getByUserIDForUpdateSQL = getByUserIDSQL + `
FOR UPDATE`

const updateSQL = `
UPDATE user_streaks
SET current_streak = $2, best_streak = $3, last_activity_date = $4, streak_start_date = $5, updated_at = $6
WHERE user_id = $1
RETURNING ` + streakColumns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByUserID returns the user's streak row.
// Returns domain.ErrNotFound if no row exists for the user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUserIDSQL, userID)

	streak, err := scanStreak(row)
	if err != nil {
		return nil, mapError(err, "streak", userID)
	}

	return streak, nil
}

// GetByUserIDForUpdate returns the user's streak row with a row lock held for
// the rest of the transaction. Only meaningful inside RunInTx.
func (r *Repo) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUserIDForUpdateSQL, userID)

	streak, err := scanStreak(row)
	if err != nil {
		return nil, mapError(err, "streak", userID)
	}

	return streak, nil
}

// Create inserts a streak row for a new user.
func (r *Repo) Create(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		streak.ID,
		streak.UserID,
		streak.CurrentStreak,
		streak.BestStreak,
		streak.LastActivityDate,
		streak.StreakStartDate,
		now,
	)

	created, err := scanStreak(row)
	if err != nil {
		return nil, mapError(err, "streak", streak.UserID)
	}

	return created, nil
}

// Update persists the streak state after a transition.
// Returns domain.ErrNotFound if no row exists for the user.
func (r *Repo) Update(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSQL,
		streak.UserID,
		streak.CurrentStreak,
		streak.BestStreak,
		streak.LastActivityDate,
		streak.StreakStartDate,
		now,
	)

	updated, err := scanStreak(row)
	if err != nil {
		return nil, mapError(err, "streak", streak.UserID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanStreak(row pgx.Row) (*domain.UserStreak, error) {
	var s domain.UserStreak
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.CurrentStreak,
		&s.BestStreak,
		&s.LastActivityDate,
		&s.StreakStartDate,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
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
