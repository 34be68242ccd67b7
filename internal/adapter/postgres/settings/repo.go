// Package settings implements the UserSettings repository using PostgreSQL.
package settings

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

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const settingsColumns = `id, user_id, focus_duration_minutes, short_break_minutes, long_break_minutes,
    sessions_before_long_break, sound_enabled, notifications_enabled, sound_volume, theme,
    show_seconds, auto_start_breaks, auto_start_focus, daily_goal_minutes, daily_session_goal,
    created_at, updated_at`

const createSQL = `
INSERT INTO user_settings (id, user_id, focus_duration_minutes, short_break_minutes, long_break_minutes,
    sessions_before_long_break, sound_enabled, notifications_enabled, sound_volume, theme,
    show_seconds, auto_start_breaks, auto_start_focus, daily_goal_minutes, daily_session_goal,
    created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
RETURNING ` + settingsColumns

const getByUserIDSQL = `
SELECT ` + settingsColumns + `
FROM user_settings
WHERE user_id = $1`

const updateSQL = `
UPDATE user_settings
SET focus_duration_minutes = $2, short_break_minutes = $3, long_break_minutes = $4,
    sessions_before_long_break = $5, sound_enabled = $6, notifications_enabled = $7,
    sound_volume = $8, theme = $9, show_seconds = $10, auto_start_breaks = $11,
    auto_start_focus = $12, daily_goal_minutes = $13, daily_session_goal = $14,
    updated_at = $15
WHERE user_id = $1
RETURNING ` + settingsColumns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByUserID returns the user's settings row.
// Returns domain.ErrNotFound if no row exists for the user.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByUserIDSQL, userID)

	s, err := scanSettings(row)
	if err != nil {
		return nil, mapError(err, "settings", userID)
	}

	return s, nil
}

// Create inserts the settings row for a new user.
func (r *Repo) Create(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.FocusDurationMinutes,
		s.ShortBreakMinutes,
		s.LongBreakMinutes,
		s.SessionsBeforeLongBreak,
		s.SoundEnabled,
		s.NotificationsEnabled,
		s.SoundVolume,
		string(s.Theme),
		s.ShowSeconds,
		s.AutoStartBreaks,
		s.AutoStartFocus,
		s.DailyGoalMinutes,
		s.DailySessionGoal,
		now,
	)

	created, err := scanSettings(row)
	if err != nil {
		return nil, mapError(err, "settings", s.UserID)
	}

	return created, nil
}

// Update rewrites the full settings row; partial-update merging is the
// service's job.
// Returns domain.ErrNotFound if no row exists for the user.
func (r *Repo) Update(ctx context.Context, s *domain.UserSettings) (*domain.UserSettings, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, updateSQL,
		s.UserID,
		s.FocusDurationMinutes,
		s.ShortBreakMinutes,
		s.LongBreakMinutes,
		s.SessionsBeforeLongBreak,
		s.SoundEnabled,
		s.NotificationsEnabled,
		s.SoundVolume,
		string(s.Theme),
		s.ShowSeconds,
		s.AutoStartBreaks,
		s.AutoStartFocus,
		s.DailyGoalMinutes,
		s.DailySessionGoal,
		now,
	)

	updated, err := scanSettings(row)
	if err != nil {
		return nil, mapError(err, "settings", s.UserID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var (
		s     domain.UserSettings
		theme string
	)

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.FocusDurationMinutes,
		&s.ShortBreakMinutes,
		&s.LongBreakMinutes,
		&s.SessionsBeforeLongBreak,
		&s.SoundEnabled,
		&s.NotificationsEnabled,
		&s.SoundVolume,
		&theme,
		&s.ShowSeconds,
		&s.AutoStartBreaks,
		&s.AutoStartFocus,
		&s.DailyGoalMinutes,
		&s.DailySessionGoal,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Theme = domain.Theme(theme)

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
