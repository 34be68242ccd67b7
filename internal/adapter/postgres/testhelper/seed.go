package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user along with its default settings and streak rows.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	settings := domain.DefaultSettings(user.ID)
	_, err = pool.Exec(ctx,
		`INSERT INTO user_settings (id, user_id, focus_duration_minutes, short_break_minutes,
		    long_break_minutes, sessions_before_long_break, sound_enabled, notifications_enabled,
		    sound_volume, theme, show_seconds, auto_start_breaks, auto_start_focus, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`,
		settings.ID, settings.UserID, settings.FocusDurationMinutes, settings.ShortBreakMinutes,
		settings.LongBreakMinutes, settings.SessionsBeforeLongBreak, settings.SoundEnabled,
		settings.NotificationsEnabled, settings.SoundVolume, string(settings.Theme),
		settings.ShowSeconds, settings.AutoStartBreaks, settings.AutoStartFocus, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_settings: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_streaks (id, user_id, current_streak, best_streak, created_at, updated_at)
		 VALUES ($1, $2, 0, 0, $3, $3)`,
		uuid.New(), user.ID, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user_streaks: %v", err)
	}

	return user
}

// SeedTag creates a tag for the user with a unique label.
func SeedTag(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Tag {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tag := domain.Tag{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     "tag-" + uniqueSuffix(),
		HexColor:  "FF5733",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tags (id, user_id, label, hex_color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tag.ID, tag.UserID, tag.Label, tag.HexColor, tag.CreatedAt, tag.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// SeedTodo creates a todo for the user, optionally linked to a tag.
func SeedTodo(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, tagID *uuid.UUID) domain.Todo {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	todo := domain.Todo{
		ID:        uuid.New(),
		UserID:    userID,
		TagID:     tagID,
		Title:     "todo-" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO todos (id, user_id, tag_id, title, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, false, $5, $6)`,
		todo.ID, todo.UserID, todo.TagID, todo.Title, todo.CreatedAt, todo.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTodo insert: %v", err)
	}

	return todo
}

// SeedEndedBlock creates an ended TIMER block with the given purpose, start
// time, and duration. Derived fields are computed the same way the engine
// computes them before persisting.
func SeedEndedBlock(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, purpose domain.BlockPurpose, startedAt time.Time, duration time.Duration, tagID *uuid.UUID) domain.TimeBlock {
	t.Helper()
	ctx := context.Background()

	endedAt := startedAt.Add(duration)
	planned := int64(duration / time.Second)
	block := domain.TimeBlock{
		ID:                     uuid.New(),
		UserID:                 userID,
		TagID:                  tagID,
		Purpose:                purpose,
		Mode:                   domain.BlockModeTimer,
		StartedAt:              startedAt,
		EndedAt:                &endedAt,
		PlannedDurationSeconds: &planned,
	}
	block.Derive()

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := pool.Exec(ctx,
		`INSERT INTO time_blocks (id, user_id, tag_id, purpose, mode, started_at, ended_at,
		    planned_duration_seconds, actual_duration_seconds, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		block.ID, block.UserID, block.TagID, string(block.Purpose), string(block.Mode),
		block.StartedAt, block.EndedAt, block.PlannedDurationSeconds,
		block.ActualDurationSeconds, block.Completed, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEndedBlock insert: %v", err)
	}

	return block
}
