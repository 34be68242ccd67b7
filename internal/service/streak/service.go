// Package streak implements the consecutive-focus-days tracker. The state
// transitions live on domain.UserStreak; this service loads, transitions and
// persists them.
package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

type streakRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error)
	GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error)
	Create(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error)
	Update(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error)
}

// Service provides streak reads and transitions.
type Service struct {
	streaks streakRepo
	loc     *time.Location
	log     *slog.Logger
}

// NewService creates a new Streak service. loc is the timezone used to
// collapse instants to calendar dates.
func NewService(log *slog.Logger, streaks streakRepo, loc *time.Location) *Service {
	return &Service{
		streaks: streaks,
		loc:     loc,
		log:     log.With("service", "streak"),
	}
}

// Status is the caller-facing view of a streak. Active is evaluated against
// today at read time and never stored.
type Status struct {
	CurrentStreak    int
	BestStreak       int
	LastActivityDate *time.Time
	StreakStartDate  *time.Time
	Active           bool
}

// GetStreak returns the caller's streak status. A user without a streak row
// reads as all zeroes rather than an error.
func (s *Service) GetStreak(ctx context.Context) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	streak, err := s.streaks.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &Status{}, nil
		}
		return nil, fmt.Errorf("get streak: %w", err)
	}

	today := domain.DateOf(time.Now(), s.loc)

	return &Status{
		CurrentStreak:    streak.CurrentStreak,
		BestStreak:       streak.BestStreak,
		LastActivityDate: streak.LastActivityDate,
		StreakStartDate:  streak.StreakStartDate,
		Active:           streak.IsActive(today),
	}, nil
}

// RecordActivity applies a focus completion on the given calendar date to the
// user's streak. It is called by the time block engine inside the same
// transaction that ends the block; the row lock serializes concurrent
// completions for one user. A missing streak row is created on first use.
func (s *Service) RecordActivity(ctx context.Context, userID uuid.UUID, date time.Time) error {
	streak, err := s.streaks.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("lock streak: %w", err)
		}
		streak, err = s.streaks.Create(ctx, &domain.UserStreak{
			ID:     uuid.New(),
			UserID: userID,
		})
		if err != nil {
			return fmt.Errorf("create streak: %w", err)
		}
	}

	prev := streak.LastActivityDate
	streak.RecordActivity(date)
	if prev != nil && streak.LastActivityDate != nil && prev.Equal(*streak.LastActivityDate) {
		// Same-day repeat or backdated activity: nothing to persist.
		return nil
	}

	if _, err := s.streaks.Update(ctx, streak); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}

	s.log.InfoContext(ctx, "streak activity recorded",
		slog.String("user_id", userID.String()),
		slog.Int("current_streak", streak.CurrentStreak),
		slog.Int("best_streak", streak.BestStreak),
	)

	return nil
}

// ResetStreak zeroes the caller's running streak. Best streak and activity
// history are kept.
func (s *Service) ResetStreak(ctx context.Context) (*Status, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	streak, err := s.streaks.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &Status{}, nil
		}
		return nil, fmt.Errorf("get streak: %w", err)
	}

	streak.Reset()

	updated, err := s.streaks.Update(ctx, streak)
	if err != nil {
		return nil, fmt.Errorf("reset streak: %w", err)
	}

	s.log.InfoContext(ctx, "streak reset",
		slog.String("user_id", userID.String()),
	)

	today := domain.DateOf(time.Now(), s.loc)

	return &Status{
		CurrentStreak:    updated.CurrentStreak,
		BestStreak:       updated.BestStreak,
		LastActivityDate: updated.LastActivityDate,
		StreakStartDate:  updated.StreakStartDate,
		Active:           updated.IsActive(today),
	}, nil
}
