// Package timeblock implements the time block engine: starting and ending
// focus/break intervals, the single-active-block rule, and the streak hook on
// focus completion.
package timeblock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

type blockRepo interface {
	GetByID(ctx context.Context, blockID uuid.UUID) (*domain.TimeBlock, error)
	GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeBlock, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TimeBlockFilter) ([]*domain.TimeBlock, error)
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	End(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	Delete(ctx context.Context, userID, blockID uuid.UUID) error
}

type todoRepo interface {
	GetByID(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
}

type tagRepo interface {
	GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
}

type streakRecorder interface {
	RecordActivity(ctx context.Context, userID uuid.UUID, date time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides time block operations.
type Service struct {
	blocks       blockRepo
	todos        todoRepo
	tags         tagRepo
	streaks      streakRecorder
	tx           txManager
	loc          *time.Location
	maxRangeDays int
	log          *slog.Logger
}

// NewService creates a new TimeBlock service. loc is the timezone used to
// collapse instants to calendar dates; maxRangeDays bounds list queries.
func NewService(
	log *slog.Logger,
	blocks blockRepo,
	todos todoRepo,
	tags tagRepo,
	streaks streakRecorder,
	tx txManager,
	loc *time.Location,
	maxRangeDays int,
) *Service {
	return &Service{
		blocks:       blocks,
		todos:        todos,
		tags:         tags,
		streaks:      streaks,
		tx:           tx,
		loc:          loc,
		maxRangeDays: maxRangeDays,
		log:          log.With("service", "timeblock"),
	}
}

// getOwned loads a block and verifies ownership.
func (s *Service) getOwned(ctx context.Context, userID, blockID uuid.UUID) (*domain.TimeBlock, error) {
	block, err := s.blocks.GetByID(ctx, blockID)
	if err != nil {
		return nil, err
	}
	if block.UserID != userID {
		return nil, domain.Forbidden("time_block", blockID)
	}
	return block, nil
}

// checkTagOwned verifies the tag exists and belongs to the user.
func (s *Service) checkTagOwned(ctx context.Context, userID, tagID uuid.UUID) error {
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag.UserID != userID {
		return domain.Forbidden("tag", tagID)
	}
	return nil
}

// trimOrNil trims the string and returns nil when the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
