package timeblock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

// GetActiveBlock returns the caller's currently running block.
// Returns domain.ErrNotFound when nothing is running.
func (s *Service) GetActiveBlock(ctx context.Context) (*domain.TimeBlock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.blocks.GetActive(ctx, userID)
}

// GetBlock returns one block owned by the caller.
func (s *Service) GetBlock(ctx context.Context, blockID uuid.UUID) (*domain.TimeBlock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if blockID == uuid.Nil {
		return nil, domain.NewValidationError("block_id", "required")
	}

	return s.getOwned(ctx, userID, blockID)
}

// ListBlocks returns the caller's blocks matching the filter, oldest first.
// A time range wider than the configured maximum is refused. A referenced
// tag or todo must belong to the caller.
func (s *Service) ListBlocks(ctx context.Context, f domain.TimeBlockFilter) ([]*domain.TimeBlock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if f.From != nil && f.To != nil {
		if f.To.Before(*f.From) {
			return nil, domain.NewValidationError("to", "cannot be before from")
		}
		if f.To.Sub(*f.From) > time.Duration(s.maxRangeDays)*24*time.Hour {
			return nil, domain.NewValidationError("to", fmt.Sprintf("range cannot exceed %d days", s.maxRangeDays))
		}
	}

	if f.TagID != nil {
		if err := s.checkTagOwned(ctx, userID, *f.TagID); err != nil {
			return nil, err
		}
	}
	if f.TodoID != nil {
		todo, err := s.todos.GetByID(ctx, *f.TodoID)
		if err != nil {
			return nil, err
		}
		if todo.UserID != userID {
			return nil, domain.Forbidden("todo", *f.TodoID)
		}
	}

	return s.blocks.List(ctx, userID, f)
}

// ListBlocksForDate returns the caller's blocks that started on the given
// calendar date in the tracker timezone.
func (s *Service) ListBlocksForDate(ctx context.Context, date time.Time) ([]*domain.TimeBlock, error) {
	day := domain.DateOf(date, s.loc)
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 0, 1)

	return s.ListBlocks(ctx, domain.TimeBlockFilter{From: &from, To: &to})
}

// DeleteBlock removes a block owned by the caller, running or not.
func (s *Service) DeleteBlock(ctx context.Context, blockID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if blockID == uuid.Nil {
		return domain.NewValidationError("block_id", "required")
	}

	if _, err := s.getOwned(ctx, userID, blockID); err != nil {
		return err
	}

	if err := s.blocks.Delete(ctx, userID, blockID); err != nil {
		return fmt.Errorf("delete block: %w", err)
	}

	s.log.InfoContext(ctx, "time block deleted",
		slog.String("user_id", userID.String()),
		slog.String("block_id", blockID.String()),
	)

	return nil
}
