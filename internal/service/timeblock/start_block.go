package timeblock

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

// StartBlock starts a new running block for the caller. At most one block may
// run per user: a second start is refused with domain.ErrConflict. The
// attached todo's tag takes precedence over an explicitly supplied tag.
func (s *Service) StartBlock(ctx context.Context, input StartBlockInput) (*domain.TimeBlock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Pre-flight check for a friendly message. The partial unique index on
	// running blocks backstops the race between two concurrent starts.
	if _, err := s.blocks.GetActive(ctx, userID); err == nil {
		return nil, domain.Conflict("an active time block is already running, end it first")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check active block: %w", err)
	}

	var todoTagID *uuid.UUID
	if input.TodoID != nil {
		todo, err := s.todos.GetByID(ctx, *input.TodoID)
		if err != nil {
			return nil, err
		}
		if todo.UserID != userID {
			return nil, domain.Forbidden("todo", *input.TodoID)
		}
		todoTagID = todo.TagID
	}

	if input.TagID != nil {
		if err := s.checkTagOwned(ctx, userID, *input.TagID); err != nil {
			return nil, err
		}
	}

	now := time.Now()

	block := &domain.TimeBlock{
		ID:                     uuid.New(),
		UserID:                 userID,
		TodoID:                 input.TodoID,
		TagID:                  domain.ResolveEffectiveTag(todoTagID, input.TagID),
		Purpose:                input.Purpose,
		Mode:                   input.Mode,
		StartedAt:              now,
		PlannedDurationSeconds: input.PlannedDurationSeconds,
		Notes:                  trimOrNil(input.Notes),
	}
	if err := block.Validate(now); err != nil {
		return nil, err
	}

	created, err := s.blocks.Create(ctx, block)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Conflict("an active time block is already running, end it first")
		}
		return nil, fmt.Errorf("start block: %w", err)
	}

	s.log.InfoContext(ctx, "time block started",
		slog.String("user_id", userID.String()),
		slog.String("block_id", created.ID.String()),
		slog.String("purpose", created.Purpose.String()),
		slog.String("mode", created.Mode.String()),
	)

	return created, nil
}
