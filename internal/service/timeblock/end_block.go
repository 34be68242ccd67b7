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

// EndBlock closes the caller's running block, deriving the actual duration
// and completion flag. Ending a FOCUS block records streak activity for
// today in the same transaction, so a crash can never close the block
// without advancing the streak.
func (s *Service) EndBlock(ctx context.Context, input EndBlockInput) (*domain.TimeBlock, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.BlockID == uuid.Nil {
		return nil, domain.NewValidationError("block_id", "required")
	}

	block, err := s.getOwned(ctx, userID, input.BlockID)
	if err != nil {
		return nil, err
	}
	if !block.IsActive() {
		return nil, domain.Conflict("time block has already ended")
	}

	now := time.Now()
	endedAt := now
	block.EndedAt = &endedAt
	if input.Notes != nil {
		block.Notes = trimOrNil(input.Notes)
	}
	block.Derive()

	var ended *domain.TimeBlock
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var endErr error
		ended, endErr = s.blocks.End(txCtx, block)
		if endErr != nil {
			// The block was live at the ownership check; a vanished row means
			// a concurrent end won.
			if errors.Is(endErr, domain.ErrNotFound) {
				return domain.Conflict("time block has already ended")
			}
			return fmt.Errorf("end block: %w", endErr)
		}

		if block.Purpose == domain.BlockPurposeFocus {
			today := domain.DateOf(now, s.loc)
			if err := s.streaks.RecordActivity(txCtx, userID, today); err != nil {
				return fmt.Errorf("record streak activity: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "time block ended",
		slog.String("user_id", userID.String()),
		slog.String("block_id", ended.ID.String()),
		slog.String("purpose", ended.Purpose.String()),
		slog.Int64("actual_duration_seconds", *ended.ActualDurationSeconds),
	)

	return ended, nil
}
