package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

// deletedTagLabel is shown when a breakdown references a tag that no longer
// exists. The accrued time is kept either way.
const deletedTagLabel = "deleted"

// GetDailyStats summarizes the caller's blocks that started on the given
// calendar date. Only ended blocks appear: a still-running block counts
// toward neither the totals nor the timeline until it is ended.
func (s *Service) GetDailyStats(ctx context.Context, date time.Time) (*DailyStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	from, to := s.dayBounds(date)

	blocks, err := s.blocks.ListWithRefs(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily stats: %w", err)
	}

	result := &DailyStats{
		Date:         domain.DateOf(date, s.loc),
		TagBreakdown: []TagTimeBreakdown{},
		Timeline:     make([]BlockSummary, 0, len(blocks)),
	}

	type tagAcc struct {
		label   *string
		color   *string
		seconds int64
	}
	byTag := make(map[uuid.UUID]*tagAcc)

	for _, b := range blocks {
		if b.IsActive() || b.ActualDurationSeconds == nil {
			continue
		}
		seconds := *b.ActualDurationSeconds

		result.Timeline = append(result.Timeline, BlockSummary{
			ID:              b.ID,
			Purpose:         b.Purpose,
			Mode:            b.Mode,
			StartedAt:       b.StartedAt,
			EndedAt:         b.EndedAt,
			DurationSeconds: seconds,
			Completed:       b.Completed,
			TagLabel:        b.TagLabel,
			TodoTitle:       b.TodoTitle,
		})

		if b.Purpose == domain.BlockPurposeFocus {
			result.FocusTimeSeconds += seconds
			result.SessionCount++

			if b.TagID != nil {
				acc, exists := byTag[*b.TagID]
				if !exists {
					acc = &tagAcc{label: b.TagLabel, color: b.TagColor}
					byTag[*b.TagID] = acc
				}
				acc.seconds += seconds
			}
		} else {
			result.BreakTimeSeconds += seconds
		}
	}

	for tagID, acc := range byTag {
		entry := TagTimeBreakdown{
			TagID:       tagID,
			Label:       deletedTagLabel,
			HexColor:    domain.DeletedTagColor,
			TimeSeconds: acc.seconds,
		}
		if acc.label != nil {
			entry.Label = *acc.label
		}
		if acc.color != nil {
			entry.HexColor = *acc.color
		}
		result.TagBreakdown = append(result.TagBreakdown, entry)
	}
	sort.Slice(result.TagBreakdown, func(i, j int) bool {
		a, b := result.TagBreakdown[i], result.TagBreakdown[j]
		if a.TimeSeconds != b.TimeSeconds {
			return a.TimeSeconds > b.TimeSeconds
		}
		return a.Label < b.Label
	})

	return result, nil
}
