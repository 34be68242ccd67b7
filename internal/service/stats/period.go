package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

// GetPeriodStats summarizes the caller's focus work over an inclusive date
// range. BestDay is the day with the most focus time; on a tie the earliest
// day wins.
func (s *Service) GetPeriodStats(ctx context.Context, startDate, endDate time.Time) (*PeriodStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	start := domain.DateOf(startDate, s.loc)
	end := domain.DateOf(endDate, s.loc)
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date", "cannot be before start_date")
	}
	if end.Sub(start) > time.Duration(s.maxRangeDays)*24*time.Hour {
		return nil, domain.NewValidationError("end_date", fmt.Sprintf("range cannot exceed %d days", s.maxRangeDays))
	}

	from, _ := s.dayBounds(startDate)
	_, to := s.dayBounds(endDate)

	agg, err := s.blocks.AggregateFocus(ctx, userID, s.loc.String(), &from, &to)
	if err != nil {
		return nil, fmt.Errorf("period stats: %w", err)
	}

	days, err := s.blocks.FocusSecondsByDay(ctx, userID, s.loc.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("period stats: %w", err)
	}

	result := &PeriodStats{
		StartDate:                     start,
		EndDate:                       end,
		TotalFocusTimeSeconds:         agg.TotalFocusSeconds,
		TotalSessions:                 agg.SessionCount,
		ActiveDays:                    agg.ActiveDays,
		AverageSessionDurationSeconds: agg.AvgSessionSeconds,
	}

	// days comes back date-ascending, so a strict comparison keeps the
	// earliest day on ties.
	for _, d := range days {
		if d.FocusSeconds > result.BestDayFocusTimeSeconds {
			date := d.Date
			result.BestDay = &date
			result.BestDayFocusTimeSeconds = d.FocusSeconds
		}
	}

	return result, nil
}

// GetLifetimeStats summarizes the caller's entire focus history.
func (s *Service) GetLifetimeStats(ctx context.Context) (*LifetimeStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	agg, err := s.blocks.AggregateFocus(ctx, userID, s.loc.String(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("lifetime stats: %w", err)
	}

	return &LifetimeStats{
		TotalFocusTimeSeconds:         agg.TotalFocusSeconds,
		TotalSessions:                 agg.SessionCount,
		TotalActiveDays:               agg.ActiveDays,
		AverageSessionDurationSeconds: agg.AvgSessionSeconds,
	}, nil
}

// GetTagBreakdown returns focus time grouped by tag, most time first. Nil
// bounds mean the caller's entire history; non-nil bounds are inclusive
// calendar dates.
func (s *Service) GetTagBreakdown(ctx context.Context, startDate, endDate *time.Time) ([]TagTimeBreakdown, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var from, to *time.Time
	if startDate != nil {
		f, _ := s.dayBounds(*startDate)
		from = &f
	}
	if endDate != nil {
		_, t := s.dayBounds(*endDate)
		to = &t
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.NewValidationError("end_date", "cannot be before start_date")
	}

	tags, err := s.blocks.FocusSecondsByTag(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("tag breakdown: %w", err)
	}

	result := make([]TagTimeBreakdown, 0, len(tags))
	for _, t := range tags {
		entry := TagTimeBreakdown{
			TagID:       t.TagID,
			Label:       deletedTagLabel,
			HexColor:    domain.DeletedTagColor,
			TimeSeconds: t.FocusSeconds,
		}
		if t.Label != nil {
			entry.Label = *t.Label
		}
		if t.Color != nil {
			entry.HexColor = *t.Color
		}
		result = append(result, entry)
	}

	return result, nil
}
