// Package stats implements the read-only statistics aggregator: daily
// roll-ups, period summaries, lifetime totals and per-tag breakdowns over a
// user's time blocks.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

type statsRepo interface {
	ListWithRefs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.BlockWithRefs, error)
	AggregateFocus(ctx context.Context, userID uuid.UUID, tz string, from, to *time.Time) (domain.FocusAggregate, error)
	FocusSecondsByDay(ctx context.Context, userID uuid.UUID, tz string, from, to time.Time) ([]domain.DayFocus, error)
	FocusSecondsByTag(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.TagFocus, error)
}

// Service provides statistics reads. All aggregation over unbounded history
// happens in SQL; only single-day timelines are materialized in memory.
type Service struct {
	blocks       statsRepo
	loc          *time.Location
	maxRangeDays int
	log          *slog.Logger
}

// NewService creates a new Stats service. loc is the timezone used to
// collapse instants to calendar dates; maxRangeDays bounds period queries.
func NewService(log *slog.Logger, blocks statsRepo, loc *time.Location, maxRangeDays int) *Service {
	return &Service{
		blocks:       blocks,
		loc:          loc,
		maxRangeDays: maxRangeDays,
		log:          log.With("service", "stats"),
	}
}

// dayBounds returns the [from, to) instant range covering the calendar date
// of t in the service timezone.
func (s *Service) dayBounds(t time.Time) (time.Time, time.Time) {
	d := t.In(s.loc)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	return from, from.AddDate(0, 0, 1)
}

// TagTimeBreakdown is focus time accrued under one tag. Deleted tags keep
// their accrued time under a placeholder label and color.
type TagTimeBreakdown struct {
	TagID       uuid.UUID
	Label       string
	HexColor    string
	TimeSeconds int64
}

// BlockSummary is one timeline entry for an ended block.
type BlockSummary struct {
	ID              uuid.UUID
	Purpose         domain.BlockPurpose
	Mode            domain.BlockMode
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds int64
	Completed       *bool
	TagLabel        *string
	TodoTitle       *string
}

// DailyStats summarizes one calendar day.
type DailyStats struct {
	Date             time.Time
	FocusTimeSeconds int64
	BreakTimeSeconds int64
	SessionCount     int
	TagBreakdown     []TagTimeBreakdown
	Timeline         []BlockSummary
}

// PeriodStats summarizes an inclusive date range.
type PeriodStats struct {
	StartDate                     time.Time
	EndDate                       time.Time
	TotalFocusTimeSeconds         int64
	TotalSessions                 int64
	ActiveDays                    int64
	AverageSessionDurationSeconds float64
	BestDay                       *time.Time
	BestDayFocusTimeSeconds       int64
}

// LifetimeStats summarizes a user's entire history.
type LifetimeStats struct {
	TotalFocusTimeSeconds         int64
	TotalSessions                 int64
	TotalActiveDays               int64
	AverageSessionDurationSeconds float64
}
