package timeblock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/atinroy/focusflow-backend/internal/adapter/postgres"
	"github.com/atinroy/focusflow-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listWithRefsSQL = `
SELECT
    tb.id, tb.user_id, tb.todo_id, tb.tag_id, tb.purpose, tb.mode, tb.started_at, tb.ended_at,
    tb.planned_duration_seconds, tb.actual_duration_seconds, tb.completed, tb.notes,
    tb.created_at, tb.updated_at,
    t.label, t.hex_color, td.title
FROM time_blocks tb
LEFT JOIN tags t ON tb.tag_id = t.id
LEFT JOIN todos td ON tb.todo_id = td.id
WHERE tb.user_id = $1
  AND tb.started_at >= $2 AND tb.started_at < $3
ORDER BY tb.started_at ASC`

const aggregateSQL = `
SELECT
    COALESCE(SUM(actual_duration_seconds), 0),
    count(*),
    count(DISTINCT (started_at AT TIME ZONE $2)::date),
    COALESCE(AVG(actual_duration_seconds), 0)
FROM time_blocks
WHERE user_id = $1 AND purpose = 'FOCUS' AND ended_at IS NOT NULL
  AND ($3::timestamptz IS NULL OR started_at >= $3)
  AND ($4::timestamptz IS NULL OR started_at < $4)`

const focusSecondsByDaySQL = `
SELECT
    (started_at AT TIME ZONE $2)::date,
    COALESCE(SUM(actual_duration_seconds), 0)
FROM time_blocks
WHERE user_id = $1 AND purpose = 'FOCUS' AND ended_at IS NOT NULL
  AND started_at >= $3 AND started_at < $4
GROUP BY 1
ORDER BY 1 ASC`

const focusSecondsByTagSQL = `
SELECT
    tb.tag_id,
    t.label,
    t.hex_color,
    COALESCE(SUM(tb.actual_duration_seconds), 0)
FROM time_blocks tb
LEFT JOIN tags t ON tb.tag_id = t.id
WHERE tb.user_id = $1 AND tb.purpose = 'FOCUS' AND tb.tag_id IS NOT NULL
  AND tb.ended_at IS NOT NULL
  AND ($2::timestamptz IS NULL OR tb.started_at >= $2)
  AND ($3::timestamptz IS NULL OR tb.started_at < $3)
GROUP BY tb.tag_id, t.label, t.hex_color
ORDER BY 4 DESC`

// ---------------------------------------------------------------------------
// Aggregate reads
// ---------------------------------------------------------------------------

// ListWithRefs returns all blocks started in [from, to), with tag and
// todo references resolved, ordered chronologically. Running blocks are
// included so daily roll-ups can decide what to count.
func (r *Repo) ListWithRefs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.BlockWithRefs, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listWithRefsSQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list blocks with refs: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.BlockWithRefs
	for rows.Next() {
		var (
			b       domain.BlockWithRefs
			purpose string
			mode    string
		)
		err := rows.Scan(
			&b.ID, &b.UserID, &b.TodoID, &b.TagID, &purpose, &mode, &b.StartedAt, &b.EndedAt,
			&b.PlannedDurationSeconds, &b.ActualDurationSeconds, &b.Completed, &b.Notes,
			&b.CreatedAt, &b.UpdatedAt,
			&b.TagLabel, &b.TagColor, &b.TodoTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("list blocks with refs: %w", err)
		}
		b.Purpose = domain.BlockPurpose(purpose)
		b.Mode = domain.BlockMode(mode)
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blocks with refs: %w", err)
	}

	if blocks == nil {
		blocks = []*domain.BlockWithRefs{}
	}

	return blocks, nil
}

// AggregateFocus rolls up ended focus blocks into totals. Nil bounds mean
// unbounded (lifetime). Days are counted in the tz timezone.
func (r *Repo) AggregateFocus(ctx context.Context, userID uuid.UUID, tz string, from, to *time.Time) (domain.FocusAggregate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var agg domain.FocusAggregate
	err := querier.QueryRow(ctx, aggregateSQL, userID, tz, from, to).Scan(
		&agg.TotalFocusSeconds,
		&agg.SessionCount,
		&agg.ActiveDays,
		&agg.AvgSessionSeconds,
	)
	if err != nil {
		return domain.FocusAggregate{}, fmt.Errorf("aggregate focus: %w", err)
	}

	return agg, nil
}

// FocusSecondsByDay groups ended focus time by calendar day (in tz) for
// blocks started in [from, to), ordered by date ascending.
func (r *Repo) FocusSecondsByDay(ctx context.Context, userID uuid.UUID, tz string, from, to time.Time) ([]domain.DayFocus, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, focusSecondsByDaySQL, userID, tz, from, to)
	if err != nil {
		return nil, fmt.Errorf("focus seconds by day: %w", err)
	}
	defer rows.Close()

	var days []domain.DayFocus
	for rows.Next() {
		var d domain.DayFocus
		if err := rows.Scan(&d.Date, &d.FocusSeconds); err != nil {
			return nil, fmt.Errorf("focus seconds by day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("focus seconds by day: %w", err)
	}

	if days == nil {
		days = []domain.DayFocus{}
	}

	return days, nil
}

// FocusSecondsByTag groups ended focus time by tag, most time first. Nil
// bounds mean unbounded. Untagged blocks are excluded; tags deleted after
// accruing time come back with nil label/color.
func (r *Repo) FocusSecondsByTag(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.TagFocus, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, focusSecondsByTagSQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("focus seconds by tag: %w", err)
	}
	defer rows.Close()

	var tags []domain.TagFocus
	for rows.Next() {
		var t domain.TagFocus
		if err := rows.Scan(&t.TagID, &t.Label, &t.Color, &t.FocusSeconds); err != nil {
			return nil, fmt.Errorf("focus seconds by tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("focus seconds by tag: %w", err)
	}

	if tags == nil {
		tags = []domain.TagFocus{}
	}

	return tags, nil
}
