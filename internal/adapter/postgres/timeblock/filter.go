package timeblock

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// normalizeFilter applies defaults and clamps pagination values.
func normalizeFilter(f *domain.TimeBlockFilter) {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// buildListQuery assembles the SELECT for List.
func buildListQuery(userID uuid.UUID, f domain.TimeBlockFilter) (string, []any, error) {
	normalizeFilter(&f)

	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("id", "user_id", "todo_id", "tag_id", "purpose", "mode",
			"started_at", "ended_at", "planned_duration_seconds",
			"actual_duration_seconds", "completed", "notes", "created_at", "updated_at").
		From("time_blocks").
		Where(squirrel.Eq{"user_id": userID})

	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"started_at": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.Lt{"started_at": *f.To})
	}
	if f.Purpose != nil {
		q = q.Where(squirrel.Eq{"purpose": string(*f.Purpose)})
	}
	if f.TagID != nil {
		q = q.Where(squirrel.Eq{"tag_id": *f.TagID})
	}
	if f.TodoID != nil {
		q = q.Where(squirrel.Eq{"todo_id": *f.TodoID})
	}

	q = q.OrderBy("started_at ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	return q.ToSql()
}
