package domain

import (
	"time"

	"github.com/google/uuid"
)

// GracePeriodSeconds is the tolerance for counting a TIMER block as completed
// even though the user stopped it a moment before the planned duration.
const GracePeriodSeconds = 5

// TimeBlock is a single recorded interval of focused work or break time.
// EndedAt == nil means the block is currently running. ActualDurationSeconds
// and Completed are derived from the timestamps by Derive and are nil while
// the block is running.
type TimeBlock struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	TodoID                 *uuid.UUID
	TagID                  *uuid.UUID
	Purpose                BlockPurpose
	Mode                   BlockMode
	StartedAt              time.Time
	EndedAt                *time.Time
	PlannedDurationSeconds *int64
	ActualDurationSeconds  *int64
	Completed              *bool
	Notes                  *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IsActive reports whether the block is still running.
func (b *TimeBlock) IsActive() bool { return b.EndedAt == nil }

// Validate checks the invariants that must hold on every persisted block:
// timestamps are ordered, mode/planned-duration pairing is exact, break
// blocks carry no todo or tag, and notes fit the column.
func (b *TimeBlock) Validate(now time.Time) error {
	var errs []FieldError

	if b.StartedAt.IsZero() {
		errs = append(errs, FieldError{Field: "started_at", Message: "required"})
	}
	if b.EndedAt != nil {
		if b.EndedAt.Before(b.StartedAt) {
			errs = append(errs, FieldError{Field: "ended_at", Message: "cannot be before started_at"})
		}
		// Small forward skew is tolerated for client clock drift.
		if b.EndedAt.After(now.Add(time.Minute)) {
			errs = append(errs, FieldError{Field: "ended_at", Message: "cannot be in the future"})
		}
	}

	if !b.Purpose.IsValid() {
		errs = append(errs, FieldError{Field: "purpose", Message: "must be FOCUS, SHORT_BREAK or LONG_BREAK"})
	}
	if !b.Mode.IsValid() {
		errs = append(errs, FieldError{Field: "mode", Message: "must be TIMER or STOPWATCH"})
	}

	switch b.Mode {
	case BlockModeTimer:
		if b.PlannedDurationSeconds == nil {
			errs = append(errs, FieldError{Field: "planned_duration_seconds", Message: "required for TIMER mode"})
		} else if *b.PlannedDurationSeconds <= 0 {
			errs = append(errs, FieldError{Field: "planned_duration_seconds", Message: "must be positive"})
		}
	case BlockModeStopwatch:
		if b.PlannedDurationSeconds != nil {
			errs = append(errs, FieldError{Field: "planned_duration_seconds", Message: "not allowed for STOPWATCH mode"})
		}
	}

	if b.Purpose.IsBreak() {
		if b.TodoID != nil {
			errs = append(errs, FieldError{Field: "todo_id", Message: "break blocks cannot be associated with a todo"})
		}
		if b.TagID != nil {
			errs = append(errs, FieldError{Field: "tag_id", Message: "break blocks cannot have a tag"})
		}
	}

	if b.Notes != nil && len(*b.Notes) > 500 {
		errs = append(errs, FieldError{Field: "notes", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Derive recomputes ActualDurationSeconds and Completed from the timestamps.
// It is called immediately before every persistence of the block, never as a
// storage-layer trigger, so the derivation stays testable in isolation.
//
// Completed is non-nil only for ended TIMER blocks: true iff the block ran
// within GracePeriodSeconds of its planned duration.
func (b *TimeBlock) Derive() {
	if b.EndedAt == nil {
		b.ActualDurationSeconds = nil
		b.Completed = nil
		return
	}

	actual := int64(b.EndedAt.Sub(b.StartedAt) / time.Second)
	b.ActualDurationSeconds = &actual

	if b.Mode == BlockModeTimer && b.PlannedDurationSeconds != nil {
		done := actual >= *b.PlannedDurationSeconds-GracePeriodSeconds
		b.Completed = &done
	} else {
		b.Completed = nil
	}
}

// CurrentDurationSeconds returns the stored duration for ended blocks, or the
// live elapsed time for running blocks. Never persisted.
func (b *TimeBlock) CurrentDurationSeconds(now time.Time) int64 {
	if b.EndedAt != nil {
		if b.ActualDurationSeconds != nil {
			return *b.ActualDurationSeconds
		}
		return int64(b.EndedAt.Sub(b.StartedAt) / time.Second)
	}
	return int64(now.Sub(b.StartedAt) / time.Second)
}

// RemainingSeconds returns the time left on a running TIMER block, floored at
// zero. It is nil for STOPWATCH blocks and for ended blocks.
func (b *TimeBlock) RemainingSeconds(now time.Time) *int64 {
	if b.Mode != BlockModeTimer || b.EndedAt != nil || b.PlannedDurationSeconds == nil {
		return nil
	}
	remaining := *b.PlannedDurationSeconds - b.CurrentDurationSeconds(now)
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// HasOverrun reports whether a TIMER block has run past its planned duration.
// Evaluated live for running blocks.
func (b *TimeBlock) HasOverrun(now time.Time) bool {
	if b.Mode != BlockModeTimer || b.PlannedDurationSeconds == nil {
		return false
	}
	return b.CurrentDurationSeconds(now) > *b.PlannedDurationSeconds
}

// ResolveEffectiveTag applies the tag precedence policy for a new block:
// the attached todo's tag wins over an explicitly supplied tag, which wins
// over none. A nil result means the block is uncategorized.
func ResolveEffectiveTag(todoTagID, requestTagID *uuid.UUID) *uuid.UUID {
	if todoTagID != nil {
		return todoTagID
	}
	return requestTagID
}
