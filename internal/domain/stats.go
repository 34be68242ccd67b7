package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlockWithRefs is a time block with its tag label/color and todo title
// resolved by the storage layer, for stats timelines.
type BlockWithRefs struct {
	TimeBlock
	TagLabel  *string
	TagColor  *string
	TodoTitle *string
}

// FocusAggregate is a roll-up over a user's ended focus blocks.
type FocusAggregate struct {
	TotalFocusSeconds int64
	SessionCount      int64
	ActiveDays        int64
	AvgSessionSeconds float64
}

// DayFocus is total focus seconds accrued on one calendar day.
type DayFocus struct {
	Date         time.Time
	FocusSeconds int64
}

// TagFocus is total focus seconds accrued under one tag. Label and Color are
// nil when the tag row no longer exists.
type TagFocus struct {
	TagID        uuid.UUID
	Label        *string
	Color        *string
	FocusSeconds int64
}
