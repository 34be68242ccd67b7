package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserStreak tracks consecutive calendar days with at least one completed
// focus block. One row per user.
type UserStreak struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CurrentStreak    int
	BestStreak       int
	LastActivityDate *time.Time
	StreakStartDate  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RecordActivity transitions the streak state for a focus completion on the
// given calendar date (midnight-UTC encoded, see DateOf).
//
//   - first activity ever: streak starts at 1
//   - same date again: no-op, repeated completions never inflate the streak
//   - the very next day: streak increments, best streak follows
//   - a gap of more than one day: streak restarts at 1 rather than 0; the
//     absence itself is not an error
//   - a date before the last activity: no-op (backdated activity has no
//     defined transition)
func (s *UserStreak) RecordActivity(date time.Time) {
	if s.LastActivityDate == nil {
		s.CurrentStreak = 1
		if s.BestStreak < 1 {
			s.BestStreak = 1
		}
		s.StreakStartDate = &date
		s.LastActivityDate = &date
		return
	}

	last := *s.LastActivityDate
	switch {
	case SameDate(date, last):
		return

	case SameDate(date, NextDate(last)):
		s.CurrentStreak++
		if s.CurrentStreak > s.BestStreak {
			s.BestStreak = s.CurrentStreak
		}
		s.LastActivityDate = &date

	case date.After(NextDate(last)):
		s.CurrentStreak = 1
		s.StreakStartDate = &date
		s.LastActivityDate = &date
	}
}

// IsActive reports whether the streak is alive relative to today: the last
// activity was today or yesterday. The one-day grace keeps a streak from
// reading as broken before the user has had a chance to act today.
func (s *UserStreak) IsActive(today time.Time) bool {
	if s.LastActivityDate == nil {
		return false
	}
	last := *s.LastActivityDate
	return SameDate(last, today) || SameDate(NextDate(last), today)
}

// Reset zeroes the running streak without touching BestStreak or
// LastActivityDate.
func (s *UserStreak) Reset() {
	s.CurrentStreak = 0
	s.StreakStartDate = nil
}
