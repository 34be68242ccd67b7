package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings is the per-user preference bag. One row per user, created with
// defaults at registration. No derived logic lives here; the stats layer
// reads the daily goals for comparison context.
type UserSettings struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	FocusDurationMinutes    int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
	SoundEnabled            bool
	NotificationsEnabled    bool
	SoundVolume             int
	Theme                   Theme
	ShowSeconds             bool
	AutoStartBreaks         bool
	AutoStartFocus          bool
	DailyGoalMinutes        *int
	DailySessionGoal        *int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultSettings returns the settings a new user starts with.
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		ID:                      uuid.New(),
		UserID:                  userID,
		FocusDurationMinutes:    25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
		SoundEnabled:            true,
		NotificationsEnabled:    true,
		SoundVolume:             50,
		Theme:                   ThemeLight,
		ShowSeconds:             true,
		AutoStartBreaks:         false,
		AutoStartFocus:          false,
	}
}

// Validate checks range constraints on all settings.
func (s *UserSettings) Validate() error {
	var errs []FieldError

	if s.FocusDurationMinutes < 1 {
		errs = append(errs, FieldError{Field: "focus_duration_minutes", Message: "must be at least 1"})
	}
	if s.ShortBreakMinutes < 1 {
		errs = append(errs, FieldError{Field: "short_break_minutes", Message: "must be at least 1"})
	}
	if s.LongBreakMinutes < 1 {
		errs = append(errs, FieldError{Field: "long_break_minutes", Message: "must be at least 1"})
	}
	if s.SessionsBeforeLongBreak < 1 {
		errs = append(errs, FieldError{Field: "sessions_before_long_break", Message: "must be at least 1"})
	}
	if s.SoundVolume < 0 || s.SoundVolume > 100 {
		errs = append(errs, FieldError{Field: "sound_volume", Message: "must be between 0 and 100"})
	}
	if !s.Theme.IsValid() {
		errs = append(errs, FieldError{Field: "theme", Message: "must be LIGHT, DARK or AUTO"})
	}
	if s.DailyGoalMinutes != nil && *s.DailyGoalMinutes < 0 {
		errs = append(errs, FieldError{Field: "daily_goal_minutes", Message: "cannot be negative"})
	}
	if s.DailySessionGoal != nil && *s.DailySessionGoal < 0 {
		errs = append(errs, FieldError{Field: "daily_session_goal", Message: "cannot be negative"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
