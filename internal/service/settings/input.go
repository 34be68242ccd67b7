package settings

import "github.com/atinroy/focusflow-backend/internal/domain"

// UpdateSettingsInput carries a partial settings update. Nil fields keep the
// current value. The goal fields distinguish "leave alone" (nil outer
// pointer) from "clear the goal" (non-nil outer pointer to nil).
type UpdateSettingsInput struct {
	FocusDurationMinutes    *int
	ShortBreakMinutes       *int
	LongBreakMinutes        *int
	SessionsBeforeLongBreak *int
	SoundEnabled            *bool
	NotificationsEnabled    *bool
	SoundVolume             *int
	Theme                   *domain.Theme
	ShowSeconds             *bool
	AutoStartBreaks         *bool
	AutoStartFocus          *bool
	DailyGoalMinutes        **int
	DailySessionGoal        **int
}

// applyTo merges the set fields onto current.
func (in UpdateSettingsInput) applyTo(current *domain.UserSettings) {
	if in.FocusDurationMinutes != nil {
		current.FocusDurationMinutes = *in.FocusDurationMinutes
	}
	if in.ShortBreakMinutes != nil {
		current.ShortBreakMinutes = *in.ShortBreakMinutes
	}
	if in.LongBreakMinutes != nil {
		current.LongBreakMinutes = *in.LongBreakMinutes
	}
	if in.SessionsBeforeLongBreak != nil {
		current.SessionsBeforeLongBreak = *in.SessionsBeforeLongBreak
	}
	if in.SoundEnabled != nil {
		current.SoundEnabled = *in.SoundEnabled
	}
	if in.NotificationsEnabled != nil {
		current.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.SoundVolume != nil {
		current.SoundVolume = *in.SoundVolume
	}
	if in.Theme != nil {
		current.Theme = *in.Theme
	}
	if in.ShowSeconds != nil {
		current.ShowSeconds = *in.ShowSeconds
	}
	if in.AutoStartBreaks != nil {
		current.AutoStartBreaks = *in.AutoStartBreaks
	}
	if in.AutoStartFocus != nil {
		current.AutoStartFocus = *in.AutoStartFocus
	}
	if in.DailyGoalMinutes != nil {
		current.DailyGoalMinutes = *in.DailyGoalMinutes
	}
	if in.DailySessionGoal != nil {
		current.DailySessionGoal = *in.DailySessionGoal
	}
}
