package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/internal/service/settings"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	GetSettings(ctx context.Context) (*domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input settings.UpdateSettingsInput) (*domain.UserSettings, error)
}

// SettingsHandler serves user settings REST endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

// updateSettingsRequest is a partial update. Absent fields keep their current
// values. The goal fields are raw so an explicit null (clear the goal) can be
// told apart from an absent field (keep it).
type updateSettingsRequest struct {
	FocusDurationMinutes    *int            `json:"focusDurationMinutes"`
	ShortBreakMinutes       *int            `json:"shortBreakMinutes"`
	LongBreakMinutes        *int            `json:"longBreakMinutes"`
	SessionsBeforeLongBreak *int            `json:"sessionsBeforeLongBreak"`
	SoundEnabled            *bool           `json:"soundEnabled"`
	NotificationsEnabled    *bool           `json:"notificationsEnabled"`
	SoundVolume             *int            `json:"soundVolume"`
	Theme                   *string         `json:"theme"`
	ShowSeconds             *bool           `json:"showSeconds"`
	AutoStartBreaks         *bool           `json:"autoStartBreaks"`
	AutoStartFocus          *bool           `json:"autoStartFocus"`
	DailyGoalMinutes        json.RawMessage `json:"dailyGoalMinutes"`
	DailySessionGoal        json.RawMessage `json:"dailySessionGoal"`
}

type settingsResponse struct {
	FocusDurationMinutes    int    `json:"focusDurationMinutes"`
	ShortBreakMinutes       int    `json:"shortBreakMinutes"`
	LongBreakMinutes        int    `json:"longBreakMinutes"`
	SessionsBeforeLongBreak int    `json:"sessionsBeforeLongBreak"`
	SoundEnabled            bool   `json:"soundEnabled"`
	NotificationsEnabled    bool   `json:"notificationsEnabled"`
	SoundVolume             int    `json:"soundVolume"`
	Theme                   string `json:"theme"`
	ShowSeconds             bool   `json:"showSeconds"`
	AutoStartBreaks         bool   `json:"autoStartBreaks"`
	AutoStartFocus          bool   `json:"autoStartFocus"`
	DailyGoalMinutes        *int   `json:"dailyGoalMinutes"`
	DailySessionGoal        *int   `json:"dailySessionGoal"`
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Update handles PATCH /settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := settings.UpdateSettingsInput{
		FocusDurationMinutes:    req.FocusDurationMinutes,
		ShortBreakMinutes:       req.ShortBreakMinutes,
		LongBreakMinutes:        req.LongBreakMinutes,
		SessionsBeforeLongBreak: req.SessionsBeforeLongBreak,
		SoundEnabled:            req.SoundEnabled,
		NotificationsEnabled:    req.NotificationsEnabled,
		SoundVolume:             req.SoundVolume,
		ShowSeconds:             req.ShowSeconds,
		AutoStartBreaks:         req.AutoStartBreaks,
		AutoStartFocus:          req.AutoStartFocus,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		input.Theme = &theme
	}

	goal, ok := parseGoalField(w, req.DailyGoalMinutes, "dailyGoalMinutes")
	if !ok {
		return
	}
	input.DailyGoalMinutes = goal

	goal, ok = parseGoalField(w, req.DailySessionGoal, "dailySessionGoal")
	if !ok {
		return
	}
	input.DailySessionGoal = goal

	s, err := h.svc.UpdateSettings(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// parseGoalField decodes a tri-state goal field: absent keeps the current
// goal, null clears it, a number sets it. On bad input it writes a 400 and
// returns false.
func parseGoalField(w http.ResponseWriter, raw json.RawMessage, field string) (**int, bool) {
	if raw == nil {
		return nil, true
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		var cleared *int
		return &cleared, true
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+field)
		return nil, false
	}
	p := &v
	return &p, true
}

func toSettingsResponse(s *domain.UserSettings) settingsResponse {
	return settingsResponse{
		FocusDurationMinutes:    s.FocusDurationMinutes,
		ShortBreakMinutes:       s.ShortBreakMinutes,
		LongBreakMinutes:        s.LongBreakMinutes,
		SessionsBeforeLongBreak: s.SessionsBeforeLongBreak,
		SoundEnabled:            s.SoundEnabled,
		NotificationsEnabled:    s.NotificationsEnabled,
		SoundVolume:             s.SoundVolume,
		Theme:                   s.Theme.String(),
		ShowSeconds:             s.ShowSeconds,
		AutoStartBreaks:         s.AutoStartBreaks,
		AutoStartFocus:          s.AutoStartFocus,
		DailyGoalMinutes:        s.DailyGoalMinutes,
		DailySessionGoal:        s.DailySessionGoal,
	}
}
