package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/atinroy/focusflow-backend/internal/service/streak"
)

// streakService defines the minimal interface needed by StreakHandler.
type streakService interface {
	GetStreak(ctx context.Context) (*streak.Status, error)
	ResetStreak(ctx context.Context) (*streak.Status, error)
}

// StreakHandler serves streak REST endpoints.
type StreakHandler struct {
	svc streakService
	log *slog.Logger
}

// NewStreakHandler creates a StreakHandler.
func NewStreakHandler(svc streakService, logger *slog.Logger) *StreakHandler {
	return &StreakHandler{svc: svc, log: logger.With("handler", "streak")}
}

type streakResponse struct {
	CurrentStreak    int     `json:"currentStreak"`
	BestStreak       int     `json:"bestStreak"`
	LastActivityDate *string `json:"lastActivityDate,omitempty"`
	StreakStartDate  *string `json:"streakStartDate,omitempty"`
	Active           bool    `json:"active"`
}

// Get handles GET /streak.
func (h *StreakHandler) Get(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.GetStreak(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStreakResponse(status))
}

// Reset handles POST /streak/reset.
func (h *StreakHandler) Reset(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.ResetStreak(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStreakResponse(status))
}

func toStreakResponse(status *streak.Status) streakResponse {
	return streakResponse{
		CurrentStreak:    status.CurrentStreak,
		BestStreak:       status.BestStreak,
		LastActivityDate: dateString(status.LastActivityDate),
		StreakStartDate:  dateString(status.StreakStartDate),
		Active:           status.Active,
	}
}

// dateString renders a pure date as YYYY-MM-DD.
func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
