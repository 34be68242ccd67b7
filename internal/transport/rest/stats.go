package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/atinroy/focusflow-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	GetDailyStats(ctx context.Context, date time.Time) (*stats.DailyStats, error)
	GetPeriodStats(ctx context.Context, startDate, endDate time.Time) (*stats.PeriodStats, error)
	GetLifetimeStats(ctx context.Context) (*stats.LifetimeStats, error)
	GetTagBreakdown(ctx context.Context, startDate, endDate *time.Time) ([]stats.TagTimeBreakdown, error)
}

// StatsHandler serves stats REST endpoints. Date query parameters are
// YYYY-MM-DD and interpreted in the tracker timezone.
type StatsHandler struct {
	svc statsService
	loc *time.Location
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, loc *time.Location, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, loc: loc, log: logger.With("handler", "stats")}
}

type tagBreakdownResponse struct {
	TagID       string `json:"tagId"`
	Label       string `json:"label"`
	HexColor    string `json:"hexColor"`
	TimeSeconds int64  `json:"timeSeconds"`
}

type timelineEntryResponse struct {
	ID              string     `json:"id"`
	Purpose         string     `json:"purpose"`
	Mode            string     `json:"mode"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationSeconds int64      `json:"durationSeconds"`
	Completed       *bool      `json:"completed,omitempty"`
	TagLabel        *string    `json:"tagLabel,omitempty"`
	TodoTitle       *string    `json:"todoTitle,omitempty"`
}

type dailyStatsResponse struct {
	Date             string                  `json:"date"`
	FocusTimeSeconds int64                   `json:"focusTimeSeconds"`
	BreakTimeSeconds int64                   `json:"breakTimeSeconds"`
	SessionCount     int                     `json:"sessionCount"`
	TagBreakdown     []tagBreakdownResponse  `json:"tagBreakdown"`
	Timeline         []timelineEntryResponse `json:"timeline"`
}

type periodStatsResponse struct {
	StartDate                     string  `json:"startDate"`
	EndDate                       string  `json:"endDate"`
	TotalFocusTimeSeconds         int64   `json:"totalFocusTimeSeconds"`
	TotalSessions                 int64   `json:"totalSessions"`
	ActiveDays                    int64   `json:"activeDays"`
	AverageSessionDurationSeconds float64 `json:"averageSessionDurationSeconds"`
	BestDay                       *string `json:"bestDay,omitempty"`
	BestDayFocusTimeSeconds       int64   `json:"bestDayFocusTimeSeconds"`
}

type lifetimeStatsResponse struct {
	TotalFocusTimeSeconds         int64   `json:"totalFocusTimeSeconds"`
	TotalSessions                 int64   `json:"totalSessions"`
	TotalActiveDays               int64   `json:"totalActiveDays"`
	AverageSessionDurationSeconds float64 `json:"averageSessionDurationSeconds"`
}

// Daily handles GET /stats/daily. The date parameter defaults to today.
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if v := r.URL.Query().Get("date"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, h.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date parameter, want YYYY-MM-DD")
			return
		}
		date = parsed
	}

	daily, err := h.svc.GetDailyStats(r.Context(), date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := dailyStatsResponse{
		Date:             daily.Date.Format(dateLayout),
		FocusTimeSeconds: daily.FocusTimeSeconds,
		BreakTimeSeconds: daily.BreakTimeSeconds,
		SessionCount:     daily.SessionCount,
		TagBreakdown:     toTagBreakdownResponses(daily.TagBreakdown),
		Timeline:         make([]timelineEntryResponse, 0, len(daily.Timeline)),
	}
	for _, e := range daily.Timeline {
		resp.Timeline = append(resp.Timeline, timelineEntryResponse{
			ID:              e.ID.String(),
			Purpose:         e.Purpose.String(),
			Mode:            e.Mode.String(),
			StartedAt:       e.StartedAt,
			EndedAt:         e.EndedAt,
			DurationSeconds: e.DurationSeconds,
			Completed:       e.Completed,
			TagLabel:        e.TagLabel,
			TodoTitle:       e.TodoTitle,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Period handles GET /stats/period. Both start and end are required and
// inclusive.
func (h *StatsHandler) Period(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := time.ParseInLocation(dateLayout, q.Get("start"), h.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start parameter, want YYYY-MM-DD")
		return
	}
	end, err := time.ParseInLocation(dateLayout, q.Get("end"), h.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end parameter, want YYYY-MM-DD")
		return
	}

	period, err := h.svc.GetPeriodStats(r.Context(), start, end)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, periodStatsResponse{
		StartDate:                     period.StartDate.Format(dateLayout),
		EndDate:                       period.EndDate.Format(dateLayout),
		TotalFocusTimeSeconds:         period.TotalFocusTimeSeconds,
		TotalSessions:                 period.TotalSessions,
		ActiveDays:                    period.ActiveDays,
		AverageSessionDurationSeconds: period.AverageSessionDurationSeconds,
		BestDay:                       dateString(period.BestDay),
		BestDayFocusTimeSeconds:       period.BestDayFocusTimeSeconds,
	})
}

// Lifetime handles GET /stats/lifetime.
func (h *StatsHandler) Lifetime(w http.ResponseWriter, r *http.Request) {
	lifetime, err := h.svc.GetLifetimeStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lifetimeStatsResponse{
		TotalFocusTimeSeconds:         lifetime.TotalFocusTimeSeconds,
		TotalSessions:                 lifetime.TotalSessions,
		TotalActiveDays:               lifetime.TotalActiveDays,
		AverageSessionDurationSeconds: lifetime.AverageSessionDurationSeconds,
	})
}

// Tags handles GET /stats/tags. start and end are optional; omitting both
// returns the lifetime breakdown.
func (h *StatsHandler) Tags(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var start, end *time.Time
	if v := q.Get("start"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, h.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid start parameter, want YYYY-MM-DD")
			return
		}
		start = &parsed
	}
	if v := q.Get("end"); v != "" {
		parsed, err := time.ParseInLocation(dateLayout, v, h.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid end parameter, want YYYY-MM-DD")
			return
		}
		end = &parsed
	}

	breakdown, err := h.svc.GetTagBreakdown(r.Context(), start, end)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagBreakdownResponses(breakdown))
}

func toTagBreakdownResponses(breakdown []stats.TagTimeBreakdown) []tagBreakdownResponse {
	resp := make([]tagBreakdownResponse, 0, len(breakdown))
	for _, b := range breakdown {
		resp = append(resp, tagBreakdownResponse{
			TagID:       b.TagID.String(),
			Label:       b.Label,
			HexColor:    b.HexColor,
			TimeSeconds: b.TimeSeconds,
		})
	}
	return resp
}
