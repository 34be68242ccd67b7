package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/internal/service/timeblock"
)

const dateLayout = "2006-01-02"

// blockService defines the minimal interface needed by BlockHandler.
type blockService interface {
	StartBlock(ctx context.Context, input timeblock.StartBlockInput) (*domain.TimeBlock, error)
	EndBlock(ctx context.Context, input timeblock.EndBlockInput) (*domain.TimeBlock, error)
	GetActiveBlock(ctx context.Context) (*domain.TimeBlock, error)
	GetBlock(ctx context.Context, blockID uuid.UUID) (*domain.TimeBlock, error)
	ListBlocks(ctx context.Context, f domain.TimeBlockFilter) ([]*domain.TimeBlock, error)
	ListBlocksForDate(ctx context.Context, date time.Time) ([]*domain.TimeBlock, error)
	DeleteBlock(ctx context.Context, blockID uuid.UUID) error
}

// BlockHandler serves time block REST endpoints. Date-only query parameters
// are interpreted in the tracker timezone.
type BlockHandler struct {
	svc blockService
	loc *time.Location
	log *slog.Logger
}

// NewBlockHandler creates a BlockHandler.
func NewBlockHandler(svc blockService, loc *time.Location, logger *slog.Logger) *BlockHandler {
	return &BlockHandler{svc: svc, loc: loc, log: logger.With("handler", "timeblock")}
}

type startBlockRequest struct {
	Purpose                string  `json:"purpose"`
	Mode                   string  `json:"mode"`
	PlannedDurationSeconds *int64  `json:"plannedDurationSeconds"`
	TodoID                 *string `json:"todoId"`
	TagID                  *string `json:"tagId"`
	Notes                  *string `json:"notes"`
}

type endBlockRequest struct {
	Notes *string `json:"notes"`
}

// blockResponse carries the stored block plus the read-time projections
// (active, currentDurationSeconds, remainingSeconds, hasOverrun), computed
// against the clock at response-construction time.
type blockResponse struct {
	ID                     string     `json:"id"`
	Purpose                string     `json:"purpose"`
	Mode                   string     `json:"mode"`
	StartedAt              time.Time  `json:"startedAt"`
	EndedAt                *time.Time `json:"endedAt,omitempty"`
	PlannedDurationSeconds *int64     `json:"plannedDurationSeconds,omitempty"`
	ActualDurationSeconds  *int64     `json:"actualDurationSeconds,omitempty"`
	Completed              *bool      `json:"completed,omitempty"`
	TodoID                 *string    `json:"todoId,omitempty"`
	TagID                  *string    `json:"tagId,omitempty"`
	Notes                  *string    `json:"notes,omitempty"`
	Active                 bool       `json:"active"`
	CurrentDurationSeconds int64      `json:"currentDurationSeconds"`
	RemainingSeconds       *int64     `json:"remainingSeconds,omitempty"`
	HasOverrun             bool       `json:"hasOverrun"`
	CreatedAt              time.Time  `json:"createdAt"`
}

// Start handles POST /blocks.
func (h *BlockHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	todoID, ok := parseOptionalUUID(w, req.TodoID, "todoId")
	if !ok {
		return
	}
	tagID, ok := parseOptionalUUID(w, req.TagID, "tagId")
	if !ok {
		return
	}

	block, err := h.svc.StartBlock(r.Context(), timeblock.StartBlockInput{
		Purpose:                domain.BlockPurpose(req.Purpose),
		Mode:                   domain.BlockMode(req.Mode),
		PlannedDurationSeconds: req.PlannedDurationSeconds,
		TodoID:                 todoID,
		TagID:                  tagID,
		Notes:                  req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBlockResponse(block))
}

// End handles POST /blocks/{id}/end.
func (h *BlockHandler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req endBlockRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	block, err := h.svc.EndBlock(r.Context(), timeblock.EndBlockInput{
		BlockID: id,
		Notes:   req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBlockResponse(block))
}

// Active handles GET /blocks/active. Responds 404 when no block is running.
func (h *BlockHandler) Active(w http.ResponseWriter, r *http.Request) {
	block, err := h.svc.GetActiveBlock(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBlockResponse(block))
}

// Get handles GET /blocks/{id}.
func (h *BlockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	block, err := h.svc.GetBlock(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBlockResponse(block))
}

// List handles GET /blocks.
// Query parameters: date=YYYY-MM-DD for a single calendar day, or any of
// from/to (RFC 3339), purpose, tagId, todoId, limit, offset. date wins over
// the range parameters.
func (h *BlockHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if v := q.Get("date"); v != "" {
		date, err := time.ParseInLocation(dateLayout, v, h.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date parameter, want YYYY-MM-DD")
			return
		}

		blocks, err := h.svc.ListBlocksForDate(r.Context(), date)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toBlockResponses(blocks))
		return
	}

	f, ok := h.parseBlockFilter(w, r)
	if !ok {
		return
	}

	blocks, err := h.svc.ListBlocks(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBlockResponses(blocks))
}

// Delete handles DELETE /blocks/{id}.
func (h *BlockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteBlock(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlockHandler) parseBlockFilter(w http.ResponseWriter, r *http.Request) (domain.TimeBlockFilter, bool) {
	var f domain.TimeBlockFilter
	q := r.URL.Query()

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from parameter, want RFC 3339")
			return f, false
		}
		f.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to parameter, want RFC 3339")
			return f, false
		}
		f.To = &to
	}
	if v := q.Get("purpose"); v != "" {
		purpose := domain.BlockPurpose(v)
		if !purpose.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid purpose parameter")
			return f, false
		}
		f.Purpose = &purpose
	}
	if v := q.Get("tagId"); v != "" {
		tagID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid tagId parameter")
			return f, false
		}
		f.TagID = &tagID
	}
	if v := q.Get("todoId"); v != "" {
		todoID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid todoId parameter")
			return f, false
		}
		f.TodoID = &todoID
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return f, false
		}
		f.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset parameter")
			return f, false
		}
		f.Offset = offset
	}

	return f, true
}

func toBlockResponses(blocks []*domain.TimeBlock) []blockResponse {
	now := time.Now()
	resp := make([]blockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, blockResponseAt(b, now))
	}
	return resp
}

func toBlockResponse(b *domain.TimeBlock) blockResponse {
	return blockResponseAt(b, time.Now())
}

func blockResponseAt(b *domain.TimeBlock, now time.Time) blockResponse {
	return blockResponse{
		ID:                     b.ID.String(),
		Purpose:                b.Purpose.String(),
		Mode:                   b.Mode.String(),
		StartedAt:              b.StartedAt,
		EndedAt:                b.EndedAt,
		PlannedDurationSeconds: b.PlannedDurationSeconds,
		ActualDurationSeconds:  b.ActualDurationSeconds,
		Completed:              b.Completed,
		TodoID:                 uuidPtrString(b.TodoID),
		TagID:                  uuidPtrString(b.TagID),
		Notes:                  b.Notes,
		Active:                 b.IsActive(),
		CurrentDurationSeconds: b.CurrentDurationSeconds(now),
		RemainingSeconds:       b.RemainingSeconds(now),
		HasOverrun:             b.HasOverrun(now),
		CreatedAt:              b.CreatedAt,
	}
}
