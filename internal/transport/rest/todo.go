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
	"github.com/atinroy/focusflow-backend/internal/service/todo"
)

// todoService defines the minimal interface needed by TodoHandler.
type todoService interface {
	ListTodos(ctx context.Context, f domain.TodoFilter) ([]*domain.Todo, error)
	ListIncompleteByPriority(ctx context.Context) ([]*domain.Todo, error)
	GetTodo(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
	CountTodos(ctx context.Context) (todo.TodoCounts, error)
	CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, input todo.UpdateTodoInput) (*domain.Todo, error)
	ToggleTodo(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, todoID uuid.UUID) error
}

// TodoHandler serves todo REST endpoints.
type TodoHandler struct {
	svc todoService
	log *slog.Logger
}

// NewTodoHandler creates a TodoHandler.
func NewTodoHandler(svc todoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: logger.With("handler", "todo")}
}

type createTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	TagID       *string `json:"tagId"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	TagID       *string `json:"tagId"`
	ClearTag    bool    `json:"clearTag"`
}

type todoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Priority    *int      `json:"priority,omitempty"`
	TagID       *string   `json:"tagId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type todoCountsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// List handles GET /todos.
// Query parameters: completed=true|false, tagId=<uuid>, sort=priority.
// sort=priority returns incomplete todos ordered by priority and ignores
// the other filters.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("sort") == "priority" {
		todos, err := h.svc.ListIncompleteByPriority(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toTodoResponses(todos))
		return
	}

	var f domain.TodoFilter
	if v := q.Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid completed parameter")
			return
		}
		f.Completed = &completed
	}
	if v := q.Get("tagId"); v != "" {
		tagID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid tagId parameter")
			return
		}
		f.TagID = &tagID
	}

	todos, err := h.svc.ListTodos(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponses(todos))
}

// Counts handles GET /todos/counts.
func (h *TodoHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CountTodos(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, todoCountsResponse{
		Total:     counts.Total,
		Completed: counts.Completed,
	})
}

// Get handles GET /todos/{id}.
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.GetTodo(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(t))
}

// Create handles POST /todos.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tagID, ok := parseOptionalUUID(w, req.TagID, "tagId")
	if !ok {
		return
	}

	t, err := h.svc.CreateTodo(r.Context(), todo.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		TagID:       tagID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTodoResponse(t))
}

// Update handles PATCH /todos/{id}. Absent fields keep their current values.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tagID, ok := parseOptionalUUID(w, req.TagID, "tagId")
	if !ok {
		return
	}

	t, err := h.svc.UpdateTodo(r.Context(), todo.UpdateTodoInput{
		TodoID:      id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		TagID:       tagID,
		ClearTag:    req.ClearTag,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(t))
}

// Toggle handles POST /todos/{id}/toggle.
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.ToggleTodo(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTodoResponse(t))
}

// Delete handles DELETE /todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTodo(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTodoResponses(todos []*domain.Todo) []todoResponse {
	resp := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodoResponse(t))
	}
	return resp
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		TagID:       uuidPtrString(t.TagID),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// parseOptionalUUID parses an optional UUID string from a request body. On
// failure it writes a 400 naming the field and returns false.
func parseOptionalUUID(w http.ResponseWriter, s *string, field string) (*uuid.UUID, bool) {
	if s == nil {
		return nil, true
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+field)
		return nil, false
	}
	return &id, true
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
