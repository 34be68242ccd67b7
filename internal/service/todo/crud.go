package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

// ListTodos returns the caller's todos, newest first. When the filter names a
// tag, the tag must exist and belong to the caller.
func (s *Service) ListTodos(ctx context.Context, f domain.TodoFilter) ([]*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if f.TagID != nil {
		if err := s.checkTagOwned(ctx, userID, *f.TagID); err != nil {
			return nil, err
		}
	}

	return s.todos.List(ctx, userID, f)
}

// ListIncompleteByPriority returns the caller's open todos ordered by
// priority, unprioritized last.
func (s *Service) ListIncompleteByPriority(ctx context.Context) ([]*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.todos.ListIncompleteByPriority(ctx, userID)
}

// GetTodo returns one todo owned by the caller.
func (s *Service) GetTodo(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if todoID == uuid.Nil {
		return nil, domain.NewValidationError("todo_id", "required")
	}

	return s.getOwned(ctx, userID, todoID)
}

// TodoCounts summarizes a user's ledger.
type TodoCounts struct {
	Total     int
	Completed int
}

// CountTodos returns total and completed counts for the caller.
func (s *Service) CountTodos(ctx context.Context) (TodoCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return TodoCounts{}, domain.ErrUnauthorized
	}

	total, completed, err := s.todos.CountByUser(ctx, userID)
	if err != nil {
		return TodoCounts{}, fmt.Errorf("count todos: %w", err)
	}

	return TodoCounts{Total: total, Completed: completed}, nil
}

// CreateTodo creates a new todo for the caller. A referenced tag must exist
// and belong to the caller.
func (s *Service) CreateTodo(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.TagID != nil {
		if err := s.checkTagOwned(ctx, userID, *input.TagID); err != nil {
			return nil, err
		}
	}

	todo := &domain.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		TagID:       input.TagID,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		Priority:    input.Priority,
	}
	if err := todo.Validate(); err != nil {
		return nil, err
	}

	created, err := s.todos.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", created.ID.String()),
	)

	return created, nil
}

// UpdateTodo applies a partial update to a todo owned by the caller. A newly
// referenced tag must exist and belong to the caller; ClearTag removes the
// current tag reference.
func (s *Service) UpdateTodo(ctx context.Context, input UpdateTodoInput) (*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.TodoID == uuid.Nil {
		return nil, domain.NewValidationError("todo_id", "required")
	}

	todo, err := s.getOwned(ctx, userID, input.TodoID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		todo.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		todo.Description = trimOrNil(input.Description)
	}
	if input.Priority != nil {
		todo.Priority = input.Priority
	}
	switch {
	case input.ClearTag:
		todo.TagID = nil
	case input.TagID != nil:
		if err := s.checkTagOwned(ctx, userID, *input.TagID); err != nil {
			return nil, err
		}
		todo.TagID = input.TagID
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.todos.Update(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	return updated, nil
}

// ToggleTodo flips the completion flag of a todo owned by the caller.
func (s *Service) ToggleTodo(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if todoID == uuid.Nil {
		return nil, domain.NewValidationError("todo_id", "required")
	}

	todo, err := s.getOwned(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.Completed = !todo.Completed

	updated, err := s.todos.Update(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("toggle todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo toggled",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", todoID.String()),
		slog.Bool("completed", updated.Completed),
	)

	return updated, nil
}

// DeleteTodo removes a todo owned by the caller. Time blocks that referenced
// it keep their history; the reference is set to NULL by the schema.
func (s *Service) DeleteTodo(ctx context.Context, todoID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if todoID == uuid.Nil {
		return domain.NewValidationError("todo_id", "required")
	}

	if _, err := s.getOwned(ctx, userID, todoID); err != nil {
		return err
	}

	if err := s.todos.Delete(ctx, userID, todoID); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", todoID.String()),
	)

	return nil
}

// trimOrNil trims the string and returns nil when the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
