// Package todo implements the todo ledger: the user's task list, optionally
// categorized by tags and linked to time blocks.
package todo

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

type todoRepo interface {
	GetByID(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TodoFilter) ([]*domain.Todo, error)
	ListIncompleteByPriority(ctx context.Context, userID uuid.UUID) ([]*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	Delete(ctx context.Context, userID, todoID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (total, completed int, err error)
}

type tagRepo interface {
	GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
}

// Service provides todo management operations.
type Service struct {
	todos todoRepo
	tags  tagRepo
	log   *slog.Logger
}

// NewService creates a new Todo service.
func NewService(log *slog.Logger, todos todoRepo, tags tagRepo) *Service {
	return &Service{
		todos: todos,
		tags:  tags,
		log:   log.With("service", "todo"),
	}
}

// getOwned loads a todo and verifies ownership. A todo owned by another user
// yields domain.ErrForbidden, a missing todo domain.ErrNotFound.
func (s *Service) getOwned(ctx context.Context, userID, todoID uuid.UUID) (*domain.Todo, error) {
	todo, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo.UserID != userID {
		return nil, domain.Forbidden("todo", todoID)
	}
	return todo, nil
}

// checkTagOwned verifies the tag exists and belongs to the user.
func (s *Service) checkTagOwned(ctx context.Context, userID, tagID uuid.UUID) error {
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag.UserID != userID {
		return domain.Forbidden("tag", tagID)
	}
	return nil
}
