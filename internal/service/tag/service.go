// Package tag implements the tag registry: per-user labeled categories
// shared by todos and time blocks.
package tag

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

type tagRepo interface {
	GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Delete(ctx context.Context, userID, tagID uuid.UUID) error
}

type todoCounter interface {
	CountByTagID(ctx context.Context, tagID uuid.UUID) (int, error)
}

type blockCounter interface {
	CountByTagID(ctx context.Context, tagID uuid.UUID) (int, error)
}

// Service provides tag management operations.
type Service struct {
	tags   tagRepo
	todos  todoCounter
	blocks blockCounter
	log    *slog.Logger
}

// NewService creates a new Tag service.
func NewService(log *slog.Logger, tags tagRepo, todos todoCounter, blocks blockCounter) *Service {
	return &Service{
		tags:   tags,
		todos:  todos,
		blocks: blocks,
		log:    log.With("service", "tag"),
	}
}

// getOwned loads a tag and verifies ownership. A tag owned by another user
// yields domain.ErrForbidden, a missing tag domain.ErrNotFound.
func (s *Service) getOwned(ctx context.Context, userID, tagID uuid.UUID) (*domain.Tag, error) {
	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if tag.UserID != userID {
		return nil, domain.Forbidden("tag", tagID)
	}
	return tag, nil
}
