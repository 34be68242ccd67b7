package tag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

// ListTags returns the caller's tags ordered by label.
func (s *Service) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.tags.List(ctx, userID)
}

// GetTag returns one tag owned by the caller.
func (s *Service) GetTag(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if tagID == uuid.Nil {
		return nil, domain.NewValidationError("tag_id", "required")
	}

	return s.getOwned(ctx, userID, tagID)
}

// CreateTag creates a new tag for the caller. A duplicate label for the same
// user comes back as domain.ErrAlreadyExists from the unique constraint.
func (s *Service) CreateTag(ctx context.Context, input CreateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	tag := &domain.Tag{
		ID:       uuid.New(),
		UserID:   userID,
		Label:    strings.TrimSpace(input.Label),
		HexColor: normalizeColor(input.HexColor),
	}
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	created, err := s.tags.Create(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag created",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", created.ID.String()),
		slog.String("label", created.Label),
	)

	return created, nil
}

// UpdateTag rewrites label and color of a tag owned by the caller.
func (s *Service) UpdateTag(ctx context.Context, input UpdateTagInput) (*domain.Tag, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if input.TagID == uuid.Nil {
		return nil, domain.NewValidationError("tag_id", "required")
	}

	tag, err := s.getOwned(ctx, userID, input.TagID)
	if err != nil {
		return nil, err
	}

	tag.Label = strings.TrimSpace(input.Label)
	tag.HexColor = normalizeColor(input.HexColor)
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.tags.Update(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}

	return updated, nil
}

// DeleteTag removes a tag owned by the caller. Deletion is refused while any
// todo or time block still references the tag.
func (s *Service) DeleteTag(ctx context.Context, tagID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if tagID == uuid.Nil {
		return domain.NewValidationError("tag_id", "required")
	}

	if _, err := s.getOwned(ctx, userID, tagID); err != nil {
		return err
	}

	todoCount, err := s.todos.CountByTagID(ctx, tagID)
	if err != nil {
		return fmt.Errorf("count todos for tag: %w", err)
	}
	if todoCount > 0 {
		return domain.Conflict(fmt.Sprintf("tag is used by %d todo(s)", todoCount))
	}

	blockCount, err := s.blocks.CountByTagID(ctx, tagID)
	if err != nil {
		return fmt.Errorf("count time blocks for tag: %w", err)
	}
	if blockCount > 0 {
		return domain.Conflict(fmt.Sprintf("tag is used by %d time block(s)", blockCount))
	}

	if err := s.tags.Delete(ctx, userID, tagID); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}

	s.log.InfoContext(ctx, "tag deleted",
		slog.String("user_id", userID.String()),
		slog.String("tag_id", tagID.String()),
	)

	return nil
}

// IsTagInUse reports whether any todo or time block references the tag.
func (s *Service) IsTagInUse(ctx context.Context, tagID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}
	if tagID == uuid.Nil {
		return false, domain.NewValidationError("tag_id", "required")
	}

	if _, err := s.getOwned(ctx, userID, tagID); err != nil {
		return false, err
	}

	todoCount, err := s.todos.CountByTagID(ctx, tagID)
	if err != nil {
		return false, fmt.Errorf("count todos for tag: %w", err)
	}
	if todoCount > 0 {
		return true, nil
	}

	blockCount, err := s.blocks.CountByTagID(ctx, tagID)
	if err != nil {
		return false, fmt.Errorf("count time blocks for tag: %w", err)
	}

	return blockCount > 0, nil
}
