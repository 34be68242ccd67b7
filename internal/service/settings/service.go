// Package settings implements user preference management. Settings are
// created with defaults at registration; updates are partial merges.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
	"github.com/atinroy/focusflow-backend/pkg/ctxutil"
)

type settingsRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	Create(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)
	Update(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)
}

// Service provides settings reads and partial updates.
type Service struct {
	settings settingsRepo
	log      *slog.Logger
}

// NewService creates a new Settings service.
func NewService(log *slog.Logger, settings settingsRepo) *Service {
	return &Service{
		settings: settings,
		log:      log.With("service", "settings"),
	}
}

// GetSettings returns the caller's settings. A user without a row gets one
// created with defaults, so the read never fails on a fresh account.
func (s *Service) GetSettings(ctx context.Context) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get settings: %w", err)
		}
		settings, err = s.settings.Create(ctx, domain.DefaultSettings(userID))
		if err != nil {
			return nil, fmt.Errorf("create default settings: %w", err)
		}
	}

	return settings, nil
}

// UpdateSettings applies a partial update to the caller's settings. Nil
// fields keep their current values; the merged result is validated as a
// whole before persisting.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.UserSettings, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	input.applyTo(settings)

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.settings.Update(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", userID.String()),
	)

	return updated, nil
}
