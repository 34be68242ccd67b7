package settings

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	CreateFunc      func(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)
	UpdateFunc      func(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		Create []struct{ Settings *domain.UserSettings }
		Update []struct{ Settings *domain.UserSettings }
	}
	mu sync.Mutex
}

func (mock *settingsRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if mock.GetByUserIDFunc == nil {
		panic("settingsRepoMock.GetByUserIDFunc: method is nil but settingsRepo.GetByUserID was just called")
	}
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *settingsRepoMock) Create(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	if mock.CreateFunc == nil {
		panic("settingsRepoMock.CreateFunc: method is nil but settingsRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Settings *domain.UserSettings }{settings})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, settings)
}

func (mock *settingsRepoMock) CreateCalls() []struct{ Settings *domain.UserSettings } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *settingsRepoMock) Update(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error) {
	if mock.UpdateFunc == nil {
		panic("settingsRepoMock.UpdateFunc: method is nil but settingsRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Settings *domain.UserSettings }{settings})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, settings)
}

func (mock *settingsRepoMock) UpdateCalls() []struct{ Settings *domain.UserSettings } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Update
}
