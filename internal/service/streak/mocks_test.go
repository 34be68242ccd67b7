package streak

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ streakRepo = &streakRepoMock{}

type streakRepoMock struct {
	GetByUserIDFunc          func(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error)
	GetByUserIDForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error)
	CreateFunc               func(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error)
	UpdateFunc               func(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error)

	calls struct {
		Create []struct{ Streak *domain.UserStreak }
		Update []struct{ Streak *domain.UserStreak }
	}
	mu sync.Mutex
}

func (mock *streakRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	if mock.GetByUserIDFunc == nil {
		panic("streakRepoMock.GetByUserIDFunc: method is nil but streakRepo.GetByUserID was just called")
	}
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *streakRepoMock) GetByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	if mock.GetByUserIDForUpdateFunc == nil {
		panic("streakRepoMock.GetByUserIDForUpdateFunc: method is nil but streakRepo.GetByUserIDForUpdate was just called")
	}
	return mock.GetByUserIDForUpdateFunc(ctx, userID)
}

func (mock *streakRepoMock) Create(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error) {
	if mock.CreateFunc == nil {
		panic("streakRepoMock.CreateFunc: method is nil but streakRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Streak *domain.UserStreak }{streak})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, streak)
}

func (mock *streakRepoMock) CreateCalls() []struct{ Streak *domain.UserStreak } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *streakRepoMock) Update(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error) {
	if mock.UpdateFunc == nil {
		panic("streakRepoMock.UpdateFunc: method is nil but streakRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Streak *domain.UserStreak }{streak})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, streak)
}

func (mock *streakRepoMock) UpdateCalls() []struct{ Streak *domain.UserStreak } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Update
}
