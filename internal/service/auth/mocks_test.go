package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		Create []struct{ User *domain.User }
	}
	mu sync.Mutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{user})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	CreateFunc func(ctx context.Context, settings *domain.UserSettings) (*domain.UserSettings, error)

	calls struct {
		Create []struct{ Settings *domain.UserSettings }
	}
	mu sync.Mutex
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

var _ streakRepo = &streakRepoMock{}

type streakRepoMock struct {
	CreateFunc func(ctx context.Context, streak *domain.UserStreak) (*domain.UserStreak, error)

	calls struct {
		Create []struct{ Streak *domain.UserStreak }
	}
	mu sync.Mutex
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

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	return mock.GenerateAccessTokenFunc(userID)
}
