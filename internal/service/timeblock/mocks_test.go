package timeblock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ blockRepo = &blockRepoMock{}

type blockRepoMock struct {
	GetByIDFunc   func(ctx context.Context, blockID uuid.UUID) (*domain.TimeBlock, error)
	GetActiveFunc func(ctx context.Context, userID uuid.UUID) (*domain.TimeBlock, error)
	ListFunc      func(ctx context.Context, userID uuid.UUID, f domain.TimeBlockFilter) ([]*domain.TimeBlock, error)
	CreateFunc    func(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	EndFunc       func(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	DeleteFunc    func(ctx context.Context, userID, blockID uuid.UUID) error

	calls struct {
		Create []struct{ Block *domain.TimeBlock }
		End    []struct{ Block *domain.TimeBlock }
	}
	mu sync.Mutex
}

func (mock *blockRepoMock) GetByID(ctx context.Context, blockID uuid.UUID) (*domain.TimeBlock, error) {
	if mock.GetByIDFunc == nil {
		panic("blockRepoMock.GetByIDFunc: method is nil but blockRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, blockID)
}

func (mock *blockRepoMock) GetActive(ctx context.Context, userID uuid.UUID) (*domain.TimeBlock, error) {
	if mock.GetActiveFunc == nil {
		panic("blockRepoMock.GetActiveFunc: method is nil but blockRepo.GetActive was just called")
	}
	return mock.GetActiveFunc(ctx, userID)
}

func (mock *blockRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.TimeBlockFilter) ([]*domain.TimeBlock, error) {
	if mock.ListFunc == nil {
		panic("blockRepoMock.ListFunc: method is nil but blockRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, f)
}

func (mock *blockRepoMock) Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	if mock.CreateFunc == nil {
		panic("blockRepoMock.CreateFunc: method is nil but blockRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Block *domain.TimeBlock }{block})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, block)
}

func (mock *blockRepoMock) CreateCalls() []struct{ Block *domain.TimeBlock } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *blockRepoMock) End(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	if mock.EndFunc == nil {
		panic("blockRepoMock.EndFunc: method is nil but blockRepo.End was just called")
	}
	mock.mu.Lock()
	mock.calls.End = append(mock.calls.End, struct{ Block *domain.TimeBlock }{block})
	mock.mu.Unlock()
	return mock.EndFunc(ctx, block)
}

func (mock *blockRepoMock) EndCalls() []struct{ Block *domain.TimeBlock } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.End
}

func (mock *blockRepoMock) Delete(ctx context.Context, userID, blockID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("blockRepoMock.DeleteFunc: method is nil but blockRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, blockID)
}

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	GetByIDFunc func(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
}

func (mock *todoRepoMock) GetByID(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error) {
	if mock.GetByIDFunc == nil {
		panic("todoRepoMock.GetByIDFunc: method is nil but todoRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, todoID)
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDFunc func(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
}

func (mock *tagRepoMock) GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, tagID)
}

var _ streakRecorder = &streakRecorderMock{}

type streakRecorderMock struct {
	RecordActivityFunc func(ctx context.Context, userID uuid.UUID, date time.Time) error

	calls struct {
		RecordActivity []struct {
			UserID uuid.UUID
			Date   time.Time
		}
	}
	mu sync.Mutex
}

func (mock *streakRecorderMock) RecordActivity(ctx context.Context, userID uuid.UUID, date time.Time) error {
	if mock.RecordActivityFunc == nil {
		panic("streakRecorderMock.RecordActivityFunc: method is nil but streakRecorder.RecordActivity was just called")
	}
	mock.mu.Lock()
	mock.calls.RecordActivity = append(mock.calls.RecordActivity, struct {
		UserID uuid.UUID
		Date   time.Time
	}{userID, date})
	mock.mu.Unlock()
	return mock.RecordActivityFunc(ctx, userID, date)
}

func (mock *streakRecorderMock) RecordActivityCalls() []struct {
	UserID uuid.UUID
	Date   time.Time
} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.RecordActivity
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
