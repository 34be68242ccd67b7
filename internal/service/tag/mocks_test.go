package tag

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDFunc func(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error)
	CreateFunc  func(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	UpdateFunc  func(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	DeleteFunc  func(ctx context.Context, userID, tagID uuid.UUID) error

	calls struct {
		GetByID []struct{ TagID uuid.UUID }
		List    []struct{ UserID uuid.UUID }
		Create  []struct{ Tag *domain.Tag }
		Update  []struct{ Tag *domain.Tag }
		Delete  []struct{ UserID, TagID uuid.UUID }
	}
	mu sync.Mutex
}

func (mock *tagRepoMock) GetByID(ctx context.Context, tagID uuid.UUID) (*domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ TagID uuid.UUID }{tagID})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, tagID)
}

func (mock *tagRepoMock) List(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error) {
	if mock.ListFunc == nil {
		panic("tagRepoMock.ListFunc: method is nil but tagRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct{ UserID uuid.UUID }{userID})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *tagRepoMock) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Tag *domain.Tag }{tag})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, tag)
}

func (mock *tagRepoMock) CreateCalls() []struct{ Tag *domain.Tag } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *tagRepoMock) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if mock.UpdateFunc == nil {
		panic("tagRepoMock.UpdateFunc: method is nil but tagRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Tag *domain.Tag }{tag})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, tag)
}

func (mock *tagRepoMock) Delete(ctx context.Context, userID, tagID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ UserID, TagID uuid.UUID }{userID, tagID})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, userID, tagID)
}

func (mock *tagRepoMock) DeleteCalls() []struct{ UserID, TagID uuid.UUID } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Delete
}

var _ todoCounter = &todoCounterMock{}

type todoCounterMock struct {
	CountByTagIDFunc func(ctx context.Context, tagID uuid.UUID) (int, error)
}

func (mock *todoCounterMock) CountByTagID(ctx context.Context, tagID uuid.UUID) (int, error) {
	if mock.CountByTagIDFunc == nil {
		panic("todoCounterMock.CountByTagIDFunc: method is nil but todoCounter.CountByTagID was just called")
	}
	return mock.CountByTagIDFunc(ctx, tagID)
}

var _ blockCounter = &blockCounterMock{}

type blockCounterMock struct {
	CountByTagIDFunc func(ctx context.Context, tagID uuid.UUID) (int, error)
}

func (mock *blockCounterMock) CountByTagID(ctx context.Context, tagID uuid.UUID) (int, error) {
	if mock.CountByTagIDFunc == nil {
		panic("blockCounterMock.CountByTagIDFunc: method is nil but blockCounter.CountByTagID was just called")
	}
	return mock.CountByTagIDFunc(ctx, tagID)
}
