package todo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	GetByIDFunc                  func(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error)
	ListFunc                     func(ctx context.Context, userID uuid.UUID, f domain.TodoFilter) ([]*domain.Todo, error)
	ListIncompleteByPriorityFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Todo, error)
	CreateFunc                   func(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	UpdateFunc                   func(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	DeleteFunc                   func(ctx context.Context, userID, todoID uuid.UUID) error
	CountByUserFunc              func(ctx context.Context, userID uuid.UUID) (int, int, error)

	calls struct {
		Update []struct{ Todo *domain.Todo }
		Delete []struct{ UserID, TodoID uuid.UUID }
	}
	mu sync.Mutex
}

func (mock *todoRepoMock) GetByID(ctx context.Context, todoID uuid.UUID) (*domain.Todo, error) {
	if mock.GetByIDFunc == nil {
		panic("todoRepoMock.GetByIDFunc: method is nil but todoRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, todoID)
}

func (mock *todoRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.TodoFilter) ([]*domain.Todo, error) {
	if mock.ListFunc == nil {
		panic("todoRepoMock.ListFunc: method is nil but todoRepo.List was just called")
	}
	return mock.ListFunc(ctx, userID, f)
}

func (mock *todoRepoMock) ListIncompleteByPriority(ctx context.Context, userID uuid.UUID) ([]*domain.Todo, error) {
	if mock.ListIncompleteByPriorityFunc == nil {
		panic("todoRepoMock.ListIncompleteByPriorityFunc: method is nil but todoRepo.ListIncompleteByPriority was just called")
	}
	return mock.ListIncompleteByPriorityFunc(ctx, userID)
}

func (mock *todoRepoMock) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if mock.CreateFunc == nil {
		panic("todoRepoMock.CreateFunc: method is nil but todoRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, todo)
}

func (mock *todoRepoMock) Update(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if mock.UpdateFunc == nil {
		panic("todoRepoMock.UpdateFunc: method is nil but todoRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Todo *domain.Todo }{todo})
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, todo)
}

func (mock *todoRepoMock) UpdateCalls() []struct{ Todo *domain.Todo } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Update
}

func (mock *todoRepoMock) Delete(ctx context.Context, userID, todoID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("todoRepoMock.DeleteFunc: method is nil but todoRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ UserID, TodoID uuid.UUID }{userID, todoID})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, userID, todoID)
}

func (mock *todoRepoMock) DeleteCalls() []struct{ UserID, TodoID uuid.UUID } {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Delete
}

func (mock *todoRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, int, error) {
	if mock.CountByUserFunc == nil {
		panic("todoRepoMock.CountByUserFunc: method is nil but todoRepo.CountByUser was just called")
	}
	return mock.CountByUserFunc(ctx, userID)
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
