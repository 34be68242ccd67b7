package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atinroy/focusflow-backend/internal/domain"
)

var _ statsRepo = &statsRepoMock{}

type statsRepoMock struct {
	ListWithRefsFunc      func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.BlockWithRefs, error)
	AggregateFocusFunc    func(ctx context.Context, userID uuid.UUID, tz string, from, to *time.Time) (domain.FocusAggregate, error)
	FocusSecondsByDayFunc func(ctx context.Context, userID uuid.UUID, tz string, from, to time.Time) ([]domain.DayFocus, error)
	FocusSecondsByTagFunc func(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.TagFocus, error)
}

func (mock *statsRepoMock) ListWithRefs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.BlockWithRefs, error) {
	if mock.ListWithRefsFunc == nil {
		panic("statsRepoMock.ListWithRefsFunc: method is nil but statsRepo.ListWithRefs was just called")
	}
	return mock.ListWithRefsFunc(ctx, userID, from, to)
}

func (mock *statsRepoMock) AggregateFocus(ctx context.Context, userID uuid.UUID, tz string, from, to *time.Time) (domain.FocusAggregate, error) {
	if mock.AggregateFocusFunc == nil {
		panic("statsRepoMock.AggregateFocusFunc: method is nil but statsRepo.AggregateFocus was just called")
	}
	return mock.AggregateFocusFunc(ctx, userID, tz, from, to)
}

func (mock *statsRepoMock) FocusSecondsByDay(ctx context.Context, userID uuid.UUID, tz string, from, to time.Time) ([]domain.DayFocus, error) {
	if mock.FocusSecondsByDayFunc == nil {
		panic("statsRepoMock.FocusSecondsByDayFunc: method is nil but statsRepo.FocusSecondsByDay was just called")
	}
	return mock.FocusSecondsByDayFunc(ctx, userID, tz, from, to)
}

func (mock *statsRepoMock) FocusSecondsByTag(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.TagFocus, error) {
	if mock.FocusSecondsByTagFunc == nil {
		panic("statsRepoMock.FocusSecondsByTagFunc: method is nil but statsRepo.FocusSecondsByTag was just called")
	}
	return mock.FocusSecondsByTagFunc(ctx, userID, from, to)
}
