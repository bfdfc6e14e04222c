package rest

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/counter"
	"github.com/google/uuid"
	"sync"
)

var _ counterService = &counterServiceMock{}

type counterServiceMock struct {
	CreateFunc func(ctx context.Context, input counter.CreateInput) (*domain.CounterAggregate, error)
	ListFunc   func(ctx context.Context) ([]domain.CounterAggregate, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.CounterAggregate, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input counter.UpdateInput) (*domain.CounterAggregate, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input counter.CreateInput
		}
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input counter.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *counterServiceMock) Create(ctx context.Context, input counter.CreateInput) (*domain.CounterAggregate, error) {
	if mock.CreateFunc == nil {
		panic("counterServiceMock.CreateFunc: method is nil but counterService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input counter.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *counterServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input counter.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *counterServiceMock) List(ctx context.Context) ([]domain.CounterAggregate, error) {
	if mock.ListFunc == nil {
		panic("counterServiceMock.ListFunc: method is nil but counterService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *counterServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *counterServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.CounterAggregate, error) {
	if mock.GetFunc == nil {
		panic("counterServiceMock.GetFunc: method is nil but counterService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *counterServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *counterServiceMock) Update(ctx context.Context, id uuid.UUID, input counter.UpdateInput) (*domain.CounterAggregate, error) {
	if mock.UpdateFunc == nil {
		panic("counterServiceMock.UpdateFunc: method is nil but counterService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input counter.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *counterServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input counter.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *counterServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("counterServiceMock.DeleteFunc: method is nil but counterService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *counterServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
