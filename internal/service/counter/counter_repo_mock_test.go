package counter

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ counterRepo = &counterRepoMock{}

type counterRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Counter) (*domain.Counter, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Counter, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Counter, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, upd domain.CounterUpdate) (*domain.Counter, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Counter
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			Upd domain.CounterUpdate
		}
	}
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockUpdate     sync.RWMutex
}

func (mock *counterRepoMock) Create(ctx context.Context, c *domain.Counter) (*domain.Counter, error) {
	if mock.CreateFunc == nil {
		panic("counterRepoMock.CreateFunc: method is nil but counterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Counter
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *counterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Counter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *counterRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("counterRepoMock.DeleteFunc: method is nil but counterRepo.Delete was just called")
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

func (mock *counterRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *counterRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Counter, error) {
	if mock.GetByIDFunc == nil {
		panic("counterRepoMock.GetByIDFunc: method is nil but counterRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *counterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *counterRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Counter, error) {
	if mock.ListByUserFunc == nil {
		panic("counterRepoMock.ListByUserFunc: method is nil but counterRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *counterRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *counterRepoMock) Update(ctx context.Context, id uuid.UUID, upd domain.CounterUpdate) (*domain.Counter, error) {
	if mock.UpdateFunc == nil {
		panic("counterRepoMock.UpdateFunc: method is nil but counterRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Upd domain.CounterUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd)
}

func (mock *counterRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Upd domain.CounterUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
