package user

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	UpdateFunc         func(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
	UsernameExistsFunc func(ctx context.Context, username string) (bool, error)

	calls struct {
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			Upd domain.UserUpdate
		}
		UsernameExists []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockDelete         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUsernameExists sync.RWMutex
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
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

func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Upd domain.UserUpdate
	}{Ctx: ctx, ID: id, Upd: upd}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, upd)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Upd domain.UserUpdate
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	if mock.UsernameExistsFunc == nil {
		panic("userRepoMock.UsernameExistsFunc: method is nil but userRepo.UsernameExists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUsernameExists.Lock()
	mock.calls.UsernameExists = append(mock.calls.UsernameExists, callInfo)
	mock.lockUsernameExists.Unlock()
	return mock.UsernameExistsFunc(ctx, username)
}

func (mock *userRepoMock) UsernameExistsCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUsernameExists.RLock()
	calls := mock.calls.UsernameExists
	mock.lockUsernameExists.RUnlock()
	return calls
}
