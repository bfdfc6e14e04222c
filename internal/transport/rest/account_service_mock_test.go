package rest

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/user"
	"sync"
)

var _ accountService = &accountServiceMock{}

type accountServiceMock struct {
	UpdateFunc            func(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	DeleteFunc            func(ctx context.Context) error
	UsernameAvailableFunc func(ctx context.Context, username string) (bool, error)

	calls struct {
		Update []struct {
			Ctx   context.Context
			Input user.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
		}
		UsernameAvailable []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockUsernameAvailable sync.RWMutex
}

func (mock *accountServiceMock) Update(ctx context.Context, input user.UpdateInput) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("accountServiceMock.UpdateFunc: method is nil but accountService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *accountServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input user.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *accountServiceMock) Delete(ctx context.Context) error {
	if mock.DeleteFunc == nil {
		panic("accountServiceMock.DeleteFunc: method is nil but accountService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx)
}

func (mock *accountServiceMock) DeleteCalls() []struct {
	Ctx context.Context
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *accountServiceMock) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	if mock.UsernameAvailableFunc == nil {
		panic("accountServiceMock.UsernameAvailableFunc: method is nil but accountService.UsernameAvailable was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUsernameAvailable.Lock()
	mock.calls.UsernameAvailable = append(mock.calls.UsernameAvailable, callInfo)
	mock.lockUsernameAvailable.Unlock()
	return mock.UsernameAvailableFunc(ctx, username)
}

func (mock *accountServiceMock) UsernameAvailableCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUsernameAvailable.RLock()
	calls := mock.calls.UsernameAvailable
	mock.lockUsernameAvailable.RUnlock()
	return calls
}
