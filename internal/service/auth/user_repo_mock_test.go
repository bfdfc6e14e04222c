package auth

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFunc  func(ctx context.Context, username string) (*domain.User, error)
	UsernameExistsFunc func(ctx context.Context, username string) (bool, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		UsernameExists []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockGetByUsername  sync.RWMutex
	lockUsernameExists sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
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
