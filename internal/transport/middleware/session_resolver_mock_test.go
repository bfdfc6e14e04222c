package middleware

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/auth"
	"sync"
)

var _ sessionResolver = &sessionResolverMock{}

type sessionResolverMock struct {
	ResolveFunc func(ctx context.Context, token string) (*auth.Identity, error)

	calls struct {
		Resolve []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *sessionResolverMock) Resolve(ctx context.Context, token string) (*auth.Identity, error) {
	if mock.ResolveFunc == nil {
		panic("sessionResolverMock.ResolveFunc: method is nil but sessionResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, token)
}

func (mock *sessionResolverMock) ResolveCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
