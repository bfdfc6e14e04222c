package auth

import (
	"github.com/google/uuid"
	"sync"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc func(userID uuid.UUID) (string, error)
	ParseFunc func(token string) (uuid.UUID, error)

	calls struct {
		Issue []struct {
			UserID uuid.UUID
		}
		Parse []struct {
			Token string
		}
	}
	lockIssue sync.RWMutex
	lockParse sync.RWMutex
}

func (mock *tokenManagerMock) Issue(userID uuid.UUID) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Parse(token string) (uuid.UUID, error) {
	if mock.ParseFunc == nil {
		panic("tokenManagerMock.ParseFunc: method is nil but tokenManager.Parse was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockParse.Lock()
	mock.calls.Parse = append(mock.calls.Parse, callInfo)
	mock.lockParse.Unlock()
	return mock.ParseFunc(token)
}

func (mock *tokenManagerMock) ParseCalls() []struct {
	Token string
} {
	mock.lockParse.RLock()
	calls := mock.calls.Parse
	mock.lockParse.RUnlock()
	return calls
}
