package auth

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc   func(raw string) (string, error)
	VerifyFunc func(raw string, hash string) bool

	calls struct {
		Hash []struct {
			Raw string
		}
		Verify []struct {
			Raw  string
			Hash string
		}
	}
	lockHash   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *passwordHasherMock) Hash(raw string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct {
		Raw string
	}{Raw: raw}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(raw)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Raw string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

func (mock *passwordHasherMock) Verify(raw string, hash string) bool {
	if mock.VerifyFunc == nil {
		panic("passwordHasherMock.VerifyFunc: method is nil but passwordHasher.Verify was just called")
	}
	callInfo := struct {
		Raw  string
		Hash string
	}{Raw: raw, Hash: hash}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(raw, hash)
}

func (mock *passwordHasherMock) VerifyCalls() []struct {
	Raw  string
	Hash string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
