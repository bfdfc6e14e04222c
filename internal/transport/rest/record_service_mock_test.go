package rest

import (
	"context"
	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/record"
	"github.com/google/uuid"
	"sync"
)

var _ recordService = &recordServiceMock{}

type recordServiceMock struct {
	AddFunc    func(ctx context.Context, kind domain.RecordKind, input record.AddInput) (*domain.CommentRecord, error)
	RemoveFunc func(ctx context.Context, kind domain.RecordKind, rawCounterID string, recordID uuid.UUID) error
	UpdateFunc func(ctx context.Context, recordID uuid.UUID, input record.UpdateInput) (*domain.CommentRecord, error)

	calls struct {
		Add []struct {
			Ctx   context.Context
			Kind  domain.RecordKind
			Input record.AddInput
		}
		Remove []struct {
			Ctx          context.Context
			Kind         domain.RecordKind
			RawCounterID string
			RecordID     uuid.UUID
		}
		Update []struct {
			Ctx      context.Context
			RecordID uuid.UUID
			Input    record.UpdateInput
		}
	}
	lockAdd    sync.RWMutex
	lockRemove sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *recordServiceMock) Add(ctx context.Context, kind domain.RecordKind, input record.AddInput) (*domain.CommentRecord, error) {
	if mock.AddFunc == nil {
		panic("recordServiceMock.AddFunc: method is nil but recordService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Kind  domain.RecordKind
		Input record.AddInput
	}{Ctx: ctx, Kind: kind, Input: input}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, kind, input)
}

func (mock *recordServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Kind  domain.RecordKind
	Input record.AddInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *recordServiceMock) Remove(ctx context.Context, kind domain.RecordKind, rawCounterID string, recordID uuid.UUID) error {
	if mock.RemoveFunc == nil {
		panic("recordServiceMock.RemoveFunc: method is nil but recordService.Remove was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Kind         domain.RecordKind
		RawCounterID string
		RecordID     uuid.UUID
	}{Ctx: ctx, Kind: kind, RawCounterID: rawCounterID, RecordID: recordID}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, kind, rawCounterID, recordID)
}

func (mock *recordServiceMock) RemoveCalls() []struct {
	Ctx          context.Context
	Kind         domain.RecordKind
	RawCounterID string
	RecordID     uuid.UUID
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *recordServiceMock) Update(ctx context.Context, recordID uuid.UUID, input record.UpdateInput) (*domain.CommentRecord, error) {
	if mock.UpdateFunc == nil {
		panic("recordServiceMock.UpdateFunc: method is nil but recordService.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RecordID uuid.UUID
		Input    record.UpdateInput
	}{Ctx: ctx, RecordID: recordID, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, recordID, input)
}

func (mock *recordServiceMock) UpdateCalls() []struct {
	Ctx      context.Context
	RecordID uuid.UUID
	Input    record.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
