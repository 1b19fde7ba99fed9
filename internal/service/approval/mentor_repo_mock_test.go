package approval

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

var _ mentorRepo = &mentorRepoMock{}

type mentorRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.MentorRecord, error)
	ListPendingFunc  func(ctx context.Context) ([]*domain.MentorRecord, []uuid.UUID, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListPending []struct {
			Ctx context.Context
		}
		UpdateStatus []struct {
			Ctx             context.Context
			ID              uuid.UUID
			Status          domain.ApprovalStatus
			Attrs           domain.AttributeBag
			ExpectedVersion int
		}
	}
	lockGetByID      sync.RWMutex
	lockListPending  sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *mentorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.MentorRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("mentorRepoMock.GetByIDFunc: method is nil but mentorRepo.GetByID was just called")
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

func (mock *mentorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *mentorRepoMock) ListPending(ctx context.Context) ([]*domain.MentorRecord, []uuid.UUID, error) {
	if mock.ListPendingFunc == nil {
		panic("mentorRepoMock.ListPendingFunc: method is nil but mentorRepo.ListPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *mentorRepoMock) ListPendingCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *mentorRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error) {
	if mock.UpdateStatusFunc == nil {
		panic("mentorRepoMock.UpdateStatusFunc: method is nil but mentorRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		Status          domain.ApprovalStatus
		Attrs           domain.AttributeBag
		ExpectedVersion int
	}{Ctx: ctx, ID: id, Status: status, Attrs: attrs, ExpectedVersion: expectedVersion}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, attrs, expectedVersion)
}

func (mock *mentorRepoMock) UpdateStatusCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	Status          domain.ApprovalStatus
	Attrs           domain.AttributeBag
	ExpectedVersion int
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
