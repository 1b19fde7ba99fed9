package onboarding

import (
	"context"
	"sync"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

var _ mentorRepo = &mentorRepoMock{}

type mentorRepoMock struct {
	UpsertFunc func(ctx context.Context, rec *domain.MentorRecord) (*domain.MentorRecord, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			Rec *domain.MentorRecord
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *mentorRepoMock) Upsert(ctx context.Context, rec *domain.MentorRecord) (*domain.MentorRecord, error) {
	if mock.UpsertFunc == nil {
		panic("mentorRepoMock.UpsertFunc: method is nil but mentorRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.MentorRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, rec)
}

func (mock *mentorRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	Rec *domain.MentorRecord
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
