package mentorprofile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

var _ mentorRepo = &mentorRepoMock{}

type mentorRepoMock struct {
	GetByActorIDFunc  func(ctx context.Context, actorID uuid.UUID) (*domain.MentorRecord, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, rate, years *int, orgName *string, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error)
	ListActiveFunc    func(ctx context.Context, skill *string, maxRate *int, limit, offset int) ([]*domain.MentorRecord, error)

	calls struct {
		GetByActorID []struct {
			Ctx     context.Context
			ActorID uuid.UUID
		}
		UpdateProfile []struct {
			Ctx             context.Context
			ID              uuid.UUID
			Rate            *int
			Years           *int
			OrgName         *string
			Attrs           domain.AttributeBag
			ExpectedVersion int
		}
		ListActive []struct {
			Ctx     context.Context
			Skill   *string
			MaxRate *int
			Limit   int
			Offset  int
		}
	}
	lockGetByActorID  sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockListActive    sync.RWMutex
}

func (mock *mentorRepoMock) GetByActorID(ctx context.Context, actorID uuid.UUID) (*domain.MentorRecord, error) {
	if mock.GetByActorIDFunc == nil {
		panic("mentorRepoMock.GetByActorIDFunc: method is nil but mentorRepo.GetByActorID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ActorID uuid.UUID
	}{Ctx: ctx, ActorID: actorID}
	mock.lockGetByActorID.Lock()
	mock.calls.GetByActorID = append(mock.calls.GetByActorID, callInfo)
	mock.lockGetByActorID.Unlock()
	return mock.GetByActorIDFunc(ctx, actorID)
}

func (mock *mentorRepoMock) GetByActorIDCalls() []struct {
	Ctx     context.Context
	ActorID uuid.UUID
} {
	mock.lockGetByActorID.RLock()
	calls := mock.calls.GetByActorID
	mock.lockGetByActorID.RUnlock()
	return calls
}

func (mock *mentorRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, rate, years *int, orgName *string, attrs domain.AttributeBag, expectedVersion int) (*domain.MentorRecord, error) {
	if mock.UpdateProfileFunc == nil {
		panic("mentorRepoMock.UpdateProfileFunc: method is nil but mentorRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		Rate            *int
		Years           *int
		OrgName         *string
		Attrs           domain.AttributeBag
		ExpectedVersion int
	}{Ctx: ctx, ID: id, Rate: rate, Years: years, OrgName: orgName, Attrs: attrs, ExpectedVersion: expectedVersion}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, rate, years, orgName, attrs, expectedVersion)
}

func (mock *mentorRepoMock) UpdateProfileCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	Rate            *int
	Years           *int
	OrgName         *string
	Attrs           domain.AttributeBag
	ExpectedVersion int
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *mentorRepoMock) ListActive(ctx context.Context, skill *string, maxRate *int, limit, offset int) ([]*domain.MentorRecord, error) {
	if mock.ListActiveFunc == nil {
		panic("mentorRepoMock.ListActiveFunc: method is nil but mentorRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Skill   *string
		MaxRate *int
		Limit   int
		Offset  int
	}{Ctx: ctx, Skill: skill, MaxRate: maxRate, Limit: limit, Offset: offset}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, skill, maxRate, limit, offset)
}

func (mock *mentorRepoMock) ListActiveCalls() []struct {
	Ctx     context.Context
	Skill   *string
	MaxRate *int
	Limit   int
	Offset  int
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
