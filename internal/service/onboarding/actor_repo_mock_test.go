package onboarding

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

var _ actorRepo = &actorRepoMock{}

type actorRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Actor, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.Actor, error)
	GetPasswordHashFunc func(ctx context.Context, id uuid.UUID) (string, error)
	CreateFunc          func(ctx context.Context, a *domain.Actor, passwordHash string) (*domain.Actor, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetPasswordHash []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx          context.Context
			A            *domain.Actor
			PasswordHash string
		}
	}
	lockGetByID         sync.RWMutex
	lockGetByEmail      sync.RWMutex
	lockGetPasswordHash sync.RWMutex
	lockCreate          sync.RWMutex
}

func (mock *actorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	if mock.GetByIDFunc == nil {
		panic("actorRepoMock.GetByIDFunc: method is nil but actorRepo.GetByID was just called")
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

func (mock *actorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *actorRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Actor, error) {
	if mock.GetByEmailFunc == nil {
		panic("actorRepoMock.GetByEmailFunc: method is nil but actorRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *actorRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *actorRepoMock) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	if mock.GetPasswordHashFunc == nil {
		panic("actorRepoMock.GetPasswordHashFunc: method is nil but actorRepo.GetPasswordHash was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPasswordHash.Lock()
	mock.calls.GetPasswordHash = append(mock.calls.GetPasswordHash, callInfo)
	mock.lockGetPasswordHash.Unlock()
	return mock.GetPasswordHashFunc(ctx, id)
}

func (mock *actorRepoMock) GetPasswordHashCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPasswordHash.RLock()
	calls := mock.calls.GetPasswordHash
	mock.lockGetPasswordHash.RUnlock()
	return calls
}

func (mock *actorRepoMock) Create(ctx context.Context, a *domain.Actor, passwordHash string) (*domain.Actor, error) {
	if mock.CreateFunc == nil {
		panic("actorRepoMock.CreateFunc: method is nil but actorRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		A            *domain.Actor
		PasswordHash string
	}{Ctx: ctx, A: a, PasswordHash: passwordHash}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a, passwordHash)
}

func (mock *actorRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	A            *domain.Actor
	PasswordHash string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
