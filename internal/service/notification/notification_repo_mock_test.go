package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

var _ notificationRepo = &notificationRepoMock{}

type notificationRepoMock struct {
	CreateFunc          func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByRecipientFunc func(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*domain.Notification, int, error)
	CountUnreadFunc     func(ctx context.Context, recipientID uuid.UUID) (int, error)
	MarkReadFunc        func(ctx context.Context, recipientID, notificationID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			N   *domain.Notification
		}
		ListByRecipient []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			Limit       int
			Offset      int
		}
		CountUnread []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
		}
		MarkRead []struct {
			Ctx            context.Context
			RecipientID    uuid.UUID
			NotificationID uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockListByRecipient sync.RWMutex
	lockCountUnread     sync.RWMutex
	lockMarkRead        sync.RWMutex
}

func (mock *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if mock.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but notificationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Notification
	}{Ctx: ctx, N: n}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Notification
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *notificationRepoMock) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*domain.Notification, int, error) {
	if mock.ListByRecipientFunc == nil {
		panic("notificationRepoMock.ListByRecipientFunc: method is nil but notificationRepo.ListByRecipient was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		Limit       int
		Offset      int
	}{Ctx: ctx, RecipientID: recipientID, Limit: limit, Offset: offset}
	mock.lockListByRecipient.Lock()
	mock.calls.ListByRecipient = append(mock.calls.ListByRecipient, callInfo)
	mock.lockListByRecipient.Unlock()
	return mock.ListByRecipientFunc(ctx, recipientID, limit, offset)
}

func (mock *notificationRepoMock) ListByRecipientCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	Limit       int
	Offset      int
} {
	mock.lockListByRecipient.RLock()
	calls := mock.calls.ListByRecipient
	mock.lockListByRecipient.RUnlock()
	return calls
}

func (mock *notificationRepoMock) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if mock.CountUnreadFunc == nil {
		panic("notificationRepoMock.CountUnreadFunc: method is nil but notificationRepo.CountUnread was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
	}{Ctx: ctx, RecipientID: recipientID}
	mock.lockCountUnread.Lock()
	mock.calls.CountUnread = append(mock.calls.CountUnread, callInfo)
	mock.lockCountUnread.Unlock()
	return mock.CountUnreadFunc(ctx, recipientID)
}

func (mock *notificationRepoMock) CountUnreadCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
} {
	mock.lockCountUnread.RLock()
	calls := mock.calls.CountUnread
	mock.lockCountUnread.RUnlock()
	return calls
}

func (mock *notificationRepoMock) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if mock.MarkReadFunc == nil {
		panic("notificationRepoMock.MarkReadFunc: method is nil but notificationRepo.MarkRead was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		RecipientID    uuid.UUID
		NotificationID uuid.UUID
	}{Ctx: ctx, RecipientID: recipientID, NotificationID: notificationID}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, recipientID, notificationID)
}

func (mock *notificationRepoMock) MarkReadCalls() []struct {
	Ctx            context.Context
	RecipientID    uuid.UUID
	NotificationID uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
