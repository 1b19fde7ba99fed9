package approval

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, recipientID uuid.UUID, message string, link *string) error

	calls struct {
		Notify []struct {
			Ctx         context.Context
			RecipientID uuid.UUID
			Message     string
			Link        *string
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, recipientID uuid.UUID, message string, link *string) error {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RecipientID uuid.UUID
		Message     string
		Link        *string
	}{Ctx: ctx, RecipientID: recipientID, Message: message, Link: link}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, recipientID, message, link)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx         context.Context
	RecipientID uuid.UUID
	Message     string
	Link        *string
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
