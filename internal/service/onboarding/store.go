package onboarding

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// sessionStore holds live wizard sessions in memory. Expired sessions are
// swept lazily on every access; there is no background goroutine, matching
// the request/response-only concurrency model.
type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[uuid.UUID]*session
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

func (st *sessionStore) put(s *session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()
	st.sessions[s.id] = s
}

// get returns a live session or domain.ErrNotFound. An expired session is
// indistinguishable from an unknown one.
func (st *sessionStore) get(id uuid.UUID) (*session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sweepLocked()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("onboarding session %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

func (st *sessionStore) delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *sessionStore) sweepLocked() {
	deadline := st.now().Add(-st.ttl)
	for id, s := range st.sessions {
		if s.updatedAt.Before(deadline) {
			delete(st.sessions, id)
		}
	}
}
