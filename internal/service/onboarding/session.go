package onboarding

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// session is the transient wizard state. It lives only in the store; it is
// never persisted and is discarded on finalize or expiry.
//
// The step table is derived from kind+fields on every access rather than
// stored, so classification changes (a minor age arriving, a mentor branch
// resolving) reshape the table without explicit insertion logic.
type session struct {
	id        uuid.UUID
	kind      domain.OnboardingKind
	pos       int // index into the current step table
	flds      fields
	createdAt time.Time
	updatedAt time.Time

	// mu serializes submissions within one session: a client cannot have
	// step 3 accepted before step 2.
	mu sync.Mutex
}

func (s *session) steps() []step {
	return resolveSteps(s.kind, s.flds)
}

// clampPos keeps the position inside the current table. The table only ever
// shrinks when a mentor changes the kind choice after going back.
func (s *session) clampPos() {
	if max := len(s.steps()) - 1; s.pos > max {
		s.pos = max
	}
}

// SessionView is the client-facing snapshot of a wizard session.
type SessionView struct {
	ID        uuid.UUID
	Kind      domain.OnboardingKind
	Branch    domain.MentorBranch // empty until resolved (mentors only)
	Step      int                 // 1-based position
	StepName  string
	StepCount int
	StepNames []string
	Fields    map[string]string
	ExpiresAt time.Time
}

// view must be called with s.mu held.
func (s *session) view(ttl time.Duration) *SessionView {
	steps := s.steps()
	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.name
	}

	flds := make(map[string]string, len(s.flds))
	for k, v := range s.flds {
		if k == FieldPassword {
			continue // never echo credentials back
		}
		flds[k] = v
	}

	return &SessionView{
		ID:        s.id,
		Kind:      s.kind,
		Branch:    resolveBranch(s.flds),
		Step:      s.pos + 1,
		StepName:  steps[s.pos].name,
		StepCount: len(steps),
		StepNames: names,
		Fields:    flds,
		ExpiresAt: s.updatedAt.Add(ttl),
	}
}
