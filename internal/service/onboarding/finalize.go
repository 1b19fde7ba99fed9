package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// Finalize turns a completed wizard session into persistent records. Every
// step is re-validated from the stored fields — the client's declared
// position is never trusted. Record creation is atomic: actor, mentor record
// and expertise tags land in one transaction keyed by natural unique keys, so
// a retry after a half-failure is safe.
//
// If the contact email is already registered, Finalize authenticates with the
// supplied password instead of creating a duplicate; a failed authentication
// is a ConflictError, distinct from validation failures.
func (s *Service) Finalize(ctx context.Context, sessionID uuid.UUID) (*FinalizeResult, error) {
	sess, err := s.sessions.get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var errs []domain.FieldError
	for _, st := range sess.steps() {
		errs = append(errs, st.validate(sess.flds, s.cfg)...)
	}
	if branch := resolveBranch(sess.flds); sess.kind == domain.OnboardingKindMentor && branch == "" {
		errs = append(errs, domain.FieldError{Field: FieldMentorKind, Message: "branch choice incomplete"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	actor, rec, err := s.persistRecords(ctx, sess)
	if err != nil {
		return nil, err
	}

	// Re-read through the normal path to tolerate replication lag; the read
	// is idempotent so one automatic retry on a transient failure is safe.
	fresh, err := s.actors.GetByID(ctx, actor.ID)
	if errors.Is(err, domain.ErrUnavailable) {
		fresh, err = s.actors.GetByID(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("onboarding.Finalize re-read actor: %w", err)
	}
	actor = fresh

	result, err := s.issueTokens(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("onboarding.Finalize issue tokens: %w", err)
	}
	result.MentorRecord = rec

	s.sessions.delete(sessionID)

	s.log.InfoContext(ctx, "onboarding finalized",
		slog.String("actor_id", actor.ID.String()),
		slog.String("role", actor.Role.String()))

	return result, nil
}

// persistRecords resolves the actor (existing via authentication, or freshly
// created) and writes the role records transactionally.
func (s *Service) persistRecords(ctx context.Context, sess *session) (*domain.Actor, *domain.MentorRecord, error) {
	email := strings.ToLower(sess.flds.get(FieldContactEmail))
	password := sess.flds[FieldPassword]

	actor, err := s.authenticateExisting(ctx, email, password)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	var rec *domain.MentorRecord
	txErr := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if actor == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), s.authCfg.PasswordHashCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			created, err := s.actors.Create(ctx, s.buildActor(sess, email), string(hash))
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					// Lost a race with a concurrent registration for the
					// same email; the password cannot be verified against
					// a row this transaction cannot yet see.
					return &domain.ConflictError{Email: email, Reason: "email already registered"}
				}
				return fmt.Errorf("create actor: %w", err)
			}
			actor = created
		}

		if sess.kind != domain.OnboardingKindMentor {
			return nil
		}

		created, err := s.mentors.Upsert(ctx, s.buildMentorRecord(sess, actor.ID))
		if err != nil {
			return fmt.Errorf("upsert mentor record: %w", err)
		}
		rec = created

		for _, skill := range splitSkills(sess.flds.get(FieldSkills)) {
			if err := s.expertise.Upsert(ctx, rec.ID, skill); err != nil {
				return fmt.Errorf("upsert expertise %q: %w", skill, err)
			}
		}
		return nil
	})
	if txErr != nil {
		var conflict *domain.ConflictError
		if errors.As(txErr, &conflict) {
			return nil, nil, conflict
		}
		return nil, nil, fmt.Errorf("onboarding.Finalize persist: %w", txErr)
	}

	return actor, rec, nil
}

// authenticateExisting looks up the email and, when registered, verifies the
// supplied password. Returns (nil, ErrNotFound) for an unknown email and a
// ConflictError when the password does not match.
func (s *Service) authenticateExisting(ctx context.Context, email, password string) (*domain.Actor, error) {
	existing, err := s.actors.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("onboarding.Finalize lookup email: %w", err)
	}

	hash, err := s.actors.GetPasswordHash(ctx, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("onboarding.Finalize load password hash: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, &domain.ConflictError{Email: email, Reason: "email already registered with different credentials"}
	}

	return existing, nil
}

func (s *Service) buildActor(sess *session, email string) *domain.Actor {
	actor := &domain.Actor{
		ID:           uuid.New(),
		DisplayName:  sess.flds.get(FieldDisplayName),
		ContactEmail: email,
		Phone:        sess.flds.get(FieldPhone),
		Role:         domain.ActorRoleStudent,
	}

	if sess.kind == domain.OnboardingKindMentor {
		actor.Role = domain.ActorRoleMentor
		return actor
	}

	if age, ok := sess.flds.age(); ok {
		actor.AgeYears = &age
		if age < domain.GuardianAgeThreshold {
			guardian := sess.flds.get(FieldGuardianEmail)
			actor.GuardianEmail = &guardian
		}
	}
	return actor
}

func (s *Service) buildMentorRecord(sess *session, actorID uuid.UUID) *domain.MentorRecord {
	branch := resolveBranch(sess.flds)

	bag := domain.AttributeBag{}.Set(domain.AttrType, branch.String())
	for key, attr := range map[string]string{
		FieldRole:    domain.AttrRole,
		FieldWebsite: domain.AttrWebsite,
		FieldDomain:  domain.AttrDomain,
		FieldAddress: domain.AttrAddress,
		FieldFounder: domain.AttrFounder,
	} {
		if v := sess.flds.get(key); v != "" {
			bag = bag.Set(attr, v)
		}
	}

	rec := &domain.MentorRecord{
		ID:             uuid.New(),
		ActorID:        actorID,
		Branch:         branch,
		ApprovalStatus: branch.InitialApprovalStatus(),
		Attributes:     bag,
	}
	if org := sess.flds.get(FieldOrganizationName); org != "" {
		rec.OrganizationName = &org
	}
	if rate, err := strconv.Atoi(sess.flds.get(FieldHourlyRate)); err == nil {
		rec.HourlyRate = rate
	}
	if years, err := strconv.Atoi(sess.flds.get(FieldYearsExperience)); err == nil {
		rec.YearsExperience = years
	}
	return rec
}

// issueTokens generates the access/refresh pair and stores the refresh hash.
func (s *Service) issueTokens(ctx context.Context, actor *domain.Actor) (*FinalizeResult, error) {
	access, err := s.jwt.GenerateAccessToken(actor.ID, actor.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refresh := &domain.RefreshToken{
		ID:        uuid.New(),
		ActorID:   actor.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.authCfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &FinalizeResult{
		Actor:        actor,
		AccessToken:  access,
		RefreshToken: rawRefresh,
	}, nil
}
