package approval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
	"github.com/mentorhive/mentorhive-backend/pkg/ctxutil"
)

// Decide applies an admin verdict to a mentor record as a compare-and-swap
// on the record's version, so two concurrent decisions cannot both win.
//
// A decision on a record that is already terminal is a conflict: a stray
// double-click must not flip an active mentor to rejected. Passing Override
// re-opens the record explicitly.
//
// The full attribute bag is written back unchanged so sibling keys written by
// other code paths survive the status flip.
func (s *Service) Decide(ctx context.Context, input DecideInput) (*domain.MentorRecord, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("approval.Decide: %w", domain.ErrForbidden)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.mentors.GetByID(ctx, input.MentorID)
	if err != nil {
		return nil, fmt.Errorf("approval.Decide get record: %w", err)
	}

	decision := domain.ApprovalDecision(input.Decision)
	if rec.ApprovalStatus.IsTerminal() && !input.Override {
		return nil, fmt.Errorf("mentor record %s already %s: %w",
			rec.ID, rec.ApprovalStatus, domain.ErrConflict)
	}

	updated, err := s.mentors.UpdateStatus(ctx, rec.ID, decision.Status(), rec.Attributes, rec.Version)
	if err != nil {
		return nil, fmt.Errorf("approval.Decide update status: %w", err)
	}

	adminID, _ := ctxutil.ActorIDFromCtx(ctx)
	s.log.InfoContext(ctx, "approval decision applied",
		slog.String("mentor_id", rec.ID.String()),
		slog.String("decision", input.Decision),
		slog.Bool("override", input.Override),
		slog.String("admin_id", adminID.String()))

	s.notify(ctx, updated.ActorID, decisionMessage(decision), decisionLink(decision))

	return updated, nil
}

func decisionMessage(d domain.ApprovalDecision) string {
	if d == domain.DecisionApprove {
		return "Welcome aboard! Your mentor profile is now live and students can book sessions with you."
	}
	return "Your mentor application was not approved. Contact support if you believe this is a mistake."
}

func decisionLink(d domain.ApprovalDecision) *string {
	if d == domain.DecisionApprove {
		link := "/mentor/dashboard"
		return &link
	}
	return nil
}
