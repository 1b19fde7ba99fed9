package domain

// ActorRole represents the authorization level of an actor.
type ActorRole string

const (
	ActorRoleStudent ActorRole = "student"
	ActorRoleMentor  ActorRole = "mentor"
	ActorRoleAdmin   ActorRole = "admin"
)

func (r ActorRole) String() string { return string(r) }

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorRoleStudent, ActorRoleMentor, ActorRoleAdmin:
		return true
	}
	return false
}

func (r ActorRole) IsAdmin() bool {
	return r == ActorRoleAdmin
}

// OnboardingKind is the coarse actor-kind hint given when a wizard session starts.
type OnboardingKind string

const (
	OnboardingKindStudent OnboardingKind = "student"
	OnboardingKindMentor  OnboardingKind = "mentor"
)

func (k OnboardingKind) String() string { return string(k) }

func (k OnboardingKind) IsValid() bool {
	switch k {
	case OnboardingKindStudent, OnboardingKindMentor:
		return true
	}
	return false
}

// MentorBranch is the onboarding path a mentor was classified into.
// The branch determines the wizard's step list and the initial approval status.
type MentorBranch string

const (
	MentorBranchIndividual          MentorBranch = "individual"
	MentorBranchOnlineOrganization  MentorBranch = "online_organization"
	MentorBranchOfflineOrganization MentorBranch = "offline_organization"
)

func (b MentorBranch) String() string { return string(b) }

func (b MentorBranch) IsValid() bool {
	switch b {
	case MentorBranchIndividual, MentorBranchOnlineOrganization, MentorBranchOfflineOrganization:
		return true
	}
	return false
}

// InitialApprovalStatus returns the approval status a freshly onboarded
// mentor record starts with. Offline organizations always require human
// review; every other branch goes live immediately.
func (b MentorBranch) InitialApprovalStatus() ApprovalStatus {
	if b == MentorBranchOfflineOrganization {
		return ApprovalPending
	}
	return ApprovalActive
}

// ApprovalStatus is the review state of a mentor record.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalActive   ApprovalStatus = "active"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) String() string { return string(s) }

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalActive, ApprovalRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status may no longer change through the
// normal flow. Active records never revert to pending and rejected records
// stay rejected; an explicit admin override is the only way past either.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalActive || s == ApprovalRejected
}

// ApprovalDecision is an admin's verdict on a pending mentor record.
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "approve"
	DecisionReject  ApprovalDecision = "reject"
)

func (d ApprovalDecision) String() string { return string(d) }

func (d ApprovalDecision) IsValid() bool {
	switch d {
	case DecisionApprove, DecisionReject:
		return true
	}
	return false
}

// Status returns the approval status the decision resolves to.
func (d ApprovalDecision) Status() ApprovalStatus {
	if d == DecisionApprove {
		return ApprovalActive
	}
	return ApprovalRejected
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) String() string { return string(s) }

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// CanTransitionTo reports whether the booking state machine allows moving
// from s to next:
//
//	pending   → confirmed | cancelled
//	confirmed → cancelled | completed
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled || next == BookingCompleted
	}
	return false
}
