package rest

import (
	"time"

	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// actorResponse is the public JSON shape of an actor.
type actorResponse struct {
	ID            string  `json:"id"`
	DisplayName   string  `json:"displayName"`
	ContactEmail  string  `json:"contactEmail"`
	Phone         string  `json:"phone,omitempty"`
	Role          string  `json:"role"`
	AgeYears      *int    `json:"ageYears,omitempty"`
	GuardianEmail *string `json:"guardianEmail,omitempty"`
}

func toActorResponse(a *domain.Actor) actorResponse {
	return actorResponse{
		ID:            a.ID.String(),
		DisplayName:   a.DisplayName,
		ContactEmail:  a.ContactEmail,
		Phone:         a.Phone,
		Role:          a.Role.String(),
		AgeYears:      a.AgeYears,
		GuardianEmail: a.GuardianEmail,
	}
}

// mentorResponse is the public JSON shape of a mentor record.
type mentorResponse struct {
	ID               string         `json:"id"`
	ActorID          string         `json:"actorId"`
	Branch           string         `json:"branch"`
	OrganizationName *string        `json:"organizationName,omitempty"`
	ApprovalStatus   string         `json:"approvalStatus"`
	Attributes       map[string]any `json:"attributes,omitempty"`
	HourlyRate       int            `json:"hourlyRate"`
	YearsExperience  int            `json:"yearsExperience"`
	Skills           []string       `json:"skills,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

func toMentorResponse(rec *domain.MentorRecord, skills []domain.ExpertiseTag) mentorResponse {
	out := mentorResponse{
		ID:               rec.ID.String(),
		ActorID:          rec.ActorID.String(),
		Branch:           rec.Branch.String(),
		OrganizationName: rec.OrganizationName,
		ApprovalStatus:   rec.ApprovalStatus.String(),
		Attributes:       rec.Attributes,
		HourlyRate:       rec.HourlyRate,
		YearsExperience:  rec.YearsExperience,
		CreatedAt:        rec.CreatedAt,
	}
	for _, tag := range skills {
		out.Skills = append(out.Skills, tag.Skill)
	}
	return out
}

// bookingResponse is the public JSON shape of a booking.
type bookingResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	MentorID    string    `json:"mentorId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	MeetingLink *string   `json:"meetingLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID.String(),
		StudentID:   b.StudentID.String(),
		MentorID:    b.MentorID.String(),
		ScheduledAt: b.ScheduledAt,
		Status:      b.Status.String(),
		MeetingLink: b.MeetingLink,
		CreatedAt:   b.CreatedAt,
	}
}

// notificationResponse is the public JSON shape of an inbox entry.
type notificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID.String(),
		Message:   n.Message,
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
