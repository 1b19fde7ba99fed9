package onboarding

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mentorhive/mentorhive-backend/internal/config"
	"github.com/mentorhive/mentorhive-backend/internal/domain"
)

// Step names. Exposed to clients through SessionView so the wizard knows
// which form to render.
const (
	StepIdentity     = "identity"
	StepAge          = "age"
	StepInterests    = "interests"
	StepGuardian     = "guardian"
	StepKind         = "kind"
	StepExpertise    = "expertise"
	StepCredentials  = "credentials"
	StepRole         = "role"
	StepPresence     = "presence"
	StepNotice       = "notice"
	StepApplication  = "application"
	StepConfirmation = "confirmation"
	StepReview       = "review"
)

// Field keys collected by the wizard. Stored as strings; parsed at
// validation and finalize time.
const (
	FieldDisplayName      = "display_name"
	FieldContactEmail     = "contact_email"
	FieldPassword         = "password"
	FieldPhone            = "phone"
	FieldAgeYears         = "age_years"
	FieldInterests        = "interests"
	FieldGuardianEmail    = "guardian_email"
	FieldMentorKind       = "mentor_kind" // individual | organization
	FieldOrgMode          = "org_mode"    // online | offline
	FieldOrganizationName = "organization_name"
	FieldSkills           = "skills" // comma-separated
	FieldHourlyRate       = "hourly_rate"
	FieldYearsExperience  = "years_experience"
	FieldWorkEmail        = "work_email"
	FieldRole             = "role"
	FieldFounder          = "founder"
	FieldDomain           = "domain"
	FieldWebsite          = "website"
	FieldAddress          = "address"
	FieldNoticeAck        = "notice_ack"
	FieldConfirm          = "confirm"
)

const (
	mentorKindIndividual   = "individual"
	mentorKindOrganization = "organization"
	orgModeOnline          = "online"
	orgModeOffline         = "offline"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// step is one named wizard position with its validator. A step either
// accepts the whole field set or reports every field error it finds.
type step struct {
	name     string
	validate func(f fields, cfg config.OnboardingConfig) []domain.FieldError
}

// fields is the wizard's collected values. Absent keys read as "".
type fields map[string]string

func (f fields) get(key string) string { return strings.TrimSpace(f[key]) }

func (f fields) clone() fields {
	out := make(fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// age returns the parsed age and whether it is present and well-formed.
func (f fields) age() (int, bool) {
	raw := f.get(FieldAgeYears)
	if raw == "" {
		return 0, false
	}
	a, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return a, true
}

// resolveBranch maps the kind/mode choices to a mentor branch. Returns ""
// while the choice is incomplete.
func resolveBranch(f fields) domain.MentorBranch {
	switch f.get(FieldMentorKind) {
	case mentorKindIndividual:
		return domain.MentorBranchIndividual
	case mentorKindOrganization:
		switch f.get(FieldOrgMode) {
		case orgModeOnline:
			return domain.MentorBranchOnlineOrganization
		case orgModeOffline:
			return domain.MentorBranchOfflineOrganization
		}
	}
	return ""
}

// resolveSteps computes the step table for the session's current knowledge.
// The table grows as classification fields arrive: a student's guardian step
// appears the moment a minor age is known, and a mentor's tail steps appear
// once the kind choice resolves a branch.
func resolveSteps(kind domain.OnboardingKind, f fields) []step {
	if kind == domain.OnboardingKindStudent {
		steps := []step{
			{StepIdentity, validateIdentity},
			{StepAge, validateAge},
			{StepInterests, validateInterests},
		}
		if a, ok := f.age(); ok && a < domain.GuardianAgeThreshold {
			steps = append(steps, step{StepGuardian, validateGuardian})
		}
		return append(steps, step{StepReview, validateStudentReview})
	}

	head := []step{
		{StepIdentity, validateIdentity},
		{StepKind, validateKind},
	}
	switch resolveBranch(f) {
	case domain.MentorBranchIndividual:
		return append(head,
			step{StepExpertise, validateExpertise},
			step{StepReview, validateNothing},
		)
	case domain.MentorBranchOnlineOrganization:
		return append(head,
			step{StepCredentials, validateCredentials},
			step{StepRole, validateRole},
			step{StepPresence, validatePresence},
			step{StepReview, validateNothing},
		)
	case domain.MentorBranchOfflineOrganization:
		return append(head,
			step{StepNotice, validateNotice},
			step{StepApplication, validateApplication},
			step{StepConfirmation, validateConfirmation},
		)
	}
	// Branch not chosen yet; the table ends at the kind step.
	return head
}

// ---------------------------------------------------------------------------
// Validators
// ---------------------------------------------------------------------------

func validateNothing(fields, config.OnboardingConfig) []domain.FieldError { return nil }

func validateIdentity(f fields, _ config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError

	if f.get(FieldDisplayName) == "" {
		errs = append(errs, domain.FieldError{Field: FieldDisplayName, Message: "required"})
	}

	email := f.get(FieldContactEmail)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: FieldContactEmail, Message: "required"})
	} else if !emailRx.MatchString(email) {
		errs = append(errs, domain.FieldError{Field: FieldContactEmail, Message: "invalid email"})
	}

	if pw := f[FieldPassword]; pw == "" {
		errs = append(errs, domain.FieldError{Field: FieldPassword, Message: "required"})
	} else if len(pw) < 8 {
		errs = append(errs, domain.FieldError{Field: FieldPassword, Message: "must be at least 8 characters"})
	}

	return errs
}

func validateAge(f fields, _ config.OnboardingConfig) []domain.FieldError {
	raw := f.get(FieldAgeYears)
	if raw == "" {
		return []domain.FieldError{{Field: FieldAgeYears, Message: "required"}}
	}
	a, err := strconv.Atoi(raw)
	if err != nil {
		return []domain.FieldError{{Field: FieldAgeYears, Message: "must be a number"}}
	}
	if a < 1 || a > 120 {
		return []domain.FieldError{{Field: FieldAgeYears, Message: "must be between 1 and 120"}}
	}
	return nil
}

func validateInterests(f fields, _ config.OnboardingConfig) []domain.FieldError {
	if f.get(FieldInterests) == "" {
		return []domain.FieldError{{Field: FieldInterests, Message: "pick at least one interest"}}
	}
	return nil
}

func validateGuardian(f fields, _ config.OnboardingConfig) []domain.FieldError {
	email := f.get(FieldGuardianEmail)
	if email == "" {
		return []domain.FieldError{{Field: FieldGuardianEmail, Message: "required for students under 16"}}
	}
	if !emailRx.MatchString(email) {
		return []domain.FieldError{{Field: FieldGuardianEmail, Message: "invalid email"}}
	}
	return nil
}

// validateStudentReview is a safety net: the guardian step is part of the
// table whenever a minor age is known, but review must still refuse to pass
// if the guardian email is somehow missing.
func validateStudentReview(f fields, _ config.OnboardingConfig) []domain.FieldError {
	if a, ok := f.age(); ok && a < domain.GuardianAgeThreshold && f.get(FieldGuardianEmail) == "" {
		return []domain.FieldError{{Field: FieldGuardianEmail, Message: "required for students under 16"}}
	}
	return nil
}

func validateKind(f fields, _ config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError

	switch f.get(FieldMentorKind) {
	case "":
		errs = append(errs, domain.FieldError{Field: FieldMentorKind, Message: "required"})
	case mentorKindIndividual:
	case mentorKindOrganization:
		switch f.get(FieldOrgMode) {
		case "":
			errs = append(errs, domain.FieldError{Field: FieldOrgMode, Message: "choose online or offline"})
		case orgModeOnline, orgModeOffline:
		default:
			errs = append(errs, domain.FieldError{Field: FieldOrgMode, Message: "must be online or offline"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: FieldMentorKind, Message: "must be individual or organization"})
	}

	return errs
}

func validateExpertise(f fields, cfg config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError

	skills := splitSkills(f.get(FieldSkills))
	if len(skills) == 0 {
		errs = append(errs, domain.FieldError{Field: FieldSkills, Message: "add at least one skill"})
	} else if cfg.MaxExpertiseSkill > 0 && len(skills) > cfg.MaxExpertiseSkill {
		errs = append(errs, domain.FieldError{Field: FieldSkills, Message: "too many skills"})
	}

	errs = append(errs, validatePositiveInt(f, FieldHourlyRate, true)...)
	errs = append(errs, validateNonNegativeInt(f, FieldYearsExperience)...)

	return errs
}

// validateCredentials enforces the online-organization email policy: the work
// email's top-level domain must be on the allow-list and the provider must
// not be a generic mailbox host.
func validateCredentials(f fields, cfg config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError

	if f.get(FieldOrganizationName) == "" {
		errs = append(errs, domain.FieldError{Field: FieldOrganizationName, Message: "required"})
	}

	email := strings.ToLower(f.get(FieldWorkEmail))
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: FieldWorkEmail, Message: "required"})
	case !emailRx.MatchString(email):
		errs = append(errs, domain.FieldError{Field: FieldWorkEmail, Message: "invalid email"})
	default:
		provider := email[strings.LastIndex(email, "@")+1:]
		tld := provider[strings.LastIndex(provider, ".")+1:]
		if !contains(cfg.EmailTLDs(), tld) {
			errs = append(errs, domain.FieldError{Field: FieldWorkEmail, Message: "email domain must end in an accepted TLD"})
		} else if contains(cfg.BlockedEmailProviders(), provider) {
			errs = append(errs, domain.FieldError{Field: FieldWorkEmail, Message: "generic email providers are not accepted"})
		}
	}

	return errs
}

func validateRole(f fields, _ config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError
	if f.get(FieldRole) == "" {
		errs = append(errs, domain.FieldError{Field: FieldRole, Message: "required"})
	}
	if f.get(FieldFounder) == "" {
		errs = append(errs, domain.FieldError{Field: FieldFounder, Message: "required"})
	}
	return errs
}

func validatePresence(f fields, _ config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError

	if f.get(FieldDomain) == "" {
		errs = append(errs, domain.FieldError{Field: FieldDomain, Message: "required"})
	}

	website := f.get(FieldWebsite)
	if website == "" {
		errs = append(errs, domain.FieldError{Field: FieldWebsite, Message: "required"})
	} else if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		errs = append(errs, domain.FieldError{Field: FieldWebsite, Message: "must start with http:// or https://"})
	}

	return errs
}

func validateNotice(f fields, _ config.OnboardingConfig) []domain.FieldError {
	if f.get(FieldNoticeAck) != "true" {
		return []domain.FieldError{{Field: FieldNoticeAck, Message: "acknowledge the manual review notice"}}
	}
	return nil
}

func validateApplication(f fields, _ config.OnboardingConfig) []domain.FieldError {
	var errs []domain.FieldError
	for _, key := range []string{FieldOrganizationName, FieldFounder, FieldAddress, FieldDomain} {
		if f.get(key) == "" {
			errs = append(errs, domain.FieldError{Field: key, Message: "required"})
		}
	}
	errs = append(errs, validatePositiveInt(f, FieldHourlyRate, false)...)
	return errs
}

func validateConfirmation(f fields, _ config.OnboardingConfig) []domain.FieldError {
	if f.get(FieldConfirm) != "true" {
		return []domain.FieldError{{Field: FieldConfirm, Message: "confirm the application to submit"}}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

func validatePositiveInt(f fields, key string, required bool) []domain.FieldError {
	raw := f.get(key)
	if raw == "" {
		if required {
			return []domain.FieldError{{Field: key, Message: "required"}}
		}
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return []domain.FieldError{{Field: key, Message: "must be a positive number"}}
	}
	return nil
}

func validateNonNegativeInt(f fields, key string) []domain.FieldError {
	raw := f.get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return []domain.FieldError{{Field: key, Message: "must be zero or more"}}
	}
	return nil
}

func splitSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
