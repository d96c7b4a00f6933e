package submission

import (
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// Length rules of the submission forms, in characters.
const (
	MinNameLength           = 2
	MinContactSubjectLength = 5
	MinContactMessageLength = 10
	MinDonationAmount       = 1
)

// CreateInput is the flat submission form. MissionType decides which of the
// mission-specific fields are read; the others are ignored.
type CreateInput struct {
	MissionType string
	FirstName   string
	LastName    string
	Email       string
	Message     *string
	Emotion     string

	// don
	Amount        *float64
	Frequency     string
	CustomMessage *string

	// benevolat
	Skills       []string
	Availability string
	Motivation   *string

	// contact
	Subject string

	// informations
	RequestType      string
	SpecificQuestion *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	if runeLen(i.FirstName) < MinNameLength {
		add("firstName", "must be at least 2 characters")
	}
	if runeLen(i.LastName) < MinNameLength {
		add("lastName", "must be at least 2 characters")
	}
	if !validEmail(i.Email) {
		add("email", "invalid email")
	}
	if i.Emotion != "" && !domain.Emotion(i.Emotion).IsValid() {
		add("emotionPreference", "must be one of epique, bienveillant, drole")
	}

	switch domain.MissionType(i.MissionType) {
	case domain.MissionDonation:
		switch {
		case i.Amount == nil:
			add("amount", "required")
		case *i.Amount != math.Trunc(*i.Amount):
			add("amount", "must be an integer")
		case *i.Amount < MinDonationAmount:
			add("amount", "must be at least 1")
		case *i.Amount > math.MaxInt32:
			add("amount", "too large")
		}
		if !domain.Frequency(i.Frequency).IsValid() {
			add("frequency", "must be one of ponctuel, mensuel, annuel")
		}

	case domain.MissionVolunteer:
		if len(cleanSkills(i.Skills)) == 0 {
			add("skills", "at least one skill required")
		}
		if strings.TrimSpace(i.Availability) == "" {
			add("availability", "required")
		}

	case domain.MissionContact:
		if runeLen(i.Subject) < MinContactSubjectLength {
			add("subject", "must be at least 5 characters")
		}
		if runeLen(deref(i.Message)) < MinContactMessageLength {
			add("message", "must be at least 10 characters")
		}

	case domain.MissionInformation:
		if strings.TrimSpace(i.RequestType) == "" {
			add("requestType", "required")
		}

	default:
		add("missionType", "must be one of don, benevolat, contact, informations")
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toSubmission builds the domain value from a validated input.
func (i CreateInput) toSubmission() *domain.Submission {
	emotion := domain.Emotion(i.Emotion)
	if emotion == "" {
		emotion = domain.EmotionCaring
	}

	sub := &domain.Submission{
		FirstName: strings.TrimSpace(i.FirstName),
		LastName:  strings.TrimSpace(i.LastName),
		Email:     strings.TrimSpace(i.Email),
		Message:   trimOrNil(i.Message),
		Emotion:   emotion,
	}

	switch domain.MissionType(i.MissionType) {
	case domain.MissionDonation:
		sub.Details = domain.DonationDetails{
			Amount:        int(*i.Amount),
			Frequency:     domain.Frequency(i.Frequency),
			CustomMessage: trimOrNil(i.CustomMessage),
		}
	case domain.MissionVolunteer:
		sub.Details = domain.VolunteerDetails{
			Skills:       cleanSkills(i.Skills),
			Availability: strings.TrimSpace(i.Availability),
			Motivation:   trimOrNil(i.Motivation),
		}
	case domain.MissionContact:
		sub.Details = domain.ContactDetails{Subject: strings.TrimSpace(i.Subject)}
	case domain.MissionInformation:
		sub.Details = domain.InformationDetails{
			RequestType:      strings.TrimSpace(i.RequestType),
			SpecificQuestion: trimOrNil(i.SpecificQuestion),
		}
	}
	return sub
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// validEmail accepts a bare address only, not a "Name <addr>" form.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// cleanSkills trims tags and drops blanks and duplicates.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
