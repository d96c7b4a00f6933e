package submission

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// detailInsert returns the INSERT builder for the detail table of d,
// with submission_id as its first column.
func detailInsert(d domain.MissionDetails) (sq.InsertBuilder, error) {
	switch d.(type) {
	case domain.DonationDetails:
		return psql.Insert("donations").Columns("submission_id", "amount", "frequency", "custom_message"), nil
	case domain.VolunteerDetails:
		return psql.Insert("volunteers").Columns("submission_id", "skills", "availability", "motivation"), nil
	case domain.ContactDetails:
		return psql.Insert("contacts").Columns("submission_id", "subject", "category", "priority", "ai_summary"), nil
	case domain.InformationDetails:
		return psql.Insert("info_requests").Columns("submission_id", "request_type", "specific_question"), nil
	}
	return sq.InsertBuilder{}, fmt.Errorf("submission: unsupported details %T: %w", d, domain.ErrValidation)
}

func detailValues(d domain.MissionDetails) []any {
	switch d := d.(type) {
	case domain.DonationDetails:
		return []any{d.Amount, string(d.Frequency), d.CustomMessage}
	case domain.VolunteerDetails:
		return []any{d.Skills, d.Availability, d.Motivation}
	case domain.ContactDetails:
		return []any{d.Subject, string(d.Category), string(d.Priority), d.Summary}
	case domain.InformationDetails:
		return []any{d.RequestType, d.SpecificQuestion}
	}
	return nil
}

// Column order must match row.dest.
func selectSubmissions() sq.SelectBuilder {
	return psql.Select(
		"s.id", "s.mission_type", "s.first_name", "s.last_name", "s.email",
		"s.message", "s.emotion_preference", "s.ai_thank_you_message", "s.created_at",
		"d.amount", "d.frequency", "d.custom_message",
		"v.skills", "v.availability", "v.motivation",
		"c.subject", "c.category", "c.priority", "c.ai_summary",
		"i.request_type", "i.specific_question",
	).
		From("submissions s").
		LeftJoin("donations d ON d.submission_id = s.id").
		LeftJoin("volunteers v ON v.submission_id = s.id").
		LeftJoin("contacts c ON c.submission_id = s.id").
		LeftJoin("info_requests i ON i.submission_id = s.id")
}

type scanner interface {
	Scan(dest ...any) error
}

type row struct {
	id          uuid.UUID
	missionType string
	firstName   string
	lastName    string
	email       string
	message     *string
	emotion     string
	thankYou    *string
	createdAt   time.Time

	amount        *int32
	frequency     *string
	customMessage *string

	skills       []string
	availability *string
	motivation   *string

	subject  *string
	category *string
	priority *string
	summary  *string

	requestType      *string
	specificQuestion *string
}

func (r *row) dest() []any {
	return []any{
		&r.id, &r.missionType, &r.firstName, &r.lastName, &r.email,
		&r.message, &r.emotion, &r.thankYou, &r.createdAt,
		&r.amount, &r.frequency, &r.customMessage,
		&r.skills, &r.availability, &r.motivation,
		&r.subject, &r.category, &r.priority, &r.summary,
		&r.requestType, &r.specificQuestion,
	}
}

func scanSubmission(s scanner) (*domain.Submission, error) {
	var r row
	if err := s.Scan(r.dest()...); err != nil {
		return nil, err
	}
	return r.toDomain()
}

func (r *row) toDomain() (*domain.Submission, error) {
	sub := &domain.Submission{
		ID:              r.id,
		FirstName:       r.firstName,
		LastName:        r.lastName,
		Email:           r.email,
		Message:         r.message,
		Emotion:         domain.Emotion(r.emotion),
		ThankYouMessage: r.thankYou,
		CreatedAt:       r.createdAt.UTC(),
	}

	switch domain.MissionType(r.missionType) {
	case domain.MissionDonation:
		var amount int
		if r.amount != nil {
			amount = int(*r.amount)
		}
		sub.Details = domain.DonationDetails{
			Amount:        amount,
			Frequency:     domain.Frequency(deref(r.frequency)),
			CustomMessage: r.customMessage,
		}
	case domain.MissionVolunteer:
		sub.Details = domain.VolunteerDetails{
			Skills:       r.skills,
			Availability: deref(r.availability),
			Motivation:   r.motivation,
		}
	case domain.MissionContact:
		sub.Details = domain.ContactDetails{
			Subject:  deref(r.subject),
			Category: domain.ContactCategory(deref(r.category)),
			Priority: domain.ContactPriority(deref(r.priority)),
			Summary:  deref(r.summary),
		}
	case domain.MissionInformation:
		sub.Details = domain.InformationDetails{
			RequestType:      deref(r.requestType),
			SpecificQuestion: r.specificQuestion,
		}
	default:
		return nil, fmt.Errorf("submission %s: unknown mission type %q", r.id, r.missionType)
	}

	return sub, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
