package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a mission form sent by a visitor. The concrete mission is
// carried by Details; everything except ThankYouMessage is immutable once
// stored.
type Submission struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	Message         *string
	Emotion         Emotion
	ThankYouMessage *string
	CreatedAt       time.Time
	Details         MissionDetails
}

// MissionType reports the mission of the submission's details.
func (s *Submission) MissionType() MissionType {
	if s.Details == nil {
		return ""
	}
	return s.Details.Mission()
}

// MissionDetails is implemented only by the four detail types of this package.
type MissionDetails interface {
	Mission() MissionType
	isMissionDetails()
}

// DonationDetails holds the donation form fields.
type DonationDetails struct {
	Amount        int
	Frequency     Frequency
	CustomMessage *string
}

// VolunteerDetails holds the volunteering form fields.
type VolunteerDetails struct {
	Skills       []string
	Availability string
	Motivation   *string
}

// ContactDetails holds the contact form fields and the triage result.
// The contact body itself is Submission.Message.
type ContactDetails struct {
	Subject  string
	Category ContactCategory
	Priority ContactPriority
	Summary  string
}

// InformationDetails holds the information request form fields.
type InformationDetails struct {
	RequestType      string
	SpecificQuestion *string
}

func (DonationDetails) Mission() MissionType    { return MissionDonation }
func (VolunteerDetails) Mission() MissionType   { return MissionVolunteer }
func (ContactDetails) Mission() MissionType     { return MissionContact }
func (InformationDetails) Mission() MissionType { return MissionInformation }

func (DonationDetails) isMissionDetails()    {}
func (VolunteerDetails) isMissionDetails()   {}
func (ContactDetails) isMissionDetails()     {}
func (InformationDetails) isMissionDetails() {}

// IntentResult is the routing decision for a free-text message.
type IntentResult struct {
	Intent       Intent
	Confidence   float64
	Suggestion   string
	RedirectPath *string
}

// DonationSuggestion is an advised amount and frequency.
type DonationSuggestion struct {
	SuggestedAmount int
	Frequency       Frequency
	Reason          string
	Message         string
}

// ContactTriage pre-fills category, priority and summary of a contact request.
type ContactTriage struct {
	Category ContactCategory
	Priority ContactPriority
	Summary  string
}
