package domain

import "strings"

// MissionType discriminates the four submission forms.
// Wire values are French and shared with the web client.
type MissionType string

const (
	MissionDonation    MissionType = "don"
	MissionVolunteer   MissionType = "benevolat"
	MissionContact     MissionType = "contact"
	MissionInformation MissionType = "informations"
)

func (m MissionType) String() string { return string(m) }

func (m MissionType) IsValid() bool {
	switch m {
	case MissionDonation, MissionVolunteer, MissionContact, MissionInformation:
		return true
	}
	return false
}

// RedirectPath returns the client route of the mission form.
func (m MissionType) RedirectPath() string {
	return "/mission/" + string(m)
}

// Emotion is the tone requested for the thank-you message.
type Emotion string

const (
	EmotionEpic   Emotion = "epique"
	EmotionCaring Emotion = "bienveillant"
	EmotionFunny  Emotion = "drole"
)

func (e Emotion) String() string { return string(e) }

func (e Emotion) IsValid() bool {
	switch e {
	case EmotionEpic, EmotionCaring, EmotionFunny:
		return true
	}
	return false
}

// Frequency of a donation.
type Frequency string

const (
	FrequencyOnce    Frequency = "ponctuel"
	FrequencyMonthly Frequency = "mensuel"
	FrequencyYearly  Frequency = "annuel"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOnce, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// ContactCategory is the triage bucket of a contact request.
type ContactCategory string

const (
	CategoryTechnical    ContactCategory = "technique"
	CategoryGeneral      ContactCategory = "generale"
	CategoryRegistration ContactCategory = "inscription"
	CategoryComplaint    ContactCategory = "plainte"
	CategoryPraise       ContactCategory = "felicitations"
	CategoryOther        ContactCategory = "autre"
)

func (c ContactCategory) String() string { return string(c) }

func (c ContactCategory) IsValid() bool {
	switch c {
	case CategoryTechnical, CategoryGeneral, CategoryRegistration,
		CategoryComplaint, CategoryPraise, CategoryOther:
		return true
	}
	return false
}

// ContactPriority is the triage urgency of a contact request.
type ContactPriority string

const (
	PriorityHigh   ContactPriority = "haute"
	PriorityMedium ContactPriority = "moyenne"
	PriorityLow    ContactPriority = "basse"
)

func (p ContactPriority) String() string { return string(p) }

func (p ContactPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Intent is the outcome of free-text routing: a mission or IntentUnclear.
type Intent string

const (
	IntentDonation    Intent = Intent(MissionDonation)
	IntentVolunteer   Intent = Intent(MissionVolunteer)
	IntentContact     Intent = Intent(MissionContact)
	IntentInformation Intent = Intent(MissionInformation)
	IntentUnclear     Intent = "unclear"
)

func (i Intent) String() string { return string(i) }

func (i Intent) IsValid() bool {
	return i == IntentUnclear || MissionType(i).IsValid()
}

// RedirectPath maps an intent to its client route. Unclear has none.
func (i Intent) RedirectPath() *string {
	if i == IntentUnclear || !i.IsValid() {
		return nil
	}
	p := MissionType(i).RedirectPath()
	return &p
}

// Language selects localized fallback texts.
type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
)

// ParseLanguage defaults to French; any other explicit tag answers in English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fr":
		return LanguageFR
	default:
		return LanguageEN
	}
}

// Pick returns fr or en depending on the language.
func (l Language) Pick(fr, en string) string {
	if l == LanguageFR {
		return fr
	}
	return en
}
