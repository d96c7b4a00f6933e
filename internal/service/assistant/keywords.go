package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/nexus-missions/internal/domain"
)

// Donation keyword buckets, in evaluation order.
const (
	BucketBudget   = "budget"
	BucketRegular  = "regular"
	BucketGenerous = "generous"
)

// Keywords holds the bilingual cue lists used by the fallback rules.
// Lists are stored folded (lowercase, no diacritics).
type Keywords struct {
	Intents  map[domain.Intent][]string `json:"intents"`
	Donation map[string][]string        `json:"donation"`
}

type intentRule struct {
	intent     domain.Intent
	confidence float64
	suggestion localized
}

// Evaluated top to bottom; the first rule with a matching cue wins.
var intentRules = []intentRule{
	{
		intent:     domain.IntentDonation,
		confidence: 0.8,
		suggestion: localized{
			"Tu veux nous soutenir financièrement ? C'est génial ! Je t'ouvre la section Don.",
			"You want to support us financially? That's great! I'm opening the Donation section.",
		},
	},
	{
		intent:     domain.IntentVolunteer,
		confidence: 0.8,
		suggestion: localized{
			"Tu veux rejoindre notre équipe ? Super ! Je t'ouvre la section Bénévolat.",
			"You want to join our team? Awesome! I'm opening the Volunteer section.",
		},
	},
	{
		intent:     domain.IntentInformation,
		confidence: 0.7,
		suggestion: localized{
			"Tu cherches des informations ? Je t'ouvre la section Demande d'infos.",
			"Looking for information? I'm opening the Info Request section.",
		},
	},
	{
		intent:     domain.IntentContact,
		confidence: 0.7,
		suggestion: localized{
			"Tu veux nous contacter ? Je t'ouvre la section Contact.",
			"You want to contact us? I'm opening the Contact section.",
		},
	},
}

var unclearRule = intentRule{
	intent:     domain.IntentUnclear,
	confidence: 0.3,
	suggestion: localized{
		"Dis-moi ce que tu souhaites faire : faire un don, devenir bénévole, nous contacter, ou demander des informations ?",
		"Tell me what you want to do: make a donation, become a volunteer, contact us, or ask for information?",
	},
}

type donationRule struct {
	bucket    string
	amount    int
	frequency domain.Frequency
	reason    localized
	message   localized
}

var donationRules = []donationRule{
	{
		bucket:    BucketBudget,
		amount:    5,
		frequency: domain.FrequencyOnce,
		reason:    localized{"Premier pas dans le Nexus {{year}}", "First step in Nexus {{year}}"},
		message: localized{
			"Même 5€ font une vraie différence ! Chaque contribution renforce notre communauté.",
			"Even 5€ makes a real difference! Every contribution strengthens our community.",
		},
	},
	{
		bucket:    BucketRegular,
		amount:    10,
		frequency: domain.FrequencyMonthly,
		reason:    localized{"Gardien mensuel du Nexus {{year}}", "Monthly Guardian of Nexus {{year}}"},
		message: localized{
			"Un don mensuel nous permet de planifier à long terme. Tu deviens un véritable pilier !",
			"A monthly donation allows us to plan for the long term. You become a true pillar!",
		},
	},
	{
		bucket:    BucketGenerous,
		amount:    100,
		frequency: domain.FrequencyOnce,
		reason:    localized{"Chevalier du Code {{year}}", "Knight of Code {{year}}"},
		message: localized{
			"Quelle générosité ! Avec ce don, tu deviens un véritable Chevalier du Code !",
			"Such generosity! With this donation, you become a true Knight of Code!",
		},
	},
}

var defaultDonationRule = donationRule{
	amount:    25,
	frequency: domain.FrequencyOnce,
	reason:    defaultDonationReason,
	message: localized{
		"25€ est un excellent choix pour soutenir nos projets ! Tu fais partie des bâtisseurs du Nexus.",
		"25€ is an excellent choice to support our projects! You are part of the Nexus builders.",
	},
}

// DefaultKeywords returns the built-in cue lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Intents: map[domain.Intent][]string{
			domain.IntentDonation: {
				"don", "argent", "aider financ", "contribuer", "soutenir",
				"donate", "money", "help financ", "contribute", "support",
			},
			domain.IntentVolunteer: {
				"bénévol", "rejoindre", "guilde", "compétence", "temps",
				"volunteer", "join", "guild", "skill", "time",
			},
			domain.IntentInformation: {
				"question", "info", "savoir", "comment",
				"ask", "know", "how",
			},
			domain.IntentContact: {
				"contact", "message", "parler", "écrire",
				"talk", "write",
			},
		},
		Donation: map[string][]string{
			BucketBudget: {
				"pas beaucoup", "pas trop", "peu", "petit", "budget",
				"not much", "not too much", "little", "small",
			},
			BucketRegular: {
				"régulier", "mensuel", "chaque mois",
				"regular", "monthly", "every month",
			},
			BucketGenerous: {
				"généreux", "beaucoup", "maximum",
				"generous", "lot", "max",
			},
		},
	}.folded()
}

// ParseKeywords decodes an override document and merges it over the
// defaults. Lists absent from the document keep their default values.
func ParseKeywords(raw []byte) (Keywords, error) {
	var doc Keywords
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Keywords{}, fmt.Errorf("decode keywords: %w", err)
	}

	var errs []domain.FieldError
	for intent := range doc.Intents {
		if intent == domain.IntentUnclear || !intent.IsValid() {
			errs = append(errs, domain.FieldError{Field: "intents." + string(intent), Message: "unknown intent"})
		}
	}
	for bucket := range doc.Donation {
		switch bucket {
		case BucketBudget, BucketRegular, BucketGenerous:
		default:
			errs = append(errs, domain.FieldError{Field: "donation." + bucket, Message: "unknown bucket"})
		}
	}
	if len(errs) > 0 {
		return Keywords{}, domain.NewValidationErrors(errs)
	}

	merged := DefaultKeywords()
	doc = doc.folded()
	for intent, words := range doc.Intents {
		merged.Intents[intent] = words
	}
	for bucket, words := range doc.Donation {
		merged.Donation[bucket] = words
	}
	return merged, nil
}

func (k Keywords) folded() Keywords {
	out := Keywords{
		Intents:  make(map[domain.Intent][]string, len(k.Intents)),
		Donation: make(map[string][]string, len(k.Donation)),
	}
	for intent, words := range k.Intents {
		out.Intents[intent] = foldAll(words)
	}
	for bucket, words := range k.Donation {
		out.Donation[bucket] = foldAll(words)
	}
	return out
}

func foldAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if f := domain.FoldText(w); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// containsAny reports whether folded text contains one of the folded cues.
func containsAny(text string, cues []string) bool {
	for _, c := range cues {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}
