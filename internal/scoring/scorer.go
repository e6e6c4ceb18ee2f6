// Package scoring assigns a heuristic confidence score and topic category to
// every assistant response before it is returned to the caller. The score is
// a best-effort signal over simple text features, not a calibrated model.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/almonzeir/sudannnnn/internal/domain"
)

// Confidence adjustments. Base score plus independent, cumulative deltas,
// clamped to [MinConfidence, MaxConfidence].
const (
	baseConfidence = 0.7

	detailedBonus    = 0.1 // response longer than 100 chars
	thoroughBonus    = 0.1 // response longer than 300 chars, on top of detailedBonus
	briefPenalty     = 0.2 // response shorter than 50 chars
	clinicalBonus    = 0.1 // medical or medication category
	emergencyPenalty = 0.2 // sounding confident about emergencies is undesirable

	MinConfidence = 0.1
	MaxConfidence = 1.0
)

// Metadata carries auxiliary facts about the scored response.
type Metadata struct {
	EstimatedTokens        int  `json:"estimatedTokens"`
	ResponseLength         int  `json:"responseLength"`
	HasConversationContext bool `json:"hasConversationContext"`
}

// Assessment is the quality annotation attached to one assistant response.
type Assessment struct {
	Confidence float64         `json:"confidence"`
	Category   domain.Category `json:"category"`
	Metadata   Metadata        `json:"metadata"`
}

// Score analyzes an assistant response together with the user message that
// prompted it. Deterministic and pure; empty inputs are ordinary short text,
// not an error.
func Score(responseText, userMessage string) Assessment {
	category := Classify(responseText, userMessage)
	length := utf8.RuneCountInString(responseText)

	confidence := baseConfidence
	if length > 100 {
		confidence += detailedBonus
	}
	if length > 300 {
		confidence += thoroughBonus
	}
	if length < 50 {
		confidence -= briefPenalty
	}
	if category == domain.CategoryMedical || category == domain.CategoryMedication {
		confidence += clinicalBonus
	}
	if category == domain.CategoryEmergency {
		confidence -= emergencyPenalty
	}

	confidence = math.Max(MinConfidence, math.Min(MaxConfidence, confidence))

	return Assessment{
		Confidence: confidence,
		Category:   category,
		Metadata: Metadata{
			EstimatedTokens: EstimateTokens(responseText + userMessage),
			ResponseLength:  length,
		},
	}
}

// Classify picks the topic category for a response/message pair. Categories
// are evaluated in fixed priority order (medical, medication, emergency,
// pharmacy); a keyword hit in either text is sufficient, and the default
// is general.
func Classify(responseText, userMessage string) domain.Category {
	response := strings.ToLower(responseText)
	message := strings.ToLower(userMessage)

	for _, set := range categoryKeywords {
		if containsAny(response, set.terms) || containsAny(message, set.terms) {
			return set.category
		}
	}
	return domain.CategoryGeneral
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// EstimateTokens approximates the token count of mixed English/Arabic text:
// roughly 4 chars per token for non-Arabic, 2.5 for Arabic (Unicode block
// U+0600-U+06FF). Feeds display metadata only, not billing.
func EstimateTokens(text string) int {
	arabic := 0
	total := 0
	for _, r := range text {
		total++
		if r >= 0x0600 && r <= 0x06FF {
			arabic++
		}
	}
	nonArabic := total - arabic

	return int(math.Ceil(float64(nonArabic)/4 + float64(arabic)/2.5))
}
