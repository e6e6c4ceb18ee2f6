package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almonzeir/sudannnnn/internal/domain"
)

func TestScore_LongMedicationResponseMaxesOut(t *testing.T) {
	response := strings.Repeat("Take this medication with food. ", 11) // 352 chars

	assessment := Score(response, "what is the dosage?")

	// 0.7 base + 0.1 detailed + 0.1 thorough + 0.1 clinical, clamped to 1.0.
	assert.Equal(t, domain.CategoryMedication, assessment.Category)
	assert.InDelta(t, 1.0, assessment.Confidence, 1e-9)
	assert.Equal(t, 352, assessment.Metadata.ResponseLength)
}

func TestScore_ShortEmergencyResponse(t *testing.T) {
	assessment := Score("Go to the hospital now.", "")

	// 0.7 base - 0.2 brief - 0.2 emergency = 0.3.
	assert.Equal(t, domain.CategoryEmergency, assessment.Category)
	assert.InDelta(t, 0.3, assessment.Confidence, 1e-9)
}

func TestScore_ConfidenceNeverBelowFloor(t *testing.T) {
	assessment := Score("hospital", "urgent")

	assert.GreaterOrEqual(t, assessment.Confidence, MinConfidence)
	assert.LessOrEqual(t, assessment.Confidence, MaxConfidence)
}

func TestScore_EmptyInputs(t *testing.T) {
	assessment := Score("", "")

	// Empty text is just very short general text: 0.7 - 0.2 = 0.5.
	assert.Equal(t, domain.CategoryGeneral, assessment.Category)
	assert.InDelta(t, 0.5, assessment.Confidence, 1e-9)
	assert.Equal(t, 0, assessment.Metadata.ResponseLength)
	assert.Equal(t, 0, assessment.Metadata.EstimatedTokens)
}

func TestScore_MediumGeneralResponse(t *testing.T) {
	response := strings.Repeat("Thank you for your question. ", 5) // 145 chars

	assessment := Score(response, "hello")

	// 0.7 base + 0.1 detailed.
	assert.Equal(t, domain.CategoryGeneral, assessment.Category)
	assert.InDelta(t, 0.8, assessment.Confidence, 1e-9)
}

func TestScore_ArabicResponseLengthCountsRunes(t *testing.T) {
	assessment := Score("خذ الدواء مع الطعام", "")

	assert.Equal(t, domain.CategoryMedication, assessment.Category)
	assert.Equal(t, 19, assessment.Metadata.ResponseLength)
}

func TestClassify_PriorityOrder(t *testing.T) {
	// "pharmacy" appears in both the medication and pharmacy keyword sets;
	// medication wins because it is checked first. A medical keyword beats
	// everything.
	assert.Equal(t, domain.CategoryMedication, Classify("visit the pharmacy", ""))
	assert.Equal(t, domain.CategoryMedical, Classify("the pharmacy can help with your fever", ""))
}

func TestClassify_MatchesUserMessage(t *testing.T) {
	assert.Equal(t, domain.CategoryMedical, Classify("I can help with that.", "I have a headache"))
}

func TestClassify_ArabicKeywords(t *testing.T) {
	assert.Equal(t, domain.CategoryMedical, Classify("", "عندي صداع شديد"))
	assert.Equal(t, domain.CategoryEmergency, Classify("اذهب إلى المستشفى فوراً", ""))
	assert.Equal(t, domain.CategoryPharmacy, Classify("", "وين أقرب موقع؟"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.CategoryEmergency, Classify("This is an EMERGENCY", ""))
}

func TestClassify_DefaultsToGeneral(t *testing.T) {
	assert.Equal(t, domain.CategoryGeneral, Classify("hello there", "how are you"))
}

func TestEstimateTokens_English(t *testing.T) {
	assert.Equal(t, 2, EstimateTokens("12345678"))
	assert.Equal(t, 3, EstimateTokens("123456789"))
}

func TestEstimateTokens_Arabic(t *testing.T) {
	// 5 Arabic runes at 2.5 chars per token round up to 2.
	assert.Equal(t, 2, EstimateTokens("مرحبا"))
}

func TestEstimateTokens_Mixed(t *testing.T) {
	// 8 non-Arabic (incl. the space) + 5 Arabic: 2 + 2 = 4.
	assert.Equal(t, 4, EstimateTokens("hello12 مرحبا"))
}

func TestEstimateTokens_Empty(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
}
