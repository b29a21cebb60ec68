package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCandidate() map[string]interface{} {
	return map[string]interface{}{
		"quizTimeLimit": float64(30),
		"passingScore":  float64(70),
		"allowRetakes":  true,
		"showResults":   true,
		"maxAttempts":   float64(3),
		"feedbackMode":  "afterSubmission",
		"gradingScheme": "percentage",
	}
}

func TestValidateSettings_ValidObjectHasNoViolations(t *testing.T) {
	assert.Empty(t, ValidateSettings(validCandidate()))
}

func TestValidateSettings_SingleViolations(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(map[string]interface{})
		expected string
	}{
		{
			"time limit above range",
			func(c map[string]interface{}) { c["quizTimeLimit"] = float64(500) },
			"quizTimeLimit must be between 1 and 180",
		},
		{
			"time limit below range",
			func(c map[string]interface{}) { c["quizTimeLimit"] = float64(0) },
			"quizTimeLimit must be between 1 and 180",
		},
		{
			"passing score out of range",
			func(c map[string]interface{}) { c["passingScore"] = float64(101) },
			"passingScore must be between 0 and 100",
		},
		{
			"wrong type for boolean",
			func(c map[string]interface{}) { c["allowRetakes"] = "yes" },
			"allowRetakes must be a boolean",
		},
		{
			"wrong type for number",
			func(c map[string]interface{}) { c["maxAttempts"] = "three" },
			"maxAttempts must be a number",
		},
		{
			"max attempts out of range",
			func(c map[string]interface{}) { c["maxAttempts"] = float64(11) },
			"maxAttempts must be between 1 and 10",
		},
		{
			"feedback mode not in enum",
			func(c map[string]interface{}) { c["feedbackMode"] = "bogus" },
			"feedbackMode must be one of: immediate, afterSubmission, never",
		},
		{
			"grading scheme not in enum",
			func(c map[string]interface{}) { c["gradingScheme"] = "letter" },
			"gradingScheme must be one of: percentage, points, custom",
		},
		{
			"missing required field",
			func(c map[string]interface{}) { delete(c, "showResults") },
			"showResults is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			candidate := validCandidate()
			tc.mutate(candidate)

			violations := ValidateSettings(candidate)
			assert.Len(t, violations, 1)
			assert.Equal(t, tc.expected, violations[0])
		})
	}
}

func TestValidateSettings_CollectsAllViolations(t *testing.T) {
	candidate := validCandidate()
	candidate["quizTimeLimit"] = float64(500)
	candidate["feedbackMode"] = "bogus"

	violations := ValidateSettings(candidate)
	assert.Len(t, violations, 2)
	assert.Contains(t, violations, "quizTimeLimit must be between 1 and 180")
	assert.Contains(t, violations, "feedbackMode must be one of: immediate, afterSubmission, never")
}

func TestValidateSettings_EmptyObjectReportsEveryField(t *testing.T) {
	violations := ValidateSettings(map[string]interface{}{})
	assert.Len(t, violations, 7)
	assert.Equal(t, "quizTimeLimit is required", violations[0])
}

func TestValidateSettings_IgnoresUnrecognizedFields(t *testing.T) {
	candidate := validCandidate()
	candidate["maxQuestions"] = "not even a number"
	candidate["somethingElse"] = 42

	assert.Empty(t, ValidateSettings(candidate))
}
