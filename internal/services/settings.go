package services

import (
	"fmt"
	"strings"
)

// settingsRule constrains one recognized settings field. Fields without a
// range or value list only get the type check.
type settingsRule struct {
	field         string
	kind          string // "number", "boolean" or "string"
	min, max      float64
	ranged        bool
	allowedValues []string
}

// settingsRules is ordered so violation messages come back in a stable,
// user-facing order.
var settingsRules = []settingsRule{
	{field: "quizTimeLimit", kind: "number", min: 1, max: 180, ranged: true},
	{field: "passingScore", kind: "number", min: 0, max: 100, ranged: true},
	{field: "allowRetakes", kind: "boolean"},
	{field: "showResults", kind: "boolean"},
	{field: "maxAttempts", kind: "number", min: 1, max: 10, ranged: true},
	{field: "feedbackMode", kind: "string", allowedValues: []string{"immediate", "afterSubmission", "never"}},
	{field: "gradingScheme", kind: "string", allowedValues: []string{"percentage", "points", "custom"}},
}

// ValidateSettings checks a candidate settings object against the rule
// table and returns every violation, not just the first, so callers can
// show users all problems at once. An empty list means the candidate is
// valid. Unrecognized fields are ignored.
func ValidateSettings(candidate map[string]interface{}) []string {
	violations := []string{}

	for _, rule := range settingsRules {
		value, ok := candidate[rule.field]
		if !ok || value == nil {
			violations = append(violations, fmt.Sprintf("%s is required", rule.field))
			continue
		}

		switch rule.kind {
		case "number":
			num, ok := value.(float64)
			if !ok {
				violations = append(violations, fmt.Sprintf("%s must be a number", rule.field))
				continue
			}
			if rule.ranged && (num < rule.min || num > rule.max) {
				violations = append(violations, fmt.Sprintf("%s must be between %g and %g", rule.field, rule.min, rule.max))
			}
		case "boolean":
			if _, ok := value.(bool); !ok {
				violations = append(violations, fmt.Sprintf("%s must be a boolean", rule.field))
			}
		case "string":
			str, ok := value.(string)
			if !ok {
				violations = append(violations, fmt.Sprintf("%s must be a string", rule.field))
				continue
			}
			if len(rule.allowedValues) > 0 && !contains(rule.allowedValues, str) {
				violations = append(violations, fmt.Sprintf("%s must be one of: %s", rule.field, strings.Join(rule.allowedValues, ", ")))
			}
		}
	}

	return violations
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
