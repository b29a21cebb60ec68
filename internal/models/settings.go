package models

import "time"

const (
	FeedbackImmediate       = "immediate"
	FeedbackAfterSubmission = "afterSubmission"
	FeedbackNever           = "never"

	GradingPercentage = "percentage"
	GradingPoints     = "points"
	GradingCustom     = "custom"
)

// Settings is the single process-wide configuration document. Exactly one
// instance lives in the store; reset restores DefaultSettings.
type Settings struct {
	QuizTimeLimit int                   `json:"quizTimeLimit"` // minutes
	PassingScore  int                   `json:"passingScore"`  // percentage
	MaxQuestions  int                   `json:"maxQuestions"`
	MaxAttempts   int                   `json:"maxAttempts"`
	AllowRetakes  bool                  `json:"allowRetakes"`
	ShowResults   bool                  `json:"showResults"`
	FeedbackMode  string                `json:"feedbackMode"`
	GradingScheme string                `json:"gradingScheme"`
	Analytics     AnalyticsSettings     `json:"analytics"`
	Accessibility AccessibilitySettings `json:"accessibility"`
	LastUpdated   time.Time             `json:"lastUpdated"`
}

type AnalyticsSettings struct {
	TrackPerformance bool `json:"trackPerformance"`
	ShareAnonymous   bool `json:"shareAnonymous"`
}

type AccessibilitySettings struct {
	HighContrast bool `json:"highContrast"`
	LargeText    bool `json:"largeText"`
}

// DefaultSettings is the one canonical default used for initialization,
// reset, and missing-field backfill.
func DefaultSettings() Settings {
	return Settings{
		QuizTimeLimit: 30,
		PassingScore:  70,
		MaxQuestions:  20,
		MaxAttempts:   3,
		AllowRetakes:  true,
		ShowResults:   true,
		FeedbackMode:  FeedbackAfterSubmission,
		GradingScheme: GradingPercentage,
		Analytics: AnalyticsSettings{
			TrackPerformance: true,
			ShareAnonymous:   false,
		},
		Accessibility: AccessibilitySettings{
			HighContrast: false,
			LargeText:    false,
		},
	}
}
