package models

// AchievementCondition holds the thresholds a student's history must meet.
// Zero-valued fields are not part of the condition.
type AchievementCondition struct {
	QuizzesCompleted int     `json:"quizzesCompleted,omitempty"`
	ScorePercent     float64 `json:"scorePercent,omitempty"`
	PassedQuizzes    int     `json:"passedQuizzes,omitempty"`
	MinAverage       float64 `json:"minAverage,omitempty"`
}

type Achievement struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Condition   AchievementCondition `json:"condition"`
	Active      bool                 `json:"active"`
	EarnedCount int                  `json:"earnedCount"`
}
