package store

import (
	"time"

	"github.com/google/uuid"

	"quizzy-backend/internal/models"
)

// SchemaVersion identifies the on-disk document layout. The reference data
// file had no version field; it is added here so the layout can evolve.
const SchemaVersion = 1

// Document is the whole persisted state. Every request reads or rewrites it
// in full; there is no partial update path.
type Document struct {
	SchemaVersion int                  `json:"schemaVersion"`
	Questions     []models.Question    `json:"questions"`
	Quizzes       []models.Quiz        `json:"quizzes"`
	Results       []models.Result      `json:"results"`
	Users         []models.User        `json:"users"`
	Settings      models.Settings      `json:"settings"`
	Achievements  []models.Achievement `json:"achievements"`
	AuditLogs     []models.AuditLog    `json:"auditLogs"`
}

// DefaultDocument builds the seed state written on first load: one sample
// question, one quiz referencing it, default settings and achievements.
func DefaultDocument() *Document {
	now := time.Now().UTC()
	question := models.Question{
		ID:            uuid.New().String(),
		Question:      "What is the capital of France?",
		Options:       []string{"Berlin", "Madrid", "Paris", "Rome"},
		CorrectAnswer: "Paris",
		Difficulty:    "easy",
		Category:      "geography",
		TimeLimit:     30,
	}
	quiz := models.Quiz{
		ID:           uuid.New().String(),
		Title:        "Getting Started Quiz",
		Description:  "A sample quiz to verify your setup.",
		QuestionIDs:  []string{question.ID},
		TimeLimit:    10,
		PassingScore: 70,
		Published:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return &Document{
		SchemaVersion: SchemaVersion,
		Questions:     []models.Question{question},
		Quizzes:       []models.Quiz{quiz},
		Results:       []models.Result{},
		Users:         []models.User{},
		Settings:      models.DefaultSettings(),
		Achievements:  defaultAchievements(),
		AuditLogs:     []models.AuditLog{},
	}
}

func defaultAchievements() []models.Achievement {
	return []models.Achievement{
		{
			ID:          uuid.New().String(),
			Name:        "First Steps",
			Description: "Complete your first quiz",
			Icon:        "star",
			Condition:   models.AchievementCondition{QuizzesCompleted: 1},
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "High Achiever",
			Description: "Score 90% or higher on a quiz",
			Icon:        "trophy",
			Condition:   models.AchievementCondition{ScorePercent: 90},
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Perfectionist",
			Description: "Score 100% on a quiz",
			Icon:        "medal",
			Condition:   models.AchievementCondition{ScorePercent: 100},
			Active:      true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Quiz Master",
			Description: "Complete 10 quizzes with a 75% average",
			Icon:        "crown",
			Condition:   models.AchievementCondition{QuizzesCompleted: 10, MinAverage: 75},
			Active:      true,
		},
	}
}

// normalize backfills missing collections and settings fields so callers
// never need nil checks on the document. The canonical defaults cover any
// field a hand-edited or pre-version data file left out.
func (d *Document) normalize() {
	if d.SchemaVersion == 0 {
		d.SchemaVersion = SchemaVersion
	}
	if d.Questions == nil {
		d.Questions = []models.Question{}
	}
	if d.Quizzes == nil {
		d.Quizzes = []models.Quiz{}
	}
	if d.Results == nil {
		d.Results = []models.Result{}
	}
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Achievements == nil {
		d.Achievements = []models.Achievement{}
	}
	if d.AuditLogs == nil {
		d.AuditLogs = []models.AuditLog{}
	}

	defaults := models.DefaultSettings()
	if d.Settings.QuizTimeLimit == 0 {
		d.Settings.QuizTimeLimit = defaults.QuizTimeLimit
	}
	if d.Settings.PassingScore == 0 {
		d.Settings.PassingScore = defaults.PassingScore
	}
	if d.Settings.MaxQuestions == 0 {
		d.Settings.MaxQuestions = defaults.MaxQuestions
	}
	if d.Settings.MaxAttempts == 0 {
		d.Settings.MaxAttempts = defaults.MaxAttempts
	}
	if d.Settings.FeedbackMode == "" {
		d.Settings.FeedbackMode = defaults.FeedbackMode
	}
	if d.Settings.GradingScheme == "" {
		d.Settings.GradingScheme = defaults.GradingScheme
	}
}
