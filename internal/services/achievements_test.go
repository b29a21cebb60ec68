package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/store"
)

func docWithAchievement(cond models.AchievementCondition) *store.Document {
	doc := store.DefaultDocument()
	doc.Achievements = []models.Achievement{{
		ID:        "ach-1",
		Name:      "Test Achievement",
		Condition: cond,
		Active:    true,
	}}
	doc.Users = []models.User{{
		ID:     "u1",
		Name:   "Ann",
		Email:  "ann@example.com",
		Role:   models.RoleStudent,
		Status: models.StatusActive,
	}}
	return doc
}

func submit(doc *store.Document, id string, score, total int, completed bool) models.Result {
	result := models.Result{
		ID:             id,
		StudentName:    "Ann",
		Score:          score,
		TotalQuestions: total,
		Timestamp:      time.Now().UnixMilli(),
		Completed:      completed,
		Percentage:     float64(score) / float64(total) * 100,
	}
	doc.Results = append(doc.Results, result)
	ApplyResultSideEffects(doc, result)
	return result
}

func TestApplyResultSideEffects_EarnsOnThresholdCross(t *testing.T) {
	doc := docWithAchievement(models.AchievementCondition{QuizzesCompleted: 2})

	submit(doc, "r1", 3, 4, true)
	assert.Equal(t, 0, doc.Achievements[0].EarnedCount)

	submit(doc, "r2", 4, 4, true)
	assert.Equal(t, 1, doc.Achievements[0].EarnedCount)

	// Already earned: a third completion must not bump the count again.
	submit(doc, "r3", 2, 4, true)
	assert.Equal(t, 1, doc.Achievements[0].EarnedCount)
}

func TestApplyResultSideEffects_ScorePercentCondition(t *testing.T) {
	doc := docWithAchievement(models.AchievementCondition{ScorePercent: 90})

	submit(doc, "r1", 3, 4, true) // 75%
	assert.Equal(t, 0, doc.Achievements[0].EarnedCount)

	submit(doc, "r2", 4, 4, true) // 100%
	assert.Equal(t, 1, doc.Achievements[0].EarnedCount)
}

func TestApplyResultSideEffects_InactiveAchievementNeverFires(t *testing.T) {
	doc := docWithAchievement(models.AchievementCondition{QuizzesCompleted: 1})
	doc.Achievements[0].Active = false

	submit(doc, "r1", 4, 4, true)
	assert.Equal(t, 0, doc.Achievements[0].EarnedCount)
}

func TestApplyResultSideEffects_UpdatesUserCounters(t *testing.T) {
	doc := docWithAchievement(models.AchievementCondition{})

	submit(doc, "r1", 3, 4, true) // 75%
	submit(doc, "r2", 1, 4, true) // 25%

	assert.Equal(t, 2, doc.Users[0].QuizzesCompleted)
	assert.InDelta(t, 50.0, doc.Users[0].AverageScore, 0.01)
}

func TestApplyResultSideEffects_UnknownStudentIsHarmless(t *testing.T) {
	doc := docWithAchievement(models.AchievementCondition{QuizzesCompleted: 1})

	result := models.Result{
		ID:             "r1",
		StudentName:    "Nobody",
		Score:          4,
		TotalQuestions: 4,
		Completed:      true,
		Percentage:     100,
	}
	doc.Results = append(doc.Results, result)
	ApplyResultSideEffects(doc, result)

	assert.Equal(t, 1, doc.Achievements[0].EarnedCount)
	assert.Equal(t, 0, doc.Users[0].QuizzesCompleted)
}
