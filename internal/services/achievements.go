package services

import (
	"strings"
	"time"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/store"
)

// studentRecord aggregates one student's attempt history for achievement
// and counter evaluation.
type studentRecord struct {
	completed     int
	passed        int
	bestPercent   float64
	averagePct    float64
	totalPercent  float64
	totalAttempts int
}

func buildStudentRecord(results []models.Result, studentName string, passingScore int) studentRecord {
	rec := studentRecord{}
	for _, r := range results {
		if !strings.EqualFold(r.StudentName, studentName) {
			continue
		}
		rec.totalAttempts++
		rec.totalPercent += r.Percentage
		if r.Percentage > rec.bestPercent {
			rec.bestPercent = r.Percentage
		}
		if r.Completed {
			rec.completed++
		}
		if r.Percentage >= float64(passingScore) {
			rec.passed++
		}
	}
	if rec.totalAttempts > 0 {
		rec.averagePct = rec.totalPercent / float64(rec.totalAttempts)
	}
	return rec
}

func (r studentRecord) meets(c models.AchievementCondition) bool {
	if c.QuizzesCompleted > 0 && r.completed < c.QuizzesCompleted {
		return false
	}
	if c.ScorePercent > 0 && r.bestPercent < c.ScorePercent {
		return false
	}
	if c.PassedQuizzes > 0 && r.passed < c.PassedQuizzes {
		return false
	}
	if c.MinAverage > 0 && r.averagePct < c.MinAverage {
		return false
	}
	// A condition with no thresholds set never fires.
	return c.QuizzesCompleted > 0 || c.ScorePercent > 0 || c.PassedQuizzes > 0 || c.MinAverage > 0
}

// ApplyResultSideEffects folds a freshly appended result into the rest of
// the document: the submitting user's aggregate counters are recomputed and
// active achievements the submission newly satisfies get their earned count
// bumped. The result must already be in doc.Results.
func ApplyResultSideEffects(doc *store.Document, result models.Result) {
	passing := doc.Settings.PassingScore

	after := buildStudentRecord(doc.Results, result.StudentName, passing)

	withoutLatest := make([]models.Result, 0, len(doc.Results))
	for _, r := range doc.Results {
		if r.ID != result.ID {
			withoutLatest = append(withoutLatest, r)
		}
	}
	before := buildStudentRecord(withoutLatest, result.StudentName, passing)

	for i := range doc.Achievements {
		a := &doc.Achievements[i]
		if !a.Active {
			continue
		}
		if !before.meets(a.Condition) && after.meets(a.Condition) {
			a.EarnedCount++
		}
	}

	for i := range doc.Users {
		u := &doc.Users[i]
		if !strings.EqualFold(u.Name, result.StudentName) {
			continue
		}
		u.QuizzesCompleted = after.completed
		u.AverageScore = after.averagePct
		u.UpdatedAt = time.Now().UTC()
	}
}
