package models

// Answer records one question's outcome inside a quiz attempt.
type Answer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
	TimeSpent  int    `json:"timeSpent,omitempty"` // seconds
}

// Result is one quiz attempt. Results are append-only: once persisted they
// are never mutated.
type Result struct {
	ID             string   `json:"id"`
	StudentName    string   `json:"studentName"`
	QuizID         string   `json:"quizId,omitempty"`
	Score          int      `json:"score"`
	TotalQuestions int      `json:"totalQuestions"`
	Answers        []Answer `json:"answers"`
	Timestamp      int64    `json:"timestamp"` // epoch millis
	Completed      bool     `json:"completed"`
	Percentage     float64  `json:"percentage"`
}

type CreateResultRequest struct {
	StudentName    string   `json:"studentName"`
	QuizID         string   `json:"quizId"`
	Score          int      `json:"score"`
	TotalQuestions int      `json:"totalQuestions"`
	Answers        []Answer `json:"answers"`
	Timestamp      int64    `json:"timestamp"`
	Completed      *bool    `json:"completed"`
}
