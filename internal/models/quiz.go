package models

import "time"

// Quiz is a named, orderable view over a subset of the question bank.
type Quiz struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	QuestionIDs  []string  `json:"questionIds"`
	TimeLimit    int       `json:"timeLimit"`    // minutes
	PassingScore int       `json:"passingScore"` // percentage
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CreateQuizRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	QuestionIDs  []string `json:"questionIds"`
	TimeLimit    int      `json:"timeLimit"`
	PassingScore int      `json:"passingScore"`
	Published    bool     `json:"published"`
}

type UpdateQuizRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	QuestionIDs  *[]string `json:"questionIds"`
	TimeLimit    *int      `json:"timeLimit"`
	PassingScore *int      `json:"passingScore"`
	Published    *bool     `json:"published"`
}
