package models

type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Category      string   `json:"category,omitempty"`
	TimeLimit     int      `json:"timeLimit,omitempty"`
}

type CreateQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	TimeLimit     int      `json:"timeLimit"`
}

type UpdateQuestionRequest struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *string   `json:"correctAnswer"`
	Difficulty    *string   `json:"difficulty"`
	Category      *string   `json:"category"`
	TimeLimit     *int      `json:"timeLimit"`
}
