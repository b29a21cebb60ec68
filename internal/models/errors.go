package models

// ErrorResponse is the error envelope for every 4xx/5xx response. Details
// carries the full violation list for collect-all validation failures.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type EmailQuizResultsRequest struct {
	Email          string `json:"email"`
	StudentName    string `json:"studentName"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

type EmailTokenRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
