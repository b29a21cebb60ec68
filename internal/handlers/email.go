package handlers

import (
	"encoding/json"
	"net/http"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
	"quizzy-backend/internal/worker"
)

type EmailHandler struct {
	store *store.Store
	pool  *worker.Pool
}

func NewEmailHandler(st *store.Store, pool *worker.Pool) *EmailHandler {
	return &EmailHandler{store: st, pool: pool}
}

// QuizResults queues a score report email. The pass verdict is judged
// against the current passing score from settings.
func (h *EmailHandler) QuizResults(w http.ResponseWriter, r *http.Request) {
	var req models.EmailQuizResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	violations := []string{}
	if !services.ValidEmail(req.Email) {
		violations = append(violations, "email must be a valid address")
	}
	if req.StudentName == "" {
		violations = append(violations, "studentName is required")
	}
	if req.TotalQuestions <= 0 {
		violations = append(violations, "totalQuestions must be greater than 0")
	}
	if len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	var passingScore int
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		passingScore = doc.Settings.PassingScore
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	percentage := float64(req.Score) / float64(req.TotalQuestions) * 100
	job := worker.EmailJob{
		Kind:        worker.JobQuizResults,
		To:          req.Email,
		StudentName: req.StudentName,
		Score:       req.Score,
		Total:       req.TotalQuestions,
		Percentage:  percentage,
		Passed:      percentage >= float64(passingScore),
	}
	if err := h.pool.Enqueue(job); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResp("Email queue is full, try again later"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Quiz results email queued"})
}

func (h *EmailHandler) Verification(w http.ResponseWriter, r *http.Request) {
	h.tokenEmail(w, r, worker.JobVerification, "Verification email queued")
}

func (h *EmailHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	h.tokenEmail(w, r, worker.JobPasswordReset, "Password reset email queued")
}

func (h *EmailHandler) tokenEmail(w http.ResponseWriter, r *http.Request, kind, message string) {
	var req models.EmailTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	violations := []string{}
	if !services.ValidEmail(req.Email) {
		violations = append(violations, "email must be a valid address")
	}
	if req.Token == "" {
		violations = append(violations, "token is required")
	}
	if len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	job := worker.EmailJob{Kind: kind, To: req.Email, Token: req.Token}
	if err := h.pool.Enqueue(job); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResp("Email queue is full, try again later"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
