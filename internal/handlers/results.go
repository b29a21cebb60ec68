package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

type ResultHandler struct {
	store *store.Store
}

func NewResultHandler(st *store.Store) *ResultHandler {
	return &ResultHandler{store: st}
}

func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	var results []models.Result
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		results = doc.Results
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Create appends one quiz attempt. Results are never mutated afterwards;
// user counters and achievements are folded in during the same write.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	if violations := validateResult(req); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	result := models.Result{
		ID:             uuid.New().String(),
		StudentName:    req.StudentName,
		QuizID:         req.QuizID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Answers:        req.Answers,
		Timestamp:      req.Timestamp,
		Completed:      true,
	}
	if result.Answers == nil {
		result.Answers = []models.Answer{}
	}
	if result.Timestamp == 0 {
		result.Timestamp = time.Now().UnixMilli()
	}
	if req.Completed != nil {
		result.Completed = *req.Completed
	}
	result.Percentage = float64(result.Score) / float64(result.TotalQuestions) * 100

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		doc.Results = append(doc.Results, result)
		services.ApplyResultSideEffects(doc, result)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Stats serves result-level aggregates for the results dashboard.
func (h *ResultHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var stats services.ResultStats
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		stats = services.ComputeResultStats(doc.Results)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func validateResult(req models.CreateResultRequest) []string {
	violations := []string{}
	if req.StudentName == "" {
		violations = append(violations, "studentName is required")
	}
	if req.TotalQuestions <= 0 {
		violations = append(violations, "totalQuestions must be greater than 0")
	}
	if req.Score < 0 {
		violations = append(violations, "score must not be negative")
	}
	if req.TotalQuestions > 0 && req.Score > req.TotalQuestions {
		violations = append(violations, "score must not exceed totalQuestions")
	}
	return violations
}
