package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

type QuestionHandler struct {
	store *store.Store
}

func NewQuestionHandler(st *store.Store) *QuestionHandler {
	return &QuestionHandler{store: st}
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	var questions []models.Question
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		questions = doc.Questions
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var question *models.Question
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		for i := range doc.Questions {
			if doc.Questions[i].ID == id {
				question = &doc.Questions[i]
				return nil
			}
		}
		return &services.NotFoundError{Message: "Question not found"}
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	if violations := validateQuestion(req); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	question := models.Question{
		ID:            uuid.New().String(),
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    req.Difficulty,
		Category:      req.Category,
		TimeLimit:     req.TimeLimit,
	}

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		doc.Questions = append(doc.Questions, question)
		appendAudit(doc, r, "question_created", "Created question "+question.ID)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, question)
}

func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	var updated models.Question
	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		for i := range doc.Questions {
			if doc.Questions[i].ID != id {
				continue
			}
			q := &doc.Questions[i]
			if req.Question != nil {
				q.Question = *req.Question
			}
			if req.Options != nil {
				q.Options = *req.Options
			}
			if req.CorrectAnswer != nil {
				q.CorrectAnswer = *req.CorrectAnswer
			}
			if req.Difficulty != nil {
				q.Difficulty = *req.Difficulty
			}
			if req.Category != nil {
				q.Category = *req.Category
			}
			if req.TimeLimit != nil {
				q.TimeLimit = *req.TimeLimit
			}
			if len(q.Options) < 2 || !optionListed(q.Options, q.CorrectAnswer) {
				return &services.ValidationError{Violations: []string{"correctAnswer must be one of options"}}
			}
			updated = *q
			appendAudit(doc, r, "question_updated", "Updated question "+q.ID)
			return nil
		}
		return &services.NotFoundError{Message: "Question not found"}
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		kept := make([]models.Question, 0, len(doc.Questions))
		found := false
		for _, q := range doc.Questions {
			if q.ID == id {
				found = true
				continue
			}
			kept = append(kept, q)
		}
		if !found {
			return &services.NotFoundError{Message: "Question not found"}
		}
		doc.Questions = kept
		appendAudit(doc, r, "question_deleted", "Deleted question "+id)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Question deleted"})
}

// Stats serves per-question accuracy and timing for the admin dashboard.
func (h *QuestionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var stats []services.QuestionStats
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		stats = services.ComputeQuestionStats(doc.Questions, doc.Results)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func validateQuestion(req models.CreateQuestionRequest) []string {
	violations := []string{}
	if req.Question == "" {
		violations = append(violations, "question is required")
	}
	if len(req.Options) < 2 {
		violations = append(violations, "options must contain at least 2 entries")
	}
	if req.CorrectAnswer == "" {
		violations = append(violations, "correctAnswer is required")
	} else if len(req.Options) >= 2 && !optionListed(req.Options, req.CorrectAnswer) {
		violations = append(violations, "correctAnswer must be one of options")
	}
	if req.TimeLimit < 0 {
		violations = append(violations, fmt.Sprintf("timeLimit must not be negative, got %d", req.TimeLimit))
	}
	return violations
}

func optionListed(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
