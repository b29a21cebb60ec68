package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

type QuizHandler struct {
	store *store.Store
}

func NewQuizHandler(st *store.Store) *QuizHandler {
	return &QuizHandler{store: st}
}

func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	var quizzes []models.Quiz
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		quizzes = doc.Quizzes
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var quiz *models.Quiz
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		for i := range doc.Quizzes {
			if doc.Quizzes[i].ID == id {
				quiz = &doc.Quizzes[i]
				return nil
			}
		}
		return &services.NotFoundError{Message: "Quiz not found"}
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	if violations := validateQuizFields(req.Title, req.TimeLimit, req.PassingScore); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	now := time.Now().UTC()
	quiz := models.Quiz{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		QuestionIDs:  req.QuestionIDs,
		TimeLimit:    req.TimeLimit,
		PassingScore: req.PassingScore,
		Published:    req.Published,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if quiz.QuestionIDs == nil {
		quiz.QuestionIDs = []string{}
	}

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		if violations := unknownQuestionIDs(doc, quiz.QuestionIDs); len(violations) > 0 {
			return &services.ValidationError{Violations: violations}
		}
		doc.Quizzes = append(doc.Quizzes, quiz)
		appendAudit(doc, r, "quiz_created", "Created quiz "+quiz.Title)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quiz)
}

func (h *QuizHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	var updated models.Quiz
	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		for i := range doc.Quizzes {
			if doc.Quizzes[i].ID != id {
				continue
			}
			q := &doc.Quizzes[i]
			if req.Title != nil {
				q.Title = *req.Title
			}
			if req.Description != nil {
				q.Description = *req.Description
			}
			if req.QuestionIDs != nil {
				if violations := unknownQuestionIDs(doc, *req.QuestionIDs); len(violations) > 0 {
					return &services.ValidationError{Violations: violations}
				}
				q.QuestionIDs = *req.QuestionIDs
			}
			if req.TimeLimit != nil {
				q.TimeLimit = *req.TimeLimit
			}
			if req.PassingScore != nil {
				q.PassingScore = *req.PassingScore
			}
			if req.Published != nil {
				q.Published = *req.Published
			}
			if violations := validateQuizFields(q.Title, q.TimeLimit, q.PassingScore); len(violations) > 0 {
				return &services.ValidationError{Violations: violations}
			}
			q.UpdatedAt = time.Now().UTC()
			updated = *q
			appendAudit(doc, r, "quiz_updated", "Updated quiz "+q.Title)
			return nil
		}
		return &services.NotFoundError{Message: "Quiz not found"}
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		kept := make([]models.Quiz, 0, len(doc.Quizzes))
		found := false
		for _, q := range doc.Quizzes {
			if q.ID == id {
				found = true
				continue
			}
			kept = append(kept, q)
		}
		if !found {
			return &services.NotFoundError{Message: "Quiz not found"}
		}
		doc.Quizzes = kept
		appendAudit(doc, r, "quiz_deleted", "Deleted quiz "+id)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Quiz deleted"})
}

func validateQuizFields(title string, timeLimit, passingScore int) []string {
	violations := []string{}
	if title == "" {
		violations = append(violations, "title is required")
	}
	if timeLimit < 1 || timeLimit > 180 {
		violations = append(violations, "timeLimit must be between 1 and 180")
	}
	if passingScore < 0 || passingScore > 100 {
		violations = append(violations, "passingScore must be between 0 and 100")
	}
	return violations
}

func unknownQuestionIDs(doc *store.Document, ids []string) []string {
	known := make(map[string]bool, len(doc.Questions))
	for _, q := range doc.Questions {
		known[q.ID] = true
	}
	violations := []string{}
	for _, id := range ids {
		if !known[id] {
			violations = append(violations, fmt.Sprintf("unknown question id %q", id))
		}
	}
	return violations
}
