package handlers

import (
	"net/http"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/store"
)

type AchievementHandler struct {
	store *store.Store
}

func NewAchievementHandler(st *store.Store) *AchievementHandler {
	return &AchievementHandler{store: st}
}

func (h *AchievementHandler) List(w http.ResponseWriter, r *http.Request) {
	var achievements []models.Achievement
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		achievements = doc.Achievements
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, achievements)
}
