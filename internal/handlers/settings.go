package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		settings = doc.Settings
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// Update validates the candidate against the rule table before anything is
// persisted. The body is decoded twice: once loosely for the collect-all
// validator (which needs to see wrong-typed fields) and once into the typed
// settings struct for persistence.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	var candidate map[string]interface{}
	if err := json.Unmarshal(body, &candidate); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	if violations := services.ValidateSettings(candidate); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	var incoming models.Settings
	if err := json.Unmarshal(body, &incoming); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	var saved models.Settings
	_, err = h.store.Update(r.Context(), func(doc *store.Document) error {
		incoming.LastUpdated = time.Now().UTC()
		doc.Settings = incoming
		saved = incoming
		appendAudit(doc, r, "settings_updated", "Updated quiz settings")
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Reset restores the canonical default settings.
func (h *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var saved models.Settings
	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		defaults := models.DefaultSettings()
		defaults.LastUpdated = time.Now().UTC()
		doc.Settings = defaults
		saved = defaults
		appendAudit(doc, r, "settings_reset", "Restored default quiz settings")
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
