package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

func errorRespDetails(message string, details []string) models.ErrorResponse {
	return models.ErrorResponse{Error: message, Details: details}
}

// handleServiceError maps the service/store error taxonomy onto HTTP
// statuses at the endpoint boundary.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var unauthorizedErr *services.UnauthorizedError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", validationErr.Violations))
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, errorResp(notFoundErr.Message))
	case errors.As(err, &unauthorizedErr):
		writeJSON(w, http.StatusUnauthorized, errorResp(unauthorizedErr.Message))
	case errors.Is(err, store.ErrTimeout):
		writeJSON(w, http.StatusServiceUnavailable, errorResp("Store unavailable, try again"))
	case errors.Is(err, store.ErrCorrupt):
		writeJSON(w, http.StatusInternalServerError, errorResp("Data file is corrupt"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("An unexpected error occurred"))
	}
}
