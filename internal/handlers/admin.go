package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

type AdminHandler struct {
	store *store.Store
	auth  *services.AuthService
}

func NewAdminHandler(st *store.Store, auth *services.AuthService) *AdminHandler {
	return &AdminHandler{store: st, auth: auth}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	resp, err := h.auth.Login(r.Context(), req, r.RemoteAddr)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats serves the admin dashboard overview. Trend data is best-effort; a
// degraded trend is logged and served as an empty series rather than
// failing the whole dashboard.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		activeUsers := 0
		for _, u := range doc.Users {
			if u.Status == models.StatusActive {
				activeUsers++
			}
		}

		trend := services.ComputePerformanceTrend(doc.Results)
		if trend.Degraded {
			log.Printf("performance trend degraded, serving empty series (request %s)", r.Header.Get("X-Request-ID"))
		}

		payload = map[string]interface{}{
			"totalQuizzes":     len(doc.Quizzes),
			"activeUsers":      activeUsers,
			"averageScore":     services.AverageScore(doc.Results),
			"completionRate":   services.CompletionRate(doc.Results),
			"recentActivity":   services.RecentActivity(doc.Results),
			"performanceTrend": trend.Points,
		}
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// AuditLogs returns the most recent admin actions, newest first, capped at
// 100 entries.
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	var logs []models.AuditLog
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		logs = make([]models.AuditLog, 0, len(doc.AuditLogs))
		for i := len(doc.AuditLogs) - 1; i >= 0 && len(logs) < 100; i-- {
			logs = append(logs, doc.AuditLogs[i])
		}
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
