package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizzy-backend/internal/middleware"
	"quizzy-backend/internal/models"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		users = make([]models.User, len(doc.Users))
		for i, u := range doc.Users {
			u.Password = ""
			users[i] = u
		}
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var user models.User
	err := h.store.View(r.Context(), func(doc *store.Document) error {
		for _, u := range doc.Users {
			if u.ID == id {
				u.Password = ""
				user = u
				return nil
			}
		}
		return &services.NotFoundError{Message: "User not found"}
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	if req.Status == "" {
		req.Status = models.StatusActive
	}
	if violations := validateUserFields(req.Name, req.Email, req.Role, req.Status); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespDetails("Validation failed", violations))
		return
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Status:    req.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Role == models.RoleAdmin {
		user.Password = req.Password
	}

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Email, req.Email) {
				return &services.ValidationError{Violations: []string{"email is already in use"}}
			}
		}
		doc.Users = append(doc.Users, user)
		appendAudit(doc, r, "user_created", "Created user "+user.Name)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	user.Password = ""
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	var updated models.User
	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID != id {
				continue
			}
			u := &doc.Users[i]
			if req.Name != nil {
				u.Name = *req.Name
			}
			if req.Email != nil {
				u.Email = *req.Email
			}
			if req.Role != nil {
				u.Role = *req.Role
			}
			if req.Status != nil {
				u.Status = *req.Status
			}
			if req.Password != nil && u.Role == models.RoleAdmin {
				u.Password = *req.Password
			}
			if violations := validateUserFields(u.Name, u.Email, u.Role, u.Status); len(violations) > 0 {
				return &services.ValidationError{Violations: violations}
			}
			u.UpdatedAt = time.Now().UTC()
			updated = *u
			appendAudit(doc, r, "user_updated", "Updated user "+u.Name)
			return nil
		}
		return &services.NotFoundError{Message: "User not found"}
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	updated.Password = ""
	writeJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	_, err := h.store.Update(r.Context(), func(doc *store.Document) error {
		kept := make([]models.User, 0, len(doc.Users))
		found := false
		name := ""
		for _, u := range doc.Users {
			if u.ID == id {
				found = true
				name = u.Name
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return &services.NotFoundError{Message: "User not found"}
		}
		doc.Users = kept
		appendAudit(doc, r, "user_deleted", "Deleted user "+name)
		return nil
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

func validateUserFields(name, email, role, status string) []string {
	violations := []string{}
	if name == "" {
		violations = append(violations, "name is required")
	}
	if !services.ValidEmail(email) {
		violations = append(violations, "email must be a valid address")
	}
	switch role {
	case models.RoleStudent, models.RoleTeacher, models.RoleAdmin:
	default:
		violations = append(violations, "role must be one of: student, teacher, admin")
	}
	switch status {
	case models.StatusActive, models.StatusInactive:
	default:
		violations = append(violations, "status must be one of: active, inactive")
	}
	return violations
}

// appendAudit records an admin mutation in the same document write, keyed
// by the authenticated actor when one is present.
func appendAudit(doc *store.Document, r *http.Request, action, details string) {
	actor := middleware.GetUserID(r.Context())
	for _, u := range doc.Users {
		if u.ID == actor {
			actor = u.Name
			break
		}
	}
	doc.AuditLogs = append(doc.AuditLogs, models.AuditLog{
		ID:        uuid.New().String(),
		User:      actor,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
		IP:        r.RemoteAddr,
	})
}
