package services

import (
	"context"
	"crypto/subtle"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quizzy-backend/internal/middleware"
	"quizzy-backend/internal/models"
	"quizzy-backend/internal/store"
)

type AuthService struct {
	store *store.Store
	jwt   *middleware.JWTAuth
}

func NewAuthService(st *store.Store, jwt *middleware.JWTAuth) *AuthService {
	return &AuthService{store: st, jwt: jwt}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether addr looks like an email address.
func ValidEmail(addr string) bool {
	return emailRegex.MatchString(addr)
}

// Login authenticates an active admin user and issues a bearer token. The
// admin console stores passwords in the data file; plaintext values are
// compared directly while bcrypt-hashed values are verified with bcrypt.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest, requesterIP string) (*models.LoginResponse, error) {
	fields := []string{}
	if req.Email == "" {
		fields = append(fields, "email is required")
	}
	if req.Password == "" {
		fields = append(fields, "password is required")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Violations: fields}
	}

	var matched *models.User
	_, err := s.store.Update(ctx, func(doc *store.Document) error {
		for i := range doc.Users {
			u := doc.Users[i]
			if u.Role != models.RoleAdmin || u.Status != models.StatusActive {
				continue
			}
			if !strings.EqualFold(u.Email, req.Email) {
				continue
			}
			if !passwordMatches(u.Password, req.Password) {
				continue
			}
			matched = &doc.Users[i]
			break
		}
		if matched == nil {
			return &UnauthorizedError{Message: "Invalid email or password"}
		}

		doc.AuditLogs = append(doc.AuditLogs, models.AuditLog{
			ID:        uuid.New().String(),
			User:      matched.Name,
			Action:    "admin_login",
			Details:   "Admin signed in",
			Timestamp: time.Now().UTC(),
			IP:        requesterIP,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateAccessToken(matched.ID, matched.Email, matched.Role)
	if err != nil {
		return nil, err
	}

	user := *matched
	user.Password = ""
	return &models.LoginResponse{Token: token, User: user}, nil
}

func passwordMatches(stored, candidate string) bool {
	if stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Service error taxonomy, mapped to HTTP statuses at the handler boundary.

type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string { return "Validation error" }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }
