package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"quizzy-backend/internal/handlers"
	"quizzy-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
	resultHandler *handlers.ResultHandler,
	userHandler *handlers.UserHandler,
	settingsHandler *handlers.SettingsHandler,
	achievementHandler *handlers.AchievementHandler,
	adminHandler *handlers.AdminHandler,
	emailHandler *handlers.EmailHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Login rate limiter (10 req/min per IP)
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Questions ────
		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.List)
			r.Post("/", questionHandler.Create)
			r.Get("/stats", questionHandler.Stats)
			r.Get("/{id}", questionHandler.Get)
			r.Put("/{id}", questionHandler.Update)
			r.Delete("/{id}", questionHandler.Delete)
		})

		// ──── Quizzes ────
		r.Route("/quizzes", func(r chi.Router) {
			r.Get("/", quizHandler.List)
			r.Post("/", quizHandler.Create)
			r.Get("/{id}", quizHandler.Get)
			r.Put("/{id}", quizHandler.Update)
			r.Delete("/{id}", quizHandler.Delete)
		})

		// ──── Results (append-only) ────
		r.Route("/results", func(r chi.Router) {
			r.Get("/", resultHandler.List)
			r.Post("/", resultHandler.Create)
			r.Get("/stats", resultHandler.Stats)
		})

		// ──── Users ────
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		// ──── Achievements ────
		r.Get("/achievements", achievementHandler.List)

		// ──── Admin ────
		r.Route("/admin", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(loginLimiter.Middleware)
				r.Post("/login", adminHandler.Login)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/stats", adminHandler.Stats)
				r.Get("/audit-logs", adminHandler.AuditLogs)
				r.Get("/settings", settingsHandler.Get)
				r.Put("/settings", settingsHandler.Update)
				r.Post("/settings/reset", settingsHandler.Reset)
			})
		})

		// ──── Email ────
		r.Route("/email", func(r chi.Router) {
			r.Post("/quiz-results", emailHandler.QuizResults)
			r.Post("/verification", emailHandler.Verification)
			r.Post("/reset-password", emailHandler.ResetPassword)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not Found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method Not Allowed"}`))
	})

	return r
}
