package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quizzy-backend/internal/config"
	"quizzy-backend/internal/handlers"
	"quizzy-backend/internal/middleware"
	"quizzy-backend/internal/router"
	"quizzy-backend/internal/services"
	"quizzy-backend/internal/store"
	"quizzy-backend/internal/worker"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Quizzy backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	log.Println("🚀 Starting Quizzy Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Open Flat Store ────
	st := store.New(cfg.DataFile, time.Duration(cfg.StoreTimeoutSeconds)*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	doc, err := st.Load(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("✗ Flat store unavailable: %w", err)
	}
	log.Printf("✓ Flat store ready (%s): %d questions, %d quizzes, %d results",
		cfg.DataFile, len(doc.Questions), len(doc.Quizzes), len(doc.Results))

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.FrontendURL)
	authService := services.NewAuthService(st, jwtAuth)

	// ──── Step 3: Start Email Worker Pool ────
	emailPool := worker.NewPool(emailService, cfg.EmailWorkers, cfg.EmailQueueSize)
	emailPool.Start()

	// ──── Initialize Handlers ────
	questionHandler := handlers.NewQuestionHandler(st)
	quizHandler := handlers.NewQuizHandler(st)
	resultHandler := handlers.NewResultHandler(st)
	userHandler := handlers.NewUserHandler(st)
	settingsHandler := handlers.NewSettingsHandler(st)
	achievementHandler := handlers.NewAchievementHandler(st)
	adminHandler := handlers.NewAdminHandler(st, authService)
	emailHandler := handlers.NewEmailHandler(st, emailPool)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		questionHandler,
		quizHandler,
		resultHandler,
		userHandler,
		settingsHandler,
		achievementHandler,
		adminHandler,
		emailHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		emailPool.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("✓ Quizzy Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
