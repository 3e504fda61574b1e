package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecolearn/internal/audio"
	"ecolearn/internal/catalog"
	"ecolearn/internal/config"
	"ecolearn/internal/database"
	"ecolearn/internal/handlers"
	"ecolearn/internal/progression"
	"ecolearn/internal/repository"
	"ecolearn/internal/security"
	"ecolearn/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	stateRepo := repository.NewStateRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Progression core
	cat := catalog.Default()
	notifier := progression.NotifierFunc(func(eventKind string) {
		log.Printf("Feedback event: %s", eventKind)
	})
	store, err := progression.NewStore(stateRepo, cat, notifier)
	if err != nil {
		log.Fatalf("Failed to load progression state: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(sessionRepo, store, cfg.SessionDuration)
	googleService := service.NewGoogleAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.AppBaseURL)
	lessonService := service.NewLessonService(cat, store)
	leaderboardService := service.NewLeaderboardService(store, rand.New(rand.NewSource(time.Now().UnixNano())))
	analyticsService := service.NewAnalyticsService(store)
	portalService := service.NewPortalService(cfg.PortalPasswordHash, cfg.PortalJWTSecret, cfg.PortalTokenTTL)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.ContactEmail, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	contactService := service.NewContactService(contactRepo, emailService)

	effectsService := audio.NewEffectsService(cfg.AudioDir)

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.SessionSecret)
	middleware := handlers.NewMiddleware(authService, portalService, csrf)
	loginLimiter := security.NewRateLimiter(10, time.Minute)
	contactLimiter := security.NewRateLimiter(5, time.Minute)

	authHandler := handlers.NewAuthHandler(authService, googleService)
	studentHandler := handlers.NewStudentHandler(store)
	lessonHandler := handlers.NewLessonHandler(lessonService, store)
	challengeHandler := handlers.NewChallengeHandler(cat, store)
	badgeHandler := handlers.NewBadgeHandler(cat, store)
	shopHandler := handlers.NewShopHandler(cat, store)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	portalHandler := handlers.NewPortalHandler(portalService, analyticsService)
	contactHandler := handlers.NewContactHandler(contactService)
	audioHandler := handlers.NewAudioHandler(effectsService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/login", handlers.RateLimit(loginLimiter, authHandler.Login))
	mux.HandleFunc("POST /api/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/google", authHandler.StartGoogleAuth)
	mux.HandleFunc("GET /api/auth/google/callback", authHandler.GoogleCallback)
	mux.HandleFunc("POST /api/contact", handlers.RateLimit(contactLimiter, contactHandler.Submit))
	mux.HandleFunc("GET /audio/{event}", audioHandler.ServeEffect)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Student routes
	mux.HandleFunc("GET /api/csrf", middleware.RequireAuth(middleware.IssueCSRFToken))
	mux.HandleFunc("GET /api/student", middleware.RequireAuth(studentHandler.GetStudent))
	mux.HandleFunc("PUT /api/student", middleware.RequireAuth(middleware.CSRFProtect(studentHandler.UpdateStudent)))
	mux.HandleFunc("GET /api/lessons", middleware.RequireAuth(lessonHandler.ListLessons))
	mux.HandleFunc("GET /api/lessons/{id}", middleware.RequireAuth(lessonHandler.GetLesson))
	mux.HandleFunc("POST /api/lessons/{id}/quiz", middleware.RequireAuth(middleware.CSRFProtect(lessonHandler.SubmitQuiz)))
	mux.HandleFunc("POST /api/lessons/{id}/complete", middleware.RequireAuth(middleware.CSRFProtect(lessonHandler.CompleteLesson)))
	mux.HandleFunc("GET /api/challenges", middleware.RequireAuth(challengeHandler.ListChallenges))
	mux.HandleFunc("GET /api/challenges/{id}", middleware.RequireAuth(challengeHandler.GetChallenge))
	mux.HandleFunc("POST /api/challenges/{id}/complete", middleware.RequireAuth(middleware.CSRFProtect(challengeHandler.CompleteChallenge)))
	mux.HandleFunc("GET /api/badges", middleware.RequireAuth(badgeHandler.ListBadges))
	mux.HandleFunc("GET /api/shop", middleware.RequireAuth(shopHandler.ListItems))
	mux.HandleFunc("POST /api/shop/{id}/purchase", middleware.RequireAuth(middleware.CSRFProtect(shopHandler.PurchaseItem)))
	mux.HandleFunc("GET /api/leaderboard", middleware.RequireAuth(leaderboardHandler.GetLeaderboard))

	// Educator portal routes
	mux.HandleFunc("POST /api/portal/login", handlers.RateLimit(loginLimiter, portalHandler.Login))
	mux.HandleFunc("GET /api/portal/overview", middleware.RequirePortalAuth(portalHandler.Overview))
	mux.HandleFunc("GET /api/portal/analytics", middleware.RequirePortalAuth(portalHandler.Analytics))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background cleanup tasks
	go runPeriodicTasks(authService, contactService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// runPeriodicTasks removes expired sessions and retries queued contact
// messages on an hourly cadence
func runPeriodicTasks(authService *service.AuthService, contactService *service.ContactService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if removed, err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else if removed > 0 {
			log.Printf("Expired sessions cleaned up: %d", removed)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if delivered, err := contactService.RetryUnsent(ctx, 20); err != nil {
			log.Printf("Error retrying contact messages: %v", err)
		} else if delivered > 0 {
			log.Printf("Queued contact messages delivered: %d", delivered)
		}
		cancel()
	}
}
