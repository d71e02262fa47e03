package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kingctheceo/togther-app-2/internal/config"
	"github.com/kingctheceo/togther-app-2/internal/database"
	"github.com/kingctheceo/togther-app-2/internal/handlers"
	"github.com/kingctheceo/togther-app-2/internal/repository"
	"github.com/kingctheceo/togther-app-2/internal/security"
	"github.com/kingctheceo/togther-app-2/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (supports sqlite, postgres, mysql)
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

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	choreRepo := repository.NewChoreRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	safetyRepo := repository.NewSafetyRepository(db)

	// Initialize services
	accessService := service.NewAccessService()
	authService := service.NewAuthService(userRepo, cfg.SessionDuration)
	enrollmentService := service.NewEnrollmentService(userRepo, familyRepo)
	feedService := service.NewFeedService(feedRepo, accessService)
	choreService := service.NewChoreService(choreRepo, userRepo, accessService)
	moodService := service.NewMoodService(moodRepo, accessService)
	messageService := service.NewMessageService(messageRepo, userRepo, accessService)
	familyService := service.NewFamilyService(userRepo, familyRepo, locationRepo, accessService)
	libraryService := service.NewLibraryService(libraryRepo, accessService)
	achievementService := service.NewAchievementService(achievementRepo, accessService)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	safetyService := service.NewSafetyService(safetyRepo, userRepo, emailService, accessService)

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.CSRFSecret)
	rateLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, csrf, rateLimiter)

	authHandler := handlers.NewAuthHandler(authService, enrollmentService, templates)
	feedHandler := handlers.NewFeedHandler(feedService, templates, csrf)
	choreHandler := handlers.NewChoreHandler(choreService, familyService, templates, csrf)
	moodHandler := handlers.NewMoodHandler(moodService, templates, csrf)
	familyHandler := handlers.NewFamilyHandler(familyService, templates, csrf)
	messageHandler := handlers.NewMessageHandler(messageService, familyService, templates, csrf)
	libraryHandler := handlers.NewLibraryHandler(libraryService, templates, csrf)
	achievementHandler := handlers.NewAchievementHandler(achievementService, templates, csrf)
	safetyHandler := handlers.NewSafetyHandler(safetyService, templates, csrf)
	kidsHandler := handlers.NewKidsHandler(safetyService, templates, csrf)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Public routes
	mux.HandleFunc("GET /{$}", authHandler.Home)
	mux.HandleFunc("GET /login", authHandler.ShowLogin)
	mux.HandleFunc("POST /login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /signup", authHandler.ShowSignup)
	mux.HandleFunc("POST /signup", middleware.RateLimit(authHandler.Signup))
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Feed
	mux.HandleFunc("GET /feed", middleware.RequireAuth(feedHandler.ShowFeed))
	mux.HandleFunc("POST /feed/posts", middleware.RequireAuth(middleware.CSRFProtect(feedHandler.CreatePost)))
	mux.HandleFunc("POST /feed/posts/{id}/like", middleware.RequireAuth(middleware.CSRFProtect(feedHandler.ToggleLike)))
	mux.HandleFunc("POST /feed/posts/{id}/comments", middleware.RequireAuth(middleware.CSRFProtect(feedHandler.AddComment)))

	// Chores
	mux.HandleFunc("GET /chores", middleware.RequireAuth(choreHandler.ShowChores))
	mux.HandleFunc("POST /chores", middleware.RequireAuth(middleware.RequireParent(middleware.CSRFProtect(choreHandler.CreateChore))))
	mux.HandleFunc("POST /chores/{id}/complete", middleware.RequireAuth(middleware.CSRFProtect(choreHandler.CompleteChore)))

	// Mood and journal
	mux.HandleFunc("GET /mood", middleware.RequireAuth(moodHandler.ShowMood))
	mux.HandleFunc("POST /mood", middleware.RequireAuth(middleware.CSRFProtect(moodHandler.CheckIn)))
	mux.HandleFunc("POST /journal", middleware.RequireAuth(middleware.CSRFProtect(moodHandler.AddJournalEntry)))

	// Family, profile and locations
	mux.HandleFunc("GET /family", middleware.RequireAuth(familyHandler.ShowFamily))
	mux.HandleFunc("POST /profile/avatar", middleware.RequireAuth(middleware.CSRFProtect(familyHandler.UpdateAvatar)))
	mux.HandleFunc("GET /locations", middleware.RequireAuth(familyHandler.ShowLocations))
	mux.HandleFunc("POST /locations", middleware.RequireAuth(middleware.CSRFProtect(familyHandler.CheckInLocation)))

	// Messages
	mux.HandleFunc("GET /messages", middleware.RequireAuth(messageHandler.ShowMessages))
	mux.HandleFunc("POST /messages", middleware.RequireAuth(middleware.CSRFProtect(messageHandler.SendMessage)))

	// Library
	mux.HandleFunc("GET /library", middleware.RequireAuth(libraryHandler.ShowLibrary))
	mux.HandleFunc("POST /library/books", middleware.RequireAuth(middleware.CSRFProtect(libraryHandler.AddBook)))
	mux.HandleFunc("POST /library/books/{id}/reviews", middleware.RequireAuth(middleware.CSRFProtect(libraryHandler.ReviewBook)))

	// Achievements
	mux.HandleFunc("GET /achievements", middleware.RequireAuth(achievementHandler.ShowAchievements))
	mux.HandleFunc("POST /achievements", middleware.RequireAuth(middleware.CSRFProtect(achievementHandler.Celebrate)))

	// Emergency alerts
	mux.HandleFunc("GET /alerts", middleware.RequireAuth(safetyHandler.ShowAlerts))
	mux.HandleFunc("POST /alerts", middleware.RequireAuth(middleware.RequireParent(middleware.CSRFProtect(safetyHandler.SendAlert))))

	// Safe site management (parents)
	mux.HandleFunc("GET /family/sites", middleware.RequireAuth(middleware.RequireParent(safetyHandler.ShowSiteManager)))
	mux.HandleFunc("POST /family/sites", middleware.RequireAuth(middleware.RequireParent(middleware.CSRFProtect(safetyHandler.ApproveSite))))

	// Kid surfaces (restricted members only)
	mux.HandleFunc("GET /kids/browser", middleware.RequireAuth(middleware.RequireRestricted(kidsHandler.ShowBrowser)))
	mux.HandleFunc("GET /kids/learning", middleware.RequireAuth(middleware.RequireRestricted(kidsHandler.ShowLearning)))
	mux.HandleFunc("POST /kids/learning", middleware.RequireAuth(middleware.RequireRestricted(middleware.CSRFProtect(kidsHandler.RecordLearning))))

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

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	var files []string
	files = append(files, filepath.Join(templatesPath, "base.tmpl"))

	matches, err := filepath.Glob(filepath.Join(templatesPath, "pages/*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}
	files = append(files, matches...)

	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04")
		},
		"until": func(count int) []int {
			result := make([]int, count)
			for i := 0; i < count; i++ {
				result[i] = i
			}
			return result
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}
	}
}
