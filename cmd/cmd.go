package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"matrimony-backend/internal/config"
	"matrimony-backend/internal/handlers"
	"matrimony-backend/internal/middleware"
	"matrimony-backend/internal/models"
	"matrimony-backend/internal/repository"
	"matrimony-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Secrets may live in a .env file during development
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Connect to database
	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connection established")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)
	interestRepo := repository.NewInterestRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	contactRepo := repository.NewContactRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Initialize side channels
	wsHub := services.NewWSHub()

	var mailer services.Mailer
	if cfg.Email.APIKey != "" {
		mailer = services.NewResendMailer(cfg.Email.APIKey, cfg.Email.From)
	} else {
		log.Warn().Msg("Email API key not configured, notification emails disabled")
	}

	var push services.PushSender
	if cfg.APNs.CertPath != "" {
		apns, err := services.NewAPNSSender(cfg.APNs.CertPath, cfg.APNs.CertPassword, cfg.APNs.Topic, cfg.APNs.Production)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create APNs sender")
		}
		push = apns
	}

	var googleVerifier services.GoogleVerifier
	if cfg.Google.ClientID != "" {
		googleVerifier = services.NewGoogleTokenVerifier(cfg.Google.ClientID)
	} else {
		log.Warn().Msg("Google client ID not configured, google sign-in disabled")
	}

	notifier := services.NewNotifier(notificationRepo, userRepo, mailer, push, wsHub)

	// Initialize services
	authService := services.NewAuthService(userRepo, profileRepo, roleRepo, cfg.JWT.Secret, googleVerifier)
	profileService := services.NewProfileService(profileRepo, preferenceRepo)
	matchService := services.NewMatchService(profileRepo, interestRepo)
	interestService := services.NewInterestService(interestRepo, profileRepo, notifier)
	membershipService := services.NewMembershipService(membershipRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	contactService := services.NewContactService(contactRepo)
	adminService := services.NewAdminService(profileRepo, contactRepo, notifier)
	photoService, err := services.NewPhotoService(profileRepo, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create photo service")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	matchHandler := handlers.NewMatchHandler(matchService)
	interestHandler := handlers.NewInterestHandler(interestService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(adminService)
	wsHandler := handlers.NewWebSocketHandler(wsHub, authService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/google", authHandler.GoogleLogin)
		r.Post("/contact", contactHandler.Submit)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService))

			r.Get("/auth/me", authHandler.Me)
			r.Put("/me/push-token", authHandler.UpdatePushToken)

			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile", profileHandler.UpdateProfile)
			r.Get("/preferences", profileHandler.GetPreferences)
			r.Put("/preferences", profileHandler.SavePreferences)

			r.Post("/photos", photoHandler.Upload)
			r.Delete("/photos", photoHandler.Remove)

			r.Get("/matches", matchHandler.Browse)
			r.Get("/matches/interests", matchHandler.SentInterests)

			r.Post("/interests", interestHandler.Send)
			r.Get("/interests/received", interestHandler.Received)
			r.Post("/interests/{interest_id}/respond", interestHandler.Respond)

			r.Get("/notifications", notificationHandler.List)
			r.Post("/notifications/{notification_id}/read", notificationHandler.MarkRead)

			r.Get("/membership/tiers", membershipHandler.Tiers)
			r.Get("/membership/current", membershipHandler.Current)
			r.Post("/membership/purchase", membershipHandler.Purchase)
		})

		// Moderation console
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authService))
			r.Use(middleware.RequireRole(roleRepo, models.RoleAdmin, models.RoleModerator))

			r.Get("/admin/profiles", adminHandler.ListProfiles)
			r.Post("/admin/profiles/{profile_id}/approve", adminHandler.ApproveProfile)
			r.Post("/admin/profiles/{profile_id}/disable", adminHandler.DisableProfile)
			r.Get("/admin/messages", adminHandler.ListMessages)
			r.Post("/admin/messages/{message_id}/read", adminHandler.MarkMessageRead)
		})
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
