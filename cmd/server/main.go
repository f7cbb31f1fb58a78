// @title Conference Central API
// @version 1.0
// @description Backend for organizing conferences, sessions, and registrations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencecentral/config"
	_ "conferencecentral/docs"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	"conferencecentral/internal/adapters/tasks"
	delivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(db)
	conferenceRepo := postgres.NewConferenceRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)

	// Adapters
	memCache := cache.NewMemoryCache()
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddr,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	dispatcher := tasks.NewDispatcher(logger, cfg.TaskWorkers, cfg.TaskQueueSize)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	authService := services.NewAuthService(profileRepo, tokenIssuer, cfg.JWTExpiry)
	profileService := services.NewProfileService(profileRepo)
	conferenceService := services.NewConferenceService(conferenceRepo, profileRepo, memCache, dispatcher, logger)
	registrationService := services.NewRegistrationService(registrationRepo, logger)
	sessionService := services.NewSessionService(conferenceRepo, sessionRepo, wishlistRepo, dispatcher, logger)
	speakerService := services.NewSpeakerService(speakerRepo, memCache, logger)

	// Task handlers
	dispatcher.Register(domain.JobSendConfirmationEmail, func(ctx context.Context, params map[string]string) error {
		return emailService.SendConferenceConfirmation(ctx, &domain.ConferenceCreatedEmailData{
			Email:          params[domain.TaskParamEmail],
			ConferenceName: params[domain.TaskParamConferenceName],
		})
	})
	dispatcher.Register(domain.JobAddFeaturedSpeaker, func(ctx context.Context, params map[string]string) error {
		return speakerService.HandleSpeakerEvent(ctx, params[domain.TaskParamSessionID], params[domain.TaskParamSpeaker])
	})
	dispatcher.Start()
	defer dispatcher.Close()

	// Periodic announcement refresh, in place of a cron endpoint.
	refreshCtx, cancelRefresh := context.WithCancel(context.Background())
	defer cancelRefresh()
	go func() {
		ticker := time.NewTicker(cfg.AnnouncementInterval)
		defer ticker.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-ticker.C:
				if _, err := conferenceService.RefreshAnnouncement(refreshCtx); err != nil {
					logger.Error("announcement refresh failed", "err", err)
				}
			}
		}
	}()

	// Controllers and router
	authController := controllers.NewAuthController(logger, authService)
	profileController := controllers.NewProfileController(logger, profileService)
	conferenceController := controllers.NewConferenceController(logger, conferenceService, registrationService)
	sessionController := controllers.NewSessionController(logger, sessionService, speakerService)

	mux := delivery.NewRouter(logger, tokenVerifier, authController, profileController, conferenceController, sessionController)

	var handler http.Handler = mux
	handler = middleware.CORS(corsOrigins(), handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

func corsOrigins() []string {
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000"}
}
