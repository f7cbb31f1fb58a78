package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	conferenceController *controllers.ConferenceController,
	sessionController *controllers.SessionController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Profile
	mux.HandleFunc("GET /profile", auth(profileController.Get))
	mux.HandleFunc("PUT /profile", auth(profileController.Update))

	// Conferences
	mux.HandleFunc("POST /conferences", auth(conferenceController.Create))
	mux.HandleFunc("GET /conferences/created", auth(conferenceController.ListCreated))
	mux.HandleFunc("GET /conferences/attending", auth(conferenceController.ListAttending))
	mux.HandleFunc("POST /conferences/query", conferenceController.Query)
	mux.HandleFunc("GET /conferences/{conferenceID}", conferenceController.Get)
	mux.HandleFunc("GET /announcement", conferenceController.Announcement)

	// Registrations
	mux.HandleFunc("POST /conferences/{conferenceID}/registrations", auth(conferenceController.Register))
	mux.HandleFunc("DELETE /conferences/{conferenceID}/registrations", auth(conferenceController.Unregister))

	// Sessions
	mux.HandleFunc("POST /conferences/{conferenceID}/sessions", auth(sessionController.Create))
	mux.HandleFunc("GET /conferences/{conferenceID}/sessions", sessionController.ListByConference)
	mux.HandleFunc("GET /sessions/speaker/{speaker}", sessionController.ListBySpeaker)
	mux.HandleFunc("GET /sessions/max-duration/{minutes}", sessionController.ListByMaxDuration)
	mux.HandleFunc("GET /sessions/start-time/{startTime}", sessionController.ListByStartTime)

	// Wishlist
	mux.HandleFunc("POST /wishlist/{sessionID}", auth(sessionController.AddToWishlist))
	mux.HandleFunc("GET /wishlist", auth(sessionController.Wishlist))

	// Speakers
	mux.HandleFunc("GET /speakers/featured", sessionController.FeaturedSpeaker)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
