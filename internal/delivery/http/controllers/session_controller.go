package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

type SessionController struct {
	Logger   *slog.Logger
	Service  domain.SessionService
	Speakers domain.SpeakerService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService, speakerSvc domain.SpeakerService) *SessionController {
	return &SessionController{
		Logger:   logger,
		Service:  svc,
		Speakers: speakerSvc,
	}
}

// CreateSessionRequest is the request body for POST /conferences/{conferenceID}/sessions.
type CreateSessionRequest struct {
	Name            string `json:"name"`
	Highlights      string `json:"highlights"`
	Speaker         string `json:"speaker"`
	DurationMinutes int    `json:"duration_minutes"`
	TypeOfSession   string `json:"type_of_session"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
}

// Validate implements helpers.Validator.
func (s CreateSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(s.Speaker) == "" {
		errs = append(errs, "speaker is required")
	}
	if s.DurationMinutes < 0 {
		errs = append(errs, "duration_minutes cannot be negative")
	}
	return errs
}

// FeaturedSpeakerResponse is the response body for GET /speakers/featured.
type FeaturedSpeakerResponse struct {
	Speaker string `json:"speaker"`
}

// Create godoc
// @Summary Create a session in a conference
// @Description Creates a session. Only the conference organizer may do this. Featured-speaker tracking runs asynchronously.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Param body body CreateSessionRequest true "Session fields"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [post]
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	session, err := c.Service.CreateSession(r.Context(), conferenceID, userID, domain.CreateSessionInput{
		Name:            req.Name,
		Highlights:      req.Highlights,
		Speaker:         req.Speaker,
		DurationMinutes: req.DurationMinutes,
		TypeOfSession:   req.TypeOfSession,
		Date:            req.Date,
		StartTime:       req.StartTime,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// ListByConference godoc
// @Summary List sessions of a conference
// @Description Lists all sessions of the conference, optionally filtered by type via the type query parameter.
// @Tags sessions
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Param type query string false "Session type filter"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID}/sessions [get]
func (c *SessionController) ListByConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}

	var (
		sessions []*domain.Session
		err      error
	)
	if typeOfSession := r.URL.Query().Get("type"); typeOfSession != "" {
		sessions, err = c.Service.GetConferenceSessionsByType(r.Context(), conferenceID, typeOfSession)
	} else {
		sessions, err = c.Service.GetConferenceSessions(r.Context(), conferenceID)
	}
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListBySpeaker godoc
// @Summary List sessions by speaker across all conferences
// @Tags sessions
// @Produce json
// @Param speaker path string true "Speaker name"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/speaker/{speaker} [get]
func (c *SessionController) ListBySpeaker(w http.ResponseWriter, r *http.Request) {
	speaker := r.PathValue("speaker")
	sessions, err := c.Service.GetSessionsBySpeaker(r.Context(), speaker)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListByMaxDuration godoc
// @Summary List sessions no longer than the given duration
// @Tags sessions
// @Produce json
// @Param minutes path int true "Maximum duration in minutes"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/max-duration/{minutes} [get]
func (c *SessionController) ListByMaxDuration(w http.ResponseWriter, r *http.Request) {
	minutes, err := strconv.Atoi(r.PathValue("minutes"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "minutes must be an integer")
		return
	}
	sessions, err := c.Service.GetSessionsByMaxDuration(r.Context(), minutes)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListByStartTime godoc
// @Summary List sessions starting at the given time of day
// @Tags sessions
// @Produce json
// @Param startTime path string true "Start time (HH:MM, 24h)"
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/start-time/{startTime} [get]
func (c *SessionController) ListByStartTime(w http.ResponseWriter, r *http.Request) {
	sessions, err := c.Service.GetSessionsByStartTime(r.Context(), r.PathValue("startTime"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// AddToWishlist godoc
// @Summary Add a session to the current user's wishlist
// @Description Idempotent: adding a session already in the wishlist succeeds without effect.
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 201 {object} helpers.APIResponse "data contains added: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist/{sessionID} [post]
func (c *SessionController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	if err := c.Service.AddSessionToWishlist(r.Context(), userID, sessionID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, map[string]bool{"added": true})
}

// Wishlist godoc
// @Summary List the sessions in the current user's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wishlist [get]
func (c *SessionController) Wishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessions, err := c.Service.GetSessionsInWishlist(r.Context(), userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// FeaturedSpeaker godoc
// @Summary Get the current featured speaker
// @Description Returns the cached featured speaker, or an empty string when none has been promoted.
// @Tags speakers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the speaker"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/featured [get]
func (c *SessionController) FeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := c.Speakers.GetFeaturedSpeaker(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FeaturedSpeakerResponse{Speaker: speaker})
}
